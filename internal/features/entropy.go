package features

import (
	"errors"
	"math"
)

// ErrNoTokens is returned by Entropy for an empty token sequence.
var ErrNoTokens = errors.New("features: empty token sequence")

// Entropy returns the Shannon entropy, in bits, of the maximum-likelihood
// unigram distribution over tokens (document entropy as used by Bendersky et
// al., WSDM 2011). It is 0 when every token is the same.
func Entropy(tokens []string) (float64, error) {
	if len(tokens) == 0 {
		return 0, ErrNoTokens
	}
	counts := make(map[string]int, len(tokens))
	// Sum in first-appearance order so repeated calls agree bit for bit.
	order := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}
	total := float64(len(tokens))
	var h float64
	for _, t := range order {
		p := float64(counts[t]) / total
		h -= p * math.Log2(p)
	}
	if h == 0 {
		// avoid -0
		return 0, nil
	}
	return h, nil
}
