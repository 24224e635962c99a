package features

import (
	"strings"

	"github.com/hyperifyio/transcriptfeatures/internal/lexicon"
)

// Tokens are trimmed of surrounding whitespace before matching and must
// already be in the case the lexicon uses (lowercase).

// StopWordPresenceRate returns the fraction of token occurrences that are
// stopwords (fracStops in Bendersky et al., WSDM 2011). Repeated stopwords
// count every time.
func StopWordPresenceRate(tokens []string, stopwords lexicon.Set) float64 {
	return membershipRate(tokens, stopwords)
}

// StopWordCoverageRate returns the fraction of the stopword list that occurs
// at least once in tokens (stopCover). An empty stopword set yields 0.
func StopWordCoverageRate(tokens []string, stopwords lexicon.Set) float64 {
	if len(tokens) == 0 || stopwords.Len() == 0 {
		return 0
	}
	seen := make(map[string]struct{})
	for _, t := range tokens {
		w := strings.TrimSpace(t)
		if stopwords.Contains(w) {
			seen[w] = struct{}{}
		}
	}
	return float64(len(seen)) / float64(stopwords.Len())
}

// ConjunctionRate returns the fraction of coordinating conjunctions.
func ConjunctionRate(tokens []string) float64 {
	return membershipRate(tokens, lexicon.Conjunctions())
}

// PrepositionRate returns the fraction of prepositions.
func PrepositionRate(tokens []string) float64 {
	return membershipRate(tokens, lexicon.Prepositions())
}

// ToBeVerbRate returns the fraction of "to be" forms.
func ToBeVerbRate(tokens []string) float64 {
	return membershipRate(tokens, lexicon.ToBeVerbs())
}

// AuxiliaryVerbRate returns the fraction of auxiliary verbs.
func AuxiliaryVerbRate(tokens []string) float64 {
	return membershipRate(tokens, lexicon.AuxiliaryVerbs())
}

// PronounRate returns the fraction of pronouns.
func PronounRate(tokens []string) float64 {
	return membershipRate(tokens, lexicon.Pronouns())
}

// NormalizationRate returns the fraction of tokens ending in a nominalization
// suffix. A token matching several suffixes counts once.
func NormalizationRate(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	suffixes := lexicon.NormalizationSuffixes()
	n := 0
	for _, t := range tokens {
		w := strings.TrimSpace(t)
		for _, s := range suffixes {
			if strings.HasSuffix(w, s) {
				n++
				break
			}
		}
	}
	return float64(n) / float64(len(tokens))
}

func membershipRate(tokens []string, set lexicon.Set) float64 {
	if len(tokens) == 0 {
		return 0
	}
	n := 0
	for _, t := range tokens {
		if set.Contains(strings.TrimSpace(t)) {
			n++
		}
	}
	return float64(n) / float64(len(tokens))
}
