// Package tokenize splits transcript text into word tokens.
//
// Tokenizers here never change letter case; a token "The" stays "The" and will
// not match the lowercase lexicons. Callers that want case-insensitive rates
// run Fold over the token sequence first.
package tokenize

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer turns raw text into an ordered sequence of word tokens.
// Implementations must be deterministic and free of side effects.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Shallow splits on whitespace and strips punctuation and symbols from both
// ends of every field. Inner punctuation ("can't", "e-mail") is kept.
type Shallow struct{}

func (Shallow) Tokenize(text string) []string {
	fields := strings.Fields(norm.NFC.String(text))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, isEdgeRune)
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Whitespace splits on Unicode whitespace only.
type Whitespace struct{}

func (Whitespace) Tokenize(text string) []string {
	return strings.Fields(text)
}

func isEdgeRune(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// ByName resolves a tokenizer from configuration. The empty name selects Shallow.
func ByName(name string) (Tokenizer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "shallow":
		return Shallow{}, nil
	case "whitespace":
		return Whitespace{}, nil
	default:
		return nil, fmt.Errorf("unknown tokenizer %q", name)
	}
}

// Fold returns a new slice with every token case-folded, so that "The" and
// "THE" both become "the". The input is not modified.
func Fold(tokens []string) []string {
	c := cases.Fold()
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = c.String(t)
	}
	return out
}
