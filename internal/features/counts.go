// Package features computes the content-based features of a lecture
// transcript: word counts, document entropy, readability, lexicon rates and
// freshness. Every function is pure and safe for concurrent use.
package features

import (
	"strings"

	"github.com/hyperifyio/transcriptfeatures/internal/tokenize"
)

// WordCount returns the number of tokens the shallow tokenizer finds in s.
func WordCount(s string) int {
	return len(tokenize.Shallow{}.Tokenize(s))
}

// TitleWordCount counts whitespace-separated words on the first line of doc.
func TitleWordCount(doc string) int {
	first, _, _ := strings.Cut(doc, "\n")
	return len(strings.Fields(first))
}
