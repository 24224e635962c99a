// Package lexicon holds the fixed word lists the content features are
// measured against. Every list is built once at package init and exposed
// through the read-only Set type, so callers may share them freely across
// goroutines.
package lexicon

import "sort"

// Set is an immutable collection of words. The zero value is an empty set.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a Set from the given words. Duplicates collapse.
func NewSet(words ...string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return Set{words: m}
}

// Contains reports whether w is a member. Matching is exact and case-sensitive.
func (s Set) Contains(w string) bool {
	_, ok := s.words[w]
	return ok
}

// Len returns the number of distinct words in the set.
func (s Set) Len() int {
	return len(s.words)
}

// Union returns a new Set holding the members of s plus extra.
// s itself is left untouched.
func (s Set) Union(extra ...string) Set {
	m := make(map[string]struct{}, len(s.words)+len(extra))
	for w := range s.words {
		m[w] = struct{}{}
	}
	for _, w := range extra {
		m[w] = struct{}{}
	}
	return Set{words: m}
}

// Words returns the members in sorted order.
func (s Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
