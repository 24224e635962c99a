package features

import (
	"regexp"
	"strings"
)

// ReadabilitySentinel is returned by Readability when the text has no
// sentences or no words.
const ReadabilitySentinel = 100.0

var (
	sentenceEndRe = regexp.MustCompile(`[.!?]+`)
	vowelRunRe    = regexp.MustCompile(`(?i)[aeiouy]+`)
)

// CountSentences counts runs of sentence terminators; "?!" counts once.
func CountSentences(text string) int {
	return len(sentenceEndRe.FindAllStringIndex(text, -1))
}

// CountWords counts whitespace-separated words. This is deliberately not the
// tokenizer: the readability constants were calibrated on this split.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// EstimateSyllables approximates the syllables of word as its number of vowel runs.
func EstimateSyllables(word string) int {
	return len(vowelRunRe.FindAllStringIndex(word, -1))
}

// CountSyllables sums EstimateSyllables over the whitespace-separated words of text.
func CountSyllables(text string) int {
	n := 0
	for _, w := range strings.Fields(text) {
		n += EstimateSyllables(w)
	}
	return n
}

// Readability returns the Flesch reading-ease score of text:
//
//	206.835 - 1.015*(words/sentences) - 84.6*(syllables/words)
//
// Text without sentences or words scores ReadabilitySentinel.
func Readability(text string) float64 {
	sentences := CountSentences(text)
	words := CountWords(text)
	if sentences == 0 || words == 0 {
		return ReadabilitySentinel
	}
	syllables := CountSyllables(text)
	w := float64(words)
	return 206.835 - 1.015*(w/float64(sentences)) - 84.6*(float64(syllables)/w)
}
