package features

import (
	"github.com/hyperifyio/transcriptfeatures/internal/extract"
	"github.com/hyperifyio/transcriptfeatures/internal/lexicon"
	"github.com/hyperifyio/transcriptfeatures/internal/tokenize"
)

// Extractor computes a Vector for a Document. The zero value uses the
// shallow tokenizer and the default stopwords and keeps token case.
type Extractor struct {
	Tokenizer tokenize.Tokenizer
	// Stopwords is used for both the presence and the coverage rate so the
	// two share a normalization base. Zero value means lexicon.DefaultStopwords.
	Stopwords lexicon.Set
	// FoldCase lowercases tokens before lexicon matching.
	FoldCase bool
}

// Tokens returns the token sequence the lexicon features are computed over.
func (e Extractor) Tokens(text string) []string {
	tk := e.Tokenizer
	if tk == nil {
		tk = tokenize.Shallow{}
	}
	tokens := tk.Tokenize(text)
	if e.FoldCase {
		tokens = tokenize.Fold(tokens)
	}
	return tokens
}

// Extract computes every feature of doc. The only error is a malformed
// publication date.
func (e Extractor) Extract(doc extract.Document) (Vector, error) {
	stopwords := e.Stopwords
	if stopwords.Len() == 0 {
		stopwords = lexicon.DefaultStopwords()
	}
	tokens := e.Tokens(doc.Text)

	title := doc.Title
	if title == "" {
		title = doc.Text
	}

	v := Vector{
		WordCount:         WordCount(doc.Text),
		TitleWordCount:    TitleWordCount(title),
		Easiness:          Readability(doc.Text),
		StopwordPresence:  StopWordPresenceRate(tokens, stopwords),
		StopwordCoverage:  StopWordCoverageRate(tokens, stopwords),
		PrepositionRate:   PrepositionRate(tokens),
		AuxiliaryRate:     AuxiliaryVerbRate(tokens),
		ToBeVerbRate:      ToBeVerbRate(tokens),
		ConjunctionRate:   ConjunctionRate(tokens),
		NormalizationRate: NormalizationRate(tokens),
		PronounRate:       PronounRate(tokens),
	}
	if len(tokens) > 0 {
		h, err := Entropy(tokens)
		if err != nil {
			return Vector{}, err
		}
		v.DocumentEntropy = h
	}
	if doc.Published != "" {
		days, err := Freshness(doc.Published)
		if err != nil {
			return Vector{}, err
		}
		v.Freshness = &days
	}
	return v, nil
}
