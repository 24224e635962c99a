package features

// Feature names, in the column order of the output record.
const (
	NameWordCount         = "word_count"
	NameTitleWordCount    = "title_word_count"
	NameDocumentEntropy   = "document_entropy"
	NameEasiness          = "easiness"
	NameStopwordPresence  = "fraction_stopword_presence"
	NameStopwordCoverage  = "fraction_stopword_coverage"
	NamePrepositionRate   = "preposition_rate"
	NameAuxiliaryRate     = "auxiliary_rate"
	NameToBeVerbRate      = "tobe_verb_rate"
	NameConjunctionRate   = "conjugate_rate"
	NameNormalizationRate = "normalization_rate"
	NamePronounRate       = "pronoun_rate"
	NameFreshness         = "freshness"
)

// Names lists every feature a Vector can carry, in record order.
var Names = []string{
	NameWordCount,
	NameTitleWordCount,
	NameDocumentEntropy,
	NameEasiness,
	NameStopwordPresence,
	NameStopwordCoverage,
	NamePrepositionRate,
	NameAuxiliaryRate,
	NameToBeVerbRate,
	NameConjunctionRate,
	NameNormalizationRate,
	NamePronounRate,
	NameFreshness,
}

// Vector holds the content-based features of one document.
type Vector struct {
	WordCount         int     `json:"word_count"`
	TitleWordCount    int     `json:"title_word_count"`
	DocumentEntropy   float64 `json:"document_entropy"`
	Easiness          float64 `json:"easiness"`
	StopwordPresence  float64 `json:"fraction_stopword_presence"`
	StopwordCoverage  float64 `json:"fraction_stopword_coverage"`
	PrepositionRate   float64 `json:"preposition_rate"`
	AuxiliaryRate     float64 `json:"auxiliary_rate"`
	ToBeVerbRate      float64 `json:"tobe_verb_rate"`
	ConjunctionRate   float64 `json:"conjugate_rate"`
	NormalizationRate float64 `json:"normalization_rate"`
	PronounRate       float64 `json:"pronoun_rate"`
	// Freshness is nil when the document has no publication date.
	Freshness *int `json:"freshness,omitempty"`
}

// Map returns the vector as feature name to value. Freshness is present only
// when known.
func (v Vector) Map() map[string]float64 {
	m := map[string]float64{
		NameWordCount:         float64(v.WordCount),
		NameTitleWordCount:    float64(v.TitleWordCount),
		NameDocumentEntropy:   v.DocumentEntropy,
		NameEasiness:          v.Easiness,
		NameStopwordPresence:  v.StopwordPresence,
		NameStopwordCoverage:  v.StopwordCoverage,
		NamePrepositionRate:   v.PrepositionRate,
		NameAuxiliaryRate:     v.AuxiliaryRate,
		NameToBeVerbRate:      v.ToBeVerbRate,
		NameConjunctionRate:   v.ConjunctionRate,
		NameNormalizationRate: v.NormalizationRate,
		NamePronounRate:       v.PronounRate,
	}
	if v.Freshness != nil {
		m[NameFreshness] = float64(*v.Freshness)
	}
	return m
}
