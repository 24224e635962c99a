package lexicon

// defaultStopwords is the English stopword list used for the presence and
// coverage rates.
var defaultStopwords = NewSet(
	"a", "about", "above", "across", "after", "afterwards", "again", "against",
	"all", "almost", "alone", "along", "already", "also", "although", "always",
	"am", "among", "amongst", "amoungst", "amount", "an", "and", "another",
	"any", "anyhow", "anyone", "anything", "anyway", "anywhere", "are",
	"around", "as", "at", "back", "be", "became", "because", "become",
	"becomes", "becoming", "been", "before", "beforehand", "behind", "being",
	"below", "beside", "besides", "between", "beyond", "bill", "both", "bottom",
	"but", "by", "call", "can", "cannot", "cant", "co", "con", "could",
	"couldnt", "cry", "de", "describe", "detail", "did", "do", "does", "doing",
	"don", "done", "down", "due", "during", "each", "eg", "eight", "either",
	"eleven", "else", "elsewhere", "empty", "enough", "etc", "even", "ever",
	"every", "everyone", "everything", "everywhere", "except", "few", "fifteen",
	"fifty", "fill", "find", "fire", "first", "five", "for", "former",
	"formerly", "forty", "found", "four", "from", "front", "full", "further",
	"get", "give", "go", "had", "has", "hasnt", "have", "having", "he", "hence",
	"her", "here", "hereafter", "hereby", "herein", "hereupon", "hers",
	"herself", "him", "himself", "his", "how", "however", "hundred", "i", "ie",
	"if", "in", "inc", "indeed", "interest", "into", "is", "it", "its",
	"itself", "just", "keep", "last", "latter", "latterly", "least", "less",
	"ltd", "made", "many", "may", "me", "meanwhile", "might", "mill", "mine",
	"more", "moreover", "most", "mostly", "move", "much", "must", "my",
	"myself", "name", "namely", "neither", "never", "nevertheless", "next",
	"nine", "no", "nobody", "none", "noone", "nor", "not", "nothing", "now",
	"nowhere", "of", "off", "often", "on", "once", "one", "only", "onto", "or",
	"other", "others", "otherwise", "our", "ours", "ourselves", "out", "over",
	"own", "part", "per", "perhaps", "please", "put", "rather", "re", "s",
	"same", "see", "seem", "seemed", "seeming", "seems", "serious", "several",
	"she", "should", "show", "side", "since", "sincere", "six", "sixty", "so",
	"some", "somehow", "someone", "something", "sometime", "sometimes",
	"somewhere", "still", "such", "system", "t", "take", "ten", "than", "that",
	"the", "their", "theirs", "them", "themselves", "then", "thence", "there",
	"thereafter", "thereby", "therefore", "therein", "thereupon", "these",
	"they", "thick", "thin", "third", "this", "those", "though", "three",
	"through", "throughout", "thru", "thus", "to", "together", "too", "top",
	"toward", "towards", "twelve", "twenty", "two", "un", "under", "until",
	"up", "upon", "us", "very", "via", "was", "we", "well", "were", "what",
	"whatever", "when", "whence", "whenever", "where", "whereafter", "whereas",
	"whereby", "wherein", "whereupon", "wherever", "whether", "which", "while",
	"whither", "who", "whoever", "whole", "whom", "whose", "why", "will",
	"with", "within", "without", "would", "yet", "you", "your", "yours",
	"yourself", "yourselves",
)

var (
	conjunctions = NewSet("and", "but", "or", "yet", "nor")

	toBeVerbs = NewSet("be", "being", "was", "were", "been", "are", "is")

	// Multi-word entries never match a single token.
	prepositions = NewSet(
		"aboard", "about", "above", "according to", "across from", "after", "against", "alongside",
		"alongside of", "along with", "amid", "among", "apart from", "around", "aside from", "at",
		"away from", "back of", "because of", "before", "behind", "below", "beneath", "beside",
		"besides", "between", "beyond", "but", "by means of", "concerning", "considering", "despite",
		"down", "down from", "during", "except", "except for", "excepting for", "from among",
		"from between", "from under", "in addition to", "in behalf of", "in front of", "in place of",
		"in regard to", "inside of", "inside", "in spite of", "instead of", "into", "like", "near to",
		"off", "on account of", "on behalf of", "onto", "on top of", "on", "opposite", "out of", "out",
		"outside", "outside of", "over to", "over", "owing to", "past", "prior to", "regarding",
		"round about", "round", "since", "subsequent to", "together", "with", "throughout", "through",
		"till", "toward", "under", "underneath", "until", "unto", "up", "up to", "upon", "within",
		"without", "across", "along", "by", "of", "in", "to", "near", "from",
	)

	auxiliaryVerbs = NewSet(
		"will", "shall", "cannot", "may", "need to", "would", "should", "could", "might", "must",
		"ought", "ought to", "can’t", "can",
	)

	pronouns = NewSet(
		"i", "me", "we", "us", "you", "he", "him", "she", "her", "it", "they", "them", "thou", "thee",
		"ye", "myself", "yourself", "himself", "herself", "itself", "ourselves", "yourselves",
		"themselves", "oneself", "my", "mine", "his", "hers", "yours", "ours", "theirs", "its", "our",
		"that", "their", "these", "this", "those",
	)

	normalizationSuffixes = []string{"tion", "ment", "ence", "ance"}
)

// DefaultStopwords returns the built-in stopword set.
func DefaultStopwords() Set { return defaultStopwords }

// Stopwords returns the built-in stopwords combined with additional.
// With no arguments it is equivalent to DefaultStopwords.
func Stopwords(additional ...string) Set {
	if len(additional) == 0 {
		return defaultStopwords
	}
	return defaultStopwords.Union(additional...)
}

// Conjunctions returns the coordinating conjunctions.
func Conjunctions() Set { return conjunctions }

// ToBeVerbs returns the forms of "to be".
func ToBeVerbs() Set { return toBeVerbs }

// AuxiliaryVerbs returns the modal and auxiliary verbs.
func AuxiliaryVerbs() Set { return auxiliaryVerbs }

// Prepositions returns the preposition list.
func Prepositions() Set { return prepositions }

// Pronouns returns the personal, reflexive and possessive pronouns.
func Pronouns() Set { return pronouns }

// NormalizationSuffixes returns a copy of the endings that mark a
// nominalization ("information", "management", ...).
func NormalizationSuffixes() []string {
	out := make([]string, len(normalizationSuffixes))
	copy(out, normalizationSuffixes)
	return out
}
