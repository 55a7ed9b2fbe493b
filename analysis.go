package uktag

// TaggedWord is a single dictionary reading of a surface form.
type TaggedWord struct {
	// Lemma is the dictionary base form.
	Lemma string
	// PosTag is the raw tag string as stored in the dictionary.
	PosTag string
}

// WordTagger looks words up in the dictionary. Implementations return an
// empty slice for unknown words and must not retain the returned slice.
type WordTagger interface {
	Tag(word string) []TaggedWord
}

// WordTaggerFunc adapts a function to the WordTagger interface.
type WordTaggerFunc func(word string) []TaggedWord

// Tag calls f(word).
func (f WordTaggerFunc) Tag(word string) []TaggedWord { return f(word) }

// AnalyzedToken is one candidate reading of a word.
type AnalyzedToken struct {
	// Token is the surface word exactly as it was passed in.
	Token string
	// Tag is the structured part-of-speech tag.
	Tag Tag
	// Lemma is the base form; for synthesized compounds it may join the
	// component lemmas with a hyphen.
	Lemma string
}

// POSTag returns the serialized tag.
func (a AnalyzedToken) POSTag() string {
	return a.Tag.String()
}

// reading is a dictionary reading whose tag string has been parsed.
type reading struct {
	token string
	lemma string
	tag   Tag
}
