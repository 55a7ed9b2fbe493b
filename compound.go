package uktag

import (
	"strings"
	"unicode"
)

// compound is the state shared by the compound rules for one word.
type compound struct {
	word  string
	left  string
	right string

	leftTags  []reading
	rightTags []reading

	// note is an agreement diagnostic for the debug sink, such as
	// "anim-inanim".
	note string
}

// compoundRule is one step of the compound chain. A rule wins by returning
// tokens; a rule returning done without tokens ends the chain with no result.
type compoundRule struct {
	name  string
	apply func(t *Tagger, c *compound) (tokens []AnalyzedToken, done bool)
}

// compoundRules run in this order; the first rule producing tokens wins.
var compoundRules = []compoundRule{
	{"right-particle", (*Tagger).particleMatch},
	{"right-lookup", (*Tagger).lookupRight},
	{"po-adverb", (*Tagger).poAdverbMatch},
	{"numeral-left", (*Tagger).numeralMatch},
	{"dash-prefix", (*Tagger).dashPrefixMatch},
	{"half-proper", (*Tagger).halfProperMatch},
	{"city-avenue", (*Tagger).cityAvenueMatch},
	{"agreement", (*Tagger).agreementMatch},
	{"o-adjective", (*Tagger).oAdjectiveMatch},
}

// RuleNames returns the names of the compound rules in priority order.
func RuleNames() []string {
	names := make([]string, len(compoundRules))
	for i, r := range compoundRules {
		names[i] = r.name
	}
	return names
}

const (
	poPrefix       = "по"
	halfPrefix     = "пів-"
	ordinalSuffix  = "й"
	poSkySuffix    = "ськи"
	poLocSuffix    = "ому"
	poNazSuffix    = "ський"
	adverbialVowel = "о"
)

// guessCompound synthesizes readings for a word with exactly one inner
// hyphen.
func (t *Tagger) guessCompound(word string) ([]AnalyzedToken, error) {
	dash := strings.LastIndex(word, "-")
	if dash <= 0 || dash == len(word)-1 || strings.Index(word, "-") != dash {
		return nil, nil
	}

	c := &compound{
		word:  word,
		left:  word[:dash],
		right: word[dash+1:],
	}
	c.leftTags = t.readings(c.left)
	if lower := Lower(c.left); lower != c.left {
		c.leftTags = append(c.leftTags, t.parseTagged(c.left, t.words.Tag(lower))...)
	}

	tokens, rule := t.runRules(c)

	if c.note != "" {
		if err := t.reportUnknown(word + " " + c.note); err != nil {
			return nil, err
		}
	}
	if len(tokens) > 0 {
		t.metrics.observeResolved(rule)
		t.logger.Debug("compound tagged", "word", word, "rule", rule, "readings", len(tokens))
		return tokens, nil
	}

	t.metrics.observeUnresolved()
	if rule != "" {
		t.logger.Debug("compound rejected", "word", word, "rule", rule)
		return nil, nil
	}
	t.logger.Debug("compound unknown", "word", word)
	return nil, t.reportUnknown(word)
}

// runRules applies the chain and returns the winning tokens together with
// the name of the rule that ended it; the name is "" if every rule passed.
func (t *Tagger) runRules(c *compound) ([]AnalyzedToken, string) {
	for _, r := range compoundRules {
		tokens, done := r.apply(t, c)
		if len(tokens) > 0 || done {
			return tokens, r.name
		}
	}
	return nil, ""
}

// particleMatch handles fixed right-hand particles: "сказав-бо", "як-от".
func (t *Tagger) particleMatch(c *compound) ([]AnalyzedToken, bool) {
	p, ok := t.lex.Particle(c.right)
	if !ok || len(c.leftTags) == 0 {
		return nil, false
	}
	var out []AnalyzedToken
	for _, l := range c.leftTags {
		if p.Match(l.tag) {
			out = append(out, AnalyzedToken{Token: c.word, Tag: l.tag, Lemma: c.left})
		}
	}
	return out, false
}

// lookupRight fetches the right part's readings; nothing else can match
// without them. "по-українськи" is looked up as "український".
func (t *Tagger) lookupRight(c *compound) ([]AnalyzedToken, bool) {
	if Lower(c.left) == poPrefix && strings.HasSuffix(c.right, poSkySuffix) {
		c.right += ordinalSuffix
	}
	c.rightTags = t.readings(c.right)
	return nil, len(c.rightTags) == 0
}

// poAdverbMatch turns "по-батьківському" and "по-українськи" into adverbs.
// A "по-" word that fits neither ending gets no reading at all.
func (t *Tagger) poAdverbMatch(c *compound) ([]AnalyzedToken, bool) {
	if Lower(c.left) != poPrefix {
		return nil, false
	}

	var want Case
	switch {
	case strings.HasSuffix(c.right, poLocSuffix):
		want = CaseLocative
	case strings.HasSuffix(c.right, poNazSuffix):
		want = CaseNominative
	default:
		return nil, true
	}

	for _, r := range c.rightTags {
		if r.tag.Category == CatAdjective && r.tag.Gender == GenderMasculine && r.tag.Case == want {
			return []AnalyzedToken{{Token: c.word, Tag: Tag{Category: CatAdverb}, Lemma: c.word}}, true
		}
	}
	return nil, true
}

// numeralMatch handles "101-го" and "100-річному".
func (t *Tagger) numeralMatch(c *compound) ([]AnalyzedToken, bool) {
	if !IsNumber(c.left) {
		return nil, false
	}

	var out []AnalyzedToken
	if forms, ok := t.lex.OrdinalEnding(c.right); ok {
		for _, gc := range forms {
			tag := Tag{Category: CatAdjective, Gender: gc.Gender, Case: gc.Case}
			out = append(out, AnalyzedToken{Token: c.word, Tag: tag, Lemma: c.left + "-" + ordinalSuffix})
		}
		return out, false
	}

	for _, r := range c.rightTags {
		if r.tag.Adjectival() {
			out = append(out, AnalyzedToken{Token: c.word, Tag: r.tag, Lemma: c.left + "-" + r.lemma})
		}
	}
	return out, false
}

// dashPrefixMatch handles "екс-чемпіон", "віце-президента".
func (t *Tagger) dashPrefixMatch(c *compound) ([]AnalyzedToken, bool) {
	if !t.lex.IsDashPrefix(c.left) {
		return nil, false
	}
	var out []AnalyzedToken
	for _, r := range c.rightTags {
		if r.tag.Is(CatNoun) {
			out = append(out, AnalyzedToken{Token: c.word, Tag: r.tag, Lemma: c.left + "-" + r.lemma})
		}
	}
	return out, false
}

// halfProperMatch handles "пів-Європи": the genitive singular of the right
// noun yields the whole word in every case but the vocative.
func (t *Tagger) halfProperMatch(c *compound) ([]AnalyzedToken, bool) {
	if r, ok := runeAfter(c.word, halfPrefix); !ok || !unicode.IsUpper(r) {
		return nil, false
	}

	var out []AnalyzedToken
	for _, r := range c.rightTags {
		tag := r.tag
		if !tag.Is(CatNoun) || tag.Case != CaseGenitive || tag.Gender == GenderNone || tag.Plural() {
			continue
		}
		for _, cs := range Cases {
			if cs == CaseVocative {
				continue
			}
			out = append(out, AnalyzedToken{Token: c.word, Tag: tag.WithCase(cs), Lemma: c.word})
		}
	}
	return out, false
}

// cityAvenueMatch handles place names like "Мехіко-сіті": an undeclined
// noun built from the nominative of the left part.
func (t *Tagger) cityAvenueMatch(c *compound) ([]AnalyzedToken, bool) {
	if !startsUpper(c.left) || !t.lex.IsCityAvenue(c.right) || len(c.leftTags) == 0 {
		return nil, false
	}

	var out []AnalyzedToken
	for _, l := range c.leftTags {
		if !l.tag.Is(CatNoun) || l.tag.Gender == GenderNone || l.tag.Case != CaseNominative {
			continue
		}
		out = append(out, AnalyzedToken{Token: c.word, Tag: l.tag.undeclined(), Lemma: c.word})
	}
	return out, false
}

// agreementMatch runs the general agreement resolver.
func (t *Tagger) agreementMatch(c *compound) ([]AnalyzedToken, bool) {
	if len(c.leftTags) == 0 {
		return nil, false
	}
	return t.tagMatch(c), false
}

// oAdjectiveMatch handles "яскраво-червоний": an adverb-like left part
// followed by an adjective.
func (t *Tagger) oAdjectiveMatch(c *compound) ([]AnalyzedToken, bool) {
	if !strings.HasSuffix(c.left, adverbialVowel) {
		return nil, false
	}
	var out []AnalyzedToken
	for _, r := range c.rightTags {
		if r.tag.Adjectival() {
			out = append(out, AnalyzedToken{Token: c.word, Tag: r.tag, Lemma: c.left + "-" + r.lemma})
		}
	}
	return out, false
}
