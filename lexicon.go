package uktag

// ParticlePattern describes which left-hand readings a fixed right-hand
// particle (as in "сказав-бо") can attach to.
type ParticlePattern struct {
	// Categories lists categories accepted as is.
	Categories []Category
	// VerbForms lists accepted verb forms ("impr", "futr", ...), matched
	// against Tag.VerbForm.
	VerbForms []string
	// Pronouns accepts any pronominal reading.
	Pronouns bool
}

// Match reports whether t is an acceptable left reading.
func (p ParticlePattern) Match(t Tag) bool {
	if p.Pronouns && t.Pronominal() {
		return true
	}
	if t.Is(p.Categories...) {
		return true
	}
	if vf := t.VerbForm(); vf != "" {
		for _, f := range p.VerbForms {
			if vf == f {
				return true
			}
		}
	}
	return false
}

// GenderCase is a gender:case pair licensed by an ordinal ending.
type GenderCase struct {
	Gender Gender
	Case   Case
}

// Lexicon holds the word lists and fixed tables the compound rules consult.
// It is built once and never modified afterwards.
type Lexicon struct {
	// dashPrefixes are left parts that attach to any noun ("екс-", "віце-").
	dashPrefixes map[string]struct{}
	// leftMasters are nouns that impose their animacy on the right part.
	leftMasters map[string]struct{}
	// slaves are nouns whose animacy yields to the other part.
	slaves map[string]struct{}
	// cityAvenue are right parts forming undeclined place names.
	cityAvenue map[string]struct{}
	// particles maps right-hand particles to their left patterns.
	particles map[string]ParticlePattern
	// ordinalEndings maps endings of "101-го" style numerals to the forms
	// they license.
	ordinalEndings map[string][]GenderCase
}

var defaultCityAvenue = []string{"сіті", "авеню", "стріт", "штрассе"}

var defaultParticles = map[string]ParticlePattern{
	"бо": {
		Categories: []Category{CatNoun, CatAdverb, CatAdvPart, CatExclamation, CatParticle, CatPredicative},
		VerbForms:  []string{"impr"},
		Pronouns:   true,
	},
	"но": {
		Categories: []Category{CatExclamation},
		VerbForms:  []string{"impr", "futr"},
	},
	"от": {
		Categories: []Category{CatAdverb, CatAdvPart, CatParticle},
		Pronouns:   true,
	},
	"то": {
		Categories: []Category{CatNoun, CatAdverb, CatAdvPart, CatParticle, CatConjunction},
		Pronouns:   true,
	},
	"таки": {
		Categories: []Category{CatNoun, CatParticle, CatPredicative, CatInsert},
		VerbForms:  []string{"futr", "past", "pres"},
		Pronouns:   true,
	},
}

var defaultOrdinalEndings = map[string][]GenderCase{
	"й":  {{GenderMasculine, CaseNominative}, {GenderMasculine, CaseAccusative}},
	"го": {{GenderMasculine, CaseGenitive}, {GenderMasculine, CaseAccusative}, {GenderNeuter, CaseGenitive}},
	// TODO: the form depends on the last digit of the numeral.
	"му": {
		{GenderMasculine, CaseDative}, {GenderMasculine, CaseLocative},
		{GenderNeuter, CaseDative}, {GenderNeuter, CaseLocative},
		{GenderFeminine, CaseAccusative},
	},
	"те": {{GenderNeuter, CaseNominative}, {GenderNeuter, CaseAccusative}},
	"ті": {{GenderPlural, CaseNominative}, {GenderPlural, CaseAccusative}},
}

// NewLexicon builds a Lexicon from the three loadable word lists; the
// fixed tables are filled in from built-in defaults.
func NewLexicon(dashPrefixes, leftMasters, slaves []string) *Lexicon {
	lex := &Lexicon{
		dashPrefixes:   toSet(dashPrefixes),
		leftMasters:    toSet(leftMasters),
		slaves:         toSet(slaves),
		cityAvenue:     toSet(defaultCityAvenue),
		particles:      make(map[string]ParticlePattern, len(defaultParticles)),
		ordinalEndings: make(map[string][]GenderCase, len(defaultOrdinalEndings)),
	}
	for k, v := range defaultParticles {
		lex.particles[k] = v
	}
	for k, v := range defaultOrdinalEndings {
		lex.ordinalEndings[k] = v
	}
	return lex
}

// IsDashPrefix reports whether word, as written or lower-cased, is a
// dash prefix.
func (lex *Lexicon) IsDashPrefix(word string) bool {
	if _, ok := lex.dashPrefixes[word]; ok {
		return true
	}
	_, ok := lex.dashPrefixes[Lower(word)]
	return ok
}

// IsLeftMaster reports whether lemma dictates animacy to its right part.
func (lex *Lexicon) IsLeftMaster(lemma string) bool {
	_, ok := lex.leftMasters[lemma]
	return ok
}

// IsSlave reports whether lemma yields its animacy to the other part.
func (lex *Lexicon) IsSlave(lemma string) bool {
	_, ok := lex.slaves[lemma]
	return ok
}

// IsCityAvenue reports whether word forms undeclined place names.
func (lex *Lexicon) IsCityAvenue(word string) bool {
	_, ok := lex.cityAvenue[word]
	return ok
}

// Particle returns the left pattern of a right-hand particle.
func (lex *Lexicon) Particle(word string) (ParticlePattern, bool) {
	p, ok := lex.particles[word]
	return p, ok
}

// OrdinalEnding returns the forms licensed by an ordinal ending.
func (lex *Lexicon) OrdinalEnding(word string) ([]GenderCase, bool) {
	gc, ok := lex.ordinalEndings[word]
	return gc, ok
}

// Sizes returns the number of entries in each loaded word list.
func (lex *Lexicon) Sizes() (dashPrefixes, leftMasters, slaves int) {
	return len(lex.dashPrefixes), len(lex.leftMasters), len(lex.slaves)
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
