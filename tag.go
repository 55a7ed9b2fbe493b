package uktag

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedTag is returned by ParseTag for tag strings that do not fit
// the tag grammar.
var ErrMalformedTag = errors.New("malformed tag")

// Category is the part-of-speech segment that opens every tag. The
// constants below are the categories the rules look at; any other
// non-empty segment is kept as is.
type Category string

const (
	CatNoun        Category = "noun"
	CatAdjective   Category = "adj"
	CatAdjPart     Category = "adjp"
	CatNumeral     Category = "numr"
	CatVerb        Category = "verb"
	CatAdverb      Category = "adv"
	CatAdvPart     Category = "advp"
	CatExclamation Category = "excl"
	CatParticle    Category = "part"
	CatPredicative Category = "predic"
	CatInsert      Category = "insert"
	CatConjunction Category = "conj"
	CatPreposition Category = "prep"
	CatPronoun     Category = "pron"
	CatNumber      Category = "number"
	CatDate        Category = "date"
)

// declinable categories carry a gender:case pair.
func (c Category) declinable() bool {
	switch c {
	case CatNoun, CatAdjective, CatAdjPart, CatNumeral:
		return true
	}
	return false
}

// Gender is the gender/number segment. GenderPlural marks plural forms,
// which carry no gender.
type Gender string

const (
	GenderNone      Gender = ""
	GenderMasculine Gender = "m"
	GenderFeminine  Gender = "f"
	GenderNeuter    Gender = "n"
	GenderPlural    Gender = "p"
)

func parseGender(s string) (Gender, bool) {
	switch g := Gender(s); g {
	case GenderMasculine, GenderFeminine, GenderNeuter, GenderPlural:
		return g, true
	}
	return GenderNone, false
}

// Plural reports whether g is the plural marker.
func (g Gender) Plural() bool { return g == GenderPlural }

// Case is one of the seven grammatical cases.
type Case string

const (
	CaseNone         Case = ""
	CaseNominative   Case = "v_naz"
	CaseGenitive     Case = "v_rod"
	CaseDative       Case = "v_dav"
	CaseAccusative   Case = "v_zna"
	CaseInstrumental Case = "v_oru"
	CaseLocative     Case = "v_mis"
	CaseVocative     Case = "v_kly"
)

// Cases lists the grammatical cases in traditional order.
var Cases = []Case{
	CaseNominative, CaseGenitive, CaseDative, CaseAccusative,
	CaseInstrumental, CaseLocative, CaseVocative,
}

var caseNames = map[Case]string{
	CaseNominative:   "називний",
	CaseGenitive:     "родовий",
	CaseDative:       "давальний",
	CaseAccusative:   "знахідний",
	CaseInstrumental: "орудний",
	CaseLocative:     "місцевий",
	CaseVocative:     "кличний",
}

func parseCase(s string) (Case, bool) {
	c := Case(s)
	_, ok := caseNames[c]
	return c, ok
}

// Name returns the Ukrainian name of the case, or "" for CaseNone.
func (c Case) Name() string {
	return caseNames[c]
}

// Code returns the three-letter case code ("naz", "rod", ...).
func (c Case) Code() string {
	return strings.TrimPrefix(string(c), "v_")
}

// Qualifier is a bit set of the usage qualifiers a tag may carry.
type Qualifier uint8

const (
	QualInformal Qualifier = 1 << iota // v-u
	QualNoPlural                       // np
	QualNoSingular                     // ns
	QualBad                            // bad
	QualSlang                          // slang
	QualRare                           // rare
)

var qualifierOrder = []struct {
	q    Qualifier
	text string
}{
	{QualInformal, "v-u"},
	{QualNoPlural, "np"},
	{QualNoSingular, "ns"},
	{QualBad, "bad"},
	{QualSlang, "slang"},
	{QualRare, "rare"},
}

// Qualifiers lists the known qualifiers in serialization order.
var Qualifiers = []Qualifier{QualInformal, QualNoPlural, QualNoSingular, QualBad, QualSlang, QualRare}

// String returns the tag segments of q joined with ":".
func (q Qualifier) String() string {
	var segs []string
	for _, qo := range qualifierOrder {
		if q.Has(qo.q) {
			segs = append(segs, qo.text)
		}
	}
	return strings.Join(segs, ":")
}

func parseQualifier(s string) (Qualifier, bool) {
	for _, qo := range qualifierOrder {
		if qo.text == s {
			return qo.q, true
		}
	}
	return 0, false
}

// Has reports whether all qualifiers in o are set in q.
func (q Qualifier) Has(o Qualifier) bool { return q&o == o }

const (
	segAnim  = "anim"
	segNv    = "nv"
	segCompB = "compb"
)

type segKind uint8

const (
	kindMarker segKind = iota
	kindAnim
	kindNv
	kindCompB
	kindQualifier
)

// segment records where a flag, qualifier or marker stood in the parsed
// tag string.
type segment struct {
	kind segKind
	qual Qualifier
}

// Tag is the structured form of a part-of-speech tag such as
// "noun:m:v_naz:anim" or "verb:rev:impr".
type Tag struct {
	Category Category
	Gender   Gender
	Case     Case

	// Markers holds the remaining segments in their original order
	// (verb forms, pronoun markers, persons and the like).
	Markers []string

	Animate     bool
	NotDeclined bool
	CompB       bool
	Qualifiers  Qualifier

	// layout is the order of the segments after gender and case as they
	// were parsed. It is shared between copies and never modified.
	layout []segment
}

// ParseTag parses a colon-separated tag string. Any non-empty first
// segment is accepted as the category; gender and case are only
// recognized after a declinable one.
func ParseTag(s string) (Tag, error) {
	if s == "" {
		return Tag{}, fmt.Errorf("%w: empty", ErrMalformedTag)
	}
	segs := strings.Split(s, ":")
	if segs[0] == "" {
		return Tag{}, fmt.Errorf("%w: %q: empty category", ErrMalformedTag, s)
	}
	t := Tag{Category: Category(segs[0])}

	rest := segs[1:]
	if t.Category.declinable() && len(rest) > 0 {
		if g, ok := parseGender(rest[0]); ok {
			t.Gender = g
			rest = rest[1:]
			if len(rest) > 0 {
				if c, ok := parseCase(rest[0]); ok {
					t.Case = c
					rest = rest[1:]
				}
			}
		}
	}

	for _, seg := range rest {
		switch seg {
		case "":
			return Tag{}, fmt.Errorf("%w: %q: empty segment", ErrMalformedTag, s)
		case segAnim:
			t.Animate = true
			t.layout = append(t.layout, segment{kind: kindAnim})
		case segNv:
			t.NotDeclined = true
			t.layout = append(t.layout, segment{kind: kindNv})
		case segCompB:
			t.CompB = true
			t.layout = append(t.layout, segment{kind: kindCompB})
		default:
			if q, ok := parseQualifier(seg); ok {
				t.Qualifiers |= q
				t.layout = append(t.layout, segment{kind: kindQualifier, qual: q})
				continue
			}
			if _, ok := parseCase(seg); ok {
				return Tag{}, fmt.Errorf("%w: %q: case without gender", ErrMalformedTag, s)
			}
			t.Markers = append(t.Markers, seg)
			t.layout = append(t.layout, segment{kind: kindMarker})
		}
	}
	return t, nil
}

// MustParseTag is like ParseTag but panics on error. It is meant for
// literal tags in tables and tests.
func MustParseTag(s string) Tag {
	t, err := ParseTag(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String serializes the tag. Category, gender and case come first; the
// other segments keep the order they were parsed in. Segments the parsed
// string did not have follow in canonical order: markers, anim, compb,
// nv, qualifiers.
func (t Tag) String() string {
	var b strings.Builder
	b.WriteString(string(t.Category))
	if t.Gender != GenderNone {
		b.WriteString(":" + string(t.Gender))
	}
	if t.Case != CaseNone {
		b.WriteString(":" + string(t.Case))
	}

	var (
		markers         = t.Markers
		anim, compB, nv bool
		written         Qualifier
	)
	for _, seg := range t.layout {
		switch seg.kind {
		case kindMarker:
			if len(markers) > 0 {
				b.WriteString(":" + markers[0])
				markers = markers[1:]
			}
		case kindAnim:
			if t.Animate && !anim {
				b.WriteString(":" + segAnim)
				anim = true
			}
		case kindCompB:
			if t.CompB && !compB {
				b.WriteString(":" + segCompB)
				compB = true
			}
		case kindNv:
			if t.NotDeclined && !nv {
				b.WriteString(":" + segNv)
				nv = true
			}
		case kindQualifier:
			if t.Qualifiers.Has(seg.qual) && !written.Has(seg.qual) {
				b.WriteString(":" + seg.qual.String())
				written |= seg.qual
			}
		}
	}

	for _, m := range markers {
		b.WriteString(":" + m)
	}
	if t.Animate && !anim {
		b.WriteString(":" + segAnim)
	}
	if t.CompB && !compB {
		b.WriteString(":" + segCompB)
	}
	if t.NotDeclined && !nv {
		b.WriteString(":" + segNv)
	}
	if rest := t.Qualifiers &^ written; rest != 0 {
		b.WriteString(":" + rest.String())
	}
	return b.String()
}

// Equal reports whether t and o carry the same fields. Segment order is
// not compared.
func (t Tag) Equal(o Tag) bool {
	if t.Category != o.Category || t.Gender != o.Gender || t.Case != o.Case ||
		t.Animate != o.Animate || t.NotDeclined != o.NotDeclined ||
		t.CompB != o.CompB || t.Qualifiers != o.Qualifiers ||
		len(t.Markers) != len(o.Markers) {
		return false
	}
	for i := range t.Markers {
		if t.Markers[i] != o.Markers[i] {
			return false
		}
	}
	return true
}

// Is reports whether the tag's category is one of cats.
func (t Tag) Is(cats ...Category) bool {
	for _, c := range cats {
		if t.Category == c {
			return true
		}
	}
	return false
}

// Adjectival reports whether the tag is an adjective or adjectival participle.
func (t Tag) Adjectival() bool {
	return t.Is(CatAdjective, CatAdjPart)
}

// HasGenderCase reports whether the tag carries a full gender:case pair.
func (t Tag) HasGenderCase() bool {
	return t.Gender != GenderNone && t.Case != CaseNone
}

// Plural reports whether the tag is a plural form.
func (t Tag) Plural() bool {
	return t.Gender.Plural()
}

// Number returns "p" for plural forms, "s" for singular ones and "" when
// the tag has no gender:case pair.
func (t Tag) Number() string {
	if !t.Category.declinable() || !t.HasGenderCase() {
		return ""
	}
	if t.Plural() {
		return "p"
	}
	return "s"
}

// Pronominal reports whether the tag is a pronoun or carries a pronoun
// marker such as "&pron".
func (t Tag) Pronominal() bool {
	if t.Category == CatPronoun {
		return true
	}
	for _, m := range t.Markers {
		if strings.Contains(m, "pron") {
			return true
		}
	}
	return false
}

// VerbForm returns the first verb marker after an optional "rev"
// (reflexive) marker, e.g. "impr" for "verb:rev:impr". It returns "" for
// non-verbs.
func (t Tag) VerbForm() string {
	if t.Category != CatVerb || len(t.Markers) == 0 {
		return ""
	}
	if t.Markers[0] == "rev" {
		if len(t.Markers) > 1 {
			return t.Markers[1]
		}
		return ""
	}
	return t.Markers[0]
}

// WithCase returns a copy of t with the case replaced.
func (t Tag) WithCase(c Case) Tag {
	t.Markers = cloneMarkers(t.Markers)
	t.Case = c
	return t
}

// undeclined returns a copy of t marked as not declined, with nv standing
// in the case position: "noun:m:v_naz:anim" becomes "noun:m:nv:anim".
func (t Tag) undeclined() Tag {
	t.Markers = cloneMarkers(t.Markers)
	t.Case = CaseNone
	t.NotDeclined = true
	layout := make([]segment, 0, len(t.layout)+1)
	layout = append(layout, segment{kind: kindNv})
	for _, seg := range t.layout {
		if seg.kind != kindNv {
			layout = append(layout, seg)
		}
	}
	t.layout = layout
	return t
}

// WithAnimate returns a copy of t with the animacy flag set to anim.
func (t Tag) WithAnimate(anim bool) Tag {
	t.Markers = cloneMarkers(t.Markers)
	t.Animate = anim
	return t
}

// normalized strips the flags that take no part in agreement: nv, compb
// and the qualifiers. The stripped nv flag and qualifiers are returned
// separately.
func (t Tag) normalized() (Tag, bool, Qualifier) {
	nv, quals := t.NotDeclined, t.Qualifiers
	t.Markers = cloneMarkers(t.Markers)
	t.NotDeclined = false
	t.CompB = false
	t.Qualifiers = 0
	return t, nv, quals
}

// genderCase returns the "g:v_xxx" signature of declinable tags.
func (t Tag) genderCase() (string, bool) {
	if !t.Category.declinable() || !t.HasGenderCase() {
		return "", false
	}
	return string(t.Gender) + ":" + string(t.Case), true
}

func cloneMarkers(m []string) []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m...)
}
