package uktag

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEntries are "form lemma tag" triples of the fixture dictionary.
var testEntries = [][3]string{
	// animacy
	{"сонях", "сонях", "noun:m:v_naz"},
	{"сонях", "сонях", "noun:m:v_zna"},
	{"красень", "красень", "noun:m:v_naz:anim"},
	{"підприємство", "підприємство", "noun:n:v_naz"},
	{"підприємство", "підприємство", "noun:n:v_zna"},
	{"банкрут", "банкрут", "noun:m:v_naz:anim"},
	{"рослин", "рослина", "noun:p:v_rod"},
	{"людожерів", "людожер", "noun:p:v_rod:anim"},
	{"людожерів", "людожер", "noun:p:v_zna:anim"},

	// particles
	{"скажи", "сказати", "verb:impr:s:2:perf"},
	{"сказав", "сказати", "verb:past:m:perf"},
	{"бо", "бо", "conj:subord"},
	{"ось", "ось", "adv"},
	{"то", "то", "adv"},
	{"зробивши", "зробити", "advp:perf"},

	// по-
	{"по", "по", "prep"},
	{"український", "український", "adj:m:v_naz"},
	{"батьківському", "батьківський", "adj:m:v_dav"},
	{"батьківському", "батьківський", "adj:m:v_mis"},
	{"ському", "ський", "adj:m:v_dav"},

	// numerals
	{"го", "го", "part"},
	{"річному", "річний", "adj:m:v_dav"},
	{"річному", "річний", "adj:m:v_mis"},
	{"один", "один", "numr:m:v_naz"},
	{"два", "два", "numr:p:v_naz"},
	{"сто", "сто", "numr:p:v_naz"},
	{"двох", "два", "numr:p:v_rod"},
	{"сотні", "сотня", "noun:p:v_naz"},
	{"дві", "два", "numr:f:v_naz"},

	// prefixes and place names
	{"чемпіон", "чемпіон", "noun:m:v_naz:anim"},
	{"Європи", "Європа", "noun:f:v_rod"},
	{"Мехіко", "Мехіко", "noun:n:v_naz:nv"},
	{"Мехіко", "Мехіко", "noun:n:v_rod:nv"},
	{"сіті", "сіті", "noun:n:v_naz:nv"},

	// agreement
	{"Буш", "Буш", "noun:m:v_naz:anim"},
	{"молодший", "молодий", "adj:m:v_naz:compb"},
	{"кафе", "кафе", "noun:n:v_rod:nv"},
	{"кафе", "кафе", "noun:n:v_naz:nv"},
	{"бар", "бар", "noun:m:v_rod"},
	{"бістро", "бістро", "noun:n:v_naz:nv"},
	{"рівні", "рівень", "noun:p:v_naz"},
	{"максимум", "максимум", "noun:m:v_naz"},
	{"тихо", "тихо", "adv:rare"},
	{"яскраво", "яскраво", "adv"},
	{"червоний", "червоний", "adj:m:v_naz"},
	{"червоний", "червоний", "adj:m:v_zna"},
	{"зелений", "зелений", "adj:m::v_naz"},
}

func newTestDictionary() *Dictionary {
	d := NewDictionary()
	for _, e := range testEntries {
		d.Add(e[0], e[1], e[2])
	}
	return d
}

func newTestLexicon() *Lexicon {
	return NewLexicon(
		[]string{"екс", "віце"},
		[]string{"підприємство"},
		[]string{"красень"},
	)
}

func newTestTagger(opts ...Option) *Tagger {
	return New(newTestDictionary(), newTestLexicon(), opts...)
}

// readings renders tokens as "tag lemma" strings for compact assertions.
func readingsOf(tokens []AnalyzedToken) []string {
	out := make([]string, len(tokens))
	for i, at := range tokens {
		out[i] = at.POSTag() + " " + at.Lemma
	}
	return out
}

func TestAdditionalTagsNumbers(t *testing.T) {
	tg := newTestTagger()
	for _, word := range []string{"15", "-3", "+5,5%", "€10", "$3", "₴12,50", "1-2", "10–20", "25°С", "90°", "XIV", "XC", "IV", "L"} {
		t.Run(word, func(t *testing.T) {
			got, err := tg.AdditionalTags(word)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, "number", got[0].POSTag())
			assert.Equal(t, word, got[0].Lemma)
			assert.Equal(t, word, got[0].Token)
		})
	}
}

func TestAdditionalTagsDate(t *testing.T) {
	tg := newTestTagger()
	got, err := tg.AdditionalTags("17.10.2026")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "date", got[0].POSTag())
	assert.Equal(t, "17.10.2026", got[0].Lemma)
}

func TestAdditionalTagsNone(t *testing.T) {
	tg := newTestTagger()
	for _, word := range []string{"", "сонях", "1.2.2026", "XIIII", "-сонях", "сонях-", "сонях-красень-сонях", "a--b"} {
		got, err := tg.AdditionalTags(word)
		require.NoError(t, err, word)
		assert.Nil(t, got, word)
	}
}

func TestCompounds(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		// animacy fallback, right slave
		{"сонях-красень", []string{"noun:m:v_naz сонях-красень", "noun:m:v_zna сонях-красень"}},
		// animacy fallback, left master
		{"підприємство-банкрут", []string{"noun:n:v_naz підприємство-банкрут", "noun:n:v_zna підприємство-банкрут"}},
		// animacy fallback, left slave: accusative right part with a nominative left one
		{"красень-сонях", []string{"noun:m:v_naz красень-сонях", "noun:m:v_zna красень-сонях"}},
		// fixed particle keeps the left word as lemma
		{"скажи-бо", []string{"verb:impr:s:2:perf скажи"}},
		{"зробивши-бо", []string{"advp:perf зробивши"}},
		{"по-українськи", []string{"adv по-українськи"}},
		{"по-батьківському", []string{"adv по-батьківському"}},
		{"101-го", []string{"adj:m:v_rod 101-й", "adj:m:v_zna 101-й", "adj:n:v_rod 101-й"}},
		{"100-річному", []string{"adj:m:v_dav 100-річний", "adj:m:v_mis 100-річний"}},
		{"екс-чемпіон", []string{"noun:m:v_naz:anim екс-чемпіон"}},
		{"Екс-чемпіон", []string{"noun:m:v_naz:anim Екс-чемпіон"}},
		{"пів-Європи", []string{
			"noun:f:v_naz пів-Європи", "noun:f:v_rod пів-Європи", "noun:f:v_dav пів-Європи",
			"noun:f:v_zna пів-Європи", "noun:f:v_oru пів-Європи", "noun:f:v_mis пів-Європи",
		}},
		{"Мехіко-сіті", []string{"noun:n:nv Мехіко-сіті"}},
		{"один-два", []string{"numr:m:v_naz один-два"}},
		// identically tagged numerals
		{"сто-два", []string{"numr:p:v_naz сто-два"}},
		{"сто-дві", []string{"numr:p:v_naz сто-два"}},
		{"сотні-дві", []string{"noun:p:v_naz сотня-два"}},
		{"Буш-молодший", []string{"noun:m:v_naz:anim Буш-молодий"}},
		// non-declining left noun takes the case of the right one
		{"кафе-бар", []string{"noun:m:v_rod кафе-бар"}},
		{"кафе-бістро", []string{"noun:n:v_naz:nv кафе-бістро"}},
		{"рівні-максимум", []string{"noun:p:v_naz рівень-максимум"}},
		{"тихо-тихо", []string{"adv:rare тихо-тихо"}},
		{"яскраво-червоний", []string{"adj:m:v_naz яскраво-червоний", "adj:m:v_zna яскраво-червоний"}},
	}

	tg := newTestTagger()
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := tg.AdditionalTags(tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.want, readingsOf(got))
			for _, at := range got {
				assert.Equal(t, tt.word, at.Token)
			}
		})
	}
}

func TestCompoundsUnresolved(t *testing.T) {
	tests := []struct {
		word string
		why  string
	}{
		{"сто-двох", "two plural numerals in different cases"},
		{"по-ському", "по- word without a matching adjective stops the chain"},
		{"сказав-бо", "past tense does not take бо"},
		{"сонях-невідомий", "unknown right part"},
		{"рослин-людожерів", "animacy mismatch without master or slave"},
		{"яскраво-зелений", "malformed dictionary tag is ignored"},
	}

	tg := newTestTagger()
	for _, tt := range tests {
		got, err := tg.AdditionalTags(tt.word)
		require.NoError(t, err, tt.word)
		assert.Nil(t, got, "%s: %s", tt.word, tt.why)
	}
}

func TestParticleTakesPriority(t *testing.T) {
	tg := newTestTagger()

	got, err := tg.AdditionalTags("ось-то")
	require.NoError(t, err)
	// agreement would have produced "adv ось-то"
	assert.Equal(t, []string{"adv ось"}, readingsOf(got))
}

func TestAdditionalTagsIdempotent(t *testing.T) {
	tg := newTestTagger()
	for _, word := range []string{"сонях-красень", "101-го", "пів-Європи", "15"} {
		first, err := tg.AdditionalTags(word)
		require.NoError(t, err)
		second, err := tg.AdditionalTags(word)
		require.NoError(t, err)
		assert.Equal(t, first, second, word)
	}
}

func TestMasterForcesAnimacy(t *testing.T) {
	d := newTestDictionary()
	d.Add("компанія", "компанія", "noun:f:v_naz")
	d.Add("виробник", "виробник", "noun:m:v_naz:anim")
	lex := NewLexicon(nil, []string{"компанія"}, nil)

	got, err := New(d, lex).AdditionalTags("компанія-виробник")
	require.NoError(t, err)
	assert.Equal(t, []string{"noun:f:v_naz компанія-виробник"}, readingsOf(got))

	// without the master entry the pair does not agree
	got, err = New(d, NewLexicon(nil, nil, nil)).AdditionalTags("компанія-виробник")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAnimateMasterTakesAccusative(t *testing.T) {
	d := NewDictionary()
	d.Add("агента", "агент", "noun:m:v_zna:anim")
	d.Add("центру", "центр", "noun:m:v_rod")
	lex := NewLexicon(nil, []string{"агент"}, nil)

	// an animate accusative master pairs with a genitive right part
	got, err := New(d, lex).AdditionalTags("агента-центру")
	require.NoError(t, err)
	assert.Equal(t, []string{"noun:m:v_zna:anim агент-центр"}, readingsOf(got))

	got, err = New(d, NewLexicon(nil, nil, nil)).AdditionalTags("агента-центру")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDictionaryTagOrderKept(t *testing.T) {
	d := NewDictionary()
	d.Add("чемпіон", "чемпіон", "noun:m:v_naz:nv:anim")
	d.Add("Оклахома", "Оклахома", "noun:f:v_naz:anim:rare")
	d.Add("сіті", "сіті", "noun:n:v_naz:nv")
	tg := New(d, newTestLexicon())

	got, err := tg.AdditionalTags("екс-чемпіон")
	require.NoError(t, err)
	assert.Equal(t, []string{"noun:m:v_naz:nv:anim екс-чемпіон"}, readingsOf(got))

	got, err = tg.AdditionalTags("Оклахома-сіті")
	require.NoError(t, err)
	assert.Equal(t, []string{"noun:f:nv:anim:rare Оклахома-сіті"}, readingsOf(got))
}

func TestLeftSlave(t *testing.T) {
	d := newTestDictionary()
	d.Add("красеня", "красень", "noun:m:v_rod:anim")
	d.Add("соняха", "сонях", "noun:m:v_rod")
	d.Add("соняха", "сонях", "noun:m:v_zna")

	got, err := New(d, newTestLexicon()).AdditionalTags("красеня-соняха")
	require.NoError(t, err)
	assert.Equal(t, []string{"noun:m:v_rod красень-сонях"}, readingsOf(got))
}

func TestDebugSink(t *testing.T) {
	var unknown, tagged bytes.Buffer
	tg := newTestTagger(WithDebugSink(NewWriterSink(&unknown, &tagged)))

	for _, word := range []string{"сонях-красень", "рослин-людожерів", "сонях-невідомий", "сказав-бо", "15"} {
		_, err := tg.AdditionalTags(word)
		require.NoError(t, err)
	}

	assert.Equal(t, "рослин-людожерів inanim-anim\nрослин-людожерів\nсказав-бо\n", unknown.String())
	assert.Equal(t, "сонях-красень сонях-красень noun:m:v_naz|noun:m:v_zna\n", tagged.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestDebugSinkFailure(t *testing.T) {
	tg := newTestTagger(WithDebugSink(NewWriterSink(failingWriter{}, failingWriter{})))

	_, err := tg.AdditionalTags("сказав-бо")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	// numerals never touch the sink
	got, err := tg.AdditionalTags("42")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRuleNames(t *testing.T) {
	assert.Equal(t, []string{
		"right-particle", "right-lookup", "po-adverb", "numeral-left", "dash-prefix",
		"half-proper", "city-avenue", "agreement", "o-adjective",
	}, RuleNames())
}

func TestCompoundLowercaseLeft(t *testing.T) {
	tg := newTestTagger()
	got, err := tg.AdditionalTags("Сонях-красень")
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, at := range got {
		assert.Equal(t, "Сонях-красень", at.Token)
		assert.True(t, strings.HasSuffix(at.Lemma, "-красень"))
	}
}
