package uktag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryTagReturnsCopy(t *testing.T) {
	d := NewDictionary()
	d.Add("бар", "бар", "noun:m:v_naz")

	got := d.Tag("бар")
	got[0].Lemma = "змінено"
	assert.Equal(t, "бар", d.Tag("бар")[0].Lemma)
	assert.Nil(t, d.Tag("невідомо"))
}

func TestCachedTagger(t *testing.T) {
	calls := map[string]int{}
	next := WordTaggerFunc(func(word string) []TaggedWord {
		calls[word]++
		if word == "бар" {
			return []TaggedWord{{Lemma: "бар", PosTag: "noun:m:v_naz"}}
		}
		return nil
	})

	c, err := NewCachedTagger(next, 2)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got := c.Tag("бар")
		require.Len(t, got, 1)
		got[0].PosTag = "змінено"
	}
	assert.Equal(t, 1, calls["бар"])
	assert.Equal(t, "noun:m:v_naz", c.Tag("бар")[0].PosTag)

	// misses are cached too
	assert.Empty(t, c.Tag("х"))
	assert.Empty(t, c.Tag("х"))
	assert.Equal(t, 1, calls["х"])

	// a third word evicts the least recently used one
	c.Tag("у")
	c.Tag("бар")
	assert.Equal(t, 2, calls["бар"])
}

func TestNewCachedTaggerInvalidSize(t *testing.T) {
	_, err := NewCachedTagger(NewDictionary(), 0)
	assert.Error(t, err)
}

func TestTaggerWithCache(t *testing.T) {
	c, err := NewCachedTagger(newTestDictionary(), 64)
	require.NoError(t, err)

	got, err := New(c, newTestLexicon()).AdditionalTags("сонях-красень")
	require.NoError(t, err)
	assert.Equal(t, []string{"noun:m:v_naz сонях-красень", "noun:m:v_zna сонях-красень"}, readingsOf(got))
}
