package uktag

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Dictionary is an in-memory WordTagger keyed by exact surface form.
// Populate it before sharing; Tag is safe for concurrent use afterwards.
type Dictionary struct {
	entries map[string][]TaggedWord
}

// NewDictionary returns an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string][]TaggedWord)}
}

// Add registers a reading of form.
func (d *Dictionary) Add(form, lemma, posTag string) {
	d.entries[form] = append(d.entries[form], TaggedWord{Lemma: lemma, PosTag: posTag})
}

// Tag returns a copy of the readings of word.
func (d *Dictionary) Tag(word string) []TaggedWord {
	return cloneTagged(d.entries[word])
}

// Len returns the number of distinct surface forms.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// CachedTagger memoizes lookups of another WordTagger in an LRU cache.
type CachedTagger struct {
	next  WordTagger
	cache *lru.Cache[string, []TaggedWord]
}

// NewCachedTagger wraps next with an LRU cache holding up to size words.
func NewCachedTagger(next WordTagger, size int) (*CachedTagger, error) {
	cache, err := lru.New[string, []TaggedWord](size)
	if err != nil {
		return nil, err
	}
	return &CachedTagger{next: next, cache: cache}, nil
}

// Tag returns the readings of word, consulting the cache first.
func (c *CachedTagger) Tag(word string) []TaggedWord {
	if tw, ok := c.cache.Get(word); ok {
		return cloneTagged(tw)
	}
	tw := c.next.Tag(word)
	c.cache.Add(word, cloneTagged(tw))
	return tw
}

func cloneTagged(tw []TaggedWord) []TaggedWord {
	if len(tw) == 0 {
		return nil
	}
	return append([]TaggedWord(nil), tw...)
}
