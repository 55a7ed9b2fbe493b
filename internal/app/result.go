package app

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/uktag"
)

// Reading is one synthesized reading in API and CLI output.
type Reading struct {
	Lemma string `json:"lemma" yaml:"lemma"`
	Tag   string `json:"tag"   yaml:"tag"`
}

// WordResult holds the additional readings of one word.
type WordResult struct {
	Word     string    `json:"word"     yaml:"word"`
	Readings []Reading `json:"readings" yaml:"readings"`
}

// TagWord computes the additional readings of word.
func TagWord(t *uktag.Tagger, word string) (WordResult, error) {
	tokens, err := t.AdditionalTags(word)
	if err != nil {
		return WordResult{}, err
	}
	res := WordResult{Word: word, Readings: make([]Reading, 0, len(tokens))}
	for _, at := range tokens {
		res.Readings = append(res.Readings, Reading{Lemma: at.Lemma, Tag: at.POSTag()})
	}
	return res, nil
}

// TagWords tags words concurrently and returns the results in input order.
// The first error cancels the remaining work.
func TagWords(ctx context.Context, t *uktag.Tagger, words []string) ([]WordResult, error) {
	results := make([]WordResult, len(words))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, w := range words {
		i, w := i, w
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := TagWord(t, w)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// TagInfo is the structured view of a tag string.
type TagInfo struct {
	Tag        string   `json:"tag"                  yaml:"tag"`
	Category   string   `json:"category"             yaml:"category"`
	Gender     string   `json:"gender,omitempty"     yaml:"gender,omitempty"`
	Case       string   `json:"case,omitempty"       yaml:"case,omitempty"`
	CaseName   string   `json:"case_name,omitempty"  yaml:"case_name,omitempty"`
	Markers    []string `json:"markers,omitempty"    yaml:"markers,omitempty"`
	Animate    bool     `json:"anim"                 yaml:"anim"`
	NotDecl    bool     `json:"nv"                   yaml:"nv"`
	CompB      bool     `json:"compb"                yaml:"compb"`
	Qualifiers []string `json:"qualifiers,omitempty" yaml:"qualifiers,omitempty"`
}

// DescribeTag parses s and returns its structured view.
func DescribeTag(s string) (TagInfo, error) {
	t, err := uktag.ParseTag(s)
	if err != nil {
		return TagInfo{}, err
	}
	info := TagInfo{
		Tag:      t.String(),
		Category: string(t.Category),
		Gender:   string(t.Gender),
		Case:     string(t.Case),
		CaseName: t.Case.Name(),
		Markers:  t.Markers,
		Animate:  t.Animate,
		NotDecl:  t.NotDeclined,
		CompB:    t.CompB,
	}
	for _, q := range uktag.Qualifiers {
		if t.Qualifiers.Has(q) {
			info.Qualifiers = append(info.Qualifiers, q.String())
		}
	}
	return info, nil
}
