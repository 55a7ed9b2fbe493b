// Package uktag infers part-of-speech readings for Ukrainian words the
// dictionary cannot tag on its own: numerals, dates and hyphenated
// compounds such as "сонях-красень", "по-українськи" or "101-го".
//
// Compound readings are synthesized from the dictionary readings of both
// parts by an ordered list of rules, the last general one checking case,
// gender, number and animacy agreement.
package uktag

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Tagger computes additional readings. It holds no mutable state and is
// safe for concurrent use as long as its WordTagger and DebugSink are.
type Tagger struct {
	words   WordTagger
	lex     *Lexicon
	sink    DebugSink
	metrics *Metrics
	logger  *slog.Logger
}

// Option configures a Tagger.
type Option func(*Tagger)

// WithDebugSink makes the tagger report unknown and tagged compounds.
func WithDebugSink(s DebugSink) Option {
	return func(t *Tagger) {
		if s != nil {
			t.sink = s
		}
	}
}

// WithMetrics records resolutions in m.
func WithMetrics(m *Metrics) Option {
	return func(t *Tagger) { t.metrics = m }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tagger) {
		if l != nil {
			t.logger = l
		}
	}
}

// New returns a Tagger looking component words up in words.
func New(words WordTagger, lex *Lexicon, opts ...Option) *Tagger {
	t := &Tagger{
		words:  words,
		lex:    lex,
		sink:   nopSink{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AdditionalTags returns readings for word beyond what the dictionary
// holds, or nil when there are none. Every returned token carries word
// as its Token. An error is only possible when a debug sink is set and
// fails to write.
func (t *Tagger) AdditionalTags(word string) ([]AnalyzedToken, error) {
	if IsNumber(word) {
		t.metrics.observeResolved("number")
		return []AnalyzedToken{{Token: word, Tag: Tag{Category: CatNumber}, Lemma: word}}, nil
	}

	if IsDate(word) {
		t.metrics.observeResolved("date")
		return []AnalyzedToken{{Token: word, Tag: Tag{Category: CatDate}, Lemma: word}}, nil
	}

	if strings.Contains(word, "-") {
		tokens, err := t.guessCompound(word)
		if err != nil {
			return nil, err
		}
		if err := t.sink.AppendTagged(tokens); err != nil {
			return nil, err
		}
		return tokens, nil
	}

	return nil, nil
}

// readings looks word up and parses the tag strings. Entries with
// malformed tags are dropped.
func (t *Tagger) readings(word string) []reading {
	return t.parseTagged(word, t.words.Tag(word))
}

func (t *Tagger) parseTagged(word string, tw []TaggedWord) []reading {
	out := make([]reading, 0, len(tw))
	for _, w := range tw {
		tag, err := ParseTag(w.PosTag)
		if err != nil {
			t.logger.Debug("skip dictionary reading", "word", word, "lemma", w.Lemma, "error", err)
			continue
		}
		out = append(out, reading{token: word, lemma: w.Lemma, tag: tag})
	}
	return out
}

// reportUnknown hands word to the debug sink.
func (t *Tagger) reportUnknown(word string) error {
	if err := t.sink.AppendUnknown(word); err != nil {
		return fmt.Errorf("report %q: %w", word, err)
	}
	return nil
}
