// Package app assembles a ready-to-use tagger from configuration and
// holds the pieces shared by the server and the command-line tool.
package app

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/uktag"
	"github.com/cours-de-latin/uktag/internal/config"
)

// Engine is a configured tagger together with the resources it owns.
type Engine struct {
	Tagger *uktag.Tagger

	dict *uktag.Dictionary
	sink *uktag.FileSink
}

// NewEngine loads the dictionary and the word lists and builds a tagger.
// Metrics are registered with reg when it is not nil. The debug sink is
// opened when cfg.Debug.Compounds is set; Close releases it.
func NewEngine(cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*Engine, error) {
	var (
		dict *uktag.Dictionary
		lex  *uktag.Lexicon
		g    errgroup.Group
	)
	g.Go(func() error {
		var err error
		dict, err = uktag.LoadDictionary(cfg.Data.DictionaryPath())
		return err
	})
	g.Go(func() error {
		var err error
		lex, err = uktag.LoadLexicon(cfg.Data.Dir)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	prefixes, masters, slaves := lex.Sizes()
	logger.Info("lexical data loaded",
		slog.Int("forms", dict.Len()),
		slog.Int("dash_prefixes", prefixes),
		slog.Int("left_masters", masters),
		slog.Int("slaves", slaves),
	)

	var words uktag.WordTagger = dict
	if cfg.Cache.Size > 0 {
		cached, err := uktag.NewCachedTagger(dict, cfg.Cache.Size)
		if err != nil {
			return nil, fmt.Errorf("dictionary cache: %w", err)
		}
		words = cached
	}

	opts := []uktag.Option{uktag.WithLogger(logger)}
	if reg != nil {
		m, err := uktag.NewMetrics(reg)
		if err != nil {
			return nil, fmt.Errorf("metrics: %w", err)
		}
		opts = append(opts, uktag.WithMetrics(m))
	}

	e := &Engine{dict: dict}
	if cfg.Debug.Compounds {
		sink, err := uktag.OpenFileSink(cfg.Debug.UnknownPath, cfg.Debug.TaggedPath)
		if err != nil {
			return nil, err
		}
		logger.Info("compound debug logs enabled",
			slog.String("unknown", cfg.Debug.UnknownPath),
			slog.String("tagged", cfg.Debug.TaggedPath),
		)
		e.sink = sink
		opts = append(opts, uktag.WithDebugSink(sink))
	}

	e.Tagger = uktag.New(words, lex, opts...)
	return e, nil
}

// Dictionary returns the loaded dictionary.
func (e *Engine) Dictionary() *uktag.Dictionary { return e.dict }

// Close releases the debug sink, if any.
func (e *Engine) Close() error {
	if e.sink == nil {
		return nil
	}
	return e.sink.Close()
}
