package uktag

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// DebugSink receives compounds for offline review: words no rule could
// tag and the readings synthesized for the others.
type DebugSink interface {
	AppendUnknown(word string) error
	AppendTagged(tokens []AnalyzedToken) error
}

// nopSink is the default sink. It never fails.
type nopSink struct{}

func (nopSink) AppendUnknown(string) error          { return nil }
func (nopSink) AppendTagged([]AnalyzedToken) error { return nil }

// WriterSink writes unknown and tagged compounds as lines to two writers.
// Writes are serialized, so one sink may be shared by concurrent taggers.
type WriterSink struct {
	mu      sync.Mutex
	unknown *bufio.Writer
	tagged  *bufio.Writer
}

// NewWriterSink returns a sink writing to unknown and tagged.
func NewWriterSink(unknown, tagged io.Writer) *WriterSink {
	return &WriterSink{
		unknown: bufio.NewWriter(unknown),
		tagged:  bufio.NewWriter(tagged),
	}
}

// AppendUnknown writes word as one line of the unknown log.
func (s *WriterSink) AppendUnknown(word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.unknown.WriteString(word + "\n"); err != nil {
		return fmt.Errorf("debug sink: %w", err)
	}
	if err := s.unknown.Flush(); err != nil {
		return fmt.Errorf("debug sink: %w", err)
	}
	return nil
}

// AppendTagged writes tokens as one line of the tagged log.
func (s *WriterSink) AppendTagged(tokens []AnalyzedToken) error {
	if len(tokens) == 0 {
		return nil
	}
	line := FormatTagged(tokens)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.tagged.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("debug sink: %w", err)
	}
	if err := s.tagged.Flush(); err != nil {
		return fmt.Errorf("debug sink: %w", err)
	}
	return nil
}

// FormatTagged renders readings compactly: the token once, then each
// lemma followed by its tags joined with "|", lemmas separated by ", ".
//
//	сонях-красень сонях-красень noun:m:v_naz|noun:m:v_zna
func FormatTagged(tokens []AnalyzedToken) string {
	var b strings.Builder
	prevToken, prevLemma := "", ""
	for _, at := range tokens {
		first := false
		if at.Token != prevToken {
			if prevToken != "" {
				b.WriteString(";  ")
				prevLemma = ""
			}
			b.WriteString(at.Token + " ")
			prevToken = at.Token
			first = true
		}
		if at.Lemma != prevLemma {
			if prevLemma != "" {
				b.WriteString(", ")
			}
			b.WriteString(at.Lemma)
			prevLemma = at.Lemma
			first = true
		}
		if first {
			b.WriteString(" ")
		} else {
			b.WriteString("|")
		}
		b.WriteString(at.POSTag())
	}
	return b.String()
}

// FileSink is a WriterSink backed by two files that are truncated on open.
type FileSink struct {
	*WriterSink
	files []*os.File
}

// OpenFileSink creates (or truncates) the unknown and tagged log files.
func OpenFileSink(unknownPath, taggedPath string) (*FileSink, error) {
	uf, err := os.Create(unknownPath)
	if err != nil {
		return nil, fmt.Errorf("debug sink: %w", err)
	}
	tf, err := os.Create(taggedPath)
	if err != nil {
		uf.Close()
		return nil, fmt.Errorf("debug sink: %w", err)
	}
	return &FileSink{
		WriterSink: NewWriterSink(uf, tf),
		files:      []*os.File{uf, tf},
	}, nil
}

// Close closes both files.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for _, f := range s.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
