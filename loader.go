package uktag

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrEmptyResource is returned when a lexical resource has no entries.
var ErrEmptyResource = errors.New("empty lexical resource")

// Names of the lexical resources inside the data directory.
const (
	DashPrefixesFile = "dash_prefixes.txt"
	LeftMastersFile  = "dash_left_master.txt"
	SlavesFile       = "dash_slaves.txt"
	DictionaryFile   = "dictionary.tsv"
)

// ReadLines reads a one-word-per-line resource. Blank lines and lines
// starting with "#" are skipped.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrEmptyResource)
	}
	return lines, nil
}

// LoadLexicon reads the three word lists from dataDir. Any missing,
// unreadable or empty list fails the whole load.
func LoadLexicon(dataDir string) (*Lexicon, error) {
	var prefixes, masters, slaves []string

	var g errgroup.Group
	load := func(name string, dst *[]string) {
		g.Go(func() error {
			lines, err := ReadLines(filepath.Join(dataDir, name))
			if err != nil {
				return err
			}
			*dst = lines
			return nil
		})
	}
	load(DashPrefixesFile, &prefixes)
	load(LeftMastersFile, &masters)
	load(SlavesFile, &slaves)

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	return NewLexicon(prefixes, masters, slaves), nil
}

// LoadDictionary reads a tab-separated dictionary dump with one
// "form<TAB>lemma<TAB>tag" entry per line.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	d := NewDictionary()
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%s:%d: want 3 tab-separated fields, got %d", filepath.Base(path), n, len(parts))
		}
		d.Add(parts[0], parts[1], parts[2])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return d, nil
}
