package phrases

import (
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed tables.toml
var defaultTablesTOML []byte

// ErrInvalidTable is returned when a table file fails validation
var ErrInvalidTable = errors.New("invalid phrase table")

// Entry maps a source-language phrase or title to its English form
type Entry struct {
	Source  string `toml:"source"`
	English string `toml:"english"`
}

// CommentPattern is a regular expression applied to code cells together
// with its replacement template
type CommentPattern struct {
	Pattern     string
	Replacement string

	re *regexp.Regexp
}

// Regexp returns the compiled pattern
func (c CommentPattern) Regexp() *regexp.Regexp {
	return c.re
}

// Links describes the placeholder repository identifiers and the canonical
// identifier they are rewritten to
type Links struct {
	Canonical    string   `toml:"canonical"`
	Placeholders []string `toml:"placeholders"`
}

// Experiment is the localized label used by numbered experiment headings
type Experiment struct {
	Label   string `toml:"label"`
	English string `toml:"english"`
}

// Tables is the immutable, validated set of lookup tables
type Tables struct {
	Source     language.Tag
	Target     language.Tag
	Links      Links
	Experiment Experiment
	Titles     []Entry
	Phrases    []Entry
	Comments   []CommentPattern
}

// tableFile mirrors the TOML layout
type tableFile struct {
	Source     string     `toml:"source"`
	Target     string     `toml:"target"`
	Links      Links      `toml:"links"`
	Experiment Experiment `toml:"experiment"`
	Titles     []Entry    `toml:"title"`
	Phrases    []Entry    `toml:"phrase"`
	Comments   []struct {
		Pattern     string `toml:"pattern"`
		Replacement string `toml:"replacement"`
	} `toml:"comment"`
}

var loadDefault = sync.OnceValues(func() (*Tables, error) {
	return Parse(defaultTablesTOML)
})

// Default returns the tables compiled into the binary. They are parsed on
// first use and shared afterwards.
func Default() (*Tables, error) {
	return loadDefault()
}

// Parse decodes and validates a TOML table file
func Parse(data []byte) (*Tables, error) {
	var f tableFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}

	src, err := language.Parse(f.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: source language %q: %v", ErrInvalidTable, f.Source, err)
	}
	dst, err := language.Parse(f.Target)
	if err != nil {
		return nil, fmt.Errorf("%w: target language %q: %v", ErrInvalidTable, f.Target, err)
	}

	t := &Tables{
		Source:     src,
		Target:     dst,
		Links:      f.Links,
		Experiment: f.Experiment,
		Titles:     f.Titles,
		Phrases:    f.Phrases,
	}

	if err := validateLinks(t.Links); err != nil {
		return nil, err
	}
	if t.Experiment.Label == "" || t.Experiment.English == "" {
		return nil, fmt.Errorf("%w: experiment label and english are required", ErrInvalidTable)
	}
	if err := validateEntries("title", t.Titles); err != nil {
		return nil, err
	}
	if err := validateEntries("phrase", t.Phrases); err != nil {
		return nil, err
	}

	for i, c := range f.Comments {
		if c.Pattern == "" || c.Replacement == "" {
			return nil, fmt.Errorf("%w: comment %d: pattern and replacement are required", ErrInvalidTable, i)
		}
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: comment %d: %v", ErrInvalidTable, i, err)
		}
		t.Comments = append(t.Comments, CommentPattern{
			Pattern:     c.Pattern,
			Replacement: c.Replacement,
			re:          re,
		})
	}

	return t, nil
}

func validateLinks(l Links) error {
	if l.Canonical == "" {
		return fmt.Errorf("%w: canonical repository is required", ErrInvalidTable)
	}
	for i, p := range l.Placeholders {
		if p == "" {
			return fmt.Errorf("%w: placeholder %d is empty", ErrInvalidTable, i)
		}
		// A placeholder inside the canonical identifier would be rewritten again on every run
		if strings.Contains(l.Canonical, p) {
			return fmt.Errorf("%w: placeholder %q occurs in canonical %q", ErrInvalidTable, p, l.Canonical)
		}
	}
	return nil
}

func validateEntries(kind string, entries []Entry) error {
	for i, e := range entries {
		if e.Source == "" || e.English == "" {
			return fmt.Errorf("%w: %s %d: source and english are required", ErrInvalidTable, kind, i)
		}
	}
	return nil
}

// LookupTitle returns the first title entry whose source is contained in text
func (t *Tables) LookupTitle(text string) (Entry, bool) {
	for _, e := range t.Titles {
		if strings.Contains(text, e.Source) {
			return e, true
		}
	}
	return Entry{}, false
}

// ApplyPhrases replaces every occurrence of every phrase, in table order
func (t *Tables) ApplyPhrases(text string) string {
	for _, e := range t.Phrases {
		text = strings.ReplaceAll(text, e.Source, e.English)
	}
	return text
}
