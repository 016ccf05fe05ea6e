// Package stemmer reduces words to the root form used for keyword matching.
//
// The Indonesian stemmer strips particles (-lah, -kah, -tah, -pun),
// possessives (-ku, -mu, -nya), derivational suffixes (-kan, -an, -i) and up
// to three prefixes (di-, ke-, se-, ter-, ber-, per-, meN-, peN-) with the
// standard nasal assimilation rules. Candidate stems are checked against an
// embedded root dictionary. A word with no known root among its candidates is
// returned unchanged, so a surface form is never cut down to a fragment that
// collides with an unrelated word.
//
// All stemmers in this package are safe for concurrent use.
package stemmer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedLanguage is returned by New for languages without a stemmer.
var ErrUnsupportedLanguage = errors.New("unsupported stemmer language")

// A Stemmer maps a single lowercase word to its stem.
type Stemmer interface {
	Stem(word string) string
}

// Func adapts an ordinary function to the Stemmer interface.
type Func func(string) string

// Stem calls f(word).
func (f Func) Stem(word string) string { return f(word) }

// Identity returns words unchanged.
var Identity Stemmer = Func(func(w string) string { return w })

// New returns the stemmer for an ISO 639-1 code or English language name.
func New(language string) (Stemmer, error) {
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "", "id", "indonesian", "bahasa":
		return NewIndonesian(), nil
	case "en", "english":
		return English{}, nil
	case "none":
		return Identity, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
}
