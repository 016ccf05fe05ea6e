package sentilabel

import (
	"errors"
	"fmt"
	"strings"
)

// Validation failures wrapped by ConfigurationError.
var (
	ErrEmptyKeywords       = errors.New("category has no keywords")
	ErrNonPositiveWeight   = errors.New("category weight must be positive")
	ErrDuplicateCategory   = errors.New("duplicate category name")
	ErrDuplicateLayer      = errors.New("duplicate layer name")
	ErrInvalidPolarity     = errors.New("invalid polarity")
	ErrCoreLayer           = errors.New("lexicon must declare exactly one core layer")
	ErrReservedLabel       = errors.New(`label "unknown" is reserved`)
	ErrEmptyName           = errors.New("name must not be empty")
	ErrNoLayers            = errors.New("lexicon declares no layers")
	ErrUnknownLexicon      = errors.New("unknown builtin lexicon")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrMalformedLexicon    = errors.New("malformed lexicon")
	ErrUnsupportedLanguage = errors.New("unsupported lexicon language")
)

// ConfigurationError reports a lexicon or engine configuration that failed
// validation. It is fatal: the engine refuses to start.
type ConfigurationError struct {
	Lexicon  string
	Layer    string
	Category string
	Err      error
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("configuration error")
	if e.Lexicon != "" {
		fmt.Fprintf(&b, " in lexicon %q", e.Lexicon)
	}
	if e.Layer != "" {
		fmt.Fprintf(&b, " layer %q", e.Layer)
	}
	if e.Category != "" {
		fmt.Fprintf(&b, " category %q", e.Category)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ResourceInitError reports a backing resource that could not be
// initialized even after a retry.
type ResourceInitError struct {
	Resource string
	Attempts int
	Err      error
}

func (e *ResourceInitError) Error() string {
	return fmt.Sprintf("initialize %s after %d attempts: %v", e.Resource, e.Attempts, e.Err)
}

func (e *ResourceInitError) Unwrap() error {
	return e.Err
}
