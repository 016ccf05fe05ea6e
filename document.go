package sentilabel

import (
	"strings"

	"github.com/Fahri-Hilm/sentilabel/internal/logger"
	"github.com/Fahri-Hilm/sentilabel/stemmer"
)

// A NormalizerOpt represents a setting that changes how a Normalizer
// processes text.
//
// For example, it might switch off negation fusion:
//
//	n, err := sentilabel.NewNormalizer(sentilabel.WithNegation(sentilabel.NegationNone, nil, nil))
type NormalizerOpt func(n *Normalizer)

// WithCleanOptions replaces the default cleaning toggles.
func WithCleanOptions(opts CleanOptions) NormalizerOpt {
	return func(n *Normalizer) {
		n.cleaner = NewCleaner(opts)
	}
}

// WithStemmer stems with s through a fresh cache.
func WithStemmer(s stemmer.Stemmer) NormalizerOpt {
	return func(n *Normalizer) {
		n.cache = NewStemCache(s)
	}
}

// WithStemCache shares an existing cache between normalizers.
func WithStemCache(c *StemCache) NormalizerOpt {
	return func(n *Normalizer) {
		if c != nil {
			n.cache = c
		}
	}
}

// WithProtectedWords marks words that are never removed as stopwords.
// Words are cleaned the same way as text before they are protected.
func WithProtectedWords(words ...string) NormalizerOpt {
	return func(n *Normalizer) {
		n.protect = append(n.protect, words...)
	}
}

// WithNegation sets the negation strategy and the negator and intensifier
// words. Nil lists keep the defaults.
func WithNegation(strategy NegationStrategy, negators, intensifiers []string) NormalizerOpt {
	return func(n *Normalizer) {
		n.rules.strategy = strategy
		if negators != nil {
			n.negators = negators
		}
		if intensifiers != nil {
			n.intensifiers = intensifiers
		}
	}
}

// WithLanguage selects the stopword list.
func WithLanguage(lang string) NormalizerOpt {
	return func(n *Normalizer) {
		n.language = lang
	}
}

// UsingSegmenter replaces the punkt sentence segmenter.
func UsingSegmenter(s Segmenter) NormalizerOpt {
	return func(n *Normalizer) {
		n.segmenter = s
	}
}

// UsingTokenizer replaces the default word tokenizer.
func UsingTokenizer(t Tokenizer) NormalizerOpt {
	return func(n *Normalizer) {
		n.tokenizer = t
	}
}

// WithLogger sets the logger used for resource initialization.
func WithLogger(log logger.Logger) NormalizerOpt {
	return func(n *Normalizer) {
		if log != nil {
			n.log = log
		}
	}
}

// A Document is the normalized form of one text.
type Document struct {
	// Text is the input as given.
	Text string
	// Cleaned is the whole text after cleaning, before stopword removal.
	// It is empty when the cleaned text is shorter than CleanOptions.MinLength.
	Cleaned string
	// Tokens are the surviving words with their stems, in order.
	Tokens []Token
	// Normalized is the token sequence matched against keywords: stems,
	// with negation pseudo-tokens substituted.
	Normalized []string
	// Negated is set when any negator occurs in the text.
	Negated bool
}

// NormalizedText returns the normalized tokens joined by single spaces.
func (doc *Document) NormalizedText() string {
	return strings.Join(doc.Normalized, " ")
}

// Stems returns the plain stem of every token.
func (doc *Document) Stems() []string {
	stems := make([]string, len(doc.Tokens))
	for i, tok := range doc.Tokens {
		stems[i] = tok.Stem
	}
	return stems
}

// Empty reports whether nothing survived normalization.
func (doc *Document) Empty() bool {
	return len(doc.Normalized) == 0
}
