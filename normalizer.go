package sentilabel

import (
	"strings"
	"unicode/utf8"

	"github.com/Fahri-Hilm/sentilabel/internal/logger"
	"github.com/Fahri-Hilm/sentilabel/stemmer"
)

// Normalizer turns raw text into stemmed, stopword-free tokens:
//
//	raw text → strip markup → sentences → clean words → tokenize
//	         → drop stopwords → stem (memoized) → negation rewrite
//
// A Normalizer is immutable after construction apart from its stem cache,
// and is safe for concurrent use.
type Normalizer struct {
	cleaner   *Cleaner
	tokenizer Tokenizer
	segmenter Segmenter
	cache     *StemCache
	stopwords StopwordSet
	rules     negationRules
	pool      *TokenPool
	log       logger.Logger

	language     string
	negators     []string
	intensifiers []string
	protect      []string
}

// NewNormalizer builds a Normalizer. It fails only when the sentence
// segmenter cannot be loaded, with a *ResourceInitError.
func NewNormalizer(opts ...NormalizerOpt) (*Normalizer, error) {
	n := &Normalizer{
		cleaner:      NewCleaner(DefaultCleanOptions()),
		tokenizer:    NewIterTokenizer(),
		cache:        NewStemCache(stemmer.NewIndonesian()),
		pool:         NewTokenPool(),
		log:          logger.NewNop(),
		language:     "id",
		negators:     DefaultNegators,
		intensifiers: DefaultIntensifiers,
		rules:        negationRules{strategy: NegationFusion},
	}
	for _, applyOpt := range opts {
		applyOpt(n)
	}
	if n.rules.strategy == "" {
		n.rules.strategy = NegationFusion
	}

	if n.segmenter == nil {
		seg, err := sharedSegmenter(n.log)
		if err != nil {
			return nil, err
		}
		n.segmenter = seg
	}

	var protected []string
	for _, w := range n.protect {
		protected = append(protected, n.cleaner.Words(w)...)
	}
	n.rules.negators = newWordSet(n.negators)
	n.rules.intensifiers = newWordSet(n.intensifiers)
	n.stopwords = NewStopwordSet(n.language, n.negators, n.intensifiers, protected)

	return n, nil
}

// Normalize processes text. It never fails: empty, whitespace-only and
// punctuation-only text yield an empty Document.
func (n *Normalizer) Normalize(text string) *Document {
	doc := &Document{Text: text}
	raw := n.cleaner.StripMarkup(text)
	if raw == "" {
		return doc
	}

	words := n.pool.Get()
	defer n.pool.Put(words)

	var tokens []Token
	for i, sentence := range n.segmenter.Segment(raw) {
		sentWords := n.cleaner.Words(sentence)
		*words = append(*words, sentWords...)
		tokens = n.appendTokens(tokens, sentWords, i)
	}

	doc.Cleaned = strings.Join(*words, " ")
	if minLen := n.cleaner.opts.MinLength; minLen > 0 && utf8.RuneCountInString(doc.Cleaned) < minLen {
		doc.Cleaned = ""
		return doc
	}
	doc.Tokens = tokens
	doc.Normalized, doc.Negated = n.rules.rewrite(tokens)
	return doc
}

// NormalizeKeyword runs a lexicon keyword through the same steps as text,
// as a single sentence and without the minimum length check.
func (n *Normalizer) NormalizeKeyword(keyword string) []string {
	words := n.cleaner.Words(n.cleaner.StripMarkup(keyword))
	normalized, _ := n.rules.rewrite(n.appendTokens(nil, words, 0))
	return normalized
}

func (n *Normalizer) appendTokens(tokens []Token, words []string, sentence int) []Token {
	if len(words) == 0 {
		return tokens
	}
	for _, w := range n.tokenizer.Tokenize(strings.Join(words, " ")) {
		if n.stopwords.Contains(w) {
			continue
		}
		tokens = append(tokens, Token{Surface: w, Stem: n.cache.Stem(w), Sentence: sentence})
	}
	return tokens
}

// fusedModifier reports whether keyword is a single negator or intensifier
// that fusion would absorb into the following token, and returns that token.
func (n *Normalizer) fusedModifier(keyword string) (Token, bool) {
	if n.rules.strategy != NegationFusion {
		return Token{}, false
	}
	tokens := n.appendTokens(nil, n.cleaner.Words(n.cleaner.StripMarkup(keyword)), 0)
	if len(tokens) != 1 || !n.rules.isModifier(tokens[0]) {
		return Token{}, false
	}
	return tokens[0], true
}

// Stem returns the memoized stem of a single cleaned word.
func (n *Normalizer) Stem(word string) string {
	return n.cache.Stem(word)
}

// Cache returns the normalizer's stem cache.
func (n *Normalizer) Cache() *StemCache {
	return n.cache
}

// Cleaner returns the normalizer's cleaner.
func (n *Normalizer) Cleaner() *Cleaner {
	return n.cleaner
}

// Strategy returns the negation strategy in effect.
func (n *Normalizer) Strategy() NegationStrategy {
	return n.rules.strategy
}

// IsStopword reports whether w is dropped during normalization.
func (n *Normalizer) IsStopword(w string) bool {
	return n.stopwords.Contains(w)
}
