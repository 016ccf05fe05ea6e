package sentilabel

import (
	"strings"
	"sync"
	"unicode"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/Fahri-Hilm/sentilabel/internal/logger"
)

// keywordKind says how a keyword is compared with text.
type keywordKind int

const (
	// stemmedKeyword matches whole normalized tokens.
	stemmedKeyword keywordKind = iota
	// symbolKeyword has no letters and is found by plain containment in the
	// lowercased input.
	symbolKeyword
	// literalKeyword carries digits that cleaning would remove and is found
	// as a whole word in the lowercased input.
	literalKeyword
	// modifierKeyword is a lone negator or intensifier. Fusion absorbs it
	// into the next token, so it is counted by surface form instead.
	modifierKeyword
	// deadKeyword normalizes to nothing and never matches.
	deadKeyword
)

// indexedKeyword is one lexicon keyword with its precomputed matching form.
type indexedKeyword struct {
	keyword string
	stem    string
	surface string
	tokens  []string
	alias   string
	kind    keywordKind
}

// Index holds the stemmed form of every lexicon keyword, computed once when
// the index is built, and an Aho-Corasick automaton over those forms used
// to find candidate keywords in a single pass over a text.
//
// An Index is read-only after construction except for the on-demand stems
// of keywords it was not built with.
type Index struct {
	norm     *Normalizer
	layers   []Layer
	keywords [][][]indexedKeyword // layer → category → keyword
	stems    map[string]string
	extra    sync.Map

	matcher  *ahocorasick.Matcher
	patterns []string
	counting HitCounting
}

// IndexOpt configures an Index.
type IndexOpt func(*Index)

// WithHitCounting selects how hits are counted for every category.
func WithHitCounting(c HitCounting) IndexOpt {
	return func(ix *Index) {
		ix.counting = c
	}
}

// NewIndex normalizes every keyword of lex with norm. Keywords that
// normalize to nothing are logged and can never match.
func NewIndex(lex *Lexicon, norm *Normalizer, log logger.Logger, opts ...IndexOpt) *Index {
	if log == nil {
		log = logger.NewNop()
	}
	ix := &Index{
		norm:     norm,
		layers:   lex.Layers(),
		stems:    make(map[string]string, lex.KeywordCount()),
		counting: HitCountDistinct,
	}
	for _, applyOpt := range opts {
		applyOpt(ix)
	}

	removesDigits := norm.Cleaner().Options().RemoveNumbers
	seen := make(map[string]bool)
	addPattern := func(stem string) {
		p := pad(stem)
		if !seen[p] {
			seen[p] = true
			ix.patterns = append(ix.patterns, p)
		}
	}

	ix.keywords = make([][][]indexedKeyword, len(ix.layers))
	for li, layer := range ix.layers {
		ix.keywords[li] = make([][]indexedKeyword, len(layer.Categories))
		for ci, cat := range layer.Categories {
			entries := make([]indexedKeyword, 0, len(cat.Keywords))
			for _, kw := range cat.Keywords {
				entry := ix.build(kw, removesDigits)
				ix.stems[keywordKey(kw)] = entry.stem
				switch entry.kind {
				case stemmedKeyword:
					addPattern(entry.stem)
					if entry.alias != "" {
						addPattern(entry.alias)
					}
				case modifierKeyword:
					log.Debug("modifier keyword matched by surface form",
						logger.String("layer", layer.Name),
						logger.String("category", cat.Name),
						logger.String("keyword", kw))
				case deadKeyword:
					log.Warn("keyword normalizes to nothing",
						logger.String("layer", layer.Name),
						logger.String("category", cat.Name),
						logger.String("keyword", kw))
				}
				entries = append(entries, entry)
			}
			ix.keywords[li][ci] = entries
		}
	}

	if len(ix.patterns) > 0 {
		ix.matcher = ahocorasick.NewStringMatcher(ix.patterns)
	}
	return ix
}

func (ix *Index) build(kw string, removesDigits bool) indexedKeyword {
	entry := indexedKeyword{keyword: kw}
	switch {
	case !hasLetter(kw):
		entry.kind = symbolKeyword
		entry.stem = kw
		return entry
	case removesDigits && hasDigit(kw):
		entry.kind = literalKeyword
		entry.stem = kw
		return entry
	}

	if tok, ok := ix.norm.fusedModifier(kw); ok {
		entry.kind = modifierKeyword
		entry.surface = tok.Surface
		entry.stem = tok.Stem
		return entry
	}

	entry.tokens = ix.norm.NormalizeKeyword(kw)
	entry.stem = strings.Join(entry.tokens, " ")
	if entry.stem == "" {
		entry.kind = deadKeyword
		return entry
	}
	if len(entry.tokens) == 1 && !strings.HasPrefix(entry.stem, NegatedPrefix) && !strings.HasPrefix(entry.stem, IntensifiedPrefix) {
		entry.alias = IntensifiedPrefix + entry.stem
	}
	return entry
}

// Stem returns the matching form of keyword. Keywords the index was not
// built with are normalized on first use and remembered.
func (ix *Index) Stem(keyword string) string {
	keyword = keywordKey(keyword)
	if s, ok := ix.stems[keyword]; ok {
		return s
	}
	if v, ok := ix.extra.Load(keyword); ok {
		return v.(string)
	}
	v, _ := ix.extra.LoadOrStore(keyword, strings.Join(ix.norm.NormalizeKeyword(keyword), " "))
	return v.(string)
}

// Size returns the number of distinct patterns in the automaton.
func (ix *Index) Size() int {
	return len(ix.patterns)
}

// Layers returns the indexed layers in declared order.
func (ix *Index) Layers() []Layer {
	return ix.layers
}

// candidates returns the set of padded patterns present in the padded
// normalized text.
func (ix *Index) candidates(padded string) map[string]bool {
	found := make(map[string]bool)
	if ix.matcher == nil {
		return found
	}
	for _, i := range ix.matcher.MatchThreadSafe([]byte(padded)) {
		found[ix.patterns[i]] = true
	}
	return found
}

// Match returns the hits of every category of every layer, in declared
// order. Categories without hits are included with Hits == 0.
func (ix *Index) Match(doc *Document) []MatchResult {
	padded := pad(doc.NormalizedText())
	found := ix.candidates(padded)
	lowered := strings.ToLower(doc.Text)

	out := make([]MatchResult, len(ix.layers))
	for li, layer := range ix.layers {
		result := make(MatchResult, len(layer.Categories))
		for ci, cat := range layer.Categories {
			m := CategoryMatch{Category: cat.Name}
			for _, kw := range ix.keywords[li][ci] {
				n := ix.hits(kw, doc, found, lowered)
				if n == 0 {
					continue
				}
				m.Keywords = append(m.Keywords, kw.keyword)
				if ix.counting == HitCountOccurrence {
					m.Hits += n
				} else {
					m.Hits++
				}
			}
			result[ci] = m
		}
		out[li] = result
	}
	return out
}

// hits returns how often kw occurs. Under distinct counting any positive
// value means "matched".
func (ix *Index) hits(kw indexedKeyword, doc *Document, found map[string]bool, lowered string) int {
	switch kw.kind {
	case symbolKeyword:
		return strings.Count(lowered, kw.keyword)
	case literalKeyword:
		return countBounded(lowered, kw.keyword)
	case modifierKeyword:
		n := 0
		for _, t := range doc.Tokens {
			if t.Surface == kw.surface {
				n++
			}
		}
		return n
	case deadKeyword:
		return 0
	}
	if !found[pad(kw.stem)] && (kw.alias == "" || !found[pad(kw.alias)]) {
		return 0
	}
	if ix.counting != HitCountOccurrence {
		return 1
	}
	n := countPhrase(doc.Normalized, kw.tokens)
	if kw.alias != "" {
		n += countPhrase(doc.Normalized, []string{kw.alias})
	}
	return n
}

func keywordKey(kw string) string {
	return strings.Join(strings.Fields(strings.ToLower(kw)), " ")
}

func pad(s string) string {
	return " " + s + " "
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
