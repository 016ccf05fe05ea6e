package sentilabel

import (
	"sync"
)

// Unknown is the sentinel label every layer falls back to when evidence is
// absent or too weak.
const Unknown = "unknown"

// Polarity is the optional sentiment direction carried by a category.
type Polarity string

const (
	NoPolarity Polarity = ""
	Positive   Polarity = "positive"
	Negative   Polarity = "negative"
	Neutral    Polarity = "neutral"
)

// Valid reports whether p is one of the known polarities (or unset).
func (p Polarity) Valid() bool {
	switch p {
	case NoPolarity, Positive, Negative, Neutral:
		return true
	}
	return false
}

// A Token is one word of a normalized text.
type Token struct {
	Surface  string // Lowercased surface form after cleaning.
	Stem     string // Stem used for matching, or a fused pseudo-token.
	Sentence int    // Index of the sentence the token came from.
}

// A CategoryMatch records the evidence one category found in a text.
type CategoryMatch struct {
	Category string   `json:"category"`
	Hits     int      `json:"hits"`
	Keywords []string `json:"keywords"`
	Score    float64  `json:"score"`
}

// A MatchResult maps each category of a layer, in declared order, to its
// hit count and matched keywords.
type MatchResult []CategoryMatch

// Get returns the match for category, if any.
func (mr MatchResult) Get(category string) (CategoryMatch, bool) {
	for _, m := range mr {
		if m.Category == category {
			return m, true
		}
	}
	return CategoryMatch{}, false
}

// A LayerLabel is the outcome of scoring one layer.
type LayerLabel struct {
	Layer           string      `json:"layer"`
	Label           string      `json:"label"`
	RawScore        float64     `json:"raw_score"`
	Confidence      float64     `json:"confidence"`
	MatchedKeywords []string    `json:"matched_keywords"`
	Matches         MatchResult `json:"matches,omitempty"`
}

// IsUnknown reports whether the layer abstained.
func (ll LayerLabel) IsUnknown() bool {
	return ll.Label == Unknown
}

// A LabelRecord is the full multi-layer classification of one text.
type LabelRecord struct {
	Text                  string               `json:"text"`
	Normalized            string               `json:"normalized"`
	Layers                []LayerLabel         `json:"layers"`
	PrimaryLabel          string               `json:"primary_label"`
	TotalScore            float64              `json:"total_score"`
	AvgConfidence         float64              `json:"avg_confidence"`
	SentimentDistribution map[Polarity]float64 `json:"sentiment_distribution"`
	ConflictFlag          bool                 `json:"conflict_flag"`
	Negated               bool                 `json:"negated,omitempty"`
	LexiconVersion        string               `json:"lexicon_version"`
}

// Layer returns the label for the named layer.
func (r *LabelRecord) Layer(name string) (LayerLabel, bool) {
	for _, l := range r.Layers {
		if l.Layer == name {
			return l, true
		}
	}
	return LayerLabel{}, false
}

// Label returns the label string for the named layer, or Unknown.
func (r *LabelRecord) Label(name string) string {
	if l, ok := r.Layer(name); ok {
		return l.Label
	}
	return Unknown
}

// MatchedKeywords returns every keyword that contributed to a winning label,
// across all layers.
func (r *LabelRecord) MatchedKeywords() []string {
	var out []string
	for _, l := range r.Layers {
		out = append(out, l.MatchedKeywords...)
	}
	return out
}

// TokenPool manages a pool of token slices to reduce allocations when
// normalizing many short texts.
type TokenPool struct {
	pool sync.Pool
}

// NewTokenPool creates a new token pool.
func NewTokenPool() *TokenPool {
	return &TokenPool{
		pool: sync.Pool{
			New: func() interface{} {
				toks := make([]string, 0, 32)
				return &toks
			},
		},
	}
}

// Get retrieves an empty slice from the pool.
func (tp *TokenPool) Get() *[]string {
	return tp.pool.Get().(*[]string)
}

// Put returns a slice to the pool.
func (tp *TokenPool) Put(toks *[]string) {
	*toks = (*toks)[:0]
	tp.pool.Put(toks)
}
