package sentilabel

import (
	"fmt"
	"strings"
)

// NegationStrategy selects how negators affect classification. Exactly one
// strategy is applied to every text and every keyword.
type NegationStrategy string

const (
	// NegationFusion fuses a negator or intensifier with the next content
	// token before matching: "tidak bagus" becomes "neg_bagus".
	NegationFusion NegationStrategy = "fusion"
	// NegationFlag leaves tokens alone, records whether the text contains
	// any negator, and flips the core sentiment label after scoring.
	NegationFlag NegationStrategy = "flag"
	// NegationNone ignores negators and intensifiers.
	NegationNone NegationStrategy = "none"
)

// Pseudo-token prefixes produced by NegationFusion.
const (
	NegatedPrefix     = "neg_"
	IntensifiedPrefix = "int_"
)

// Valid reports whether s is a known strategy.
func (s NegationStrategy) Valid() bool {
	switch s {
	case NegationFusion, NegationFlag, NegationNone:
		return true
	}
	return false
}

// UnmarshalText accepts the strategy name case-insensitively.
func (s *NegationStrategy) UnmarshalText(b []byte) error {
	v := NegationStrategy(strings.ToLower(strings.TrimSpace(string(b))))
	if v == "" {
		v = NegationFusion
	}
	if !v.Valid() {
		return fmt.Errorf("%w: negation strategy %q", ErrInvalidConfig, string(b))
	}
	*s = v
	return nil
}

type wordSet map[string]struct{}

func newWordSet(words []string) wordSet {
	set := make(wordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func (s wordSet) has(w string) bool {
	_, ok := s[w]
	return ok
}

// negationRules rewrites stemmed tokens according to a strategy.
type negationRules struct {
	strategy     NegationStrategy
	negators     wordSet
	intensifiers wordSet
}

func (r *negationRules) isModifier(t Token) bool {
	return r.negators.has(t.Surface) || r.intensifiers.has(t.Surface)
}

// rewrite returns the matching form of tokens and whether any negator was
// seen. Under NegationFusion a run of modifiers attaches to the next
// content token of the same sentence; the pseudo-token is negated if the
// run holds a negator and intensified otherwise. A run with no content
// token after it is kept as plain stems.
func (r *negationRules) rewrite(tokens []Token) ([]string, bool) {
	out := make([]string, 0, len(tokens))
	negated := false
	for _, t := range tokens {
		if r.negators.has(t.Surface) {
			negated = true
			break
		}
	}
	if r.strategy != NegationFusion {
		for _, t := range tokens {
			out = append(out, t.Stem)
		}
		return out, negated
	}

	for i := 0; i < len(tokens); {
		if !r.isModifier(tokens[i]) {
			out = append(out, tokens[i].Stem)
			i++
			continue
		}
		j := i
		neg := false
		for j < len(tokens) && tokens[j].Sentence == tokens[i].Sentence && r.isModifier(tokens[j]) {
			if r.negators.has(tokens[j].Surface) {
				neg = true
			}
			j++
		}
		if j == len(tokens) || tokens[j].Sentence != tokens[i].Sentence {
			for _, t := range tokens[i:j] {
				out = append(out, t.Stem)
			}
			i = j
			continue
		}
		if neg {
			out = append(out, NegatedPrefix+tokens[j].Stem)
		} else {
			out = append(out, IntensifiedPrefix+tokens[j].Stem)
		}
		i = j + 1
	}
	return out, negated
}
