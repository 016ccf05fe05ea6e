package sentilabel

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// HitCounting selects what a category's hit count measures. One mode is
// applied to every layer of an engine so confidences stay comparable.
type HitCounting string

const (
	// HitCountDistinct counts keywords that matched at least once.
	HitCountDistinct HitCounting = "distinct"
	// HitCountOccurrence counts every occurrence of every keyword.
	HitCountOccurrence HitCounting = "occurrence"
)

// Valid reports whether c is a known counting mode.
func (c HitCounting) Valid() bool {
	return c == HitCountDistinct || c == HitCountOccurrence
}

// UnmarshalText accepts the mode name case-insensitively.
func (c *HitCounting) UnmarshalText(b []byte) error {
	v := HitCounting(strings.ToLower(strings.TrimSpace(string(b))))
	if v == "" {
		v = HitCountDistinct
	}
	if !v.Valid() {
		return fmt.Errorf("%w: hit counting %q", ErrInvalidConfig, string(b))
	}
	*c = v
	return nil
}

// Match reports how many of stems occur in normalizedText as whole words or
// whole phrases, and which ones. Both sides must already be normalized; a
// stem never matches inside a longer token. Stems without letters are
// compared by plain containment.
func Match(normalizedText string, stems []string) (int, []string) {
	text := strings.Join(strings.Fields(normalizedText), " ")
	if text == "" {
		return 0, nil
	}
	padded := pad(text)

	var matched []string
	seen := make(map[string]bool, len(stems))
	for _, stem := range stems {
		stem = strings.Join(strings.Fields(stem), " ")
		if stem == "" || seen[stem] {
			continue
		}
		var ok bool
		if hasLetter(stem) {
			ok = strings.Contains(padded, pad(stem))
		} else {
			ok = strings.Contains(text, stem)
		}
		if ok {
			seen[stem] = true
			matched = append(matched, stem)
		}
	}
	return len(matched), matched
}

// countPhrase counts the positions where phrase occurs as a contiguous run
// of whole tokens.
func countPhrase(tokens, phrase []string) int {
	if len(phrase) == 0 || len(phrase) > len(tokens) {
		return 0
	}
	n := 0
outer:
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		for j, p := range phrase {
			if tokens[i+j] != p {
				continue outer
			}
		}
		n++
	}
	return n
}

// countBounded counts occurrences of word in text that are not adjacent to
// another letter or digit.
func countBounded(text, word string) int {
	if word == "" {
		return 0
	}
	n := 0
	for start := 0; start <= len(text)-len(word); {
		i := strings.Index(text[start:], word)
		if i < 0 {
			break
		}
		i += start
		end := i + len(word)
		before, _ := utf8.DecodeLastRuneInString(text[:i])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if !isWordRune(before) && !isWordRune(after) {
			n++
			start = end
		} else {
			_, size := utf8.DecodeRuneInString(text[i:])
			start = i + size
		}
	}
	return n
}

func isWordRune(r rune) bool {
	return r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
