package stemmer

import (
	"strings"

	"github.com/kljensen/snowball"
)

// English stems words with the Snowball (Porter2) English algorithm.
type English struct{}

// Stem returns the Porter2 stem of word, or the lowercased word when the
// snowball stemmer rejects it.
func (English) Stem(word string) string {
	stem, err := snowball.Stem(word, "english", true)
	if err != nil || stem == "" {
		return strings.ToLower(word)
	}
	return stem
}
