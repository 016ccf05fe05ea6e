package sentilabel

import (
	"sync"
	"sync/atomic"

	"github.com/Fahri-Hilm/sentilabel/stemmer"
)

// StemCache memoizes a stemmer keyed by the exact surface token. Entries are
// only ever added; reads take no lock. A StemCache may be shared by any
// number of goroutines.
type StemCache struct {
	stemmer stemmer.Stemmer
	entries sync.Map
	size    atomic.Int64
	misses  atomic.Int64
}

// NewStemCache returns an empty cache in front of s.
func NewStemCache(s stemmer.Stemmer) *StemCache {
	if s == nil {
		s = stemmer.Identity
	}
	return &StemCache{stemmer: s}
}

// Stem returns the stem of word, computing and storing it on first use.
// When two goroutines race on the same new word the first stored value wins
// and both return it.
func (c *StemCache) Stem(word string) string {
	if v, ok := c.entries.Load(word); ok {
		return v.(string)
	}
	c.misses.Add(1)
	v, loaded := c.entries.LoadOrStore(word, c.stemmer.Stem(word))
	if !loaded {
		c.size.Add(1)
	}
	return v.(string)
}

// Lookup returns the cached stem without computing it.
func (c *StemCache) Lookup(word string) (string, bool) {
	v, ok := c.entries.Load(word)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Len returns the number of cached words.
func (c *StemCache) Len() int {
	return int(c.size.Load())
}

// Misses returns how many lookups had to run the stemmer.
func (c *StemCache) Misses() int64 {
	return c.misses.Load()
}
