package sentilabel

import (
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"

	"github.com/Fahri-Hilm/sentilabel/internal/logger"
)

// segmenterAttempts is the number of tries before a ResourceInitError.
const segmenterAttempts = 2

// A Segmenter splits raw text into sentences.
type Segmenter interface {
	Segment(text string) []string
}

type punktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// Segment returns the non-empty sentences of text.
func (p *punktSegmenter) Segment(text string) []string {
	var out []string
	for _, s := range p.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// loadPunkt builds the punkt segmenter from its embedded training data.
var loadPunkt = func() (Segmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &punktSegmenter{tokenizer: tokenizer}, nil
}

var (
	punktMu sync.Mutex
	punkt   Segmenter
)

// sharedSegmenter lazily loads the punkt segmenter once per process. A
// failed load is retried once; after that the error is returned as a
// *ResourceInitError and the next call starts over.
func sharedSegmenter(log logger.Logger) (Segmenter, error) {
	punktMu.Lock()
	defer punktMu.Unlock()

	if punkt != nil {
		return punkt, nil
	}

	var err error
	for attempt := 1; attempt <= segmenterAttempts; attempt++ {
		var s Segmenter
		if s, err = loadPunkt(); err == nil {
			punkt = s
			return s, nil
		}
		log.Warn("sentence segmenter unavailable",
			logger.Int("attempt", attempt),
			logger.Error(err))
	}
	return nil, &ResourceInitError{Resource: "punkt sentence segmenter", Attempts: segmenterAttempts, Err: err}
}

// resetSegmenter drops the cached segmenter. Used by tests.
func resetSegmenter() {
	punktMu.Lock()
	punkt = nil
	punktMu.Unlock()
}
