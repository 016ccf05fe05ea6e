package sentilabel

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fahri-Hilm/sentilabel/internal/logger"
)

// lineSegmenter splits on newlines only.
type lineSegmenter struct{}

func (lineSegmenter) Segment(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func TestSharedSegmenterRetry(t *testing.T) {
	resetSegmenter()
	t.Cleanup(resetSegmenter)
	orig := loadPunkt
	t.Cleanup(func() { loadPunkt = orig })

	t.Run("second attempt succeeds", func(t *testing.T) {
		resetSegmenter()
		calls := 0
		loadPunkt = func() (Segmenter, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("data unavailable")
			}
			return lineSegmenter{}, nil
		}

		seg, err := sharedSegmenter(logger.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, lineSegmenter{}, seg)

		_, err = sharedSegmenter(logger.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 2, calls, "segmenter is loaded once")
	})

	t.Run("both attempts fail", func(t *testing.T) {
		resetSegmenter()
		cause := errors.New("data unavailable")
		loadPunkt = func() (Segmenter, error) { return nil, cause }

		_, err := NewNormalizer()
		var initErr *ResourceInitError
		require.ErrorAs(t, err, &initErr)
		assert.Equal(t, segmenterAttempts, initErr.Attempts)
		assert.ErrorIs(t, err, cause)

		_, err = NewEngine(DefaultConfig(), UsingLexicon(newTestLexicon(t)))
		assert.ErrorAs(t, err, &initErr)
	})
}

func TestPunktSegmenter(t *testing.T) {
	seg, err := loadPunkt()
	require.NoError(t, err)
	assert.Equal(t, []string{"Pemainnya bagus!", "Pelatihnya jelek."}, seg.Segment("Pemainnya bagus! Pelatihnya jelek."))
	assert.Empty(t, seg.Segment("   "))
}
