package sentilabel

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelBatchOrder(t *testing.T) {
	e := newTestEngine(t, newTestLexicon(t), nil)

	var texts []string
	for i := 0; i < 50; i++ {
		switch i % 3 {
		case 0:
			texts = append(texts, fmt.Sprintf("pelatih bagus %d", i))
		case 1:
			texts = append(texts, "pemain jelek sekarang")
		default:
			texts = append(texts, "")
		}
	}

	for _, workers := range []int{0, 1, 4, 100} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			records, err := e.LabelBatch(context.Background(), texts, workers)
			require.NoError(t, err)
			require.Len(t, records, len(texts))
			for i, rec := range records {
				require.NotNil(t, rec)
				assert.Equal(t, texts[i], rec.Text)
				assert.Equal(t, e.Label(texts[i]), rec)
			}
		})
	}
}

func TestLabelBatchCanceled(t *testing.T) {
	e := newTestEngine(t, newTestLexicon(t), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records, err := e.LabelBatch(ctx, []string{"pelatih bagus", "pemain jelek"}, 2)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, records, 2)
	for _, rec := range records {
		assert.Nil(t, rec)
	}
}

func TestLabelBatchEmpty(t *testing.T) {
	e := newTestEngine(t, newTestLexicon(t), func(c *Config) { c.Workers = 3 })
	records, err := e.LabelBatch(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStats(t *testing.T) {
	e := newTestEngine(t, newTestLexicon(t), nil)
	records := []*LabelRecord{
		e.Label("pelatih bagus sekali"),
		e.Label("pemain jelek"),
		e.Label("hujan deras sekali"),
		e.Label("bagus hebat tapi jelek"),
		nil,
	}

	s := Stats(records)
	assert.Equal(t, 4, s.Total)
	assert.InDelta(t, 0.75, s.Coverage, 1e-9)
	assert.InDelta(t, 0.25, s.ConflictRate, 1e-9)
	assert.InDelta(t, 0.25, s.UnknownRate["core_sentiment"], 1e-9)
	assert.InDelta(t, 1.0, s.UnknownRate["root_cause"], 1e-9)
	assert.Equal(t, 1, s.LabelCounts["core_sentiment"]["positive"])
	assert.Equal(t, 1, s.LabelCounts["core_sentiment"]["negative"])
	assert.Equal(t, 1, s.LabelCounts["core_sentiment"]["mixed"])
	assert.Equal(t, 1, s.LabelCounts["target"]["coaching_staff"])
	assert.Equal(t, 1, s.LabelCounts["target"]["players"])
	assert.Greater(t, s.MeanConfidence, 0.0)

	zero := Stats(nil)
	assert.Zero(t, zero.Total)
	assert.Zero(t, zero.Coverage)
	assert.Empty(t, zero.LabelCounts)
}
