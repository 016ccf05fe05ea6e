package sentilabel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// LabelBatch labels texts concurrently with at most workers goroutines and
// returns the records in input order. Zero workers falls back to
// Config.Workers, then to GOMAXPROCS. Labeling itself cannot fail; the
// only error is ctx being done, in which case unlabeled entries are nil.
func (e *Engine) LabelBatch(ctx context.Context, texts []string, workers int) ([]*LabelRecord, error) {
	if workers <= 0 {
		workers = e.cfg.Workers
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	records := make([]*LabelRecord, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, text := range texts {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e.metrics.batchStarted()
			defer e.metrics.batchDone()
			records[i] = e.Label(text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return records, err
	}
	return records, ctx.Err()
}

// BatchStats summarizes the quality of a batch of records.
type BatchStats struct {
	Total int `json:"total"`
	// Coverage is the fraction of records with a primary label other than
	// Unknown.
	Coverage float64 `json:"coverage"`
	// UnknownRate is, per layer, the fraction of records where the layer
	// abstained.
	UnknownRate map[string]float64 `json:"unknown_rate"`
	// LabelCounts counts labels per layer.
	LabelCounts    map[string]map[string]int `json:"label_counts"`
	ConflictRate   float64                   `json:"conflict_rate"`
	MeanConfidence float64                   `json:"mean_confidence"`
}

// Stats computes BatchStats over records. Nil records are skipped.
func Stats(records []*LabelRecord) BatchStats {
	s := BatchStats{
		UnknownRate: make(map[string]float64),
		LabelCounts: make(map[string]map[string]int),
	}
	var (
		covered, conflicts int
		confidences        []float64
		unknown            = make(map[string]int)
	)
	for _, rec := range records {
		if rec == nil {
			continue
		}
		s.Total++
		if rec.PrimaryLabel != Unknown {
			covered++
		}
		if rec.ConflictFlag {
			conflicts++
		}
		confidences = append(confidences, rec.AvgConfidence)
		for _, ll := range rec.Layers {
			counts, ok := s.LabelCounts[ll.Layer]
			if !ok {
				counts = make(map[string]int)
				s.LabelCounts[ll.Layer] = counts
			}
			counts[ll.Label]++
			if ll.IsUnknown() {
				unknown[ll.Layer]++
			}
		}
	}
	if s.Total == 0 {
		return s
	}

	total := float64(s.Total)
	s.Coverage = float64(covered) / total
	s.ConflictRate = float64(conflicts) / total
	s.MeanConfidence = stat.Mean(confidences, nil)
	for layer := range s.LabelCounts {
		s.UnknownRate[layer] = float64(unknown[layer]) / total
	}
	return s
}
