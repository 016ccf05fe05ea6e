package sentilabel

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// aggregator derives the record-level fields from per-layer labels.
type aggregator struct {
	layers            []Layer
	core              int
	conflictThreshold float64
}

func newAggregator(layers []Layer, conflictThreshold float64) *aggregator {
	core := 0
	for i, l := range layers {
		if l.Core {
			core = i
			break
		}
	}
	return &aggregator{layers: layers, core: core, conflictThreshold: conflictThreshold}
}

// distribution sums the scores of every matched category, in any layer,
// by polarity. Categories without a polarity are left out.
func (a *aggregator) distribution(labels []LayerLabel) map[Polarity]float64 {
	dist := map[Polarity]float64{Positive: 0, Negative: 0, Neutral: 0}
	for i, ll := range labels {
		for _, m := range ll.Matches {
			cat, ok := a.layers[i].Category(m.Category)
			if !ok || cat.Polarity == NoPolarity {
				continue
			}
			dist[cat.Polarity] += m.Score
		}
	}
	return dist
}

// resolveConflict replaces an indecisive core label with the layer's mixed
// label when the text carries both positive and negative evidence.
func (a *aggregator) resolveConflict(labels []LayerLabel, dist map[Polarity]float64) bool {
	core := &labels[a.core]
	if core.IsUnknown() || core.Confidence >= a.conflictThreshold {
		return false
	}
	if !(dist[Positive] > 0 && dist[Negative] > 0) {
		return false
	}
	core.Label = a.layers[a.core].Mixed
	var keywords []string
	for _, m := range core.Matches {
		keywords = append(keywords, m.Keywords...)
	}
	core.MatchedKeywords = keywords
	return true
}

// primary picks the most confident decided non-core label. Ties go to the
// earlier layer. With no decided non-core layer the core label is used,
// which may itself be Unknown.
func (a *aggregator) primary(labels []LayerLabel) string {
	best := -1
	for i, ll := range labels {
		if i == a.core || ll.IsUnknown() {
			continue
		}
		if best < 0 || ll.Confidence > labels[best].Confidence {
			best = i
		}
	}
	if best < 0 {
		return labels[a.core].Label
	}
	return labels[best].Label
}

// flipPolarity swaps a positive or negative core label for the first
// category of opposite polarity.
func (a *aggregator) flipPolarity(labels []LayerLabel) bool {
	core := &labels[a.core]
	if core.IsUnknown() {
		return false
	}
	layer := a.layers[a.core]
	cat, ok := layer.Category(core.Label)
	if !ok {
		return false
	}
	var want Polarity
	switch cat.Polarity {
	case Positive:
		want = Negative
	case Negative:
		want = Positive
	default:
		return false
	}
	for _, c := range layer.Categories {
		if c.Polarity == want {
			core.Label = c.Name
			return true
		}
	}
	return false
}

// fill computes the derived fields of rec from its layers.
func (a *aggregator) fill(rec *LabelRecord) {
	labels := rec.Layers
	scores := make([]float64, len(labels))
	confidences := make([]float64, len(labels))

	rec.SentimentDistribution = a.distribution(labels)
	rec.ConflictFlag = a.resolveConflict(labels, rec.SentimentDistribution)

	for i, ll := range labels {
		scores[i] = ll.RawScore
		if !ll.IsUnknown() {
			confidences[i] = ll.Confidence
		}
	}
	rec.TotalScore = floats.Sum(scores)
	if len(confidences) > 0 {
		rec.AvgConfidence = stat.Mean(confidences, nil)
	}
	rec.PrimaryLabel = a.primary(labels)
	if rec.PrimaryLabel == "" {
		rec.PrimaryLabel = Unknown
	}
}
