package sentilabel

// ScoreLayer turns the hits of one layer into a label.
//
// Each category scores hits × weight. The highest score wins; equal scores
// go to the category declared first. Confidence is 1 when exactly one
// category matched and otherwise the winner's margin over the runner-up,
// (top - second) / top. A winning score below minScore yields Unknown with
// zero score and zero confidence. Matches always keeps every category that
// scored, so abstentions can still be explained.
func ScoreLayer(layer Layer, result MatchResult, minScore float64) LayerLabel {
	label := LayerLabel{Layer: layer.Name, Label: Unknown}

	var (
		top, second float64
		winner      = -1
		matched     int
	)
	for i, cat := range layer.Categories {
		m, ok := categoryMatch(result, i, cat.Name)
		if !ok || m.Hits <= 0 {
			continue
		}
		m.Score = float64(m.Hits) * cat.Weight
		label.Matches = append(label.Matches, m)
		matched++

		switch {
		case winner < 0 || m.Score > top:
			second = top
			top = m.Score
			winner = len(label.Matches) - 1
		case m.Score > second:
			second = m.Score
		}
	}

	if winner < 0 || top < minScore {
		return label
	}

	best := label.Matches[winner]
	label.Label = best.Category
	label.RawScore = best.Score
	label.MatchedKeywords = append([]string(nil), best.Keywords...)
	if matched == 1 {
		label.Confidence = 1
	} else {
		label.Confidence = clamp((top-second)/top, 0, 1)
	}
	return label
}

// categoryMatch finds the match for the i-th category, preferring the
// positional entry.
func categoryMatch(result MatchResult, i int, name string) (CategoryMatch, bool) {
	if i < len(result) && result[i].Category == name {
		return result[i], true
	}
	return result.Get(name)
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
