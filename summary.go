package sentilabel

import (
	"strings"
)

// Summary renders the decided layers of rec on one line, such as
//
//	Sentimen: negative | Target: coaching_staff | Waktu: immediate
//
// Layers are named by their title when the lexicon gives one. Unknown
// layers are skipped; a record with no decided layer yields Unknown.
func (e *Engine) Summary(rec *LabelRecord) string {
	titles := make(map[string]string, len(e.index.Layers()))
	for _, l := range e.index.Layers() {
		if l.Title != "" {
			titles[l.Name] = l.Title
		}
	}
	return summarize(rec, titles)
}

func summarize(rec *LabelRecord, titles map[string]string) string {
	var parts []string
	for _, ll := range rec.Layers {
		if ll.IsUnknown() {
			continue
		}
		name := ll.Layer
		if t, ok := titles[name]; ok {
			name = t
		}
		parts = append(parts, name+": "+ll.Label)
	}
	if len(parts) == 0 {
		return Unknown
	}
	return strings.Join(parts, " | ")
}
