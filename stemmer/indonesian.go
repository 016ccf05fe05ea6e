package stemmer

import (
	"strings"
)

const (
	// minStemLen is the shortest candidate accepted from any affix removal.
	minStemLen = 3
	// maxPrefixes bounds how many prefixes are removed from one word.
	maxPrefixes = 3
)

var (
	particles    = []string{"lah", "kah", "tah", "pun"}
	possessives  = []string{"nya", "ku", "mu"}
	derivational = []string{"kan", "an", "i"}
)

// Indonesian is a dictionary-guided affix-stripping stemmer.
type Indonesian struct {
	roots map[string]struct{}
}

// NewIndonesian returns a stemmer backed by the embedded root dictionary plus
// any extra roots.
func NewIndonesian(extraRoots ...string) *Indonesian {
	roots := parseRoots(rootsData)
	for _, r := range extraRoots {
		if r = strings.ToLower(strings.TrimSpace(r)); r != "" {
			roots[r] = struct{}{}
		}
	}
	return &Indonesian{roots: roots}
}

// IsRoot reports whether word is in the root dictionary.
func (s *Indonesian) IsRoot(word string) bool {
	_, ok := s.roots[word]
	return ok
}

// Stem returns the stem of word. Words containing anything other than ASCII
// letters and hyphens are returned lowercased but otherwise unchanged.
func (s *Indonesian) Stem(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return w
	}
	if strings.Contains(w, "-") {
		return s.stemCompound(w)
	}
	if !isLetters(w) {
		return w
	}
	return s.stemWord(w)
}

// stemCompound collapses reduplication: kata-kata, mudah-mudahan and
// sebaik-baiknya all reduce to the stem of the repeated base.
func (s *Indonesian) stemCompound(w string) string {
	parts := strings.Split(w, "-")
	if len(parts) != 2 || !isLetters(parts[0]) || !isLetters(parts[1]) {
		return w
	}
	a, b := s.stemWord(parts[0]), s.stemWord(parts[1])
	switch {
	case a == b:
		return a
	case strings.HasSuffix(a, b):
		return b
	case strings.HasSuffix(b, a):
		return a
	}
	return w
}

func (s *Indonesian) stemWord(w string) string {
	if len(w) <= minStemLen || s.IsRoot(w) {
		return w
	}

	forms := inflectionalForms(w)
	for _, f := range forms[1:] {
		if s.IsRoot(f) {
			return f
		}
	}
	for _, f := range forms {
		for _, d := range stripDerivational(f, minStemLen) {
			if s.IsRoot(d) {
				return d
			}
		}
	}
	for _, f := range forms {
		if root, ok := s.searchPrefixes(f, maxPrefixes); ok {
			return root
		}
	}
	return w
}

// searchPrefixes explores prefix removals depth-first and returns the first
// candidate that is a known root, with or without a derivational suffix.
func (s *Indonesian) searchPrefixes(w string, depth int) (string, bool) {
	if depth == 0 {
		return "", false
	}
	candidates := stripPrefix(w)
	for _, c := range candidates {
		if s.IsRoot(c) {
			return c, true
		}
		for _, d := range stripDerivational(c, minStemLen) {
			if s.IsRoot(d) {
				return d, true
			}
		}
	}
	for _, c := range candidates {
		if root, ok := s.searchPrefixes(c, depth-1); ok {
			return root, true
		}
	}
	return "", false
}

// inflectionalForms returns w followed by w without its particle and then
// without its possessive pronoun, when present.
func inflectionalForms(w string) []string {
	forms := []string{w}
	if f, ok := trimSuffixMin(w, particles, minStemLen); ok {
		w = f
		forms = append(forms, w)
	}
	if f, ok := trimSuffixMin(w, possessives, minStemLen); ok {
		forms = append(forms, f)
	}
	return forms
}

// stripDerivational returns the candidates left after removing one
// derivational suffix, longest suffix first.
func stripDerivational(w string, min int) []string {
	var out []string
	for _, suf := range derivational {
		if !strings.HasSuffix(w, suf) || len(w)-len(suf) < min {
			continue
		}
		stem := w[:len(w)-len(suf)]
		// Loanwords in -si (prestasi, federasi) keep their final i.
		if suf == "i" && strings.HasSuffix(stem, "s") {
			continue
		}
		out = append(out, stem)
	}
	return out
}

// stripPrefix returns the candidate stems after removing one prefix. Nasal
// prefixes may yield two candidates because the assimilated consonant is
// ambiguous without a dictionary (menilai -> nilai | tilai).
func stripPrefix(w string) []string {
	var out []string
	add := func(c string) {
		if len(c) >= minStemLen {
			out = append(out, c)
		}
	}

	switch {
	case strings.HasPrefix(w, "memper"):
		add(w[6:])
	case strings.HasPrefix(w, "di"), strings.HasPrefix(w, "ke"):
		add(w[2:])
	case strings.HasPrefix(w, "belajar"), strings.HasPrefix(w, "pelajar"):
		add(w[3:])
	case strings.HasPrefix(w, "bekerja"):
		add(w[2:])
	case strings.HasPrefix(w, "ber"), strings.HasPrefix(w, "ter"), strings.HasPrefix(w, "per"):
		add(w[3:])
	case strings.HasPrefix(w, "me"), strings.HasPrefix(w, "pe"):
		nasal(w[2:], add)
	case strings.HasPrefix(w, "se"):
		add(w[2:])
	}
	return out
}

// nasal handles the meN-/peN- allomorphs. rest is the word after "me" or
// "pe". Before a vowel the nasal itself is tried ahead of the consonant it
// may have replaced.
func nasal(rest string, add func(string)) {
	switch {
	case strings.HasPrefix(rest, "ng"):
		r := rest[2:]
		switch {
		case startsWithVowel(r):
			add(r)
			add("k" + r)
			if r[0] == 'e' {
				// menge-/penge- before a monosyllabic root: mengebom, pengecekan.
				add(r[1:])
			}
		case r != "" && strings.IndexByte("ghkq", r[0]) >= 0:
			add(r)
		}
	case strings.HasPrefix(rest, "ny"):
		if r := rest[2:]; startsWithVowel(r) {
			add("s" + r)
		}
	case strings.HasPrefix(rest, "m"):
		r := rest[1:]
		switch {
		case r != "" && strings.IndexByte("bfvp", r[0]) >= 0:
			add(r)
		case startsWithVowel(r):
			add("m" + r)
			add("p" + r)
		}
	case strings.HasPrefix(rest, "n"):
		r := rest[1:]
		switch {
		case r != "" && strings.IndexByte("cdjsz", r[0]) >= 0:
			add(r)
		case startsWithVowel(r):
			add("n" + r)
			add("t" + r)
		}
	case rest != "" && strings.IndexByte("lrwy", rest[0]) >= 0:
		add(rest)
	}
}

func trimSuffixMin(w string, suffixes []string, min int) (string, bool) {
	for _, suf := range suffixes {
		if strings.HasSuffix(w, suf) && len(w)-len(suf) >= min {
			return w[:len(w)-len(suf)], true
		}
	}
	return w, false
}

func startsWithVowel(s string) bool {
	return s != "" && strings.IndexByte("aeiou", s[0]) >= 0
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
