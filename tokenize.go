package sentilabel

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenTester func(string) bool

// Tokenizer splits a sentence into words.
type Tokenizer interface {
	Tokenize(string) []string
}

// iterTokenizer splits a sentence into words, peeling leading and trailing
// punctuation off each whitespace-delimited span.
type iterTokenizer struct {
	specialRE      *regexp.Regexp
	sanitizer      *strings.Replacer
	suffixes       []string
	prefixes       []string
	emoticons      map[string]int
	isUnsplittable TokenTester
	keepPunct      bool
}

type TokenizerOptFunc func(*iterTokenizer)

// UsingIsUnsplittable gives a function that tests whether a token is splittable or not.
func UsingIsUnsplittable(x TokenTester) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.isUnsplittable = x
	}
}

// KeepingPunctuation keeps punctuation-only tokens instead of dropping them.
func KeepingPunctuation(keep bool) TokenizerOptFunc {
	return func(tokenizer *iterTokenizer) {
		tokenizer.keepPunct = keep
	}
}

// NewIterTokenizer is the constructor for the default iterTokenizer.
func NewIterTokenizer(opts ...TokenizerOptFunc) *iterTokenizer {
	tok := new(iterTokenizer)

	tok.emoticons = emoticons
	tok.isUnsplittable = func(_ string) bool { return false }
	tok.prefixes = prefixes
	tok.sanitizer = sanitizer
	tok.specialRE = internalRE
	tok.suffixes = suffixes

	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	return tok
}

func addToken(s string, toks []string) []string {
	if strings.TrimSpace(s) != "" {
		toks = append(toks, s)
	}
	return toks
}

func (t *iterTokenizer) isSpecial(token string) bool {
	_, found := t.emoticons[token]
	return found || t.specialRE.MatchString(token) || t.isUnsplittable(token)
}

func (t *iterTokenizer) doSplit(token string) []string {
	tokens := []string{}
	suffs := []string{}

	last := 0
	for token != "" && utf8.RuneCountInString(token) != last {
		if t.isSpecial(token) {
			// Emoticons and abbreviations are kept whole.
			tokens = addToken(token, tokens)
			break
		}
		last = utf8.RuneCountInString(token)
		if hasAnyPrefix(token, t.prefixes) {
			// Remove prefixes -- e.g., (bagus -> [(, bagus].
			tokens = addToken(string(token[0]), tokens)
			token = token[1:]
		} else if hasAnySuffix(token, t.suffixes) {
			// Remove suffixes -- e.g., jelek!) -> [jelek, !, )].
			suffs = append([]string{string(token[len(token)-1])}, suffs...)
			token = token[:len(token)-1]
		} else {
			tokens = addToken(token, tokens)
		}
	}

	return append(tokens, suffs...)
}

// Tokenize splits a sentence into a slice of words.
func (t *iterTokenizer) Tokenize(text string) []string {
	var tokens []string
	cache := map[string][]string{}

	for _, span := range strings.Fields(t.sanitizer.Replace(text)) {
		toks, found := cache[span]
		if !found {
			toks = t.doSplit(span)
			cache[span] = toks
		}
		for _, tok := range toks {
			if !t.keepPunct && isPunctuation(tok) {
				continue
			}
			tokens = append(tokens, tok)
		}
	}

	return tokens
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if len(s) > len(p) && strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if len(s) > len(suf) && strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// isPunctuation reports whether s has no letters or digits.
func isPunctuation(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

var internalRE = regexp.MustCompile(`^(?:[A-Za-z]\.){2,}$|^[A-Z][a-z]{1,2}\.$`)
var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")
var suffixes = []string{",", ")", `"`, "]", "!", ";", ".", "?", ":", "'"}
var prefixes = []string{"$", "(", `"`, "["}
var emoticons = map[string]int{
	":(":   1,
	":((":  1,
	":)":   1,
	":))":  1,
	":-)":  1,
	":-(":  1,
	":-/":  1,
	":/":   1,
	":D":   1,
	":P":   1,
	":p":   1,
	":O":   1,
	":o":   1,
	":|":   1,
	":@":   1,
	";)":   1,
	"=)":   1,
	"=(":   1,
	"-_-":  1,
	"-__-": 1,
	"^_^":  1,
	"xD":   1,
	"XD":   1,
	"T_T":  1,
	"o_O":  1,
}
