package sentilabel

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CleanOptions toggles the individual cleaning steps. Every step defaults
// to on; see DefaultCleanOptions.
type CleanOptions struct {
	RemoveHTML        bool `yaml:"remove_html"`
	RemoveURLs        bool `yaml:"remove_urls"`
	RemoveMentions    bool `yaml:"remove_mentions"`
	KeepHashtagText   bool `yaml:"keep_hashtag_text"`
	RemoveEmails      bool `yaml:"remove_emails"`
	RemovePhones      bool `yaml:"remove_phones"`
	EmojiToText       bool `yaml:"emoji_to_text"`
	RemoveEmojis      bool `yaml:"remove_emojis"`
	RemoveNumbers     bool `yaml:"remove_numbers" env:"SENTILABEL_REMOVE_NUMBERS"`
	RemovePunctuation bool `yaml:"remove_punctuation"`
	CollapsePunct     bool `yaml:"collapse_punctuation"`
	CollapseChars     bool `yaml:"collapse_repeated_chars"`
	CollapseWords     bool `yaml:"collapse_repeated_words"`
	FoldAccents       bool `yaml:"fold_accents"`
	ExpandSlang       bool `yaml:"expand_slang" env:"SENTILABEL_EXPAND_SLANG"`
	Lowercase         bool `yaml:"lowercase"`
	// MinLength empties cleaned text shorter than this many runes.
	MinLength int `yaml:"min_length" env:"SENTILABEL_MIN_LENGTH"`
}

// DefaultCleanOptions returns the standard cleaning configuration.
func DefaultCleanOptions() CleanOptions {
	return CleanOptions{
		RemoveHTML:        true,
		RemoveURLs:        true,
		RemoveMentions:    true,
		KeepHashtagText:   true,
		RemoveEmails:      true,
		RemovePhones:      true,
		EmojiToText:       true,
		RemoveEmojis:      true,
		RemoveNumbers:     true,
		RemovePunctuation: true,
		CollapsePunct:     true,
		CollapseChars:     true,
		CollapseWords:     true,
		FoldAccents:       true,
		ExpandSlang:       true,
		Lowercase:         true,
		MinLength:         3,
	}
}

var (
	htmlTagRE    = regexp.MustCompile(`<[^>]*>`)
	htmlEntityRE = regexp.MustCompile(`&[a-zA-Z]+;|&#[0-9]+;`)
	urlRE        = regexp.MustCompile(`(?i)https?://\S+|www\.\S+`)
	emailRE      = regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.-]+`)
	mentionRE    = regexp.MustCompile(`@\w+`)
	hashtagRE    = regexp.MustCompile(`#(\w+)`)
	phoneRE      = regexp.MustCompile(`(?:\+62|62|0)[0-9]{8,12}`)
	digitsRE     = regexp.MustCompile(`[0-9]+`)
)

// Cleaner applies CleanOptions to raw text. A Cleaner is immutable and safe
// for concurrent use.
type Cleaner struct {
	opts CleanOptions
}

// NewCleaner creates a cleaner with the given options.
func NewCleaner(opts CleanOptions) *Cleaner {
	return &Cleaner{opts: opts}
}

// Options returns the cleaner's options.
func (c *Cleaner) Options() CleanOptions {
	return c.opts
}

// Clean returns the cleaned form of text. It never fails; degenerate input
// yields "".
func (c *Cleaner) Clean(text string) string {
	text = strings.Join(c.Words(c.StripMarkup(text)), " ")
	if c.opts.MinLength > 0 && utf8.RuneCountInString(text) < c.opts.MinLength {
		return ""
	}
	return text
}

// StripMarkup removes everything that is not prose: HTML, URLs, emails,
// mentions, phone numbers and emoji. Sentence punctuation and case are
// left alone so the result can still be segmented.
func (c *Cleaner) StripMarkup(text string) string {
	o := c.opts
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, " ")
	}

	text = mojibake.Replace(text)
	if o.RemoveHTML {
		text = htmlTagRE.ReplaceAllString(text, " ")
		text = htmlEntityRE.ReplaceAllString(text, " ")
	}
	if o.RemoveURLs {
		text = urlRE.ReplaceAllString(text, " ")
	}
	if o.RemoveEmails {
		text = emailRE.ReplaceAllString(text, " ")
	}
	if o.RemoveMentions {
		text = mentionRE.ReplaceAllString(text, " ")
	}
	if o.KeepHashtagText {
		text = hashtagRE.ReplaceAllString(text, " $1 ")
	} else {
		text = hashtagRE.ReplaceAllString(text, " ")
	}
	if o.RemovePhones {
		text = phoneRE.ReplaceAllString(text, " ")
	}
	if o.EmojiToText {
		text = emojiToText(text)
	}
	if o.RemoveEmojis {
		text = strings.Map(func(r rune) rune {
			if isEmoji(r) {
				return ' '
			}
			return r
		}, text)
	}
	return strings.TrimSpace(text)
}

// Words applies the word-level steps to a markup-free span and returns the
// resulting words. MinLength is not applied.
func (c *Cleaner) Words(text string) []string {
	o := c.opts
	if o.FoldAccents {
		text = foldAccents(text)
	}
	if o.Lowercase {
		text = strings.ToLower(text)
	}
	if o.RemoveNumbers {
		text = digitsRE.ReplaceAllString(text, " ")
	}
	if o.RemovePunctuation {
		text = stripPunctuation(text)
	} else if o.CollapsePunct {
		text = collapseRuns(text, func(r rune) bool { return strings.ContainsRune("!?.,", r) }, 2)
	}
	if o.CollapseChars {
		text = collapseRuns(text, unicode.IsLetter, 1)
	}

	words := strings.Fields(text)
	if o.ExpandSlang {
		words = expandSlang(words)
	}
	if o.CollapseWords {
		words = collapseRepeatedWords(words)
	}
	return words
}

// foldAccents strips combining marks: "café" becomes "cafe".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// stripPunctuation replaces every rune that is not a letter, digit or space
// with a space. Hyphens between two letters survive so reduplicated words such as
// "kata-kata" stay one token.
func stripPunctuation(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range rs {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
			b.WriteRune(r)
		case r == '-' && i > 0 && i < len(rs)-1 && unicode.IsLetter(rs[i-1]) && unicode.IsLetter(rs[i+1]):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// collapseRuns shortens any run of three or more identical runes matching
// pred to keep runes.
func collapseRuns(s string, pred func(rune) bool, keep int) string {
	var b strings.Builder
	b.Grow(len(s))
	rs := []rune(s)
	for i := 0; i < len(rs); {
		j := i + 1
		for j < len(rs) && rs[j] == rs[i] {
			j++
		}
		n := j - i
		if n >= 3 && pred(rs[i]) {
			n = keep
		}
		for k := 0; k < n; k++ {
			b.WriteRune(rs[i])
		}
		i = j
	}
	return b.String()
}

// collapseRepeatedWords reduces three or more consecutive identical words to
// one. Two repetitions are left alone since they are often reduplication.
func collapseRepeatedWords(words []string) []string {
	out := words[:0:0]
	for i := 0; i < len(words); {
		j := i + 1
		for j < len(words) && words[j] == words[i] {
			j++
		}
		n := j - i
		if n >= 3 {
			n = 1
		}
		for k := 0; k < n; k++ {
			out = append(out, words[i])
		}
		i = j
	}
	return out
}

func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F000 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r == 0xFE0F || r == 0x200D || r == 0x20E3:
		return true
	}
	return unicode.Is(unicode.So, r)
}

var mojibake = strings.NewReplacer(
	"Ã©", "e", "Ã¨", "e", "Ã«", "e",
	"Ã¡", "a", "Ã¢", "a", "Ã£", "a",
	"Ã­", "i", "Ã¬", "i", "Ã®", "i",
	"Ã³", "o", "Ã²", "o", "Ã´", "o", "Ãµ", "o",
	"Ãº", "u", "Ã¹", "u", "Ã»", "u",
	"Ã½", "y", "Ã¿", "y", "Ã§", "c", "Ã±", "n", "ÃŸ", "ss",
	"“", `"`, "”", `"`, "‘", "'", "’", "'",
	"&rsquo;", "'", "&amp;", "&",
)
