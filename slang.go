package sentilabel

import (
	"strings"
)

// emojiWords maps common emoji to the Indonesian word they stand for.
var emojiWords = map[string]string{
	"😂": "tertawa",
	"🤣": "tertawa",
	"😭": "menangis",
	"😡": "marah",
	"🤬": "marah",
	"😢": "sedih",
	"😍": "cinta",
	"🔥": "api",
	"👍": "bagus",
	"👎": "jelek",
	"❤️": "cinta",
	"❤": "cinta",
	"💔": "patah hati",
	"😤": "kesal",
	"🤦": "menggeleng",
	"🙏": "doa",
	"😎": "keren",
	"💪": "semangat",
	"👏": "salut",
}

// emoticonWords maps ASCII emoticons, matched as whole words.
var emoticonWords = map[string]string{
	":)":  "senang",
	":-)": "senang",
	"=)":  "senang",
	":(":  "sedih",
	":-(": "sedih",
	"=(":  "sedih",
	":D":  "senang",
	":-D": "senang",
	":P":  "jahil",
	":p":  "jahil",
	":/":  "bingung",
	":-/": "bingung",
	":O":  "terkejut",
	":o":  "terkejut",
	";)":  "wink",
	":|":  "datar",
	":@":  "marah",
}

// slangWords expands chat abbreviations and informal spellings.
var slangWords = map[string]string{
	"yg":    "yang",
	"dgn":   "dengan",
	"dg":    "dengan",
	"tdk":   "tidak",
	"tak":   "tidak",
	"gk":    "tidak",
	"ngga":  "nggak",
	"kagak": "nggak",
	"sdh":   "sudah",
	"udh":   "sudah",
	"udah":  "sudah",
	"blm":   "belum",
	"utk":   "untuk",
	"krn":   "karena",
	"karna": "karena",
	"jgn":   "jangan",
	"wkt":   "waktu",
	"skrg":  "sekarang",
	"mrk":   "mereka",
	"pd":    "pada",
	"bgt":   "banget",
	"bgs":   "bagus",
	"sm":    "sama",
	"aja":   "saja",
	"emg":   "memang",
	"klo":   "kalau",
	"kalo":  "kalau",
	"tp":    "tapi",
	"dll":   "dan lain-lain",
}

var emojiReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(emojiWords))
	// Longer sequences first so "❤️" wins over "❤".
	for _, e := range []string{"❤️"} {
		pairs = append(pairs, e, " "+emojiWords[e]+" ")
	}
	for e, w := range emojiWords {
		if e == "❤️" {
			continue
		}
		pairs = append(pairs, e, " "+w+" ")
	}
	return strings.NewReplacer(pairs...)
}()

// emojiToText replaces emoji with words and whole-word emoticons with
// words.
func emojiToText(text string) string {
	text = emojiReplacer.Replace(text)
	fields := strings.Fields(text)
	changed := false
	for i, f := range fields {
		if w, ok := emoticonWords[f]; ok {
			fields[i] = w
			changed = true
		}
	}
	if !changed {
		return text
	}
	return strings.Join(fields, " ")
}

// expandSlang rewrites abbreviations word by word. Expansions may contain
// several words.
func expandSlang(words []string) []string {
	var out []string
	for i, w := range words {
		full, ok := slangWords[w]
		if !ok {
			if out != nil {
				out = append(out, w)
			}
			continue
		}
		if out == nil {
			out = append(make([]string, 0, len(words)+2), words[:i]...)
		}
		out = append(out, strings.Fields(full)...)
	}
	if out == nil {
		return words
	}
	return out
}
