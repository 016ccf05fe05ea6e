package sentilabel

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// indonesianStopwords holds function words that carry no classification
// signal. Negators, intensifiers and contrastive conjunctions are
// deliberately absent.
var indonesianStopwords = []string{
	"yang", "di", "ke", "dari", "dan", "atau", "ini", "itu", "dengan", "untuk",
	"pada", "adalah", "ialah", "sebagai", "dalam", "oleh", "karena", "agar",
	"supaya", "juga", "saja", "pun", "lah", "kah", "dong", "sih", "deh", "kok",
	"nih", "tuh", "kan", "toh", "yah", "aku", "saya", "kamu", "anda", "dia",
	"beliau", "kita", "kami", "mereka", "kalian", "nya", "si", "sang", "para",
	"akan", "telah", "sudah", "sedang", "masih", "lagi", "bahwa", "hal", "tersebut",
	"begitu", "demikian", "sini", "situ", "sana", "tersebut", "oleh", "antara",
	"bagi", "tentang", "seperti", "hingga", "sampai", "sejak", "ketika", "saat",
	"setelah", "sebelum", "sambil", "serta", "maupun", "ada", "jadi", "pula",
	"apa", "siapa", "mana", "dimana", "kenapa", "mengapa", "bagaimana", "gimana",
	"kapan", "berapa", "sebuah", "seorang", "suatu", "tiap", "setiap", "para",
	"dll", "dsb", "wkwk", "wkwkwk", "haha", "hehe", "hihi",
}

// stopwordCandidates are probed against the bbalet/stopwords lists for the
// lexicon language; only the ones the library recognizes are added.
var stopwordCandidates = map[string][]string{
	"id": {
		"adalah", "agak", "agaknya", "akankah", "akhirnya", "andalah", "antaranya",
		"apabila", "apakah", "apalagi", "bagaimanakah", "bahkan", "bahwasanya",
		"beberapa", "begini", "beginian", "belakangan", "berikut", "betapa",
		"biasanya", "bilamana", "dahulu", "dapat", "demi", "dia", "dimanakah",
		"hanya", "hendak", "inilah", "itulah", "jika", "kalaupun", "kamilah",
		"kemudian", "kepada", "kiranya", "lalu", "maka", "manakala", "meski",
		"meskipun", "misalnya", "nanti", "olehnya", "pada", "padahal", "sebab",
		"sebagaimana", "sedangkan", "sehingga", "sekitar", "selagi", "semua",
		"seraya", "sesudah", "sewaktu", "tadi", "tentu", "yaitu", "yakni",
	},
	"en": {
		"a", "an", "and", "are", "as", "at", "be", "been", "by", "for", "from",
		"has", "had", "have", "he", "her", "his", "how", "i", "in", "is", "it",
		"its", "of", "on", "or", "she", "that", "the", "their", "them", "they",
		"this", "to", "was", "we", "were", "what", "when", "where", "which", "who",
		"will", "with", "would", "you", "your", "about", "after", "all", "also",
		"am", "any", "because", "before", "being", "between", "both", "can",
		"did", "do", "does", "each", "here", "him", "if", "into", "just", "me",
		"my", "our", "so", "some", "than", "then", "there", "these", "those",
	},
}

// probeStopwords returns the candidates the stopwords library removes for
// langCode. The library does not export its lists, so each word is tested.
func probeStopwords(langCode string, candidates []string) []string {
	var found []string
	for _, word := range candidates {
		if strings.TrimSpace(stopwords.CleanString(word, langCode, false)) == "" {
			found = append(found, word)
		}
	}
	return found
}

// StopwordSet is an immutable set of words removed during normalization.
type StopwordSet map[string]struct{}

// NewStopwordSet builds the stopword set for a lexicon language. Words in
// keep are never stopwords.
func NewStopwordSet(langCode string, keep ...[]string) StopwordSet {
	set := make(StopwordSet)
	if langCode == "id" {
		for _, w := range indonesianStopwords {
			set[w] = struct{}{}
		}
	}
	for _, w := range probeStopwords(langCode, stopwordCandidates[langCode]) {
		set[w] = struct{}{}
	}
	for _, list := range keep {
		for _, w := range list {
			delete(set, w)
		}
	}
	return set
}

// Contains reports whether w is a stopword.
func (s StopwordSet) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// Words returns the stopwords in no particular order.
func (s StopwordSet) Words() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	return out
}
