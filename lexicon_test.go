package sentilabel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fahri-Hilm/sentilabel/lexicons"
)

func TestNewLexiconValidation(t *testing.T) {
	valid := func() []Layer { return testLayers() }

	tests := []struct {
		desc     string
		language string
		mutate   func([]Layer) []Layer
		want     error
		layer    string
		category string
	}{
		{
			desc:   "Empty keyword list",
			mutate: func(l []Layer) []Layer { l[1].Categories[0].Keywords = nil; return l },
			want:   ErrEmptyKeywords, layer: "target", category: "coaching_staff",
		},
		{
			desc:   "Zero weight",
			mutate: func(l []Layer) []Layer { l[0].Categories[1].Weight = 0; return l },
			want:   ErrNonPositiveWeight, layer: "core_sentiment", category: "negative",
		},
		{
			desc:   "Negative weight",
			mutate: func(l []Layer) []Layer { l[2].Categories[0].Weight = -1; return l },
			want:   ErrNonPositiveWeight, layer: "root_cause", category: "attack",
		},
		{
			desc:   "Duplicate category",
			mutate: func(l []Layer) []Layer { l[1].Categories[1].Name = "coaching_staff"; return l },
			want:   ErrDuplicateCategory, layer: "target", category: "coaching_staff",
		},
		{
			desc:   "Duplicate layer",
			mutate: func(l []Layer) []Layer { l[3].Name = "target"; return l },
			want:   ErrDuplicateLayer, layer: "target",
		},
		{
			desc:   "No core layer",
			mutate: func(l []Layer) []Layer { l[0].Core = false; return l },
			want:   ErrCoreLayer,
		},
		{
			desc:   "Two core layers",
			mutate: func(l []Layer) []Layer { l[1].Core = true; return l },
			want:   ErrCoreLayer,
		},
		{
			desc:   "Reserved category name",
			mutate: func(l []Layer) []Layer { l[1].Categories[0].Name = Unknown; return l },
			want:   ErrReservedLabel, layer: "target", category: Unknown,
		},
		{
			desc:   "Reserved mixed label",
			mutate: func(l []Layer) []Layer { l[0].Mixed = Unknown; return l },
			want:   ErrReservedLabel, layer: "core_sentiment",
		},
		{
			desc:   "Mixed label outside core layer",
			mutate: func(l []Layer) []Layer { l[1].Mixed = "mixed"; return l },
			want:   ErrMalformedLexicon, layer: "target",
		},
		{
			desc:   "Invalid polarity",
			mutate: func(l []Layer) []Layer { l[0].Categories[0].Polarity = "happy"; return l },
			want:   ErrInvalidPolarity, layer: "core_sentiment", category: "positive",
		},
		{
			desc:   "Blank keyword",
			mutate: func(l []Layer) []Layer { l[3].Categories[0].Keywords = []string{"sekarang", "  "}; return l },
			want:   ErrMalformedLexicon, layer: "time", category: "immediate",
		},
		{
			desc:   "Empty category name",
			mutate: func(l []Layer) []Layer { l[2].Categories[1].Name = ""; return l },
			want:   ErrEmptyName, layer: "root_cause",
		},
		{
			desc:   "No layers",
			mutate: func([]Layer) []Layer { return nil },
			want:   ErrNoLayers,
		},
		{
			desc:     "Unsupported language",
			language: "fr",
			mutate:   func(l []Layer) []Layer { return l },
			want:     ErrUnsupportedLanguage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			lang := tt.language
			if lang == "" {
				lang = "id"
			}
			lex, err := NewLexicon("bad", "1", lang, tt.mutate(valid()))
			require.Error(t, err)
			assert.Nil(t, lex)
			assert.ErrorIs(t, err, tt.want)

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "bad", cfgErr.Lexicon)
			assert.Equal(t, tt.layer, cfgErr.Layer)
			assert.Equal(t, tt.category, cfgErr.Category)
		})
	}
}

func TestNewLexiconNormalizesKeywords(t *testing.T) {
	layers := testLayers()
	layers[0].Categories[0].Keywords = []string{" Luar   Biasa ", "BAGUS", "bagus", "luar biasa"}

	lex, err := NewLexicon("norm", "1", "", layers)
	require.NoError(t, err)

	assert.Equal(t, "id", lex.Language())
	assert.Equal(t, []string{"luar biasa", "bagus"}, lex.Layers()[0].Categories[0].Keywords)
	assert.Equal(t, DefaultMixedLabel, lex.CoreLayer().Mixed)
	assert.Equal(t, DefaultNegators, lex.Negators())
	assert.Contains(t, lex.Words(), "luar")
	assert.Contains(t, lex.Words(), "biasa")
	assert.Equal(t, "norm@1", lex.String())
}

func TestLexiconLayersIsACopy(t *testing.T) {
	lex := newTestLexicon(t)

	layers := lex.Layers()
	layers[0].Name = "changed"
	layers[0].Categories[0].Keywords[0] = "changed"

	fresh := lex.Layers()
	assert.Equal(t, "core_sentiment", fresh[0].Name)
	assert.Equal(t, "bagus", fresh[0].Categories[0].Keywords[0])
}

const smallLexicon = `
name: small
version: "0.1"
language: id
negators: [tidak, bukan]
layers:
  - name: core_sentiment
    core: true
    mixed: ambivalen
    categories:
      - name: positive
        weight: 1
        polarity: positive
        keywords: [bagus]
      - name: negative
        weight: 1
        polarity: negative
        keywords: [jelek]
`

func TestParseLexicon(t *testing.T) {
	lex, err := ParseLexicon([]byte(smallLexicon))
	require.NoError(t, err)

	assert.Equal(t, "small", lex.Name())
	assert.Equal(t, "0.1", lex.Version())
	assert.Equal(t, []string{"tidak", "bukan"}, lex.Negators())
	assert.Equal(t, DefaultIntensifiers, lex.Intensifiers())
	assert.Equal(t, "ambivalen", lex.CoreLayer().Mixed)
	assert.Equal(t, 2, lex.KeywordCount())

	pos, ok := lex.CoreLayer().Category("positive")
	require.True(t, ok)
	assert.Equal(t, Positive, pos.Polarity)
	assert.Equal(t, "core_sentiment", pos.Layer)
}

func TestParseLexiconErrors(t *testing.T) {
	tests := []struct {
		data string
		want error
		desc string
	}{
		{"", ErrNoLayers, "Empty document"},
		{"name: x\nsynonyms: [a]\nlayers: []\n", ErrMalformedLexicon, "Unknown top-level field"},
		{"name: x\nlayers:\n  - name: l\n    core: true\n    categories:\n      - name: c\n        weight: 1\n        keywords: [a]\n        aliases: [b]\n", ErrMalformedLexicon, "Unknown category field"},
		{"name: x\nlayers: [", ErrMalformedLexicon, "Broken YAML"},
		{"name: x\nlayers:\n  - name: l\n    core: true\n    categories:\n      - name: c\n        weight: 1\n        keywords: []\n", ErrEmptyKeywords, "Empty keywords"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := ParseLexicon([]byte(tt.data))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallLexicon), 0o600))

	lex, err := LoadLexicon(path)
	require.NoError(t, err)
	assert.Equal(t, "small", lex.Name())

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	_, err = LoadLexicon(missing)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, missing, cfgErr.Lexicon)
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg := DefaultConfig()
	cfg.LexiconPath = missing
	_, err = NewEngine(cfg)
	assert.ErrorAs(t, err, &cfgErr)
}

func TestBuiltinLexicons(t *testing.T) {
	for _, name := range lexicons.Names() {
		t.Run(name, func(t *testing.T) {
			lex, err := BuiltinLexicon(name)
			require.NoError(t, err)
			assert.Equal(t, name, lex.Name())
			assert.True(t, lex.CoreLayer().Core)
			assert.Greater(t, lex.KeywordCount(), 100)
		})
	}

	def, err := BuiltinLexicon("")
	require.NoError(t, err)
	assert.Equal(t, lexicons.Default, def.Name())
	assert.Equal(t, "mixed", def.CoreLayer().Mixed)

	nine, err := BuiltinLexicon("nine-layer-v1")
	require.NoError(t, err)
	assert.Equal(t, "hopeful_skepticism", nine.CoreLayer().Mixed)
	assert.Len(t, nine.Layers(), 6)

	_, err = BuiltinLexicon("nope")
	assert.ErrorIs(t, err, ErrUnknownLexicon)
}
