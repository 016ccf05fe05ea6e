package sentilabel

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Fahri-Hilm/sentilabel/lexicons"
)

// DefaultMixedLabel names the core layer's ambivalent label when a lexicon
// does not declare one.
const DefaultMixedLabel = "mixed"

// Default negators and intensifiers for Indonesian lexicons that do not
// declare their own.
var (
	DefaultNegators     = []string{"tidak", "bukan", "jangan", "belum", "tiada", "tanpa", "nggak", "gak", "ga", "enggak", "ndak"}
	DefaultIntensifiers = []string{"sangat", "sekali", "banget", "amat", "terlalu", "paling"}
)

// A Category is one possible label within a layer.
type Category struct {
	Name     string
	Layer    string
	Weight   float64
	Polarity Polarity
	Keywords []string
}

// A Layer is an ordered group of mutually exclusive categories.
type Layer struct {
	Name       string
	Title      string
	Core       bool
	Mixed      string
	Categories []Category
}

// Category returns the named category of the layer.
func (l Layer) Category(name string) (Category, bool) {
	for _, c := range l.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// Lexicon is a validated, immutable set of layers. It is safe for concurrent
// use; accessors return copies.
type Lexicon struct {
	name         string
	version      string
	language     string
	description  string
	negators     []string
	intensifiers []string
	layers       []Layer
}

// lexiconFile is the on-disk YAML shape of a lexicon.
type lexiconFile struct {
	Name         string      `yaml:"name"`
	Version      string      `yaml:"version"`
	Language     string      `yaml:"language"`
	Description  string      `yaml:"description"`
	Negators     []string    `yaml:"negators"`
	Intensifiers []string    `yaml:"intensifiers"`
	Layers       []layerFile `yaml:"layers"`
}

type layerFile struct {
	Name       string         `yaml:"name"`
	Title      string         `yaml:"title"`
	Core       bool           `yaml:"core"`
	Mixed      string         `yaml:"mixed"`
	Categories []categoryFile `yaml:"categories"`
}

type categoryFile struct {
	Name     string   `yaml:"name"`
	Weight   float64  `yaml:"weight"`
	Polarity Polarity `yaml:"polarity"`
	Keywords []string `yaml:"keywords"`
}

// LoadLexicon reads and validates a lexicon file.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Lexicon: path, Err: fmt.Errorf("error reading lexicon file: %w", err)}
	}
	return ParseLexicon(data)
}

// BuiltinLexicon returns one of the embedded lexicons by name.
func BuiltinLexicon(name string) (*Lexicon, error) {
	if name == "" {
		name = lexicons.Default
	}
	data, err := lexicons.Read(name)
	if err != nil {
		return nil, &ConfigurationError{Lexicon: name, Err: fmt.Errorf("%w (have %s)", ErrUnknownLexicon, strings.Join(lexicons.Names(), ", "))}
	}
	return ParseLexicon(data)
}

// ParseLexicon decodes YAML lexicon data. Unknown fields are rejected and
// every validation failure is reported as a *ConfigurationError.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var file lexiconFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ConfigurationError{Err: ErrNoLayers}
		}
		return nil, &ConfigurationError{Err: fmt.Errorf("%w: %v", ErrMalformedLexicon, err)}
	}
	return NewLexicon(file.Name, file.Version, file.Language, file.toLayers(),
		WithNegators(file.Negators...),
		WithIntensifiers(file.Intensifiers...),
		WithDescription(file.Description))
}

func (f lexiconFile) toLayers() []Layer {
	layers := make([]Layer, 0, len(f.Layers))
	for _, lf := range f.Layers {
		layer := Layer{Name: lf.Name, Title: lf.Title, Core: lf.Core, Mixed: lf.Mixed}
		for _, cf := range lf.Categories {
			layer.Categories = append(layer.Categories, Category{
				Name:     cf.Name,
				Layer:    lf.Name,
				Weight:   cf.Weight,
				Polarity: cf.Polarity,
				Keywords: cf.Keywords,
			})
		}
		layers = append(layers, layer)
	}
	return layers
}

// A LexiconOpt sets optional lexicon metadata.
type LexiconOpt func(*Lexicon)

// WithNegators overrides the default negator list.
func WithNegators(words ...string) LexiconOpt {
	return func(l *Lexicon) {
		if len(words) > 0 {
			l.negators = normalizeWordList(words)
		}
	}
}

// WithIntensifiers overrides the default intensifier list.
func WithIntensifiers(words ...string) LexiconOpt {
	return func(l *Lexicon) {
		if len(words) > 0 {
			l.intensifiers = normalizeWordList(words)
		}
	}
}

// WithDescription sets a free-form description.
func WithDescription(desc string) LexiconOpt {
	return func(l *Lexicon) {
		l.description = desc
	}
}

// NewLexicon validates layers and builds an immutable Lexicon from them.
// Keywords are lowercased, trimmed and deduplicated within a category;
// declared order is preserved everywhere.
func NewLexicon(name, version, language string, layers []Layer, opts ...LexiconOpt) (*Lexicon, error) {
	if language == "" {
		language = "id"
	}
	lex := &Lexicon{
		name:         name,
		version:      version,
		language:     strings.ToLower(language),
		negators:     DefaultNegators,
		intensifiers: DefaultIntensifiers,
	}
	for _, opt := range opts {
		opt(lex)
	}

	fail := func(layer, category string, err error) error {
		return &ConfigurationError{Lexicon: name, Layer: layer, Category: category, Err: err}
	}

	switch lex.language {
	case "id", "en":
	default:
		return nil, fail("", "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language))
	}
	if len(layers) == 0 {
		return nil, fail("", "", ErrNoLayers)
	}

	seenLayers := make(map[string]bool, len(layers))
	cores := 0
	for _, layer := range layers {
		if strings.TrimSpace(layer.Name) == "" {
			return nil, fail("", "", fmt.Errorf("layer %w", ErrEmptyName))
		}
		if seenLayers[layer.Name] {
			return nil, fail(layer.Name, "", ErrDuplicateLayer)
		}
		seenLayers[layer.Name] = true

		if layer.Core {
			cores++
		} else if layer.Mixed != "" {
			return nil, fail(layer.Name, "", fmt.Errorf("%w: mixed label is only allowed on the core layer", ErrMalformedLexicon))
		}
		if layer.Mixed == Unknown {
			return nil, fail(layer.Name, "", ErrReservedLabel)
		}

		built := Layer{Name: layer.Name, Title: layer.Title, Core: layer.Core, Mixed: layer.Mixed}
		if built.Core && built.Mixed == "" {
			built.Mixed = DefaultMixedLabel
		}
		if len(layer.Categories) == 0 {
			return nil, fail(layer.Name, "", fmt.Errorf("%w: layer has no categories", ErrMalformedLexicon))
		}

		seenCats := make(map[string]bool, len(layer.Categories))
		for _, cat := range layer.Categories {
			switch {
			case strings.TrimSpace(cat.Name) == "":
				return nil, fail(layer.Name, "", fmt.Errorf("category %w", ErrEmptyName))
			case cat.Name == Unknown:
				return nil, fail(layer.Name, cat.Name, ErrReservedLabel)
			case seenCats[cat.Name]:
				return nil, fail(layer.Name, cat.Name, ErrDuplicateCategory)
			case !(cat.Weight > 0):
				return nil, fail(layer.Name, cat.Name, fmt.Errorf("%w: %v", ErrNonPositiveWeight, cat.Weight))
			case !cat.Polarity.Valid():
				return nil, fail(layer.Name, cat.Name, fmt.Errorf("%w: %q", ErrInvalidPolarity, cat.Polarity))
			}
			seenCats[cat.Name] = true

			keywords, err := normalizeKeywords(cat.Keywords)
			if err != nil {
				return nil, fail(layer.Name, cat.Name, err)
			}
			built.Categories = append(built.Categories, Category{
				Name:     cat.Name,
				Layer:    layer.Name,
				Weight:   cat.Weight,
				Polarity: cat.Polarity,
				Keywords: keywords,
			})
		}
		lex.layers = append(lex.layers, built)
	}

	if cores != 1 {
		return nil, fail("", "", fmt.Errorf("%w (found %d)", ErrCoreLayer, cores))
	}
	return lex, nil
}

func normalizeKeywords(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyKeywords
	}
	seen := make(map[string]bool, len(raw))
	out := make([]string, 0, len(raw))
	for _, kw := range raw {
		kw = strings.Join(strings.Fields(strings.ToLower(kw)), " ")
		if kw == "" {
			return nil, fmt.Errorf("%w: blank keyword", ErrMalformedLexicon)
		}
		if seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	return out, nil
}

func normalizeWordList(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Name returns the lexicon name.
func (l *Lexicon) Name() string { return l.name }

// Version returns the lexicon version string.
func (l *Lexicon) Version() string { return l.version }

// Language returns the ISO 639-1 language code of the keywords.
func (l *Lexicon) Language() string { return l.language }

// Description returns the free-form description.
func (l *Lexicon) Description() string { return l.description }

// Negators returns a copy of the negator words.
func (l *Lexicon) Negators() []string { return append([]string(nil), l.negators...) }

// Intensifiers returns a copy of the intensifier words.
func (l *Lexicon) Intensifiers() []string { return append([]string(nil), l.intensifiers...) }

// Layers returns a deep copy of the layers in declared order.
func (l *Lexicon) Layers() []Layer {
	out := make([]Layer, len(l.layers))
	for i, layer := range l.layers {
		out[i] = layer
		out[i].Categories = make([]Category, len(layer.Categories))
		for j, c := range layer.Categories {
			c.Keywords = append([]string(nil), c.Keywords...)
			out[i].Categories[j] = c
		}
	}
	return out
}

// CoreLayer returns the layer that carries core sentiment.
func (l *Lexicon) CoreLayer() Layer {
	for _, layer := range l.Layers() {
		if layer.Core {
			return layer
		}
	}
	return Layer{}
}

// KeywordCount returns the total number of keywords across all categories.
func (l *Lexicon) KeywordCount() int {
	n := 0
	for _, layer := range l.layers {
		for _, c := range layer.Categories {
			n += len(c.Keywords)
		}
	}
	return n
}

// Words returns every distinct word appearing in any keyword. The
// normalizer never treats these as stopwords.
func (l *Lexicon) Words() []string {
	seen := make(map[string]bool)
	var out []string
	for _, layer := range l.layers {
		for _, c := range layer.Categories {
			for _, kw := range c.Keywords {
				for _, w := range strings.Fields(kw) {
					if !seen[w] {
						seen[w] = true
						out = append(out, w)
					}
				}
			}
		}
	}
	return out
}

// String identifies the lexicon for logs.
func (l *Lexicon) String() string {
	return fmt.Sprintf("%s@%s", l.name, l.version)
}
