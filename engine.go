package sentilabel

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Fahri-Hilm/sentilabel/internal/logger"
	"github.com/Fahri-Hilm/sentilabel/stemmer"
)

// Engine labels texts against every layer of a lexicon. Once built it is
// read-only apart from its stem cache, and Label may be called from any
// number of goroutines.
type Engine struct {
	cfg     Config
	lex     *Lexicon
	norm    *Normalizer
	index   *Index
	agg     *aggregator
	metrics *Metrics
	log     logger.Logger
}

// EngineOpt configures optional engine collaborators.
type EngineOpt func(*engineOpts)

type engineOpts struct {
	lexicon    *Lexicon
	log        logger.Logger
	registerer prometheus.Registerer
	stemmer    stemmer.Stemmer
	normOpts   []NormalizerOpt
}

// UsingLexicon labels with lex instead of the lexicon named in Config.
func UsingLexicon(lex *Lexicon) EngineOpt {
	return func(o *engineOpts) {
		o.lexicon = lex
	}
}

// WithEngineLogger sets the engine logger.
func WithEngineLogger(log logger.Logger) EngineOpt {
	return func(o *engineOpts) {
		o.log = log
	}
}

// WithMetrics registers engine metrics on reg.
func WithMetrics(reg prometheus.Registerer) EngineOpt {
	return func(o *engineOpts) {
		o.registerer = reg
	}
}

// UsingStemmer replaces the stemmer chosen from the lexicon language.
func UsingStemmer(s stemmer.Stemmer) EngineOpt {
	return func(o *engineOpts) {
		o.stemmer = s
	}
}

// WithNormalizerOpts passes extra options to the engine's normalizer. They
// are applied after the options derived from Config.
func WithNormalizerOpts(opts ...NormalizerOpt) EngineOpt {
	return func(o *engineOpts) {
		o.normOpts = append(o.normOpts, opts...)
	}
}

// NewEngine loads the lexicon, builds the normalizer and the keyword index,
// and returns a ready engine. Invalid configuration or lexicon data yields a
// *ConfigurationError; an unavailable segmenter yields a
// *ResourceInitError.
func NewEngine(cfg Config, opts ...EngineOpt) (*Engine, error) {
	o := engineOpts{log: logger.NewNop()}
	for _, applyOpt := range opts {
		applyOpt(&o)
	}
	if o.log == nil {
		o.log = logger.NewNop()
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ConfigurationError{Err: err}
	}

	lex := o.lexicon
	if lex == nil {
		var err error
		if lex, err = cfg.lexicon(); err != nil {
			return nil, err
		}
	}

	st := o.stemmer
	if st == nil {
		var err error
		if st, err = stemmer.New(lex.Language()); err != nil {
			return nil, &ConfigurationError{Lexicon: lex.Name(), Err: fmt.Errorf("%w: %v", ErrUnsupportedLanguage, err)}
		}
	}

	normOpts := append([]NormalizerOpt{
		WithCleanOptions(cfg.Clean),
		WithStemmer(st),
		WithLanguage(lex.Language()),
		WithNegation(cfg.Negation, lex.Negators(), lex.Intensifiers()),
		WithProtectedWords(lex.Words()...),
		WithLogger(o.log),
	}, o.normOpts...)
	norm, err := NewNormalizer(normOpts...)
	if err != nil {
		return nil, err
	}

	index := NewIndex(lex, norm, o.log, WithHitCounting(cfg.HitCounting))
	e := &Engine{
		cfg:   cfg,
		lex:   lex,
		norm:  norm,
		index: index,
		agg:   newAggregator(index.Layers(), cfg.ConflictThreshold),
		log:   o.log,
	}
	if o.registerer != nil {
		e.metrics = NewMetrics(o.registerer, norm.Cache().Len)
		e.metrics.loaded(lex.KeywordCount(), index.Size())
	}

	o.log.Info("lexicon loaded",
		logger.String("lexicon", lex.Name()),
		logger.String("version", lex.Version()),
		logger.Int("layers", len(index.Layers())),
		logger.Int("keywords", lex.KeywordCount()),
		logger.Int("patterns", index.Size()),
		logger.String("negation", string(norm.Strategy())),
		logger.String("hit_counting", string(cfg.HitCounting)))

	return e, nil
}

// Label classifies text on every layer. It never fails: text without
// evidence gets Unknown on every layer.
func (e *Engine) Label(text string) *LabelRecord {
	start := time.Now()

	doc := e.norm.Normalize(text)
	results := e.index.Match(doc)

	rec := &LabelRecord{
		Text:           text,
		Normalized:     doc.NormalizedText(),
		Layers:         make([]LayerLabel, len(results)),
		Negated:        doc.Negated,
		LexiconVersion: e.lex.String(),
	}
	for i, layer := range e.index.Layers() {
		rec.Layers[i] = ScoreLayer(layer, results[i], e.cfg.MinScore)
	}
	if e.cfg.Negation == NegationFlag && doc.Negated {
		e.agg.flipPolarity(rec.Layers)
	}
	e.agg.fill(rec)

	elapsed := time.Since(start)
	e.metrics.observe(rec, elapsed)
	e.log.Debug("text labeled",
		logger.String("primary_label", rec.PrimaryLabel),
		logger.Float64("avg_confidence", rec.AvgConfidence),
		logger.Bool("conflict", rec.ConflictFlag),
		logger.Duration("elapsed", elapsed))
	return rec
}

// Lexicon returns the loaded lexicon.
func (e *Engine) Lexicon() *Lexicon {
	return e.lex
}

// Normalizer returns the engine's normalizer.
func (e *Engine) Normalizer() *Normalizer {
	return e.norm
}

// Index returns the stemmed keyword index.
func (e *Engine) Index() *Index {
	return e.index
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Metrics returns the engine metrics, or nil when none were registered.
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}
