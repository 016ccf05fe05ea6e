package sentilabel

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// MetricsNamespace is the namespace for all engine metrics.
	MetricsNamespace = "sentilabel"

	// MetricsSubsystem is the subsystem for labeling metrics.
	MetricsSubsystem = "engine"
)

// Metrics holds the Prometheus collectors of an Engine. A nil *Metrics
// records nothing.
type Metrics struct {
	TextsLabeledTotal  prometheus.Counter
	LabelsTotal        *prometheus.CounterVec
	UnknownTotal       *prometheus.CounterVec
	ConflictsTotal     prometheus.Counter
	NegatedTotal       prometheus.Counter
	LabelDuration      prometheus.Histogram
	StemCacheEntries   prometheus.GaugeFunc
	LexiconKeywords    prometheus.Gauge
	IndexPatterns      prometheus.Gauge
	BatchTextsInflight prometheus.Gauge
}

// NewMetrics creates and registers the engine metrics on reg. cacheSize is
// sampled on every scrape.
func NewMetrics(reg prometheus.Registerer, cacheSize func() int) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	m := &Metrics{}

	m.TextsLabeledTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "texts_labeled_total",
		Help:      "Total number of texts labeled",
	})

	m.LabelsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystem,
			Name:      "labels_total",
			Help:      "Labels assigned, by layer and label",
		},
		[]string{"layer", "label"},
	)

	m.UnknownTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricsNamespace,
			Subsystem: MetricsSubsystem,
			Name:      "unknown_total",
			Help:      "Layers that abstained, by layer",
		},
		[]string{"layer"},
	)

	m.ConflictsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "conflicts_total",
		Help:      "Texts whose core label was replaced by the mixed label",
	})

	m.NegatedTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "negated_total",
		Help:      "Texts containing at least one negator",
	})

	m.LabelDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "label_duration_seconds",
		Help:      "Time spent labeling one text",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~0.3s
	})

	if cacheSize == nil {
		cacheSize = func() int { return 0 }
	}
	m.StemCacheEntries = factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "stem_cache_entries",
		Help:      "Number of memoized stems",
	}, func() float64 { return float64(cacheSize()) })

	m.LexiconKeywords = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "lexicon_keywords",
		Help:      "Number of keywords in the loaded lexicon",
	})

	m.IndexPatterns = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "index_patterns",
		Help:      "Number of distinct stemmed patterns in the keyword index",
	})

	m.BatchTextsInflight = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: MetricsNamespace,
		Subsystem: MetricsSubsystem,
		Name:      "batch_texts_inflight",
		Help:      "Texts currently being labeled by a batch",
	})

	return m
}

// observe records one labeled text.
func (m *Metrics) observe(rec *LabelRecord, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.TextsLabeledTotal.Inc()
	m.LabelDuration.Observe(elapsed.Seconds())
	for _, ll := range rec.Layers {
		m.LabelsTotal.WithLabelValues(ll.Layer, ll.Label).Inc()
		if ll.IsUnknown() {
			m.UnknownTotal.WithLabelValues(ll.Layer).Inc()
		}
	}
	if rec.ConflictFlag {
		m.ConflictsTotal.Inc()
	}
	if rec.Negated {
		m.NegatedTotal.Inc()
	}
}

func (m *Metrics) loaded(keywords, patterns int) {
	if m == nil {
		return
	}
	m.LexiconKeywords.Set(float64(keywords))
	m.IndexPatterns.Set(float64(patterns))
}

func (m *Metrics) batchStarted() {
	if m != nil {
		m.BatchTextsInflight.Inc()
	}
}

func (m *Metrics) batchDone() {
	if m != nil {
		m.BatchTextsInflight.Dec()
	}
}
