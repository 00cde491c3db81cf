package metrics

import "github.com/prometheus/client_golang/prometheus"

// Analysis Prometheus metrics.
var (
	AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sentilex",
			Name:      "analyses_total",
			Help:      "Total number of analysed documents",
		},
		[]string{"classification"},
	)

	AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sentilex",
			Name:      "analysis_duration_seconds",
			Help:      "Pipeline duration per document in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	AnalysisScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sentilex",
			Name:      "analysis_score",
			Help:      "Distribution of document scores",
			Buckets:   []float64{-10, -5, -2, -1, -0.5, 0, 0.5, 1, 2, 5, 10},
		},
	)

	AnalysisSentences = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sentilex",
			Name:      "analysis_sentences",
			Help:      "Number of sentences per document",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		},
	)

	ResultLogWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sentilex",
			Name:      "result_log_writes_total",
			Help:      "Result log appends by sink and outcome",
		},
		[]string{"driver", "status"}, // status: "ok" / "error" / "rejected"
	)

	LexiconEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "sentilex",
			Name:      "lexicon_entries",
			Help:      "Number of distinct phrases in the loaded lexicon",
		},
	)

	LexiconMaxKeySize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "sentilex",
			Name:      "lexicon_max_key_size",
			Help:      "Length in tokens of the longest lexicon phrase",
		},
	)
)

var analysisMetricsRegistered bool

// RegisterAnalysisMetrics registers Prometheus analysis metrics. Must be called once from main.
func RegisterAnalysisMetrics() {
	if analysisMetricsRegistered {
		return
	}
	prometheus.MustRegister(AnalysesTotal)
	prometheus.MustRegister(AnalysisDuration)
	prometheus.MustRegister(AnalysisScore)
	prometheus.MustRegister(AnalysisSentences)
	prometheus.MustRegister(ResultLogWritesTotal)
	prometheus.MustRegister(LexiconEntries)
	prometheus.MustRegister(LexiconMaxKeySize)
	analysisMetricsRegistered = true
}
