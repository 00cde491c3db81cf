package sentiment

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/sentilex/internal/domain/lexicon"
	"github.com/kailas-cloud/sentilex/internal/repository/dictionary"
)

// Option configures the Analyzer.
type Option interface {
	apply(*analyzerConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*analyzerConfig)

func (f optionFunc) apply(c *analyzerConfig) { f(c) }

type analyzerConfig struct {
	sources    []lexicon.Source
	lemma      bool
	rules      bool
	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithDictionaryFiles adds YAML dictionaries, merged in the order given.
// Each file is named after its base name.
func WithDictionaryFiles(paths ...string) Option {
	return optionFunc(func(c *analyzerConfig) {
		for _, p := range paths {
			c.sources = append(c.sources, dictionary.NewFileSource("", p))
		}
	})
}

// WithDictionary adds an in-memory dictionary of phrase to tags.
func WithDictionary(name string, entries map[string][]string) Option {
	return optionFunc(func(c *analyzerConfig) {
		c.sources = append(c.sources, lexicon.MapSource{Label: name, Dictionary: entries})
	})
}

// WithLemmaMatching matches dictionary phrases against lemmas instead of
// surface forms.
func WithLemmaMatching() Option {
	return optionFunc(func(c *analyzerConfig) {
		c.lemma = true
	})
}

// WithRuleEngine replaces the statistical splitter and tagger with the
// deterministic rule-based engine.
func WithRuleEngine() Option {
	return optionFunc(func(c *analyzerConfig) {
		c.rules = true
	})
}

// WithLogger enables structured logging for analyzer operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *analyzerConfig) {
		c.logger = l
	})
}

// WithPrometheus registers analyzer metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *analyzerConfig) {
		c.metricsReg = reg
	})
}
