package sentiment

import (
	"context"
	"errors"
	"time"

	"github.com/kailas-cloud/sentilex/internal/domain/lexicon"
	nlpprose "github.com/kailas-cloud/sentilex/internal/nlp/prose"
	"github.com/kailas-cloud/sentilex/internal/nlp/rules"
	analysisuc "github.com/kailas-cloud/sentilex/internal/usecase/analysis"
	lexiconuc "github.com/kailas-cloud/sentilex/internal/usecase/lexicon"
)

// Analyzer is the sentilex entry point.
type Analyzer struct {
	analysis *analysisuc.Service
	lexicon  *lexiconuc.Service
	obs      *observer
}

// New loads the dictionaries and builds an Analyzer.
// At least one dictionary is required; a failing dictionary fails New.
func New(opts ...Option) (*Analyzer, error) {
	cfg := &analyzerConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.sources) == 0 {
		return nil, errors.New("sentiment: at least one dictionary required (use WithDictionaryFiles or WithDictionary)")
	}

	lex, err := lexicon.Load(cfg.sources...)
	if err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	var (
		splitter analysisuc.Splitter
		tagger   analysisuc.POSTagger
	)
	if cfg.rules {
		splitter, tagger = rules.NewSplitter(), rules.NewTagger()
	} else {
		e, err := nlpprose.New()
		if err != nil {
			return nil, err
		}
		splitter, tagger = e, e
	}

	matchOn := analysisuc.MatchForm
	if cfg.lemma {
		matchOn = analysisuc.MatchLemma
	}

	if cfg.logger != nil {
		cfg.logger.Debug("lexicon loaded",
			"entries", lex.Len(),
			"max_key_size", lex.MaxKeySize(),
			"sources", lex.Sources(),
		)
	}

	return &Analyzer{
		analysis: analysisuc.New(splitter, tagger, lex, matchOn),
		lexicon:  lexiconuc.New(lex),
		obs:      obs,
	}, nil
}

// Analyze scores text. Empty or whitespace-only text fails with ErrEmptyInput.
func (a *Analyzer) Analyze(ctx context.Context, text string) (Result, error) {
	start := time.Now()
	res, err := a.analysis.Analyze(ctx, text)
	a.obs.observe("analyze", start, err)
	if err != nil {
		return Result{}, err
	}
	a.obs.classified(res.Classification())
	return resultFromDomain(&res), nil
}

// Lookup returns the merged tags of a phrase. Case and runs of whitespace are
// ignored. A miss fails with ErrPhraseNotFound.
func (a *Analyzer) Lookup(phrase string) ([]string, error) {
	start := time.Now()
	entry, err := a.lexicon.Lookup(phrase)
	a.obs.observe("lookup", start, err)
	if err != nil {
		return nil, err
	}
	return entry.Tags, nil
}

// Stats describes the merged lexicon.
func (a *Analyzer) Stats() Stats {
	st := a.lexicon.Stats()
	return Stats{Entries: st.Entries, MaxKeySize: st.MaxKeySize, Sources: st.Sources}
}
