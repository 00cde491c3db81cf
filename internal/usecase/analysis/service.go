package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/kailas-cloud/sentilex/internal/domain"
	domanalysis "github.com/kailas-cloud/sentilex/internal/domain/analysis"
	"github.com/kailas-cloud/sentilex/internal/logger"
	"github.com/kailas-cloud/sentilex/internal/metrics"
)

// Service runs the sentiment pipeline: split, POS tag, phrase tag, score,
// classify. It holds no per-request state.
type Service struct {
	splitter  Splitter
	posTagger POSTagger
	tagger    *Tagger
	results   ResultLog
	clock     clockwork.Clock
	newID     func() string
	logger    *zap.Logger
}

// New creates an analysis service over a shared, read-only dictionary.
func New(splitter Splitter, posTagger POSTagger, dict Dictionary, matchOn MatchOn) *Service {
	return &Service{
		splitter:  splitter,
		posTagger: posTagger,
		tagger:    NewTagger(dict, matchOn),
		clock:     clockwork.NewRealClock(),
		newID:     uuid.NewString,
		logger:    zap.NewNop(),
	}
}

// WithResultLog sets the sink every finished analysis is appended to.
func (s *Service) WithResultLog(l ResultLog) *Service {
	s.results = l
	return s
}

// WithClock overrides the clock used for result timestamps.
func (s *Service) WithClock(c clockwork.Clock) *Service {
	s.clock = c
	return s
}

// WithLogger sets the fallback logger used when the context carries none.
func (s *Service) WithLogger(l *zap.Logger) *Service {
	s.logger = l
	return s
}

// Tagger returns the phrase tagger.
func (s *Service) Tagger() *Tagger { return s.tagger }

// Analyze scores text and returns the result with every stage's trace.
// Empty or whitespace-only text fails with domain.ErrEmptyInput.
// A result log failure is logged and does not fail the analysis.
func (s *Service) Analyze(ctx context.Context, text string) (domanalysis.Result, error) {
	if strings.TrimSpace(text) == "" {
		return domanalysis.Result{}, domain.ErrEmptyInput
	}
	log := logger.FromContextOr(ctx, s.logger)
	start := s.clock.Now()

	sentences, err := s.splitter.Split(ctx, text)
	if err != nil {
		return domanalysis.Result{}, fmt.Errorf("split sentences: %w", err)
	}

	posTagged, err := s.posTagger.Tag(ctx, sentences)
	if err != nil {
		return domanalysis.Result{}, fmt.Errorf("pos tag: %w", err)
	}

	tagged := s.tagger.TagAll(posTagged)
	score, perSentence := ScoreDocument(tagged)

	res := domanalysis.New(
		s.newID(), text,
		domanalysis.Trace{Sentences: sentences, POSTagged: posTagged, Tagged: tagged},
		perSentence, score, s.clock.Now(),
	)

	metrics.AnalysesTotal.WithLabelValues(string(res.Classification())).Inc()
	metrics.AnalysisDuration.Observe(s.clock.Since(start).Seconds())
	metrics.AnalysisScore.Observe(score)
	metrics.AnalysisSentences.Observe(float64(len(sentences)))

	if s.results != nil {
		if err := s.results.Append(ctx, &res); err != nil {
			log.Warn("Failed to append result log", zap.String("result_id", res.ID()), zap.Error(err))
		}
	}

	log.Debug("Analysis complete",
		zap.String("result_id", res.ID()),
		zap.Int("sentences", len(sentences)),
		zap.Float64("score", score),
		zap.String("classification", string(res.Classification())),
	)

	return res, nil
}
