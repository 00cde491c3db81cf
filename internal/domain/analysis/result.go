package analysis

import (
	"strconv"
	"strings"
	"time"

	"github.com/kailas-cloud/sentilex/internal/domain/expression"
	"github.com/kailas-cloud/sentilex/internal/domain/sentiment"
	"github.com/kailas-cloud/sentilex/internal/domain/token"
)

// Trace holds the output of every pipeline stage, one entry per sentence.
type Trace struct {
	Sentences [][]string
	POSTagged []token.Sentence
	Tagged    []expression.Sentence
}

// Result is the outcome of analysing one document.
type Result struct {
	id             string
	text           string
	trace          Trace
	sentenceScores []float64
	score          float64
	classification sentiment.Classification
	createdAt      time.Time
}

// New creates a result. The classification is derived from score.
func New(id, text string, trace Trace, sentenceScores []float64, score float64, createdAt time.Time) Result {
	return Result{
		id:             id,
		text:           text,
		trace:          trace,
		sentenceScores: sentenceScores,
		score:          score,
		classification: sentiment.Classify(score),
		createdAt:      createdAt,
	}
}

// ID returns the result identifier.
func (r *Result) ID() string { return r.id }

// Text returns the analysed text as received.
func (r *Result) Text() string { return r.text }

// Trace returns the per-stage trace.
func (r *Result) Trace() Trace { return r.trace }

// SentenceScores returns the score of each sentence, in sentence order.
func (r *Result) SentenceScores() []float64 { return r.sentenceScores }

// Score returns the document score.
func (r *Result) Score() float64 { return r.score }

// Classification returns the polarity bucket of the score.
func (r *Result) Classification() sentiment.Classification { return r.classification }

// CreatedAt returns when the analysis finished.
func (r *Result) CreatedAt() time.Time { return r.createdAt }

var newlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Line renders the result log line:
// "<classification> | Score: <score> | <text on one line>".
func (r *Result) Line() string {
	return string(r.classification) + " | Score: " + FormatScore(r.score) + " | " + newlines.Replace(r.text)
}

// FormatScore prints a score with at least one decimal place (2.0, -0.5, 0.0).
func FormatScore(score float64) string {
	s := strconv.FormatFloat(score, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}
