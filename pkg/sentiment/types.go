package sentiment

import (
	"time"

	domanalysis "github.com/kailas-cloud/sentilex/internal/domain/analysis"
	domsentiment "github.com/kailas-cloud/sentilex/internal/domain/sentiment"
)

// Classification is the polarity bucket of a document score.
type Classification = domsentiment.Classification

// Classifications.
const (
	Positive = domsentiment.Positive
	Negative = domsentiment.Negative
	Neutral  = domsentiment.Neutral
)

// Token is a POS-tagged word.
type Token struct {
	Surface string
	Lemma   string
	Tags    []string
}

// Expression is a token or collapsed phrase with its dictionary tags.
type Expression struct {
	Surface string
	Lemma   string
	Tags    []string
	// Width is the number of tokens the expression covers.
	Width int
}

// Result is one analyzed document.
type Result struct {
	ID             string
	Text           string
	Classification Classification
	Score          float64
	SentenceScores []float64
	// Line is "<Classification> | Score: <score> | <text>".
	Line      string
	CreatedAt time.Time

	Sentences   [][]string
	Tokens      [][]Token
	Expressions [][]Expression
}

// Stats describes the merged lexicon.
type Stats struct {
	Entries    int
	MaxKeySize int
	Sources    []string
}

func resultFromDomain(r *domanalysis.Result) Result {
	tr := r.Trace()
	out := Result{
		ID:             r.ID(),
		Text:           r.Text(),
		Classification: r.Classification(),
		Score:          r.Score(),
		SentenceScores: r.SentenceScores(),
		Line:           r.Line(),
		CreatedAt:      r.CreatedAt(),
		Sentences:      tr.Sentences,
		Tokens:         make([][]Token, len(tr.POSTagged)),
		Expressions:    make([][]Expression, len(tr.Tagged)),
	}
	for i, s := range tr.POSTagged {
		out.Tokens[i] = make([]Token, len(s))
		for j, t := range s {
			out.Tokens[i][j] = Token{Surface: t.Surface(), Lemma: t.Lemma(), Tags: t.Tags()}
		}
	}
	for i, s := range tr.Tagged {
		out.Expressions[i] = make([]Expression, len(s))
		for j, e := range s {
			out.Expressions[i][j] = Expression{Surface: e.Surface(), Lemma: e.Lemma(), Tags: e.Tags(), Width: e.Width()}
		}
	}
	return out
}
