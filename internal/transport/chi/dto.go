package chi

import (
	"time"

	domanalysis "github.com/kailas-cloud/sentilex/internal/domain/analysis"
	"github.com/kailas-cloud/sentilex/internal/domain/expression"
	"github.com/kailas-cloud/sentilex/internal/domain/token"
)

// ErrorCode is the machine-readable code of an error response.
type ErrorCode string

// Error codes.
const (
	ErrorCodeBadRequest           ErrorCode = "bad_request"
	ErrorCodeNoInput              ErrorCode = "no_input"
	ErrorCodePhraseNotFound       ErrorCode = "phrase_not_found"
	ErrorCodeRequestTooLarge      ErrorCode = "request_too_large"
	ErrorCodeResultLogUnavailable ErrorCode = "result_log_unavailable"
	ErrorCodeNotImplemented       ErrorCode = "not_implemented"
	ErrorCodeUnauthorized         ErrorCode = "unauthorized"
	ErrorCodeInternalError        ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// RootResponse is the service banner.
type RootResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// AnalyzeRequest is the JSON body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Text *string `json:"text"`
}

// AnalyzeParams are the query parameters of the analyze routes.
type AnalyzeParams struct {
	// Trace includes the per-stage traces. Defaults to true.
	Trace *bool `form:"trace,omitempty" json:"trace,omitempty"`
}

// Token is a POS-tagged token.
type Token struct {
	Surface string   `json:"surface"`
	Lemma   string   `json:"lemma"`
	Tags    []string `json:"tags"`
}

// Expression is a dictionary-tagged expression.
type Expression struct {
	Surface string   `json:"surface"`
	Lemma   string   `json:"lemma"`
	Tags    []string `json:"tags"`
	Width   int      `json:"width"`
}

// AnalyzeResponse is the result of one analysis.
type AnalyzeResponse struct {
	ID             string         `json:"id"`
	Classification string         `json:"classification"`
	Score          float64        `json:"score"`
	Line           string         `json:"line"`
	SentenceScores []float64      `json:"sentence_scores"`
	CreatedAt      time.Time      `json:"created_at"`
	Sentences      [][]string     `json:"sentences,omitempty"`
	POSTagged      [][]Token      `json:"pos_tagged,omitempty"`
	DictTagged     [][]Expression `json:"dict_tagged,omitempty"`
}

// LexiconStatsResponse describes the loaded lexicon.
type LexiconStatsResponse struct {
	Entries    int      `json:"entries"`
	MaxKeySize int      `json:"max_key_size"`
	Sources    []string `json:"sources"`
}

// LexiconEntryResponse is one lexicon lookup hit.
type LexiconEntryResponse struct {
	Phrase string   `json:"phrase"`
	Tags   []string `json:"tags"`
}

// ListResultsParams are the query parameters of GET /api/v1/results.
type ListResultsParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// ResultsResponse lists stored results, newest first.
type ResultsResponse struct {
	Items []domanalysis.Record `json:"items"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Version string            `json:"version"`
}

func analyzeResponse(res *domanalysis.Result, withTrace bool) AnalyzeResponse {
	resp := AnalyzeResponse{
		ID:             res.ID(),
		Classification: string(res.Classification()),
		Score:          res.Score(),
		Line:           res.Line(),
		SentenceScores: res.SentenceScores(),
		CreatedAt:      res.CreatedAt().UTC(),
	}
	if resp.SentenceScores == nil {
		resp.SentenceScores = []float64{}
	}
	if !withTrace {
		return resp
	}

	tr := res.Trace()
	resp.Sentences = tr.Sentences
	resp.POSTagged = make([][]Token, len(tr.POSTagged))
	for i, s := range tr.POSTagged {
		resp.POSTagged[i] = tokensToDTO(s)
	}
	resp.DictTagged = make([][]Expression, len(tr.Tagged))
	for i, s := range tr.Tagged {
		resp.DictTagged[i] = expressionsToDTO(s)
	}
	return resp
}

func tokensToDTO(s token.Sentence) []Token {
	out := make([]Token, len(s))
	for i, t := range s {
		out[i] = Token{Surface: t.Surface(), Lemma: t.Lemma(), Tags: nonNil(t.Tags())}
	}
	return out
}

func expressionsToDTO(s expression.Sentence) []Expression {
	out := make([]Expression, len(s))
	for i, e := range s {
		out[i] = Expression{Surface: e.Surface(), Lemma: e.Lemma(), Tags: nonNil(e.Tags()), Width: e.Width()}
	}
	return out
}

func nonNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
