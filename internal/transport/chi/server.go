// Package chi serves the analysis API over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/sentilex/internal/domain"
	domanalysis "github.com/kailas-cloud/sentilex/internal/domain/analysis"
	analysisuc "github.com/kailas-cloud/sentilex/internal/usecase/analysis"
	healthuc "github.com/kailas-cloud/sentilex/internal/usecase/health"
	lexiconuc "github.com/kailas-cloud/sentilex/internal/usecase/lexicon"
	"github.com/kailas-cloud/sentilex/internal/version"
)

const (
	defaultResultsLimit = 20
	maxResultsLimit     = 100
	defaultMaxBodyBytes = 1 << 20
)

// ResultReader serves recently stored results, newest first.
type ResultReader interface {
	Recent(ctx context.Context, n int) ([]domanalysis.Record, error)
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers of the analysis API.
type Server struct {
	analysis      *analysisuc.Service
	lexicon       *lexiconuc.Service
	health        *healthuc.Service
	results       ResultReader
	maxBodyBytes  int64
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	analysis *analysisuc.Service,
	lexicon *lexiconuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		analysis:     analysis,
		lexicon:      lexicon,
		health:       health,
		maxBodyBytes: defaultMaxBodyBytes,
		logger:       logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyInput, http.StatusBadRequest, ErrorCodeNoInput),
		sentinelHandler(domain.ErrPhraseNotFound, http.StatusNotFound, ErrorCodePhraseNotFound),
		sentinelHandler(domain.ErrResultLogUnavailable,
			http.StatusServiceUnavailable, ErrorCodeResultLogUnavailable),
		sentinelHandler(domain.ErrNotImplemented, http.StatusNotImplemented, ErrorCodeNotImplemented),
	}
	return s
}

// WithResults sets the reader behind GET /api/v1/results. Without one the
// route answers 501.
func (s *Server) WithResults(r ResultReader) *Server {
	s.results = r
	return s
}

// WithMaxBodyBytes caps request bodies. Non-positive values keep the default.
func (s *Server) WithMaxBodyBytes(n int64) *Server {
	if n > 0 {
		s.maxBodyBytes = n
	}
	return s
}

// Root handles GET /.
func (s *Server) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{Name: "sentilex", Version: version.Version})
}

// Analyze handles POST /api/v1/analyze and its form alias POST /sentiment-analyser.
// The text comes from a JSON body, a form field named "text", or a plain body.
func (s *Server) Analyze(w http.ResponseWriter, r *http.Request, params AnalyzeParams) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)

	text, err := readText(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, ErrorCodeRequestTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	res, err := s.analysis.Analyze(r.Context(), text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse(&res, derefBool(params.Trace, true)))
}

func readText(r *http.Request) (string, error) {
	mediaType := ""
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return "", err
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/json":
		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", err
		}
		if req.Text == nil {
			return "", nil
		}
		return *req.Text, nil
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(32 << 10); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return "", err
		}
		return r.PostFormValue("text"), nil
	default:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return "", err
		}
		return string(body), nil
	}
}

// LexiconStats handles GET /api/v1/lexicon.
func (s *Server) LexiconStats(w http.ResponseWriter, _ *http.Request) {
	st := s.lexicon.Stats()
	sources := st.Sources
	if sources == nil {
		sources = []string{}
	}
	writeJSON(w, http.StatusOK, LexiconStatsResponse{
		Entries:    st.Entries,
		MaxKeySize: st.MaxKeySize,
		Sources:    sources,
	})
}

// LookupPhrase handles GET /api/v1/lexicon/{phrase}.
func (s *Server) LookupPhrase(w http.ResponseWriter, _ *http.Request, phrase string) {
	entry, err := s.lexicon.Lookup(phrase)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, LexiconEntryResponse{Phrase: entry.Phrase, Tags: entry.Tags})
}

// ListResults handles GET /api/v1/results.
func (s *Server) ListResults(w http.ResponseWriter, r *http.Request, params ListResultsParams) {
	limit := defaultResultsLimit
	if params.Limit != nil {
		limit = *params.Limit
	}
	if limit < 1 || limit > maxResultsLimit {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "limit must be between 1 and 100")
		return
	}
	if s.results == nil {
		s.handleDomainError(w, domain.ErrNotImplemented)
		return
	}

	items, err := s.results.Recent(r.Context(), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if items == nil {
		items = []domanalysis.Record{}
	}
	writeJSON(w, http.StatusOK, ResultsResponse{Items: items})
}

// HealthCheck handles GET /health. Only an unhealthy report answers 503.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:  string(report.Status),
		Checks:  checks,
		Version: version.Version,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrEmptyInput,
		domain.ErrPhraseNotFound,
		domain.ErrResultLogUnavailable,
		domain.ErrNotImplemented,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}

func derefBool(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
