package chi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerOptions configures Handler.
type ServerOptions struct {
	BaseRouter chi.Router
	// ErrorHandlerFunc answers requests whose parameters fail to bind.
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// InvalidParamFormatError reports a parameter that could not be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error { return e.Err }

// serverWrapper binds path and query parameters before calling the Server.
type serverWrapper struct {
	handler          *Server
	errorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

func (sw *serverWrapper) Analyze(w http.ResponseWriter, r *http.Request) {
	var params AnalyzeParams
	if err := runtime.BindQueryParameter("form", true, false, "trace", r.URL.Query(), &params.Trace); err != nil {
		sw.errorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "trace", Err: err})
		return
	}
	sw.handler.Analyze(w, r, params)
}

func (sw *serverWrapper) LookupPhrase(w http.ResponseWriter, r *http.Request) {
	var phrase string
	err := runtime.BindStyledParameterWithOptions("simple", "phrase", chi.URLParam(r, "phrase"), &phrase,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		sw.errorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "phrase", Err: err})
		return
	}
	sw.handler.LookupPhrase(w, r, phrase)
}

func (sw *serverWrapper) ListResults(w http.ResponseWriter, r *http.Request) {
	var params ListResultsParams
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit); err != nil {
		sw.errorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}
	sw.handler.ListResults(w, r, params)
}

// Handler mounts every route of the API on opts.BaseRouter (a new router when nil).
func Handler(si *Server, opts ServerOptions) http.Handler {
	r := opts.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	if opts.ErrorHandlerFunc == nil {
		opts.ErrorHandlerFunc = BadRequestHandler
	}
	sw := &serverWrapper{handler: si, errorHandlerFunc: opts.ErrorHandlerFunc}

	r.Get("/", si.Root)
	r.Get("/health", si.HealthCheck)
	r.Get("/metrics", si.Metrics)
	r.Post("/sentiment-analyser", sw.Analyze)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", sw.Analyze)
		r.Get("/lexicon", si.LexiconStats)
		r.Get("/lexicon/{phrase}", sw.LookupPhrase)
		r.Get("/results", sw.ListResults)
	})
	return r
}

// BadRequestHandler answers a parameter binding failure with 400 bad_request.
func BadRequestHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "invalid request")
}
