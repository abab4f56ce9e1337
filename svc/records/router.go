package records

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/validkit/pkg/environment"
	"github.com/dmitrymomot/validkit/pkg/httpserver"
	"github.com/dmitrymomot/validkit/pkg/logger"
	"github.com/dmitrymomot/validkit/pkg/metrics"
	"github.com/dmitrymomot/validkit/pkg/model"
	"github.com/dmitrymomot/validkit/pkg/requestid"
)

const maxBodyBytes = 1 << 20

type routerOptions struct {
	log      *slog.Logger
	gatherer prom.Gatherer
	env      environment.Environment
}

// RouterOption configures Router.
type RouterOption func(*routerOptions)

func WithRouterLogger(l *slog.Logger) RouterOption {
	return func(o *routerOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// WithGatherer exposes the metrics of g on GET /metrics.
func WithGatherer(g prom.Gatherer) RouterOption {
	return func(o *routerOptions) { o.gatherer = g }
}

func WithEnvironment(env environment.Environment) RouterOption {
	return func(o *routerOptions) { o.env = env }
}

// Router returns the HTTP API of svc:
//
//	POST /validate        one JSON record
//	POST /validate/batch  a JSON or YAML list of records
//	GET  /healthz         liveness probe
//	GET  /metrics         Prometheus metrics, when a gatherer is configured
func Router(svc *Service, opts ...RouterOption) http.Handler {
	o := &routerOptions{log: logger.Discard(), env: environment.Development}
	for _, opt := range opts {
		opt(o)
	}
	h := &handlers{svc: svc, log: o.log}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(environment.Middleware(o.env))
	r.Use(middleware.Recoverer)
	r.Use(h.accessLog)

	r.Get("/healthz", httpserver.HealthCheckHandler(o.log))
	if o.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(o.gatherer))
	}
	r.Post("/validate", h.validate)
	r.Post("/validate/batch", h.validateBatch)

	return r
}

type handlers struct {
	svc *Service
	log *slog.Logger
}

func (h *handlers) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.InfoContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

func (h *handlers) validate(w http.ResponseWriter, r *http.Request) {
	var rec model.Basic
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "malformed record: "+err.Error(), nil)
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, codeBadRequest, "malformed record: body must hold a single JSON object", nil)
		return
	}

	res, err := h.svc.Check(r.Context(), rec)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	meta := map[string]any{"rendered": res.Outcome.String()}
	if res.Valid() {
		writeJSON(w, http.StatusOK, JSONResponse{Data: res.Outcome.Get(), Meta: meta})
		return
	}

	writeJSON(w, http.StatusUnprocessableEntity, JSONResponse{
		Meta: meta,
		Error: &ErrorDetail{
			Code:    codeValidation,
			Message: res.Violations.Error(),
			Details: res.Violations.Details(),
		},
	})
}

type batchItem struct {
	Index      int                 `json:"index"`
	Valid      bool                `json:"valid"`
	Rendered   string              `json:"rendered"`
	Violations map[string][]string `json:"violations,omitempty"`
}

func (h *handlers) validateBatch(w http.ResponseWriter, r *http.Request) {
	records, err := DecodeRecords(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error(), nil)
		return
	}

	batch, err := h.svc.ValidateAll(r.Context(), records)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	items := make([]batchItem, len(batch.Results))
	for i, res := range batch.Results {
		items[i] = batchItem{
			Index:    res.Index,
			Valid:    res.Valid(),
			Rendered: res.Outcome.String(),
		}
		if !res.Valid() {
			items[i].Violations = res.Violations.Details()
		}
	}

	writeJSON(w, http.StatusOK, JSONResponse{
		Data: items,
		Meta: map[string]any{
			"run_id":  batch.RunID.String(),
			"valid":   batch.Valid,
			"invalid": batch.Invalid,
		},
	})
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "validation aborted", logger.Error(err))
	if errors.Is(err, ErrCanceled) {
		writeError(w, http.StatusServiceUnavailable, codeInternal, "validation canceled", nil)
		return
	}
	writeError(w, http.StatusInternalServerError, codeInternal, http.StatusText(http.StatusInternalServerError), nil)
}
