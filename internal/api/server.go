package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/vk/tlvconfig/internal/config"
	"github.com/vk/tlvconfig/internal/ctxlog"
	"github.com/vk/tlvconfig/internal/engine"
	"github.com/vk/tlvconfig/internal/metrics"
	"github.com/vk/tlvconfig/internal/registry"
	"github.com/vk/tlvconfig/internal/request"
	"github.com/vk/tlvconfig/internal/validation"
)

// Route paths.
const (
	RouteList      = "/list-configuration-parameters"
	RouteTranslate = "/translate"
	RouteHealth    = "/health"
	RouteMetrics   = "/metrics"
)

// DefaultMaxBodyBytes bounds translate request bodies when Options leaves it unset.
const DefaultMaxBodyBytes int64 = 1 << 20

// Catalog lists the parameters served by the listing route.
type Catalog interface {
	List() []config.Parameter
}

// Translator renders overrides into macro lines.
type Translator interface {
	Translate(ctx context.Context, overrides []engine.Override) (engine.Program, error)
}

// Options configures the HTTP surface.
type Options struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
	// Extra routes mounted next to the API, such as the live channel.
	Mounts map[string]http.Handler
}

// ErrorBody is the response for every failed request.
type ErrorBody struct {
	Message string `json:"message"`
}

// Server wires the routes to their collaborators.
type Server struct {
	catalog    Catalog
	translator Translator
	metrics    *metrics.Metrics
	opts       Options
}

// New creates the HTTP surface.
func New(catalog Catalog, translator Translator, m *metrics.Metrics, opts Options) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	return &Server{catalog: catalog, translator: translator, metrics: m, opts: opts}
}

// Handler builds the complete handler chain. Every request context carries
// the logger found in ctx, enriched with request attributes.
func (s *Server) Handler(ctx context.Context) http.Handler {
	logger := ctxlog.FromContext(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+RouteList, s.handleList)
	mux.HandleFunc("POST "+RouteTranslate, s.handleTranslate)
	mux.HandleFunc("GET "+RouteHealth, s.handleHealth)
	mux.Handle("GET "+RouteMetrics, s.metrics.Handler())
	for pattern, h := range s.opts.Mounts {
		mux.Handle(pattern, h)
	}

	withCORS := cors.New(corsOptions(s.opts.AllowedOrigins)).Handler(mux)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		reqLogger := logger.With("request_id", requestID, "method", r.Method, "path", r.URL.Path)
		r = r.WithContext(ctxlog.WithLogger(r.Context(), reqLogger))

		m := httpsnoop.CaptureMetrics(withCORS, w, r)
		s.metrics.ObserveRequest(routeLabel(r.URL.Path), strconv.Itoa(m.Code), m.Duration)
		reqLogger.Debug("Request served.", "status", m.Code, "bytes", m.Written, "duration", m.Duration)
	})
}

// corsOptions allows credentials for every configured origin. A lone "*"
// echoes the request Origin, since browsers reject a wildcard on
// credentialed responses.
func corsOptions(origins []string) cors.Options {
	opts := cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
	if slices.Equal(origins, []string{"*"}) {
		opts.AllowOriginFunc = func(string) bool { return true }
	} else {
		opts.AllowedOrigins = origins
	}
	return opts
}

func routeLabel(path string) string {
	switch path {
	case RouteList, RouteTranslate, RouteHealth, RouteMetrics:
		return path
	default:
		return "other"
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctxlog.FromContext(r.Context()).Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.catalog.List())
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.FromContext(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.reject(ctx, w, http.StatusRequestEntityTooLarge, metrics.OutcomeMalformed,
				fmt.Errorf("request body exceeds maximum size of %d bytes", tooLarge.Limit))
			return
		}
		s.reject(ctx, w, http.StatusBadRequest, metrics.OutcomeMalformed, fmt.Errorf("failed to read request body: %w", err))
		return
	}

	program, err := Translate(ctx, s.translator, body)
	if err != nil {
		s.reject(ctx, w, http.StatusBadRequest, Outcome(err), err)
		return
	}

	s.metrics.ObserveTranslation("http", metrics.OutcomeOK, len(program.Lines))
	logger.Info("Translation succeeded.", "lines", len(program.Lines))
	writeJSON(ctx, w, http.StatusOK, program)
}

func (s *Server) reject(ctx context.Context, w http.ResponseWriter, status int, outcome string, err error) {
	s.metrics.ObserveTranslation("http", outcome, 0)
	ctxlog.FromContext(ctx).Warn("Translation rejected.", "status", status, "outcome", outcome, "error", err)
	writeJSON(ctx, w, status, ErrorBody{Message: err.Error()})
}

// Translate decodes a raw request body and runs it through translator. It is
// shared by every transport so they agree on decoding and error semantics.
func Translate(ctx context.Context, translator Translator, body []byte) (engine.Program, error) {
	overrides, err := request.Decode(body)
	if err != nil {
		return engine.Program{}, err
	}
	return translator.Translate(ctx, overrides)
}

// Outcome classifies a translate error for metrics.
func Outcome(err error) string {
	var (
		unknown  *registry.UnknownKeyError
		mismatch *engine.TypeMismatchError
	)
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.As(err, &unknown):
		return metrics.OutcomeUnknownKey
	case errors.As(err, &mismatch):
		return metrics.OutcomeTypeMismatch
	case errors.Is(err, validation.ErrRuleViolated):
		return metrics.OutcomeRuleViolation
	case errors.Is(err, request.ErrMalformedBody):
		return metrics.OutcomeMalformed
	default:
		return metrics.OutcomeError
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		ctxlog.FromContext(ctx).Error("Failed to encode response.", "error", err)
	}
}
