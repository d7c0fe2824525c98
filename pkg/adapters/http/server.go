package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lime816/whatsappsuitetest-sub002"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/catalog"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/wire"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 1 << 20

// Suite defines the subset of the flowsuite facade served over HTTP.
type Suite interface {
	Parse(data []byte) ([]domain.Screen, error)
	ParseElement(data []byte) (domain.Element, error)
	CreateDefault(kind domain.Kind, opts ...catalog.Option) (domain.Element, error)
	ValidateElement(ctx context.Context, el domain.Element) flowsuite.ValidationResult
	ValidateFlow(ctx context.Context, screens []domain.Screen) flowsuite.ValidationResult
	Export(ctx context.Context, screens []domain.Screen) ([]byte, error)
	Schema(ctx context.Context, title string, screens []domain.Screen) (*openapi3.T, error)
	Graph(screens []domain.Screen, overlay *flowsuite.GraphOverlay) string
	CachedDocuments(ctx context.Context) ([]string, error)
}

// Server serves the compiler and validator as a JSON API.
type Server struct {
	Suite    Suite
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics exposes the gatherer on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// NewHandler creates a new HTTP handler for the suite.
func NewHandler(suite Suite, opts ...Option) http.Handler {
	s := &Server{Suite: suite}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/compile", s.Compile)
		r.Post("/validate", s.Validate)
		r.Post("/validate/element", s.ValidateElement)
		r.Post("/schema", s.Schema)
		r.Post("/graph", s.Graph)
		r.Get("/catalog", s.ListCatalog)
		r.Get("/catalog/{kind}", s.GetCatalogKind)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CompileRejected is returned when the flow fails validation.
type CompileRejected struct {
	Error  string                     `json:"error"`
	Report flowsuite.ValidationResult `json:"report"`
}

// KindInfo describes one catalog kind.
type KindInfo struct {
	Kind      domain.Kind       `json:"kind"`
	FormField bool              `json:"formField"`
	Limits    []flowsuite.Limit `json:"limits"`
}

// KindDetail adds the default element to KindInfo.
type KindDetail struct {
	KindInfo
	Default map[string]any `json:"default"`
}

// Compile handles POST /v1/compile. The flow is validated first unless
// ?validate=false is given.
func (s *Server) Compile(w http.ResponseWriter, r *http.Request) {
	screens, ok := s.readFlow(w, r, "Compile")
	if !ok {
		return
	}

	if r.URL.Query().Get("validate") != "false" {
		report := s.Suite.ValidateFlow(r.Context(), screens)
		if !report.IsValid {
			s.writeJSON(w, http.StatusUnprocessableEntity, CompileRejected{
				Error:  fmt.Sprintf("flow has %d validation errors", len(report.Errors)),
				Report: report,
			})
			return
		}
	}

	out, err := s.Suite.Export(r.Context(), screens)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvariantViolation) {
			status = http.StatusUnprocessableEntity
		}
		s.fail(w, status, "Compile failed", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write(out); err != nil {
		s.Logger.Error("Compile response write failed", "err", err)
	}
}

// Validate handles POST /v1/validate.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	screens, ok := s.readFlow(w, r, "Validate")
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, s.Suite.ValidateFlow(r.Context(), screens))
}

// ValidateElement handles POST /v1/validate/element.
func (s *Server) ValidateElement(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r, "ValidateElement")
	if !ok {
		return
	}
	el, err := s.Suite.ParseElement(body)
	if err != nil {
		s.fail(w, http.StatusBadRequest, "Invalid element", err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.Suite.ValidateElement(r.Context(), el))
}

// Schema handles POST /v1/schema. The optional ?title= names the API.
func (s *Server) Schema(w http.ResponseWriter, r *http.Request) {
	screens, ok := s.readFlow(w, r, "Schema")
	if !ok {
		return
	}
	title := r.URL.Query().Get("title")
	if title == "" {
		title = "Flow data exchange"
	}
	spec, err := s.Suite.Schema(r.Context(), title, screens)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvariantViolation) {
			status = http.StatusUnprocessableEntity
		}
		s.fail(w, status, "Schema failed", err)
		return
	}
	s.writeJSON(w, http.StatusOK, spec)
}

// Graph handles POST /v1/graph and returns Mermaid text.
func (s *Server) Graph(w http.ResponseWriter, r *http.Request) {
	screens, ok := s.readFlow(w, r, "Graph")
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, s.Suite.Graph(screens, nil))
}

// ListCatalog handles GET /v1/catalog.
func (s *Server) ListCatalog(w http.ResponseWriter, r *http.Request) {
	kinds := domain.Kinds()
	out := make([]KindInfo, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, kindInfo(k))
	}
	s.writeJSON(w, http.StatusOK, out)
}

// GetCatalogKind handles GET /v1/catalog/{kind}.
func (s *Server) GetCatalogKind(w http.ResponseWriter, r *http.Request) {
	kind := domain.Kind(chi.URLParam(r, "kind"))
	el, err := s.Suite.CreateDefault(kind)
	if err != nil {
		s.fail(w, http.StatusNotFound, "Unknown kind", err)
		return
	}
	attrs, err := wire.ElementMap(el)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "Encode failed", err)
		return
	}
	s.writeJSON(w, http.StatusOK, KindDetail{KindInfo: kindInfo(kind), Default: attrs})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request. With a document cache the
// response also lists the cached fingerprints.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	info := map[string]any{
		"app":              "flowsuite-http",
		"version":          flowsuite.Version,
		"flow_version":     domain.FlowVersion,
		"data_api_version": domain.DataAPIVersion,
	}
	keys, err := s.Suite.CachedDocuments(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "Cache listing failed", err)
		return
	}
	if keys != nil {
		info["cached_documents"] = keys
	}
	s.writeJSON(w, http.StatusOK, info)
}

// -- Helpers --

func kindInfo(k domain.Kind) KindInfo {
	return KindInfo{Kind: k, FormField: k.IsFormField(), Limits: flowsuite.Limits(k)}
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request, op string) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		s.fail(w, http.StatusRequestEntityTooLarge, op+": body rejected", err)
		return nil, false
	}
	return body, true
}

func (s *Server) readFlow(w http.ResponseWriter, r *http.Request, op string) ([]domain.Screen, bool) {
	body, ok := s.readBody(w, r, op)
	if !ok {
		return nil, false
	}
	screens, err := s.Suite.Parse(body)
	if err != nil {
		s.fail(w, http.StatusBadRequest, op+": invalid flow", err)
		return nil, false
	}
	return screens, true
}

func (s *Server) fail(w http.ResponseWriter, status int, msg string, err error) {
	if status >= http.StatusInternalServerError {
		s.Logger.Error(msg, "err", err)
	} else {
		s.Logger.Warn(msg, "err", err)
	}
	s.writeJSON(w, status, ErrorResponse{Error: fmt.Sprintf("%s: %v", msg, err)})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "err", err)
	}
}
