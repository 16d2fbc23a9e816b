package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/marvin"
	"github.com/aretw0/marvin/pkg/domain"
	"github.com/aretw0/marvin/pkg/ports"
	"github.com/aretw0/marvin/pkg/route"
	"github.com/aretw0/marvin/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Engine defines what the HTTP surface needs from the reduction engine.
type Engine interface {
	ports.Fingerprinter
	PlanRoute(ctx context.Context, planets []route.Planet) (string, string, error)
}

// Server implements ServerInterface.
type Server struct {
	Engine      Engine
	Streams     *StreamManager
	Logger      *slog.Logger
	MaxSeedSize int
	gatherer    prometheus.Gatherer
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithStreams shares a StreamManager whose Hooks are attached to the engine.
func WithStreams(sm *StreamManager) Option {
	return func(s *Server) {
		s.Streams = sm
	}
}

// WithMaxSeedSize caps the byte length of accepted seeds and, through it, the
// size of request bodies. Zero disables both caps.
func WithMaxSeedSize(n int) Option {
	return func(s *Server) {
		s.MaxSeedSize = n
	}
}

// WithGatherer exposes g on GET /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine, opts ...Option) http.Handler {
	server := &Server{
		Engine:      engine,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxSeedSize: runner.DefaultMaxInputSize,
	}
	for _, opt := range opts {
		opt(server)
	}
	if server.Streams == nil {
		server.Streams = NewStreamManager(server.Logger)
	}

	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		if _, err := GetSwagger(); err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			server.Logger.Error("Failed to load OpenAPI spec", "err", err)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec())
	})
	if server.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.gatherer, promhttp.HandlerOpts{}))
	}

	handler := HandlerFromMux(server, r)
	return enableCORS(handler)
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

// Reduce handles the POST /reduce request.
func (s *Server) Reduce(w http.ResponseWriter, r *http.Request) {
	var body ReduceRequest
	if !s.decodeBody(w, r, &body) {
		return
	}

	mode := domain.ModePreamble
	if body.Mode != nil {
		mode = *body.Mode
	}
	s.reduce(w, r, body.Seed, mode, body.Explain != nil && *body.Explain)
}

// GetFingerprint handles the GET /fingerprint request.
func (s *Server) GetFingerprint(w http.ResponseWriter, r *http.Request, params GetFingerprintParams) {
	mode := domain.ModePreamble
	if params.Mode != nil {
		mode = *params.Mode
	}
	s.reduce(w, r, params.Seed, mode, false)
}

func (s *Server) reduce(w http.ResponseWriter, r *http.Request, seed string, mode domain.Mode, explain bool) {
	if mode != domain.ModePreamble && mode != domain.ModeImplicit {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown mode %q", mode), Kind: "invalid_mode"})
		return
	}

	clean, err := runner.SanitizeInputLimit(seed, s.MaxSeedSize)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := ReduceResponse{Mode: mode}
	switch {
	case explain:
		var trace *domain.Trace
		trace, err = s.Engine.Explain(r.Context(), clean, mode)
		if trace != nil {
			resp.Fingerprint = trace.Fingerprint
			resp.Trace = trace
		}
	case mode == domain.ModeImplicit:
		resp.Fingerprint, err = s.Engine.ReduceImplicit(r.Context(), clean)
	default:
		resp.Fingerprint, err = s.Engine.Reduce(r.Context(), clean)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// PlanRoute handles the POST /route request.
func (s *Server) PlanRoute(w http.ResponseWriter, r *http.Request) {
	var body RouteRequest
	if !s.decodeBody(w, r, &body) {
		return
	}

	var planets []route.Planet
	switch {
	case body.Planets != nil:
		planets = *body.Planets
	case body.Map != nil:
		clean, err := runner.SanitizeInputLimit(*body.Map, s.MaxSeedSize)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		planets, err = route.ParseMap(strings.NewReader(clean))
		if err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	path, fp, err := s.Engine.PlanRoute(r.Context(), planets)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, RouteResponse{Route: path, Fingerprint: fp})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if doc, err := GetSwagger(); err == nil && doc.Info != nil {
		apiVersion = doc.Info.Version
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"app":         "marvin-http",
		"version":     strings.TrimSpace(marvin.Version),
		"api_version": apiVersion,
	})
}

// SubscribeEvents handles the GET /events request (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.Logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe()
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.Logger.Debug("SSE Client Disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

// JSON escaping can spend up to six bytes per seed byte; the overhead
// leaves room for the envelope and the other fields.
const (
	bodyExpansion = 6
	bodyOverhead  = 1024
)

// bodyLimit is the largest request body accepted, derived from MaxSeedSize.
// Zero means no limit.
func (s *Server) bodyLimit() int64 {
	if s.MaxSeedSize <= 0 {
		return 0
	}
	return int64(s.MaxSeedSize)*bodyExpansion + bodyOverhead
}

// decodeBody reads a size-capped JSON body into v and writes the error
// response itself when it fails.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if limit := s.bodyLimit(); limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			Kind:  "input_too_large",
		})
		s.Logger.WarnContext(r.Context(), "Request body too large", "path", r.URL.Path, "limit", tooLarge.Limit)
		return false
	}
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Kind: "invalid_body"})
	s.Logger.WarnContext(r.Context(), "Invalid request body", "path", r.URL.Path, "err", err)
	return false
}

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmptyReduction):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidCharacter),
		errors.Is(err, domain.ErrInvalidLength),
		errors.Is(err, domain.ErrInvalidAction),
		errors.Is(err, runner.ErrInputTooLarge),
		errors.Is(err, runner.ErrInvalidUTF8),
		errors.Is(err, route.ErrMalformedPlanet):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	kind := runner.ErrorKind(err)
	if errors.Is(err, route.ErrMalformedPlanet) {
		kind = "malformed_planet"
	}
	if status >= http.StatusInternalServerError {
		s.Logger.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, "err", err)
	} else {
		s.Logger.DebugContext(r.Context(), "Request rejected", "path", r.URL.Path, "kind", kind, "err", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Kind: kind})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
