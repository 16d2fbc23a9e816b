package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/marvin"
	"github.com/aretw0/marvin/pkg/action"
	"github.com/aretw0/marvin/pkg/domain"
	"github.com/aretw0/marvin/pkg/ports"
	"github.com/aretw0/marvin/pkg/route"
	"github.com/aretw0/marvin/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const actionsURI = "marvin://actions"

// ReduceArgs are the arguments of the reduce tool.
type ReduceArgs struct {
	Seed    string `json:"seed"`
	Mode    string `json:"mode,omitempty"`
	Explain bool   `json:"explain,omitempty"`
}

// ReduceResponse aligns with the OpenAPI schema and provides a unified structure across adapters.
type ReduceResponse struct {
	Fingerprint string        `json:"fingerprint" jsonschema_description:"The 16-letter fingerprint"`
	Mode        domain.Mode   `json:"mode" jsonschema_description:"preamble or implicit"`
	Trace       *domain.Trace `json:"trace,omitempty" jsonschema_description:"Every group of the reduction, when explain is set"`
}

// RouteArgs are the arguments of the plan_route tool.
type RouteArgs struct {
	Map string `json:"map"`
}

// RouteResponse mirrors the HTTP route response.
type RouteResponse struct {
	Route       string `json:"route" jsonschema_description:"Newline separated planet names starting and ending at SOL"`
	Fingerprint string `json:"fingerprint" jsonschema_description:"Implicit-mode fingerprint of the route"`
}

// Engine defines what the MCP server needs from the reduction engine.
type Engine interface {
	ports.Fingerprinter
	PlanRoute(ctx context.Context, planets []route.Planet) (string, string, error)
}

// Server wraps the Marvin Engine and exposes it as an MCP Server.
type Server struct {
	engine      Engine
	logger      *slog.Logger
	maxSeedSize int
	mcpServer   *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMaxSeedSize caps the byte length of accepted seeds. Zero disables the cap.
func WithMaxSeedSize(n int) Option {
	return func(s *Server) {
		s.maxSeedSize = n
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, opts ...Option) *Server {
	s := &Server{
		engine:      engine,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxSeedSize: runner.DefaultMaxInputSize,
		mcpServer:   server.NewMCPServer("marvin-mcp", strings.TrimSpace(marvin.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: reduce
	reduceTool := mcp.NewTool("reduce",
		mcp.WithDescription("Reduce a seed of capital letters into a 16-letter fingerprint. Whitespace is ignored."),
		mcp.WithString("seed", mcp.Required(), mcp.Description("The seed text")),
		mcp.WithString("mode",
			mcp.Description("preamble (default): the seed starts with one action letter per 16-letter chunk. implicit: every chunk uses action A."),
			mcp.Enum(string(domain.ModePreamble), string(domain.ModeImplicit)),
		),
		mcp.WithBoolean("explain", mcp.Description("Include every intermediate block in the response")),
		mcp.WithOutputSchema[ReduceResponse](),
	)
	s.mcpServer.AddTool(reduceTool, mcp.NewStructuredToolHandler(s.handleReduce))

	// TOOL: plan_route
	routeTool := mcp.NewTool("plan_route",
		mcp.WithDescription("Plan a greedy nearest-neighbour round trip from SOL and fingerprint it."),
		mcp.WithString("map", mcp.Required(), mcp.Description(`One planet per line: "NAME (x, y, z, w)"`)),
		mcp.WithOutputSchema[RouteResponse](),
	)
	s.mcpServer.AddTool(routeTool, mcp.NewStructuredToolHandler(s.handlePlanRoute))
}

func (s *Server) handleReduce(ctx context.Context, request mcp.CallToolRequest, args ReduceArgs) (ReduceResponse, error) {
	mode := domain.Mode(args.Mode)
	if mode == "" {
		mode = domain.ModePreamble
	}
	if mode != domain.ModePreamble && mode != domain.ModeImplicit {
		return ReduceResponse{}, fmt.Errorf("unknown mode %q", args.Mode)
	}

	clean, err := runner.SanitizeInputLimit(args.Seed, s.maxSeedSize)
	if err != nil {
		s.logger.Warn("MCP Reduce: Input rejected", "err", err, "size", len(args.Seed))
		return ReduceResponse{}, fmt.Errorf("input rejected: %w", err)
	}

	resp := ReduceResponse{Mode: mode}
	switch {
	case args.Explain:
		resp.Trace, err = s.engine.Explain(ctx, clean, mode)
		if resp.Trace != nil {
			resp.Fingerprint = resp.Trace.Fingerprint
		}
	case mode == domain.ModeImplicit:
		resp.Fingerprint, err = s.engine.ReduceImplicit(ctx, clean)
	default:
		resp.Fingerprint, err = s.engine.Reduce(ctx, clean)
	}
	if err != nil {
		return ReduceResponse{}, fmt.Errorf("reduce failed (%s): %w", runner.ErrorKind(err), err)
	}
	return resp, nil
}

func (s *Server) handlePlanRoute(ctx context.Context, request mcp.CallToolRequest, args RouteArgs) (RouteResponse, error) {
	clean, err := runner.SanitizeInputLimit(args.Map, s.maxSeedSize)
	if err != nil {
		return RouteResponse{}, fmt.Errorf("input rejected: %w", err)
	}
	planets, err := route.ParseMap(strings.NewReader(clean))
	if err != nil {
		return RouteResponse{}, err
	}
	path, fp, err := s.engine.PlanRoute(ctx, planets)
	if err != nil {
		return RouteResponse{}, fmt.Errorf("route fingerprint failed: %w", err)
	}
	return RouteResponse{Route: path, Fingerprint: fp}, nil
}

// actionTable lists each action with its transforms in application order.
func actionTable() map[string][]string {
	table := make(map[string][]string)
	for _, a := range action.All() {
		table[a.String()] = a.Steps()
	}
	return table
}

func (s *Server) registerResources() {
	// EXPOSE: marvin://actions
	s.mcpServer.AddResource(mcp.NewResource(actionsURI, "Action Table",
		mcp.WithResourceDescription("The transforms applied by each selector letter"),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(actionTable())
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      actionsURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
