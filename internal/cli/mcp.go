package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/marvin/pkg/adapters/mcp"
)

// MCPOptions contains all the configuration for the mcp command.
type MCPOptions struct {
	GlobalOptions
	Transport string // "stdio" or "sse"
	Port      int
}

// RunMCP serves the reduce and plan_route tools to MCP clients.
func RunMCP(ctx context.Context, opts MCPOptions) error {
	cfg, logger, err := loadSettings(opts.GlobalOptions)
	if err != nil {
		return err
	}

	engine, closeEngine, err := createEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeEngine()

	srv := mcp.NewServer(engine,
		mcp.WithLogger(logger),
		mcp.WithMaxSeedSize(cfg.MaxSeedSize),
	)

	switch opts.Transport {
	case "stdio":
		// Logs go to Stderr, leaving Stdout to JSON-RPC.
		logger.Info("Starting Marvin MCP Server (Stdio)")
		return srv.ServeStdio()
	case "sse":
		port := opts.Port
		if port == 0 {
			port = cfg.HTTP.Port
		}
		logger.Info("Starting Marvin MCP Server (SSE)", "port", port)
		return handleExecutionError(srv.ServeSSE(ctx, port))
	default:
		return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", opts.Transport)
	}
}
