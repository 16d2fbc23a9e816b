package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/marvin/pkg/adapters/http"
	"github.com/aretw0/marvin/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ServeOptions contains all the configuration for the serve command.
type ServeOptions struct {
	GlobalOptions
	Port int // overrides http.port from the config when non-zero
	Out  io.Writer
}

// shutdownTimeout bounds how long in-flight requests may take once a signal arrives.
const shutdownTimeout = 5 * time.Second

// RunServe exposes the engine over HTTP until ctx is cancelled.
func RunServe(ctx context.Context, opts ServeOptions) error {
	cfg, logger, err := loadSettings(opts.GlobalOptions)
	if err != nil {
		return err
	}
	if opts.Port != 0 {
		cfg.HTTP.Port = opts.Port
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return err
	}
	streams := httpAdapter.NewStreamManager(logger)

	engine, closeEngine, err := createEngine(ctx, cfg, logger, metrics.Hooks(), streams.Hooks())
	if err != nil {
		return err
	}
	defer closeEngine()

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: httpAdapter.NewHandler(engine,
			httpAdapter.WithLogger(logger),
			httpAdapter.WithStreams(streams),
			httpAdapter.WithMaxSeedSize(cfg.MaxSeedSize),
			httpAdapter.WithGatherer(reg),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		printSystemMessage(opts.Out, "Starting Marvin Server on %s", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		printSystemMessage(opts.Out, "Shutting down...")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			return srv.Close()
		}
		printSystemMessage(opts.Out, "Marvin Server stopped gracefully")
		return nil
	}
}
