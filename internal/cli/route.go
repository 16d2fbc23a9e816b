package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/marvin/pkg/route"
	"github.com/aretw0/marvin/pkg/runner"
)

// RouteOptions contains all the configuration for the route command.
type RouteOptions struct {
	GlobalOptions
	MapPath string // "-" or empty reads In
	JSON    bool

	In  io.Reader
	Out io.Writer
}

// RunRoute plans a round trip from SOL over the planets of a map and fingerprints it.
func RunRoute(ctx context.Context, opts RouteOptions) error {
	cfg, logger, err := loadSettings(opts.GlobalOptions)
	if err != nil {
		return err
	}

	in := opts.In
	if opts.MapPath != "" && opts.MapPath != "-" {
		f, err := os.Open(opts.MapPath)
		if err != nil {
			return fmt.Errorf("failed to open map: %w", err)
		}
		defer f.Close()
		in = f
	}

	planets, err := route.ParseMap(in)
	if err != nil {
		return err
	}
	logger.Debug("Map loaded", "planets", len(planets))

	engine, closeEngine, err := createEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeEngine()

	path, fp, err := engine.PlanRoute(ctx, planets)
	if err != nil {
		return handleExecutionError(fmt.Errorf("route fingerprint failed (%s): %w", runner.ErrorKind(err), err))
	}

	if opts.JSON {
		enc := json.NewEncoder(opts.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]string{"route": path, "fingerprint": fp})
	}
	_, err = fmt.Fprintf(opts.Out, "%s\n%s\n", path, fp)
	return err
}
