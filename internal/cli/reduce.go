package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/marvin"
	"github.com/aretw0/marvin/internal/presentation/graph"
	"github.com/aretw0/marvin/internal/presentation/tui"
	"github.com/aretw0/marvin/pkg/domain"
	"github.com/aretw0/marvin/pkg/runner"
)

// ReduceOptions contains all the configuration for the reduce command.
type ReduceOptions struct {
	GlobalOptions
	Args     []string // joined into the seed; stdin is read when empty
	Implicit bool
	Explain  bool
	JSON     bool
	Mermaid  bool

	In  io.Reader
	Out io.Writer
}

// RunReduce reads one seed and prints its fingerprint.
func RunReduce(ctx context.Context, opts ReduceOptions) error {
	cfg, logger, err := loadSettings(opts.GlobalOptions)
	if err != nil {
		return err
	}

	engine, closeEngine, err := createEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeEngine()

	mode := domain.ModePreamble
	if opts.Implicit {
		mode = domain.ModeImplicit
	}

	interactive := len(opts.Args) == 0 && runner.IsTerminal(opts.In)
	handler, explain := reduceHandler(opts, interactive)

	runOpts := []runner.Option{
		runner.WithEngine(engine),
		runner.WithLogger(logger),
		runner.WithHandler(handler),
		runner.WithMode(mode),
		runner.WithExplain(explain),
		runner.WithMaxSeedSize(cfg.MaxSeedSize),
	}
	if interactive && !opts.JSON {
		runOpts = append(runOpts, runner.WithPrompt(runner.DefaultPrompt))
	}
	r := runner.NewRunner(runOpts...)

	if len(opts.Args) > 0 {
		err = r.RunSeed(ctx, strings.Join(opts.Args, ""))
	} else {
		err = r.Run(ctx, opts.In)
	}
	if opts.JSON {
		// The JSON result already carries the error.
		return handleExecutionError(asSilent(err))
	}
	return handleExecutionError(err)
}

func reduceHandler(opts ReduceOptions, interactive bool) (runner.OutputHandler, bool) {
	switch {
	case opts.JSON:
		return runner.NewJSONHandler(opts.Out), opts.Explain
	case opts.Mermaid:
		return &mermaidHandler{w: opts.Out}, true
	}

	h := runner.NewTextHandler(opts.Out)
	if opts.Explain && interactive {
		tui.PrintBanner(opts.Out, strings.TrimSpace(marvin.Version))
		h.Renderer = tui.NewRenderer()
	}
	return h, opts.Explain
}

// mermaidHandler prints the trace of a reduction as a Mermaid flowchart.
type mermaidHandler struct {
	w io.Writer
}

func (h *mermaidHandler) Prompt(ctx context.Context, msg string) error {
	_, err := fmt.Fprintln(h.w, msg)
	return err
}

func (h *mermaidHandler) Output(ctx context.Context, res *runner.Result) error {
	if res.Trace == nil {
		return nil
	}
	_, err := io.WriteString(h.w, graph.GenerateMermaid(res.Trace))
	return err
}

// SilentError marks a failure that was already reported to the user.
// main exits non-zero without printing it again.
type SilentError struct {
	Err error
}

func (e *SilentError) Error() string { return e.Err.Error() }
func (e *SilentError) Unwrap() error { return e.Err }

func asSilent(err error) error {
	if err == nil {
		return nil
	}
	return &SilentError{Err: err}
}
