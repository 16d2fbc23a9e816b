package runner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/marvin/pkg/domain"
	"github.com/aretw0/marvin/pkg/ports"
)

// ErrNoEngine is returned by Run when the runner was built without WithEngine.
var ErrNoEngine = errors.New("runner has no engine")

// Runner reads one seed, reduces it and hands the result to its OutputHandler.
type Runner struct {
	Engine  ports.Fingerprinter
	Handler OutputHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	Mode        domain.Mode
	Explain     bool
	Prompt      string
	MaxSeedSize int
}

// NewRunner creates a Runner printing plain text to Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Handler: NewTextHandler(os.Stdout),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Mode:    domain.ModePreamble,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run prompts (if configured), reads a seed from in and reduces it.
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	if r.Prompt != "" {
		if err := r.Handler.Prompt(ctx, r.Prompt); err != nil {
			return err
		}
	}
	seed, err := ReadSeed(in)
	if err != nil {
		return err
	}
	return r.RunSeed(ctx, seed)
}

// RunSeed reduces a seed that was already read.
// The result is always passed to the handler; a failure is also returned.
func (r *Runner) RunSeed(ctx context.Context, seed string) error {
	if r.Engine == nil {
		return ErrNoEngine
	}

	res, err := r.reduce(ctx, seed)
	if err != nil {
		kind := ErrorKind(err)
		r.Logger.WarnContext(ctx, "reduction failed", "mode", r.Mode, "kind", kind, "error", err)
		res = &Result{Mode: r.Mode, Seed: seed, Error: err.Error(), Kind: kind}
	}

	if outErr := r.Handler.Output(ctx, res); outErr != nil {
		return errors.Join(err, outErr)
	}
	return err
}

func (r *Runner) reduce(ctx context.Context, seed string) (*Result, error) {
	seed, err := SanitizeInputLimit(seed, r.maxSeedSize())
	if err != nil {
		return nil, err
	}

	res := &Result{Mode: r.Mode, Seed: seed}
	switch {
	case r.Explain:
		res.Trace, err = r.Engine.Explain(ctx, seed, r.Mode)
		if err == nil {
			res.Fingerprint = res.Trace.Fingerprint
		}
	case r.Mode == domain.ModeImplicit:
		res.Fingerprint, err = r.Engine.ReduceImplicit(ctx, seed)
	default:
		res.Fingerprint, err = r.Engine.Reduce(ctx, seed)
	}
	if err != nil {
		return nil, err
	}
	r.Logger.DebugContext(ctx, "seed reduced", "mode", r.Mode, "fingerprint", res.Fingerprint)
	return res, nil
}

func (r *Runner) maxSeedSize() int {
	if r.MaxSeedSize != 0 {
		return r.MaxSeedSize
	}
	return getMaxInputSize()
}

// ErrorKind extends domain.Kind with the sanitizer failures.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInputTooLarge):
		return "input_too_large"
	case errors.Is(err, ErrInvalidUTF8):
		return "invalid_utf8"
	default:
		return domain.Kind(err)
	}
}
