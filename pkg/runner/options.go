package runner

import (
	"log/slog"

	"github.com/aretw0/marvin/pkg/domain"
	"github.com/aretw0/marvin/pkg/ports"
)

// DefaultPrompt is shown before reading a seed from an interactive terminal.
const DefaultPrompt = "Input seed:"

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithEngine configures the engine that reduces seeds.
func WithEngine(engine ports.Fingerprinter) Option {
	return func(r *Runner) {
		r.Engine = engine
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithHandler configures a custom OutputHandler.
func WithHandler(handler OutputHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithMode selects between seeds that carry a preamble and implicit ones.
func WithMode(mode domain.Mode) Option {
	return func(r *Runner) {
		r.Mode = mode
	}
}

// WithExplain makes the runner report every group, not just the fingerprint.
func WithExplain(explain bool) Option {
	return func(r *Runner) {
		r.Explain = explain
	}
}

// WithPrompt sets the prompt shown before reading. An empty prompt disables it.
func WithPrompt(prompt string) Option {
	return func(r *Runner) {
		r.Prompt = prompt
	}
}

// WithMaxSeedSize overrides the sanitizer limit. Zero keeps the environment default.
func WithMaxSeedSize(n int) Option {
	return func(r *Runner) {
		r.MaxSeedSize = n
	}
}
