package runner

import (
	"context"

	"github.com/aretw0/marvin/pkg/domain"
)

// Result is the outcome of one reduction as presented to the user.
// Exactly one of Fingerprint and Error is set.
type Result struct {
	Mode        domain.Mode   `json:"mode"`
	Seed        string        `json:"seed"`
	Fingerprint string        `json:"fingerprint,omitempty"`
	Trace       *domain.Trace `json:"trace,omitempty"`
	Error       string        `json:"error,omitempty"`
	Kind        string        `json:"kind,omitempty"`
}

// OutputHandler defines the strategy for presenting results.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type OutputHandler interface {
	// Prompt asks the user for input. Handlers may ignore it.
	Prompt(ctx context.Context, msg string) error

	// Output presents a result, successful or not.
	Output(ctx context.Context, res *Result) error
}

// ContentRenderer is a function that transforms markdown before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)
