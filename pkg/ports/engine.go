package ports

import (
	"context"

	"github.com/aretw0/marvin/pkg/domain"
)

// Fingerprinter is the interface adapters (e.g., HTTP, MCP) use to reach the engine.
type Fingerprinter interface {
	// Reduce folds a seed that carries its own preamble.
	Reduce(ctx context.Context, seed string) (string, error)

	// ReduceImplicit folds a seed after synthesizing an all-A preamble.
	ReduceImplicit(ctx context.Context, seed string) (string, error)

	// Explain reduces a seed and returns every intermediate step.
	Explain(ctx context.Context, seed string, mode domain.Mode) (*domain.Trace, error)
}
