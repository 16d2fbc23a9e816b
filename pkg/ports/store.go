package ports

import (
	"context"
	"errors"

	"github.com/aretw0/marvin/pkg/domain"
)

// ErrCacheMiss is returned by FingerprintCache.Get when no entry exists.
var ErrCacheMiss = errors.New("fingerprint not cached")

// FingerprintCache memoises reductions. Reductions are pure, so an entry never goes stale;
// implementations may still expire entries to bound memory.
type FingerprintCache interface {
	// Get returns the fingerprint stored for seed under mode.
	// Returns ErrCacheMiss if there is none.
	Get(ctx context.Context, mode domain.Mode, seed string) (string, error)

	// Put stores a fingerprint.
	Put(ctx context.Context, mode domain.Mode, seed, fingerprint string) error
}
