package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/marvin/pkg/domain"
)

// LogHooks reports every lifecycle event at debug level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnReduceStart: func(ctx context.Context, e *domain.ReduceEvent) {
			logger.DebugContext(ctx, "Reduce Start", "mode", e.Mode, "seed_length", e.SeedLength)
		},
		OnGroup: func(ctx context.Context, e *domain.GroupEvent) {
			logger.DebugContext(ctx, "Group", "index", e.Index, "selector", e.Selector, "result", e.Result)
		},
		OnReduceEnd: func(ctx context.Context, e *domain.ReduceEvent) {
			if e.Err != nil {
				logger.DebugContext(ctx, "Reduce Failed", "mode", e.Mode, "err", e.Err)
				return
			}
			logger.DebugContext(ctx, "Reduce End", "mode", e.Mode, "fingerprint", e.Fingerprint, "cache_hit", e.CacheHit)
		},
	}
}
