package observability

import (
	"context"

	"github.com/aretw0/marvin/pkg/domain"
)

// Combine fans each lifecycle event out to every hook set, in order.
// Nil callbacks are skipped.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnReduceStart: func(ctx context.Context, e *domain.ReduceEvent) {
			for _, s := range sets {
				if s.OnReduceStart != nil {
					s.OnReduceStart(ctx, e)
				}
			}
		},
		OnGroup: func(ctx context.Context, e *domain.GroupEvent) {
			for _, s := range sets {
				if s.OnGroup != nil {
					s.OnGroup(ctx, e)
				}
			}
		},
		OnReduceEnd: func(ctx context.Context, e *domain.ReduceEvent) {
			for _, s := range sets {
				if s.OnReduceEnd != nil {
					s.OnReduceEnd(ctx, e)
				}
			}
		},
	}
}
