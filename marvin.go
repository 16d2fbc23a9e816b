package marvin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/marvin/internal/runtime"
	"github.com/aretw0/marvin/pkg/domain"
	"github.com/aretw0/marvin/pkg/ports"
	"github.com/aretw0/marvin/pkg/route"
)

// Engine is the high-level entry point for the Marvin library.
// It wraps the internal reducer and adds memoisation and observability.
type Engine struct {
	reducer *runtime.Reducer
	cache   ports.FingerprintCache
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// Ensure Engine satisfies the port used by the adapters.
var _ ports.Fingerprinter = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithCache memoises fingerprints in the given cache.
// Cache failures are logged and never fail a reduction. A hit still fires
// OnReduceStart and OnReduceEnd, both with CacheHit set, but no OnGroup.
func WithCache(cache ports.FingerprintCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Marvin Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	eng.reducer = runtime.NewReducer(
		runtime.WithLogger(eng.logger),
		runtime.WithHooks(eng.hooks),
	)
	return eng
}

// Reduce folds a seed whose leading letters select the action applied to each
// following 16-letter chunk. Whitespace anywhere in the seed is ignored.
func (e *Engine) Reduce(ctx context.Context, seed string) (string, error) {
	return e.reduce(ctx, domain.ModePreamble, seed)
}

// ReduceImplicit folds a seed without a preamble, transforming every chunk with action A.
func (e *Engine) ReduceImplicit(ctx context.Context, seed string) (string, error) {
	return e.reduce(ctx, domain.ModeImplicit, seed)
}

// Explain reduces a seed and reports every group. It never consults the cache.
func (e *Engine) Explain(ctx context.Context, seed string, mode domain.Mode) (*domain.Trace, error) {
	return e.reducer.Explain(ctx, seed, mode)
}

// PlanRoute plans a greedy route over planets and fingerprints it.
// Planet names are normalized first so that only letters reach the reducer.
func (e *Engine) PlanRoute(ctx context.Context, planets []route.Planet) (string, string, error) {
	r := route.PlanRoute(planets)
	fp, err := e.ReduceImplicit(ctx, route.Normalize(r))
	if err != nil {
		return r, "", err
	}
	return r, fp, nil
}

func (e *Engine) reduce(ctx context.Context, mode domain.Mode, seed string) (string, error) {
	key := runtime.StripSpace(seed)

	if e.cache != nil {
		fp, err := e.cache.Get(ctx, mode, key)
		switch {
		case err == nil:
			e.logger.DebugContext(ctx, "fingerprint cache hit", "mode", mode)
			if e.hooks.OnReduceStart != nil {
				e.hooks.OnReduceStart(ctx, &domain.ReduceEvent{
					EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventReduceStart, Mode: mode},
					SeedLength: len(key),
					CacheHit:   true,
				})
			}
			if e.hooks.OnReduceEnd != nil {
				e.hooks.OnReduceEnd(ctx, &domain.ReduceEvent{
					EventBase:   domain.EventBase{Timestamp: time.Now(), Type: domain.EventReduceEnd, Mode: mode},
					SeedLength:  len(key),
					Fingerprint: fp,
					CacheHit:    true,
				})
			}
			return fp, nil
		case !errors.Is(err, ports.ErrCacheMiss):
			e.logger.WarnContext(ctx, "fingerprint cache read failed", "mode", mode, "error", err)
		}
	}

	var (
		fp  string
		err error
	)
	if mode == domain.ModeImplicit {
		fp, err = e.reducer.ReduceImplicit(ctx, key)
	} else {
		fp, err = e.reducer.Reduce(ctx, key)
	}
	if err != nil {
		return "", err
	}

	if e.cache != nil {
		if err := e.cache.Put(ctx, mode, key, fp); err != nil {
			e.logger.WarnContext(ctx, "fingerprint cache write failed", "mode", mode, "error", err)
		}
	}
	return fp, nil
}
