package marvin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/marvin"
	"github.com/aretw0/marvin/pkg/adapters/memory"
	"github.com/aretw0/marvin/pkg/domain"
	"github.com/aretw0/marvin/pkg/ports"
	"github.com/aretw0/marvin/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCache struct {
	puts int
}

func (c *failingCache) Get(ctx context.Context, mode domain.Mode, seed string) (string, error) {
	return "", errors.New("backend down")
}

func (c *failingCache) Put(ctx context.Context, mode domain.Mode, seed, fingerprint string) error {
	c.puts++
	return errors.New("backend down")
}

func TestEngine_CachesBySeedAndMode(t *testing.T) {
	cache := memory.NewCache()
	eng := marvin.New(marvin.WithCache(cache))
	ctx := context.Background()

	fp, err := eng.Reduce(ctx, "ABCDEFGHIJKLM NOPQRSTUVWXYZ")
	require.NoError(t, err)
	assert.Equal(t, "HTVUNWOZVUNXZAPB", fp)

	cached, err := cache.Get(ctx, domain.ModePreamble, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	require.NoError(t, err, "seed should be cached without whitespace")
	assert.Equal(t, "HTVUNWOZVUNXZAPB", cached)

	_, err = cache.Get(ctx, domain.ModeImplicit, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)
}

func TestEngine_CacheHitSkipsReducer(t *testing.T) {
	cache := memory.NewCache()
	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, domain.ModeImplicit, "AB", "ZZZZZZZZZZZZZZZZ"))

	var groups int
	var hit bool
	eng := marvin.New(
		marvin.WithCache(cache),
		marvin.WithLifecycleHooks(domain.LifecycleHooks{
			OnGroup: func(context.Context, *domain.GroupEvent) { groups++ },
			OnReduceEnd: func(_ context.Context, e *domain.ReduceEvent) {
				hit = e.CacheHit
			},
		}),
	)

	fp, err := eng.ReduceImplicit(ctx, "A B")
	require.NoError(t, err)
	assert.Equal(t, "ZZZZZZZZZZZZZZZZ", fp)
	assert.Zero(t, groups)
	assert.True(t, hit)
}

func TestEngine_CacheHitFiresStartAndEnd(t *testing.T) {
	cache := memory.NewCache()
	ctx := context.Background()
	require.NoError(t, cache.Put(ctx, domain.ModePreamble, "AB", "AOYZXIUWTESQOAOP"))

	var events []domain.EventType
	var startLen int
	eng := marvin.New(
		marvin.WithCache(cache),
		marvin.WithLifecycleHooks(domain.LifecycleHooks{
			OnReduceStart: func(_ context.Context, e *domain.ReduceEvent) {
				events = append(events, e.Type)
				startLen = e.SeedLength
			},
			OnReduceEnd: func(_ context.Context, e *domain.ReduceEvent) { events = append(events, e.Type) },
		}),
	)

	_, err := eng.Reduce(ctx, "AB")
	require.NoError(t, err)
	assert.Equal(t, []domain.EventType{domain.EventReduceStart, domain.EventReduceEnd}, events)
	assert.Equal(t, 2, startLen)
}

func TestEngine_FailuresAreNotCached(t *testing.T) {
	cache := memory.NewCache()
	eng := marvin.New(marvin.WithCache(cache))

	_, err := eng.Reduce(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyReduction)
	assert.Zero(t, cache.Len())
}

func TestEngine_CacheErrorsAreIgnored(t *testing.T) {
	cache := &failingCache{}
	eng := marvin.New(marvin.WithCache(cache))

	fp, err := eng.ReduceImplicit(context.Background(), "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	require.NoError(t, err)
	assert.Equal(t, "TTTNANHHHCZCXTGT", fp)
	assert.Equal(t, 1, cache.puts)
}

func TestEngine_Hooks(t *testing.T) {
	var events []domain.EventType
	var end *domain.ReduceEvent
	eng := marvin.New(marvin.WithLifecycleHooks(domain.LifecycleHooks{
		OnReduceStart: func(_ context.Context, e *domain.ReduceEvent) { events = append(events, e.Type) },
		OnGroup:       func(_ context.Context, e *domain.GroupEvent) { events = append(events, e.Type) },
		OnReduceEnd: func(_ context.Context, e *domain.ReduceEvent) {
			events = append(events, e.Type)
			end = e
		},
	}))

	_, err := eng.Reduce(context.Background(), "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	require.NoError(t, err)
	assert.Equal(t, []domain.EventType{
		domain.EventReduceStart, domain.EventGroup, domain.EventGroup, domain.EventReduceEnd,
	}, events)
	require.NotNil(t, end)
	assert.Equal(t, 2, end.Groups)
	assert.Equal(t, "HTVUNWOZVUNXZAPB", end.Fingerprint)
	assert.NoError(t, end.Err)
}

func TestEngine_HooksReportFailure(t *testing.T) {
	var end *domain.ReduceEvent
	eng := marvin.New(marvin.WithLifecycleHooks(domain.LifecycleHooks{
		OnReduceEnd: func(_ context.Context, e *domain.ReduceEvent) { end = e },
	}))

	_, err := eng.Reduce(context.Background(), "a")
	require.Error(t, err)
	require.NotNil(t, end)
	assert.ErrorIs(t, end.Err, domain.ErrInvalidCharacter)
	assert.Empty(t, end.Fingerprint)
}

func TestEngine_PlanRoute_Empty(t *testing.T) {
	eng := marvin.New()

	r, fp, err := eng.PlanRoute(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "SOL\nSOL", r)
	assert.Equal(t, "IUWTESQOAYOPYOFF", fp)
}

func TestEngine_PlanRoute_NormalizesNames(t *testing.T) {
	eng := marvin.New()

	r, fp, err := eng.PlanRoute(context.Background(), []route.Planet{
		{Name: "Alpha-1", Location: route.Point{1, 1, 1, 1}},
		{Name: "beta", Location: route.Point{2, 2, 2, 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "SOL\nAlpha-1\nbeta\nSOL", r)
	assert.Equal(t, "YOAAFEOAUGYAYOCF", fp)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, marvin.Version)
}
