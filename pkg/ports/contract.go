package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/marvin/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunCacheContract runs a suite of tests to verify that a FingerprintCache implementation
// adheres to the defined interface contract.
func RunCacheContract(t *testing.T, cache FingerprintCache) {
	ctx := context.Background()
	seed := "CONTRACT" + time.Now().Format("20060102150405")

	t.Run("Put and Get", func(t *testing.T) {
		err := cache.Put(ctx, domain.ModePreamble, seed, "HTVUNWOZVUNXZAPB")
		require.NoError(t, err, "Put should not return error")

		got, err := cache.Get(ctx, domain.ModePreamble, seed)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, "HTVUNWOZVUNXZAPB", got)
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := cache.Get(ctx, domain.ModePreamble, "MISSING"+seed)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Modes Are Separate", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, domain.ModePreamble, seed, "HTVUNWOZVUNXZAPB"))
		require.NoError(t, cache.Put(ctx, domain.ModeImplicit, seed, "TTTNANHHHCZCXTGT"))

		got, err := cache.Get(ctx, domain.ModeImplicit, seed)
		require.NoError(t, err)
		assert.Equal(t, "TTTNANHHHCZCXTGT", got)

		got, err = cache.Get(ctx, domain.ModePreamble, seed)
		require.NoError(t, err)
		assert.Equal(t, "HTVUNWOZVUNXZAPB", got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, domain.ModePreamble, seed, "AAAAAAAAAAAAAAAA"))
		require.NoError(t, cache.Put(ctx, domain.ModePreamble, seed, "BBBBBBBBBBBBBBBB"))

		got, err := cache.Get(ctx, domain.ModePreamble, seed)
		require.NoError(t, err)
		assert.Equal(t, "BBBBBBBBBBBBBBBB", got)
	})
}
