package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

// RunDocumentCacheContract runs a suite of tests to verify that a
// DocumentCache implementation adheres to the interface contract.
func RunDocumentCacheContract(t *testing.T, cache DocumentCache) {
	ctx := context.Background()
	key := "contract-" + time.Now().Format("20060102150405.000000000")

	t.Run("Put and Get", func(t *testing.T) {
		doc := []byte(`{"version":"7.2"}`)
		require.NoError(t, cache.Put(ctx, key, doc))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, doc, got)
	})

	t.Run("Get returns a copy", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, []byte("abc")))
		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		got[0] = 'X'

		again, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})

	t.Run("Put overwrites", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, []byte("one")))
		require.NoError(t, cache.Put(ctx, key, []byte("two")))
		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("two"), got)
	})

	t.Run("Miss", func(t *testing.T) {
		_, err := cache.Get(ctx, "missing-"+key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, []byte("gone soon")))
		require.NoError(t, cache.Delete(ctx, key))

		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)

		assert.NoError(t, cache.Delete(ctx, key), "deleting twice is fine")
	})

	t.Run("Keys", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, []byte("listed")))
		keys, err := cache.Keys(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, key)

		require.NoError(t, cache.Delete(ctx, key))
		keys, err = cache.Keys(ctx)
		require.NoError(t, err)
		assert.NotContains(t, keys, key)
	})
}
