package cache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*Store, context.Context) {
	t.Helper()
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "cache", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, ctx
}

func TestKey(t *testing.T) {
	a := Key([]byte("# one\n"))
	b := Key([]byte("# two\n"))
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, Key([]byte("# one\n")))
}

func TestStorePutGet(t *testing.T) {
	store, ctx := setupTestStore(t)

	t.Run("miss on absent key", func(t *testing.T) {
		_, ok, err := store.Get(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("round trip", func(t *testing.T) {
		key := Key([]byte("src"))
		require.NoError(t, store.Put(ctx, key, "<p>\nsrc\n</p>\n"))
		html, ok, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "<p>\nsrc\n</p>\n", html)
	})

	t.Run("put replaces", func(t *testing.T) {
		key := Key([]byte("src"))
		require.NoError(t, store.Put(ctx, key, "updated"))
		html, ok, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "updated", html)
	})
}

func TestRender(t *testing.T) {
	store, ctx := setupTestStore(t)
	src := []byte("# Title\n")

	t.Run("first render misses and populates", func(t *testing.T) {
		html, hit, err := Render(ctx, store, src)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Equal(t, "<h1>Title</h1>\n", html)
	})

	t.Run("second render hits", func(t *testing.T) {
		html, hit, err := Render(ctx, store, src)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, "<h1>Title</h1>\n", html)
	})

	t.Run("nil store renders without caching", func(t *testing.T) {
		html, hit, err := Render(ctx, nil, src)
		require.NoError(t, err)
		assert.False(t, hit)
		assert.Equal(t, "<h1>Title</h1>\n", html)
	})
}

func TestPurge(t *testing.T) {
	store, ctx := setupTestStore(t)
	require.NoError(t, store.Put(ctx, "old", "x"))

	n, err := store.Purge(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, ok, err := store.Get(ctx, "old")
	require.NoError(t, err)
	assert.False(t, ok)
}
