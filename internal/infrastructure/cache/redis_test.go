package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	store, err := NewRedisStore("redis://" + s.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, s
}

func TestNewRedisStore(t *testing.T) {
	store, _ := setupTestRedis(t)
	assert.NoError(t, store.Ping(context.Background()))

	_, err := NewRedisStore("not a url")
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	store, s := setupTestRedis(t)
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.RevokeToken(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked, "revocation is per token")

	s.FastForward(2 * time.Hour)
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "entry expires with the token")
}

func TestRevokeExpiredTokenIsNoop(t *testing.T) {
	store, s := setupTestRedis(t)

	require.NoError(t, store.RevokeToken(context.Background(), "old", time.Now().Add(-time.Minute)))
	assert.Empty(t, s.Keys())
}

func TestMarkViewer(t *testing.T) {
	store, s := setupTestRedis(t)
	ctx := context.Background()
	store.now = func() time.Time { return time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC) }

	first, err := store.MarkViewer(ctx, "c1", "u1")
	require.NoError(t, err)
	assert.True(t, first)

	first, err = store.MarkViewer(ctx, "c1", "u1")
	require.NoError(t, err)
	assert.False(t, first, "second view on the same day")

	first, err = store.MarkViewer(ctx, "c2", "u1")
	require.NoError(t, err)
	assert.True(t, first, "other content counts separately")

	key := "blog:viewer:c1:2024-06-01:u1"
	require.True(t, s.Exists(key))
	assert.Equal(t, 6*time.Hour, s.TTL(key))

	store.now = func() time.Time { return time.Date(2024, 6, 2, 1, 0, 0, 0, time.UTC) }
	first, err = store.MarkViewer(ctx, "c1", "u1")
	require.NoError(t, err)
	assert.True(t, first, "a new day counts again")
}

func TestForgetViewer(t *testing.T) {
	store, s := setupTestRedis(t)
	ctx := context.Background()
	store.now = func() time.Time { return time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC) }

	_, err := store.MarkViewer(ctx, "c1", "u1")
	require.NoError(t, err)

	require.NoError(t, store.ForgetViewer(ctx, "c1", "u1"))
	assert.False(t, s.Exists("blog:viewer:c1:2024-06-01:u1"))

	first, err := store.MarkViewer(ctx, "c1", "u1")
	require.NoError(t, err)
	assert.True(t, first, "a forgotten viewer counts as unique again")

	require.NoError(t, store.ForgetViewer(ctx, "c9", "u9"), "missing key is not an error")
}
