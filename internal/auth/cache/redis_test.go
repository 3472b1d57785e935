package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, ttl), mr
}

func TestRedisStore_PutAndGet(t *testing.T) {
	store, _ := newTestRedisStore(t, 10*time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "token-1", Entry{UserID: "user-1"}))

	got, err := store.Get(ctx, "token-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)
	assert.False(t, got.Negative)
}

func TestRedisStore_Miss(t *testing.T) {
	store, _ := newTestRedisStore(t, 10*time.Minute)

	got, err := store.Get(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStore_NegativeEntry(t *testing.T) {
	store, _ := newTestRedisStore(t, 10*time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "token-neg", Entry{Negative: true}))

	got, err := store.Get(ctx, "token-neg")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Negative)
}

func TestRedisStore_Expiration(t *testing.T) {
	store, mr := newTestRedisStore(t, 10*time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "token-exp", Entry{UserID: "user-1"}))

	mr.FastForward(11 * time.Minute)

	got, err := store.Get(ctx, "token-exp")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	store, mr := newTestRedisStore(t, 10*time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "token-1", Entry{UserID: "user-1"}))

	// Entries must not collide with other keyspaces in a shared Redis.
	assert.True(t, mr.Exists("verified:token-1"))
}
