package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_PutAndGet(t *testing.T) {
	c := NewMemory(5 * time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "token-1", Entry{UserID: "user-1"}))

	got, err := c.Get(ctx, "token-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)
	assert.False(t, got.Negative)
}

func TestMemory_Miss(t *testing.T) {
	c := NewMemory(5 * time.Minute)

	got, err := c.Get(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemory_NegativeEntry(t *testing.T) {
	c := NewMemory(5 * time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "token-neg", Entry{Negative: true}))

	got, err := c.Get(ctx, "token-neg")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Negative)
	assert.Empty(t, got.UserID)
}

func TestMemory_Expiration(t *testing.T) {
	c := NewMemory(100 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "token-exp", Entry{UserID: "user-1"}))

	// Before expiry
	got, err := c.Get(ctx, "token-exp")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)

	// After expiry
	time.Sleep(150 * time.Millisecond)
	got, err = c.Get(ctx, "token-exp")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemory_LastWriteWins(t *testing.T) {
	c := NewMemory(5 * time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Put(ctx, "token-1", Entry{UserID: "user-1"}))
	require.NoError(t, c.Put(ctx, "token-1", Entry{UserID: "user-1"}))

	got, err := c.Get(ctx, "token-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)
}
