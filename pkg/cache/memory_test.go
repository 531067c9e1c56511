package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGetExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache().WithClock(func() time.Time { return now })

	type payload struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, c.Set(ctx, "session:1", payload{UserID: "u1"}, time.Minute))

	var got payload
	found, err := c.Get(ctx, "session:1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "u1", got.UserID)

	ttl, err := c.TTL(ctx, "session:1")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	now = now.Add(time.Minute)
	found, err = c.Get(ctx, "session:1", &got)
	require.NoError(t, err)
	assert.False(t, found)

	ttl, err = c.TTL(ctx, "session:1")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-2), ttl)
}

func TestMemoryCacheIncrement(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	for want := int64(1); want <= 3; want++ {
		n, err := c.Increment(ctx, "login_failed:alice")
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}

	ttl, err := c.TTL(ctx, "login_failed:alice")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl)

	require.NoError(t, c.Expire(ctx, "login_failed:alice", time.Hour))
	exists, err := c.Exists(ctx, "login_failed:alice")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, c.Delete(ctx, "login_failed:alice"))
	exists, err = c.Exists(ctx, "login_failed:alice")
	require.NoError(t, err)
	assert.False(t, exists)
}
