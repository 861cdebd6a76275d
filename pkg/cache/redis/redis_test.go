package redis_test

import (
	"context"
	"realtors/pkg/cache"
	rediscache "realtors/pkg/cache/redis"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	connStr, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := redis.ParseURL(connStr)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(ctx).Err())

	return client
}

func TestCache_InvalidateThenMiss(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()
	c := rediscache.NewWithClient(client, "test:")

	_, ok, err := c.Get(ctx, cache.HighlightsSlot)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Put(ctx, cache.HighlightsSlot, []byte("view"), time.Minute))

	value, ok, err := c.Get(ctx, cache.HighlightsSlot)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "view", string(value))

	// the slot is namespaced by the prefix
	raw, err := client.Get(ctx, "test:"+cache.HighlightsSlot).Result()
	require.NoError(t, err)
	require.Equal(t, "view", raw)

	require.NoError(t, c.Invalidate(ctx, cache.HighlightsSlot))
	_, ok, err = c.Get(ctx, cache.HighlightsSlot)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Invalidate(ctx, cache.HighlightsSlot))
}

func TestCache_TTL(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()
	c := rediscache.NewWithClient(client, "")

	require.NoError(t, c.Put(ctx, "short", []byte("v"), time.Second))
	ttl, err := client.TTL(ctx, "short").Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))

	require.NoError(t, c.Put(ctx, "forever", []byte("v"), 0))
	ttl, err = client.TTL(ctx, "forever").Result()
	require.NoError(t, err)
	require.Equal(t, time.Duration(-1), ttl)
}
