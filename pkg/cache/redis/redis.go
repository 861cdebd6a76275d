// Package redis implements cache.Cache on top of go-redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"realtors/pkg/cache"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ensure Cache implements cache.Cache.
var _ cache.Cache = (*Cache)(nil)

// Options configures the Redis connection and key namespace.
type Options struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
	// KeyPrefix is prepended to every slot name.
	KeyPrefix string
}

// Cache stores slots as plain Redis strings.
type Cache struct {
	client *redis.Client
	prefix string
}

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, opts Options) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return NewWithClient(client, opts.KeyPrefix), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, prefix string) *Cache {
	return &Cache{client: client, prefix: prefix}
}

func (c *Cache) key(slot string) string { return c.prefix + slot }

func (c *Cache) Get(ctx context.Context, slot string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, c.key(slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not get %q from redis: %w", slot, err)
	}

	return value, true, nil
}

func (c *Cache) Put(ctx context.Context, slot string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(slot), value, ttl).Err(); err != nil {
		return fmt.Errorf("could not put %q into redis: %w", slot, err)
	}

	return nil
}

func (c *Cache) Invalidate(ctx context.Context, slot string) error {
	if err := c.client.Del(ctx, c.key(slot)).Err(); err != nil {
		return fmt.Errorf("could not invalidate %q in redis: %w", slot, err)
	}

	return nil
}

// Close closes the underlying client.
func (c *Cache) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}
