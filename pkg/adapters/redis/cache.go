package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/marvin/pkg/domain"
	"github.com/aretw0/marvin/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the cache.
const DefaultPrefix = "marvin:fp:"

// Cache implements ports.FingerprintCache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached fingerprints.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix: DefaultPrefix,
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Cache) key(mode domain.Mode, seed string) string {
	return c.prefix + string(mode) + ":" + seed
}

// Get retrieves a fingerprint from Redis.
func (c *Cache) Get(ctx context.Context, mode domain.Mode, seed string) (string, error) {
	val, err := c.client.Get(ctx, c.key(mode, seed)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return "", ports.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get from redis: %w", err)
	}
	return val, nil
}

// Put stores a fingerprint in Redis.
func (c *Cache) Put(ctx context.Context, mode domain.Mode, seed, fingerprint string) error {
	if err := c.client.Set(ctx, c.key(mode, seed), fingerprint, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Ping checks connectivity, so callers can fail fast at startup.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}
