package memory

import (
	"context"
	"sync"

	"github.com/aretw0/marvin/pkg/domain"
	"github.com/aretw0/marvin/pkg/ports"
	"github.com/golang/groupcache/lru"
)

// DefaultMaxEntries bounds a cache built without WithMaxEntries.
const DefaultMaxEntries = 10000

type entryKey struct {
	mode domain.Mode
	seed string
}

// Cache implements ports.FingerprintCache in memory, evicting the least
// recently used fingerprint once it holds its maximum number of entries.
// Safe for concurrent use.
type Cache struct {
	mu   sync.Mutex
	data *lru.Cache
}

// Option configures a Cache.
type Option func(*Cache)

// WithMaxEntries caps the number of cached fingerprints. Zero means no cap.
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		c.data.MaxEntries = n
	}
}

// NewCache creates a new in-memory cache holding at most DefaultMaxEntries
// fingerprints unless configured otherwise.
func NewCache(opts ...Option) *Cache {
	c := &Cache{data: lru.New(DefaultMaxEntries)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a fingerprint from memory.
func (c *Cache) Get(ctx context.Context, mode domain.Mode, seed string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.data.Get(entryKey{mode, seed})
	if !ok {
		return "", ports.ErrCacheMiss
	}
	return v.(string), nil
}

// Put stores a fingerprint in memory.
func (c *Cache) Put(ctx context.Context, mode domain.Mode, seed, fingerprint string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.Add(entryKey{mode, seed}, fingerprint)
	return nil
}

// Len returns the number of cached fingerprints.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data.Len()
}
