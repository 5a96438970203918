package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/textsoap/soap/internal/model"
)

// MemoryCache implements in-memory report caching with TTL eviction.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache.
func NewMemoryCache(defaultTTL time.Duration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a report from the cache.
func (c *MemoryCache) Get(key string) (*model.Report, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(*model.Report), true
	}
	return nil, false
}

// Set stores a report in the cache with the given TTL.
func (c *MemoryCache) Set(key string, report *model.Report, ttl time.Duration) error {
	c.cache.Set(key, report, ttl)
	return nil
}

// Delete removes a report from the cache.
func (c *MemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Clear removes all reports from the cache.
func (c *MemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}
