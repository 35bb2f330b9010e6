package client

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	cacheTTL             = 30 * time.Second
	cacheCleanupInterval = 5 * time.Minute
)

// responseCache is a short-lived read-through cache for list/read calls.
// Entries expire after 30 seconds; mutating services clear their resource
// prefix so stale lists never outlive a write.
type responseCache struct {
	ttl   time.Duration
	cache *gocache.Cache
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		ttl:   ttl,
		cache: gocache.New(ttl, cacheCleanupInterval),
	}
}

func (c *responseCache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *responseCache) Set(key string, data interface{}) {
	c.cache.Set(key, data, c.ttl)
}

// Clear removes every key containing pattern.
func (c *responseCache) Clear(pattern string) {
	for key := range c.cache.Items() {
		if strings.Contains(key, pattern) {
			c.cache.Delete(key)
		}
	}
}

func (c *responseCache) ClearAll() {
	c.cache.Flush()
}

// GetCached returns the cached value for key when it is younger than the TTL.
func (c *Client) GetCached(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *Client) SetCached(key string, data interface{}) {
	c.cache.Set(key, data)
}

// ClearCache removes every cached entry whose key contains pattern.
func (c *Client) ClearCache(pattern string) {
	c.cache.Clear(pattern)
}

func (c *Client) ClearCacheAll() {
	c.cache.ClearAll()
}
