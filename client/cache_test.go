package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	c := New()
	c.SetCached("instruments:org-1", []string{"a", "b"})

	value, found := c.GetCached("instruments:org-1")
	require.True(t, found)
	assert.Equal(t, []string{"a", "b"}, value)

	_, found = c.GetCached("instruments:org-2")
	assert.False(t, found)
}

func TestCacheExpiry(t *testing.T) {
	cache := newResponseCache(20 * time.Millisecond)
	cache.Set("key", "value")

	_, found := cache.Get("key")
	require.True(t, found)

	time.Sleep(40 * time.Millisecond)

	_, found = cache.Get("key")
	assert.False(t, found, "entries older than the TTL are not returned")
}

func TestCacheClearPattern(t *testing.T) {
	c := New()
	c.SetCached("instruments:org-1", 1)
	c.SetCached("instruments:org-2", 2)
	c.SetCached("calibrations:org-1", 3)

	c.ClearCache("instruments")

	_, found := c.GetCached("instruments:org-1")
	assert.False(t, found)
	_, found = c.GetCached("instruments:org-2")
	assert.False(t, found)
	_, found = c.GetCached("calibrations:org-1")
	assert.True(t, found, "keys not containing the pattern survive")
}

func TestCacheClearAll(t *testing.T) {
	c := New()
	c.SetCached("instruments:org-1", 1)
	c.SetCached("calibrations:org-1", 2)

	c.ClearCacheAll()

	_, found := c.GetCached("instruments:org-1")
	assert.False(t, found)
	_, found = c.GetCached("calibrations:org-1")
	assert.False(t, found)
}
