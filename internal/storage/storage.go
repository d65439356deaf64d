package storage

import (
	"strconv"
	"strings"
	"sync"

	kmaps "github.com/knadh/koanf/maps"
)

// keySeparator cannot appear in a path, so joined keys never collide.
const keySeparator = "\x00"

// Cache memoizes merged config-file contents by the exact ordered list of
// candidate paths. There is no invalidation: a cached entry lives as long as
// the cache does.
type Cache interface {
	Get(paths []string) (map[string]any, bool)
	Set(paths []string, values map[string]any)
}

// MemoryCache keeps entries in-memory and guards access with a RWMutex.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]map[string]any
	hits    int
	misses  int
}

// NewMemoryCache returns an empty cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]map[string]any),
	}
}

// Get returns a copy of the entry stored for paths.
func (c *MemoryCache) Get(paths []string) (map[string]any, bool) {
	key := cacheKey(paths)

	c.mu.Lock()
	defer c.mu.Unlock()

	values, ok := c.entries[key]
	if !ok {
		c.misses++
		return nil, false
	}
	c.hits++
	return kmaps.Copy(values), true
}

// Set stores a copy of values for paths, replacing any previous entry.
func (c *MemoryCache) Set(paths []string, values map[string]any) {
	key := cacheKey(paths)
	stored := kmaps.Copy(values)

	c.mu.Lock()
	c.entries[key] = stored
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Stats returns the number of Get calls that found or missed an entry.
func (c *MemoryCache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.hits, c.misses
}

// cacheKey prefixes the path count so that an empty list and a list holding
// one empty path do not share a key.
func cacheKey(paths []string) string {
	return strconv.Itoa(len(paths)) + keySeparator + strings.Join(paths, keySeparator)
}
