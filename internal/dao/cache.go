package dao

import (
	"strings"
	"sync"
	"time"
)

// DefaultCacheTTL is the default time-to-live for cached counts.
const DefaultCacheTTL = 5 * time.Second

type countEntry struct {
	count   int
	expires time.Time
}

// CountCache remembers record counts per table and criteria for a short while,
// so paging back and forth or reopening a view does not recount.
type CountCache struct {
	ttl     time.Duration
	now     func() time.Time
	entries map[string]countEntry
	mx      sync.Mutex
}

// NewCountCache returns a cache whose entries live for ttl.
func NewCountCache(ttl time.Duration) *CountCache {
	return &CountCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]countEntry),
	}
}

// Get returns a live count. Expired entries are evicted on the way.
func (c *CountCache) Get(key string) (int, bool) {
	c.mx.Lock()
	defer c.mx.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return 0, false
	}
	if !c.now().Before(e.expires) {
		delete(c.entries, key)
		return 0, false
	}

	return e.count, true
}

// Set records a count.
func (c *CountCache) Set(key string, count int) {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.entries[key] = countEntry{count: count, expires: c.now().Add(c.ttl)}
}

// Forget drops every count cached for a table, whatever the criteria.
func (c *CountCache) Forget(table string) {
	c.mx.Lock()
	defer c.mx.Unlock()

	for k := range c.entries {
		if k == table || strings.HasPrefix(k, table+"|") {
			delete(c.entries, k)
		}
	}
}

// Clear empties the cache.
func (c *CountCache) Clear() {
	c.mx.Lock()
	defer c.mx.Unlock()

	clear(c.entries)
}
