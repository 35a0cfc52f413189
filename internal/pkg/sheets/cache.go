package sheets

import (
	"sync"
	"time"
)

// cache is the process-wide table store. Entries are reused until their
// deadline; the single invalidation operation clears everything.
type cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	table    *Table
	deadline time.Time
}

func newCache() *cache {
	return &cache{entries: make(map[string]cacheEntry)}
}

func (c *cache) get(key string) (*Table, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.deadline) {
		return nil, false
	}
	return e.table, true
}

func (c *cache) set(key string, table *Table, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		table:    table,
		deadline: time.Now().Add(ttl),
	}
}

func (c *cache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}
