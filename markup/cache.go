package markup

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// DefaultCacheEntries is the capacity used by NewCache when given n <= 0.
const DefaultCacheEntries = 64

// Cache memoizes Parse by document content. It is safe for concurrent use.
//
// Entries are keyed by the xxhash of the text and verified against the stored
// text, so a hash collision costs a re-parse, never a wrong result. When full
// the oldest entry is evicted.
type Cache struct {
	mu      sync.RWMutex
	max     int
	entries map[uint64]cacheEntry
	order   []uint64

	hits   uint64
	misses uint64
}

type cacheEntry struct {
	text   string
	blocks []Block
}

// NewCache returns a cache holding at most n documents.
func NewCache(n int) *Cache {
	if n <= 0 {
		n = DefaultCacheEntries
	}
	return &Cache{
		max:     n,
		entries: make(map[uint64]cacheEntry, n),
	}
}

// Parse returns Parse(text), reusing a previous result for identical text.
// The returned slice is shared between callers and must not be modified.
func (c *Cache) Parse(text string) []Block {
	key := xxhash.Sum64String(text)

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && e.text == text {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		return e.blocks
	}

	blocks := Parse(text)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses++
	if _, exists := c.entries[key]; !exists {
		if len(c.order) >= c.max {
			delete(c.entries, c.order[0])
			c.order = c.order[1:]
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = cacheEntry{text: text, blocks: blocks}
	return blocks
}

// Len returns the number of cached documents.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the hit and miss counts since the cache was created.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
