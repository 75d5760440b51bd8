package bibtex

import (
	"slices"
	"sync"
)

// DefaultCacheSize is the number of name lists a Cache created with a
// non-positive size holds.
const DefaultCacheSize = 1024

// Cache memoizes Parse for name lists that repeat across entries, like the
// editors of a proceedings volume. A Cache is safe for concurrent use. When
// full, the cache is emptied before the next result is stored.
type Cache struct {
	mu      sync.RWMutex
	size    int
	entries map[string]AuthorList
}

// NewCache returns a cache holding up to size name lists.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{
		size:    size,
		entries: make(map[string]AuthorList, min(size, 64)),
	}
}

// Parse returns Parse(names), reusing an earlier result for the same names.
// Callers own the returned list.
func (c *Cache) Parse(names string) AuthorList {
	c.mu.RLock()
	authors, ok := c.entries[names]
	c.mu.RUnlock()
	if ok {
		return slices.Clone(authors)
	}

	authors = Parse(names)

	c.mu.Lock()
	if len(c.entries) >= c.size {
		clear(c.entries)
	}
	c.entries[names] = authors
	c.mu.Unlock()
	return slices.Clone(authors)
}

// Len returns the number of name lists in the cache.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
