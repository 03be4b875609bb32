package session

import (
	"maps"
	"slices"
	"sync"

	"go.trai.ch/diffdirs/internal/core/domain"
	"go.trai.ch/diffdirs/internal/core/ports"
)

// Cache maps relative paths to the views opened for them.
// Handles are weak: validity is checked by the caller on every use.
// A Cache is safe for concurrent use.
type Cache struct {
	mu    sync.RWMutex
	views map[domain.RelativePath]ports.ViewHandle
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{views: make(map[domain.RelativePath]ports.ViewHandle)}
}

// Lookup returns the handle recorded for path.
func (c *Cache) Lookup(path domain.RelativePath) (ports.ViewHandle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.views[path]
	return h, ok
}

// Put records or replaces the handle for path.
func (c *Cache) Put(path domain.RelativePath, view ports.ViewHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.views[path] = view
}

// Len returns the number of cached paths.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.views)
}

// Paths returns the cached paths in sorted order.
func (c *Cache) Paths() []domain.RelativePath {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.views))
}
