package objfile

import (
	"fmt"
	"sync"

	"obj-raytracer/internal/geom"
)

// Cache is a concurrency-safe cache of parsed models, so a file placed
// several times in a scene is parsed once. Failures are cached too.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	model *Model
	err   error
}

// NewCache creates a model cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Model returns the parsed model for name.
func (c *Cache) Model(name string) (*Model, error) {
	path, ok := c.index.ResolvePath(name)
	if !ok {
		return nil, fmt.Errorf("objfile: model %q not found", name)
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.model, entry.err
	}
	c.mu.RUnlock()

	// Slow path: parse from disk
	m, err := ReadFile(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry.model, entry.err
	}
	c.items[path] = &cacheEntry{model: m, err: err}
	return m, err
}

// Load places the cached model for name as a mesh.
func (c *Cache) Load(name string, p Placement, mat geom.Material) (*geom.Mesh, error) {
	m, err := c.Model(name)
	if err != nil {
		return nil, err
	}
	return m.Build(p, mat), nil
}

// Len returns the number of cached entries, failed loads included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
