package bank

import (
	"path/filepath"
	"sync"
)

// Cache memoizes Load by source path so a bank is read at most once per
// process. Failed loads are not cached.
type Cache struct {
	mu    sync.Mutex
	banks map[string]*Bank
	load  func(string) (*Bank, error)
}

// NewCache creates an empty Cache backed by Load.
func NewCache() *Cache {
	return &Cache{
		banks: make(map[string]*Bank),
		load:  Load,
	}
}

// Get returns the bank for path, loading it on first access.
func (c *Cache) Get(path string) (*Bank, error) {
	key := filepath.Clean(path)

	c.mu.Lock()
	defer c.mu.Unlock()

	if b, ok := c.banks[key]; ok {
		return b, nil
	}
	b, err := c.load(path)
	if err != nil {
		return nil, err
	}
	c.banks[key] = b
	return b, nil
}
