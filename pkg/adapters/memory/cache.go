package memory

import (
	"context"
	"sync"

	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
)

// Cache implements ports.DocumentCache in memory.
// Safe for concurrent use.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewCache creates a new in-memory document cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get returns a copy of the cached document.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.data[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return append([]byte(nil), doc...), nil
}

// Put stores a copy of doc.
func (c *Cache) Put(ctx context.Context, key string, doc []byte) error {
	copied := append([]byte(nil), doc...)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = copied
	return nil
}

// Delete removes the entry.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

// Keys lists the cached fingerprints.
func (c *Cache) Keys(ctx context.Context) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.data))
	for k := range c.data {
		keys = append(keys, k)
	}
	return keys, nil
}
