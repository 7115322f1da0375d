package basis

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache shares constructed bases between callers that ask for the same
// method, size, angular cutoff and NUFFT kind. Concurrent requests for a
// missing entry construct it once. The logger and worker settings of the
// first request stick to the cached instance.
type Cache struct {
	mu      sync.Mutex
	entries map[string]Basis
	group   singleflight.Group
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Basis)}
}

// Direct returns a cached or new direct basis.
func (c *Cache) Direct(size []int, opts ...Option) (*Direct, error) {
	b, err := c.get("direct", size, opts, func() (Basis, error) { return NewDirect(size, opts...) })
	if err != nil {
		return nil, err
	}
	return b.(*Direct), nil
}

// Fast returns a cached or new fast basis.
func (c *Cache) Fast(size []int, opts ...Option) (*Fast, error) {
	b, err := c.get("fast", size, opts, func() (Basis, error) { return NewFast(size, opts...) })
	if err != nil {
		return nil, err
	}
	return b.(*Fast), nil
}

// Len returns the number of cached bases.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) get(method string, size []int, opts []Option, build func() (Basis, error)) (Basis, error) {
	cfg := ApplyOptions(opts...)
	key := fmt.Sprintf("%s/%v/%t:%d/%v/%v", method, size, cfg.LimitEllMax, cfg.EllMax, cfg.Precision, cfg.NUFFT)

	c.mu.Lock()
	b, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return b, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		c.mu.Lock()
		b, ok := c.entries[key]
		c.mu.Unlock()
		if ok {
			return b, nil
		}

		b, err := build()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = b
		c.mu.Unlock()

		return b, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(Basis), nil
}
