package gf256

import "sync"

// Cache shares one Field per reducing polynomial. The zero value is ready to
// use and safe for concurrent use.
type Cache struct {
	mu     sync.Mutex
	fields map[int]*Field
}

// Get returns the cached field for poly, building it on first use. Failed
// builds are not cached.
func (c *Cache) Get(poly int) (*Field, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.fields[poly]; ok {
		return f, nil
	}
	f, err := NewField(poly)
	if err != nil {
		return nil, err
	}
	if c.fields == nil {
		c.fields = make(map[int]*Field)
	}
	c.fields[poly] = f
	return f, nil
}

// Len returns the number of cached fields.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.fields)
}
