// Package cache keeps the serialized tree between rebuilds so the delivery
// endpoint does not hit the store and rerun the build on every request.
package cache

import (
	"sync"
	"time"
)

// Cache holds one serialized payload with a TTL. Reads share an RLock; an
// expired entry is rebuilt under the write lock, so concurrent requests
// trigger at most one rebuild and each rebuild works on its own freshly
// fetched data.
type Cache struct {
	mu      sync.RWMutex
	payload []byte
	expires time.Time
	ttl     time.Duration
}

// New creates a cache whose entries live for ttl.
func New(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl}
}

// Get returns the cached payload, rebuilding it via rebuild if the entry is
// missing or expired. A rebuild error leaves the cache empty and is returned
// to the caller; a stale payload is never served in its place.
func (c *Cache) Get(rebuild func() ([]byte, error)) ([]byte, error) {
	c.mu.RLock()
	if c.payload != nil && time.Now().Before(c.expires) {
		p := c.payload
		c.mu.RUnlock()
		return p, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another request may have rebuilt while we waited for the lock.
	if c.payload != nil && time.Now().Before(c.expires) {
		return c.payload, nil
	}

	payload, err := rebuild()
	if err != nil {
		c.payload = nil
		return nil, err
	}
	c.payload = payload
	c.expires = time.Now().Add(c.ttl)
	return payload, nil
}

// Invalidate drops the cached payload; the next Get rebuilds.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.payload = nil
}
