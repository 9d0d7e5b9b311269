package cache

import (
	"context"
	"sync"
	"time"
)

// cacheEntry represents a stored payload with expiration
type cacheEntry struct {
	payload   []byte
	expiresAt time.Time
}

// InMemoryMetricsCache implements MetricsCache with a process-local map.
// Suitable for single-instance deployments and testing; state is not
// shared across instances.
type InMemoryMetricsCache struct {
	mu        sync.RWMutex
	entries   map[string]cacheEntry
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryMetricsCache creates an in-memory metrics cache.
// It starts a background goroutine to clean up expired entries.
func NewInMemoryMetricsCache() *InMemoryMetricsCache {
	c := &InMemoryMetricsCache{
		entries:  make(map[string]cacheEntry),
		stopChan: make(chan struct{}),
	}
	c.wg.Add(1)
	go c.cleanupLoop()
	return c
}

// Get fetches a cached payload. Expired entries count as a miss.
func (c *InMemoryMetricsCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, exists := c.entries[key]
	if !exists || time.Now().After(e.expiresAt) {
		return nil, false, nil
	}
	return e.payload, true, nil
}

// Set stores a payload with a TTL
func (c *InMemoryMetricsCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		payload:   payload,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Invalidate removes a key
func (c *InMemoryMetricsCache) Invalidate(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

// Close stops the cleanup goroutine
func (c *InMemoryMetricsCache) Close() error {
	c.closeOnce.Do(func() {
		close(c.stopChan)
	})
	c.wg.Wait()
	return nil
}

// cleanupLoop periodically removes expired entries
func (c *InMemoryMetricsCache) cleanupLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopChan:
			return
		}
	}
}

// cleanup removes all expired entries
func (c *InMemoryMetricsCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// Ensure InMemoryMetricsCache implements MetricsCache
var _ MetricsCache = (*InMemoryMetricsCache)(nil)
