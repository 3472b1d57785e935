package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     Entry
	expiresAt time.Time
}

// Memory is a thread-safe in-process verification cache with absolute TTL.
// It is the fallback when no Redis is configured.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	ttl     time.Duration
}

// NewMemory creates an in-memory cache whose entries expire ttl after
// they are written.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Memory{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
	}
	go c.cleanupLoop()
	return c
}

func (c *Memory) Get(_ context.Context, token string) (*Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, found := c.entries[token]
	if !found || time.Now().After(e.expiresAt) {
		return nil, nil
	}

	value := e.value
	return &value, nil
}

func (c *Memory) Put(_ context.Context, token string, e Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[token] = &memoryEntry{
		value:     e,
		expiresAt: time.Now().Add(c.ttl),
	}
	return nil
}

// cleanup removes expired entries.
func (c *Memory) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for token, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, token)
		}
	}
}

// cleanupLoop runs periodic cleanup of expired entries.
func (c *Memory) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}
