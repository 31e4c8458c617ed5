// Package cache provides the content-addressed, bounded, thread-safe
// result cache guarding the analysis pipeline.
//
// Eviction is strictly first-in-first-out, not LRU: on overflow the single
// oldest-inserted entry is removed regardless of access recency. This is
// deliberate; do not change it to LRU without flagging the behavior change.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// DefaultMaxSize is the default entry bound.
const DefaultMaxSize = 100

// statsSampleSize bounds the key sample returned by Stats.
const statsSampleSize = 10

// Cache is a bounded FIFO memoization map keyed by a content hash of the
// input text. A single mutex guards every lookup-or-insert-and-evict
// operation; the compute function runs outside the critical section, so
// two concurrent misses for the same key may both compute and the later
// writer wins the slot.
type Cache[V any] struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]V
	order   []string // insertion order, oldest first
}

// Stats reports the cache state.
type Stats struct {
	Size       int      `json:"size"`
	MaxSize    int      `json:"max_size"`
	SampleKeys []string `json:"sample_keys"`
}

// New creates a cache bounded to maxSize entries. Non-positive sizes fall
// back to DefaultMaxSize.
func New[V any](maxSize int) *Cache[V] {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Cache[V]{
		maxSize: maxSize,
		entries: make(map[string]V, maxSize),
	}
}

// Key returns the cache key for a text: the hex SHA-256 of its UTF-8 bytes.
func Key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// GetOrCompute returns the cached result for text, or computes, stores and
// returns it. The boolean reports a cache hit. A compute error is returned
// as-is and nothing is stored.
func (c *Cache[V]) GetOrCompute(text string, compute func() (V, error)) (V, bool, error) {
	key := Key(text)

	c.mu.Lock()
	if value, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return value, true, nil
	}
	c.mu.Unlock()

	value, err := compute()
	if err != nil {
		var zero V
		return zero, false, err
	}

	c.mu.Lock()
	c.insert(key, value)
	c.mu.Unlock()
	return value, false, nil
}

// insert stores a value, evicting the oldest entry on overflow. Callers
// must hold the lock. Re-inserting an existing key overwrites in place
// without disturbing FIFO order.
func (c *Cache[V]) insert(key string, value V) {
	if _, exists := c.entries[key]; exists {
		c.entries[key] = value
		return
	}
	if len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = value
	c.order = append(c.order, key)
}

// Clear empties the cache unconditionally.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]V, c.maxSize)
	c.order = nil
}

// Stats reports the current size, configured maximum and a sample of the
// oldest cached keys.
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	sample := make([]string, 0, statsSampleSize)
	for _, key := range c.order {
		if len(sample) == statsSampleSize {
			break
		}
		sample = append(sample, key)
	}
	return Stats{
		Size:       len(c.entries),
		MaxSize:    c.maxSize,
		SampleKeys: sample,
	}
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
