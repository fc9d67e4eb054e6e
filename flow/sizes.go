package flow

import (
	"sync"

	"fyne.io/fyne/v2"
)

// SizeCache is the measured size of each item, keyed by item identity.
//
// Measurements are recorded with Set as they arrive; layout passes read an
// immutable Snapshot so a pass never observes a half-applied update. Two
// items that compare equal share one entry.
type SizeCache[K comparable] struct {
	mu    sync.RWMutex
	sizes map[K]fyne.Size
}

func NewSizeCache[K comparable]() *SizeCache[K] {
	return &SizeCache[K]{sizes: make(map[K]fyne.Size)}
}

// Set records the measured size of k and reports whether it changed.
func (c *SizeCache[K]) Set(k K, s fyne.Size) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	old, ok := c.sizes[k]
	if ok && old == s {
		return false
	}
	c.sizes[k] = s
	return true
}

func (c *SizeCache[K]) Size(k K) (fyne.Size, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s, ok := c.sizes[k]
	return s, ok
}

func (c *SizeCache[K]) Forget(k K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.sizes, k)
}

// Prune drops every entry whose key is not in keep and returns how many
// were dropped.
func (c *SizeCache[K]) Prune(keep []K) int {
	live := make(map[K]struct{}, len(keep))
	for _, k := range keep {
		live[k] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := 0
	for k := range c.sizes {
		if _, ok := live[k]; !ok {
			delete(c.sizes, k)
			dropped++
		}
	}
	return dropped
}

func (c *SizeCache[K]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.sizes)
}

func (c *SizeCache[K]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sizes = make(map[K]fyne.Size)
}

// Snapshot returns a copy of the cache that later updates do not touch.
func (c *SizeCache[K]) Snapshot() map[K]fyne.Size {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := make(map[K]fyne.Size, len(c.sizes))
	for k, s := range c.sizes {
		snap[k] = s
	}
	return snap
}

// Rows runs ComputeRows against the current snapshot.
func (c *SizeCache[K]) Rows(availableWidth float32, items []K, spacing float32) [][]K {
	return ComputeRows(availableWidth, items, c.Snapshot(), spacing)
}
