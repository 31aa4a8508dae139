package rentvest

import (
	"sync"

	"github.com/golang/groupcache/lru"
)

// memo is a bounded, content addressed cache for pure computations.
//
// Keys must be comparable values holding the full argument tuple of the
// computation, so a hit is always exact.
type memo[K comparable, V any] struct {
	mu    sync.Mutex
	cache *lru.Cache
}

func newMemo[K comparable, V any](size int) *memo[K, V] {
	return &memo[K, V]{cache: lru.New(size)}
}

// Do returns the cached value for key, or computes, stores and returns it.
func (m *memo[K, V]) Do(key K, compute func() V) V {
	m.mu.Lock()
	if v, ok := m.cache.Get(key); ok {
		m.mu.Unlock()
		return v.(V)
	}
	m.mu.Unlock()

	v := compute()

	m.mu.Lock()
	m.cache.Add(key, v)
	m.mu.Unlock()
	return v
}

// Len returns the number of cached entries.
func (m *memo[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cache.Len()
}
