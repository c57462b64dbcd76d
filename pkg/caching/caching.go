// Package caching provides a small in-process memo cache. The explorer
// uses it to memoize dataset loads per sample cap; nothing is ever
// written to disk.
package caching

import "sync"

// Memo is a mutex-guarded cache keyed by an integer argument.
type Memo[V any] struct {
	mu      sync.Mutex
	entries map[int]V
}

// NewMemo creates an empty Memo.
func NewMemo[V any]() *Memo[V] {
	return &Memo[V]{entries: make(map[int]V)}
}

// Get retrieves a cached value. It returns the value and true on a hit.
func (m *Memo[V]) Get(key int) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[key]
	return v, ok
}

// Set stores a value under the given key, replacing any previous entry.
func (m *Memo[V]) Set(key int, v V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = v
}
