// SPDX-License-Identifier: MIT
//
// File: sync.go
// Role: optional reader/writer locking around any MutableGraph.
// Concurrency:
//   - Read holds the read lock for the whole callback, so a traversal never
//     observes a half-applied batch of mutations.
//   - Write holds the write lock for the whole callback.

package core

import "sync"

// Synchronized guards a MutableGraph with a sync.RWMutex.
// The wrapped graph must not be used directly once wrapped.
type Synchronized[T any] struct {
	mu sync.RWMutex
	g  MutableGraph[T]
}

// NewSynchronized wraps g.
func NewSynchronized[T any](g MutableGraph[T]) *Synchronized[T] {
	return &Synchronized[T]{g: g}
}

// Read runs fn with the read lock held. fn must not retain g after returning.
func (s *Synchronized[T]) Read(fn func(g Graph[T])) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.g)
}

// Write runs fn with the write lock held and returns its error.
func (s *Synchronized[T]) Write(fn func(g MutableGraph[T]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.g)
}
