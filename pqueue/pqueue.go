// SPDX-License-Identifier: MIT

// Package pqueue provides a min-priority queue over (key, priority) pairs.
//
// The queue never looks keys up: Push always inserts, so the same key may sit
// in the queue several times with different priorities. Dijkstra relies on this
// ("lazy decrease-key"): it re-pushes a vertex whenever its distance improves
// and discards stale pops by comparing the popped priority with the best known
// distance. There is deliberately no DecreaseKey.
//
// Ordering:
//
//   - PopMin returns the entry with the smallest priority.
//   - Among equal priorities, entries leave in insertion order (FIFO). With a
//     constant priority the queue is therefore a plain FIFO, which is how bfs
//     uses it.
//
// Complexity: Push and PopMin are O(log N) for N queued entries; Empty and Len O(1).
package pqueue

import "container/heap"

// entry is one queued (key, priority) pair; seq breaks priority ties.
type entry[K any] struct {
	key      K
	priority int64
	seq      uint64
}

// entries is the container/heap backing store, ordered by (priority, seq).
type entries[K any] []entry[K]

// Len returns the number of entries.
func (h entries[K]) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence.
func (h entries[K]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two entries.
func (h entries[K]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push only.
func (h *entries[K]) Push(x any) { *h = append(*h, x.(entry[K])) }

// Pop removes the last entry; called by heap.Pop only.
func (h *entries[K]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Queue is a binary min-heap of (key, priority) pairs with duplicate keys allowed.
// The zero value is ready to use.
type Queue[K any] struct {
	h    entries[K]
	next uint64
}

// New returns an empty queue with room for capacity entries.
func New[K any](capacity int) *Queue[K] {
	return &Queue[K]{h: make(entries[K], 0, capacity)}
}

// Push inserts key with priority, unconditionally.
func (q *Queue[K]) Push(key K, priority int64) {
	heap.Push(&q.h, entry[K]{key: key, priority: priority, seq: q.next})
	q.next++
}

// PopMin removes and returns the minimum-priority entry.
// ok is false when the queue is empty.
func (q *Queue[K]) PopMin() (key K, priority int64, ok bool) {
	if len(q.h) == 0 {
		return key, 0, false
	}
	e := heap.Pop(&q.h).(entry[K])

	return e.key, e.priority, true
}

// Empty reports whether the queue holds no entries.
func (q *Queue[K]) Empty() bool { return len(q.h) == 0 }

// Len returns the number of queued entries, duplicates included.
func (q *Queue[K]) Len() int { return len(q.h) }
