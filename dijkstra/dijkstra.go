// SPDX-License-Identifier: MIT

package dijkstra

import (
	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/pqueue"
)

// runner holds the mutable state for a single run.
type runner[T any] struct {
	g      core.Graph[T]
	dist   []int64
	parent []int // nil unless the caller wants a route
	pq     *pqueue.Queue[int]
}

func newRunner[T any](g core.Graph[T], start int, trackParents bool) *runner[T] {
	n := g.Order()
	r := &runner[T]{
		g:    g,
		dist: make([]int64, n),
		pq:   pqueue.New[int](n),
	}
	for i := range r.dist {
		r.dist[i] = infinity
	}
	if trackParents {
		r.parent = make([]int, n)
		for i := range r.parent {
			r.parent[i] = noParent
		}
	}
	r.dist[start] = 0
	r.pq.Push(start, 0)

	return r
}

// run settles vertices in order of distance. When stop >= 0 it returns as soon
// as stop is settled; otherwise it drains the queue.
func (r *runner[T]) run(stop int) {
	for {
		u, d, ok := r.pq.PopMin()
		if !ok {
			return
		}
		if d > r.dist[u] {
			continue // stale
		}
		if u == stop {
			return
		}
		for v, w := range r.g.Neighbors(u) {
			nd := d + w
			if nd < r.dist[v] {
				r.dist[v] = nd
				if r.parent != nil {
					r.parent[v] = u
				}
				r.pq.Push(v, nd)
			}
		}
	}
}

// resolve maps both IDs to indices; ok is false if either is unknown.
func resolve[T any](g core.Graph[T], startID, endID int) (start, end int, ok bool) {
	start, end = g.FindIndex(startID), g.FindIndex(endID)

	return start, end, start != core.NotFound && end != core.NotFound
}

// Distance returns the minimum total weight of any route from startID to
// endID, or NoPath when either ID is unknown or end is unreachable.
func Distance[T any](g core.Graph[T], startID, endID int) int64 {
	start, end, ok := resolve(g, startID, endID)
	if !ok {
		return NoPath
	}
	r := newRunner(g, start, false)
	r.run(-1)
	if r.dist[end] == infinity {
		return NoPath
	}

	return r.dist[end]
}

// Path returns the indices of one minimum-weight route from startID to endID,
// both ends included. It returns nil when either ID is unknown or end is
// unreachable, and [start] when the IDs coincide.
func Path[T any](g core.Graph[T], startID, endID int) []int {
	start, end, ok := resolve(g, startID, endID)
	if !ok {
		return nil
	}
	r := newRunner(g, start, true)
	r.run(end)
	if r.dist[end] == infinity {
		return nil
	}

	return Reconstruct(r.parent, start, end)
}
