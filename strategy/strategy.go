// SPDX-License-Identifier: MIT

package strategy

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/starlane/bfs"
	"github.com/katalvlaran/starlane/core"
	"github.com/katalvlaran/starlane/dfs"
	"github.com/katalvlaran/starlane/dijkstra"
)

// NoTarget is passed as endID by callers that have no end vertex.
const NoTarget = math.MinInt

// Registered strategy names.
const (
	NameBFS      = "bfs"
	NameDFS      = "dfs"
	NameDijkstra = "dijkstra"
)

// ErrUnknownStrategy is returned by New for an unregistered name.
var ErrUnknownStrategy = errors.New("strategy: unknown strategy")

// Strategy runs one algorithm against a graph.
type Strategy[T any] interface {
	Run(g core.Graph[T], startID, endID int) int64
}

// BFS runs breadth-first traversal, calling OnVisit per vertex when set.
type BFS[T any] struct {
	OnVisit func(core.Vertex[T])
}

// Run returns the number of vertices visited.
func (s BFS[T]) Run(g core.Graph[T], startID, _ int) int64 {
	return int64(len(bfs.BFS(g, startID, bfs.WithOnVisit(s.OnVisit))))
}

// DFS runs depth-first traversal, calling OnVisit per vertex when set.
type DFS[T any] struct {
	OnVisit func(core.Vertex[T])
}

// Run returns the number of vertices visited.
func (s DFS[T]) Run(g core.Graph[T], startID, _ int) int64 {
	return int64(len(dfs.DFS(g, startID, dfs.WithOnVisit(s.OnVisit))))
}

// Dijkstra reports shortest-path distances.
type Dijkstra[T any] struct{}

// Run returns the minimum route weight, or dijkstra.NoPath.
func (Dijkstra[T]) Run(g core.Graph[T], startID, endID int) int64 {
	return dijkstra.Distance(g, startID, endID)
}

// PathFinder returns shortest routes as index sequences.
type PathFinder[T any] struct{}

// FindShortestPath returns one minimum-weight route, or nil.
func (PathFinder[T]) FindShortestPath(g core.Graph[T], startID, endID int) []int {
	return dijkstra.Path(g, startID, endID)
}

// New returns the strategy registered under name. onVisit is used by the
// traversal strategies and ignored by the others; it may be nil.
func New[T any](name string, onVisit func(core.Vertex[T])) (Strategy[T], error) {
	switch name {
	case NameBFS:
		return BFS[T]{OnVisit: onVisit}, nil
	case NameDFS:
		return DFS[T]{OnVisit: onVisit}, nil
	case NameDijkstra:
		return Dijkstra[T]{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Names lists the names New accepts, sorted.
func Names() []string {
	names := []string{NameBFS, NameDFS, NameDijkstra}
	slices.Sort(names)

	return names
}
