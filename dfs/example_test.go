package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/starlane/dfs"
	"github.com/katalvlaran/starlane/matrix"
)

// ExampleDFS follows the first lane as far as it goes before backtracking.
func ExampleDFS() {
	g := matrix.New[string]()
	for i, name := range []string{"Sol", "Alpha", "Proxima", "Barnard"} {
		g.AddVertex(i+1, name)
	}
	g.AddEdge(1, 2, 4)
	g.AddEdge(1, 4, 6)
	g.AddEdge(2, 3, 1)

	for _, idx := range dfs.DFS[string](g, 1) {
		fmt.Println(g.Vertices()[idx].Payload)
	}

	// Output:
	// Sol
	// Alpha
	// Proxima
	// Barnard
}

// ExampleTopologicalSort orders systems so every lane points forward.
func ExampleTopologicalSort() {
	g := matrix.New[string]()
	for i, name := range []string{"Sol", "Alpha", "Proxima", "Barnard"} {
		g.AddVertex(i+1, name)
	}
	g.AddEdge(1, 2, 4)
	g.AddEdge(1, 4, 6)
	g.AddEdge(2, 3, 1)

	order, err := dfs.TopologicalSort[string](g)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, idx := range order {
		fmt.Println(g.Vertices()[idx].Payload)
	}

	g.AddEdge(3, 1, 2)
	_, err = dfs.TopologicalSort[string](g)
	fmt.Println(err)

	// Output:
	// Sol
	// Barnard
	// Alpha
	// Proxima
	// topological sort: arc 3 -> 1: dfs: cycle detected
}
