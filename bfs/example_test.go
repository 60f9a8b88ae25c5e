package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/flowdecomp/bfs"
	"github.com/katalvlaran/flowdecomp/core"
)

// ExampleFindPath finds the fewest-edge source→sink walk in a small network.
//
//	1 ─5→ 2 ─2→ 5
//	│           ↑
//	└3→ 3 ─9→ 4 ┘(9)
//
// The route through 2 has two edges and wins over the three-edge route.
func ExampleFindPath() {
	g := core.NewGraph(5)
	g.AddEdge(1, 2, 5)
	g.AddEdge(2, 5, 2)
	g.AddEdge(1, 3, 3)
	g.AddEdge(3, 4, 9)
	g.AddEdge(4, 5, 9)

	walk, err := bfs.FindPath(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(walk.Vertices, walk.Bottleneck)
	// Output:
	// [1 2 5] 2
}

// ExampleSearch shows the dequeue order of a search that stops at its target.
func ExampleSearch() {
	g := core.NewGraph(4)
	g.AddEdge(1, 2, 1)
	g.AddEdge(1, 3, 1)
	g.AddEdge(3, 4, 1)
	g.AddEdge(2, 4, 0) // no residual flow, never followed

	res, _ := bfs.Search(g, 1, 4)
	fmt.Println(res.Order, res.Found, res.Depth[4])
	// Output:
	// [1 2 3 4] true 2
}
