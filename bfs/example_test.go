package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/molgraph/bfs"
	"github.com/katalvlaran/molgraph/builder"
)

// ExampleBFS layers a six-ring from one atom: the opposite atom is three
// bonds away.
func ExampleBFS() {
	g, _ := builder.BuildGraph(nil, builder.Ring(6))
	res, err := bfs.BFS(g, g.Vertex(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range res.Order {
		fmt.Print(g.IndexOf(v), ":", res.Depth[v], " ")
	}
	fmt.Println()
	// Output:
	// 0:0 1:1 5:1 2:2 4:2 3:3
}
