package bfs_test

import (
	"fmt"

	"github.com/visigraph/visigraph/bfs"
	"github.com/visigraph/visigraph/core"
)

// Building a small undirected tree and reading the traversal order and
// parent links back from the Result.
func ExampleRun() {
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddNode(1)
	}
	g.AddEdge(0, 1, 1, false)
	g.AddEdge(0, 2, 1, false)
	g.AddEdge(1, 3, 1, false)

	res, err := bfs.Run(g, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("order:", res.Order)

	path, _ := res.PathTo(3)
	fmt.Println("path to 3:", path)
	// Output:
	// order: [0 1 2 3]
	// path to 3: [0 1 3]
}
