package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dfs"
)

// ExampleSearch shows DFS following the most recently added branch.
func ExampleSearch() {
	g := core.NewGraph()
	g.AddEdge("Library", "Gym", core.EdgeAttr{Distance: 200})
	g.AddEdge("Library", "Hall", core.EdgeAttr{Distance: 100})
	g.AddEdge("Gym", "Lab", core.EdgeAttr{Distance: 50})
	g.AddEdge("Hall", "Lab", core.EdgeAttr{Distance: 80})

	path, ok := dfs.Search(g, "Library", "Lab")
	fmt.Println(path, ok)
	// Output:
	// Library -> Hall -> Lab true
}
