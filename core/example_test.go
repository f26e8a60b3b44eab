package core_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// ExampleGraph demonstrates building a small campus graph and querying it.
func ExampleGraph() {
	// 1) Create an empty graph.
	g := core.NewGraph()

	// 2) Add undirected edges; nodes appear automatically.
	g.AddEdge("Humanities", "Gordon Hall", core.EdgeAttr{Distance: 60, Time: 1, Accessible: true})
	g.AddEdge("Humanities", "Pollak Library", core.EdgeAttr{Distance: 1200, Time: 15})

	// 3) Query both directions.
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Gordon Hall→Humanities?", g.HasEdge("Gordon Hall", "Humanities"))
	fmt.Println("Neighbors of Humanities:", g.Neighbors("Humanities").IDs())

	// 4) Unknown nodes give an empty view, not an error.
	fmt.Println("Neighbors of Nowhere:", g.Neighbors("Nowhere").Len())

	// Output:
	// Vertices: [Gordon Hall Humanities Pollak Library]
	// Gordon Hall→Humanities? true
	// Neighbors of Humanities: [Gordon Hall Pollak Library]
	// Neighbors of Nowhere: 0
}

// ExamplePath_String shows the display form of a path.
func ExamplePath_String() {
	p := core.Path{"Engineering", "Computer Science", "Eastside North Parking Structure"}
	fmt.Println(p)
	fmt.Println("hops:", p.Hops())
	// Output:
	// Engineering -> Computer Science -> Eastside North Parking Structure
	// hops: 2
}
