// Package dijkstra implements single-pair shortest-path search on a
// core.Graph with non-negative edge weights.
//
// Search(g, start, goal, opts...) returns the cheapest path under the
// selected weight (distance by default, or time via WithWeight(core.ByTime)).
// The goal is recognized when it is popped from the priority queue, which
// is what makes the first answer minimal.
//
// Example:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", core.EdgeAttr{Distance: 10})
//	g.AddEdge("B", "C", core.EdgeAttr{Distance: 10})
//	g.AddEdge("A", "C", core.EdgeAttr{Distance: 30})
//	path, ok := dijkstra.Search(g, "A", "C") // [A B C], true
package dijkstra
