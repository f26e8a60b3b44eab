// Package bfs implements unweighted breadth-first path search on core.Graph.
//
// What:
//
//   - Search(g, start, goal, opts...) returns a path with the minimum number
//     of edges from start to goal, or false when none exists.
//   - Edge weights (distance, time) are ignored; only connectivity matters.
//   - The goal is recognized while expanding a node's neighbors, not when it
//     would later be dequeued. The first goal-adjacent node reached in level
//     order determines the returned path.
//
// Options:
//
//   - WithFilterNeighbor(fn)  skip edges for which fn returns false.
//   - WithAccessibleOnly()    keep only wheelchair-accessible edges.
//   - WithOnVisit(fn)         observe each node (with depth) as it is visited.
//
// NotFound:
//
//	Unknown start, unknown goal, unreachable goal and start == goal without
//	a self-loop all return (nil, false). There are no errors.
//
// Complexity:
//
//   - Time:   O(V + E) expansions, each copying a path of length ≤ V.
//   - Memory: O(E · V) worst case for queued paths; trivial for a campus.
//
// Example:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", core.EdgeAttr{Distance: 10})
//	g.AddEdge("B", "C", core.EdgeAttr{Distance: 10})
//	g.AddEdge("A", "C", core.EdgeAttr{Distance: 30})
//	path, ok := bfs.Search(g, "A", "C") // [A C], true
package bfs
