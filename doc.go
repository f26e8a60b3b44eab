// Package campusnav is a campus navigator: an in-memory, undirected,
// weighted graph of buildings and walkways with three path searches over it.
//
// What is in the box?
//
//	• core       – Graph store: AddEdge, Neighbors, HasEdge and the Path type
//	• traverse   – the shared search skeleton (queue, stack, priority queue)
//	• bfs        – fewest-edges path
//	• dfs        – some path, iterative, deterministic
//	• dijkstra   – cheapest path by distance or time
//	• loader     – edges from CSV (start,end,distance,time,accessible)
//	• campus     – named map locations with pixel coordinates
//	• navigator  – selection flow, routes with per-leg details, metrics
//	• builder    – deterministic fixture graphs and a distance oracle
//
// The campusnav command (cmd/campusnav) answers routes in the terminal and
// serves them over HTTP.
//
// Quick example:
//
//	    A──10──B
//	     \     │
//	      30   10
//	        \  │
//	          C
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", core.EdgeAttr{Distance: 10})
//	g.AddEdge("B", "C", core.EdgeAttr{Distance: 10})
//	g.AddEdge("A", "C", core.EdgeAttr{Distance: 30})
//
//	bfs.Search(g, "A", "C")      // A -> C
//	dijkstra.Search(g, "A", "C") // A -> B -> C
//
// Absence is a value, not an error: every search returns (nil, false) when
// no path exists, when either endpoint is unknown, or when start == goal
// and the start has no self-loop.
package campusnav
