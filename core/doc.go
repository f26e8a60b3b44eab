// Package core provides the undirected, weighted graph that every campusnav
// search runs over.
//
// A Graph maps each node (an opaque, exact-match string such as a building
// name) to its neighbors, and each neighbor to an EdgeAttr payload:
//
//	Distance   float64 // meters; the default Dijkstra weight
//	Time       float64 // minutes; carried for display or used via ByTime
//	Accessible bool    // wheelchair-accessible connection
//
// The graph is undirected: AddEdge(a, b, attr) always stores both a→b and
// b→a with the same attributes, and a second AddEdge for the same pair
// overwrites the first (last write wins). There is no removal.
//
// Core Methods:
//
//	// Mutation
//	AddEdge(a, b string, attr EdgeAttr)      // O(1), never fails
//
//	// Query
//	Neighbors(id string) Neighborhood        // O(d) snapshot, empty view if unknown
//	HasEdge(a, b string) bool                // O(1)
//	Edge(a, b string) (EdgeAttr, bool)       // O(1)
//	HasVertex(id string) bool                // O(1)
//	Vertices() []string                      // O(V·log V), sorted
//	VertexCount() int                        // O(1)
//	EdgeCount() int                          // O(1), undirected pairs
//	Clone() *Graph                           // O(V+E)
//
// Neighbor order:
//
//	Neighbors(id) iterates in the order each neighbor was first attached to id.
//	Overwriting an existing edge keeps its position. BFS and DFS expand in this
//	order, so which of several equal paths they return is reproducible for a
//	given load order.
//
// Absence:
//
//	Unknown and isolated nodes are not errors. Neighbors returns an empty
//	Neighborhood and HasEdge returns false, so callers never branch on nil.
//
// Concurrency:
//
//	All methods are safe for concurrent use (one sync.RWMutex). Searches
//	expect the graph to stay unchanged while they run; build it first, then
//	share it read-only.
package core
