// Package core defines the Graph, EdgeAttr, Neighborhood and Path types.
//
// This file declares EdgeAttr, WeightFunc, Graph and the NewGraph constructor.
package core

import "sync"

// EdgeAttr is the payload carried by an undirected edge.
//
// BFS and DFS ignore it. Dijkstra reads one field through a WeightFunc
// (Distance unless told otherwise).
type EdgeAttr struct {
	// Distance is the walking distance in meters.
	Distance float64 `json:"distance" yaml:"distance"`

	// Time is the walking time in minutes.
	Time float64 `json:"time" yaml:"time"`

	// Accessible reports whether the connection is wheelchair accessible.
	Accessible bool `json:"accessible" yaml:"accessible"`
}

// WeightFunc extracts the cost of traversing an edge.
type WeightFunc func(EdgeAttr) float64

// ByDistance weighs an edge by its Distance. It is the default Dijkstra weight.
func ByDistance(a EdgeAttr) float64 { return a.Distance }

// ByTime weighs an edge by its Time.
func ByTime(a EdgeAttr) float64 { return a.Time }

// adjacency is the per-node neighbor table.
// order keeps first-insertion order; attrs holds the current payload.
type adjacency struct {
	order []string
	attrs map[string]EdgeAttr
}

// Graph is an undirected, weighted graph keyed by string node identifiers.
//
// mu guards nodes and edgeCount. The zero value is not usable; call NewGraph.
type Graph struct {
	mu sync.RWMutex

	// nodes[id] holds the neighbor table of id.
	nodes map[string]*adjacency

	// edgeCount counts undirected pairs (a self-loop counts once).
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*adjacency)}
}
