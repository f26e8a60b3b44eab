// Package bfs provides breadth-first path search over a core.Graph,
// returning a path with the fewest edges between two nodes.
package bfs

import (
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/traverse"
)

// Search runs breadth-first search on g from start towards goal.
//
// The queue is seeded with (start, [start]). Each dequeued, unvisited node is
// marked visited and its neighbors are examined in insertion order: the
// first neighbor equal to goal ends the search with path+neighbor, every
// other neighbor is enqueued. Level-order expansion makes the result a
// fewest-edges path. Edge attributes are ignored.
//
// Returns false (NotFound) when the queue empties, which covers unknown
// start or goal, unreachable goal, and start == goal without a self-loop.
func Search(g *core.Graph, start, goal string, opts ...Option) (core.Path, bool) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := 0
	if g != nil {
		n = g.VertexCount()
	}

	return traverse.Walk(g, start, goal, traverse.Config{
		Frontier: traverse.NewQueue(n),
		Goal:     traverse.GoalOnExpand,
		Filter:   o.FilterNeighbor,
		OnVisit:  o.OnVisit,
	})
}
