package dfs

import (
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/traverse"
)

// Search runs an iterative depth-first search on g from start towards goal.
//
// Algorithm:
//  1. Push (start, [start]) on a LIFO stack.
//  2. Pop; skip if already visited; mark visited.
//  3. Examine neighbors in insertion order. A neighbor equal to goal ends
//     the search with path+neighbor; every other neighbor is pushed, so
//     the most recently inserted neighbor is explored next.
//
// The returned path is valid but carries no optimality guarantee. With a
// fixed insertion order the result is deterministic.
//
// Returns false (NotFound) for unknown start or goal, unreachable goal, and
// start == goal without a self-loop.
//
// Complexity: O(V + E) pops and pushes, each copying a path of length ≤ V.
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
		Frontier: traverse.NewStack(n),
		Goal:     traverse.GoalOnExpand,
		Filter:   o.FilterNeighbor,
		OnVisit:  o.OnVisit,
	})
}
