package dijkstra

import (
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/traverse"
)

// Search returns a minimum-cost path from start to goal in g, or false when
// the goal is unreachable.
//
// Steps:
//  1. Seed a min-heap with (0, start, [start]).
//  2. Pop the cheapest entry; skip it if its node is already finalized;
//     otherwise finalize it and, if it is the goal, return its path.
//  3. Push (cost+w(edge), neighbor, path+neighbor) for every unfinalized
//     neighbor.
//
// Ties on cost are broken by node identifier, then by comparing paths
// element-wise, so the result does not depend on heap internals.
//
// start == goal is NotFound: the seed entry is never accepted as a result.
// Negative weights are not rejected; they void the minimality guarantee.
//
// Complexity: O((V + E) log E) heap operations plus path copies.
func Search(g *core.Graph, start, goal string, opts ...Option) (core.Path, bool) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := 0
	if g != nil {
		n = g.EdgeCount()
	}

	return traverse.Walk(g, start, goal, traverse.Config{
		Frontier:     traverse.NewPriorityQueue(n),
		Goal:         traverse.GoalOnPop,
		PruneVisited: true,
		Weight:       o.Weight,
		MaxCost:      o.MaxDistance,
		Filter:       o.FilterNeighbor,
		OnVisit:      o.OnVisit,
	})
}
