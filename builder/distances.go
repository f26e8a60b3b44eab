// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// distances.go - all-pairs shortest distances (Floyd–Warshall) used as a
// reference oracle for BFS and Dijkstra tests.
//
// Contract:
//   - dist[i][i] = 0; dist[i][j] = +Inf when no path exists.
//   - Parallel relaxations are impossible here since Graph stores one
//     edge per pair; a self-loop never improves dist[i][i].
//
// Complexity: O(V³) time, O(V²) space.

package builder

import (
	"math"

	"github.com/katalvlaran/campusnav/core"
)

// Table is an all-pairs distance matrix keyed by vertex ID.
type Table struct {
	index map[string]int
	dist  [][]float64
}

// Get returns the minimum total weight from a to b.
// Unknown vertices and unreachable pairs yield +Inf.
func (t *Table) Get(a, b string) float64 {
	i, ok := t.index[a]
	if !ok {
		return math.Inf(1)
	}
	j, ok := t.index[b]
	if !ok {
		return math.Inf(1)
	}

	return t.dist[i][j]
}

// Reachable reports whether a path from a to b exists.
func (t *Table) Reachable(a, b string) bool {
	return !math.IsInf(t.Get(a, b), 1)
}

// Distances computes all-pairs minimum weights of g under w.
func Distances(g *core.Graph, w core.WeightFunc) *Table {
	ids := g.Vertices()
	n := len(ids)
	t := &Table{index: make(map[string]int, n), dist: make([][]float64, n)}

	// 1) Initialize: 0 on the diagonal, +Inf elsewhere.
	for i, id := range ids {
		t.index[id] = i
		row := make([]float64, n)
		for j := range row {
			if i != j {
				row[j] = math.Inf(1)
			}
		}
		t.dist[i] = row
	}

	// 2) Seed direct edges.
	for i, id := range ids {
		g.Neighbors(id).Range(func(nb string, attr core.EdgeAttr) bool {
			j := t.index[nb]
			if i != j {
				t.dist[i][j] = w(attr)
			}
			return true
		})
	}

	// 3) Relax through every intermediate k.
	var i, j, k int
	for k = 0; k < n; k++ {
		dk := t.dist[k]
		for i = 0; i < n; i++ {
			ik := t.dist[i][k]
			if math.IsInf(ik, 1) {
				continue
			}
			di := t.dist[i]
			for j = 0; j < n; j++ {
				if cand := ik + dk[j]; cand < di[j] {
					di[j] = cand
				}
			}
		}
	}

	return t
}

// Hops computes all-pairs minimum edge counts of g.
func Hops(g *core.Graph) *Table {
	return Distances(g, func(core.EdgeAttr) float64 { return 1 })
}
