// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// impl_lattice.go - Path, Cycle and Grid constructors.
//
// Determinism:
//   - Edges are added in ascending index order, so neighbor insertion order
//     is stable for a fixed configuration.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/campusnav/core"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodGrid  = "Grid"

	minPathVertices  = 2
	minCycleVertices = 3
	minGridSide      = 1
)

// Path returns a Constructor for the path 0–1–…–(n-1). Requires n ≥ 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			g.AddEdge(cfg.idFn(i), cfg.idFn(i+1), cfg.attrFn(cfg.rng))
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring 0–1–…–(n-1)–0. Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n), cfg.attrFn(cfg.rng))
		}

		return nil
	}
}

// GridID names the grid cell at row r, column c ("r,c").
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid returns a Constructor for a rows×cols 4-neighborhood lattice with
// vertex IDs GridID(r, c). cfg.idFn is not used. A 1×1 grid adds nothing,
// since vertices exist only as edge endpoints.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					g.AddEdge(GridID(r, c), GridID(r, c+1), cfg.attrFn(cfg.rng))
				}
				if r+1 < rows {
					g.AddEdge(GridID(r, c), GridID(r+1, c), cfg.attrFn(cfg.rng))
				}
			}
		}

		return nil
	}
}
