// SPDX-License-Identifier: MIT

// Package builder generates deterministic graph fixtures for tests,
// benchmarks and examples, plus an all-pairs distance oracle used to check
// search results.
//
// Constructors:
//
//   - Path(n)              0–1–…–(n-1)
//   - Cycle(n)             Path(n) closed back to 0
//   - Grid(rows, cols)     4-neighborhood lattice, IDs "r,c"
//   - RandomSparse(n, p)   each unordered pair joined with probability p
//
// Options:
//
//   - WithSeed(seed)       RNG for RandomSparse and random attributes
//   - WithIDFn(fn)         index → vertex ID (default decimal)
//   - WithAttrFn(fn)       rng → EdgeAttr (default Distance=Time=1, accessible)
//
// Oracle:
//
//	Distances(g, w) runs Floyd–Warshall over g and returns a Table whose
//	Get(a, b) is the minimum total weight, or +Inf when unreachable.
//	Hops(g) is Distances with unit weights.
//
// Determinism:
//
//	Same constructor order, options and seed ⇒ identical graphs, including
//	neighbor insertion order.
package builder
