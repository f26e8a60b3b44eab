// Package dfs implements depth-first path search on a core.Graph.
//
// What:
//
//   - Search(g, start, goal, opts...) returns some path from start to goal,
//     or false when none exists. The path is not necessarily shortest.
//   - The search is iterative: an explicit stack of (node, path) entries,
//     so deep graphs cannot overflow the goroutine stack.
//   - The goal is recognized while expanding neighbors, as in bfs.
//
// Options:
//
//   - WithFilterNeighbor(fn)  skip edges for which fn returns false
//   - WithAccessibleOnly()    keep wheelchair-accessible edges only
//   - WithOnVisit(fn)         pre-order hook with path depth
//
// Determinism:
//
//	Neighbors are pushed in insertion order and popped in reverse, so the
//	last-inserted neighbor of a node is explored first. Equal graphs built
//	in equal order give equal results.
//
// Complexity:
//
//   - Time:   O(V + E) pushes, each copying a path of length ≤ V.
//   - Memory: O(E · V) worst case for stacked paths.
package dfs
