// File: methods.go
// Role: Edge insertion and read queries: AddEdge/HasEdge/Edge/Neighbors/
//       HasVertex/Vertices/VertexCount/EdgeCount/Clone.
// Determinism:
//   - Vertices() is sorted lexicographically.
//   - Neighbors() follows first-insertion order of each neighbor.
// Concurrency:
//   - AddEdge under the write lock; queries under the read lock.

package core

import "sort"

// AddEdge inserts or overwrites the undirected edge a–b.
//
// Both directions receive the same attributes. No validation is performed:
// negative values, empty identifiers and repeated insertions are accepted,
// and the last write for a pair wins. A self-loop (a == b) is stored once.
//
// Steps:
//  1. Lock.
//  2. Link a→b; count a new pair if the link did not exist.
//  3. Link b→a unless a == b.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, attr EdgeAttr) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.link(a, b, attr) {
		g.edgeCount++
	}
	if a != b {
		g.link(b, a, attr)
	}
}

// link stores from→to and reports whether the entry is new.
// Caller holds the write lock.
func (g *Graph) link(from, to string, attr EdgeAttr) bool {
	adj, ok := g.nodes[from]
	if !ok {
		adj = &adjacency{attrs: make(map[string]EdgeAttr)}
		g.nodes[from] = adj
	}
	_, existed := adj.attrs[to]
	if !existed {
		adj.order = append(adj.order, to)
	}
	adj.attrs[to] = attr

	return !existed
}

// HasEdge reports whether a direct edge a–b exists.
// An unknown a is treated as a node without edges.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.Edge(a, b)
	return ok
}

// Edge returns the attributes of the edge a–b, if present.
// Complexity: O(1).
func (g *Graph) Edge(a, b string) (EdgeAttr, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.nodes[a]
	if !ok {
		return EdgeAttr{}, false
	}
	attr, ok := adj.attrs[b]

	return attr, ok
}

// Neighbors returns a read-only snapshot of the neighbors of id.
//
// Unknown and isolated nodes yield the empty Neighborhood. The snapshot does
// not change if the graph is mutated afterwards.
//
// Complexity: O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) Neighborhood {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.nodes[id]
	if !ok || len(adj.order) == 0 {
		return Neighborhood{}
	}

	ids := make([]string, len(adj.order))
	attrs := make([]EdgeAttr, len(adj.order))
	for i, nb := range adj.order {
		ids[i] = nb
		attrs[i] = adj.attrs[nb]
	}

	return Neighborhood{ids: ids, attrs: attrs}
}

// HasVertex reports whether id has at least one edge.
// Nodes only come into existence through AddEdge.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]
	return ok
}

// Vertices returns all node identifiers sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	g.mu.RUnlock()

	sort.Strings(out)
	return out
}

// VertexCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges. A self-loop counts once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns a deep copy of the graph, neighbor order included.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		nodes:     make(map[string]*adjacency, len(g.nodes)),
		edgeCount: g.edgeCount,
	}
	for id, adj := range g.nodes {
		cp := &adjacency{
			order: append([]string(nil), adj.order...),
			attrs: make(map[string]EdgeAttr, len(adj.attrs)),
		}
		for nb, attr := range adj.attrs {
			cp.attrs[nb] = attr
		}
		clone.nodes[id] = cp
	}

	return clone
}
