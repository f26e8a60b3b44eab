package core

import "strings"

// PathSeparator joins node identifiers in Path.String.
const PathSeparator = " -> "

// Path is an ordered walk from a start node to a goal node in which each
// consecutive pair is joined by an edge.
//
// A Path returned by a search is freshly allocated; callers may keep or
// modify it.
type Path []string

// Start returns the first node, or "" for an empty path.
func (p Path) Start() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Goal returns the last node, or "" for an empty path.
func (p Path) Goal() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Hops returns the number of edges on the path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Extend returns a new path with id appended. p is not modified.
func (p Path) Extend(id string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)

	return append(out, id)
}

// String renders the path as "A -> B -> C".
func (p Path) String() string {
	return strings.Join(p, PathSeparator)
}

// ValidIn reports whether every consecutive pair of p is an edge of g.
// A path with fewer than two nodes is never valid.
func (p Path) ValidIn(g *Graph) bool {
	if len(p) < 2 {
		return false
	}
	for i := 0; i+1 < len(p); i++ {
		if !g.HasEdge(p[i], p[i+1]) {
			return false
		}
	}

	return true
}

// Cost sums w over the edges of p in g. ok is false if any pair is not an edge.
func (p Path) Cost(g *Graph, w WeightFunc) (total float64, ok bool) {
	for i := 0; i+1 < len(p); i++ {
		attr, found := g.Edge(p[i], p[i+1])
		if !found {
			return 0, false
		}
		total += w(attr)
	}

	return total, true
}

// Compare orders paths element-wise by node identifier; on a shared prefix
// the shorter path sorts first. It returns -1, 0 or +1.
func (p Path) Compare(q Path) int {
	for i := 0; i < len(p) && i < len(q); i++ {
		if c := strings.Compare(p[i], q[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p) < len(q):
		return -1
	case len(p) > len(q):
		return 1
	default:
		return 0
	}
}
