// File: view.go
// Role: Neighborhood, the read-only neighbor view returned by Graph.Neighbors.
// Determinism:
//   - IDs() and Range() follow first-insertion order.

package core

// Neighborhood is an immutable snapshot of one node's neighbors.
//
// The zero value is the empty view: Len() == 0, Get reports false and
// Range does nothing. Callers never need a nil check.
type Neighborhood struct {
	ids   []string
	attrs []EdgeAttr
}

// Len returns the number of neighbors.
func (n Neighborhood) Len() int { return len(n.ids) }

// Empty reports whether the view has no neighbors.
func (n Neighborhood) Empty() bool { return len(n.ids) == 0 }

// IDs returns the neighbor identifiers in insertion order.
// The returned slice is a copy.
func (n Neighborhood) IDs() []string {
	return append([]string(nil), n.ids...)
}

// Get returns the attributes of the edge to id.
// Complexity: O(d); neighborhoods of a campus graph are small.
func (n Neighborhood) Get(id string) (EdgeAttr, bool) {
	for i, nb := range n.ids {
		if nb == id {
			return n.attrs[i], true
		}
	}

	return EdgeAttr{}, false
}

// Range calls fn for each neighbor in insertion order until fn returns false.
func (n Neighborhood) Range(fn func(id string, attr EdgeAttr) bool) {
	for i, nb := range n.ids {
		if !fn(nb, n.attrs[i]) {
			return
		}
	}
}

// Map copies the view into a fresh map. Mutating the map does not affect
// the graph.
func (n Neighborhood) Map() map[string]EdgeAttr {
	out := make(map[string]EdgeAttr, len(n.ids))
	for i, nb := range n.ids {
		out[nb] = n.attrs[i]
	}

	return out
}
