// Package dfs defines options for depth-first path search: neighbor
// filtering and a pre-order visit hook.
package dfs

import "github.com/katalvlaran/campusnav/traverse"

// Option configures optional behavior of DFS path search.
// Use with Search(g, start, goal, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for a search.
// Complexity remains O(V+E) path extensions when hooks are O(1).
type DFSOptions struct {
	// FilterNeighbor, if non-nil, is called for each edge curr→neighbor.
	// Return true to traverse it, false to skip it.
	FilterNeighbor traverse.Filter

	// OnVisit, if non-nil, is invoked when a vertex is popped for the first
	// time, with the length of the path that reached it.
	OnVisit traverse.Visitor
}

// DefaultOptions returns a DFSOptions struct with no filter and no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithFilterNeighbor returns an Option that filters edges.
// Passing nil has no effect.
func WithFilterNeighbor(fn traverse.Filter) Option {
	return func(o *DFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithAccessibleOnly returns an Option that keeps only wheelchair-accessible
// edges.
func WithAccessibleOnly() Option {
	return WithFilterNeighbor(traverse.AccessibleOnly)
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn traverse.Visitor) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}
