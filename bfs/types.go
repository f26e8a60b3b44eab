// Package bfs provides tunable options for breadth-first path search over a
// core.Graph.
package bfs

import "github.com/katalvlaran/campusnav/traverse"

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize a search.
type BFSOptions struct {
	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor before the goal test.
	FilterNeighbor traverse.Filter

	// OnVisit is called when a vertex is dequeued for the first time,
	// with its depth (edges from the start).
	OnVisit traverse.Visitor
}

// DefaultOptions returns a BFSOptions with no filtering and no hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn traverse.Filter) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithAccessibleOnly restricts the search to wheelchair-accessible edges.
func WithAccessibleOnly() Option {
	return WithFilterNeighbor(traverse.AccessibleOnly)
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn traverse.Visitor) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
