// Package dijkstra defines configuration options for weighted shortest-path
// search on a core.Graph.
//
// Options:
//
//	– WithWeight(w):        edge cost function; default core.ByDistance.
//	– WithMaxDistance(d):   give up on paths whose cost exceeds d (d > 0).
//	– WithFilterNeighbor:   skip edges for which the filter returns false.
//	– WithAccessibleOnly:   keep wheelchair-accessible edges only.
//	– WithOnVisit:          observe each node as it is finalized.
package dijkstra

import (
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/traverse"
)

// Option is a functional option for configuring Search.
type Option func(*Options)

// Options configures the behavior of the Dijkstra search.
//
//	Weight         – edge cost; must be non-negative for minimal results.
//	MaxDistance    – optional cap on path cost; 0 means no cap.
//	FilterNeighbor – edge filter; nil keeps every edge.
//	OnVisit        – called once per finalized node with its hop depth.
type Options struct {
	Weight         core.WeightFunc
	MaxDistance    float64
	FilterNeighbor traverse.Filter
	OnVisit        traverse.Visitor
}

// DefaultOptions returns Options weighing edges by distance, with no cap,
// no filter and no hook.
func DefaultOptions() Options {
	return Options{Weight: core.ByDistance}
}

// WithWeight selects the edge attribute Dijkstra minimizes.
// A nil w keeps the current weight.
func WithWeight(w core.WeightFunc) Option {
	return func(o *Options) {
		if w != nil {
			o.Weight = w
		}
	}
}

// WithMaxDistance caps explored path cost at d. d <= 0 removes the cap.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 {
			d = 0
		}
		o.MaxDistance = d
	}
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor(fn traverse.Filter) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithAccessibleOnly restricts the search to wheelchair-accessible edges.
func WithAccessibleOnly() Option {
	return WithFilterNeighbor(traverse.AccessibleOnly)
}

// WithOnVisit registers a callback invoked as each node is finalized.
func WithOnVisit(fn traverse.Visitor) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
