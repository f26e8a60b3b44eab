package navigator

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dfs"
	"github.com/katalvlaran/campusnav/dijkstra"
)

// Navigator runs searches over a campus graph. It is safe for concurrent
// use as long as the graph is only read.
type Navigator struct {
	graph   *core.Graph
	catalog *campus.Catalog
	logger  *zap.Logger
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger for search events. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// New returns a Navigator over g and cat. A nil cat means an empty catalog.
func New(g *core.Graph, cat *campus.Catalog, opts ...Option) *Navigator {
	if g == nil {
		g = core.NewGraph()
	}
	if cat == nil {
		cat, _ = campus.NewCatalog()
	}
	n := &Navigator{graph: g, catalog: cat, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(n)
	}

	graphEdges.Set(float64(g.EdgeCount()))
	graphNodes.Set(float64(g.VertexCount()))

	return n
}

// Graph returns the underlying graph.
func (n *Navigator) Graph() *core.Graph { return n.graph }

// Catalog returns the location catalog.
func (n *Navigator) Catalog() *campus.Catalog { return n.catalog }

// RouteOption adjusts one Route call.
type RouteOption func(*routeConfig)

type routeConfig struct {
	accessibleOnly bool
	weight         core.WeightFunc
	weightName     string
}

// AccessibleOnly restricts the search to wheelchair-accessible edges.
func AccessibleOnly() RouteOption {
	return func(c *routeConfig) { c.accessibleOnly = true }
}

// ByTime makes Dijkstra minimize walking time instead of distance.
// BFS and DFS ignore it.
func ByTime() RouteOption {
	return func(c *routeConfig) { c.weight, c.weightName = core.ByTime, "time" }
}

// Route searches from start to end with algo.
//
// A missing path is reported as Route.Found == false, not as an error.
// The only error is ErrUnknownAlgorithm.
func (n *Navigator) Route(algo Algorithm, start, end string, opts ...RouteOption) (Route, error) {
	cfg := routeConfig{weight: core.ByDistance, weightName: "distance"}
	for _, opt := range opts {
		opt(&cfg)
	}

	began := time.Now()
	var (
		path  core.Path
		found bool
	)
	switch algo {
	case BFS:
		var bo []bfs.Option
		if cfg.accessibleOnly {
			bo = append(bo, bfs.WithAccessibleOnly())
		}
		path, found = bfs.Search(n.graph, start, end, bo...)
	case DFS:
		var do []dfs.Option
		if cfg.accessibleOnly {
			do = append(do, dfs.WithAccessibleOnly())
		}
		path, found = dfs.Search(n.graph, start, end, do...)
	case Dijkstra:
		jo := []dijkstra.Option{dijkstra.WithWeight(cfg.weight)}
		if cfg.accessibleOnly {
			jo = append(jo, dijkstra.WithAccessibleOnly())
		}
		path, found = dijkstra.Search(n.graph, start, end, jo...)
	default:
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algo))
	}
	elapsed := time.Since(began)

	result := resultNotFound
	if found {
		result = resultFound
	}
	routeSearchTotal.WithLabelValues(algo.String(), result).Inc()
	routeSearchDuration.WithLabelValues(algo.String()).Observe(elapsed.Seconds())

	r := buildRoute(n.graph, algo, start, end, path, found)
	n.logger.Debug("route search",
		zap.String("algorithm", algo.String()),
		zap.String("start", start),
		zap.String("end", end),
		zap.Bool("accessible_only", cfg.accessibleOnly),
		zap.String("weight", cfg.weightName),
		zap.Bool("found", found),
		zap.Int("hops", path.Hops()),
		zap.Duration("elapsed", elapsed),
	)

	return r, nil
}

// RouteSelection runs Route on the selection's start and end.
func (n *Navigator) RouteSelection(algo Algorithm, s *Selection, opts ...RouteOption) (Route, error) {
	if !s.Ready() {
		return Route{}, ErrIncompleteSelection
	}
	return n.Route(algo, s.Start(), s.End(), opts...)
}
