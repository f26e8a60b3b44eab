package navigator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultFound    = "found"
	resultNotFound = "not_found"
)

var (
	routeSearchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campusnav_route_searches_total",
		Help: "Route searches by algorithm and result",
	}, []string{"algorithm", "result"})

	routeSearchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "campusnav_route_search_duration_seconds",
		Help:    "Route search duration",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
	}, []string{"algorithm"})

	graphEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "campusnav_graph_edges",
		Help: "Undirected edges in the loaded campus graph",
	})

	graphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "campusnav_graph_nodes",
		Help: "Nodes in the loaded campus graph",
	})
)
