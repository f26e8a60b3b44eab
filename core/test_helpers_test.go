// Package core_test contains fixtures shared by the core tests.
package core_test

import "github.com/katalvlaran/campusnav/core"

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// attr builds an EdgeAttr with only a distance, which is all most tests need.
func attr(distance float64) core.EdgeAttr {
	return core.EdgeAttr{Distance: distance}
}

// triangle returns the A–B 10, B–C 10, A–C 30 graph.
func triangle() *core.Graph {
	g := core.NewGraph()
	g.AddEdge(VertexA, VertexB, attr(10))
	g.AddEdge(VertexB, VertexC, attr(10))
	g.AddEdge(VertexA, VertexC, attr(30))

	return g
}
