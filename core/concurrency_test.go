// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe
// and every neighbor appears exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	wg.Add(NConcurrentAdds)

	for i := 0; i < NConcurrentAdds; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddEdge(VertexX, fmt.Sprintf("V%d", id), attr(float64(id)))
		}(i)
	}
	wg.Wait()

	require.Equal(t, NConcurrentAdds, g.Neighbors(VertexX).Len())
	require.Equal(t, NConcurrentAdds, g.EdgeCount())
}

// TestConcurrentReadsAndClone validates concurrent Neighbors and Clone calls
// do not race with a writer.
func TestConcurrentReadsAndClone(t *testing.T) {
	g := triangle()
	var wg sync.WaitGroup
	wg.Add(NReaders + 1)

	go func() {
		defer wg.Done()
		for i := 0; i < NReaders; i++ {
			g.AddEdge(VertexC, fmt.Sprintf("W%d", i), attr(1))
		}
	}()

	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			_ = g.Neighbors(VertexA).Len()
			_ = g.Clone()
		}()
	}
	wg.Wait()

	require.Equal(t, 2, g.Neighbors(VertexA).Len())
}
