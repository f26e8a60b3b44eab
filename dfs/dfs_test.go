package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/builder"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dfs"
)

// diamond builds S–A, S–B, A–G, B–G with A–G inaccessible.
func diamond() *core.Graph {
	g := core.NewGraph()
	g.AddEdge("S", "A", core.EdgeAttr{Distance: 1, Accessible: true})
	g.AddEdge("S", "B", core.EdgeAttr{Distance: 1, Accessible: true})
	g.AddEdge("A", "G", core.EdgeAttr{Distance: 1})
	g.AddEdge("B", "G", core.EdgeAttr{Distance: 1, Accessible: true})
	return g
}

func TestSearch_LastInsertedExploredFirst(t *testing.T) {
	// S pushes A then B; B is popped first and sees G.
	p, ok := dfs.Search(diamond(), "S", "G")
	require.True(t, ok)
	assert.Equal(t, core.Path{"S", "B", "G"}, p)
}

func TestSearch_DirectNeighbor(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", core.EdgeAttr{Distance: 10})
	g.AddEdge("B", "C", core.EdgeAttr{Distance: 10})
	g.AddEdge("A", "C", core.EdgeAttr{Distance: 30})

	p, ok := dfs.Search(g, "A", "C")
	require.True(t, ok)
	assert.Equal(t, core.Path{"A", "C"}, p)
}

func TestSearch_DeepChain(t *testing.T) {
	const n = 5000
	g := builder.MustBuild(nil, builder.Path(n))
	p, ok := dfs.Search(g, "0", "4999")
	require.True(t, ok)
	assert.Equal(t, n, len(p))
	assert.True(t, p.ValidIn(g))
}

func TestSearch_NotFound(t *testing.T) {
	g := diamond()
	g.AddEdge("X", "Y", core.EdgeAttr{})

	for _, tc := range []struct{ start, goal string }{
		{"S", "X"}, {"S", "missing"}, {"missing", "S"}, {"S", "S"},
	} {
		p, ok := dfs.Search(g, tc.start, tc.goal)
		assert.False(t, ok, "%s→%s", tc.start, tc.goal)
		assert.Nil(t, p)
	}
	_, ok := dfs.Search(nil, "S", "G")
	assert.False(t, ok)
}

func TestSearch_Options(t *testing.T) {
	var visited []string
	p, ok := dfs.Search(diamond(), "S", "G",
		dfs.WithFilterNeighbor(func(_, to string, _ core.EdgeAttr) bool { return to != "B" }),
		dfs.WithOnVisit(func(id string, _ int) { visited = append(visited, id) }),
	)
	require.True(t, ok)
	assert.Equal(t, core.Path{"S", "A", "G"}, p)
	assert.Equal(t, []string{"S", "A"}, visited)

	p, ok = dfs.Search(diamond(), "G", "S", dfs.WithAccessibleOnly())
	require.True(t, ok)
	assert.Equal(t, core.Path{"G", "B", "S"}, p)
}

// TestSearch_ValidOrNotFound checks soundness and completeness on random graphs.
func TestSearch_ValidOrNotFound(t *testing.T) {
	for seed := int64(10); seed < 15; seed++ {
		g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(20, 0.1))
		reach := builder.Hops(g)
		ids := g.Vertices()
		for _, a := range ids {
			for _, b := range ids {
				if a == b {
					continue
				}
				p, ok := dfs.Search(g, a, b)
				require.Equal(t, reach.Reachable(a, b), ok, "seed %d %s→%s", seed, a, b)
				if ok {
					assert.Equal(t, a, p.Start())
					assert.Equal(t, b, p.Goal())
					assert.True(t, p.ValidIn(g), "path %v", p)
				}
			}
		}
	}
}

func TestSearch_Deterministic(t *testing.T) {
	g := builder.MustBuild(nil, builder.Grid(5, 5))
	first, ok := dfs.Search(g, "0,0", "4,4")
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		p, _ := dfs.Search(g.Clone(), "0,0", "4,4")
		assert.Equal(t, first, p)
	}
}
