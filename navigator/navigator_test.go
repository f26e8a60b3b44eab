package navigator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/navigator"
)

func fixture(t *testing.T) *navigator.Navigator {
	t.Helper()
	g := core.NewGraph()
	g.AddEdge("A", "B", core.EdgeAttr{Distance: 10, Time: 2, Accessible: true})
	g.AddEdge("B", "C", core.EdgeAttr{Distance: 10, Time: 2, Accessible: true})
	g.AddEdge("A", "C", core.EdgeAttr{Distance: 30, Time: 3})
	g.AddEdge("D", "E", core.EdgeAttr{Distance: 1, Time: 1})

	cat, err := campus.NewCatalog(
		campus.Location{Name: "A"}, campus.Location{Name: "B"}, campus.Location{Name: "C"},
		campus.Location{Name: "D"}, campus.Location{Name: "E"},
	)
	require.NoError(t, err)
	return navigator.New(g, cat)
}

func TestParseAlgorithm(t *testing.T) {
	for in, want := range map[string]navigator.Algorithm{
		"bfs": navigator.BFS, "DFS": navigator.DFS, " Dijkstra ": navigator.Dijkstra,
	} {
		got, err := navigator.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := navigator.ParseAlgorithm("astar")
	assert.ErrorIs(t, err, navigator.ErrUnknownAlgorithm)

	assert.Equal(t, []navigator.Algorithm{navigator.BFS, navigator.DFS, navigator.Dijkstra}, navigator.Algorithms())
	assert.Equal(t, "Dijkstra", navigator.Dijkstra.Label())
}

func TestRoute_Triangle(t *testing.T) {
	n := fixture(t)

	r, err := n.Route(navigator.BFS, "A", "C")
	require.NoError(t, err)
	require.True(t, r.Found)
	assert.Equal(t, core.Path{"A", "C"}, r.Path)
	assert.Equal(t, 30.0, r.TotalDistance)
	assert.Equal(t, 3.0, r.TotalTime)

	r, err = n.Route(navigator.Dijkstra, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "B", "C"}, r.Path)
	assert.Equal(t, 20.0, r.TotalDistance)
	assert.Equal(t, 4.0, r.TotalTime)
	require.Len(t, r.Legs, 2)
	assert.Equal(t, navigator.Leg{From: "A", To: "B", Distance: 10, Time: 2, Accessible: true}, r.Legs[0])

	r, err = n.Route(navigator.Dijkstra, "A", "C", navigator.ByTime())
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "C"}, r.Path)

	r, err = n.Route(navigator.Dijkstra, "A", "C", navigator.ByTime(), navigator.AccessibleOnly())
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "B", "C"}, r.Path)

	r, err = n.Route(navigator.DFS, "A", "C")
	require.NoError(t, err)
	assert.True(t, r.Path.ValidIn(n.Graph()))
}

func TestRoute_NotFound(t *testing.T) {
	n := fixture(t)
	for _, algo := range navigator.Algorithms() {
		r, err := n.Route(algo, "A", "D")
		require.NoError(t, err)
		assert.False(t, r.Found)
		assert.Nil(t, r.Path)
		assert.Equal(t, navigator.NoPathMessage, r.Message())
		assert.Equal(t, "No path found.", r.Details())
	}

	_, err := n.Route(navigator.Algorithm("astar"), "A", "C")
	assert.ErrorIs(t, err, navigator.ErrUnknownAlgorithm)
}

func TestRoute_Details(t *testing.T) {
	r, err := fixture(t).Route(navigator.Dijkstra, "A", "C")
	require.NoError(t, err)

	want := "A -> B:\n  Distance: 10.0 m\n  Time: 2.0 min\n  Accessible: Yes\n" +
		"\n" +
		"B -> C:\n  Distance: 10.0 m\n  Time: 2.0 min\n  Accessible: Yes\n" +
		"\nTotal Distance: 20.0 m\nTotal Time: 4.0 min"
	assert.Equal(t, want, r.Details())
	assert.Equal(t, "A -> B -> C", r.Message())
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "10.0", navigator.FormatNumber(10))
	assert.Equal(t, "1250.5", navigator.FormatNumber(1250.5))
	assert.Equal(t, "0.0", navigator.FormatNumber(0))
}

func TestSelection_Cycle(t *testing.T) {
	n := fixture(t)
	s := navigator.NewSelection(n.Catalog())

	require.NoError(t, s.Pick("A"))
	assert.Equal(t, "A", s.Start())
	assert.False(t, s.Ready())

	_, err := n.RouteSelection(navigator.BFS, s)
	assert.ErrorIs(t, err, navigator.ErrIncompleteSelection)

	require.NoError(t, s.Pick("C"))
	assert.True(t, s.Ready())
	r, err := n.RouteSelection(navigator.BFS, s)
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "C"}, r.Path)

	// third pick starts over
	require.NoError(t, s.Pick("B"))
	assert.Equal(t, "B", s.Start())
	assert.Empty(t, s.End())

	assert.ErrorIs(t, s.Pick("Nowhere"), navigator.ErrUnknownLocation)
	assert.Equal(t, "B", s.Start(), "rejected pick leaves state unchanged")

	s.Reset()
	assert.Empty(t, s.Start())
	assert.Empty(t, s.End())
}
