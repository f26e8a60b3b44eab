package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/traverse"
)

func line() *core.Graph {
	// A–B–C, with B–C inaccessible
	g := core.NewGraph()
	g.AddEdge("A", "B", core.EdgeAttr{Distance: 1, Accessible: true})
	g.AddEdge("B", "C", core.EdgeAttr{Distance: 1})
	return g
}

func TestWalk_NilGraph(t *testing.T) {
	p, ok := traverse.Walk(nil, "A", "B", traverse.Config{Frontier: traverse.NewQueue(0)})
	assert.False(t, ok)
	assert.Nil(t, p)
}

func TestWalk_GoalOnExpandVsOnPop(t *testing.T) {
	g := line()
	var expandVisits, popVisits []string

	p, ok := traverse.Walk(g, "A", "B", traverse.Config{
		Frontier: traverse.NewQueue(0),
		Goal:     traverse.GoalOnExpand,
		OnVisit:  func(id string, _ int) { expandVisits = append(expandVisits, id) },
	})
	require.True(t, ok)
	assert.Equal(t, core.Path{"A", "B"}, p)
	assert.Equal(t, []string{"A"}, expandVisits, "expansion-time goal never visits B")

	p, ok = traverse.Walk(g, "A", "B", traverse.Config{
		Frontier:     traverse.NewPriorityQueue(0),
		Goal:         traverse.GoalOnPop,
		PruneVisited: true,
		Weight:       core.ByDistance,
		OnVisit:      func(id string, _ int) { popVisits = append(popVisits, id) },
	})
	require.True(t, ok)
	assert.Equal(t, core.Path{"A", "B"}, p)
	assert.Equal(t, []string{"A", "B"}, popVisits, "pop-time goal finalizes B first")
}

func TestWalk_Filter(t *testing.T) {
	g := line()
	_, ok := traverse.Walk(g, "A", "C", traverse.Config{
		Frontier: traverse.NewQueue(0),
		Filter:   traverse.AccessibleOnly,
	})
	assert.False(t, ok)

	p, ok := traverse.Walk(g, "A", "C", traverse.Config{Frontier: traverse.NewQueue(0)})
	require.True(t, ok)
	assert.Equal(t, core.Path{"A", "B", "C"}, p)
}

func TestWalk_OnVisitDepth(t *testing.T) {
	g := line()
	g.AddEdge("C", "D", core.EdgeAttr{Distance: 1})
	depths := map[string]int{}

	_, ok := traverse.Walk(g, "A", "D", traverse.Config{
		Frontier: traverse.NewQueue(0),
		OnVisit:  func(id string, depth int) { depths[id] = depth },
	})
	require.True(t, ok)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2}, depths)
}

func TestWalk_StartEqualsGoal(t *testing.T) {
	g := line()
	for _, goal := range []traverse.GoalCheck{traverse.GoalOnExpand, traverse.GoalOnPop} {
		_, ok := traverse.Walk(g, "B", "B", traverse.Config{
			Frontier:     traverse.NewPriorityQueue(0),
			Goal:         goal,
			PruneVisited: goal == traverse.GoalOnPop,
		})
		assert.False(t, ok, "goal check %d", goal)
	}

	g.AddEdge("B", "B", core.EdgeAttr{Distance: 1})
	p, ok := traverse.Walk(g, "B", "B", traverse.Config{Frontier: traverse.NewQueue(0)})
	require.True(t, ok, "a self-loop satisfies start == goal on expansion")
	assert.Equal(t, core.Path{"B", "B"}, p)
}

func TestWalk_MaxCost(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", core.EdgeAttr{Distance: 4})
	g.AddEdge("B", "C", core.EdgeAttr{Distance: 4})

	cfg := func(limit float64) traverse.Config {
		return traverse.Config{
			Frontier:     traverse.NewPriorityQueue(0),
			Goal:         traverse.GoalOnPop,
			PruneVisited: true,
			Weight:       core.ByDistance,
			MaxCost:      limit,
		}
	}
	_, ok := traverse.Walk(g, "A", "C", cfg(7))
	assert.False(t, ok)

	p, ok := traverse.Walk(g, "A", "C", cfg(8))
	require.True(t, ok)
	assert.Equal(t, core.Path{"A", "B", "C"}, p)
}
