package traverse

import "github.com/katalvlaran/campusnav/core"

// GoalCheck selects when a search recognizes the goal.
type GoalCheck int

const (
	// GoalOnExpand returns as soon as a neighbor being expanded equals the
	// goal, before it is pushed. Used by BFS and DFS.
	GoalOnExpand GoalCheck = iota

	// GoalOnPop returns when the goal is popped from the frontier. Used by
	// Dijkstra; with non-negative weights the first pop is the cheapest.
	GoalOnPop
)

// Filter reports whether the edge from→to may be traversed.
type Filter func(from, to string, attr core.EdgeAttr) bool

// Visitor observes a node when it is marked visited. depth is the number
// of edges on the path that reached it.
type Visitor func(id string, depth int)

// AccessibleOnly is a Filter that keeps wheelchair-accessible edges.
func AccessibleOnly(_, _ string, attr core.EdgeAttr) bool { return attr.Accessible }

// Config parameterizes Walk.
type Config struct {
	// Frontier is the container discipline. Required.
	Frontier Frontier

	// Goal selects expansion-time or pop-time goal recognition.
	Goal GoalCheck

	// PruneVisited skips pushing neighbors that are already visited.
	// Dijkstra sets it; BFS and DFS push every neighbor and skip on pop.
	PruneVisited bool

	// Weight accumulates Item.Cost along each path. Nil means zero cost.
	Weight core.WeightFunc

	// MaxCost, when positive, drops any extension whose cost exceeds it.
	MaxCost float64

	// Filter, if non-nil, skips edges it rejects.
	Filter Filter

	// OnVisit, if non-nil, is called for each node as it is marked visited.
	OnVisit Visitor
}

// Walk searches g from start to goal and returns the path found, or false
// (NotFound) when the frontier empties first.
//
// Unknown start, unknown goal and unreachable goal all yield NotFound. A nil
// graph behaves as an empty graph.
//
// Steps:
//  1. Push (start, [start], 0).
//  2. Pop; skip if visited; mark visited; call OnVisit.
//  3. GoalOnPop: return the path if the popped node is the goal
//     (the seed entry is never accepted).
//  4. For each neighbor in insertion order: apply Filter, PruneVisited;
//     GoalOnExpand: return path+neighbor if it is the goal; otherwise push
//     unless MaxCost is exceeded.
//
// Complexity: O((V + E) · L) for path copies, L = longest path, times
// O(log E) per heap operation under PriorityQueue.
func Walk(g *core.Graph, start, goal string, cfg Config) (core.Path, bool) {
	if g == nil {
		return nil, false
	}

	visited := make(map[string]bool)
	f := cfg.Frontier
	f.Push(Item{Node: start, Path: core.Path{start}})

	for f.Len() > 0 {
		it := f.Pop()
		if visited[it.Node] {
			continue
		}
		visited[it.Node] = true
		if cfg.OnVisit != nil {
			cfg.OnVisit(it.Node, it.Path.Hops())
		}

		if cfg.Goal == GoalOnPop && it.Node == goal && len(it.Path) > 1 {
			return it.Path, true
		}

		var (
			found core.Path
			done  bool
		)
		g.Neighbors(it.Node).Range(func(nb string, attr core.EdgeAttr) bool {
			if cfg.Filter != nil && !cfg.Filter(it.Node, nb, attr) {
				return true
			}
			if cfg.PruneVisited && visited[nb] {
				return true
			}

			next := it.Path.Extend(nb)
			if cfg.Goal == GoalOnExpand && nb == goal && (nb != start || it.Node == start) {
				found, done = next, true
				return false
			}

			cost := it.Cost
			if cfg.Weight != nil {
				cost += cfg.Weight(attr)
			}
			if cfg.MaxCost > 0 && cost > cfg.MaxCost {
				return true
			}
			f.Push(Item{Node: nb, Path: next, Cost: cost})

			return true
		})
		if done {
			return found, true
		}
	}

	return nil, false
}
