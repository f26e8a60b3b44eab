// Package traverse holds the search skeleton shared by the bfs, dfs and
// dijkstra packages.
//
// All three searches pop an Item from a Frontier, skip it if its node was
// already visited, mark it visited and expand its neighbors. They differ in
// two places only:
//
//   - Container discipline: Queue (FIFO) for BFS, Stack (LIFO) for DFS and
//     PriorityQueue (cost, node, path) for Dijkstra.
//   - Goal timing: BFS and DFS stop as soon as an expanded neighbor equals
//     the goal (GoalOnExpand). Dijkstra stops only when the goal itself is
//     popped (GoalOnPop), which is what makes its first hit minimal.
//
// Walk takes both as explicit Config fields, so the difference stays
// visible at each call site.
//
// A start equal to the goal is satisfied only by a self-loop seen while
// expanding start under GoalOnExpand. A round trip back to start through
// other nodes is not a path, and GoalOnPop never accepts the seed entry.
//
// Each Walk owns its visited set, frontier and path accumulator, so any
// number of walks may run in parallel over one unchanging core.Graph.
package traverse
