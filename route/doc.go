// Package route implements the two pathfinding engines of mazeroute over
// (heading, cell) search states: a heuristic best-first search returning
// one optimal trail, and an exhaustive uniform-cost search returning the
// union of every cell on any optimal path.
//
// Cost model:
//
//   - Moving forward one cell costs CostForward (1).
//   - Rotating 90° in place, left or right, costs CostRotate (1000).
//   - There is no 180° primitive; turning around is two rotations.
//
// Because turning is not free, the search state is the (heading, cell)
// pair, not the bare cell: the same cell reached facing different ways
// has genuinely different costs-to-go.
//
// BestPath — heuristic best-first search ("A*"-style):
//
//   - Frontier ordered by f = g + h, with h the Manhattan distance to
//     the end cell. Manhattan is admissible and consistent under the
//     unit forward step, so the first pop of the end cell is optimal.
//   - Each frontier node carries the set of cells of its own path
//     (copy-on-extend for forward steps, shared as-is for rotations).
//   - Returns (optimal cost, one optimal trail).
//
// AllOptimalCells — exhaustive uniform-cost search with tie merging:
//
//   - Frontier ordered strictly by accumulated cost.
//   - For every (cell, cost) pair ever enqueued, accumulates the union
//     of cells of every path achieving that pair. Entries only grow;
//     equal-cost routes into the same state merge instead of racing.
//   - On the first pop of the end cell, every optimal-cost path has
//     already contributed (all predecessors have strictly lower cost,
//     and pops are non-decreasing in cost), so the accumulated set is
//     complete. Returns (optimal cost, set of cells on any optimal path).
//
// Both searches check the closed set lazily on pop: duplicates are
// pushed freely and stale entries discarded when popped. This is the
// same lazy decrease-key policy throughout, deliberately kept identical
// in the two searches so they stay independently verifiable.
//
// Error handling (sentinel errors):
//
//   - ErrNilMaze:          nil *maze.Maze.
//   - ErrBadHeading:       start heading is not a cardinal unit vector.
//   - ErrStartOutOfBounds: start cell outside the grid.
//   - ErrNoRoute:          frontier exhausted before the end cell;
//     terminal, never a sentinel value in a result.
//   - ErrBadMaxCost:       (via panic) negative MaxCost option.
//
// Options customization:
//
//   - WithStart(c):     begin somewhere other than the maze's start.
//   - WithHeading(h):   initial facing (default East).
//   - WithMaxCost(x):   do not explore beyond accumulated cost x.
//   - WithOnExpand(fn): observe each finalized state.
//
// Complexity (V = W×H×4 states, E ≤ 3V edges):
//
//   - Time:  O((V + E) log V) heap operations for both searches.
//   - Space: O(V + E) for the closed set and frontier; BestPath trails
//     are bounded by path length per node, AllOptimalCells trail-sets
//     by total cells per distinct (cell, cost) pair reached.
//
// Thread safety:
//
//   - Each invocation owns its frontier, closed set, and trail maps;
//     the Maze is read-only. Running the two searches concurrently on
//     the same Maze is safe.
package route
