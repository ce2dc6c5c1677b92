package route

import (
	"container/heap"

	"github.com/katalvlaran/mazeroute/maze"
)

// AllOptimalCells runs an exhaustive uniform-cost search on m and
// returns the optimal cost together with the union of every cell that
// lies on any minimum-cost path (start and end included).
//
// Instead of enumerating optimal paths (exponential in the worst case),
// the search accumulates trail-sets at (cell, cost) granularity: every
// successor generation merges the predecessor's set into the successor's,
// so equal-cost routes into the same state combine their cells. When the
// end cell is first popped, every optimal path has already contributed:
// all of their intermediate states carry strictly lower cost and were
// expanded earlier.
//
// Returns ErrNilMaze, ErrBadHeading or ErrStartOutOfBounds for invalid
// input, and ErrNoRoute if the frontier empties before reaching m.End.
func AllOptimalCells(m *maze.Maze, opts ...Option) (*OptimalCellsResult, error) {
	cfg, err := validate(m, opts)
	if err != nil {
		return nil, err
	}

	r := &optimalRunner{
		m:       m,
		options: cfg,
		closed:  make(map[state]bool),
		trails:  make(map[trailKey]maze.Trail),
		pq:      make(costPQ, 0),
	}
	r.init()

	return r.run()
}

// trailKey identifies one accumulation bucket: all paths reaching cell
// at exactly this accumulated cost share (and grow) one trail-set.
type trailKey struct {
	cell maze.Cell
	cost int64
}

// optimalRunner holds the mutable state for a single AllOptimalCells
// execution.
type optimalRunner struct {
	m       *maze.Maze              // read-only within the search
	options Options                 // effective configuration
	closed  map[state]bool          // (heading, cell) pairs already finalized
	trails  map[trailKey]maze.Trail // union of cells of every path per (cell, cost)
	pq      costPQ                  // min-heap ordered by accumulated cost
}

// init seeds the frontier with the start state at cost zero and its
// singleton trail-set.
func (r *optimalRunner) init() {
	heap.Init(&r.pq)
	r.trails[trailKey{cell: r.options.Start, cost: 0}] = maze.Trail{r.options.Start: {}}
	heap.Push(&r.pq, &costNode{
		cost:    0,
		heading: r.options.Heading,
		cell:    r.options.Start,
	})
}

// run is the main loop: pop the lowest-cost node, return on the end
// cell, discard stale states, otherwise finalize and expand.
func (r *optimalRunner) run() (*OptimalCellsResult, error) {
	for r.pq.Len() > 0 {
		n := heap.Pop(&r.pq).(*costNode)

		// First pop of the end cell is optimal (non-negative weights),
		// and by then the bucket holds every optimal path's cells.
		if n.cell == r.m.End {
			return &OptimalCellsResult{
				Cost:  n.cost,
				Cells: r.trails[trailKey{cell: n.cell, cost: n.cost}],
			}, nil
		}

		key := state{heading: n.heading, cell: n.cell}
		if r.closed[key] {
			continue
		}
		r.closed[key] = true
		r.options.OnExpand(n.cell, n.cost)

		r.expand(n)
	}

	return nil, ErrNoRoute
}

// expand generates up to three successors of n (one forward step if
// the destination is in bounds and not a wall, plus the two in-place
// rotations), merging trail-sets for each before enqueueing.
func (r *optimalRunner) expand(n *costNode) {
	src := r.trails[trailKey{cell: n.cell, cost: n.cost}]

	if dst := n.cell.Translate(n.heading); r.m.InBounds(dst) && !r.m.IsWall(dst) {
		r.step(&costNode{cost: n.cost + CostForward, heading: n.heading, cell: dst}, src)
	}
	r.step(&costNode{cost: n.cost + CostRotate, heading: n.heading.Left(), cell: n.cell}, src)
	r.step(&costNode{cost: n.cost + CostRotate, heading: n.heading.Right(), cell: n.cell}, src)
}

// step merges the predecessor trail-set plus the successor's own cell
// into the successor's (cell, cost) bucket, then enqueues the successor.
// The merge is a monotone accumulation: buckets only ever grow, so
// multiple equal-cost predecessors combine rather than overwrite.
// Successors beyond the MaxCost cap are neither merged nor enqueued.
func (r *optimalRunner) step(n *costNode, src maze.Trail) {
	if n.cost > r.options.MaxCost {
		return
	}

	key := trailKey{cell: n.cell, cost: n.cost}
	bucket, ok := r.trails[key]
	if !ok {
		bucket = make(maze.Trail, len(src)+1)
		r.trails[key] = bucket
	}
	for c := range src {
		bucket[c] = struct{}{}
	}
	bucket[n.cell] = struct{}{}

	heap.Push(&r.pq, n)
}

// costNode is a frontier entry for the uniform-cost search: the
// accumulated cost plus the (heading, cell) state. Trail-sets live in
// the runner, keyed by (cell, cost), not on the node.
type costNode struct {
	cost    int64
	heading maze.Heading
	cell    maze.Cell
}

// costPQ is a min-heap of *costNode ordered strictly by accumulated
// cost. Ties break arbitrarily; correctness only requires non-decreasing
// pop order. Stale entries are skipped on pop (lazy decrease-key).
type costPQ []*costNode

// Len returns the number of items in the heap.
func (pq costPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq costPQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *costNode.
func (pq *costPQ) Push(x interface{}) { *pq = append(*pq, x.(*costNode)) }

// Pop removes and returns the smallest element from the heap.
func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
