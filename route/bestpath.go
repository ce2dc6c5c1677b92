package route

import (
	"container/heap"

	"github.com/katalvlaran/mazeroute/maze"
)

// BestPath runs a heuristic best-first search on m and returns the
// optimal cost together with one optimal trail (the cells of a single
// discovered minimum-cost path, start and end included).
//
// The frontier is ordered by f = g + h where g is the accumulated cost
// and h the Manhattan distance to m.End. Priority ties break arbitrarily:
// only the cost is guaranteed optimal, not the identity of the trail.
//
// Returns ErrNilMaze, ErrBadHeading or ErrStartOutOfBounds for invalid
// input, and ErrNoRoute if the frontier empties before reaching m.End.
func BestPath(m *maze.Maze, opts ...Option) (*BestResult, error) {
	cfg, err := validate(m, opts)
	if err != nil {
		return nil, err
	}

	r := &bestRunner{
		m:       m,
		options: cfg,
		closed:  make(map[state]bool),
		pq:      make(bestPQ, 0),
	}
	r.init()

	return r.run()
}

// bestRunner holds the mutable state for a single BestPath execution.
type bestRunner struct {
	m       *maze.Maze     // read-only within the search
	options Options        // effective configuration
	closed  map[state]bool // (heading, cell) pairs already finalized
	pq      bestPQ         // min-heap ordered by f = g + h
}

// init seeds the frontier with the start state: zero accumulated cost
// and a trail containing only the start cell.
func (r *bestRunner) init() {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &bestNode{
		heading: r.options.Heading,
		cell:    r.options.Start,
		g:       0,
		h:       manhattan(r.options.Start, r.m.End),
		trail:   maze.Trail{r.options.Start: {}},
	})
}

// run is the main loop: pop the lowest-f node, return on the end cell,
// discard stale states, otherwise finalize and expand.
func (r *bestRunner) run() (*BestResult, error) {
	for r.pq.Len() > 0 {
		n := heap.Pop(&r.pq).(*bestNode)

		// First pop of the end cell is optimal: Manhattan is admissible
		// and consistent under the unit forward step.
		if n.cell == r.m.End {
			return &BestResult{Cost: n.g, Trail: n.trail}, nil
		}

		// Closed set is checked lazily on pop; stale duplicates from
		// earlier pushes are simply dropped here.
		key := state{heading: n.heading, cell: n.cell}
		if r.closed[key] {
			continue
		}
		r.closed[key] = true
		r.options.OnExpand(n.cell, n.g)

		r.expand(n)
	}

	return nil, ErrNoRoute
}

// expand pushes up to three successors of n: one forward step if the
// destination is in bounds and not a wall, and the two in-place
// rotations. Successors beyond the MaxCost cap are not enqueued.
// Closure is not checked at push time; duplicates are resolved on pop.
func (r *bestRunner) expand(n *bestNode) {
	if dst := n.cell.Translate(n.heading); r.m.InBounds(dst) && !r.m.IsWall(dst) {
		if g := n.g + CostForward; g <= r.options.MaxCost {
			heap.Push(&r.pq, &bestNode{
				heading: n.heading,
				cell:    dst,
				g:       g,
				h:       manhattan(dst, r.m.End),
				trail:   extendTrail(n.trail, dst),
			})
		}
	}

	if g := n.g + CostRotate; g <= r.options.MaxCost {
		// Rotations stay in place: same cell, same h, trail unchanged.
		heap.Push(&r.pq, &bestNode{
			heading: n.heading.Left(),
			cell:    n.cell,
			g:       g,
			h:       n.h,
			trail:   n.trail,
		})
		heap.Push(&r.pq, &bestNode{
			heading: n.heading.Right(),
			cell:    n.cell,
			g:       g,
			h:       n.h,
			trail:   n.trail,
		})
	}
}

// extendTrail copies t and adds c. Trails are never mutated in place
// once attached to a node, so rotation successors can share the parent
// trail while forward successors extend a private copy.
func extendTrail(t maze.Trail, c maze.Cell) maze.Trail {
	next := make(maze.Trail, len(t)+1)
	for cell := range t {
		next[cell] = struct{}{}
	}
	next[c] = struct{}{}

	return next
}

// bestNode is a frontier entry: a search-state plus its accumulated
// cost g, heuristic estimate h, and the cells of the path that
// produced it. Cost comparisons never compare trails.
type bestNode struct {
	heading maze.Heading
	cell    maze.Cell
	g, h    int64
	trail   maze.Trail
}

// f is the best-first priority: accumulated cost plus estimate to go.
func (n *bestNode) f() int64 { return n.g + n.h }

// bestPQ is a min-heap of *bestNode ordered by f ascending. Stale
// entries for already-closed states remain in the heap and are skipped
// when popped (lazy decrease-key).
type bestPQ []*bestNode

// Len returns the number of items in the heap.
func (pq bestPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller f → higher priority.
func (pq bestPQ) Less(i, j int) bool { return pq[i].f() < pq[j].f() }

// Swap swaps two elements in the heap.
func (pq bestPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *bestNode.
func (pq *bestPQ) Push(x interface{}) { *pq = append(*pq, x.(*bestNode)) }

// Pop removes and returns the smallest element from the heap.
func (pq *bestPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
