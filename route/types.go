// Package route defines configuration options, result types, and
// sentinel errors for the maze searches of github.com/katalvlaran/mazeroute.
package route

import (
	"errors"
	"math"

	"github.com/katalvlaran/mazeroute/maze"
)

// Move costs. Stepping forward one cell costs 1; turning 90° in place,
// either direction, costs 1000. Both are non-negative by construction,
// which is what guarantees first-pop optimality in both searches.
const (
	CostForward int64 = 1
	CostRotate  int64 = 1000
)

// Sentinel errors returned by the searches.
var (
	// ErrNilMaze indicates a nil *maze.Maze was passed to a search.
	ErrNilMaze = errors.New("route: maze is nil")

	// ErrNoRoute indicates the frontier was exhausted before the end
	// cell was reached. An unreachable end means a malformed maze, so
	// this is terminal: no result value accompanies it.
	ErrNoRoute = errors.New("route: no route from start to end")

	// ErrBadHeading indicates the configured start heading is not one
	// of the four cardinal unit vectors.
	ErrBadHeading = errors.New("route: heading must be a cardinal unit vector")

	// ErrStartOutOfBounds indicates the configured start cell lies
	// outside the maze grid.
	ErrStartOutOfBounds = errors.New("route: start cell outside maze bounds")

	// ErrBadMaxCost indicates MaxCost was set to a negative value,
	// which is not meaningful for a cost cap.
	ErrBadMaxCost = errors.New("route: MaxCost must be non-negative")
)

// Options configures a search invocation.
//
// Start    – the cell the agent begins on (defaults to the maze's start).
// Heading  – the cardinal unit vector the agent initially faces
// (defaults to East, matching the grid convention).
// MaxCost  – cap on accumulated cost; successors that would exceed it
// are not enqueued. Must be ≥ 0. Default is math.MaxInt64 (no cap).
// OnExpand – optional hook invoked once per finalized search-state with
// the state's cell and its finalized accumulated cost.
type Options struct {
	Start    maze.Cell
	Heading  maze.Heading
	MaxCost  int64
	OnExpand func(c maze.Cell, cost int64)
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithStart overrides the start cell (default: the maze's parsed start).
func WithStart(c maze.Cell) Option {
	return func(o *Options) {
		o.Start = c
	}
}

// WithHeading sets the agent's initial heading. Non-cardinal vectors
// are surfaced as ErrBadHeading when the search is invoked.
func WithHeading(h maze.Heading) Option {
	return func(o *Options) {
		o.Heading = h
	}
}

// WithMaxCost caps the accumulated cost a search will explore.
// Successor states whose cost would exceed the cap are never enqueued,
// so an end cell beyond the cap yields ErrNoRoute.
// Must pass a non-negative value; negative values panic with ErrBadMaxCost.
// Default (if not set) is math.MaxInt64 (no cap).
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithOnExpand registers a callback fired when a search-state is
// finalized (first popped from the frontier). Useful for tracing and
// instrumentation without coupling the searches to any logger.
func WithOnExpand(fn func(c maze.Cell, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with the
// defaults for maze m: start at m.Start, facing East, no cost cap,
// no-op expansion hook.
func DefaultOptions(m *maze.Maze) Options {
	return Options{
		Start:    m.Start,
		Heading:  maze.East,
		MaxCost:  math.MaxInt64,
		OnExpand: func(maze.Cell, int64) {},
	}
}

// BestResult is the outcome of BestPath: the optimal cost and the set
// of cells along one discovered optimal path (start and end included).
type BestResult struct {
	Cost  int64
	Trail maze.Trail
}

// OptimalCellsResult is the outcome of AllOptimalCells: the optimal
// cost and the union of cells belonging to any optimal path.
type OptimalCellsResult struct {
	Cost  int64
	Cells maze.Trail
}

// state is the unit of search-space visitation: a (heading, cell) pair.
// Two states are equal iff both heading and cell match. The cost model
// is direction-sensitive, so bare cells cannot key the closed set.
type state struct {
	heading maze.Heading
	cell    maze.Cell
}

// validate applies shared precondition checks and builds the effective
// Options for a search on m. Validation order: nil maze, heading,
// start bounds.
func validate(m *maze.Maze, opts []Option) (Options, error) {
	if m == nil {
		return Options{}, ErrNilMaze
	}
	cfg := DefaultOptions(m)
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.Heading.IsCardinal() {
		return Options{}, ErrBadHeading
	}
	if !m.InBounds(cfg.Start) {
		return Options{}, ErrStartOutOfBounds
	}

	return cfg, nil
}

// manhattan is the heuristic distance between two cells: admissible and
// consistent for BestPath because every move advances at most one cell
// per axis and costs at least 1.
func manhattan(a, b maze.Cell) int64 {
	return int64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
