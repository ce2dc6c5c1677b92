package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazeroute/maze"
	"github.com/katalvlaran/mazeroute/route"
)

// TestAllOptimalCells_StraightCorridor: with a single optimal route the
// cell set is exactly the corridor, N+1 cells for N forward steps.
func TestAllOptimalCells_StraightCorridor(t *testing.T) {
	m := mustParse(t, corridorMaze)

	res, err := route.AllOptimalCells(m)
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.Cost)
	want := maze.Trail{
		m.Start:      {},
		{X: 2, Y: 1}: {},
		m.End:        {},
	}
	assert.Equal(t, want, res.Cells, "exactly the corridor cells, inclusive")
}

// TestAllOptimalCells_EqualCostFork is the adversarial tie case: two
// symmetric routes around the wall block cost the same (three turns,
// six forward steps each), so the union must contain both routes in
// full, 12 cells, even though either route alone has only 7.
func TestAllOptimalCells_EqualCostFork(t *testing.T) {
	m := mustParse(t, forkMaze)

	res, err := route.AllOptimalCells(m)
	require.NoError(t, err)

	assert.Equal(t, 3*route.CostRotate+6*route.CostForward, res.Cost)
	assert.Len(t, res.Cells, 12, "both equal-cost routes contribute")

	// One witness cell from each branch.
	assert.True(t, res.Cells.Contains(maze.Cell{X: 3, Y: 1}), "top branch must be merged in")
	assert.True(t, res.Cells.Contains(maze.Cell{X: 3, Y: 3}), "bottom branch must be merged in")
}

// TestAllOptimalCells_SingleTurn: a lone turn-then-step route has just
// the two cells.
func TestAllOptimalCells_SingleTurn(t *testing.T) {
	m := mustParse(t, `
###
#E#
#S#
###`)

	res, err := route.AllOptimalCells(m)
	require.NoError(t, err)
	assert.Equal(t, route.CostRotate+route.CostForward, res.Cost)
	assert.Len(t, res.Cells, 2)
}

// TestAllOptimalCells_StartIsEnd: the degenerate zero-cost route yields
// the singleton set.
func TestAllOptimalCells_StartIsEnd(t *testing.T) {
	m := mustParse(t, corridorMaze)

	res, err := route.AllOptimalCells(m, route.WithStart(m.End))
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Cost)
	assert.Equal(t, maze.Trail{m.End: {}}, res.Cells)
}

// TestAllOptimalCells_NoRoute: identical terminal failure as BestPath.
func TestAllOptimalCells_NoRoute(t *testing.T) {
	m := mustParse(t, walledOffMaze)

	res, err := route.AllOptimalCells(m)
	assert.ErrorIs(t, err, route.ErrNoRoute)
	assert.Nil(t, res, "no result accompanies ErrNoRoute")
}

// TestAllOptimalCells_MaxCost: pruning below the optimum turns the fork
// maze unreachable.
func TestAllOptimalCells_MaxCost(t *testing.T) {
	m := mustParse(t, forkMaze)

	_, err := route.AllOptimalCells(m, route.WithMaxCost(3005))
	assert.ErrorIs(t, err, route.ErrNoRoute)
}

// TestAllOptimalCells_ReindeerMazes pins the known optimal-cell counts
// of the reference mazes, which both contain many tied optimal paths.
func TestAllOptimalCells_ReindeerMazes(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		cost  int64
		cells int
	}{
		{"Reindeer15", reindeerMaze, 7036, 45},
		{"Reindeer17", reindeerMazeLarge, 11048, 64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustParse(t, tc.text)

			res, err := route.AllOptimalCells(m)
			require.NoError(t, err)
			assert.Equal(t, tc.cost, res.Cost)
			assert.Len(t, res.Cells, tc.cells)
		})
	}
}
