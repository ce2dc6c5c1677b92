// Package maze defines core types, symbols, and sentinel errors
// for the maze subpackage of github.com/katalvlaran/mazeroute.
package maze

import (
	"errors"
)

// Sentinel errors for maze construction.
var (
	// ErrEmptyGrid indicates input text has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrNoStart indicates the grid contains no start marker.
	ErrNoStart = errors.New("maze: start marker not found")
	// ErrNoEnd indicates the grid contains no end marker.
	ErrNoEnd = errors.New("maze: end marker not found")
)

// Grid symbols. Input uses Start, End, Wall and Space; Step is synthetic,
// produced only by Render for cells lying on a trail.
const (
	SymbolStart byte = 'S'
	SymbolEnd   byte = 'E'
	SymbolWall  byte = '#'
	SymbolSpace byte = '.'
	SymbolStep  byte = '@'
)

// Cell is an integer (column, row) coordinate pair within a grid.
type Cell struct {
	X, Y int
}

// Translate returns the cell adjacent to c in the direction of h.
// The result may be out of bounds or a wall; callers must check.
// Complexity: O(1).
func (c Cell) Translate(h Heading) Cell {
	return Cell{X: c.X + h.DX, Y: c.Y + h.DY}
}

// Heading is the agent's facing direction, one of four cardinal unit
// vectors. Y grows downward (row index), so North is (0,-1).
type Heading struct {
	DX, DY int
}

// The four cardinal headings.
var (
	East  = Heading{DX: 1, DY: 0}
	South = Heading{DX: 0, DY: 1}
	West  = Heading{DX: -1, DY: 0}
	North = Heading{DX: 0, DY: -1}
)

// Left returns h rotated 90° counter-clockwise (screen coordinates).
// Rotation is a bijection on the 4-heading set; Left and Right are
// mutual inverses, and four applications of either are the identity.
func (h Heading) Left() Heading {
	return Heading{DX: h.DY, DY: -h.DX}
}

// Right returns h rotated 90° clockwise (screen coordinates).
func (h Heading) Right() Heading {
	return Heading{DX: -h.DY, DY: h.DX}
}

// IsCardinal reports whether h is one of the four cardinal unit vectors.
func (h Heading) IsCardinal() bool {
	return h == East || h == South || h == West || h == North
}

// Trail is a set of cells: in best-path mode the cells of one discovered
// path, in all-optimal mode the union of cells of every optimal path.
type Trail map[Cell]struct{}

// Contains reports whether c belongs to the trail.
func (t Trail) Contains(c Cell) bool {
	_, ok := t[c]
	return ok
}

// Maze is a parsed grid. It is immutable once built: constructed by
// Parse, read-only thereafter, safe to share between searches.
// Only wall cells are stored; any other in-bounds cell is open.
type Maze struct {
	Start, End    Cell
	Width, Height int
	walls         map[Cell]struct{}
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (m *Maze) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

// IsWall reports whether c is a wall cell. Out-of-bounds cells are not
// walls; use InBounds for boundary checks.
// Complexity: O(1).
func (m *Maze) IsWall(c Cell) bool {
	_, ok := m.walls[c]
	return ok
}
