package maze

import (
	"strings"
)

// Parse scans text line by line and builds an immutable Maze.
// Only wall cells are stored explicitly; open space is the default for
// any untracked in-bounds cell. The first start/end markers found win.
//
// Returns ErrEmptyGrid if the trimmed text has no rows or columns,
// ErrNonRectangular if any row length differs from the first,
// ErrNoStart / ErrNoEnd if a marker is absent. Missing markers are a
// precondition violation: no route can be defined without them.
func Parse(text string) (*Maze, error) {
	// Split always yields at least one row; emptiness shows up as an
	// empty first row.
	rows := strings.Split(strings.TrimSpace(text), "\n")
	if len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w, h := len(rows[0]), len(rows)

	m := &Maze{
		Width:  w,
		Height: h,
		walls:  make(map[Cell]struct{}),
	}
	var haveStart, haveEnd bool
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x := 0; x < w; x++ {
			switch row[x] {
			case SymbolWall:
				m.walls[Cell{X: x, Y: y}] = struct{}{}
			case SymbolStart:
				if !haveStart {
					m.Start = Cell{X: x, Y: y}
					haveStart = true
				}
			case SymbolEnd:
				if !haveEnd {
					m.End = Cell{X: x, Y: y}
					haveEnd = true
				}
			}
		}
	}

	if !haveStart {
		return nil, ErrNoStart
	}
	if !haveEnd {
		return nil, ErrNoEnd
	}

	return m, nil
}
