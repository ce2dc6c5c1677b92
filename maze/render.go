package maze

import (
	"strings"
)

// Render produces a row-major character rendering of m with the given
// trail overlaid: the start marker at the start cell, the end marker at
// the end cell, a step marker at any other trail cell, the wall marker
// at wall cells, and open space everywhere else. Rows are joined by
// newlines. Purely derived from its inputs; no search logic.
// A nil trail renders the maze as parsed.
// Complexity: O(W×H) time and memory.
func Render(m *Maze, trail Trail) string {
	var b strings.Builder
	b.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.Width; x++ {
			b.WriteByte(renderCell(m, Cell{X: x, Y: y}, trail))
		}
	}

	return b.String()
}

// renderCell picks the symbol for a single cell. Start and end markers
// take precedence over the trail marker.
func renderCell(m *Maze, c Cell, trail Trail) byte {
	switch {
	case c == m.Start:
		return SymbolStart
	case c == m.End:
		return SymbolEnd
	case trail.Contains(c):
		return SymbolStep
	case m.IsWall(c):
		return SymbolWall
	default:
		return SymbolSpace
	}
}
