// Package maze provides the grid model for mazeroute: it parses a walled
// character grid into an immutable Maze with start and end cells, defines
// the cell/heading primitives the searches operate on, and renders solved
// mazes back to plain text.
//
// Grid format:
//
//   - 'S' start marker (exactly one expected; first occurrence wins)
//   - 'E' end marker   (exactly one expected; first occurrence wins)
//   - '#' wall
//   - '.' open space (any other non-wall character is also treated as open)
//
// Width is derived from the first row length, height from the row count.
// Only wall cells are stored; every other in-bounds cell is open space.
//
// Headings:
//
//   - The agent faces one of four cardinal unit vectors (East, South,
//     West, North) with Y growing downward.
//   - Left/Right are exact integer 90° rotations: mutual inverses, and
//     four applications of either restore the original heading.
//   - No floating point anywhere; all components are in {-1, 0, 1}.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyGrid:      the trimmed input has no rows or no columns.
//   - ErrNonRectangular: a row's length differs from the first row's.
//   - ErrNoStart:        no 'S' marker present; a route cannot be defined.
//   - ErrNoEnd:          no 'E' marker present; a route cannot be defined.
//
// All four are precondition violations, reported as hard failures and
// never silently defaulted.
//
// Thread safety:
//
//   - A Maze is immutable once built: Parse constructs it, everything
//     else only reads. Sharing one Maze across concurrent searches is
//     safe without locking.
//
// See also:
//
//   - route.BestPath / route.AllOptimalCells: the searches consuming a Maze.
//   - Render: the presentation adapter consuming a Maze plus a Trail.
//
// Complexity: Parse and Render are O(W×H) time and memory.
package maze
