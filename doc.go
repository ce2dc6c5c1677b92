// Package mazeroute finds minimum-cost routes for a directional agent
// inside a walled 2D grid, where stepping forward costs 1 and turning
// in place (90°, either way) costs 1000.
//
// 🚀 What is mazeroute?
//
//	A small, focused library that brings together:
//		• maze/  — grid parsing, cells, headings & rotation operators,
//		           plus a plain-text presentation adapter
//		• route/ — two independent searches over (heading, cell) states:
//		           – BestPath: heuristic best-first search returning the
//		             optimal cost and one optimal trail
//		           – AllOptimalCells: exhaustive uniform-cost search
//		             returning the optimal cost and the union of every
//		             cell lying on any optimal path
//
// ✨ Why mazeroute?
//
//   - Direction-aware – search states are (heading, cell) pairs, so the
//     asymmetric turn cost is modeled exactly, never approximated
//   - Tie-complete – AllOptimalCells merges trail-sets at state
//     granularity instead of enumerating paths (which is exponential)
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	#####
//	#S.E#
//	#####
//
//	costs 2 (two forward steps) and has exactly 3 optimal cells.
//
// Dive into the package docs of maze and route for the full API.
package mazeroute
