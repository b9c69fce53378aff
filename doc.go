// Package lvlmaze is an incremental grid-maze engine: seven maze generators
// that advance one observable step at a time, an A* route finder, and the
// tooling to watch, verify and export the result.
//
// What is lvlmaze?
//
//	A small, deterministic library that brings together:
//		• Grid: cells, passages, visited/finalized marks, edge indexing
//		• Generators: DFS, Prim, Growing Tree, Kruskal, Eller, Sidewinder,
//		  Recursive Division, each an Initialize/Step state machine
//		• Route finding: A* with a Manhattan heuristic
//		• Verification: symmetry, acyclicity and connectivity checks
//		• Rendering: ASCII/ANSI text and image.Image/PNG
//		• Runner: timed animation with pause and speed controls
//
// Why step-wise generators?
//
//   - Every Step leaves the grid in a drawable state, so a viewer can show
//     the algorithm at work instead of only its output.
//   - A fixed seed reproduces the same maze step for step.
//   - Finalized cells never change again, which lets renderers colour them.
//
// Packages:
//
//	grid/        the Grid, Cell, Direction and edge-index helpers
//	generator/   the seven generators behind a Label-driven factory
//	astar/       shortest path between two cells of a carved grid
//	verify/      perfect-maze checks on a finished grid
//	render/      text and image renderers sharing one role precedence
//	runner/      owns a grid and generator, publishes snapshots on a timer
//	config/      MAZE_* environment and .env settings for cmd/mazegen
//	unionfind/   disjoint sets over dense integer ids
//	orderedset/  insertion-ordered set with index access
//
// Quick ASCII example (a 3×2 maze, north at the top):
//
//	+---+---+---+
//	|           |
//	+   +---+---+
//	|           |
//	+---+---+---+
//
//	go run github.com/katalvlaran/lvlmaze/cmd/mazegen -algorithm eller
package lvlmaze
