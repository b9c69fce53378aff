// Package astar finds shortest paths through the open passages of a grid.Grid.
//
// What:
//
//	FindShortestPath runs A* from a start cell to a goal cell, moving only
//	through open passages at unit cost, guided by the Manhattan distance to
//	the goal. It works on any grid, whichever generator built it, and never
//	modifies it.
//
// How:
//
//	Cells are recorded in an insertion-ordered slot table holding the parent
//	slot and the best cost so far. The open set is a binary heap of slot
//	references ordered by estimated total cost, ties broken by the smaller
//	cost so far. Improved costs are pushed again and stale entries are
//	skipped when popped (lazy decrease-key).
//
// Complexity:
//
//   - Time:  O(V log V) for V = W×H cells (each cell has at most 4 passages).
//   - Space: O(V).
//
// Errors:
//
//   - ErrNilGrid:     grid pointer is nil.
//   - ErrOutOfBounds: start or goal lies outside the grid.
//   - ErrNoPath:      start and goal are not connected.
package astar
