// Package generator implements incremental maze generators over a grid.Grid.
//
// What:
//
//	Every generator is an Algorithm: Initialize prepares its working state
//	on a fresh grid, then each Step performs one bounded unit of work and
//	leaves the grid consistent, so a caller can render or inspect it between
//	steps. When generation completes the generator calls grid.Finish and
//	further steps do nothing.
//
//	  DepthFirstSearch   randomized backtracker over an explicit stack.
//	  Prim               random frontier picks from an insertion-ordered set.
//	  GrowingTree        Prim with short depth-first runs between picks.
//	  Kruskal            shuffled edges merged through a union-find.
//	  Eller              row-by-row set merging with vertical carry-over.
//	  Sidewinder         horizontal runs closed by one southward opening.
//	  RecursiveDivision  starts fully open and cuts walls with one gap each.
//
//	All seven produce a perfect maze: a spanning tree of the grid.
//
// Randomness:
//
//	Each generator owns a *math/rand.Rand. WithSeed pins the seed so that the
//	same seed and size reproduce the same maze step for step; WithRand
//	injects a caller-owned source. With neither, a time-derived seed is used.
//
// Complexity:
//
//   - Step is O(1) amortized for DepthFirstSearch and Kruskal.
//   - Prim and GrowingTree are O(F) worst case per step (F = frontier size)
//     because frontier removal keeps insertion order.
//   - Eller and Sidewinder are O(W) on the step that closes a row, O(1) otherwise.
//   - RecursiveDivision is O(max(W,H)) per step.
//
// Errors:
//
//   - ErrUnknownLabel: New or ParseLabel got a name it does not know.
package generator
