// Package grid models the rectangular board every maze generator in lvlmaze
// works on: cells, compass directions, the per-cell open-passage mask and the
// visited/finalized bookkeeping used for incremental display.
//
// What:
//
//   - Direction is one of East, North, West, South; Set is a 4-bit mask of them.
//   - Grid stores, for each cell, the Set of sides that are open passages.
//     OpenEdge and CloseEdge always update both cells sharing a side, so the
//     connectivity relation stays symmetric.
//   - Visited marks cells reached by a generator; Finalized marks cells whose
//     state will never change again. A finalized cell is always visited.
//   - Head and WallHead expose the cell and edge a generator touched last.
//
// Geometry:
//
//	North is +y, South is −y, East is +x, West is −x. (0,0) is the south-west
//	corner. Cell indices are row-major: y*Width + x.
//
// Edge indices:
//
//	Every internal edge has a stable integer index in [0, EdgeCount()):
//
//	  [0, (w−1)·h)                east–west edges, i ↦ (i mod (w−1), i div (w−1))
//	                              joining (x,y) and (x+1,y).
//	  [(w−1)·h, (w−1)·h+w·(h−1))  north–south edges, j = i−(w−1)·h ↦ (j mod w, j div w)
//	                              joining (x,y) and (x,y+1).
//
// Complexity:
//
//   - All per-cell operations are O(1). Clone is O(W×H).
//
// Errors:
//
//   - ErrInvalidSize: width or height below 1.
//   - ErrOutOfBounds: a cell or edge index outside the grid.
package grid
