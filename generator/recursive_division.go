package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/lvlmaze/grid"
)

// region is a rectangle of cells awaiting subdivision.
type region struct {
	x, y, w, h int
}

// RecursiveDivision starts from a fully open grid and repeatedly cuts a
// region in two with a wall that keeps a single gap.
//
// Two region stacks replace recursion: the near half of every cut goes on
// first, the far half on second, and first is always drained before second.
// Regions narrower than two cells in either dimension cannot be cut and are
// finalized as they are.
type RecursiveDivision struct {
	rng    *rand.Rand
	first  *stack.Stack[region]
	second *stack.Stack[region]
}

// Initialize opens every internal edge and queues the whole grid.
// Complexity: O(W×H).
func (a *RecursiveDivision) Initialize(g *grid.Grid) {
	a.first = stack.New[region]()
	a.second = stack.New[region]()
	if settleSingleCell(g) {
		return
	}
	g.Cells(func(c grid.Cell) {
		g.SetNeighborsAt(c, g.InteriorSides(c))
	})
	a.first.Push(region{x: 0, y: 0, w: g.Width(), h: g.Height()})
	g.SetHead(grid.Cell{})
}

// Step cuts or settles one region.
//
// Steps:
//  1. Pop a region from first, else second, else finish.
//  2. Width or height below 2: finalize every cell of the region.
//  3. Pick the orientation: horizontal when the region is taller than wide,
//     vertical when wider, a coin flip when square.
//  4. Place the wall (offset 0 when the crossed dimension is 2, else random
//     in [0, dim−2)) and a random gap along it; close every crossing edge
//     except the gap and mark the cells on both sides visited.
//  5. Push the near half to first and the far half to second.
//
// Complexity: O(max(W,H)).
func (a *RecursiveDivision) Step(g *grid.Grid) {
	if g.Finished() {
		return
	}
	// 1. Next region.
	var r region
	switch {
	case a.first.Size() > 0:
		r = a.first.Pop()
	case a.second.Size() > 0:
		r = a.second.Pop()
	default:
		g.Finish()
		return
	}
	g.SetHead(grid.Cell{X: r.x, Y: r.y})

	// 2. Too thin to cut.
	if r.w < 2 || r.h < 2 {
		for j := r.y; j < r.y+r.h; j++ {
			for i := r.x; i < r.x+r.w; i++ {
				g.Finalize(grid.Cell{X: i, Y: j})
			}
		}
		return
	}

	// 3. Orientation.
	var horizontal bool
	switch {
	case r.w < r.h:
		horizontal = true
	case r.w > r.h:
		horizontal = false
	default:
		horizontal = chance(a.rng, 1, 2)
	}

	// 4–5. Cut.
	if horizontal {
		a.cutHorizontal(g, r)
	} else {
		a.cutVertical(g, r)
	}
}

// wallOffset places a wall inside a dimension of the given size.
func (a *RecursiveDivision) wallOffset(size int) int {
	if size == 2 {
		return 0
	}
	return a.rng.Intn(size - 2)
}

// cutHorizontal closes the north side of row wy across the region, except at
// the gap, and splits the region into the rows up to wy and the rows above.
func (a *RecursiveDivision) cutHorizontal(g *grid.Grid, r region) {
	wy := r.y + a.wallOffset(r.h)
	gap := grid.Cell{X: r.x + a.rng.Intn(r.w), Y: wy}
	if i, ok := g.WallIndex(gap, grid.North); ok {
		g.SetWallHead(i)
	}
	for i := 0; i < r.w; i++ {
		c := grid.Cell{X: r.x + i, Y: wy}
		g.MarkVisited(c)
		g.MarkVisited(c.Step(grid.North))
		if c != gap {
			g.CloseEdge(c, grid.North)
		}
	}
	a.first.Push(region{x: r.x, y: r.y, w: r.w, h: wy - r.y + 1})
	a.second.Push(region{x: r.x, y: wy + 1, w: r.w, h: r.y + r.h - wy - 1})
}

// cutVertical closes the east side of column wx down the region, except at
// the gap, and splits the region into the columns up to wx and the rest.
func (a *RecursiveDivision) cutVertical(g *grid.Grid, r region) {
	wx := r.x + a.wallOffset(r.w)
	gap := grid.Cell{X: wx, Y: r.y + a.rng.Intn(r.h)}
	if i, ok := g.WallIndex(gap, grid.East); ok {
		g.SetWallHead(i)
	}
	for j := 0; j < r.h; j++ {
		c := grid.Cell{X: wx, Y: r.y + j}
		g.MarkVisited(c)
		g.MarkVisited(c.Step(grid.East))
		if c != gap {
			g.CloseEdge(c, grid.East)
		}
	}
	a.first.Push(region{x: r.x, y: r.y, w: wx - r.x + 1, h: r.h})
	a.second.Push(region{x: wx + 1, y: r.y, w: r.x + r.w - wx - 1, h: r.h})
}
