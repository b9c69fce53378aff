package generator

import (
	"math/rand"

	"github.com/katalvlaran/lvlmaze/grid"
)

// Sidewinder scans rows from y=0 upward, west to east.
//
// Row 0 is one long eastward corridor. On every other row, cells join the
// current run and the run either extends east (probability 2/3, never past
// the east boundary) or closes by opening south from one random member.
// When a row ends, the row below it is final. A last pass over the top row
// finalizes it.
type Sidewinder struct {
	rng       *rand.Rand
	run       []grid.Cell
	x, y      int
	finalPass bool
}

// Initialize places the head at (0,0) with an empty run.
func (a *Sidewinder) Initialize(g *grid.Grid) {
	a.run = a.run[:0]
	a.x, a.y = 0, 0
	a.finalPass = false
	if settleSingleCell(g) {
		return
	}
	g.SetHead(grid.Cell{})
}

// Step processes one cell and, at the end of a row, moves to the next one.
func (a *Sidewinder) Step(g *grid.Grid) {
	if g.Finished() {
		return
	}
	c := grid.Cell{X: a.x, Y: a.y}
	g.SetHead(c)

	if a.finalPass {
		g.Finalize(c)
	} else {
		a.carve(g, c)
	}

	a.x++
	if a.x < g.Width() {
		return
	}
	a.endRow(g)
}

func (a *Sidewinder) carve(g *grid.Grid, c grid.Cell) {
	g.MarkVisited(c)
	atEast := c.X == g.Width()-1
	if c.Y == 0 {
		if !atEast {
			g.OpenEdge(c, grid.East)
		}
		return
	}

	a.run = append(a.run, c)
	if !atEast && chance(a.rng, 2, 3) {
		g.OpenEdge(c, grid.East)
		return
	}
	m := a.run[a.rng.Intn(len(a.run))]
	g.OpenEdge(m, grid.South)
	a.run = a.run[:0]
}

// endRow finalizes the row below the one just scanned and advances.
// Complexity: O(W).
func (a *Sidewinder) endRow(g *grid.Grid) {
	a.x = 0
	if a.finalPass {
		g.Finish()
		return
	}
	if a.y > 0 {
		for x := 0; x < g.Width(); x++ {
			g.Finalize(grid.Cell{X: x, Y: a.y - 1})
		}
	}
	a.y++
	if a.y == g.Height() {
		a.y = g.Height() - 1
		a.finalPass = true
	}
}
