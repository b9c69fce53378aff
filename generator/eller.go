package generator

import (
	"math/rand"

	"github.com/katalvlaran/lvlmaze/grid"
)

// ellerMove is one queued vertical decision of the closing phase.
type ellerMove struct {
	cell  grid.Cell
	set   int
	first bool // first member of its set: always opens north
	last  bool // last member of its set: finalizes the set
}

// Eller builds the maze one row at a time, starting at y=0.
//
// Each row is handled in two phases. The scan phase walks the row west to
// east, giving every cell a set and randomly joining it to its west
// neighbour when their sets differ; on the last row every such pair is
// joined. The closing phase walks each set's members in random order, one
// per step, opening north from the first member and from others with
// probability 1/3; a set is finalized when its last member is processed.
type Eller struct {
	rng        *rand.Rand
	row        *rowState
	nextRow    *rowState
	moves      []ellerMove
	pos        int
	x, y       int
	finalizing bool
}

// Initialize resets the row partitions and places the head at (0,0).
func (a *Eller) Initialize(g *grid.Grid) {
	a.row = newRowState(g.Width(), 0)
	a.nextRow = nil
	a.moves = a.moves[:0]
	a.pos = 0
	a.x, a.y = 0, 0
	a.finalizing = false
	if settleSingleCell(g) {
		return
	}
	g.SetHead(grid.Cell{})
}

// Step processes one cell of the scan phase or one queued move of the
// closing phase.
func (a *Eller) Step(g *grid.Grid) {
	if g.Finished() {
		return
	}
	if a.finalizing {
		a.close(g)
		return
	}
	a.scan(g)
}

// scan handles cell (x, y) of the scan phase.
func (a *Eller) scan(g *grid.Grid) {
	c := grid.Cell{X: a.x, Y: a.y}
	g.SetHead(c)
	g.MarkVisited(c)
	set := a.row.setOf(c)

	if a.x > 0 {
		west := a.row.setOf(c.Step(grid.West))
		lastRow := a.y == g.Height()-1
		if set != west && (lastRow || chance(a.rng, 1, 2)) {
			g.OpenEdge(c, grid.West)
			a.row.merge(west, set)
		}
	}

	a.x++
	if a.x == g.Width() {
		a.beginClosing()
	}
}

// beginClosing queues every set's members, sets in ascending order and
// members shuffled.
// Complexity: O(W).
func (a *Eller) beginClosing() {
	a.nextRow = a.row.next()
	a.moves = a.moves[:0]
	a.pos = 0
	for _, id := range a.row.sets() {
		members := append([]grid.Cell(nil), a.row.members[id]...)
		shuffleInPlace(members, a.rng)
		for i, c := range members {
			a.moves = append(a.moves, ellerMove{
				cell:  c,
				set:   id,
				first: i == 0,
				last:  i == len(members)-1,
			})
		}
	}
	a.finalizing = true
}

// close performs one queued move of the closing phase.
func (a *Eller) close(g *grid.Grid) {
	m := a.moves[a.pos]
	a.pos++
	g.SetHead(m.cell)

	if a.y < g.Height()-1 && (m.first || chance(a.rng, 1, 3)) {
		up := m.cell.Step(grid.North)
		g.OpenEdge(m.cell, grid.North)
		a.nextRow.record(m.set, up)
		g.MarkVisited(up)
	}
	if m.last {
		for _, c := range a.row.members[m.set] {
			g.Finalize(c)
		}
	}

	if a.pos < len(a.moves) {
		return
	}
	// Row done.
	a.row, a.nextRow = a.nextRow, nil
	a.finalizing = false
	a.x = 0
	a.y++
	if a.y == g.Height() {
		g.Finish()
	}
}
