package generator

import (
	"math/rand"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/orderedset"
)

// Prim grows the maze from a random frontier cell on every step.
//
// The frontier holds visited cells that may still have unvisited
// neighbours. A cell carved into is marked visited and joins the frontier
// on the following step, so the head is visible at the new cell for one frame.
type Prim struct {
	rng      *rand.Rand
	frontier *orderedset.Set[grid.Cell]
}

// Initialize seeds the frontier with one random visited cell.
func (a *Prim) Initialize(g *grid.Grid) {
	a.frontier = orderedset.New[grid.Cell]()
	if settleSingleCell(g) {
		return
	}
	start := randomCell(g, a.rng)
	g.MarkVisited(start)
	g.SetHead(start)
	a.frontier.Insert(start)
}

// Step performs one Prim move.
//
// Steps:
//  1. Head visited: carve into a random unvisited neighbour and move there
//     (done for this step), or retire the head from the frontier and
//     finalize it.
//  2. Head unvisited (just carved into): mark visited and add to frontier.
//  3. Finish if the frontier is empty, else pick a random frontier cell.
func (a *Prim) Step(g *grid.Grid) {
	if g.Finished() {
		return
	}
	head := g.Head()

	if g.Visited(head) {
		if d, ok := unvisitedSides(g, head).Choose(a.rng); ok {
			g.OpenEdge(head, d)
			g.SetHead(head.Step(d))
			return
		}
		a.frontier.Remove(head)
		g.Finalize(head)
	} else {
		g.MarkVisited(head)
		a.frontier.Insert(head)
	}

	pickFrontier(g, a.frontier, a.rng)
}

// pickFrontier moves the head to a uniformly random frontier member, or
// finishes the grid when the frontier is exhausted.
func pickFrontier(g *grid.Grid, frontier *orderedset.Set[grid.Cell], rng *rand.Rand) {
	if frontier.Len() == 0 {
		g.Finish()
		return
	}
	g.SetHead(frontier.At(rng.Intn(frontier.Len())))
}
