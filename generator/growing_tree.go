package generator

import (
	"math/rand"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/orderedset"
)

// growingTreeRun is how many consecutive carves continue from the newest
// cell before a random frontier cell is picked again.
const growingTreeRun = 4

// GrowingTree mixes Prim's random frontier picks with short depth-first
// runs: after a carve the new cell is expanded immediately until
// growingTreeRun carves have been made in a row.
type GrowingTree struct {
	rng      *rand.Rand
	frontier *orderedset.Set[grid.Cell]
	run      int
}

// Initialize seeds the frontier with one random visited cell.
func (a *GrowingTree) Initialize(g *grid.Grid) {
	a.frontier = orderedset.New[grid.Cell]()
	a.run = 0
	if settleSingleCell(g) {
		return
	}
	start := randomCell(g, a.rng)
	g.MarkVisited(start)
	g.SetHead(start)
	a.frontier.Insert(start)
}

// Step performs one growing-tree move.
//
// Steps:
//  1. Head visited, with an unvisited neighbour: carve and move there. While
//     the run is short the new cell is claimed at once and expanded next
//     step; when the run reaches its length, it resets and the new cell is
//     left for step 2.
//  2. Head visited, dead end: reset the run, retire and finalize the head.
//  3. Head unvisited: mark visited and add to the frontier.
//  4. Finish if the frontier is empty, else pick a random frontier cell.
func (a *GrowingTree) Step(g *grid.Grid) {
	if g.Finished() {
		return
	}
	head := g.Head()

	if g.Visited(head) {
		if d, ok := unvisitedSides(g, head).Choose(a.rng); ok {
			next := head.Step(d)
			g.OpenEdge(head, d)
			g.SetHead(next)
			a.run++
			if a.run < growingTreeRun {
				g.MarkVisited(next)
				a.frontier.Insert(next)
				return
			}
			a.run = 0
			return
		}
		a.run = 0
		a.frontier.Remove(head)
		g.Finalize(head)
	} else {
		g.MarkVisited(head)
		a.frontier.Insert(head)
	}

	pickFrontier(g, a.frontier, a.rng)
}
