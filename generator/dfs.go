package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/lvlmaze/grid"
)

// DepthFirstSearch is the randomized recursive backtracker, driven by an
// explicit stack so each Step is O(1).
//
// Invariant: while running, the grid head is the top of the stack.
type DepthFirstSearch struct {
	rng   *rand.Rand
	stack *stack.Stack[grid.Cell]
}

// Initialize picks a random start cell, marks it visited and pushes it.
func (a *DepthFirstSearch) Initialize(g *grid.Grid) {
	a.stack = stack.New[grid.Cell]()
	if settleSingleCell(g) {
		return
	}
	start := randomCell(g, a.rng)
	g.MarkVisited(start)
	g.SetHead(start)
	a.stack.Push(start)
}

// Step carves from the head into a random unvisited neighbour, or, if there
// is none, finalizes the head and backtracks to the cell beneath it.
//
// Steps:
//  1. Collect in-bounds, unvisited neighbours of the head.
//  2. If any: open toward one, mark it visited, push it and move the head.
//  3. Otherwise pop and finalize the head; the new top becomes the head, or
//     generation finishes when the stack is empty.
func (a *DepthFirstSearch) Step(g *grid.Grid) {
	if g.Finished() {
		return
	}
	head := g.Head()

	// 1–2. Carve forward.
	if d, ok := unvisitedSides(g, head).Choose(a.rng); ok {
		next := head.Step(d)
		g.OpenEdge(head, d)
		g.MarkVisited(next)
		g.SetHead(next)
		a.stack.Push(next)
		return
	}

	// 3. Dead end: backtrack.
	a.stack.Pop()
	g.Finalize(head)
	if a.stack.Size() == 0 {
		g.Finish()
		return
	}
	g.SetHead(a.stack.Peek())
}
