package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/unionfind"
)

// Kruskal visits every edge once in random order and opens it when it joins
// two different components.
//
// A cell is finalized as soon as none of its edges is left to consider.
type Kruskal struct {
	rng       *rand.Rand
	walls     []int
	remaining mapset.Set[int]
	sets      *unionfind.UnionFind
}

// Initialize shuffles every edge index, resets the union-find to singletons
// and loads the first edge into the grid's wall head.
//
// Complexity: O(E) time and memory.
func (a *Kruskal) Initialize(g *grid.Grid) {
	a.sets = unionfind.New(g.Size())
	a.remaining = mapset.New[int]()
	a.walls = make([]int, g.EdgeCount())
	for i := range a.walls {
		a.walls[i] = i
		a.remaining.Put(i)
	}
	if settleSingleCell(g) {
		return
	}
	shuffleInPlace(a.walls, a.rng)
	a.advance(g)
}

// Step decides the edge under the wall head.
//
// Steps:
//  1. Decode the wall head into its two cells a and b.
//  2. If their roots differ: open the edge, union the roots, mark both visited.
//  3. Re-check a, b and, for each cell that became visited just now, its
//     neighbours: a visited cell with no undecided edge is finalized.
//  4. Load the next edge, or finish.
func (a *Kruskal) Step(g *grid.Grid) {
	if g.Finished() {
		return
	}
	// 1. Decode.
	ca, d, err := g.WallCells(g.WallHead())
	if err != nil {
		g.Finish()
		return
	}
	cb := ca.Step(d)

	// 2. Merge.
	var newA, newB bool
	ra, rb := a.sets.Find(g.Index(ca)), a.sets.Find(g.Index(cb))
	if ra != rb {
		g.OpenEdge(ca, d)
		a.sets.Union(ra, rb)
		newA = g.MarkVisited(ca)
		newB = g.MarkVisited(cb)
	}

	// 3. Finalize settled cells.
	touched := make([]grid.Cell, 0, 8)
	touched = append(touched, ca, cb)
	if newA {
		touched = appendNeighbours(g, touched, ca)
	}
	if newB {
		touched = appendNeighbours(g, touched, cb)
	}
	for _, c := range touched {
		if g.Visited(c) && !g.Finalized(c) && a.settled(g, c) {
			g.Finalize(c)
		}
	}

	// 4. Next edge.
	a.advance(g)
}

// advance pops the next edge into the wall head, or finishes the grid.
func (a *Kruskal) advance(g *grid.Grid) {
	n := len(a.walls)
	if n == 0 {
		g.Finish()
		return
	}
	w := a.walls[n-1]
	a.walls = a.walls[:n-1]
	a.remaining.Remove(w)
	g.SetWallHead(w)
	if c, _, err := g.WallCells(w); err == nil {
		g.SetHead(c)
	}
}

// settled reports whether every edge around c has been decided.
func (a *Kruskal) settled(g *grid.Grid, c grid.Cell) bool {
	for _, w := range g.WallsAround(c) {
		if a.remaining.Has(w) {
			return false
		}
	}
	return true
}

func appendNeighbours(g *grid.Grid, dst []grid.Cell, c grid.Cell) []grid.Cell {
	for _, d := range g.InteriorSides(c).Slice() {
		dst = append(dst, c.Step(d))
	}
	return dst
}
