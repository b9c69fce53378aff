package generator

import "github.com/katalvlaran/lvlmaze/grid"

// settleSingleCell completes a 1×1 grid, which has no edges to carve or cut.
// It reports whether g was such a grid.
func settleSingleCell(g *grid.Grid) bool {
	if g.Size() != 1 {
		return false
	}
	c := grid.Cell{}
	g.SetHead(c)
	g.Finalize(c)
	g.Finish()
	return true
}

// unvisitedSides returns the sides of c that lead to an in-bounds cell not
// yet visited.
func unvisitedSides(g *grid.Grid, c grid.Cell) grid.Set {
	var s grid.Set
	for _, d := range grid.Directions {
		n := c.Step(d)
		if g.InBounds(n) && !g.Visited(n) {
			s = s.With(d)
		}
	}
	return s
}
