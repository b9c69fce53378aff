package grid

import "fmt"

// EdgeCount returns the number of internal edges, (w−1)·h + w·(h−1).
// Complexity: O(1).
func (g *Grid) EdgeCount() int {
	return g.eastWestCount() + g.width*(g.height-1)
}

func (g *Grid) eastWestCount() int {
	return (g.width - 1) * g.height
}

// WallCells decodes edge index i into the cell on its lower-coordinate side
// and the direction that crosses it (East or North).
// Returns ErrOutOfBounds for an index outside [0, EdgeCount()).
// Complexity: O(1).
func (g *Grid) WallCells(i int) (Cell, Direction, error) {
	if i < 0 || i >= g.EdgeCount() {
		return NoCell, East, fmt.Errorf("%w: edge %d of %d", ErrOutOfBounds, i, g.EdgeCount())
	}
	ew := g.eastWestCount()
	if i < ew {
		// ew > 0 here, so width > 1.
		return Cell{X: i % (g.width - 1), Y: i / (g.width - 1)}, East, nil
	}
	j := i - ew
	return Cell{X: j % g.width, Y: j / g.width}, North, nil
}

// WallIndex returns the index of the edge on side d of c. ok is false when
// that side is on the boundary.
// Complexity: O(1).
func (g *Grid) WallIndex(c Cell, d Direction) (int, bool) {
	if !g.InBounds(c) || g.EdgesAtBoundary(c).Has(d) {
		return NoWall, false
	}
	switch d {
	case East:
		return c.Y*(g.width-1) + c.X, true
	case West:
		return c.Y*(g.width-1) + c.X - 1, true
	case North:
		return c.Y*g.width + c.X + g.eastWestCount(), true
	default:
		return (c.Y-1)*g.width + c.X + g.eastWestCount(), true
	}
}

// WallsAround returns the indices of every internal edge touching c, in
// canonical direction order.
func (g *Grid) WallsAround(c Cell) []int {
	out := make([]int, 0, 4)
	for _, d := range Directions {
		if i, ok := g.WallIndex(c, d); ok {
			out = append(out, i)
		}
	}
	return out
}

// OpenEdgeCount counts passages that are open, each counted once.
// Complexity: O(W×H).
func (g *Grid) OpenEdgeCount() int {
	n := 0
	for i, s := range g.open {
		c := g.CellAt(i)
		if s.Has(East) && c.X < g.width-1 {
			n++
		}
		if s.Has(North) && c.Y < g.height-1 {
			n++
		}
	}
	return n
}
