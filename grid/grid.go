package grid

import "fmt"

// Grid is the mutable maze state shared by a generator and its observers.
// It is not safe for concurrent use; hand a Clone to other goroutines.
type Grid struct {
	width, height int
	open          []Set
	visited       bitset
	finalized     bitset
	head          Cell
	wallHead      int
	finished      bool
}

// New returns a width×height grid with every passage closed and no cell
// visited or finalized.
// Returns ErrInvalidSize if width or height is below 1.
// Complexity: O(W×H).
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	n := width * height
	return &Grid{
		width:     width,
		height:    height,
		open:      make([]Set, n),
		visited:   newBitset(n),
		finalized: newBitset(n),
		head:      Cell{},
		wallHead:  NoWall,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns Width×Height.
func (g *Grid) Size() int { return g.width * g.height }

// InBounds reports whether c lies on the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Index maps c to its row-major index y*Width + x.
func (g *Grid) Index(c Cell) int {
	return c.Y*g.width + c.X
}

// CellAt converts a row-major index back to a Cell.
func (g *Grid) CellAt(i int) Cell {
	return Cell{X: i % g.width, Y: i / g.width}
}

// EdgesAtBoundary returns the sides of c that face outside the grid:
// West when x=0, East when x=Width−1, South when y=0, North when y=Height−1.
// A 1×1 grid reports all four.
// Complexity: O(1).
func (g *Grid) EdgesAtBoundary(c Cell) Set {
	var s Set
	if c.X == 0 {
		s = s.With(West)
	}
	if c.X == g.width-1 {
		s = s.With(East)
	}
	if c.Y == 0 {
		s = s.With(South)
	}
	if c.Y == g.height-1 {
		s = s.With(North)
	}
	return s
}

// InteriorSides returns the sides of c that lead to another cell.
func (g *Grid) InteriorSides(c Cell) Set {
	return g.EdgesAtBoundary(c).Complement()
}

// NeighborsAt returns the open sides of c.
func (g *Grid) NeighborsAt(c Cell) Set {
	return g.open[g.Index(c)]
}

// SetNeighborsAt overwrites the open-side mask of c. It does not touch the
// adjacent cells; callers that use it must keep the relation symmetric
// themselves (e.g. by writing every cell).
func (g *Grid) SetNeighborsAt(c Cell, s Set) {
	g.open[g.Index(c)] = s & AllDirections
}

// OpenEdge opens the passage between c and its neighbour in direction d on
// both sides. Directions leading off the grid are ignored.
// Complexity: O(1).
func (g *Grid) OpenEdge(c Cell, d Direction) {
	n := c.Step(d)
	if !g.InBounds(c) || !g.InBounds(n) {
		return
	}
	g.open[g.Index(c)] |= d.Set()
	g.open[g.Index(n)] |= d.Opposite().Set()
}

// CloseEdge closes the passage between c and its neighbour in direction d on
// both sides. Directions leading off the grid are ignored.
// Complexity: O(1).
func (g *Grid) CloseEdge(c Cell, d Direction) {
	n := c.Step(d)
	if !g.InBounds(c) || !g.InBounds(n) {
		return
	}
	g.open[g.Index(c)] &^= d.Set()
	g.open[g.Index(n)] &^= d.Opposite().Set()
}

// Connected reports whether the passage from c toward d is open.
func (g *Grid) Connected(c Cell, d Direction) bool {
	return g.InBounds(c) && g.NeighborsAt(c).Has(d)
}

// Visited reports whether c has been reached.
func (g *Grid) Visited(c Cell) bool { return g.visited.has(g.Index(c)) }

// MarkVisited records c as reached and reports whether it was new.
func (g *Grid) MarkVisited(c Cell) bool { return g.visited.set(g.Index(c)) }

// Finalized reports whether c is settled for the rest of the run.
func (g *Grid) Finalized(c Cell) bool { return g.finalized.has(g.Index(c)) }

// Finalize marks c as settled. The cell is marked visited as well so that
// the finalized set stays a subset of the visited set.
func (g *Grid) Finalize(c Cell) bool {
	i := g.Index(c)
	g.visited.set(i)
	return g.finalized.set(i)
}

// VisitedCount returns the number of visited cells.
func (g *Grid) VisitedCount() int { return g.visited.count }

// FinalizedCount returns the number of finalized cells.
func (g *Grid) FinalizedCount() int { return g.finalized.count }

// Head returns the cell the generator touched last, or NoCell.
func (g *Grid) Head() Cell { return g.head }

// SetHead moves the head marker.
func (g *Grid) SetHead(c Cell) { g.head = c }

// WallHead returns the edge index the generator touched last, or NoWall.
func (g *Grid) WallHead() int { return g.wallHead }

// SetWallHead moves the wall marker.
func (g *Grid) SetWallHead(i int) { g.wallHead = i }

// Finished reports whether generation has completed.
func (g *Grid) Finished() bool { return g.finished }

// Finish marks generation complete and clears both markers.
func (g *Grid) Finish() {
	g.finished = true
	g.head = NoCell
	g.wallHead = NoWall
}

// Clone returns a deep copy safe to hand to another goroutine.
// Complexity: O(W×H).
func (g *Grid) Clone() *Grid {
	open := make([]Set, len(g.open))
	copy(open, g.open)
	return &Grid{
		width:     g.width,
		height:    g.height,
		open:      open,
		visited:   g.visited.clone(),
		finalized: g.finalized.clone(),
		head:      g.head,
		wallHead:  g.wallHead,
		finished:  g.finished,
	}
}

// Cells calls fn for every cell in row-major order.
func (g *Grid) Cells(fn func(c Cell)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Cell{X: x, Y: y})
		}
	}
}
