package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and lookups.
var (
	// ErrInvalidSize indicates a width or height below 1.
	ErrInvalidSize = errors.New("grid: width and height must be at least 1")
	// ErrOutOfBounds indicates a cell or edge index outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// NoWall is the WallHead value when no edge is being touched.
const NoWall = -1

// NoCell is the Head value of a grid that has no active cell.
var NoCell = Cell{X: -1, Y: -1}

// Cell addresses a single grid position.
type Cell struct {
	X, Y int
}

// Step returns the cell adjacent to c in direction d. The result may lie
// outside the grid.
// Complexity: O(1).
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Offset()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns |Δx|+|Δy| between c and o.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
