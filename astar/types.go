package astar

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/lvlmaze/grid"
)

// Sentinel errors returned by FindShortestPath.
var (
	// ErrNilGrid indicates a nil grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOutOfBounds indicates the start or goal cell is not on the grid.
	ErrOutOfBounds = errors.New("astar: endpoint out of bounds")

	// ErrNoPath indicates the goal is unreachable from the start. It is an
	// expected outcome on grids whose passages are not connected.
	ErrNoPath = errors.New("astar: no path between start and goal")
)

// Path is a shortest route from start to goal.
type Path struct {
	// Cells runs from start to goal inclusive.
	Cells []grid.Cell
	// Cost is the number of passages traversed, len(Cells)−1.
	Cost int
}

// Len returns the number of cells on the path.
func (p Path) Len() int { return len(p.Cells) }

// Set returns the path's cells as an unordered set, for membership tests
// while drawing.
func (p Path) Set() mapset.Set[grid.Cell] {
	s := mapset.New[grid.Cell]()
	for _, c := range p.Cells {
		s.Put(c)
	}
	return s
}

// slot is one entry of the insertion-ordered cell table.
type slot struct {
	cell   grid.Cell
	parent int // index of the parent slot; noParent for the start
	cost   int // best known cost from start
}

const noParent = -1

// entry is a heap element referencing a slot.
type entry struct {
	slot int
	cost int // cost at push time; stale when above the slot's cost
	est  int // cost + heuristic
}

// less orders entries by estimated total, then by cost so far.
func less(a, b entry) bool {
	if a.est != b.est {
		return a.est < b.est
	}
	return a.cost < b.cost
}
