package astar

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/lvlmaze/grid"
)

// FindShortestPath returns a minimum-cost path from start to goal through
// the open passages of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and goal must lie on the grid (ErrOutOfBounds).
//
// Returns ErrNoPath when the open set is exhausted without reaching goal.
//
// Complexity: O(V log V) time, O(V) space.
func FindShortestPath(start, goal grid.Cell, g *grid.Grid) (Path, error) {
	// 1) Validate inputs.
	if g == nil {
		return Path{}, ErrNilGrid
	}
	if !g.InBounds(start) {
		return Path{}, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(goal) {
		return Path{}, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}

	// 2) Run the search.
	r := &runner{
		g:     g,
		goal:  goal,
		index: make(map[grid.Cell]int),
		open:  heap.New[entry](less),
	}
	r.init(start)
	return r.process()
}

// runner holds the mutable state for a single search.
type runner struct {
	g     *grid.Grid
	goal  grid.Cell
	slots []slot
	index map[grid.Cell]int
	open  *heap.Heap[entry]
}

// init records the start cell in slot 0 and pushes it.
func (r *runner) init(start grid.Cell) {
	r.slots = append(r.slots, slot{cell: start, parent: noParent, cost: 0})
	r.index[start] = 0
	r.open.Push(entry{slot: 0, cost: 0, est: start.Manhattan(r.goal)})
}

// process pops entries until the goal is reached or the open set is empty.
func (r *runner) process() (Path, error) {
	for r.open.Size() > 0 {
		e, _ := r.open.Pop()
		s := r.slots[e.slot]

		// 1) Skip entries superseded by a cheaper push.
		if e.cost > s.cost {
			continue
		}

		// 2) Goal reached.
		if s.cell == r.goal {
			return r.reconstruct(e.slot), nil
		}

		// 3) Expand through open passages.
		r.relax(e.slot)
	}
	return Path{}, ErrNoPath
}

// relax pushes every neighbour of the slot's cell whose cost improves.
func (r *runner) relax(from int) {
	s := r.slots[from]
	next := s.cost + 1
	for _, d := range r.g.NeighborsAt(s.cell).Slice() {
		n := s.cell.Step(d)
		if !r.g.InBounds(n) {
			continue
		}
		i, seen := r.index[n]
		switch {
		case !seen:
			i = len(r.slots)
			r.slots = append(r.slots, slot{cell: n, parent: from, cost: next})
			r.index[n] = i
		case next < r.slots[i].cost:
			r.slots[i].parent = from
			r.slots[i].cost = next
		default:
			continue
		}
		r.open.Push(entry{slot: i, cost: next, est: next + n.Manhattan(r.goal)})
	}
}

// reconstruct walks parent slots back from the goal.
func (r *runner) reconstruct(goal int) Path {
	cells := make([]grid.Cell, 0, r.slots[goal].cost+1)
	for i := goal; i != noParent; i = r.slots[i].parent {
		cells = append(cells, r.slots[i].cell)
	}
	slices.Reverse(cells)
	return Path{Cells: cells, Cost: r.slots[goal].cost}
}
