package generator

import (
	"slices"

	"github.com/katalvlaran/lvlmaze/grid"
)

// noSet marks a column that has not been assigned a set yet.
const noSet = -1

// rowState partitions the cells of one row into numbered sets.
// Set numbers keep increasing across rows so a carried-over set never
// collides with a fresh one.
type rowState struct {
	setFor  []int
	members map[int][]grid.Cell
	nextSet int
}

func newRowState(width, nextSet int) *rowState {
	r := &rowState{
		setFor:  make([]int, width),
		members: make(map[int][]grid.Cell),
		nextSet: nextSet,
	}
	for i := range r.setFor {
		r.setFor[i] = noSet
	}
	return r
}

// setOf returns the set of c, assigning a fresh one on first use.
func (r *rowState) setOf(c grid.Cell) int {
	if s := r.setFor[c.X]; s != noSet {
		return s
	}
	s := r.nextSet
	r.nextSet++
	r.record(s, c)
	return s
}

// record places c into set s.
func (r *rowState) record(s int, c grid.Cell) {
	r.setFor[c.X] = s
	r.members[s] = append(r.members[s], c)
}

// merge moves every member of loser into winner.
// Complexity: O(|loser|).
func (r *rowState) merge(winner, loser int) {
	if winner == loser {
		return
	}
	for _, c := range r.members[loser] {
		r.setFor[c.X] = winner
	}
	r.members[winner] = append(r.members[winner], r.members[loser]...)
	delete(r.members, loser)
}

// sets returns the live set numbers in ascending order.
func (r *rowState) sets() []int {
	ids := make([]int, 0, len(r.members))
	for id := range r.members {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// next returns an empty partition for the following row that continues the
// set numbering.
func (r *rowState) next() *rowState {
	return newRowState(len(r.setFor), r.nextSet)
}
