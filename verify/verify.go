// Package verify checks structural properties of a generated maze: passage
// symmetry, tree shape and completion bookkeeping.
//
// Tree uses a pointer-based disjoint-set forest over the cells; any open
// passage joining two cells already in one set closes a cycle.
//
// Complexity: every check is O(W×H·α(W×H)) time and O(W×H) memory.
package verify

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/lvlmaze/grid"
)

// Sentinel errors reported by the checks.
var (
	// ErrNilGrid indicates a nil grid was passed.
	ErrNilGrid = errors.New("verify: grid is nil")
	// ErrAsymmetric indicates a passage open on one side only.
	ErrAsymmetric = errors.New("verify: passage open on one side only")
	// ErrBoundary indicates a passage open toward the outside of the grid.
	ErrBoundary = errors.New("verify: passage open across the boundary")
	// ErrCycle indicates the open passages contain a cycle.
	ErrCycle = errors.New("verify: passages contain a cycle")
	// ErrDisconnected indicates some cell cannot be reached from (0,0).
	ErrDisconnected = errors.New("verify: passages do not connect every cell")
	// ErrUnsettled indicates a cell left unvisited or unfinalized.
	ErrUnsettled = errors.New("verify: cell not finalized")
)

// Symmetric checks that every open side has a matching open side on the
// neighbour and that no side opens across the boundary.
func Symmetric(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	var err error
	g.Cells(func(c grid.Cell) {
		if err != nil {
			return
		}
		open := g.NeighborsAt(c)
		if !open.Intersect(g.EdgesAtBoundary(c)).Empty() {
			err = fmt.Errorf("%w: cell %v sides %v", ErrBoundary, c, open)
			return
		}
		for _, d := range open.Slice() {
			if !g.NeighborsAt(c.Step(d)).Has(d.Opposite()) {
				err = fmt.Errorf("%w: %v toward %v", ErrAsymmetric, c, d)
				return
			}
		}
	})
	return err
}

// Tree checks that the open passages form a single connected, acyclic graph.
func Tree(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	elems := make([]*disjoint.Element, g.Size())
	for i := range elems {
		elems[i] = disjoint.NewElement()
	}

	for i := 0; i < g.Size(); i++ {
		c := g.CellAt(i)
		open := g.NeighborsAt(c)
		for _, d := range []grid.Direction{grid.East, grid.North} {
			n := c.Step(d)
			if !open.Has(d) || !g.InBounds(n) {
				continue
			}
			a, b := elems[i], elems[g.Index(n)]
			if a.Find() == b.Find() {
				return fmt.Errorf("%w: closed by %v toward %v", ErrCycle, c, d)
			}
			disjoint.Union(a, b)
		}
	}

	root := elems[0].Find()
	for i, e := range elems {
		if e.Find() != root {
			return fmt.Errorf("%w: %v unreachable", ErrDisconnected, g.CellAt(i))
		}
	}
	return nil
}

// Settled checks that every cell is visited and finalized.
func Settled(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	var err error
	g.Cells(func(c grid.Cell) {
		if err == nil && !g.Finalized(c) {
			err = fmt.Errorf("%w: %v", ErrUnsettled, c)
		}
	})
	return err
}

// SpanningTree runs Symmetric, Tree and Settled in that order and returns
// the first failure. A grid that passes has exactly W×H−1 open passages.
func SpanningTree(g *grid.Grid) error {
	for _, check := range []func(*grid.Grid) error{Symmetric, Tree, Settled} {
		if err := check(g); err != nil {
			return err
		}
	}
	return nil
}
