package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/verify"
)

// snake opens a boustrophedon path through every cell of g.
func snake(g *grid.Grid) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width()-1; x++ {
			g.OpenEdge(grid.Cell{X: x, Y: y}, grid.East)
		}
		if y < g.Height()-1 {
			x := 0
			if y%2 == 0 {
				x = g.Width() - 1
			}
			g.OpenEdge(grid.Cell{X: x, Y: y}, grid.North)
		}
	}
	g.Cells(func(c grid.Cell) { g.Finalize(c) })
}

// TestSpanningTree_Snake accepts a hand-built path covering the grid.
func TestSpanningTree_Snake(t *testing.T) {
	g, err := grid.New(4, 3)
	require.NoError(t, err)
	snake(g)
	assert.NoError(t, verify.SpanningTree(g))
	assert.Equal(t, g.Size()-1, g.OpenEdgeCount())
}

// TestTree_Cycle detects a closed 2×2 loop.
func TestTree_Cycle(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	g.OpenEdge(grid.Cell{X: 0, Y: 0}, grid.East)
	g.OpenEdge(grid.Cell{X: 0, Y: 0}, grid.North)
	g.OpenEdge(grid.Cell{X: 1, Y: 0}, grid.North)
	g.OpenEdge(grid.Cell{X: 0, Y: 1}, grid.East)
	assert.ErrorIs(t, verify.Tree(g), verify.ErrCycle)
	assert.NoError(t, verify.Symmetric(g))
}

// TestTree_Disconnected rejects a grid with no passages.
func TestTree_Disconnected(t *testing.T) {
	g, err := grid.New(3, 1)
	require.NoError(t, err)
	g.OpenEdge(grid.Cell{}, grid.East)
	assert.ErrorIs(t, verify.Tree(g), verify.ErrDisconnected)
}

// TestSymmetric_Broken catches one-sided and boundary passages.
func TestSymmetric_Broken(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	g.SetNeighborsAt(grid.Cell{}, grid.SetOf(grid.East))
	assert.ErrorIs(t, verify.Symmetric(g), verify.ErrAsymmetric)

	g.SetNeighborsAt(grid.Cell{}, grid.SetOf(grid.West))
	assert.ErrorIs(t, verify.Symmetric(g), verify.ErrBoundary)
}

// TestSettled reports the first unfinalized cell.
func TestSettled(t *testing.T) {
	g, err := grid.New(2, 1)
	require.NoError(t, err)
	g.Finalize(grid.Cell{})
	assert.ErrorIs(t, verify.Settled(g), verify.ErrUnsettled)
	g.Finalize(grid.Cell{X: 1})
	assert.NoError(t, verify.Settled(g))
	assert.ErrorIs(t, verify.SpanningTree(nil), verify.ErrNilGrid)
}
