package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/grid"
)

// ExampleGrid_OpenEdge shows that opening a passage updates both cells.
func ExampleGrid_OpenEdge() {
	g, _ := grid.New(2, 2)
	g.OpenEdge(grid.Cell{X: 0, Y: 0}, grid.North)

	fmt.Println(g.NeighborsAt(grid.Cell{X: 0, Y: 0}))
	fmt.Println(g.NeighborsAt(grid.Cell{X: 0, Y: 1}))
	fmt.Println("edges:", g.EdgeCount(), "open:", g.OpenEdgeCount())
	// Output:
	// {north}
	// {south}
	// edges: 4 open: 1
}
