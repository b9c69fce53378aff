package generator_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/generator"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/verify"
)

// ExampleNew generates a small maze one step at a time.
func ExampleNew() {
	g, _ := grid.New(5, 4)
	alg, err := generator.New(generator.LabelEller, generator.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}

	alg.Initialize(g)
	for !g.Finished() {
		alg.Step(g)
	}

	fmt.Println("open passages:", g.OpenEdgeCount())
	fmt.Println("spanning tree:", verify.SpanningTree(g) == nil)
	// Output:
	// open passages: 19
	// spanning tree: true
}
