package generator

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/lvlmaze/grid"
)

// rngFromOptions picks the random source for a new generator.
// Policy: an injected Rand wins, then an explicit seed, then the clock.
//
// Complexity: O(1).
func rngFromOptions(o Options) *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	seed := o.Seed
	if !o.HasSeed {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// shuffleInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace[T any](a []T, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// randomCell returns a uniformly chosen cell of g.
func randomCell(g *grid.Grid, rng *rand.Rand) grid.Cell {
	return grid.Cell{X: rng.Intn(g.Width()), Y: rng.Intn(g.Height())}
}

// chance reports true with probability num/den.
func chance(rng *rand.Rand, num, den int) bool {
	return rng.Intn(den) < num
}
