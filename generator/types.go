package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/lvlmaze/grid"
)

// ErrUnknownLabel indicates a generator label outside the known set.
var ErrUnknownLabel = errors.New("generator: unknown algorithm label")

// Algorithm is a resumable maze generator.
//
// Initialize must be called once on a freshly created grid before the first
// Step. Step advances generation by one bounded unit and is a no-op once the
// grid reports Finished.
type Algorithm interface {
	Initialize(g *grid.Grid)
	Step(g *grid.Grid)
}

// Label selects a generator.
type Label int

const (
	LabelDepthFirstSearch Label = iota
	LabelPrim
	LabelGrowingTree
	LabelKruskal
	LabelEller
	LabelSidewinder
	LabelRecursiveDivision
)

var labelNames = [...]string{
	LabelDepthFirstSearch:  "dfs",
	LabelPrim:              "prim",
	LabelGrowingTree:       "growing-tree",
	LabelKruskal:           "kruskal",
	LabelEller:             "eller",
	LabelSidewinder:        "sidewinder",
	LabelRecursiveDivision: "recursive-division",
}

// Labels returns every known label in declaration order.
func Labels() []Label {
	out := make([]Label, len(labelNames))
	for i := range labelNames {
		out[i] = Label(i)
	}
	return out
}

// String returns the short, lower-case name used on the command line.
func (l Label) String() string {
	if l >= 0 && int(l) < len(labelNames) {
		return labelNames[l]
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// Subtractive reports whether the generator removes walls from an open grid
// rather than carving passages into a closed one.
func (l Label) Subtractive() bool {
	return l == LabelRecursiveDivision
}

// Perfect reports whether the generator yields a perfect maze, one with a
// single route between any two cells. All current generators do.
func (l Label) Perfect() bool {
	return l >= 0 && int(l) < len(labelNames)
}

// Next returns the label after l, wrapping around.
func (l Label) Next() Label {
	return Label((int(l) + 1) % len(labelNames))
}

// ParseLabel resolves a name produced by Label.String. Matching ignores case
// and treats '_' and ' ' like '-'.
func ParseLabel(s string) (Label, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	for i, name := range labelNames {
		if name == norm {
			return Label(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, s)
}

// Options configures generator construction.
type Options struct {
	// Seed for the generator's random source; used only when HasSeed is true.
	Seed    int64
	HasSeed bool
	// Rand, when non-nil, is used as-is and Seed is ignored.
	Rand *rand.Rand
}

// DefaultOptions returns Options with no fixed seed.
func DefaultOptions() Options {
	return Options{}
}

// Option mutates Options.
type Option func(*Options)

// WithSeed fixes the random seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.HasSeed = true
	}
}

// WithRand injects a caller-owned random source. The generator takes
// ownership; it must not be shared with another goroutine.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}
