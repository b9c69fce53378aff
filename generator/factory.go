package generator

import "fmt"

// New constructs the generator selected by label.
// Returns ErrUnknownLabel for a label outside Labels().
func New(label Label, opts ...Option) (Algorithm, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rng := rngFromOptions(o)

	switch label {
	case LabelDepthFirstSearch:
		return &DepthFirstSearch{rng: rng}, nil
	case LabelPrim:
		return &Prim{rng: rng}, nil
	case LabelGrowingTree:
		return &GrowingTree{rng: rng}, nil
	case LabelKruskal:
		return &Kruskal{rng: rng}, nil
	case LabelEller:
		return &Eller{rng: rng}, nil
	case LabelSidewinder:
		return &Sidewinder{rng: rng}, nil
	case LabelRecursiveDivision:
		return &RecursiveDivision{rng: rng}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownLabel, int(label))
	}
}

// MustNew is New for labels known to be valid; it panics otherwise.
func MustNew(label Label, opts ...Option) Algorithm {
	a, err := New(label, opts...)
	if err != nil {
		panic(err)
	}
	return a
}
