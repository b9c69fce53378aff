package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/unionfind"
)

// TestNew_Singletons checks every element starts as its own root.
func TestNew_Singletons(t *testing.T) {
	uf := unionfind.New(5)
	require.Equal(t, 5, uf.Len())
	assert.Equal(t, 5, uf.Sets())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, uf.Find(i))
	}
	assert.Zero(t, unionfind.New(-3).Len())
}

// TestUnion_ByRank verifies tie-breaking and rank growth.
func TestUnion_ByRank(t *testing.T) {
	uf := unionfind.New(4)

	// Equal ranks: second root goes under the first.
	uf.Union(0, 1)
	assert.Equal(t, 0, uf.Find(1))

	// Rank(0)=1 > Rank(2)=0: 2 goes under 0 regardless of argument order.
	uf.Union(uf.Find(2), uf.Find(0))
	assert.Equal(t, 0, uf.Find(2))
	assert.Equal(t, 2, uf.Sets())

	// Union of a root with itself is a no-op.
	uf.Union(0, 0)
	assert.Equal(t, 2, uf.Sets())
}

// TestMerge_Chain builds a long chain and checks all members converge.
func TestMerge_Chain(t *testing.T) {
	const n = 1000
	uf := unionfind.New(n)
	for i := 1; i < n; i++ {
		assert.True(t, uf.Merge(i-1, i))
	}
	assert.False(t, uf.Merge(0, n-1))
	assert.Equal(t, 1, uf.Sets())
	root := uf.Find(0)
	for i := 0; i < n; i++ {
		assert.Equal(t, root, uf.Find(i))
	}
	assert.True(t, uf.Same(3, 997))
}
