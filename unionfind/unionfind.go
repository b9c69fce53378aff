// Package unionfind provides an array-backed disjoint-set forest over the
// integers [0, n), with iterative path compression and union by rank.
//
// Complexity:
//
//   - New: O(n) time and memory.
//   - Find, Union: amortized O(α(n)).
package unionfind

// UnionFind partitions [0, n) into disjoint sets.
type UnionFind struct {
	parent []int
	rank   []int
	sets   int
}

// New returns n singleton sets.
func New(n int) *UnionFind {
	if n < 0 {
		n = 0
	}
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Sets returns the current number of disjoint sets.
func (uf *UnionFind) Sets() int { return uf.sets }

// Find returns the root of x's set, compressing the path on the way.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		// Point x at its grandparent.
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// Union merges the sets whose roots are rx and ry. Both must be roots as
// returned by Find. The lower-rank root is attached beneath the higher; on a
// tie ry goes under rx and rx's rank grows.
func (uf *UnionFind) Union(rx, ry int) {
	if rx == ry {
		return
	}
	switch {
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = ry
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = rx
	default:
		uf.parent[ry] = rx
		uf.rank[rx]++
	}
	uf.sets--
}

// Merge finds the roots of x and y and unions them. It reports whether the
// two were in different sets.
func (uf *UnionFind) Merge(x, y int) bool {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return false
	}
	uf.Union(rx, ry)
	return true
}

// Same reports whether x and y share a set.
func (uf *UnionFind) Same(x, y int) bool {
	return uf.Find(x) == uf.Find(y)
}
