// Package dsu implements a disjoint-set forest over integer indices,
// parameterized by a total order so that each set's representative also
// carries the maximum and minimum element of the set under that order.
//
// The union/find core follows the hand-rolled parent/rank maps used for
// Kruskal's MST in the retrieved graph-algorithms package: path compression
// on find, union by rank on union. What is added here is per-root max/min
// tracking compared by order position rather than raw value, which Carr's
// algorithm needs to find the extremal member of a growing component.
package dsu

import "github.com/katalvlaran/ctree/internal/order"

// Forest is a disjoint-set forest over [0, n).
type Forest struct {
	order  *order.TotalOrder
	parent []int
	rank   []int
	max    []int // max[root] = element with greatest order position in the set
	min    []int // min[root] = element with least order position in the set
}

// New builds a forest of n singleton sets, ranked by ord.
func New(n int, ord *order.TotalOrder) *Forest {
	f := &Forest{
		order:  ord,
		parent: make([]int, n),
		rank:   make([]int, n),
		max:    make([]int, n),
		min:    make([]int, n),
	}
	for i := 0; i < n; i++ {
		f.parent[i] = i
		f.max[i] = i
		f.min[i] = i
	}
	return f
}

// Find returns the representative of x's set, compressing the path.
func (f *Forest) Find(x int) int {
	for f.parent[x] != x {
		f.parent[x] = f.parent[f.parent[x]]
		x = f.parent[x]
	}
	return x
}

// Union merges the sets containing a and b, returning the new
// representative. If a and b are already in the same set, it returns that
// set's representative without modification.
func (f *Forest) Union(a, b int) int {
	rootA, rootB := f.Find(a), f.Find(b)
	if rootA == rootB {
		return rootA
	}

	var newRoot int
	if f.rank[rootA] < f.rank[rootB] {
		f.parent[rootA] = rootB
		newRoot = rootB
	} else {
		f.parent[rootB] = rootA
		newRoot = rootA
		if f.rank[rootA] == f.rank[rootB] {
			f.rank[rootA]++
		}
	}

	f.max[newRoot] = f.order.Max(f.max[rootA], f.max[rootB])
	f.min[newRoot] = f.order.Min(f.min[rootA], f.min[rootB])
	return newRoot
}

// Max returns the element with the greatest order position in x's set.
func (f *Forest) Max(x int) int { return f.max[f.Find(x)] }

// Min returns the element with the least order position in x's set.
func (f *Forest) Min(x int) int { return f.min[f.Find(x)] }

// Connected reports whether a and b are in the same set.
func (f *Forest) Connected(a, b int) bool { return f.Find(a) == f.Find(b) }
