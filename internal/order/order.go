// Package order computes a stable total order over a set of indexed items
// by scalar value, breaking ties by original index so the order is
// deterministic regardless of the sort algorithm's internal behavior.
package order

import "sort"

// TotalOrder is a permutation of [0, n) sorted by an external value slice,
// together with its inverse. Position(i) gives i's rank; the permutation
// itself gives, for each rank, the original index.
type TotalOrder struct {
	perm    []int // perm[rank] = original index
	inverse []int // inverse[index] = rank
}

// Compute builds the total order of indices [0, len(values)) sorted
// ascending by values[i], with ties broken by the original index so that
// Compute is stable: re-running it on the same input always produces the
// same order.
func Compute(values []float64) *TotalOrder {
	n := len(values)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		va, vb := values[perm[a]], values[perm[b]]
		if va != vb {
			return va < vb
		}
		return perm[a] < perm[b]
	})

	inverse := make([]int, n)
	for rank, idx := range perm {
		inverse[idx] = rank
	}
	return &TotalOrder{perm: perm, inverse: inverse}
}

// Len returns the number of items in the order.
func (o *TotalOrder) Len() int { return len(o.perm) }

// Position returns the rank of the original index idx, where rank 0 is the
// smallest value.
func (o *TotalOrder) Position(idx int) int { return o.inverse[idx] }

// AtPosition returns the original index holding the given rank.
func (o *TotalOrder) AtPosition(pos int) int { return o.perm[pos] }

// Less reports whether a sorts before b.
func (o *TotalOrder) Less(a, b int) bool { return o.inverse[a] < o.inverse[b] }

// Compare returns -1, 0, or 1 as a sorts before, equal to, or after b under
// the order. Equal only ever holds for a == b since ties are broken by
// index.
func (o *TotalOrder) Compare(a, b int) int {
	pa, pb := o.inverse[a], o.inverse[b]
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	default:
		return 0
	}
}

// Max returns whichever of a, b sorts later in the order.
func (o *TotalOrder) Max(a, b int) int {
	if o.Less(a, b) {
		return b
	}
	return a
}

// Min returns whichever of a, b sorts earlier in the order.
func (o *TotalOrder) Min(a, b int) int {
	if o.Less(a, b) {
		return a
	}
	return b
}

// Reverse returns the order with ranks flipped: the item that sorted last
// now sorts first. Carr's algorithm builds the split tree by running the
// join-tree sweep over the reverse of the join order.
func (o *TotalOrder) Reverse() *TotalOrder {
	n := len(o.perm)
	perm := make([]int, n)
	for i, idx := range o.perm {
		perm[n-1-i] = idx
	}
	inverse := make([]int, n)
	for rank, idx := range perm {
		inverse[idx] = rank
	}
	return &TotalOrder{perm: perm, inverse: inverse}
}
