package dsu_test

import (
	"testing"

	"github.com/katalvlaran/ctree/internal/dsu"
	"github.com/katalvlaran/ctree/internal/order"
	"github.com/stretchr/testify/require"
)

func TestUnionFindBasic(t *testing.T) {
	ord := order.Compute([]float64{0, 1, 2, 3})
	f := dsu.New(4, ord)

	require.False(t, f.Connected(0, 1))
	f.Union(0, 1)
	require.True(t, f.Connected(0, 1))
	require.False(t, f.Connected(0, 2))

	f.Union(2, 3)
	f.Union(1, 2)
	require.True(t, f.Connected(0, 3))
}

func TestMaxMinTrackByOrderPosition(t *testing.T) {
	// values: index 0 -> 10, 1 -> 1, 2 -> 5
	ord := order.Compute([]float64{10, 1, 5})
	f := dsu.New(3, ord)

	f.Union(0, 1)
	require.Equal(t, 0, f.Max(0)) // value 10 is greatest
	require.Equal(t, 1, f.Min(0)) // value 1 is least

	f.Union(1, 2)
	require.Equal(t, 0, f.Max(2))
	require.Equal(t, 1, f.Min(2))
}

func TestUnionIdempotentOnSameSet(t *testing.T) {
	ord := order.Compute([]float64{0, 1})
	f := dsu.New(2, ord)
	f.Union(0, 1)
	root := f.Union(0, 1)
	require.Equal(t, f.Find(0), root)
}
