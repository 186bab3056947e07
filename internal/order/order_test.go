package order_test

import (
	"testing"

	"github.com/katalvlaran/ctree/internal/order"
	"github.com/stretchr/testify/require"
)

func TestComputeAscending(t *testing.T) {
	// indices: 0->3, 1->1, 2->2
	o := order.Compute([]float64{3, 1, 2})
	require.Equal(t, 1, o.AtPosition(0)) // smallest value (1) is index 1
	require.Equal(t, 2, o.AtPosition(1)) // next smallest (2) is index 2
	require.Equal(t, 0, o.AtPosition(2)) // largest (3) is index 0

	require.Equal(t, 0, o.Position(1))
	require.Equal(t, 1, o.Position(2))
	require.Equal(t, 2, o.Position(0))
}

func TestComputeTiesBreakByIndex(t *testing.T) {
	o := order.Compute([]float64{5, 5, 5})
	require.Equal(t, 0, o.AtPosition(0))
	require.Equal(t, 1, o.AtPosition(1))
	require.Equal(t, 2, o.AtPosition(2))
}

func TestLessAndCompare(t *testing.T) {
	o := order.Compute([]float64{10, 20})
	require.True(t, o.Less(0, 1))
	require.False(t, o.Less(1, 0))
	require.Equal(t, -1, o.Compare(0, 1))
	require.Equal(t, 1, o.Compare(1, 0))
	require.Equal(t, 0, o.Compare(0, 0))
}

func TestMaxMin(t *testing.T) {
	o := order.Compute([]float64{10, 20, 5})
	require.Equal(t, 1, o.Max(0, 1))
	require.Equal(t, 2, o.Min(0, 2))
}
