package order_test

import (
	"testing"

	"github.com/katalvlaran/ctree/internal/order"
	"github.com/stretchr/testify/require"
)

func TestReverseFlipsRanks(t *testing.T) {
	o := order.Compute([]float64{3, 1, 2})
	r := o.Reverse()

	require.Equal(t, o.AtPosition(0), r.AtPosition(2))
	require.Equal(t, o.AtPosition(2), r.AtPosition(0))
	require.True(t, r.Less(0, 1)) // index 0 has value 3, sorts first under reverse
}
