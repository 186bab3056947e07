package graphstore_test

import (
	"testing"

	"github.com/katalvlaran/ctree/internal/graphstore"
	"github.com/stretchr/testify/require"
)

func TestAddNodeAddEdge(t *testing.T) {
	g := graphstore.New()
	a := g.AddNode()
	b := g.AddNode()

	e, err := g.AddEdge(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 1, g.EdgeCount())

	from, to, err := g.Endpoints(e)
	require.NoError(t, err)
	require.Equal(t, a, from)
	require.Equal(t, b, to)
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := graphstore.New()
	a := g.AddNode()

	_, err := g.AddEdge(a, a)
	require.ErrorIs(t, err, graphstore.ErrSelfLoop)
}

func TestAddEdgeRejectsDuplicate(t *testing.T) {
	g := graphstore.New()
	a := g.AddNode()
	b := g.AddNode()

	_, err := g.AddEdge(a, b)
	require.NoError(t, err)

	_, err = g.AddEdge(b, a)
	require.ErrorIs(t, err, graphstore.ErrDuplicateEdge)
}

func TestRemoveEdgeStalesHandle(t *testing.T) {
	g := graphstore.New()
	a := g.AddNode()
	b := g.AddNode()
	e, err := g.AddEdge(a, b)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(e))
	require.Equal(t, 0, g.EdgeCount())

	_, _, err = g.Endpoints(e)
	require.ErrorIs(t, err, graphstore.ErrStaleHandle)
}

func TestNodeMapGrowsWithGraph(t *testing.T) {
	g := graphstore.New()
	a := g.AddNode()

	vals := graphstore.NewNodeMap[int](g)
	vals.Set(a, 7)
	require.Equal(t, 7, vals.Get(a))

	b := g.AddNode()
	require.Equal(t, 0, vals.Get(b))
	vals.Set(b, 3)
	require.Equal(t, 3, vals.Get(b))
}

func TestEdgeMapGrowsWithGraph(t *testing.T) {
	g := graphstore.New()
	a := g.AddNode()
	b := g.AddNode()
	e, err := g.AddEdge(a, b)
	require.NoError(t, err)

	weights := graphstore.NewEdgeMap[float64](g)
	weights.Set(e, 1.5)
	require.InDelta(t, 1.5, weights.Get(e), 1e-9)
}

func TestOtherReturnsOppositeEndpoint(t *testing.T) {
	g := graphstore.New()
	a := g.AddNode()
	b := g.AddNode()
	e, err := g.AddEdge(a, b)
	require.NoError(t, err)

	other, err := g.Other(e, a)
	require.NoError(t, err)
	require.Equal(t, b, other)

	other, err = g.Other(e, b)
	require.NoError(t, err)
	require.Equal(t, a, other)
}
