package foldtree_test

import (
	"testing"

	"github.com/katalvlaran/ctree/foldtree"
	"github.com/stretchr/testify/require"
)

func buildPath(t *testing.T) (*foldtree.FoldTree, []foldtree.NodeID) {
	t.Helper()
	ft := foldtree.New()
	a := ft.AddNode()
	b := ft.AddNode()
	c := ft.AddNode()
	_, err := ft.AddEdge(a, b)
	require.NoError(t, err)
	_, err = ft.AddEdge(b, c)
	require.NoError(t, err)
	return ft, []foldtree.NodeID{a, b, c}
}

func TestCollapseLeaf(t *testing.T) {
	ft, nodes := buildPath(t)
	a := nodes[0]

	handle, err := ft.Collapse(a)
	require.NoError(t, err)
	require.False(t, ft.IsLive(a))

	require.NoError(t, ft.Uncollapse(handle))
	require.True(t, ft.IsLive(a))
	require.Equal(t, 1, ft.Degree(a))
}

func TestCollapseRejectsNonLeaf(t *testing.T) {
	ft, nodes := buildPath(t)
	b := nodes[1]

	_, err := ft.Collapse(b)
	require.ErrorIs(t, err, foldtree.ErrNotReducible)
}

func TestReduceDegreeTwoNode(t *testing.T) {
	ft, nodes := buildPath(t)
	a, b, c := nodes[0], nodes[1], nodes[2]

	bridge, ea, eb, handle, err := ft.Reduce(b)
	require.NoError(t, err)
	require.False(t, ft.IsLive(b))
	require.ElementsMatch(t, []foldtree.NodeID{a, c}, []foldtree.NodeID{ea, eb})
	require.Equal(t, c, ft.Opposite(bridge, a))

	require.NoError(t, ft.Unreduce(handle))
	require.True(t, ft.IsLive(b))
	require.Equal(t, 2, ft.Degree(b))
	require.Equal(t, 1, ft.Degree(a))
	require.Equal(t, 1, ft.Degree(c))
}

func TestUncollapseRejectsReduceHandle(t *testing.T) {
	ft, nodes := buildPath(t)
	b := nodes[1]

	_, _, _, handle, err := ft.Reduce(b)
	require.NoError(t, err)

	err = ft.Uncollapse(handle)
	require.ErrorIs(t, err, foldtree.ErrBadUncollapse)
}
