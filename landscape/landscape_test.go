package landscape_test

import (
	"testing"

	"github.com/katalvlaran/ctree/contourtree"
	"github.com/katalvlaran/ctree/landscape"
	"github.com/stretchr/testify/require"
)

func buildStar(t *testing.T) *contourtree.ContourTree {
	t.Helper()
	c := contourtree.NewComplex()
	saddle := c.AddVertex(1)
	low := c.AddVertex(0)
	mid := c.AddVertex(2)
	high := c.AddVertex(3)

	_, err := c.AddEdge(saddle, low)
	require.NoError(t, err)
	_, err = c.AddEdge(saddle, mid)
	require.NoError(t, err)
	_, err = c.AddEdge(saddle, high)
	require.NoError(t, err)

	res, err := (contourtree.CarrsAlgorithm{}).Compute(c)
	require.NoError(t, err)
	return res.Tree
}

func TestNewRootsAtChosenNode(t *testing.T) {
	tree := buildStar(t)
	minLeaf := contourtree.MinLeaf(tree)

	lt, err := landscape.New(tree, minLeaf)
	require.NoError(t, err)
	require.Equal(t, minLeaf, lt.Root())
	require.Equal(t, -1, lt.Parent(minLeaf))

	saddleIdx := -1
	for i := 0; i < tree.NumNodes(); i++ {
		if tree.Degree(i) == 3 {
			saddleIdx = i
		}
	}
	require.NotEqual(t, -1, saddleIdx)
	require.Equal(t, minLeaf, lt.Parent(saddleIdx))
	require.Equal(t, landscape.Up, lt.Direction(saddleIdx))
}

func TestPostOrderVisitsChildrenBeforeParent(t *testing.T) {
	tree := buildStar(t)
	minLeaf := contourtree.MinLeaf(tree)
	lt, err := landscape.New(tree, minLeaf)
	require.NoError(t, err)

	order := lt.PostOrder()
	require.Equal(t, lt.Root(), order[len(order)-1])

	position := make(map[int]int, len(order))
	for i, n := range order {
		position[n] = i
	}
	for _, n := range order {
		for _, c := range lt.Children(n) {
			require.Less(t, position[c], position[n])
		}
	}
}

func TestComputeWeightsDefaultToUnitPerArc(t *testing.T) {
	tree := buildStar(t)
	minLeaf := contourtree.MinLeaf(tree)
	lt, err := landscape.New(tree, minLeaf)
	require.NoError(t, err)

	weights := landscape.Compute(lt, nil)
	require.Equal(t, 0.0, weights.NodeWeight(lt.Root()))
	require.Equal(t, float64(lt.NumNodes()-1), weights.TotalWeight(lt.Root()))
}
