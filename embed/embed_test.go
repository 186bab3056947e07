package embed_test

import (
	"testing"

	"github.com/katalvlaran/ctree/contourtree"
	"github.com/katalvlaran/ctree/embed"
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

func TestBuildProducesOneTriangleGroupPerArc(t *testing.T) {
	tree := buildStar(t)
	minLeaf := contourtree.MinLeaf(tree)
	bounds := embed.Rectangle{CenterX: 0, CenterY: 0, Width: 100, Height: 100}

	rl, err := embed.Build(tree, minLeaf, nil, bounds)
	require.NoError(t, err)

	counts := make(map[int]int)
	for _, tri := range rl.Embedding.Triangles {
		counts[tri.Arc]++
	}
	require.Len(t, counts, len(tree.Arcs()))

	for arcIdx, count := range counts {
		from, to := tree.Arcs()[arcIdx].From, tree.Arcs()[arcIdx].To
		child := from
		if rl.Tree.ParentArc(to) == arcIdx {
			child = to
		}
		if rl.Tree.IsLeaf(child) {
			require.Equal(t, 4, count)
		} else {
			require.Equal(t, 8, count)
		}
	}
}

func TestRectangleShrinkPreservesCenter(t *testing.T) {
	r := embed.Rectangle{CenterX: 5, CenterY: 5, Width: 10, Height: 20}
	shrunk := r.Shrink(0.25)
	require.Equal(t, 5.0, shrunk.CenterX)
	require.Equal(t, 5.0, shrunk.CenterY)
	require.InDelta(t, 5.0, shrunk.Width, 1e-9)
	require.InDelta(t, 10.0, shrunk.Height, 1e-9)
}

func TestRectangleSplitterAllocatesProportionally(t *testing.T) {
	rect := embed.Rectangle{CenterX: 0, CenterY: 0, Width: 100, Height: 10}
	splitter := embed.NewRectangleSplitter(rect, true, 4)

	a := splitter.Place(1)
	b := splitter.Place(3)

	require.InDelta(t, 25.0, a.Width, 1e-9)
	require.InDelta(t, 75.0, b.Width, 1e-9)
	require.InDelta(t, 100.0, a.Width+b.Width, 1e-9)
}
