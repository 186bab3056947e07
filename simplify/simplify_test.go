package simplify_test

import (
	"testing"

	"github.com/katalvlaran/ctree/contourtree"
	"github.com/katalvlaran/ctree/internal/graphstore"
	"github.com/katalvlaran/ctree/simplify"
	"github.com/stretchr/testify/require"
)

// buildStar builds a saddle at value 1 with three leaves: a short-lived
// spike at value 1.1 (persistence 0.1), and two long branches at 0 and 5.
func buildStar(t *testing.T) *contourtree.ContourTree {
	t.Helper()
	c := contourtree.NewComplex()
	saddle := c.AddVertex(1)
	spike := c.AddVertex(1.1)
	low := c.AddVertex(0)
	high := c.AddVertex(5)

	_, err := c.AddEdge(saddle, spike)
	require.NoError(t, err)
	_, err = c.AddEdge(saddle, low)
	require.NoError(t, err)
	_, err = c.AddEdge(saddle, high)
	require.NoError(t, err)

	res, err := (contourtree.CarrsAlgorithm{}).Compute(c)
	require.NoError(t, err)
	return res.Tree
}

func TestSimplifyCollapsesLowPersistenceLeaf(t *testing.T) {
	tree := buildStar(t)
	result := simplify.Simplify(tree, simplify.WithThreshold(0.5), simplify.WithPreserveRoots(false))

	require.Equal(t, 2, result.NumNodes())
	require.Len(t, result.Arcs(), 1)
}

func TestSimplifyBelowThresholdNoOp(t *testing.T) {
	tree := buildStar(t)
	result := simplify.Simplify(tree, simplify.WithThreshold(0.01))

	require.Equal(t, 4, result.NumNodes())
}

func TestMaxPersistenceSimplifiesToTrunk(t *testing.T) {
	tree := buildStar(t)
	max := simplify.MaxPersistence(tree)
	require.Greater(t, max, 0.0)

	result := simplify.Simplify(tree, simplify.WithThreshold(max+1), simplify.WithPreserveRoots(false))
	require.LessOrEqual(t, result.NumNodes(), 2)
}

// wengerValues and wengerEdges are the reference twelve-vertex complex
// shared with the contour-tree package's own fixture of the same name.
var wengerValues = []float64{25, 62, 45, 66, 16, 32, 64, 39, 58, 51, 53, 30}

var wengerEdges = [][2]int{
	{0, 1}, {1, 2}, {3, 4}, {4, 5}, {6, 7}, {7, 8}, {9, 10}, {10, 11}, {0, 3},
	{1, 4}, {2, 5}, {3, 6}, {4, 7}, {5, 8}, {6, 9}, {7, 10}, {8, 11}, {0, 4},
	{1, 5}, {3, 7}, {4, 8}, {6, 10}, {7, 11},
}

func buildWenger(t *testing.T) *contourtree.ContourTree {
	t.Helper()
	c := contourtree.NewComplex()
	verts := make([]graphstore.NodeHandle, len(wengerValues))
	for i, v := range wengerValues {
		verts[i] = c.AddVertex(v)
	}
	for _, e := range wengerEdges {
		_, err := c.AddEdge(verts[e[0]], verts[e[1]])
		require.NoError(t, err)
	}

	res, err := (contourtree.CarrsAlgorithm{}).Compute(c)
	require.NoError(t, err)
	return res.Tree
}

// TestSimplifyWengerToTrunk simplifies the reference twelve-vertex complex
// with a threshold above its maximum persistence: only the trunk between
// the global minimum (16) and maximum (66) should remain.
func TestSimplifyWengerToTrunk(t *testing.T) {
	tree := buildWenger(t)
	max := simplify.MaxPersistence(tree)
	require.Greater(t, max, 0.0)

	result := simplify.Simplify(tree, simplify.WithThreshold(max+1), simplify.WithPreserveRoots(false))

	require.Equal(t, 2, result.NumNodes())
	require.Len(t, result.Arcs(), 1)

	values := []float64{result.Value(0), result.Value(1)}
	require.ElementsMatch(t, []float64{16, 66}, values)
}

func TestSimplifyPreservesGlobalRootsByDefault(t *testing.T) {
	tree := buildStar(t)
	max := simplify.MaxPersistence(tree)

	result := simplify.Simplify(tree, simplify.WithThreshold(max+1))

	found0, found5 := false, false
	for i := 0; i < result.NumNodes(); i++ {
		switch result.Node(i).Value {
		case 0:
			found0 = true
		case 5:
			found5 = true
		}
	}
	require.True(t, found0)
	require.True(t, found5)
}
