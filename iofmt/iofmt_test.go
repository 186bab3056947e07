package iofmt_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/ctree/iofmt"
	"github.com/stretchr/testify/require"
)

func TestReadVertexValues(t *testing.T) {
	values, err := iofmt.ReadVertexValues(strings.NewReader("1.5\n2\n\n3.25\n"))
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 2, 3.25}, values)
}

func TestReadEdgesDropsSelfLoopsAndDuplicates(t *testing.T) {
	edges, err := iofmt.ReadEdges(strings.NewReader("0 1\n1 1\n1 0\n2 3\n"))
	require.NoError(t, err)
	require.Len(t, edges, 2)
}

func TestContourTreeRoundTrip(t *testing.T) {
	var buf strings.Builder
	file := &iofmt.ContourTreeFile{
		NodeIDs: []int{0, 1, 2},
		Values:  []float64{0, 1, 2},
		Arcs: []iofmt.TreeArc{
			{From: 0, To: 1, Members: []iofmt.TreeMember{{ID: 9, Value: 0.5}}},
			{From: 1, To: 2},
		},
	}
	require.NoError(t, iofmt.WriteContourTree(&buf, file))

	parsed, err := iofmt.ReadContourTree(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, file.NodeIDs, parsed.NodeIDs)
	require.Equal(t, file.Values, parsed.Values)
	require.Len(t, parsed.Arcs, 2)
	require.Equal(t, []iofmt.TreeMember{{ID: 9, Value: 0.5}}, parsed.Arcs[0].Members)
}

func TestContourTreeRejectsSelfEdge(t *testing.T) {
	text := "2\n0\t0\n1\t1\n0\t0\n"
	_, err := iofmt.ReadContourTree(strings.NewReader(text))
	require.ErrorIs(t, err, iofmt.ErrSelfEdge)
}

func TestWeightMapDefaultsMissingIDToOne(t *testing.T) {
	weights, err := iofmt.ReadWeightMap(strings.NewReader("0 2.5\n"))
	require.NoError(t, err)
	require.Equal(t, 2.5, iofmt.WeightFor(weights, 0))
	require.Equal(t, 1.0, iofmt.WeightFor(weights, 99))
}

func TestColorMapErrorsOnMissingID(t *testing.T) {
	colors, err := iofmt.ReadColorMap(strings.NewReader("0 16711680\n"))
	require.NoError(t, err)

	_, err = iofmt.ColorFor(colors, 99)
	require.ErrorIs(t, err, iofmt.ErrUnknownColorID)
}

func TestWriteJoinSplitTreeLooksUpValuesFromComplex(t *testing.T) {
	var buf strings.Builder
	complexValues := []float64{10, 20, 30}
	err := iofmt.WriteJoinSplitTree(&buf, []int{0, 1, 2}, complexValues, []iofmt.JoinSplitArc{{From: 0, To: 1}})
	require.NoError(t, err)

	ids, values, arcs, err := iofmt.ReadJoinSplitTree(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, ids)
	require.Equal(t, []float64{10, 20, 30}, values)
	require.Equal(t, []iofmt.JoinSplitArc{{From: 0, To: 1}}, arcs)
}
