package iofmt

import (
	"bufio"
	"fmt"
	"io"
)

// JoinSplitArc is a single directed arc of a join or split tree.
type JoinSplitArc struct {
	From, To int
}

// WriteJoinSplitTree writes a join or split tree file: a node count, then
// "id value" lines, then plain "from to" arc lines with no member data.
// Unlike a contour tree's own nodes, join/split tree nodes carry no value
// of their own, so values are looked up from the originating complex by
// node id.
func WriteJoinSplitTree(w io.Writer, nodeIDs []int, complexValues []float64, arcs []JoinSplitArc) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(nodeIDs)); err != nil {
		return fmt.Errorf("iofmt: writing join/split tree file: %w", err)
	}
	for _, id := range nodeIDs {
		if id < 0 || id >= len(complexValues) {
			return fmt.Errorf("iofmt: writing join/split tree file: id %d out of range of complex values", id)
		}
		if _, err := fmt.Fprintf(bw, "%d\t%g\n", id, complexValues[id]); err != nil {
			return fmt.Errorf("iofmt: writing join/split tree file: %w", err)
		}
	}
	for _, a := range arcs {
		if _, err := fmt.Fprintf(bw, "%d\t%d\n", a.From, a.To); err != nil {
			return fmt.Errorf("iofmt: writing join/split tree file: %w", err)
		}
	}
	return bw.Flush()
}

// ReadJoinSplitTree parses a join or split tree file written by
// WriteJoinSplitTree.
func ReadJoinSplitTree(r io.Reader) (nodeIDs []int, values []float64, arcs []JoinSplitArc, err error) {
	file, err := ReadContourTree(r)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, a := range file.Arcs {
		arcs = append(arcs, JoinSplitArc{From: a.From, To: a.To})
	}
	return file.NodeIDs, file.Values, arcs, nil
}
