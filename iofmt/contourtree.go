package iofmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TreeMember is a vertex folded into a contour-tree arc, as recorded in a
// contour-tree file's optional trailing id/value pairs.
type TreeMember struct {
	ID    int
	Value float64
}

// TreeArc is one arc of a parsed contour-tree file.
type TreeArc struct {
	From, To int
	Members  []TreeMember
}

// ContourTreeFile is the parsed contents of a contour-tree file: node ids
// and values, followed by arcs.
type ContourTreeFile struct {
	NodeIDs []int
	Values  []float64
	Arcs    []TreeArc
}

// ErrSelfEdge is returned by ReadContourTree for an arc whose endpoints are
// equal. Unlike the plain edge format, a contour-tree file treats a
// self-edge as a hard parse error since a tree can never contain one.
var ErrSelfEdge = errors.New("iofmt: contour tree file contains a self-edge")

// ReadContourTree parses a contour-tree file: a node count, that many
// "id value" lines, then arc lines of the form "from to [id value]...".
func ReadContourTree(r io.Reader) (*ContourTreeFile, error) {
	scanner := bufio.NewScanner(r)
	line := 0
	nextLine := func() (string, bool) {
		for scanner.Scan() {
			line++
			text := strings.TrimSpace(scanner.Text())
			if text != "" {
				return text, true
			}
		}
		return "", false
	}

	header, ok := nextLine()
	if !ok {
		return nil, fmt.Errorf("iofmt: contour tree file: missing node count")
	}
	n, err := strconv.Atoi(header)
	if err != nil {
		return nil, fmt.Errorf("iofmt: contour tree file line %d: %w", line, err)
	}

	file := &ContourTreeFile{NodeIDs: make([]int, 0, n), Values: make([]float64, 0, n)}
	for i := 0; i < n; i++ {
		text, ok := nextLine()
		if !ok {
			return nil, fmt.Errorf("iofmt: contour tree file: expected %d node lines, got %d", n, i)
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("iofmt: contour tree file line %d: expected id and value", line)
		}
		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("iofmt: contour tree file line %d: %w", line, err)
		}
		val, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("iofmt: contour tree file line %d: %w", line, err)
		}
		file.NodeIDs = append(file.NodeIDs, id)
		file.Values = append(file.Values, val)
	}

	for {
		text, ok := nextLine()
		if !ok {
			break
		}
		fields := strings.Fields(text)
		if len(fields) < 2 || len(fields)%2 != 0 {
			return nil, fmt.Errorf("iofmt: contour tree file line %d: malformed arc line", line)
		}
		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("iofmt: contour tree file line %d: %w", line, err)
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("iofmt: contour tree file line %d: %w", line, err)
		}
		if from == to {
			return nil, fmt.Errorf("iofmt: contour tree file line %d: %w", line, ErrSelfEdge)
		}
		arc := TreeArc{From: from, To: to}
		for i := 2; i < len(fields); i += 2 {
			mid, err := strconv.Atoi(fields[i])
			if err != nil {
				return nil, fmt.Errorf("iofmt: contour tree file line %d: %w", line, err)
			}
			mval, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("iofmt: contour tree file line %d: %w", line, err)
			}
			arc.Members = append(arc.Members, TreeMember{ID: mid, Value: mval})
		}
		file.Arcs = append(file.Arcs, arc)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("iofmt: reading contour tree file: %w", err)
	}
	return file, nil
}

// WriteContourTree writes f in the format ReadContourTree parses.
func WriteContourTree(w io.Writer, f *ContourTreeFile) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(f.NodeIDs)); err != nil {
		return fmt.Errorf("iofmt: writing contour tree file: %w", err)
	}
	for i, id := range f.NodeIDs {
		if _, err := fmt.Fprintf(bw, "%d\t%g\n", id, f.Values[i]); err != nil {
			return fmt.Errorf("iofmt: writing contour tree file: %w", err)
		}
	}
	for _, a := range f.Arcs {
		if a.From == a.To {
			return fmt.Errorf("iofmt: writing contour tree file: %w", ErrSelfEdge)
		}
		if _, err := fmt.Fprintf(bw, "%d\t%d", a.From, a.To); err != nil {
			return fmt.Errorf("iofmt: writing contour tree file: %w", err)
		}
		for _, m := range a.Members {
			if _, err := fmt.Fprintf(bw, "\t%d\t%g", m.ID, m.Value); err != nil {
				return fmt.Errorf("iofmt: writing contour tree file: %w", err)
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return fmt.Errorf("iofmt: writing contour tree file: %w", err)
		}
	}
	return bw.Flush()
}
