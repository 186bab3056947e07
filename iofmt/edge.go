package iofmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Edge is a plain (source, target) pair of vertex indices.
type Edge struct {
	From, To int
}

// ReadEdges reads "from to" pairs, one per line. Self-edges are silently
// dropped and duplicate edges (in either direction) are coalesced, since
// the plain edge format carries no information that would distinguish a
// repeated edge from a typo.
func ReadEdges(r io.Reader) ([]Edge, error) {
	scanner := bufio.NewScanner(r)
	seen := make(map[[2]int]bool)
	var edges []Edge
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("iofmt: edge file line %d: expected 2 fields, got %d", line, len(fields))
		}
		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("iofmt: edge file line %d: %w", line, err)
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("iofmt: edge file line %d: %w", line, err)
		}
		if from == to {
			continue
		}
		key := [2]int{from, to}
		if from > to {
			key = [2]int{to, from}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		edges = append(edges, Edge{From: from, To: to})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("iofmt: reading edge file: %w", err)
	}
	return edges, nil
}

// WriteEdges writes "from to" pairs, one per line.
func WriteEdges(w io.Writer, edges []Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d\t%d\n", e.From, e.To); err != nil {
			return fmt.Errorf("iofmt: writing edge file: %w", err)
		}
	}
	return bw.Flush()
}
