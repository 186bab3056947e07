// Package contourtree builds and queries contour trees, join trees, and
// split trees of a scalar function sampled on the vertices of a 1-skeleton
// (an undirected graph). The construction follows Carr, Snoeyink and Axen's
// join/split sweep-and-merge algorithm.
package contourtree

import (
	"errors"

	"github.com/katalvlaran/ctree/internal/graphstore"
)

// Sentinel errors.
var (
	ErrDisconnected = errors.New("contourtree: input complex is not connected")
	ErrEmptyComplex = errors.New("contourtree: complex has no vertices")
)

// Complex is a scalar function sampled on the vertices of an undirected
// 1-skeleton: every vertex carries a float64 value, every edge is a plain
// adjacency with no weight of its own.
type Complex struct {
	graph  *graphstore.Graph
	values *graphstore.NodeMap[float64]
}

// NewComplex returns an empty complex.
func NewComplex() *Complex {
	g := graphstore.New()
	return &Complex{graph: g, values: graphstore.NewNodeMap[float64](g)}
}

// AddVertex adds a vertex with the given scalar value and returns its handle.
func (c *Complex) AddVertex(value float64) graphstore.NodeHandle {
	h := c.graph.AddNode()
	c.values.Set(h, value)
	return h
}

// AddEdge connects two vertices. Self-loops and duplicate edges are
// rejected by the underlying graph store.
func (c *Complex) AddEdge(a, b graphstore.NodeHandle) (graphstore.EdgeHandle, error) {
	return c.graph.AddEdge(a, b)
}

// Value returns the scalar value at v.
func (c *Complex) Value(v graphstore.NodeHandle) float64 { return c.values.Get(v) }

// NumVertices returns the vertex count.
func (c *Complex) NumVertices() int { return c.graph.NodeCount() }

// Vertices returns every vertex handle in allocation order.
func (c *Complex) Vertices() []graphstore.NodeHandle { return c.graph.Nodes() }

// Neighbors returns the vertices adjacent to v.
func (c *Complex) Neighbors(v graphstore.NodeHandle) ([]graphstore.NodeHandle, error) {
	edges, err := c.graph.Neighbors(v)
	if err != nil {
		return nil, err
	}
	out := make([]graphstore.NodeHandle, 0, len(edges))
	for _, e := range edges {
		other, err := c.graph.Other(e, v)
		if err != nil {
			return nil, err
		}
		out = append(out, other)
	}
	return out, nil
}

// IsConnected reports whether the complex's 1-skeleton is a single
// connected component. An empty complex is trivially connected. This
// mirrors the pre-flight check the command-line tool runs before
// attempting to build a contour tree.
func (c *Complex) IsConnected() bool {
	verts := c.graph.Nodes()
	if len(verts) <= 1 {
		return true
	}

	visited := make(map[graphstore.NodeHandle]bool, len(verts))
	stack := []graphstore.NodeHandle{verts[0]}
	visited[verts[0]] = true
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		neighbors, err := c.Neighbors(v)
		if err != nil {
			continue
		}
		for _, n := range neighbors {
			if !visited[n] {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return len(visited) == len(verts)
}
