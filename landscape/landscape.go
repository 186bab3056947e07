// Package landscape roots a (typically simplified) contour tree at a chosen
// node and orients every arc as going "up" or "down" from its parent,
// matching the rooted tree a landscape view needs before it can be laid
// out as nested rectangles.
package landscape

import (
	"errors"

	"github.com/katalvlaran/ctree/contourtree"
)

// ErrEmptyTree is returned by New for a tree with no nodes.
var ErrEmptyTree = errors.New("landscape: tree has no nodes")

// ScalarTree is the minimal surface a contour tree or simplified result
// needs to expose to be rooted into a landscape tree.
type ScalarTree interface {
	NumNodes() int
	Value(i int) float64
	Arcs() []contourtree.Arc
	Degree(i int) int
}

// Direction describes which way an arc climbs away from its parent.
type Direction int

const (
	// Up means the child's value is greater than or equal to its parent's.
	Up Direction = iota
	// Down means the child's value is less than its parent's.
	Down
)

// Tree is a contour tree rooted at a chosen node via breadth-first
// orientation: every node except the root has exactly one parent arc, and
// every arc carries a Direction relative to that parent.
type Tree struct {
	root       int
	parent     []int // parent[i] = parent node index, -1 for root
	parentArc  []int // parentArc[i] = index into Arcs(), -1 for root
	direction  []Direction
	children   [][]int // children[i] = child node indices, in BFS discovery order
	depth      []int
	arcs       []contourtree.Arc
	values     []float64
}

// New roots src at rootNode using a breadth-first traversal. rootNode must
// be a valid node index into src; the zero-degree single-node tree is
// rooted at node 0 trivially.
func New(src ScalarTree, rootNode int) (*Tree, error) {
	n := src.NumNodes()
	if n == 0 {
		return nil, ErrEmptyTree
	}

	adj := make([][]struct{ arc, node int }, n)
	arcs := src.Arcs()
	for idx, a := range arcs {
		adj[a.From] = append(adj[a.From], struct{ arc, node int }{idx, a.To})
		adj[a.To] = append(adj[a.To], struct{ arc, node int }{idx, a.From})
	}

	parent := make([]int, n)
	parentArc := make([]int, n)
	direction := make([]Direction, n)
	depth := make([]int, n)
	children := make([][]int, n)
	visited := make([]bool, n)
	for i := range parent {
		parent[i] = -1
		parentArc[i] = -1
	}

	queue := []int{rootNode}
	visited[rootNode] = true
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, e := range adj[v] {
			if visited[e.node] {
				continue
			}
			visited[e.node] = true
			parent[e.node] = v
			parentArc[e.node] = e.arc
			depth[e.node] = depth[v] + 1
			if src.Value(e.node) >= src.Value(v) {
				direction[e.node] = Up
			} else {
				direction[e.node] = Down
			}
			children[v] = append(children[v], e.node)
			queue = append(queue, e.node)
		}
	}

	values := make([]float64, n)
	for i := 0; i < n; i++ {
		values[i] = src.Value(i)
	}

	return &Tree{
		root:      rootNode,
		parent:    parent,
		parentArc: parentArc,
		direction: direction,
		children:  children,
		depth:     depth,
		arcs:      arcs,
		values:    values,
	}, nil
}

// Root returns the root node index.
func (t *Tree) Root() int { return t.root }

// NumNodes returns the node count.
func (t *Tree) NumNodes() int { return len(t.values) }

// Value returns node i's scalar value.
func (t *Tree) Value(i int) float64 { return t.values[i] }

// Parent returns node i's parent, or -1 if i is the root.
func (t *Tree) Parent(i int) int { return t.parent[i] }

// ParentArc returns the arc index (into the original tree's Arcs()) that
// connects node i to its parent, or -1 if i is the root.
func (t *Tree) ParentArc(i int) int { return t.parentArc[i] }

// Direction returns which way the arc to i's parent climbs.
func (t *Tree) Direction(i int) Direction { return t.direction[i] }

// Children returns node i's children in BFS discovery order.
func (t *Tree) Children(i int) []int { return t.children[i] }

// Depth returns node i's breadth-first distance from the root.
func (t *Tree) Depth(i int) int { return t.depth[i] }

// IsLeaf reports whether node i has no children.
func (t *Tree) IsLeaf(i int) bool { return len(t.children[i]) == 0 }

// PostOrder returns every node index in post-order (children before
// parents), the traversal Compute needs to propagate weights
// upward from the leaves.
func (t *Tree) PostOrder() []int {
	order := make([]int, 0, len(t.values))
	type frame struct {
		node    int
		visited bool
	}
	stack := []frame{{node: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.visited {
			order = append(order, f.node)
			continue
		}
		stack = append(stack, frame{node: f.node, visited: true})
		for _, c := range t.children[f.node] {
			stack = append(stack, frame{node: c})
		}
	}
	return order
}
