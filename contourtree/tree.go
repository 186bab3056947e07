package contourtree

import (
	"github.com/katalvlaran/ctree/internal/graphstore"
	"github.com/katalvlaran/ctree/internal/order"
)

// Member records a vertex of the original complex that was folded away
// during regular-node elimination, together with its scalar value, so the
// arc it was absorbed into can still answer questions about the portion of
// the contour it represents.
type Member struct {
	ID    graphstore.NodeHandle
	Value float64
}

// ContourTree is the result of Carr's algorithm: a tree whose nodes are the
// critical points of the original complex (local minima, local maxima, and
// saddles) and whose arcs each carry the members folded into them.
type ContourTree struct {
	ids     []graphstore.NodeHandle // ids[i] is the original vertex represented by tree node i
	values  []float64
	arcs    []Arc
	members [][]Member // members[i] corresponds to arcs[i]
	adj     [][]int    // adj[node] = indices into arcs incident to node
}

// NumNodes returns the number of critical-point nodes.
func (t *ContourTree) NumNodes() int { return len(t.ids) }

// NodeID returns the original complex vertex handle for tree node i.
func (t *ContourTree) NodeID(i int) graphstore.NodeHandle { return t.ids[i] }

// Value returns the scalar value of tree node i.
func (t *ContourTree) Value(i int) float64 { return t.values[i] }

// Arcs returns every arc of the tree.
func (t *ContourTree) Arcs() []Arc { return t.arcs }

// Members returns the vertices folded into arc index k.
func (t *ContourTree) Members(k int) []Member { return t.members[k] }

// Degree returns the number of arcs incident to node i.
func (t *ContourTree) Degree(i int) int { return len(t.adj[i]) }

// IncidentArcs returns the indices into Arcs() of the arcs touching node i.
func (t *ContourTree) IncidentArcs(i int) []int { return t.adj[i] }

// IsLeaf reports whether node i has exactly one incident arc.
func (t *ContourTree) IsLeaf(i int) bool { return len(t.adj[i]) == 1 }

// MinLeaf returns the index of the leaf node with the smallest value.
// It returns -1 for an empty tree.
func MinLeaf(t *ContourTree) int { return extremalLeaf(t, func(a, b float64) bool { return a < b }) }

// MaxLeaf returns the index of the leaf node with the largest value.
func MaxLeaf(t *ContourTree) int { return extremalLeaf(t, func(a, b float64) bool { return a > b }) }

func extremalLeaf(t *ContourTree, better func(a, b float64) bool) int {
	best := -1
	for i := 0; i < t.NumNodes(); i++ {
		if !t.IsLeaf(i) && t.NumNodes() > 1 {
			continue
		}
		if best == -1 || better(t.values[i], t.values[best]) {
			best = i
		}
	}
	return best
}

// buildContourTree folds the raw (degree-2-inclusive) spanning tree over
// all original vertices down to a tree over critical points only, carrying
// every eliminated vertex forward as a Member on the arc that absorbs it.
// A degree-2 vertex is only folded when it is regular, i.e. one neighbor
// comes before it in ord and the other comes after: a degree-2 vertex whose
// neighbors are both above or both below it is a genuine critical point
// (isRegularNode in the originating construction) and must survive.
func buildContourTree(verts []graphstore.NodeHandle, values []float64, ord *order.TotalOrder, rawArcs []Arc) *ContourTree {
	n := len(verts)
	adj := make([]map[int]bool, n)
	for i := range adj {
		adj[i] = map[int]bool{}
	}
	for _, a := range rawArcs {
		adj[a.From][a.To] = true
		adj[a.To][a.From] = true
	}

	type edgeKey struct{ a, b int }
	key := func(a, b int) edgeKey {
		if a > b {
			a, b = b, a
		}
		return edgeKey{a, b}
	}
	carried := make(map[edgeKey][]Member)
	for _, a := range rawArcs {
		carried[key(a.From, a.To)] = nil
	}

	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}

	for v := 0; v < n; v++ {
		if len(adj[v]) != 2 {
			continue
		}
		var a, b int
		i := 0
		for x := range adj[v] {
			if i == 0 {
				a = x
			} else {
				b = x
			}
			i++
		}

		if !((ord.Less(a, v) && ord.Less(v, b)) || (ord.Less(b, v) && ord.Less(v, a))) {
			continue // a and b don't straddle v: v is a genuine critical point
		}

		va := carried[key(v, a)]
		vb := carried[key(v, b)]
		merged := make([]Member, 0, len(va)+len(vb)+1)
		merged = append(merged, va...)
		merged = append(merged, Member{ID: verts[v], Value: values[v]})
		merged = append(merged, vb...)

		delete(carried, key(v, a))
		delete(carried, key(v, b))
		delete(adj[v], a)
		delete(adj[v], b)
		delete(adj[a], v)
		delete(adj[b], v)
		adj[a][b] = true
		adj[b][a] = true
		carried[key(a, b)] = merged
		alive[v] = false
	}

	// Renumber surviving vertices into a dense tree node index space.
	newIndex := make([]int, n)
	for i := range newIndex {
		newIndex[i] = -1
	}
	var ids []graphstore.NodeHandle
	var vals []float64
	for v := 0; v < n; v++ {
		if !alive[v] {
			continue
		}
		newIndex[v] = len(ids)
		ids = append(ids, verts[v])
		vals = append(vals, values[v])
	}

	seenEdge := map[edgeKey]bool{}
	var arcs []Arc
	var members [][]Member
	treeAdj := make([][]int, len(ids))
	for k, ms := range carried {
		if seenEdge[k] {
			continue
		}
		seenEdge[k] = true
		from, to := newIndex[k.a], newIndex[k.b]
		idx := len(arcs)
		arcs = append(arcs, Arc{From: from, To: to})
		members = append(members, ms)
		treeAdj[from] = append(treeAdj[from], idx)
		treeAdj[to] = append(treeAdj[to], idx)
	}

	return &ContourTree{ids: ids, values: vals, arcs: arcs, members: members, adj: treeAdj}
}
