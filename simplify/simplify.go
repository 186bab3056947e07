// Package simplify reduces a contour tree by repeatedly collapsing its
// least-persistent leaves, where persistence is the absolute difference in
// scalar value between a leaf and the node it is attached to. Leaves are
// processed through a lazy priority queue built on container/heap, the
// same pattern the retrieved graph-algorithms package uses for its
// shortest-path frontier: entries may go stale as the tree changes
// underneath them, so every pop re-validates against the live tree instead
// of trusting the heap's ordering blindly.
package simplify

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/ctree/contourtree"
	"github.com/katalvlaran/ctree/foldtree"
)

// Result is a simplified contour tree: the surviving critical points and
// the members folded into each arc, including every node reduced away
// during simplification. A leaf collapsed during simplification, and any
// members carried on its arc, do not appear in the Result.
type Result struct {
	ids     []contourtree.Member // one per surviving node: its own id/value
	arcs    []contourtree.Arc
	members [][]contourtree.Member
	degree  []int
}

// NumNodes returns the number of surviving nodes.
func (r *Result) NumNodes() int { return len(r.ids) }

// Node returns the surviving node's own member record (original id and value).
func (r *Result) Node(i int) contourtree.Member { return r.ids[i] }

// Arcs returns the simplified tree's arcs, indexed against Node indices.
func (r *Result) Arcs() []contourtree.Arc { return r.arcs }

// Members returns every vertex folded into arc k, in the order collapsed.
func (r *Result) Members(k int) []contourtree.Member { return r.members[k] }

// Degree returns the number of arcs incident to surviving node i.
func (r *Result) Degree(i int) int { return r.degree[i] }

// Value returns the scalar value of surviving node i, so a Result can be
// fed directly into the landscape and embedding packages the same way a
// freshly computed contour tree can.
func (r *Result) Value(i int) float64 { return r.ids[i].Value }

// MaxPersistence returns the greatest persistence among t's leaf arcs, or 0
// for a tree with no arcs. Callers commonly use it to derive a threshold
// that collapses everything but the trunk.
func MaxPersistence(t *contourtree.ContourTree) float64 {
	max := 0.0
	for i := 0; i < t.NumNodes(); i++ {
		if !t.IsLeaf(i) {
			continue
		}
		arcIdx := t.IncidentArcs(i)[0]
		p := leafPersistence(t, i, arcIdx)
		if p > max {
			max = p
		}
	}
	return max
}

func leafPersistence(t *contourtree.ContourTree, node, arcIdx int) float64 {
	a := t.Arcs()[arcIdx]
	other := a.From
	if other == node {
		other = a.To
	}
	return math.Abs(t.Value(node) - t.Value(other))
}

type edgeKey struct{ a, b foldtree.NodeID }

func key(a, b foldtree.NodeID) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

type leafEntry struct {
	node        int
	persistence float64
	index       int // heap.Interface bookkeeping
}

type leafHeap []*leafEntry

func (h leafHeap) Len() int { return len(h) }
func (h leafHeap) Less(i, j int) bool {
	// Max-heap on 1/(persistence+1): smallest persistence pops first.
	return 1/(h[i].persistence+1) > 1/(h[j].persistence+1)
}
func (h leafHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index, h[j].index = i, j
}
func (h *leafHeap) Push(x any) {
	e := x.(*leafEntry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *leafHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// Simplify collapses t's least-persistent leaves, in order, until no
// remaining leaf has persistence below opts.threshold (or only the trunk
// remains). If WithPreserveRoots is set (the default), the global minimum
// and maximum leaves are never collapsed regardless of persistence.
func Simplify(t *contourtree.ContourTree, opts ...Option) *Result {
	options := DefaultOptions(0)
	for _, o := range opts {
		o(&options)
	}

	n := t.NumNodes()
	ft := foldtree.New()
	ftNodes := make([]foldtree.NodeID, n)
	for i := 0; i < n; i++ {
		ftNodes[i] = ft.AddNode()
	}
	for _, a := range t.Arcs() {
		if _, err := ft.AddEdge(ftNodes[a.From], ftNodes[a.To]); err != nil {
			panic(err)
		}
	}

	carried := make(map[edgeKey][]contourtree.Member, len(t.Arcs()))
	for i, a := range t.Arcs() {
		members := append([]contourtree.Member(nil), t.Members(i)...)
		carried[key(ftNodes[a.From], ftNodes[a.To])] = members
	}

	protected := make(map[int]bool)
	if options.preserveRoots && n > 1 {
		protected[contourtree.MinLeaf(t)] = true
		protected[contourtree.MaxLeaf(t)] = true
	}

	h := &leafHeap{}
	heap.Init(h)
	for i := 0; i < n; i++ {
		if t.IsLeaf(i) && !protected[i] {
			p := leafPersistence(t, i, t.IncidentArcs(i)[0])
			heap.Push(h, &leafEntry{node: i, persistence: p})
		}
	}

	liveCount := n
	for h.Len() > 0 && liveCount > 2 {
		e := heap.Pop(h).(*leafEntry)
		if e.persistence >= options.threshold {
			break
		}
		node := ftNodes[e.node]
		if !ft.IsLive(node) || ft.Degree(node) != 1 {
			continue // stale entry left over from an earlier fold
		}

		neighbor := ft.Opposite(ft.Edges(node)[0], node)
		if _, err := ft.Collapse(node); err != nil {
			continue
		}
		liveCount--

		// Drop the edge's carried members: a collapsed leaf's history,
		// including any regular vertices folded into its arc, disappears
		// along with it.
		delete(carried, key(node, neighbor))

		if ft.Degree(neighbor) == 1 {
			// neighbor became a new leaf: enqueue it for further collapse
			origIdx := indexOf(ftNodes, neighbor)
			if origIdx >= 0 && !protected[origIdx] {
				newNeighbor := ft.Opposite(ft.Edges(neighbor)[0], neighbor)
				p := math.Abs(valueOf(t, ftNodes, neighbor) - valueOf(t, ftNodes, newNeighbor))
				heap.Push(h, &leafEntry{node: origIdx, persistence: p})
			}
		} else if ft.Degree(neighbor) == 2 {
			_, a, b, _, err := ft.Reduce(neighbor)
			if err == nil {
				liveCount--
				va := carried[key(a, neighbor)]
				vb := carried[key(neighbor, b)]
				merged := make([]contourtree.Member, 0, len(va)+len(vb)+1)
				merged = append(merged, va...)
				origIdx := indexOf(ftNodes, neighbor)
				merged = append(merged, contourtree.Member{ID: t.NodeID(origIdx), Value: t.Value(origIdx)})
				merged = append(merged, vb...)
				delete(carried, key(a, neighbor))
				delete(carried, key(neighbor, b))
				carried[key(a, b)] = merged
			}
		}
	}

	return buildResult(t, ft, ftNodes, carried)
}

// buildResult walks the surviving (live) fold-tree nodes and assembles a
// dense Result: nodes renumbered to [0, numSurviving), arcs reindexed
// against that numbering, and each arc's carried members attached.
func buildResult(
	t *contourtree.ContourTree,
	ft *foldtree.FoldTree,
	ftNodes []foldtree.NodeID,
	carried map[edgeKey][]contourtree.Member,
) *Result {
	newIndex := make(map[foldtree.NodeID]int)
	var ids []contourtree.Member
	for i, fn := range ftNodes {
		if !ft.IsLive(fn) {
			continue
		}
		newIndex[fn] = len(ids)
		ids = append(ids, contourtree.Member{ID: t.NodeID(i), Value: t.Value(i)})
	}

	var arcs []contourtree.Arc
	var members [][]contourtree.Member
	degree := make([]int, len(ids))
	seen := make(map[edgeKey]bool)
	for k, ms := range carried {
		if seen[k] {
			continue
		}
		fromIdx, okA := newIndex[k.a]
		toIdx, okB := newIndex[k.b]
		if !okA || !okB {
			continue // one endpoint was itself collapsed away without being re-keyed
		}
		seen[k] = true
		arcs = append(arcs, contourtree.Arc{From: fromIdx, To: toIdx})
		members = append(members, ms)
		degree[fromIdx]++
		degree[toIdx]++
	}

	return &Result{ids: ids, arcs: arcs, members: members, degree: degree}
}

func valueOf(t *contourtree.ContourTree, ftNodes []foldtree.NodeID, n foldtree.NodeID) float64 {
	return t.Value(indexOf(ftNodes, n))
}

func indexOf(ftNodes []foldtree.NodeID, n foldtree.NodeID) int {
	for i, v := range ftNodes {
		if v == n {
			return i
		}
	}
	return -1
}

