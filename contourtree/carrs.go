package contourtree

import (
	"sort"

	"github.com/katalvlaran/ctree/internal/dsu"
	"github.com/katalvlaran/ctree/internal/graphstore"
	"github.com/katalvlaran/ctree/internal/order"
)

// Arc is a directed edge of a join tree or split tree, indexed by vertex
// position in the complex's Vertices() slice rather than by handle, so the
// sweep algorithms below can work over plain integers.
type Arc struct {
	From int
	To   int
}

// CarrsAlgorithm runs the join/split sweep-and-merge construction described
// in Carr, Snoeyink and Axen's "Computing contour trees in all dimensions".
// It holds no state between calls; a value receiver would do, but the
// struct exists so call sites read as selecting an algorithm, matching the
// naming of the originating construction.
type CarrsAlgorithm struct {
	// CopyJoinSplitTrees retains the join and split tree arcs on the
	// returned Result instead of discarding them once the contour tree is
	// built, mirroring setCopyJoinSplitTrees in the original tool.
	CopyJoinSplitTrees bool
}

// Result is the output of CarrsAlgorithm.Compute.
type Result struct {
	Tree       *ContourTree
	JoinTree   []Arc // nil unless CopyJoinSplitTrees is set
	SplitTree  []Arc // nil unless CopyJoinSplitTrees is set
}

// Compute builds the contour tree of c. It returns ErrEmptyComplex for a
// zero-vertex complex and ErrDisconnected if c's 1-skeleton is not a single
// component, matching the command-line tool's pre-flight check.
func (a CarrsAlgorithm) Compute(c *Complex) (*Result, error) {
	verts := c.Vertices()
	n := len(verts)
	if n == 0 {
		return nil, ErrEmptyComplex
	}
	if !c.IsConnected() {
		return nil, ErrDisconnected
	}

	index := make(map[graphstore.NodeHandle]int, n)
	values := make([]float64, n)
	for i, v := range verts {
		index[v] = i
		values[i] = c.Value(v)
	}

	neighborsOf := func(i int) []int {
		nbrs, err := c.Neighbors(verts[i])
		if err != nil {
			panic(err)
		}
		out := make([]int, len(nbrs))
		for j, nb := range nbrs {
			out[j] = index[nb]
		}
		return out
	}

	ord := order.Compute(values)
	joinArcs := a.computeJoinTree(n, ord, neighborsOf)
	splitArcs := a.computeSplitTree(n, ord, neighborsOf)

	rawArcs := mergeJoinSplit(n, joinArcs, splitArcs)
	tree := buildContourTree(verts, values, ord, rawArcs)

	res := &Result{Tree: tree}
	if a.CopyJoinSplitTrees {
		res.JoinTree = joinArcs
		res.SplitTree = splitArcs
	}
	return res, nil
}

// computeJoinTree sweeps vertices in ascending order, merging each newly
// visited vertex with the already-processed components reachable from its
// neighbors. Every merge adds a join arc from the vertex being swept to the
// merged component's current leader (its highest-valued vertex processed so
// far), matching computeJoinTree's addArc(vi, vk) in the original
// construction.
func (a CarrsAlgorithm) computeJoinTree(n int, ord *order.TotalOrder, neighborsOf func(int) []int) []Arc {
	return sweepMerge(n, ord, neighborsOf)
}

// computeSplitTree is the join-tree sweep run over the reversed order,
// which is exactly the join tree of -f; its arcs point from the vertex
// being swept up to the leader (lowest vertex swept so far) of the higher
// component it merges into.
func (a CarrsAlgorithm) computeSplitTree(n int, ord *order.TotalOrder, neighborsOf func(int) []int) []Arc {
	return sweepMerge(n, ord.Reverse(), neighborsOf)
}

func sweepMerge(n int, ord *order.TotalOrder, neighborsOf func(int) []int) []Arc {
	f := dsu.New(n, ord)
	leader := make([]int, n)
	for i := range leader {
		leader[i] = i
	}
	processed := make([]bool, n)
	var arcs []Arc

	for pos := 0; pos < n; pos++ {
		v := ord.AtPosition(pos)

		seen := map[int]bool{}
		for _, u := range neighborsOf(v) {
			if !processed[u] {
				continue
			}
			seen[f.Find(u)] = true
		}

		roots := make([]int, 0, len(seen))
		for r := range seen {
			roots = append(roots, r)
		}
		sort.Slice(roots, func(i, j int) bool {
			return ord.Less(leader[roots[i]], leader[roots[j]])
		})

		vRoot := f.Find(v)
		for _, r := range roots {
			w := leader[r]
			arcs = append(arcs, Arc{From: v, To: w})
			vRoot = f.Union(r, vRoot)
			leader[vRoot] = v
		}
		if len(roots) == 0 {
			leader[vRoot] = v
		}
		processed[v] = true
	}
	return arcs
}

// directedTree is a mutable directed view of a join or split tree, carrying
// both out-arcs and in-arcs per node so mergeJoinSplit can answer the same
// outDegree/getFirstInArc/getFirstOutArc queries contour_tree.h's
// computeMergeTree and reduceNode use.
type directedTree struct {
	out [][]int // out[v] = targets of arcs whose source is v
	in  [][]int // in[v] = sources of arcs whose target is v
}

func newDirectedTree(n int, arcs []Arc) *directedTree {
	t := &directedTree{out: make([][]int, n), in: make([][]int, n)}
	for _, a := range arcs {
		t.addArc(a.From, a.To)
	}
	return t
}

func (t *directedTree) addArc(from, to int) {
	t.out[from] = append(t.out[from], to)
	t.in[to] = append(t.in[to], from)
}

func (t *directedTree) outDegree(v int) int { return len(t.out[v]) }

func removeInt(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// removeNode deletes v and every arc touching it, mirroring
// JoinSplitTree::removeNode.
func (t *directedTree) removeNode(v int) {
	for _, to := range t.out[v] {
		t.in[to] = removeInt(t.in[to], v)
	}
	for _, from := range t.in[v] {
		t.out[from] = removeInt(t.out[from], v)
	}
	t.out[v] = nil
	t.in[v] = nil
}

// reduceNode removes v, bridging its parent (the source of its one
// remaining incoming arc) directly to its child (the target of its one
// remaining outgoing arc), mirroring contour_tree.h's reduceNode.
func (t *directedTree) reduceNode(v int) {
	if len(t.in[v]) == 0 {
		t.removeNode(v)
		return
	}
	parent := t.in[v][0]
	child := t.out[v][0]
	t.removeNode(v)
	t.addArc(parent, child)
}

// mergeJoinSplit reduces the join and split trees to the raw contour tree:
// a spanning tree over all n original vertices in which degree-2 vertices
// have not yet been folded away. This ports computeMergeTree directly: a
// vertex qualifies once the sum of its join-tree and split-tree *out*
// degree (not undirected degree) reaches 1, since join and split arcs each
// point from the vertex being swept to the leader it merges into, so a
// vertex with combined out-degree 1 has exactly one tree left pointing
// anywhere from it and is ready to be folded into the raw tree.
func mergeJoinSplit(n int, joinArcs, splitArcs []Arc) []Arc {
	jt := newDirectedTree(n, joinArcs)
	st := newDirectedTree(n, splitArcs)

	degreeSum := func(v int) int { return jt.outDegree(v) + st.outDegree(v) }

	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if degreeSum(v) == 1 {
			queue = append(queue, v)
		}
	}

	arcs := make([]Arc, 0, n-1)
	remaining := n
	for head := 0; head < len(queue) && remaining > 1; head++ {
		vi := queue[head]
		if degreeSum(vi) != 1 {
			continue // stale: degree changed since vi was queued
		}

		var vk int
		if jt.outDegree(vi) == 0 {
			vk = jt.in[vi][0]
			jt.removeNode(vi)
			st.reduceNode(vi)
		} else {
			vk = st.in[vi][0]
			st.removeNode(vi)
			jt.reduceNode(vi)
		}

		arcs = append(arcs, Arc{From: vi, To: vk})
		remaining--
		if degreeSum(vk) == 1 {
			queue = append(queue, vk)
		}
	}
	return arcs
}
