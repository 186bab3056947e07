// Package foldtree implements a reversible collapse/reduce structure over a
// tree: nodes can be folded away (collapsed into a neighbor, or reduced out
// of a degree-2 chain) and later restored in reverse order. Every fold is
// recorded in an arena that is never reused, so a handle obtained before a
// fold remains valid (if currently folded) for the lifetime of the tree.
package foldtree

import "errors"

// Sentinel errors.
var (
	ErrNotFolded    = errors.New("foldtree: node is not folded")
	ErrNotLive      = errors.New("foldtree: node is not live")
	ErrNotReducible = errors.New("foldtree: node does not have the degree this fold requires")
	ErrBadUncollapse = errors.New("foldtree: fold record is not a collapse")
	ErrBadUnreduce   = errors.New("foldtree: fold record is not a reduction")
)

// NodeID indexes a node in the fold tree's node arena.
type NodeID int

// EdgeID indexes an edge in the fold tree's edge arena.
type EdgeID int

type nodeRecord struct {
	live  bool
	edges map[EdgeID]bool
}

type edgeRecord struct {
	live bool
	a, b NodeID
}

// kind distinguishes the two fold operations folded records may represent.
type kind int

const (
	kindCollapse kind = iota
	kindReduce
)

// Fold is a single undo record: either a collapsed leaf (folded into its
// single remaining neighbor through one edge) or a reduced degree-2 node
// (its two edges merged into one that bridges its former neighbors).
type Fold struct {
	kind kind

	// Collapse fields: node was a leaf connected to via.
	node NodeID
	via  EdgeID
	into NodeID

	// Reduce fields: node had edges (eA to a) and (eB to b), replaced by
	// bridge connecting a and b directly.
	eA, eB   EdgeID
	a, b     NodeID
	bridge   EdgeID
}

// FoldTree is a tree supporting reversible node folding.
type FoldTree struct {
	nodes []nodeRecord
	edges []edgeRecord
	folds []Fold
}

// New returns an empty fold tree.
func New() *FoldTree {
	return &FoldTree{}
}

// AddNode allocates a new live node.
func (t *FoldTree) AddNode() NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, nodeRecord{live: true, edges: map[EdgeID]bool{}})
	return id
}

// AddEdge connects two live nodes with a new live edge.
func (t *FoldTree) AddEdge(a, b NodeID) (EdgeID, error) {
	if err := t.checkLiveNode(a); err != nil {
		return 0, err
	}
	if err := t.checkLiveNode(b); err != nil {
		return 0, err
	}
	id := EdgeID(len(t.edges))
	t.edges = append(t.edges, edgeRecord{live: true, a: a, b: b})
	t.nodes[a].edges[id] = true
	t.nodes[b].edges[id] = true
	return id, nil
}

// Degree returns the number of live edges incident to a live node.
func (t *FoldTree) Degree(n NodeID) int {
	return len(t.nodes[n].edges)
}

// IsLive reports whether n is currently present in the tree (neither
// collapsed nor reduced away).
func (t *FoldTree) IsLive(n NodeID) bool { return t.nodes[n].live }

// Opposite returns the node at the other end of e from n.
func (t *FoldTree) Opposite(e EdgeID, n NodeID) NodeID {
	r := t.edges[e]
	if r.a == n {
		return r.b
	}
	return r.a
}

// Edges returns the live edges incident to n.
func (t *FoldTree) Edges(n NodeID) []EdgeID {
	out := make([]EdgeID, 0, len(t.nodes[n].edges))
	for e := range t.nodes[n].edges {
		out = append(out, e)
	}
	return out
}

func (t *FoldTree) checkLiveNode(n NodeID) error {
	if int(n) < 0 || int(n) >= len(t.nodes) || !t.nodes[n].live {
		return ErrNotLive
	}
	return nil
}

// Collapse folds a leaf node (degree 1) into its sole neighbor. The leaf
// becomes non-live; its incident edge is removed from the neighbor's edge
// set. The returned handle can be passed to Uncollapse to restore it.
func (t *FoldTree) Collapse(n NodeID) (int, error) {
	if err := t.checkLiveNode(n); err != nil {
		return 0, err
	}
	if t.Degree(n) != 1 {
		return 0, ErrNotReducible
	}
	var via EdgeID
	for e := range t.nodes[n].edges {
		via = e
	}
	into := t.Opposite(via, n)

	t.edges[via].live = false
	delete(t.nodes[into].edges, via)
	delete(t.nodes[n].edges, via)
	t.nodes[n].live = false

	handle := len(t.folds)
	t.folds = append(t.folds, Fold{kind: kindCollapse, node: n, via: via, into: into})
	return handle, nil
}

// Uncollapse reverses a Collapse fold, restoring the leaf and its edge.
func (t *FoldTree) Uncollapse(handle int) error {
	f := t.folds[handle]
	if f.kind != kindCollapse {
		return ErrBadUncollapse
	}
	t.nodes[f.node].live = true
	t.edges[f.via].live = true
	t.nodes[f.node].edges[f.via] = true
	t.nodes[f.into].edges[f.via] = true
	return nil
}

// Reduce folds a degree-2 node out of the tree, replacing its two edges
// with a single bridge edge directly connecting its two former neighbors.
// The new bridge edge id is returned alongside the fold handle.
func (t *FoldTree) Reduce(n NodeID) (bridge EdgeID, a NodeID, b NodeID, handle int, err error) {
	if err = t.checkLiveNode(n); err != nil {
		return 0, 0, 0, 0, err
	}
	if t.Degree(n) != 2 {
		return 0, 0, 0, 0, ErrNotReducible
	}

	var edgeIDs []EdgeID
	for e := range t.nodes[n].edges {
		edgeIDs = append(edgeIDs, e)
	}
	eA, eB := edgeIDs[0], edgeIDs[1]
	a = t.Opposite(eA, n)
	b = t.Opposite(eB, n)

	t.edges[eA].live = false
	t.edges[eB].live = false
	delete(t.nodes[a].edges, eA)
	delete(t.nodes[b].edges, eB)
	delete(t.nodes[n].edges, eA)
	delete(t.nodes[n].edges, eB)
	t.nodes[n].live = false

	bridge = EdgeID(len(t.edges))
	t.edges = append(t.edges, edgeRecord{live: true, a: a, b: b})
	t.nodes[a].edges[bridge] = true
	t.nodes[b].edges[bridge] = true

	handle = len(t.folds)
	t.folds = append(t.folds, Fold{kind: kindReduce, node: n, eA: eA, eB: eB, a: a, b: b, bridge: bridge})
	return bridge, a, b, handle, nil
}

// Unreduce reverses a Reduce fold: the bridge edge is removed and the
// degree-2 node is restored along with its two original edges.
func (t *FoldTree) Unreduce(handle int) error {
	f := t.folds[handle]
	if f.kind != kindReduce {
		return ErrBadUnreduce
	}

	t.edges[f.bridge].live = false
	delete(t.nodes[f.a].edges, f.bridge)
	delete(t.nodes[f.b].edges, f.bridge)

	t.nodes[f.node].live = true
	t.edges[f.eA].live = true
	t.edges[f.eB].live = true
	t.nodes[f.node].edges[f.eA] = true
	t.nodes[f.node].edges[f.eB] = true
	t.nodes[f.a].edges[f.eA] = true
	t.nodes[f.b].edges[f.eB] = true
	return nil
}

// Record returns the fold record stored at handle, for callers that need
// to inspect what a fold did.
func (t *FoldTree) Record(handle int) Fold { return t.folds[handle] }
