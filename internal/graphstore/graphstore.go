// Package graphstore implements an indexed, generation-checked graph store.
//
// Nodes and edges are addressed by handles rather than pointers or string
// IDs. Each handle carries a slot index and a generation counter; removing
// an edge bumps the generation of its slot so that handles obtained before
// the removal are detected as stale on next use. Nodes cannot be removed,
// and slots are never reused.
package graphstore

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors returned by Graph methods.
var (
	ErrStaleHandle   = errors.New("graphstore: stale handle")
	ErrNodeNotFound  = errors.New("graphstore: node not found")
	ErrEdgeNotFound  = errors.New("graphstore: edge not found")
	ErrSelfLoop      = errors.New("graphstore: self loops not allowed")
	ErrDuplicateEdge = errors.New("graphstore: duplicate edge")
)

// NodeHandle addresses a node slot in a Graph.
type NodeHandle struct {
	index int
	gen   uint32
}

// Valid reports whether h was ever issued by a Graph (zero value is never valid).
func (h NodeHandle) Valid() bool { return h.gen != 0 }

// Index returns h's slot index, which is also its allocation order among
// all nodes ever added to the owning Graph. Callers that need a stable
// integer id for serialization (file formats have no notion of handles)
// use this rather than the opaque handle itself.
func (h NodeHandle) Index() int { return h.index }

func (h NodeHandle) String() string { return fmt.Sprintf("n%d@%d", h.index, h.gen) }

// EdgeHandle addresses an edge slot in a Graph.
type EdgeHandle struct {
	index int
	gen   uint32
}

// Valid reports whether h was ever issued by a Graph.
func (h EdgeHandle) Valid() bool { return h.gen != 0 }

func (h EdgeHandle) String() string { return fmt.Sprintf("e%d@%d", h.index, h.gen) }

type nodeSlot struct {
	gen     uint32
	live    bool
	incident []EdgeHandle
}

type edgeSlot struct {
	gen  uint32
	live bool
	from NodeHandle
	to   NodeHandle
}

// observer is notified whenever the node or edge slot count grows, so that
// attribute maps registered on the Graph can resize in lockstep.
type observer interface {
	onNodeGrow(n int)
	onEdgeGrow(n int)
}

// Graph is an undirected simple graph backed by generation-checked arenas.
// A Graph is safe for concurrent read access; writers must hold exclusive
// access externally (the construction phase in this module is single
// threaded per spec.md's concurrency model).
type Graph struct {
	mu    sync.RWMutex
	nodes []nodeSlot
	edges []edgeSlot

	nodeObservers []observer
	edgeObservers []observer
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddNode allocates a new node and returns its handle.
func (g *Graph) AddNode() NodeHandle {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := len(g.nodes)
	g.nodes = append(g.nodes, nodeSlot{gen: 1, live: true})
	h := NodeHandle{index: idx, gen: 1}
	for _, o := range g.nodeObservers {
		o.onNodeGrow(len(g.nodes))
	}
	return h
}

// AddEdge connects from and to with a new edge. Self-loops return
// ErrSelfLoop; a pre-existing edge between the same pair returns
// ErrDuplicateEdge instead of creating a parallel edge.
func (g *Graph) AddEdge(from, to NodeHandle) (EdgeHandle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkNodeLocked(from); err != nil {
		return EdgeHandle{}, err
	}
	if err := g.checkNodeLocked(to); err != nil {
		return EdgeHandle{}, err
	}
	if from == to {
		return EdgeHandle{}, ErrSelfLoop
	}
	for _, eh := range g.nodes[from.index].incident {
		es := g.edges[eh.index]
		if (es.from == from && es.to == to) || (es.from == to && es.to == from) {
			return EdgeHandle{}, ErrDuplicateEdge
		}
	}

	idx := len(g.edges)
	g.edges = append(g.edges, edgeSlot{gen: 1, live: true, from: from, to: to})
	h := EdgeHandle{index: idx, gen: 1}

	g.nodes[from.index].incident = append(g.nodes[from.index].incident, h)
	g.nodes[to.index].incident = append(g.nodes[to.index].incident, h)

	for _, o := range g.edgeObservers {
		o.onEdgeGrow(len(g.edges))
	}
	return h, nil
}

// RemoveEdge deletes an edge, bumping its slot generation so outstanding
// handles become stale.
func (g *Graph) RemoveEdge(h EdgeHandle) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEdgeLocked(h); err != nil {
		return err
	}
	es := &g.edges[h.index]
	es.live = false
	es.gen++

	g.nodes[es.from.index].incident = removeHandle(g.nodes[es.from.index].incident, h)
	g.nodes[es.to.index].incident = removeHandle(g.nodes[es.to.index].incident, h)
	return nil
}

func removeHandle(s []EdgeHandle, h EdgeHandle) []EdgeHandle {
	for i, v := range s {
		if v == h {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, s := range g.nodes {
		if s.live {
			n++
		}
	}
	return n
}

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, s := range g.edges {
		if s.live {
			n++
		}
	}
	return n
}

// Nodes returns every live node handle, in allocation order.
func (g *Graph) Nodes() []NodeHandle {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]NodeHandle, 0, len(g.nodes))
	for i, s := range g.nodes {
		if s.live {
			out = append(out, NodeHandle{index: i, gen: s.gen})
		}
	}
	return out
}

// Edges returns every live edge handle, in allocation order.
func (g *Graph) Edges() []EdgeHandle {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]EdgeHandle, 0, len(g.edges))
	for i, s := range g.edges {
		if s.live {
			out = append(out, EdgeHandle{index: i, gen: s.gen})
		}
	}
	return out
}

// Endpoints returns the two nodes an edge connects.
func (g *Graph) Endpoints(h EdgeHandle) (from, to NodeHandle, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err = g.checkEdgeLocked(h); err != nil {
		return NodeHandle{}, NodeHandle{}, err
	}
	es := g.edges[h.index]
	return es.from, es.to, nil
}

// Neighbors returns the edges incident to n.
func (g *Graph) Neighbors(n NodeHandle) ([]EdgeHandle, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.checkNodeLocked(n); err != nil {
		return nil, err
	}
	out := make([]EdgeHandle, len(g.nodes[n.index].incident))
	copy(out, g.nodes[n.index].incident)
	return out, nil
}

// Degree returns the number of edges incident to n.
func (g *Graph) Degree(n NodeHandle) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if err := g.checkNodeLocked(n); err != nil {
		return 0, err
	}
	return len(g.nodes[n.index].incident), nil
}

// Other returns the endpoint of edge h that is not n.
func (g *Graph) Other(h EdgeHandle, n NodeHandle) (NodeHandle, error) {
	from, to, err := g.Endpoints(h)
	if err != nil {
		return NodeHandle{}, err
	}
	if from == n {
		return to, nil
	}
	if to == n {
		return from, nil
	}
	return NodeHandle{}, fmt.Errorf("graphstore: node %s is not an endpoint of %s", n, h)
}

func (g *Graph) checkNodeLocked(n NodeHandle) error {
	if !n.Valid() || n.index < 0 || n.index >= len(g.nodes) {
		return ErrNodeNotFound
	}
	s := g.nodes[n.index]
	if !s.live || s.gen != n.gen {
		return ErrStaleHandle
	}
	return nil
}

func (g *Graph) checkEdgeLocked(h EdgeHandle) error {
	if !h.Valid() || h.index < 0 || h.index >= len(g.edges) {
		return ErrEdgeNotFound
	}
	s := g.edges[h.index]
	if !s.live || s.gen != h.gen {
		return ErrStaleHandle
	}
	return nil
}

// registerNodeObserver and registerEdgeObserver let attribute maps track
// store growth. They are unexported: only this package's NodeMap/EdgeMap
// are expected to attach.
func (g *Graph) registerNodeObserver(o observer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodeObservers = append(g.nodeObservers, o)
}

func (g *Graph) registerEdgeObserver(o observer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.edgeObservers = append(g.edgeObservers, o)
}

func (g *Graph) nodeSlotCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

func (g *Graph) edgeSlotCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}
