package embed

import (
	"errors"

	"github.com/katalvlaran/ctree/landscape"
)

// ErrNoWeight is returned when a node's children carry zero total weight,
// which would make area-proportional splitting divide by zero.
var ErrNoWeight = errors.New("embed: children of a node have zero total weight")

// Point is a single vertex of the embedded mesh: a planar position plus
// the scalar height (Z) of the contour it lies on.
type Point struct {
	X, Y, Z float64
}

// Triangle is one face of the triangulated landscape, referencing three
// points by index into Embedding.Points and the contour-tree arc (by arc
// index, as returned by the source tree's Arcs()) it belongs to.
type Triangle struct {
	A, B, C int
	Arc     int
}

// Embedding is the full result of laying out and triangulating a rooted
// landscape tree: every node's footprint rectangle (both the slot it was
// allotted and its shrunk interior), a flat point buffer, and the
// triangle mesh built from those rectangles.
type Embedding struct {
	Outer     []Rectangle // Outer[i]: slot allotted to node i within its parent
	Inner     []Rectangle // Inner[i]: node i's own shrunk footprint
	Points    []Point
	Triangles []Triangle
}

// Embedder lays out a rooted landscape.Tree as nested rectangles.
type Embedder struct {
	Bounds Rectangle
}

// Embed computes the rectangle layout and triangulation of t, weighted by
// w. The root occupies Bounds in full; every other node's slot is an
// area-proportional strip of its parent's interior, split alternately
// along the X and Y axes by depth, then isotropically shrunk so its own
// children have room to nest inside it.
func (e Embedder) Embed(t *landscape.Tree, w *landscape.Weights) (*Embedding, error) {
	n := t.NumNodes()
	outer := make([]Rectangle, n)
	inner := make([]Rectangle, n)

	outer[t.Root()] = e.Bounds
	inner[t.Root()] = e.Bounds

	if err := embedChildren(t, w, t.Root(), e.Bounds, true, outer, inner); err != nil {
		return nil, err
	}

	emb := &Embedding{Outer: outer, Inner: inner}
	triangulate(t, emb)
	return emb, nil
}

func embedChildren(t *landscape.Tree, w *landscape.Weights, node int, innerRect Rectangle, horizontal bool, outer, inner []Rectangle) error {
	children := t.Children(node)
	if len(children) == 0 {
		return nil
	}

	total := 0.0
	for _, c := range children {
		total += w.TotalWeight(c)
	}
	if total <= 0 {
		return ErrNoWeight
	}

	splitter := NewRectangleSplitter(innerRect, horizontal, total)
	for _, c := range children {
		weight := w.TotalWeight(c)
		slot := splitter.Place(weight)
		outer[c] = slot
		inner[c] = slot.Shrink(weight / total)
		if err := embedChildren(t, w, c, inner[c], !horizontal, outer, inner); err != nil {
			return err
		}
	}
	return nil
}

// triangulate connects each non-root node's outer slot to its own
// footprint, tagging every triangle with the arc connecting the node to
// its parent. A branch node (one with children of its own) nests a
// rectangle inside its outer slot, tessellated into 8 triangles (two per
// side of the quad strip between outer and inner corners). A leaf node has
// no interior to nest anything inside, so its outer quad instead fans to a
// single apex point at its own position, giving 4 triangles.
func triangulate(t *landscape.Tree, emb *Embedding) {
	for i := 0; i < t.NumNodes(); i++ {
		if i == t.Root() {
			continue
		}
		outerCorners := emb.Outer[i].Corners()
		arc := t.ParentArc(i)
		parentZ := t.Value(t.Parent(i))

		outerIdx := [4]int{}
		base := len(emb.Points)
		for k, p := range outerCorners {
			emb.Points = append(emb.Points, Point{X: p[0], Y: p[1], Z: parentZ})
			outerIdx[k] = base + k
		}

		if t.IsLeaf(i) {
			apex := len(emb.Points)
			emb.Points = append(emb.Points, Point{X: emb.Inner[i].CenterX, Y: emb.Inner[i].CenterY, Z: t.Value(i)})
			for k := 0; k < 4; k++ {
				o0, o1 := outerIdx[k], outerIdx[(k+1)%4]
				emb.Triangles = append(emb.Triangles, Triangle{A: o0, B: o1, C: apex, Arc: arc})
			}
			continue
		}

		innerCorners := emb.Inner[i].Corners()
		innerIdx := [4]int{}
		ibase := len(emb.Points)
		for k, p := range innerCorners {
			emb.Points = append(emb.Points, Point{X: p[0], Y: p[1], Z: t.Value(i)})
			innerIdx[k] = ibase + k
		}
		for k := 0; k < 4; k++ {
			o0, o1 := outerIdx[k], outerIdx[(k+1)%4]
			i0, i1 := innerIdx[k], innerIdx[(k+1)%4]
			emb.Triangles = append(emb.Triangles,
				Triangle{A: o0, B: o1, C: i1, Arc: arc},
				Triangle{A: o0, B: i1, C: i0, Arc: arc},
			)
		}
	}
}
