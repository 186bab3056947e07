// Package embed lays out a rooted, weighted contour tree as nested,
// area-proportional rectangles and triangulates the result into a mesh
// suitable for rendering as a 3D landscape.
package embed

import "math"

// Rectangle is an axis-aligned rectangle described by its center and full
// width/height, the representation the splitting and shrinking math below
// is stated in terms of.
type Rectangle struct {
	CenterX, CenterY float64
	Width, Height    float64
}

// Shrink returns r scaled isotropically by sqrt(factor) about its center,
// so that its area scales linearly by factor. factor must be in (0, 1].
func (r Rectangle) Shrink(factor float64) Rectangle {
	scale := math.Sqrt(factor)
	return Rectangle{
		CenterX: r.CenterX,
		CenterY: r.CenterY,
		Width:   r.Width * scale,
		Height:  r.Height * scale,
	}
}

// Left, Right, Top, Bottom return the rectangle's boundary coordinates.
func (r Rectangle) Left() float64   { return r.CenterX - r.Width/2 }
func (r Rectangle) Right() float64  { return r.CenterX + r.Width/2 }
func (r Rectangle) Bottom() float64 { return r.CenterY - r.Height/2 }
func (r Rectangle) Top() float64    { return r.CenterY + r.Height/2 }

// Corners returns the four corners in consistent winding order:
// bottom-left, bottom-right, top-right, top-left.
func (r Rectangle) Corners() [4][2]float64 {
	return [4][2]float64{
		{r.Left(), r.Bottom()},
		{r.Right(), r.Bottom()},
		{r.Right(), r.Top()},
		{r.Left(), r.Top()},
	}
}

// RectangleSplitter partitions a rectangle into weighted strips along one
// axis, handing out one sub-rectangle per call to Place in proportion to
// the weight passed in, relative to the total weight declared up front.
type RectangleSplitter struct {
	rect       Rectangle
	horizontal bool
	total      float64
	cursor     float64
}

// NewRectangleSplitter prepares a splitter over rect. horizontal selects
// whether successive Place calls advance along the X axis (true) or the Y
// axis (false); total is the sum of weights every subsequent Place call
// will add up to.
func NewRectangleSplitter(rect Rectangle, horizontal bool, total float64) *RectangleSplitter {
	return &RectangleSplitter{rect: rect, horizontal: horizontal, total: total}
}

// Place consumes weight from the splitter's remaining budget and returns
// the sub-rectangle allotted to it.
func (s *RectangleSplitter) Place(weight float64) Rectangle {
	frac0 := s.cursor / s.total
	frac1 := (s.cursor + weight) / s.total
	s.cursor += weight

	if s.horizontal {
		x0 := s.rect.Left() + frac0*s.rect.Width
		x1 := s.rect.Left() + frac1*s.rect.Width
		return Rectangle{CenterX: (x0 + x1) / 2, CenterY: s.rect.CenterY, Width: x1 - x0, Height: s.rect.Height}
	}
	y0 := s.rect.Bottom() + frac0*s.rect.Height
	y1 := s.rect.Bottom() + frac1*s.rect.Height
	return Rectangle{CenterX: s.rect.CenterX, CenterY: (y0 + y1) / 2, Width: s.rect.Width, Height: y1 - y0}
}
