package cutquote

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle. Rectangles produced by this package
// always satisfy X0 ≤ X1 and Y0 ≤ Y1; zero width or height is valid.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// RectFromPoints returns the smallest rectangle enclosing all of pts.
//
// It panics if pts is empty.
func RectFromPoints(pts ...Point) Rect {
	if len(pts) == 0 {
		panic("cutquote: RectFromPoints called without points")
	}
	r := Rect{X0: pts[0].X, Y0: pts[0].Y, X1: pts[0].X, Y1: pts[0].Y}
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g, %g]×[%g, %g]", r.X0, r.X1, r.Y0, r.Y1)
}

// Width returns the rectangle's width, defined as X1 − X0.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Contains reports whether pt lies inside r or on its boundary, allowing
// for an absolute error of epsilon.
func (r Rect) Contains(pt Point, epsilon float64) bool {
	return pt.X >= r.X0-epsilon &&
		pt.X <= r.X1+epsilon &&
		pt.Y >= r.Y0-epsilon &&
		pt.Y <= r.Y1+epsilon
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// ApproxEqual reports whether all four bounds of r and o differ by no more
// than epsilon. Rectangles computed through rotation should be compared this
// way rather than with ==.
func (r Rect) ApproxEqual(o Rect, epsilon float64) bool {
	return math.Abs(r.X0-o.X0) <= epsilon &&
		math.Abs(r.Y0-o.Y0) <= epsilon &&
		math.Abs(r.X1-o.X1) <= epsilon &&
		math.Abs(r.Y1-o.Y1) <= epsilon
}
