package cutquote

import (
	"math"
)

// DefaultTolerance is the absolute tolerance used for comparing computed
// geometry.
const DefaultTolerance = 1e-9

// Edge is one segment of a cut profile. It is implemented by [Line] and
// [Arc].
type Edge interface {
	// Vertices returns the edge's start and end point, in that order.
	Vertices() (Point, Point)
	// Length returns the length of the cut.
	Length() float64
	// BoundingBox returns the smallest rectangle enclosing the path that is
	// actually cut.
	BoundingBox() Rect
	// RotateEdge returns the edge rotated about the origin by th radians.
	RotateEdge(th float64) Edge
	// Speed returns the speed at which the edge is cut.
	Speed(p CostParams) float64
	// TimeCost returns the price of the time it takes to cut the edge.
	TimeCost(p CostParams) float64
	// Validate reports whether the edge satisfies its geometric invariants.
	Validate() error

	isEdge()
}

var (
	_ Edge = Line{}
	_ Edge = Arc{}
)

func timeCost(e Edge, p CostParams) float64 {
	return e.Length() / e.Speed(p) * p.CostPerTime
}

func validatePoints(pts ...Point) error {
	for _, pt := range pts {
		if pt.IsNaN() || pt.IsInf() {
			return ErrNonFinite
		}
	}
	return nil
}

// clockwiseDelta returns the angle swept when travelling clockwise from
// angle from to angle to, in the range (0, 2π].
func clockwiseDelta(from, to float64) float64 {
	d := math.Mod(from-to, 2*math.Pi)
	if d <= 0 {
		d += 2 * math.Pi
	}
	return d
}
