package cutquote

import (
	"fmt"
	"math"
)

// radiusTolerance bounds the difference between the distances of an arc's
// two vertices from its center, relative to the radius for radii above 1.
const radiusTolerance = 1e-6

// Arc represents a circular cut between two vertices around a center.
//
// The two vertices divide the circle into two arcs. ClockwiseFrom is the
// index (0 for P0, 1 for P1) of the vertex at which a clockwise sweep
// begins, which selects the arc that is cut. Flipping it selects the
// complementary arc.
type Arc struct {
	P0            Point
	P1            Point
	Center        Point
	ClockwiseFrom int
}

// NewArc returns the arc between v0 and v1 around center that is swept
// clockwise starting from the vertex with index clockwiseFrom.
func NewArc(v0, v1, center Point, clockwiseFrom int) (Arc, error) {
	a := Arc{P0: v0, P1: v1, Center: center, ClockwiseFrom: clockwiseFrom}
	if err := a.Validate(); err != nil {
		return Arc{}, err
	}
	return a, nil
}

func (Arc) isEdge() {}

func (a Arc) Vertices() (Point, Point) { return a.P0, a.P1 }

// Validate checks that the coordinates are finite, that ClockwiseFrom names
// a vertex and that both vertices lie on the same circle of non-zero radius.
func (a Arc) Validate() error {
	if err := validatePoints(a.P0, a.P1, a.Center); err != nil {
		return err
	}
	if a.ClockwiseFrom != 0 && a.ClockwiseFrom != 1 {
		return fmt.Errorf("%w: got index %d", ErrClockwiseFrom, a.ClockwiseFrom)
	}
	r0 := a.P0.Distance(a.Center)
	r1 := a.P1.Distance(a.Center)
	if math.Abs(r0-r1) > radiusTolerance*max(1, r0, r1) {
		return fmt.Errorf("%w: %s is %g away from %s, %s is %g away", ErrRadiusMismatch, a.P0, r0, a.Center, a.P1, r1)
	}
	if r0 == 0 {
		return ErrZeroRadius
	}
	return nil
}

// Radius returns the distance between the center and the first vertex.
func (a Arc) Radius() float64 {
	return a.P0.Distance(a.Center)
}

// angles returns the angles of the start and end of the clockwise sweep.
func (a Arc) angles() (start, end float64) {
	a0 := a.P0.Sub(a.Center).Angle()
	a1 := a.P1.Sub(a.Center).Angle()
	if a.ClockwiseFrom == 0 {
		return a0, a1
	}
	return a1, a0
}

// SweepAngle returns the angular extent of the arc, in the range (0, 2π].
// Coincident vertices describe a full circle.
func (a Arc) SweepAngle() float64 {
	return clockwiseDelta(a.angles())
}

// Complement returns the other arc between the same vertices around the
// same center.
func (a Arc) Complement() Arc {
	a.ClockwiseFrom = 1 - a.ClockwiseFrom
	return a
}

func (a Arc) Length() float64 {
	return a.Radius() * a.SweepAngle()
}

// BoundingBox returns the smallest rectangle enclosing the swept arc. Besides
// the two vertices, it contains every axis-extremal point of the circle that
// the sweep passes through.
func (a Arc) BoundingBox() Rect {
	r := NewRectFromPoints(a.P0, a.P1)
	start, _ := a.angles()
	sweep := a.SweepAngle()
	radius := a.Radius()
	for i := range 4 {
		th := float64(i) * math.Pi / 2
		d := math.Mod(start-th, 2*math.Pi)
		if d < 0 {
			d += 2 * math.Pi
		}
		if d > sweep {
			continue
		}
		r = r.UnionPoint(a.Center.Translate(VecFromAngle(th).Mul(radius)))
	}
	return r
}

// Transform applies aff to the vertices and center. It panics unless aff is
// rigid, see [Affine.IsRigid].
func (a Arc) Transform(aff Affine) Arc {
	if !aff.IsRigid(DefaultTolerance) {
		panic("cutquote: Arc.Transform called with a transform that is not rigid")
	}
	return Arc{
		P0:            a.P0.Transform(aff),
		P1:            a.P1.Transform(aff),
		Center:        a.Center.Transform(aff),
		ClockwiseFrom: a.ClockwiseFrom,
	}
}

// Rotate returns the arc rotated about the origin by th radians. Rotation
// does not change which of the two arcs is swept.
func (a Arc) Rotate(th float64) Arc {
	return a.Transform(Rotate(th))
}

func (a Arc) RotateEdge(th float64) Edge { return a.Rotate(th) }

// Speed returns the cutting speed along the arc, which decays exponentially
// as the radius shrinks and approaches the base speed for large radii.
func (a Arc) Speed(p CostParams) float64 {
	return p.BaseSpeed * math.Exp(-1/a.Radius())
}

func (a Arc) TimeCost(p CostParams) float64 {
	return timeCost(a, p)
}
