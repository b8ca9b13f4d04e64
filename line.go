package cutquote

// Line represents a straight cut between two vertices.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// NewLine returns the line from v0 to v1.
func NewLine(v0, v1 Point) Line {
	return Line{P0: v0, P1: v1}
}

func (Line) isEdge() {}

func (l Line) Vertices() (Point, Point) { return l.P0, l.P1 }

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Angle returns the direction of the line, measured anti-clockwise from the
// positive x axis.
func (l Line) Angle() float64 {
	return l.P1.Sub(l.P0).Angle()
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// Rotate returns the line rotated about the origin by th radians.
func (l Line) Rotate(th float64) Line {
	return l.Transform(Rotate(th))
}

func (l Line) RotateEdge(th float64) Edge { return l.Rotate(th) }

// Speed returns the base speed; straight cuts are never slowed down.
func (l Line) Speed(p CostParams) float64 {
	return p.BaseSpeed
}

func (l Line) TimeCost(p CostParams) float64 {
	return timeCost(l, p)
}

func (l Line) Validate() error {
	return validatePoints(l.P0, l.P1)
}
