package cutquote

import (
	"math"
	"slices"
	"strconv"
)

// Quote prices a single profile. It is immutable once constructed.
type Quote struct {
	edges []Edge
}

// NewQuote returns a quote for the profile made of edges, in traversal
// order. It fails with an [*EdgeError] if any edge is invalid, and with
// [ErrEmptyProfile] if there are no edges.
func NewQuote(edges []Edge) (*Quote, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyProfile
	}
	for i, e := range edges {
		if e == nil {
			return nil, &EdgeError{Index: i, Err: ErrUnknownEdgeType}
		}
		if err := e.Validate(); err != nil {
			return nil, &EdgeError{Index: i, Err: err}
		}
	}
	return &Quote{edges: slices.Clone(edges)}, nil
}

// Edges returns the profile's edges in traversal order. The returned slice
// is a copy.
func (q *Quote) Edges() []Edge {
	return slices.Clone(q.edges)
}

// BoundingBox returns the union of the bounding boxes of all edges.
func (q *Quote) BoundingBox() Rect {
	r := q.edges[0].BoundingBox()
	for _, e := range q.edges[1:] {
		r = r.Union(e.BoundingBox())
	}
	return r
}

// Rotate returns a quote for the profile rotated about the origin by th
// radians.
func (q *Quote) Rotate(th float64) *Quote {
	edges := make([]Edge, len(q.edges))
	for i, e := range q.edges {
		edges[i] = e.RotateEdge(th)
	}
	return &Quote{edges: edges}
}

// CutLength returns the total length of all edges.
func (q *Quote) CutLength() float64 {
	var l float64
	for _, e := range q.edges {
		l += e.Length()
	}
	return l
}

// TimeCost returns the price of the time it takes to cut every edge.
func (q *Quote) TimeCost(p CostParams) float64 {
	var c float64
	for _, e := range q.edges {
		c += e.TimeCost(p)
	}
	return c
}

// MaterialCost returns the price of the material for the profile in its
// current orientation.
func (q *Quote) MaterialCost(p CostParams) float64 {
	return p.MaterialCost(q.BoundingBox())
}

// Orientations returns the candidate rotations considered by
// [Quote.Estimate]: no rotation, followed by the rotation that makes each
// straight edge parallel to the x axis.
func (q *Quote) Orientations() []float64 {
	out := []float64{0}
	for _, e := range q.edges {
		l, ok := e.(Line)
		if !ok || l.Length() == 0 {
			continue
		}
		out = append(out, -l.Angle())
	}
	return out
}

// Estimate is the itemized price of a profile.
type Estimate struct {
	// Rotation is the angle, in radians, by which the profile was rotated
	// to minimize the material cost.
	Rotation float64
	// Rect is the bounding rectangle of the rotated profile.
	Rect         Rect
	CutLength    float64
	MaterialCost float64
	TimeCost     float64
	Total        float64
}

// Estimate prices the profile in the orientation that needs the least
// material. Ties are resolved in favor of the earliest candidate of
// [Quote.Orientations].
func (q *Quote) Estimate(p CostParams) Estimate {
	best := Estimate{MaterialCost: math.Inf(1)}
	for _, th := range q.Orientations() {
		r := q.Rotate(th).BoundingBox()
		if c := p.MaterialCost(r); c < best.MaterialCost-DefaultTolerance {
			best.Rotation = th
			best.Rect = r
			best.MaterialCost = c
		}
	}
	best.CutLength = q.CutLength()
	best.TimeCost = q.TimeCost(p)
	best.Total = best.MaterialCost + best.TimeCost
	return best
}

// String formats the total with exactly two decimal places.
func (e Estimate) String() string {
	return FormatCost(e.Total)
}

// Cost returns the total price of the profile with exactly two decimal
// places, e.g. "14.10".
func (q *Quote) Cost(p CostParams) string {
	return q.Estimate(p).String()
}

// FormatCost formats an amount with exactly two decimal places.
func FormatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
