package cutquote

import (
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Edges only support rigid motions (rotations and translations); other
// transforms would turn circular arcs into elliptical ones.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Rotate creates an affine transform representing rotation about the origin.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. Profiles are described in a y-up
// coordinate system, so this is an anti-clockwise rotation.
//
// The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// IsRigid reports whether aff preserves distances, within epsilon.
// Mirroring transforms are not rigid for this purpose because they
// reverse the direction in which arcs are swept.
func (aff Affine) IsRigid(epsilon float64) bool {
	return math.Abs(aff.Determinant()-1) <= epsilon &&
		math.Abs(aff.N0-aff.N3) <= epsilon &&
		math.Abs(aff.N1+aff.N2) <= epsilon
}
