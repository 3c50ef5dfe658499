package colr

import "math"

// Affine represents a 2D affine transformation in COLRv1's own convention:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// This is the (xx, yx, xy, yy, dx, dy) field order used throughout the
// COLRv1 Transform paint and the OpenType variation store, not the more
// common row-major (a,b,c / d,e,f) convention.
type Affine struct {
	A, B, C, D, E, F float64
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{A: 1, B: 0, C: 0, D: 1, E: 0, F: 0}
}

// TranslateAffine creates a translation transform.
func TranslateAffine(dx, dy float64) Affine {
	return Affine{A: 1, B: 0, C: 0, D: 1, E: dx, F: dy}
}

// ScaleAffine creates a scaling transform.
func ScaleAffine(sx, sy float64) Affine {
	return Affine{A: sx, B: 0, C: 0, D: sy, E: 0, F: 0}
}

// RotateAffine creates a rotation transform (angle in radians).
func RotateAffine(angle float64) Affine {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Affine{A: cos, B: sin, C: -sin, D: cos, E: 0, F: 0}
}

// SkewAffine creates a skew transform. xAngle and yAngle are in radians;
// sign conventions are the caller's responsibility (see the Skew paint
// handler in interpreter.go for the COLRv1-specific sign flip).
func SkewAffine(xAngle, yAngle float64) Affine {
	return Affine{A: 1, B: math.Tan(yAngle), C: math.Tan(xAngle), D: 1, E: 0, F: 0}
}

// IsIdentity reports whether m is the identity transform.
func (m Affine) IsIdentity() bool {
	return m == IdentityAffine()
}

// Then composes m followed by n: the result maps a point the way m does,
// then the way n does. In matrix terms this is right-multiplication,
// `n ∘ m`, matching spec's convention that `M.then(N)` means `N ∘ M`.
func (m Affine) Then(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
		E: m.E*n.A + m.F*n.C + n.E,
		F: m.E*n.B + m.F*n.D + n.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Affine) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector, ignoring translation.
func (m Affine) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// Inverse returns the affine transform that undoes m, for mapping a
// point back from m's output space to its input space (e.g. a raster
// canvas recovering gradient-space coordinates from a device pixel). A
// singular m (det == 0, such as a zero scale) returns the identity
// transform, since there is no well-defined inverse.
func (m Affine) Inverse() Affine {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return IdentityAffine()
	}
	invDet := 1 / det
	a := m.D * invDet
	b := -m.B * invDet
	c := -m.C * invDet
	d := m.A * invDet
	e := -(m.E*a + m.F*c)
	f := -(m.E*b + m.F*d)
	return Affine{A: a, B: b, C: c, D: d, E: e, F: f}
}
