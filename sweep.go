package colr

import "math"

// SweepPatch is one patch of a sweep-gradient fan approximation (spec.md
// 4.B). When Gouraud is true it is a flat triangle: vertex at the
// gradient center, the other two vertices P0 and P1 on the circle,
// filled with a constant color — the mean of Color0 and Color1 is a
// reasonable choice for a canvas that can only flat-fill a triangle.
// When Gouraud is false, C0 and C1 are cubic-Bezier control points such
// that P0 → C0 → C1 → P1 approximates the circular arc between them,
// suitable for a canvas mesh/Coons-patch gradient primitive.
type SweepPatch struct {
	P0, P1         Point
	Color0, Color1 RGBA
	C0, C1         Point
	Gouraud        bool
}

const (
	sweepMaxAngleGouraudDefault = math.Pi / 360.0
	sweepMaxAngleMeshDefault    = math.Pi / 8.0
	sweepMaxAngleFloor          = math.Pi / 360.0
	sweepMaxAngleCeiling        = math.Pi / 2.0
)

// BuildSweepGradientPatches approximates a conic gradient — center,
// radius, sweeping from startAngle to endAngle degrees along an already
// color-line-normalized colorLine — as a fan of patches, for canvases
// lacking a native sweep/conic gradient primitive.
//
// maxAngle bounds the angular extent of a single patch; pass 0 to use
// the mode-appropriate default (π/360 for Gouraud, π/8 for mesh). A
// caller-supplied value is clamped to [π/360, π/2].
func BuildSweepGradientPatches(colorLine []ColorStop, center Point, radius, startAngle, endAngle float64, gouraud bool, maxAngle float64) []SweepPatch {
	if maxAngle == 0 {
		if gouraud {
			maxAngle = sweepMaxAngleGouraudDefault
		} else {
			maxAngle = sweepMaxAngleMeshDefault
		}
	} else {
		maxAngle = math.Max(math.Min(maxAngle, sweepMaxAngleCeiling), sweepMaxAngleFloor)
	}

	if gouraud {
		// Inflate the radius so the flat-edged triangles fully cover the
		// disk with the original radius.
		radius = radius / math.Cos(maxAngle/2)
	}

	var patches []SweepPatch
	n := len(colorLine)
	for i := 0; i < n-1; i++ {
		a0Stop, col0 := colorLine[i].Offset, colorLine[i].Color
		a1Stop, col1 := colorLine[i+1].Offset, colorLine[i+1].Color
		if a0Stop == a1Stop {
			// Two equal stop offsets mark an explicit color discontinuity;
			// there is no arc to draw between them.
			continue
		}

		a0 := degToRad(startAngle + a0Stop*(endAngle-startAngle))
		a1 := degToRad(startAngle + a1Stop*(endAngle-startAngle))
		numSplits := int(math.Ceil((a1 - a0) / maxAngle))
		if numSplits < 1 {
			numSplits = 1
		}

		p0 := Pt(math.Cos(a0), math.Sin(a0))
		color0 := col0
		for a := 0; a < numSplits; a++ {
			k := float64(a+1) / float64(numSplits)
			angle1 := a0 + k*(a1-a0)
			color1 := col0.Lerp(col1, k)
			p1 := Pt(math.Cos(angle1), math.Sin(angle1))

			P0 := center.Add(p0.Mul(radius))
			P1 := center.Add(p1.Mul(radius))

			if gouraud {
				patches = append(patches, SweepPatch{
					P0: P0, Color0: color0,
					P1: P1, Color1: color1,
					Gouraud: true,
				})
			} else {
				c0, c1 := sweepArcControlPoints(p0, p1, center, radius)
				patches = append(patches, SweepPatch{
					P0: P0, Color0: color0,
					C0: c0, C1: c1,
					P1: P1, Color1: color1,
				})
			}

			p0 = p1
			color0 = color1
		}
	}
	return patches
}

// sweepArcControlPoints computes cubic-Bezier control points for the
// unit-circle arc between p0 and p1 (both on the unit circle), by the
// standard two-tangent construction: A is the normalized bisector of
// p0+p1; U is its perpendicular (tangent to the circle at A); C0, C1
// are the intersections of the tangent lines at p0 and p1 with the line
// through A parallel to U, then shifted outward by 1/3 of (Ci - pi).
// The result is scaled by radius and offset by center.
func sweepArcControlPoints(p0, p1, center Point, radius float64) (c0, c1 Point) {
	a := p0.Add(p1).Normalize()
	u := Pt(-a.Y, a.X)

	c0u := a.Add(u.Mul(p0.Sub(a).Dot(p0) / u.Dot(p0)))
	c1u := a.Add(u.Mul(p1.Sub(a).Dot(p1) / u.Dot(p1)))

	c0u = c0u.Add(c0u.Sub(p0).Mul(1.0 / 3.0))
	c1u = c1u.Add(c1u.Sub(p1).Mul(1.0 / 3.0))

	c0 = center.Add(c0u.Mul(radius))
	c1 = center.Add(c1u.Mul(radius))
	return c0, c1
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
