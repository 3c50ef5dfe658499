package colr

// PaintColorStop is one stop of a COLRv1 color line as stored in the
// paint tree: an offset plus a palette reference and alpha, not yet
// resolved to a concrete color (spec.md 3.1/3.2). Resolution against an
// active palette and text color happens at render time via
// resolveColorLine, the same way Solid's PaletteIndex is resolved via
// resolveColor — palette selection is a per-render concern, not a
// property of the shared paint tree.
type PaintColorStop struct {
	StopOffset   float64
	PaletteIndex ColorIndex
	Alpha        float64
}

// ColorLine is an ordered sequence of color stops with weakly increasing
// offsets, plus the extend mode to apply outside [0,1] (spec.md 3.2).
type ColorLine struct {
	Stops  []PaintColorStop
	Extend ExtendMode
}

// NormalizeColorLine remaps a color line's stop offsets to the canonical
// [0,1] range (spec.md 4.D). It returns the rescale factors minStop and
// maxStop needed to reposition gradient anchors/radii/angles to match,
// and the remapped stops.
//
// If every stop coincides (minStop == maxStop), normalization is a
// no-op: the original stops are returned unchanged along with
// (minStop, maxStop) = (0, 1), so that the anchor-repositioning lerp
// below becomes the identity. This is the DegenerateGradient case; the
// caller (interpreter.go) may substitute a solid fill at its discretion.
func NormalizeColorLine(stops []ColorStop) (minStop, maxStop float64, normalized []ColorStop) {
	if len(stops) == 0 {
		return 0, 1, stops
	}

	minStop, maxStop = stops[0].Offset, stops[0].Offset
	for _, s := range stops[1:] {
		if s.Offset < minStop {
			minStop = s.Offset
		}
		if s.Offset > maxStop {
			maxStop = s.Offset
		}
	}

	if minStop == maxStop {
		logDegenerateGradient("color line stops all coincide")
		return 0, 1, stops
	}

	extent := maxStop - minStop
	normalized = make([]ColorStop, len(stops))
	for i, s := range stops {
		normalized[i] = ColorStop{
			Offset: (s.Offset - minStop) / extent,
			Color:  s.Color,
		}
	}
	return minStop, maxStop, normalized
}

// ReduceThreeAnchorsToTwo projects a LinearGradient's three anchor
// points (p0, p1, p2) down to the two endpoints a linear gradient shader
// actually needs, per spec.md 4.E: let v = p2-p0, u = p1-p0; project u
// onto the perpendicular of v to get the second endpoint; retain p0 as
// the first.
//
// If p2 coincides with p0, v is zero and the division below would
// degenerate (the DegenerateGradient case noted as an Open Question in
// spec.md 9); this implementation logs and falls back to returning
// (p0, p1) unprojected, which still produces a well-defined — if not
// COLRv1-faithful — gradient direction rather than propagating a NaN.
// Colinear anchors with p2 distinct from p0 take no fallback: the
// projection lands on p0, so both returned endpoints coincide.
func ReduceThreeAnchorsToTwo(p0, p1, p2 Point) (Point, Point) {
	v := p2.Sub(p0)
	u := p1.Sub(p0)
	squaredNormV := v.LengthSquared()
	if squaredNormV == 0 {
		logDegenerateGradient("linear gradient anchors p0 and p2 coincide")
		return p0, p1
	}

	k := u.Dot(v) / squaredNormV
	projected := p1.Sub(v.Mul(k))
	return p0, projected
}

// RepositionLinearEndpoints reslides a linear gradient's two endpoints
// by the minStop/maxStop returned from NormalizeColorLine.
func RepositionLinearEndpoints(p1, p2 Point, minStop, maxStop float64) (Point, Point) {
	return p1.Lerp(p2, minStop), p1.Lerp(p2, maxStop)
}

// RepositionRadialEndpoints reslides a radial gradient's two centers and
// radii by minStop/maxStop.
func RepositionRadialEndpoints(c0, c1 Point, r0, r1, minStop, maxStop float64) (newC0, newC1 Point, newR0, newR1 float64) {
	newC0 = c0.Lerp(c1, minStop)
	newC1 = c0.Lerp(c1, maxStop)
	newR0 = lerpFloat(r0, r1, minStop)
	newR1 = lerpFloat(r0, r1, maxStop)
	return
}

// RepositionSweepAngles reslides a sweep gradient's start/end angles by
// minStop/maxStop.
func RepositionSweepAngles(startAngle, endAngle, minStop, maxStop float64) (newStart, newEnd float64) {
	return lerpFloat(startAngle, endAngle, minStop), lerpFloat(startAngle, endAngle, maxStop)
}

func lerpFloat(a, b, t float64) float64 {
	return a + t*(b-a)
}
