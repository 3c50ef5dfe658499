package colr

// CompositeMode is one of the 28 Porter-Duff and separable blend
// operators defined by the COLR specification for the Composite paint.
type CompositeMode int

const (
	CompositeClear CompositeMode = iota
	CompositeSrc
	CompositeDest
	CompositeSrcOver
	CompositeDestOver
	CompositeSrcIn
	CompositeDestIn
	CompositeSrcOut
	CompositeDestOut
	CompositeSrcAtop
	CompositeDestAtop
	CompositeXor
	CompositePlus
	CompositeScreen
	CompositeOverlay
	CompositeDarken
	CompositeLighten
	CompositeColorDodge
	CompositeColorBurn
	CompositeHardLight
	CompositeSoftLight
	CompositeDifference
	CompositeExclusion
	CompositeMultiply
	CompositeHSLHue
	CompositeHSLSaturation
	CompositeHSLColor
	CompositeHSLLuminosity
)

// PathBuilderTarget is the outline-construction vocabulary a Canvas's
// newPath() returns: moveTo/lineTo/quadTo(two points)/cubicTo(three
// points)/closePath. *Path already implements this surface.
type PathBuilderTarget interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// Canvas is the abstract 2D vector surface the paint-tree interpreter
// targets. A concrete canvas adapts this vocabulary to a real 2D
// graphics library; gocolr ships only the recorder package's reference
// implementation, used by this package's own tests.
//
// Contract: a canvas must honor save/restore nesting — between a
// SavedState call and the matching release, all CTM and clip mutations
// made through this Canvas are local to that scope. A canvas may refuse
// to draw under an empty clip; it must never draw outside the current
// clip.
type Canvas interface {
	// NewPath returns an empty mutable outline builder.
	NewPath() PathBuilderTarget

	// SavedState pushes a copy of the current CTM and clip, runs fn, then
	// restores them, regardless of how fn returns. Nests arbitrarily.
	SavedState(fn func())

	// CompositeLayer establishes an isolated drawing layer for the
	// duration of fn; on return the layer is composited onto the
	// backdrop using mode.
	CompositeLayer(mode CompositeMode, fn func())

	// Transform right-multiplies the CTM by affine.
	Transform(affine Affine)

	// ClipPath intersects the current clip with path.
	ClipPath(path PathBuilderTarget)

	DrawPathSolid(path PathBuilderTarget, color RGBA)
	DrawPathLinearGradient(path PathBuilderTarget, line []ColorStop, p1, p2 Point, extend ExtendMode, gradientTransform Affine)
	DrawPathRadialGradient(path PathBuilderTarget, line []ColorStop, c0 Point, r0 float64, c1 Point, r1 float64, extend ExtendMode, gradientTransform Affine)
	DrawPathSweepGradient(path PathBuilderTarget, line []ColorStop, center Point, startAngle, endAngle float64, extend ExtendMode, gradientTransform Affine)
}

// Translate is a generic helper equivalent to Transform(TranslateAffine(x, y)).
func Translate(c Canvas, x, y float64) {
	c.Transform(TranslateAffine(x, y))
}

// ScaleCanvas is a generic helper equivalent to Transform(ScaleAffine(sx, sy)).
func ScaleCanvas(c Canvas, sx, sy float64) {
	c.Transform(ScaleAffine(sx, sy))
}

// rectPath builds a closed rectangular path via moveTo/lineTo×3/closePath.
func rectPath(c Canvas, x, y, w, h float64) PathBuilderTarget {
	p := c.NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}

// DrawRectSolid fills a rectangle with a solid color.
func DrawRectSolid(c Canvas, x, y, w, h float64, color RGBA) {
	c.DrawPathSolid(rectPath(c, x, y, w, h), color)
}

// DrawRectLinearGradient fills a rectangle with a linear gradient.
func DrawRectLinearGradient(c Canvas, x, y, w, h float64, line []ColorStop, p1, p2 Point, extend ExtendMode, gradientTransform Affine) {
	c.DrawPathLinearGradient(rectPath(c, x, y, w, h), line, p1, p2, extend, gradientTransform)
}

// DrawRectRadialGradient fills a rectangle with a radial gradient.
func DrawRectRadialGradient(c Canvas, x, y, w, h float64, line []ColorStop, c0 Point, r0 float64, c1 Point, r1 float64, extend ExtendMode, gradientTransform Affine) {
	c.DrawPathRadialGradient(rectPath(c, x, y, w, h), line, c0, r0, c1, r1, extend, gradientTransform)
}

// DrawRectSweepGradient fills a rectangle with a sweep gradient.
func DrawRectSweepGradient(c Canvas, x, y, w, h float64, line []ColorStop, center Point, startAngle, endAngle float64, extend ExtendMode, gradientTransform Affine) {
	c.DrawPathSweepGradient(rectPath(c, x, y, w, h), line, center, startAngle, endAngle, extend, gradientTransform)
}
