package recorder

import (
	"image"
	"image/color"
	"math"

	"github.com/blackfoundrycom/gocolr"
)

// gradientFill is the internal contract every gradient brush below
// satisfies: given a gradient-space point it returns the color the
// gradient contributes there. A gradientFill is always queried through
// deviceSpaceFill, which maps device pixels back into the gradient's
// own coordinate space before calling colorAt, so these types only ever
// reason in gradient space.
type gradientFill interface {
	colorAt(x, y float64) colr.RGBA
}

// deviceSpaceFill adapts a gradientFill to image.Image by inverting a
// device-to-gradient-space affine transform per pixel. inverse is the
// Inverse() of the composition of the paint's own gradientTransform
// (the affine the interpreter passes to Canvas.DrawPath*Gradient) and
// the canvas CTM at draw time; it recovers gradient space from a device
// pixel center.
type deviceSpaceFill struct {
	fill    gradientFill
	inverse colr.Affine
}

func (f *deviceSpaceFill) ColorModel() color.Model { return color.NRGBAModel }

// Bounds is unbounded: a gradient fill covers the whole plane, clipped
// only by the path being rasterized. vector.Rasterizer never calls
// Bounds, but image.Image requires the method.
func (f *deviceSpaceFill) Bounds() image.Rectangle { return image.Rect(-1e9, -1e9, 1e9, 1e9) }

func (f *deviceSpaceFill) At(x, y int) color.Color {
	p := f.inverse.TransformPoint(colr.Pt(float64(x)+0.5, float64(y)+0.5))
	return f.fill.colorAt(p.X, p.Y).Color()
}

// firstStopColor returns the first stop's color (by offset) or
// Transparent if line is empty, for degenerate gradients that have
// collapsed to a single point or radius.
func firstStopColor(line []colr.ColorStop) colr.RGBA {
	if len(line) == 0 {
		return colr.Transparent
	}
	best := line[0]
	for _, s := range line[1:] {
		if s.Offset < best.Offset {
			best = s
		}
	}
	return best.Color
}

// linearFill evaluates a COLRv1 LinearGradient by projecting onto the
// axis between its two endpoints p0 and p2, matching font.py's
// _LinearGradient.colorAt. The interpreter has already reduced the three
// COLRv1 anchors to these two endpoints (ReduceThreeAnchorsToTwo in
// colorline.go) and rescaled them to the normalized stops
// (RepositionLinearEndpoints) before this fill is ever constructed.
type linearFill struct {
	p0, p2 colr.Point
	line   []colr.ColorStop
	extend colr.ExtendMode
}

func (g *linearFill) colorAt(x, y float64) colr.RGBA {
	dx := g.p2.X - g.p0.X
	dy := g.p2.Y - g.p0.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return firstStopColor(g.line)
	}
	px := x - g.p0.X
	py := y - g.p0.Y
	t := (px*dx + py*dy) / lengthSq
	return colr.ColorAtOffset(g.line, t, g.extend)
}

// radialFill evaluates a COLRv1 RadialGradient: the general two-circle
// gradient between (C0,R0) and (C1,R1), solved the way Cairo and Skia's
// native two-circle radial shaders do (backendCairo.py hands C0/R0/C1/R1
// straight to cairo_pattern_create_radial, which implements the same
// conical solve). Go has no native two-circle shader, so the quadratic
// is solved directly here.
type radialFill struct {
	c0     colr.Point
	r0     float64
	c1     colr.Point
	r1     float64
	line   []colr.ColorStop
	extend colr.ExtendMode
}

func (g *radialFill) colorAt(x, y float64) colr.RGBA {
	dcx := g.c1.X - g.c0.X
	dcy := g.c1.Y - g.c0.Y
	dr := g.r1 - g.r0

	a := dcx*dcx + dcy*dcy - dr*dr

	px := x - g.c0.X
	py := y - g.c0.Y
	b := px*dcx + py*dcy + g.r0*dr
	c := px*px + py*py - g.r0*g.r0

	const epsilon = 1e-9
	var t float64
	switch {
	case math.Abs(a) < epsilon:
		// The centre distance equals |r1 - r0| (one circle internally
		// tangent to the other, or the two identical): linear in t.
		if math.Abs(b) < epsilon {
			return firstStopColor(g.line)
		}
		t = c / (2 * b)
	default:
		disc := b*b - a*c
		if disc < 0 {
			return colr.Transparent
		}
		sqrtDisc := math.Sqrt(disc)
		t = (b + sqrtDisc) / a
		if g.r0+t*dr < 0 {
			t = (b - sqrtDisc) / a
		}
		if g.r0+t*dr < 0 {
			return colr.Transparent
		}
	}
	return colr.ColorAtOffset(g.line, t, g.extend)
}

// sweepFill evaluates a COLRv1 SweepGradient: the angle from center,
// mapped from [startAngle, endAngle] (in degrees, as COLRv1 stores them)
// onto [0, 1]. Mirrors sweepGradient.py's angle normalization.
type sweepFill struct {
	center               colr.Point
	startAngle, endAngle float64
	line                 []colr.ColorStop
	extend               colr.ExtendMode
}

func (g *sweepFill) colorAt(x, y float64) colr.RGBA {
	dx := x - g.center.X
	dy := y - g.center.Y
	if dx == 0 && dy == 0 {
		return firstStopColor(g.line)
	}
	angle := math.Atan2(dy, dx) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	sweep := g.endAngle - g.startAngle
	if sweep == 0 {
		return firstStopColor(g.line)
	}
	rel := angle - g.startAngle
	for rel < 0 {
		rel += 360
	}
	for rel >= 360 {
		rel -= 360
	}
	t := rel / sweep
	return colr.ColorAtOffset(g.line, t, g.extend)
}

// solidFill is a flat-color image.Image, used so DrawPathSolid can
// share the same rasterize-and-composite code path as the gradients.
type solidFill struct {
	color colr.RGBA
}

func (f *solidFill) ColorModel() color.Model { return color.NRGBAModel }
func (f *solidFill) Bounds() image.Rectangle { return image.Rect(-1e9, -1e9, 1e9, 1e9) }
func (f *solidFill) At(int, int) color.Color { return f.color.Color() }
