package recorder

import (
	"math"
	"testing"

	"github.com/blackfoundrycom/gocolr"
)

func colorsClose(a, b colr.RGBA, eps float64) bool {
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestLinearFillEndpoints(t *testing.T) {
	line := []colr.ColorStop{{Offset: 0, Color: colr.Red}, {Offset: 1, Color: colr.Blue}}
	g := &linearFill{p0: colr.Pt(0, 0), p2: colr.Pt(10, 0), line: line, extend: colr.ExtendPad}

	if got := g.colorAt(0, 0); !colorsClose(got, colr.Red, 1e-9) {
		t.Errorf("colorAt(start) = %+v, want Red", got)
	}
	if got := g.colorAt(10, 0); !colorsClose(got, colr.Blue, 1e-9) {
		t.Errorf("colorAt(end) = %+v, want Blue", got)
	}
}

func TestLinearFillDegenerateReturnsFirstStop(t *testing.T) {
	line := []colr.ColorStop{{Offset: 0.5, Color: colr.Green}, {Offset: 0, Color: colr.Red}}
	g := &linearFill{p0: colr.Pt(5, 5), p2: colr.Pt(5, 5), line: line, extend: colr.ExtendPad}
	if got := g.colorAt(100, 100); !colorsClose(got, colr.Red, 1e-9) {
		t.Errorf("degenerate linear fill = %+v, want first stop (Red)", got)
	}
}

func TestRadialFillConcentricCircles(t *testing.T) {
	line := []colr.ColorStop{{Offset: 0, Color: colr.Red}, {Offset: 1, Color: colr.Blue}}
	g := &radialFill{c0: colr.Pt(0, 0), r0: 0, c1: colr.Pt(0, 0), r1: 10, line: line, extend: colr.ExtendPad}

	if got := g.colorAt(0, 0); !colorsClose(got, colr.Red, 1e-9) {
		t.Errorf("colorAt(center) = %+v, want Red", got)
	}
	if got := g.colorAt(10, 0); !colorsClose(got, colr.Blue, 0.01) {
		t.Errorf("colorAt(edge) = %+v, want Blue", got)
	}
}

func TestRadialFillOutsideBothCirclesIsTransparent(t *testing.T) {
	line := []colr.ColorStop{{Offset: 0, Color: colr.Red}, {Offset: 1, Color: colr.Blue}}
	g := &radialFill{c0: colr.Pt(0, 0), r0: 1, c1: colr.Pt(20, 0), r1: 1, line: line, extend: colr.ExtendPad}
	got := g.colorAt(0, 50)
	if got.A != 0 {
		t.Errorf("colorAt(far off axis) = %+v, want transparent", got)
	}
}

func TestSweepFillQuadrants(t *testing.T) {
	line := []colr.ColorStop{{Offset: 0, Color: colr.Red}, {Offset: 1, Color: colr.Blue}}
	g := &sweepFill{center: colr.Pt(0, 0), startAngle: 0, endAngle: 360, line: line, extend: colr.ExtendPad}

	if got := g.colorAt(1, 0); !colorsClose(got, colr.Red, 1e-9) {
		t.Errorf("colorAt(0deg) = %+v, want Red", got)
	}
	far := g.colorAt(-1, -0.0001)
	if far.A == 0 {
		t.Errorf("colorAt(near 360deg) should not be fully transparent")
	}
}

func TestSweepFillAtCenterReturnsFirstStop(t *testing.T) {
	line := []colr.ColorStop{{Offset: 0.3, Color: colr.Green}, {Offset: 0, Color: colr.Red}}
	g := &sweepFill{center: colr.Pt(5, 5), startAngle: 0, endAngle: 360, line: line, extend: colr.ExtendPad}
	if got := g.colorAt(5, 5); !colorsClose(got, colr.Red, 1e-9) {
		t.Errorf("colorAt(center) = %+v, want first stop (Red)", got)
	}
}

func TestSolidFillIsConstant(t *testing.T) {
	f := &solidFill{color: colr.Green}
	got := colr.FromColor(f.At(3, 9))
	if !colorsClose(got, colr.Green, 0.01) {
		t.Errorf("solidFill.At = %+v, want Green", got)
	}
}

func TestDeviceSpaceFillInvertsTransform(t *testing.T) {
	line := []colr.ColorStop{{Offset: 0, Color: colr.Red}, {Offset: 1, Color: colr.Blue}}
	inner := &linearFill{p0: colr.Pt(0, 0), p2: colr.Pt(10, 0), line: line, extend: colr.ExtendPad}

	// Device space is the gradient space shifted by (100, 100): a
	// device pixel at (100, 100) should map back to gradient-space
	// origin, i.e. the start-stop color.
	f := &deviceSpaceFill{fill: inner, inverse: colr.TranslateAffine(-100.5, -100.5)}
	got := colr.FromColor(f.At(100, 100))
	if !colorsClose(got, colr.Red, 1e-9) {
		t.Errorf("deviceSpaceFill.At(100,100) = %+v, want Red", got)
	}
}
