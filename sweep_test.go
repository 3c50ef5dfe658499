package colr

import (
	"math"
	"testing"
)

func TestBuildSweepGradientPatchesMeshCount(t *testing.T) {
	stops := []ColorStop{{Offset: 0, Color: RGBA{R: 1, A: 1}}, {Offset: 1, Color: RGBA{G: 1, A: 1}}}
	patches := BuildSweepGradientPatches(stops, Pt(0, 0), 10, 0, 90, false, 0)
	if len(patches) == 0 {
		t.Fatal("BuildSweepGradientPatches() returned no patches")
	}
	for _, p := range patches {
		if p.Gouraud {
			t.Errorf("patch unexpectedly marked Gouraud")
		}
	}
}

func TestBuildSweepGradientPatchesGouraudInflatesRadius(t *testing.T) {
	stops := []ColorStop{{Offset: 0}, {Offset: 1}}
	patches := BuildSweepGradientPatches(stops, Pt(0, 0), 10, 0, 10, true, 0)
	if len(patches) == 0 {
		t.Fatal("no patches")
	}
	for _, p := range patches {
		if !p.Gouraud {
			t.Errorf("patch should be marked Gouraud")
		}
		dist := math.Hypot(p.P0.X, p.P0.Y)
		if dist <= 10 {
			t.Errorf("gouraud patch radius %v should be inflated beyond 10", dist)
		}
	}
}

func TestBuildSweepGradientPatchesSkipsZeroWidthStops(t *testing.T) {
	stops := []ColorStop{{Offset: 0.5}, {Offset: 0.5}, {Offset: 1}}
	patches := BuildSweepGradientPatches(stops, Pt(0, 0), 1, 0, 360, false, math.Pi/8)
	for _, p := range patches {
		a0 := math.Atan2(p.P0.Y, p.P0.X)
		a1 := math.Atan2(p.P1.Y, p.P1.X)
		if a0 == a1 {
			t.Errorf("found a zero-width patch, want the equal-offset pair skipped")
		}
	}
}

func TestBuildSweepGradientPatchesClampsMaxAngle(t *testing.T) {
	stops := []ColorStop{{Offset: 0}, {Offset: 1}}
	tooSmall := BuildSweepGradientPatches(stops, Pt(0, 0), 1, 0, 180, false, 0.00001)
	tooBig := BuildSweepGradientPatches(stops, Pt(0, 0), 1, 0, 180, false, math.Pi)
	if len(tooSmall) == 0 || len(tooBig) == 0 {
		t.Fatal("expected non-empty patch lists for clamped angles")
	}
	if len(tooSmall) < len(tooBig) {
		t.Errorf("smaller clamped maxAngle should produce at least as many patches: %d vs %d", len(tooSmall), len(tooBig))
	}
}

func TestSweepArcControlPointsMidpoint(t *testing.T) {
	p0 := Pt(1, 0)
	p1 := Pt(0, 1)
	c0, c1 := sweepArcControlPoints(p0, p1, Pt(0, 0), 1)
	if c0.X <= 0 || c0.Y <= 0 {
		t.Errorf("c0 = %v, want both components positive for a quarter-circle arc", c0)
	}
	if c1.X <= 0 || c1.Y <= 0 {
		t.Errorf("c1 = %v, want both components positive for a quarter-circle arc", c1)
	}
}

func TestDegToRad(t *testing.T) {
	if got := degToRad(180); math.Abs(got-math.Pi) > 1e-9 {
		t.Fatalf("degToRad(180) = %v, want pi", got)
	}
}
