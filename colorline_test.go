package colr

import "testing"

func TestNormalizeColorLineAlreadyInRange(t *testing.T) {
	stops := []ColorStop{{Offset: 0, Color: RGBA{R: 1}}, {Offset: 1, Color: RGBA{G: 1}}}
	minStop, maxStop, normalized := NormalizeColorLine(stops)
	if minStop != 0 || maxStop != 1 {
		t.Fatalf("minStop,maxStop = %v,%v, want 0,1", minStop, maxStop)
	}
	if normalized[0].Offset != 0 || normalized[1].Offset != 1 {
		t.Fatalf("normalized = %+v", normalized)
	}
}

func TestNormalizeColorLineOutOfRange(t *testing.T) {
	stops := []ColorStop{{Offset: -0.5}, {Offset: 1.5}}
	minStop, maxStop, normalized := NormalizeColorLine(stops)
	if minStop != -0.5 || maxStop != 1.5 {
		t.Fatalf("minStop,maxStop = %v,%v, want -0.5,1.5", minStop, maxStop)
	}
	if normalized[0].Offset != 0 || normalized[1].Offset != 1 {
		t.Fatalf("normalized = %+v, want rescaled to [0,1]", normalized)
	}
}

func TestNormalizeColorLineDegenerate(t *testing.T) {
	stops := []ColorStop{{Offset: 0.3}, {Offset: 0.3}}
	minStop, maxStop, normalized := NormalizeColorLine(stops)
	if minStop != 0 || maxStop != 1 {
		t.Fatalf("minStop,maxStop = %v,%v, want 0,1 (degenerate fallback)", minStop, maxStop)
	}
	if len(normalized) != 2 {
		t.Fatalf("normalized = %+v", normalized)
	}
}

func TestNormalizeColorLineEmpty(t *testing.T) {
	minStop, maxStop, normalized := NormalizeColorLine(nil)
	if minStop != 0 || maxStop != 1 || len(normalized) != 0 {
		t.Fatalf("NormalizeColorLine(nil) = %v,%v,%v", minStop, maxStop, normalized)
	}
}

func TestReduceThreeAnchorsToTwoRightAngle(t *testing.T) {
	p0, p1 := ReduceThreeAnchorsToTwo(Pt(0, 0), Pt(1, 0), Pt(0, 1))
	if p0 != Pt(0, 0) {
		t.Errorf("p0 = %v, want (0,0)", p0)
	}
	if p1 != Pt(1, 0) {
		t.Errorf("p1 = %v, want (1,0) unchanged since p1-p0 is already perpendicular to p2-p0", p1)
	}
}

func TestReduceThreeAnchorsToTwoDegenerate(t *testing.T) {
	p0, p1 := ReduceThreeAnchorsToTwo(Pt(0, 0), Pt(1, 1), Pt(0, 0))
	if p0 != Pt(0, 0) || p1 != Pt(1, 1) {
		t.Fatalf("ReduceThreeAnchorsToTwo() = %v, %v, want unprojected fallback (0,0),(1,1)", p0, p1)
	}
}

func TestRepositionLinearEndpoints(t *testing.T) {
	p1, p2 := RepositionLinearEndpoints(Pt(0, 0), Pt(10, 0), 0.25, 0.75)
	if p1 != Pt(2.5, 0) || p2 != Pt(7.5, 0) {
		t.Fatalf("RepositionLinearEndpoints() = %v, %v", p1, p2)
	}
}

func TestRepositionRadialEndpoints(t *testing.T) {
	c0, c1, r0, r1 := RepositionRadialEndpoints(Pt(0, 0), Pt(10, 0), 0, 10, 0.5, 1)
	if c0 != Pt(5, 0) || c1 != Pt(10, 0) {
		t.Fatalf("centers = %v, %v", c0, c1)
	}
	if r0 != 5 || r1 != 10 {
		t.Fatalf("radii = %v, %v", r0, r1)
	}
}

func TestRepositionSweepAngles(t *testing.T) {
	start, end := RepositionSweepAngles(0, 360, 0.25, 0.75)
	if start != 90 || end != 270 {
		t.Fatalf("RepositionSweepAngles() = %v, %v, want 90, 270", start, end)
	}
}
