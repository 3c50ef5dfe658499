package colr

import "testing"

type mapInstancer map[uint32]float64

func (m mapInstancer) Delta(varIdx uint32) float64 { return m[varIdx] }

func TestResolveAttrNoVariation(t *testing.T) {
	got := ResolveAttr(10, NoVariationIndex, 0, mapInstancer{0: 99}, nil)
	if got != 10 {
		t.Fatalf("ResolveAttr() = %v, want 10", got)
	}
}

func TestResolveAttrNilInstancer(t *testing.T) {
	got := ResolveAttr(10, 5, 0, nil, nil)
	if got != 10 {
		t.Fatalf("ResolveAttr() = %v, want 10 (nil instancer is a no-op)", got)
	}
}

func TestResolveAttrAppliesDelta(t *testing.T) {
	instancer := mapInstancer{7: 2.5}
	got := ResolveAttr(10, 5, 2, instancer, nil)
	if got != 12.5 {
		t.Fatalf("ResolveAttr() = %v, want 12.5", got)
	}
}

type offsetMap struct{ offset uint32 }

func (m offsetMap) Map(varIdx uint32) (uint32, bool) { return varIdx + m.offset, true }

func TestResolveAttrAppliesVarIndexMap(t *testing.T) {
	instancer := mapInstancer{100: 3}
	got := ResolveAttr(1, 0, 0, instancer, offsetMap{offset: 100})
	if got != 4 {
		t.Fatalf("ResolveAttr() = %v, want 4", got)
	}
}

type emptyMap struct{}

func (emptyMap) Map(varIdx uint32) (uint32, bool) { return 0, false }

func TestResolveAttrVarIndexMapMissFallsBackToRaw(t *testing.T) {
	instancer := mapInstancer{3: 9}
	got := ResolveAttr(1, 0, 3, instancer, emptyMap{})
	if got != 10 {
		t.Fatalf("ResolveAttr() = %v, want 10 (fallback to raw varIdx)", got)
	}
}

func TestVarColorStopResolve(t *testing.T) {
	instancer := mapInstancer{0: 0.1, 1: -0.2}
	s := VarColorStop{StopOffset: 0.5, PaletteIndex: 3, Alpha: 1, VarIndexBase: 0}
	got := s.Resolve(instancer, nil)
	if got.StopOffset != 0.6 {
		t.Errorf("StopOffset = %v, want 0.6", got.StopOffset)
	}
	if got.Alpha != 0.8 {
		t.Errorf("Alpha = %v, want 0.8", got.Alpha)
	}
	if got.PaletteIndex != 3 {
		t.Errorf("PaletteIndex = %v, want 3 (not variable)", got.PaletteIndex)
	}
}

func TestResolveVarColorLine(t *testing.T) {
	stops := []VarColorStop{
		{StopOffset: 0, VarIndexBase: NoVariationIndex},
		{StopOffset: 1, VarIndexBase: NoVariationIndex},
	}
	got := ResolveVarColorLine(stops, nil, nil)
	if len(got) != 2 || got[0].StopOffset != 0 || got[1].StopOffset != 1 {
		t.Fatalf("ResolveVarColorLine() = %+v", got)
	}
}

func TestVarLinearGradientResolveNoInstancer(t *testing.T) {
	g := VarLinearGradient{P0: Pt(0, 0), P1: Pt(1, 0), P2: Pt(0, 1), VarIndexBase: NoVariationIndex}
	got := g.Resolve(nil, nil)
	if got.P0 != Pt(0, 0) || got.P1 != Pt(1, 0) || got.P2 != Pt(0, 1) {
		t.Fatalf("Resolve() = %+v", got)
	}
}

func TestVarTransformResolveIdentityWhenNoVariation(t *testing.T) {
	child := Solid{}
	vt := VarTransform{Matrix: IdentityAffine(), Child: child, VarIndexBase: NoVariationIndex}
	got := vt.Resolve(mapInstancer{0: 5}, nil)
	if got.Matrix != IdentityAffine() {
		t.Fatalf("Resolve().Matrix = %v, want identity", got.Matrix)
	}
	if got.Child != Paint(child) {
		t.Fatalf("Resolve().Child not carried through")
	}
}

func TestVarRotateResolveWithCenter(t *testing.T) {
	center := Pt(1, 1)
	instancer := mapInstancer{2: 0, 3: 1, 4: -1}
	r := VarRotate{Angle: 90, Center: &center, VarIndexBase: 2}
	got := r.Resolve(instancer, nil)
	if got.Angle != 90 {
		t.Errorf("angle = %v, want 90", got.Angle)
	}
	if got.Center == nil || *got.Center != Pt(2, 0) {
		t.Fatalf("center = %v, want (2,0)", got.Center)
	}
}

func TestVarRotateResolveNilCenterStaysNil(t *testing.T) {
	r := VarRotate{Angle: 45, VarIndexBase: NoVariationIndex}
	got := r.Resolve(nil, nil)
	if got.Center != nil {
		t.Fatalf("center = %v, want nil", got.Center)
	}
}
