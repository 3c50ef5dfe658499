package colr

import "testing"

func TestRectIsEmpty(t *testing.T) {
	if !(Rect{}).IsEmpty() {
		t.Fatalf("zero Rect should be empty")
	}
	if (Rect{XMin: 0, YMin: 0, XMax: 10, YMax: 10}).IsEmpty() {
		t.Fatalf("non-degenerate Rect should not be empty")
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{XMin: 0, YMin: 0, XMax: 10, YMax: 10}
	b := Rect{XMin: 5, YMin: -5, XMax: 20, YMax: 8}
	got := a.Union(b)
	want := Rect{XMin: 0, YMin: -5, XMax: 20, YMax: 10}
	if got != want {
		t.Fatalf("Union() = %+v, want %+v", got, want)
	}
}

func TestRectUnionWithEmptyIsIdentity(t *testing.T) {
	a := Rect{XMin: 1, YMin: 1, XMax: 2, YMax: 2}
	if got := a.Union(Rect{}); got != a {
		t.Fatalf("Union(empty) = %+v, want %+v", got, a)
	}
	if got := (Rect{}).Union(a); got != a {
		t.Fatalf("empty.Union(a) = %+v, want %+v", got, a)
	}
}

// fakeFont is a minimal FontData used by other tests in this package.
type fakeFont struct {
	kinds      map[GlyphID]GlyphKind
	colrv0     map[GlyphID][]Layer
	paintRoots map[GlyphID]Paint
	layers     []Paint
	clipBoxes  map[GlyphID]Rect
	bounds     map[GlyphID]Rect
	palettes   [][]RGBA
}

func newFakeFont() *fakeFont {
	return &fakeFont{
		kinds:      make(map[GlyphID]GlyphKind),
		colrv0:     make(map[GlyphID][]Layer),
		paintRoots: make(map[GlyphID]Paint),
		clipBoxes:  make(map[GlyphID]Rect),
		bounds:     make(map[GlyphID]Rect),
	}
}

func (f *fakeFont) ColorGlyphKind(glyphID GlyphID) GlyphKind { return f.kinds[glyphID] }
func (f *fakeFont) COLRv0Layers(glyphID GlyphID) []Layer     { return f.colrv0[glyphID] }
func (f *fakeFont) PaintRoot(glyphID GlyphID) Paint          { return f.paintRoots[glyphID] }
func (f *fakeFont) Layer(i int) Paint                        { return f.layers[i] }
func (f *fakeFont) ClipBox(glyphID GlyphID) (Rect, bool) {
	box, ok := f.clipBoxes[glyphID]
	return box, ok
}
func (f *fakeFont) DrawOutline(glyphID GlyphID, target PathBuilderTarget) {
	b := f.bounds[glyphID]
	target.MoveTo(b.XMin, b.YMin)
	target.LineTo(b.XMax, b.YMin)
	target.LineTo(b.XMax, b.YMax)
	target.LineTo(b.XMin, b.YMax)
	target.Close()
}
func (f *fakeFont) GlyphBounds(glyphID GlyphID) Rect { return f.bounds[glyphID] }
func (f *fakeFont) Palettes() [][]RGBA               { return f.palettes }
func (f *fakeFont) Instancer() Instancer             { return nil }
func (f *fakeFont) VarIndexMap() VarIndexMap         { return nil }

var _ FontData = (*fakeFont)(nil)
