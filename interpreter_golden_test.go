package colr_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	colr "github.com/blackfoundrycom/gocolr"
	"github.com/blackfoundrycom/gocolr/recorder"
)

// goldenFont is a standalone FontData fake for this file's golden-stream
// tests, kept separate from the package-internal fakeFont in
// font_test.go since colr_test (an external test package, used
// here to avoid the colr -> recorder -> colr import cycle) cannot reach
// unexported helpers of package colr.
type goldenFont struct {
	kinds      map[colr.GlyphID]colr.GlyphKind
	paintRoots map[colr.GlyphID]colr.Paint
	bounds     map[colr.GlyphID]colr.Rect
	palettes   [][]colr.RGBA
}

func newGoldenFont() *goldenFont {
	return &goldenFont{
		kinds:      map[colr.GlyphID]colr.GlyphKind{},
		paintRoots: map[colr.GlyphID]colr.Paint{},
		bounds:     map[colr.GlyphID]colr.Rect{},
	}
}

func (f *goldenFont) ColorGlyphKind(glyphID colr.GlyphID) colr.GlyphKind { return f.kinds[glyphID] }
func (f *goldenFont) COLRv0Layers(colr.GlyphID) []colr.Layer             { return nil }
func (f *goldenFont) PaintRoot(glyphID colr.GlyphID) colr.Paint          { return f.paintRoots[glyphID] }
func (f *goldenFont) Layer(int) colr.Paint                              { return nil }
func (f *goldenFont) ClipBox(colr.GlyphID) (colr.Rect, bool)            { return colr.Rect{}, false }
func (f *goldenFont) DrawOutline(glyphID colr.GlyphID, target colr.PathBuilderTarget) {
	b := f.bounds[glyphID]
	target.MoveTo(b.XMin, b.YMin)
	target.LineTo(b.XMax, b.YMin)
	target.LineTo(b.XMax, b.YMax)
	target.LineTo(b.XMin, b.YMax)
	target.Close()
}
func (f *goldenFont) GlyphBounds(glyphID colr.GlyphID) colr.Rect { return f.bounds[glyphID] }
func (f *goldenFont) Palettes() [][]colr.RGBA                   { return f.palettes }
func (f *goldenFont) Instancer() colr.Instancer                 { return nil }
func (f *goldenFont) VarIndexMap() colr.VarIndexMap             { return nil }

var _ colr.FontData = (*goldenFont)(nil)

// floatsClose treats two float64 fields as equal within an epsilon,
// since the interpreter's gradient-stop normalization and affine
// composition introduce floating point noise a literal expected stream
// can't match bit-for-bit.
var floatsClose = cmp.Comparer(func(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
})

// Scenario: a solid no-color glyph draws exactly one SolidCommand with
// the caller's text color (spec.md 8, "Solid no-color glyph"), asserted
// against a literal expected command stream rather than a hand-rolled
// counter.
func TestDrawGlyphSolidProducesExpectedCommandStream(t *testing.T) {
	font := newGoldenFont()
	font.kinds[1] = colr.GlyphKindPlain
	font.bounds[1] = colr.Rect{XMin: 0, YMin: 0, XMax: 10, YMax: 10}

	interp := colr.NewInterpreter(font)
	canvas := recorder.NewRecordingCanvas()
	textColor := colr.RGBA{R: 0, G: 0, B: 0, A: 1}

	if err := interp.DrawGlyph(canvas, 1, -1, textColor); err != nil {
		t.Fatalf("DrawGlyph() error = %v", err)
	}

	if len(canvas.Log) != 1 {
		t.Fatalf("Log = %v, want exactly one command", canvas.Log)
	}
	cmd, ok := canvas.Log[0].(recorder.SolidCommand)
	if !ok {
		t.Fatalf("Log[0] is %T, want recorder.SolidCommand", canvas.Log[0])
	}
	if diff := cmp.Diff(textColor, cmd.Color, floatsClose); diff != "" {
		t.Errorf("solid color mismatch (-want +got):\n%s", diff)
	}
}

// Scenario: a Composite subtree opens a SrcOver layer for the implicit
// glyph-bound scope, draws backdrop then source within a nested
// Multiply layer, and closes both, in that exact order (spec.md 8,
// "Composite subtree").
func TestDrawGlyphCompositeProducesExpectedCommandStream(t *testing.T) {
	font := newGoldenFont()
	font.kinds[1] = colr.GlyphKindCOLRv1
	font.bounds[1] = colr.Rect{XMin: 0, YMin: 0, XMax: 10, YMax: 10}
	red := colr.RGBA{R: 1, A: 1}
	blue := colr.RGBA{B: 1, A: 1}
	font.palettes = [][]colr.RGBA{{red, blue}}
	font.paintRoots[1] = colr.Glyph{
		GlyphID: 1,
		Child: colr.Composite{
			Backdrop: colr.Solid{PaletteIndex: 0, Alpha: 1},
			Source:   colr.Solid{PaletteIndex: 1, Alpha: 1},
			Mode:     colr.CompositeMultiply,
		},
	}

	interp := colr.NewInterpreter(font)
	canvas := recorder.NewRecordingCanvas()
	if err := interp.DrawGlyph(canvas, 1, 0, colr.RGBA{}); err != nil {
		t.Fatalf("DrawGlyph() error = %v", err)
	}

	var solids []colr.RGBA
	var modes []colr.CompositeMode
	var kinds []string
	for _, cmd := range canvas.Log {
		switch c := cmd.(type) {
		case recorder.SolidCommand:
			solids = append(solids, c.Color)
			kinds = append(kinds, "Solid")
		case recorder.CompositeBeginCommand:
			modes = append(modes, c.Mode)
			kinds = append(kinds, "CompositeBegin")
		case recorder.CompositeEndCommand:
			kinds = append(kinds, "CompositeEnd")
		case recorder.SaveCommand:
			kinds = append(kinds, "Save")
		case recorder.RestoreCommand:
			kinds = append(kinds, "Restore")
		case recorder.ClipCommand:
			kinds = append(kinds, "Clip")
		case recorder.TransformCommand:
			kinds = append(kinds, "Transform")
		}
	}
	if diff := cmp.Diff([]colr.RGBA{red, blue}, solids, floatsClose); diff != "" {
		t.Errorf("solid draw order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]colr.CompositeMode{colr.CompositeSrcOver, colr.CompositeMultiply}, modes); diff != "" {
		t.Errorf("composite layer order mismatch (-want +got):\n%s", diff)
	}

	// The Glyph's own clip scope never opens a canvas.SavedState (the
	// glyph outline is the first path established, nothing yet to
	// intersect against), but Composite's own ensureClipAndPush call
	// does, since the glyph outline is already the current path by
	// then; backdrop and source each get their own nested SavedState so
	// neither's transform or clip leaks into the other (spec.md 8,
	// "Composite subtree" expects three nested SavedState scopes).
	wantKinds := []string{
		"Save", "Clip", "Transform",
		"CompositeBegin",
		"Save", "Solid", "Restore",
		"CompositeBegin",
		"Save", "Solid", "Restore",
		"CompositeEnd",
		"CompositeEnd",
		"Restore",
	}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Errorf("command kind sequence mismatch (-want +got):\n%s", diff)
	}
}
