package colr

import "math"

// GlyphID identifies a glyph within a font's glyph order, the same
// numbering the font's cmap/glyf/CFF tables use (spec.md 6.1).
type GlyphID uint16

// Rect is an axis-aligned bounding box in font design units.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// IsEmpty reports whether r contains no area, the zero value in
// particular.
func (r Rect) IsEmpty() bool {
	return r.XMax <= r.XMin || r.YMax <= r.YMin
}

// Union returns the smallest Rect containing both r and other. An
// empty operand does not contribute; Union of two empty rects is
// empty. This is the union-of-layers step getGlyphBounds uses to
// combine a COLRv0 glyph's per-layer outline boxes (spec.md 4.G,
// supplemented from the font.py BoundsPen usage in original_source).
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		XMin: math.Min(r.XMin, other.XMin),
		YMin: math.Min(r.YMin, other.YMin),
		XMax: math.Max(r.XMax, other.XMax),
		YMax: math.Max(r.YMax, other.YMax),
	}
}

// GlyphKind classifies how a glyph carries color, the supplemented
// introspection spec.md's distillation omits but original_source's
// colrV0GlyphNames/colrV1GlyphNames bookkeeping relies on throughout
// font.py. FontData.ColorGlyphKind lets a caller decide, before ever
// calling DrawGlyph, whether a glyph needs a palette/text color at all.
type GlyphKind int

const (
	// GlyphKindPlain is an outline-only glyph with no COLR entry.
	GlyphKindPlain GlyphKind = iota
	// GlyphKindCOLRv0 has a flat COLR layer list.
	GlyphKindCOLRv0
	// GlyphKindCOLRv1 has a COLRv1 paint-tree root.
	GlyphKindCOLRv1
)

// Layer is one entry of a COLRv0 flat layer list: a glyph outline
// painted with one palette color.
type Layer struct {
	GlyphID      GlyphID
	PaletteIndex ColorIndex
}

// FontData is the font-loader collaborator gocolr consumes (spec.md
// 6.1). gocolr never parses OpenType binary tables itself — decoding
// glyf/CFF outlines, COLR, CPAL, fvar and the item variation store is
// explicitly out of scope; FontData is the seam a real font library
// implements.
type FontData interface {
	// ColorGlyphKind reports how glyphID carries color.
	ColorGlyphKind(glyphID GlyphID) GlyphKind

	// COLRv0Layers returns the flat layer list for glyphID. Only valid
	// when ColorGlyphKind(glyphID) == GlyphKindCOLRv0.
	COLRv0Layers(glyphID GlyphID) []Layer

	// PaintRoot returns the COLRv1 paint-tree root for glyphID. Only
	// valid when ColorGlyphKind(glyphID) == GlyphKindCOLRv1.
	PaintRoot(glyphID GlyphID) Paint

	// Layer returns the i-th entry of the font's shared COLRv1 layer
	// list, as referenced by a ColrLayers paint's FirstLayerIndex span.
	Layer(i int) Paint

	// ClipBox returns the COLRv1 clip list's entry for glyphID, if any.
	ClipBox(glyphID GlyphID) (box Rect, ok bool)

	// DrawOutline appends glyphID's outline, in font design units, to
	// target. Shaping and hinting are out of scope; this is a direct
	// glyf/CFF-to-path conversion the font-loader collaborator owns.
	DrawOutline(glyphID GlyphID, target PathBuilderTarget)

	// GlyphBounds returns glyphID's outline bounding box in font design
	// units, as reported by the font-loader (e.g. glyf bbox or a
	// recompute over the outline).
	GlyphBounds(glyphID GlyphID) Rect

	// Palettes returns the CPAL table's palettes, each a same-length
	// slice of RGBA colors indexed by ColorIndex.
	Palettes() [][]RGBA

	// Instancer returns the variation-store delta resolver for the
	// currently active normalized axis location, or nil if the font is
	// not variable or no location has been set.
	Instancer() Instancer

	// VarIndexMap returns the optional DeltaSetIndexMap indirection, or
	// nil if the font has none.
	VarIndexMap() VarIndexMap
}
