package colr

// GetGlyphBounds returns glyphID's rendered bounding box in font design
// units (spec.md 4.G). For a plain or COLRv0 glyph this is the union of
// its outline(s); for a COLRv0 glyph that is the union over every
// layer's outline, the behavior original_source's BoundsPen usage
// relies on and spec.md's distillation leaves implicit. For a COLRv1
// glyph, the font-loader's own ClipBox is used when present (COLRv1
// lets a font declare an explicit, possibly tighter or looser, clip
// box per glyph); otherwise the base glyph's outline bounds stand in,
// since walking the full paint tree to compute tight bounds is not
// something gocolr attempts.
func GetGlyphBounds(font FontData, glyphID GlyphID) Rect {
	switch font.ColorGlyphKind(glyphID) {
	case GlyphKindCOLRv0:
		var union Rect
		for _, layer := range font.COLRv0Layers(glyphID) {
			union = union.Union(font.GlyphBounds(layer.GlyphID))
		}
		return union

	case GlyphKindCOLRv1:
		if box, ok := font.ClipBox(glyphID); ok {
			return box
		}
		return font.GlyphBounds(glyphID)

	default:
		return font.GlyphBounds(glyphID)
	}
}
