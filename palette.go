package colr

// resolveColor turns a Solid/ColorStop's (PaletteIndex, Alpha) pair into
// a concrete RGBA, per spec.md 3.5 and 4.F:
//
//   - index == NoColorIndex uses textColor, the caller-supplied current
//     text color, rather than any palette entry.
//   - otherwise, index is looked up in the active palette; an
//     out-of-range index logs and falls back to textColor too, since
//     there is no other reasonable default.
//   - the color's own alpha is multiplied by alpha (the paint's Alpha
//     field, itself possibly variation-resolved), not replaced.
func resolveColor(palette []RGBA, textColor RGBA, index ColorIndex, alpha float64) RGBA {
	var base RGBA
	if index == NoColorIndex {
		base = textColor
	} else if int(index) < len(palette) {
		base = palette[index]
	} else {
		logOutOfRangePaletteIndex(index, len(palette))
		base = textColor
	}
	base.A *= alpha
	return base
}

// resolveColorLine resolves every stop of a paint tree's color line
// against the active palette and text color, turning PaintColorStop
// (offset + palette reference) into ColorStop (offset + concrete
// color) for NormalizeColorLine and the Canvas gradient ops to
// consume. This mirrors font.py's _readColorLine, which resolves
// colors before normalizing offsets.
func resolveColorLine(palette []RGBA, textColor RGBA, stops []PaintColorStop) []ColorStop {
	resolved := make([]ColorStop, len(stops))
	for i, s := range stops {
		resolved[i] = ColorStop{
			Offset: s.StopOffset,
			Color:  resolveColor(palette, textColor, s.PaletteIndex, s.Alpha),
		}
	}
	return resolved
}
