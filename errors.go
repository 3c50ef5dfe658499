package colr

import (
	"errors"
	"fmt"
)

// RecursionError is returned by DrawGlyph when a ColrGlyph paint
// references a base glyph already being expanded on the current render's
// recursion stack (spec.md 7). It is fatal: the render is aborted and
// the canvas state stack is left exactly as balanced as every completed
// subtree left it, because every subtree is wrapped in a Canvas
// SavedState scope.
type RecursionError struct {
	GlyphID GlyphID
}

func (e *RecursionError) Error() string {
	return fmt.Sprintf("colr: glyph %d is already being expanded (ColrGlyph cycle)", e.GlyphID)
}

// ErrUnknownBaseGlyph is returned when a ColrGlyph paint references a
// glyph id the font-loader collaborator does not report as a COLRv1
// glyph.
var ErrUnknownBaseGlyph = errors.New("colr: referenced base glyph not found")

// The remaining error kinds from spec.md 7 (UnknownPaintFormat,
// DegenerateGradient, OutOfRangePaletteIndex, VariationOutOfRange) are
// recoverable: the interpreter logs once at the point it applies the
// defined fallback and continues, rather than returning an error. These
// helpers are the single place that happens so the log site and the
// fallback behavior stay next to each other.

func logUnknownPaintFormat(format uint8) {
	Logger().Warn("colr: unknown paint format, skipping subtree", "format", format)
}

func logDegenerateGradient(reason string) {
	Logger().Warn("colr: degenerate gradient", "reason", reason)
}

func logOutOfRangePaletteIndex(index ColorIndex, paletteLen int) {
	Logger().Warn("colr: palette index out of range, using text color",
		"index", index, "paletteLen", paletteLen)
}

func logVariationOutOfRange(varIdx uint32) {
	Logger().Debug("colr: variation index out of range, using raw index", "varIdx", varIdx)
}
