package colr

// Paint is a tagged union over the closed set of COLRv1 paint-tree node
// kinds. Every concrete type below implements Paint via the unexported
// isPaint marker, the same closed-dispatch idiom path.go uses for
// PathElement — an exhaustive type switch in interpreter.go replaces the
// numeric-format-code dispatch of the underlying table format, so an
// unrecognized paint can never silently reach a handler for the wrong
// kind.
type Paint interface {
	isPaint()
}

// ColorIndex names a CPAL palette slot, or the sentinel 0xFFFF meaning
// "use the caller-supplied text color" (spec.md 3.5).
type ColorIndex uint16

// NoColorIndex is the sentinel palette index meaning "use text color".
const NoColorIndex ColorIndex = 0xFFFF

// ColrLayers selects a contiguous run of paints from the font's shared
// layer list, all drawn with the current clip/transform.
type ColrLayers struct {
	FirstLayerIndex int
	NumLayers       int
}

func (ColrLayers) isPaint() {}

// Solid fills the current path with a single palette color.
type Solid struct {
	PaletteIndex ColorIndex
	Alpha        float64
}

func (Solid) isPaint() {}

// LinearGradient fills the current path with a linear gradient defined
// by three anchor points (p0, p1, p2); p2 together with p0 defines the
// gradient's perpendicular ("rotation") axis, see ReduceThreeAnchorsToTwo.
type LinearGradient struct {
	ColorLine ColorLine
	P0, P1, P2 Point
}

func (LinearGradient) isPaint() {}

// RadialGradient fills the current path with a radial gradient between
// two circles (c0, r0) and (c1, r1).
type RadialGradient struct {
	ColorLine ColorLine
	C0        Point
	R0        float64
	C1        Point
	R1        float64
}

func (RadialGradient) isPaint() {}

// SweepGradient fills the current path with an angular (conic) gradient
// around Center, sweeping from StartAngle to EndAngle (degrees).
type SweepGradient struct {
	ColorLine             ColorLine
	Center                Point
	StartAngle, EndAngle float64
}

func (SweepGradient) isPaint() {}

// Glyph clips to the outline of a plain (non-color) glyph and recurses
// into Child using that clip.
type Glyph struct {
	GlyphID GlyphID
	Child   Paint
}

func (Glyph) isPaint() {}

// ColrGlyph recurses into another glyph's COLRv1 paint root, subject to
// cycle detection via the interpreter's recursion guard.
type ColrGlyph struct {
	GlyphID GlyphID
}

func (ColrGlyph) isPaint() {}

// Transform composes an arbitrary affine into the current transform
// before recursing into Child.
type Transform struct {
	Matrix Affine
	Child  Paint
}

func (Transform) isPaint() {}

// Translate composes a translation before recursing into Child.
type Translate struct {
	DX, DY float64
	Child  Paint
}

func (Translate) isPaint() {}

// Rotate composes a rotation (degrees) before recursing into Child.
// If Center is non-nil the rotation pivots around that point instead of
// the origin (the RotateAroundCenter variant).
type Rotate struct {
	Angle  float64
	Center *Point
	Child  Paint
}

func (Rotate) isPaint() {}

// Scale composes a (possibly non-uniform) scale before recursing into
// Child. If Center is non-nil this is the ScaleAroundCenter variant.
// Uniform scales (ScaleUniform / ScaleUniformAroundCenter) are
// represented the same way with SX == SY.
type Scale struct {
	SX, SY float64
	Center *Point
	Child  Paint
}

func (Scale) isPaint() {}

// Skew composes a skew (degrees) before recursing into Child. If Center
// is non-nil this is the SkewAroundCenter variant.
type Skew struct {
	XSkewAngle, YSkewAngle float64
	Center                 *Point
	Child                  Paint
}

func (Skew) isPaint() {}

// Composite draws Backdrop and Source into isolated layers, then
// combines them with Mode.
type Composite struct {
	Source, Backdrop Paint
	Mode             CompositeMode
}

func (Composite) isPaint() {}

// UnknownPaint is produced by a font-loader collaborator for a paint
// format code the interpreter does not recognize. The interpreter logs
// a warning and skips the subtree.
type UnknownPaint struct {
	Format uint8
}

func (UnknownPaint) isPaint() {}
