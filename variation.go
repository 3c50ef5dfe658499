package colr

// NoVariationIndex is the sentinel varIndexBase/varIdx value meaning
// "this record carries no variation" (spec.md 4.C).
const NoVariationIndex uint32 = 0xFFFFFFFF

// Instancer resolves a variation-store delta for a 32-bit variation
// index, at whatever normalized axis location it was constructed for.
// The font-loader collaborator supplies one per render (spec.md 6.1);
// gocolr never decodes the item variation store itself.
type Instancer interface {
	// Delta returns the interpolated delta for varIdx. Implementations
	// should return 0 for an out-of-range varIdx rather than panic; the
	// adapter functions below already avoid calling Delta for the
	// documented sentinel case.
	Delta(varIdx uint32) float64
}

// VarIndexMap provides the optional indirection from a declared
// (varIndexBase + position) index to the item variation store's actual
// outer/inner index pair, flattened to a single uint32 by the
// font-loader. A nil VarIndexMap means "no indirection".
type VarIndexMap interface {
	// Map returns the mapped index and true, or false if varIdx is out
	// of range for the map — per spec.md 4.C step 2/7, an out-of-range
	// lookup falls back to the raw varIdx.
	Map(varIdx uint32) (mapped uint32, ok bool)
}

// resolveVarIndex computes varIndexBase + position, then applies the
// optional VarIndexMap indirection, per spec.md 4.C steps 2 and 7.
func resolveVarIndex(varIndexBase uint32, position int, indexMap VarIndexMap) uint32 {
	if varIndexBase == NoVariationIndex {
		return NoVariationIndex
	}
	varIdx := varIndexBase + uint32(position)
	if indexMap != nil {
		if mapped, ok := indexMap.Map(varIdx); ok {
			return mapped
		}
		logVariationOutOfRange(varIdx)
	}
	return varIdx
}

// ResolveAttr returns base+delta for one variable attribute at the
// given declaration position within a variable record, per spec.md 4.C.
// This is the one general-purpose entry point; it replaces the source's
// runtime attribute-access proxy with a plain function call, as
// recommended by spec.md 9 — there is no reflection and no hidden
// per-attribute interception, only an explicit call at each use site
// below (the Resolve methods interpreter.go calls).
func ResolveAttr(base float64, varIndexBase uint32, position int, instancer Instancer, indexMap VarIndexMap) float64 {
	varIdx := resolveVarIndex(varIndexBase, position, indexMap)
	if varIdx == NoVariationIndex || instancer == nil {
		return base
	}
	return base + instancer.Delta(varIdx)
}

// VarColorStop is the variable form of a PaintColorStop: StopOffset
// then Alpha are the declared variable attribute order (spec.md 3.1).
// PaletteIndex is never variable, it selects a fixed CPAL entry.
type VarColorStop struct {
	StopOffset   float64
	PaletteIndex ColorIndex
	Alpha        float64
	VarIndexBase uint32
}

// Resolve returns the plain PaintColorStop with StopOffset and Alpha
// adjusted by any resolved deltas.
func (s VarColorStop) Resolve(instancer Instancer, indexMap VarIndexMap) PaintColorStop {
	offset := ResolveAttr(s.StopOffset, s.VarIndexBase, 0, instancer, indexMap)
	alpha := ResolveAttr(s.Alpha, s.VarIndexBase, 1, instancer, indexMap)
	return PaintColorStop{StopOffset: offset, PaletteIndex: s.PaletteIndex, Alpha: alpha}
}

// ResolveVarColorLine resolves a slice of VarColorStop element-wise,
// per spec.md 4.C "lists of variable records ... are wrapped
// element-wise".
func ResolveVarColorLine(stops []VarColorStop, instancer Instancer, indexMap VarIndexMap) []PaintColorStop {
	resolved := make([]PaintColorStop, len(stops))
	for i, s := range stops {
		resolved[i] = s.Resolve(instancer, indexMap)
	}
	return resolved
}

// VarColorLine is the variable form of ColorLine: every stop is itself
// variable, the extend mode is not.
type VarColorLine struct {
	Stops  []VarColorStop
	Extend ExtendMode
}

// Resolve returns the plain ColorLine with every stop resolved.
func (cl VarColorLine) Resolve(instancer Instancer, indexMap VarIndexMap) ColorLine {
	return ColorLine{
		Stops:  ResolveVarColorLine(cl.Stops, instancer, indexMap),
		Extend: cl.Extend,
	}
}

// VarSolid is the variable form of Solid. Declared variable attribute
// order: alpha.
type VarSolid struct {
	PaletteIndex ColorIndex
	Alpha        float64
	VarIndexBase uint32
}

func (VarSolid) isPaint() {}

// Resolve returns the plain Solid with Alpha adjusted by any resolved
// delta.
func (s VarSolid) Resolve(instancer Instancer, indexMap VarIndexMap) Solid {
	return Solid{
		PaletteIndex: s.PaletteIndex,
		Alpha:        ResolveAttr(s.Alpha, s.VarIndexBase, 0, instancer, indexMap),
	}
}

// VarLinearGradient is the variable form of LinearGradient. Declared
// variable attribute order: x0, y0, x1, y1, x2, y2.
type VarLinearGradient struct {
	ColorLine    VarColorLine
	P0, P1, P2   Point
	VarIndexBase uint32
}

func (VarLinearGradient) isPaint() {}

// Resolve returns the plain LinearGradient with every variable
// attribute, including the color line, resolved.
func (g VarLinearGradient) Resolve(instancer Instancer, indexMap VarIndexMap) LinearGradient {
	p0 := Pt(
		ResolveAttr(g.P0.X, g.VarIndexBase, 0, instancer, indexMap),
		ResolveAttr(g.P0.Y, g.VarIndexBase, 1, instancer, indexMap),
	)
	p1 := Pt(
		ResolveAttr(g.P1.X, g.VarIndexBase, 2, instancer, indexMap),
		ResolveAttr(g.P1.Y, g.VarIndexBase, 3, instancer, indexMap),
	)
	p2 := Pt(
		ResolveAttr(g.P2.X, g.VarIndexBase, 4, instancer, indexMap),
		ResolveAttr(g.P2.Y, g.VarIndexBase, 5, instancer, indexMap),
	)
	return LinearGradient{
		ColorLine: g.ColorLine.Resolve(instancer, indexMap),
		P0:        p0, P1: p1, P2: p2,
	}
}

// VarRadialGradient is the variable form of RadialGradient. Declared
// variable attribute order: x0, y0, r0, x1, y1, r1.
type VarRadialGradient struct {
	ColorLine    VarColorLine
	C0           Point
	R0           float64
	C1           Point
	R1           float64
	VarIndexBase uint32
}

func (VarRadialGradient) isPaint() {}

// Resolve returns the plain RadialGradient with every variable
// attribute, including the color line, resolved.
func (g VarRadialGradient) Resolve(instancer Instancer, indexMap VarIndexMap) RadialGradient {
	c0 := Pt(
		ResolveAttr(g.C0.X, g.VarIndexBase, 0, instancer, indexMap),
		ResolveAttr(g.C0.Y, g.VarIndexBase, 1, instancer, indexMap),
	)
	r0 := ResolveAttr(g.R0, g.VarIndexBase, 2, instancer, indexMap)
	c1 := Pt(
		ResolveAttr(g.C1.X, g.VarIndexBase, 3, instancer, indexMap),
		ResolveAttr(g.C1.Y, g.VarIndexBase, 4, instancer, indexMap),
	)
	r1 := ResolveAttr(g.R1, g.VarIndexBase, 5, instancer, indexMap)
	return RadialGradient{
		ColorLine: g.ColorLine.Resolve(instancer, indexMap),
		C0:        c0, R0: r0, C1: c1, R1: r1,
	}
}

// VarSweepGradient is the variable form of SweepGradient. Declared
// variable attribute order: centerX, centerY, startAngle, endAngle.
type VarSweepGradient struct {
	ColorLine            VarColorLine
	Center               Point
	StartAngle, EndAngle float64
	VarIndexBase         uint32
}

func (VarSweepGradient) isPaint() {}

// Resolve returns the plain SweepGradient with every variable
// attribute, including the color line, resolved.
func (g VarSweepGradient) Resolve(instancer Instancer, indexMap VarIndexMap) SweepGradient {
	center := Pt(
		ResolveAttr(g.Center.X, g.VarIndexBase, 0, instancer, indexMap),
		ResolveAttr(g.Center.Y, g.VarIndexBase, 1, instancer, indexMap),
	)
	startAngle := ResolveAttr(g.StartAngle, g.VarIndexBase, 2, instancer, indexMap)
	endAngle := ResolveAttr(g.EndAngle, g.VarIndexBase, 3, instancer, indexMap)
	return SweepGradient{ColorLine: g.ColorLine.Resolve(instancer, indexMap), Center: center, StartAngle: startAngle, EndAngle: endAngle}
}

// VarTransform is the variable form of Transform. Declared variable
// attribute order: xx, yx, xy, yy, dx, dy.
type VarTransform struct {
	Matrix       Affine
	Child        Paint
	VarIndexBase uint32
}

func (VarTransform) isPaint() {}

// Resolve returns the plain Transform with its matrix resolved.
func (t VarTransform) Resolve(instancer Instancer, indexMap VarIndexMap) Transform {
	return Transform{
		Matrix: Affine{
			A: ResolveAttr(t.Matrix.A, t.VarIndexBase, 0, instancer, indexMap),
			B: ResolveAttr(t.Matrix.B, t.VarIndexBase, 1, instancer, indexMap),
			C: ResolveAttr(t.Matrix.C, t.VarIndexBase, 2, instancer, indexMap),
			D: ResolveAttr(t.Matrix.D, t.VarIndexBase, 3, instancer, indexMap),
			E: ResolveAttr(t.Matrix.E, t.VarIndexBase, 4, instancer, indexMap),
			F: ResolveAttr(t.Matrix.F, t.VarIndexBase, 5, instancer, indexMap),
		},
		Child: t.Child,
	}
}

// VarTranslate is the variable form of Translate. Declared variable
// attribute order: dx, dy.
type VarTranslate struct {
	DX, DY       float64
	Child        Paint
	VarIndexBase uint32
}

func (VarTranslate) isPaint() {}

// Resolve returns the plain Translate with DX/DY resolved.
func (t VarTranslate) Resolve(instancer Instancer, indexMap VarIndexMap) Translate {
	return Translate{
		DX:    ResolveAttr(t.DX, t.VarIndexBase, 0, instancer, indexMap),
		DY:    ResolveAttr(t.DY, t.VarIndexBase, 1, instancer, indexMap),
		Child: t.Child,
	}
}

// VarRotate is the variable form of Rotate[AroundCenter]. Declared
// variable attribute order: angle[, centerX, centerY].
type VarRotate struct {
	Angle        float64
	Center       *Point
	Child        Paint
	VarIndexBase uint32
}

func (VarRotate) isPaint() {}

// Resolve returns the plain Rotate with Angle and an optional Center
// resolved.
func (r VarRotate) Resolve(instancer Instancer, indexMap VarIndexMap) Rotate {
	angle := ResolveAttr(r.Angle, r.VarIndexBase, 0, instancer, indexMap)
	if r.Center == nil {
		return Rotate{Angle: angle, Child: r.Child}
	}
	c := Pt(
		ResolveAttr(r.Center.X, r.VarIndexBase, 1, instancer, indexMap),
		ResolveAttr(r.Center.Y, r.VarIndexBase, 2, instancer, indexMap),
	)
	return Rotate{Angle: angle, Center: &c, Child: r.Child}
}

// VarScale is the variable form of Scale[Uniform][AroundCenter].
// Declared variable attribute order: sx, sy[, centerX, centerY]
// (ScaleUniform variants carry a single s reused for both sx and sy at
// the font-loader layer before reaching this type).
type VarScale struct {
	SX, SY       float64
	Center       *Point
	Child        Paint
	VarIndexBase uint32
}

func (VarScale) isPaint() {}

// Resolve returns the plain Scale with SX/SY and an optional Center
// resolved.
func (s VarScale) Resolve(instancer Instancer, indexMap VarIndexMap) Scale {
	sx := ResolveAttr(s.SX, s.VarIndexBase, 0, instancer, indexMap)
	sy := ResolveAttr(s.SY, s.VarIndexBase, 1, instancer, indexMap)
	if s.Center == nil {
		return Scale{SX: sx, SY: sy, Child: s.Child}
	}
	c := Pt(
		ResolveAttr(s.Center.X, s.VarIndexBase, 2, instancer, indexMap),
		ResolveAttr(s.Center.Y, s.VarIndexBase, 3, instancer, indexMap),
	)
	return Scale{SX: sx, SY: sy, Center: &c, Child: s.Child}
}

// VarSkew is the variable form of Skew[AroundCenter]. Declared variable
// attribute order: xSkewAngle, ySkewAngle[, centerX, centerY].
type VarSkew struct {
	XSkewAngle, YSkewAngle float64
	Center                 *Point
	Child                  Paint
	VarIndexBase           uint32
}

func (VarSkew) isPaint() {}

// Resolve returns the plain Skew with both skew angles and an optional
// Center resolved.
func (s VarSkew) Resolve(instancer Instancer, indexMap VarIndexMap) Skew {
	xAngle := ResolveAttr(s.XSkewAngle, s.VarIndexBase, 0, instancer, indexMap)
	yAngle := ResolveAttr(s.YSkewAngle, s.VarIndexBase, 1, instancer, indexMap)
	if s.Center == nil {
		return Skew{XSkewAngle: xAngle, YSkewAngle: yAngle, Child: s.Child}
	}
	c := Pt(
		ResolveAttr(s.Center.X, s.VarIndexBase, 2, instancer, indexMap),
		ResolveAttr(s.Center.Y, s.VarIndexBase, 3, instancer, indexMap),
	)
	return Skew{XSkewAngle: xAngle, YSkewAngle: yAngle, Center: &c, Child: s.Child}
}
