package recorder

import (
	"math"

	"github.com/blackfoundrycom/gocolr"
)

// porterDuffCoeffs holds the (Fa, Fb) source/destination weight pair for
// the alpha-compositing-only modes: result = Fa*Csrc + Fb*Cdst (all
// premultiplied), alpha = Fa*Asrc + Fb*Adst. Values depend on the other
// operand's alpha, so Fa/Fb here are functions, not constants.
type porterDuffCoeffs struct {
	fa func(as, ab float64) float64
	fb func(as, ab float64) float64
}

var porterDuff = map[compositeModeKind]porterDuffCoeffs{
	pdClear:     {fa: func(float64, float64) float64 { return 0 }, fb: func(float64, float64) float64 { return 0 }},
	pdSrc:       {fa: func(float64, float64) float64 { return 1 }, fb: func(float64, float64) float64 { return 0 }},
	pdDest:      {fa: func(float64, float64) float64 { return 0 }, fb: func(float64, float64) float64 { return 1 }},
	pdSrcOver:   {fa: func(float64, float64) float64 { return 1 }, fb: func(as, _ float64) float64 { return 1 - as }},
	pdDestOver:  {fa: func(_, ab float64) float64 { return 1 - ab }, fb: func(float64, float64) float64 { return 1 }},
	pdSrcIn:     {fa: func(_, ab float64) float64 { return ab }, fb: func(float64, float64) float64 { return 0 }},
	pdDestIn:    {fa: func(float64, float64) float64 { return 0 }, fb: func(as, _ float64) float64 { return as }},
	pdSrcOut:    {fa: func(_, ab float64) float64 { return 1 - ab }, fb: func(float64, float64) float64 { return 0 }},
	pdDestOut:   {fa: func(float64, float64) float64 { return 0 }, fb: func(as, _ float64) float64 { return 1 - as }},
	pdSrcAtop:   {fa: func(_, ab float64) float64 { return ab }, fb: func(as, _ float64) float64 { return 1 - as }},
	pdDestAtop:  {fa: func(_, ab float64) float64 { return 1 - ab }, fb: func(as, _ float64) float64 { return as }},
	pdXor:       {fa: func(_, ab float64) float64 { return 1 - ab }, fb: func(as, _ float64) float64 { return 1 - as }},
	pdPlus:      {fa: func(float64, float64) float64 { return 1 }, fb: func(float64, float64) float64 { return 1 }},
}

// compositeModeKind partitions colr.CompositeMode into the handful of
// modes handled by plain Porter-Duff weights (pd*) versus the
// separable/non-separable blend functions, which all composite with
// source-over alpha and differ only in how the blended color is
// computed.
type compositeModeKind int

const (
	pdClear compositeModeKind = iota
	pdSrc
	pdDest
	pdSrcOver
	pdDestOver
	pdSrcIn
	pdDestIn
	pdSrcOut
	pdDestOut
	pdSrcAtop
	pdDestAtop
	pdXor
	pdPlus
)

// blendFn computes a blended, unpremultiplied channel value from the
// backdrop and source channel values (both in [0,1]).
type blendFn func(cb, cs float64) float64

func multiply(cb, cs float64) float64 { return cb * cs }
func screen(cb, cs float64) float64   { return cb + cs - cb*cs }
func darken(cb, cs float64) float64   { return math.Min(cb, cs) }
func lighten(cb, cs float64) float64  { return math.Max(cb, cs) }
func hardLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return multiply(cb, 2*cs)
	}
	return screen(cb, 2*cs-1)
}
func overlay(cb, cs float64) float64 { return hardLight(cs, cb) }
func colorDodge(cb, cs float64) float64 {
	if cb == 0 {
		return 0
	}
	if cs >= 1 {
		return 1
	}
	return math.Min(1, cb/(1-cs))
}
func colorBurn(cb, cs float64) float64 {
	if cb >= 1 {
		return 1
	}
	if cs <= 0 {
		return 0
	}
	return 1 - math.Min(1, (1-cb)/cs)
}
func softLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float64
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = math.Sqrt(cb)
	}
	return cb + (2*cs-1)*(d-cb)
}
func difference(cb, cs float64) float64 { return math.Abs(cb - cs) }
func exclusion(cb, cs float64) float64   { return cb + cs - 2*cb*cs }

// rgb is an unpremultiplied color triple, used by the blend math below.
type rgb struct{ r, g, b float64 }

func lum(c rgb) float64 { return 0.3*c.r + 0.59*c.g + 0.11*c.b }

func clipColor(c rgb) rgb {
	l := lum(c)
	n := math.Min(c.r, math.Min(c.g, c.b))
	x := math.Max(c.r, math.Max(c.g, c.b))
	if n < 0 {
		c.r = l + (c.r-l)*l/(l-n)
		c.g = l + (c.g-l)*l/(l-n)
		c.b = l + (c.b-l)*l/(l-n)
	}
	if x > 1 {
		c.r = l + (c.r-l)*(1-l)/(x-l)
		c.g = l + (c.g-l)*(1-l)/(x-l)
		c.b = l + (c.b-l)*(1-l)/(x-l)
	}
	return c
}

func setLum(c rgb, l float64) rgb {
	d := l - lum(c)
	return clipColor(rgb{c.r + d, c.g + d, c.b + d})
}

func sat(c rgb) float64 {
	return math.Max(c.r, math.Max(c.g, c.b)) - math.Min(c.r, math.Min(c.g, c.b))
}

func setSat(c rgb, s float64) rgb {
	lo, mid, hi := 0, 1, 2
	v := [3]float64{c.r, c.g, c.b}
	idx := [3]int{0, 1, 2}
	// sort idx by value ascending
	if v[idx[lo]] > v[idx[mid]] {
		idx[lo], idx[mid] = idx[mid], idx[lo]
	}
	if v[idx[mid]] > v[idx[hi]] {
		idx[mid], idx[hi] = idx[hi], idx[mid]
	}
	if v[idx[lo]] > v[idx[mid]] {
		idx[lo], idx[mid] = idx[mid], idx[lo]
	}
	if v[idx[hi]] > v[idx[lo]] {
		v[idx[mid]] = (v[idx[mid]] - v[idx[lo]]) * s / (v[idx[hi]] - v[idx[lo]])
		v[idx[hi]] = s
	} else {
		v[idx[mid]] = 0
		v[idx[hi]] = 0
	}
	v[idx[lo]] = 0
	return rgb{v[0], v[1], v[2]}
}

func hueBlend(cb, cs rgb) rgb         { return setLum(setSat(cs, sat(cb)), lum(cb)) }
func saturationBlend(cb, cs rgb) rgb  { return setLum(setSat(cb, sat(cs)), lum(cb)) }
func colorBlend(cb, cs rgb) rgb       { return setLum(cs, lum(cb)) }
func luminosityBlend(cb, cs rgb) rgb  { return setLum(cb, lum(cs)) }

var pdModeFor = map[colr.CompositeMode]compositeModeKind{
	colr.CompositeClear:     pdClear,
	colr.CompositeSrc:       pdSrc,
	colr.CompositeDest:      pdDest,
	colr.CompositeSrcOver:   pdSrcOver,
	colr.CompositeDestOver:  pdDestOver,
	colr.CompositeSrcIn:     pdSrcIn,
	colr.CompositeDestIn:    pdDestIn,
	colr.CompositeSrcOut:    pdSrcOut,
	colr.CompositeDestOut:   pdDestOut,
	colr.CompositeSrcAtop:   pdSrcAtop,
	colr.CompositeDestAtop:  pdDestAtop,
	colr.CompositeXor:       pdXor,
	colr.CompositePlus:      pdPlus,
}

var separableBlendFor = map[colr.CompositeMode]blendFn{
	colr.CompositeMultiply:    multiply,
	colr.CompositeScreen:      screen,
	colr.CompositeOverlay:     overlay,
	colr.CompositeDarken:      darken,
	colr.CompositeLighten:     lighten,
	colr.CompositeColorDodge:  colorDodge,
	colr.CompositeColorBurn:   colorBurn,
	colr.CompositeHardLight:   hardLight,
	colr.CompositeSoftLight:   softLight,
	colr.CompositeDifference:  difference,
	colr.CompositeExclusion:   exclusion,
}

var nonSeparableBlendFor = map[colr.CompositeMode]func(cb, cs rgb) rgb{
	colr.CompositeHSLHue:        hueBlend,
	colr.CompositeHSLSaturation: saturationBlend,
	colr.CompositeHSLColor:      colorBlend,
	colr.CompositeHSLLuminosity: luminosityBlend,
}

// composite blends src over dst (both straight, unpremultiplied alpha)
// according to mode, returning a straight-alpha result. Separable and
// non-separable blend modes (everything past CompositeXor/CompositePlus
// in the enum) always composite with source-over alpha, per the W3C
// compositing model the COLRv1 Composite paint's 28 modes are drawn
// from; only the first 13 are plain Porter-Duff operators with no
// color-blend step.
func composite(dst, src colr.RGBA, mode colr.CompositeMode) colr.RGBA {
	if kind, ok := pdModeFor[mode]; ok {
		coeffs := porterDuff[kind]
		fa := coeffs.fa(src.A, dst.A)
		fb := coeffs.fb(src.A, dst.A)
		out := colr.RGBA{
			R: fa*src.R*src.A + fb*dst.R*dst.A,
			G: fa*src.G*src.A + fb*dst.G*dst.A,
			B: fa*src.B*src.A + fb*dst.B*dst.A,
			A: fa*src.A + fb*dst.A,
		}
		return out.Unpremultiply()
	}

	cb := rgb{dst.R, dst.G, dst.B}
	cs := rgb{src.R, src.G, src.B}
	var blended rgb
	if fn, ok := separableBlendFor[mode]; ok {
		blended = rgb{fn(cb.r, cs.r), fn(cb.g, cs.g), fn(cb.b, cs.b)}
	} else if fn, ok := nonSeparableBlendFor[mode]; ok {
		blended = fn(cb, cs)
	} else {
		blended = cs
	}

	ab, as := dst.A, src.A
	ao := as + ab*(1-as)
	mix := func(cbv, csv, bv float64) float64 {
		return (1-as)*ab*cbv + (1-ab)*as*csv + as*ab*bv
	}
	out := colr.RGBA{
		R: mix(cb.r, cs.r, blended.r),
		G: mix(cb.g, cs.g, blended.g),
		B: mix(cb.b, cs.b, blended.b),
		A: ao,
	}
	if ao > 0 {
		out.R /= ao
		out.G /= ao
		out.B /= ao
	}
	return out
}
