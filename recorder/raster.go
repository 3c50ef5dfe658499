package recorder

import (
	"image"

	"github.com/blackfoundrycom/gocolr"
)

// RasterCanvas is a colr.Canvas that rasterizes directly into a Pixmap
// using golang.org/x/image/vector, the software scanline rasterizer
// gogpu-gg's own internal/clip package builds its mask clipper on top
// of (see mask.go). It is the pure-Go equivalent of gogpu-gg's
// software.go backend: no GPU, no native 2D library, just
// anti-aliased polygon fill and Porter-Duff/blend compositing (blend.go).
type RasterCanvas struct {
	pix       *Pixmap
	ctm       colr.Affine
	ctmStack  []colr.Affine
	clipStack []*image.Alpha
}

// NewRasterCanvas creates a RasterCanvas targeting a fresh, fully
// transparent pixmap of the given pixel dimensions.
func NewRasterCanvas(width, height int) *RasterCanvas {
	return &RasterCanvas{
		pix: NewPixmap(width, height),
		ctm: colr.IdentityAffine(),
	}
}

// Pixmap returns the canvas's backing pixel buffer.
func (rc *RasterCanvas) Pixmap() *Pixmap { return rc.pix }

func (rc *RasterCanvas) NewPath() colr.PathBuilderTarget { return colr.NewPath() }

func (rc *RasterCanvas) SavedState(fn func()) {
	savedCTM := rc.ctm
	savedClipLen := len(rc.clipStack)
	fn()
	rc.ctm = savedCTM
	rc.clipStack = rc.clipStack[:savedClipLen]
}

// CompositeLayer renders fn into a fresh, transparent offscreen pixmap
// isolated from the backdrop, then composites that layer onto the
// backdrop with mode, mirroring gogpu-gg's PushLayer/PopLayer
// (context_layer.go): an isolated layer pixmap, composited on pop using
// the caller's blend mode.
func (rc *RasterCanvas) CompositeLayer(mode colr.CompositeMode, fn func()) {
	parent := rc.pix
	layer := NewPixmap(parent.Width(), parent.Height())
	rc.pix = layer

	savedCTM := rc.ctm
	savedClipLen := len(rc.clipStack)
	fn()
	rc.ctm = savedCTM
	rc.clipStack = rc.clipStack[:savedClipLen]

	rc.pix = parent
	compositeLayerOnto(parent, layer, mode)
}

func compositeLayerOnto(dst, src *Pixmap, mode colr.CompositeMode) {
	bounds := dst.Image().Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			s := src.GetPixel(x, y)
			if s.A == 0 && mode != colr.CompositeDest && mode != colr.CompositeDestIn &&
				mode != colr.CompositeDestAtop && mode != colr.CompositeClear &&
				mode != colr.CompositeSrc && mode != colr.CompositeSrcIn &&
				mode != colr.CompositeSrcOut {
				continue
			}
			d := dst.GetPixel(x, y)
			dst.SetPixel(x, y, composite(d, s, mode))
		}
	}
}

func (rc *RasterCanvas) Transform(affine colr.Affine) { rc.ctm = rc.ctm.Then(affine) }

func (rc *RasterCanvas) ClipPath(path colr.PathBuilderTarget) {
	devicePath := rc.toDeviceSpace(path)
	newMask := rasterizeCoverage(devicePath, rc.pix.Width(), rc.pix.Height())
	rc.clipStack = append(rc.clipStack, intersectMasks(rc.topClip(), newMask))
}

func (rc *RasterCanvas) topClip() *image.Alpha {
	if len(rc.clipStack) == 0 {
		return nil
	}
	return rc.clipStack[len(rc.clipStack)-1]
}

func (rc *RasterCanvas) toDeviceSpace(path colr.PathBuilderTarget) *colr.Path {
	p, ok := path.(*colr.Path)
	if !ok {
		return colr.NewPath()
	}
	return p.Transform(rc.ctm)
}

// fillPath rasterizes path (in the canvas's current user space) filled
// with fill, clipped by the current clip stack, onto the pixmap.
func (rc *RasterCanvas) fillPath(path colr.PathBuilderTarget, fill image.Image) {
	devicePath := rc.toDeviceSpace(path)
	w, h := rc.pix.Width(), rc.pix.Height()
	coverage := rasterizeCoverage(devicePath, w, h)
	if clip := rc.topClip(); clip != nil {
		coverage = intersectMasks(coverage, clip)
	}
	rc.compositeFill(coverage, fill)
}

func (rc *RasterCanvas) compositeFill(coverage *image.Alpha, fill image.Image) {
	bounds := coverage.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := coverage.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			src := colr.FromColor(fill.At(x, y))
			src.A *= float64(a) / 255
			dst := rc.pix.GetPixel(x, y)
			rc.pix.SetPixel(x, y, composite(dst, src, colr.CompositeSrcOver))
		}
	}
}

func (rc *RasterCanvas) DrawPathSolid(path colr.PathBuilderTarget, color colr.RGBA) {
	rc.fillPath(path, &solidFill{color: color})
}

func (rc *RasterCanvas) DrawPathLinearGradient(path colr.PathBuilderTarget, line []colr.ColorStop, p1, p2 colr.Point, extend colr.ExtendMode, gradientTransform colr.Affine) {
	rc.fillPath(path, rc.deviceFill(&linearFill{p0: p1, p2: p2, line: line, extend: extend}, gradientTransform))
}

func (rc *RasterCanvas) DrawPathRadialGradient(path colr.PathBuilderTarget, line []colr.ColorStop, c0 colr.Point, r0 float64, c1 colr.Point, r1 float64, extend colr.ExtendMode, gradientTransform colr.Affine) {
	rc.fillPath(path, rc.deviceFill(&radialFill{c0: c0, r0: r0, c1: c1, r1: r1, line: line, extend: extend}, gradientTransform))
}

func (rc *RasterCanvas) DrawPathSweepGradient(path colr.PathBuilderTarget, line []colr.ColorStop, center colr.Point, startAngle, endAngle float64, extend colr.ExtendMode, gradientTransform colr.Affine) {
	rc.fillPath(path, rc.deviceFill(&sweepFill{center: center, startAngle: startAngle, endAngle: endAngle, line: line, extend: extend}, gradientTransform))
}

// deviceFill wraps a gradientFill (which reasons in the gradient's own
// coordinate space) as an image.Image indexed by device pixels, by
// inverting the composition of the canvas's CTM and the paint's own
// gradientTransform. Both were already applied going forward by the
// interpreter/canvas when it built gradientTransform; Inverse() recovers
// gradient space from a device pixel the same way a raster canvas must
// recover texture space from screen space for any parametrized fill.
func (rc *RasterCanvas) deviceFill(fill gradientFill, gradientTransform colr.Affine) *deviceSpaceFill {
	// gradientTransform maps the gradient's own control points into the
	// same user space interp.currentPath is already expressed in;
	// rc.ctm then maps that user space to device pixels. Forward is
	// gradientTransform applied first, then rc.ctm (Then's "m then n"
	// convention), so its Inverse recovers gradient space from a pixel.
	forward := gradientTransform.Then(rc.ctm)
	return &deviceSpaceFill{fill: fill, inverse: forward.Inverse()}
}

var _ colr.Canvas = (*RasterCanvas)(nil)
