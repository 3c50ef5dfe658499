package recorder

import (
	"image"
	"image/color"

	"github.com/blackfoundrycom/gocolr"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"
)

// rasterizeCoverage rasterizes a device-space path into a fresh
// *image.Alpha coverage mask, one byte of anti-aliased coverage per
// pixel. Grounded on gogpu-gg's internal/clip.MaskClipper, which
// documents this same approach ("rasterizes a path into a grayscale
// mask where each pixel's value represents coverage") for complex
// clip regions; x/image/vector supplies the scanline rasterizer gg's
// own internal/clip package hand-rolls.
func rasterizeCoverage(path *colr.Path, w, h int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z := vector.NewRasterizer(w, h)
	replayPath(z, path)
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// replayPath feeds a colr.Path's elements into a vector.Rasterizer.
// vector.Rasterizer implicitly closes each subpath with a straight
// line back to its start when Draw is called, so an explicit Close
// element needs no special handling beyond moving the cursor.
func vec2(p colr.Point) f32.Vec2 { return f32.Vec2{float32(p.X), float32(p.Y)} }

func replayPath(z *vector.Rasterizer, path *colr.Path) {
	var start colr.Point
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case colr.MoveTo:
			z.MoveTo(vec2(e.Point))
			start = e.Point
		case colr.LineTo:
			z.LineTo(vec2(e.Point))
		case colr.QuadTo:
			z.QuadTo(vec2(e.Control), vec2(e.Point))
		case colr.CubicTo:
			z.CubeTo(vec2(e.Control1), vec2(e.Control2), vec2(e.Point))
		case colr.Close:
			z.LineTo(vec2(start))
		}
	}
}

// intersectMasks returns a new mask whose coverage at each pixel is the
// product of a's and b's coverage there, i.e. the region both agree is
// covered. A nil mask means "fully covered" (no clip yet), matching the
// empty clip stack's meaning in RasterCanvas.
func intersectMasks(a, b *image.Alpha) *image.Alpha {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	bounds := a.Bounds()
	out := image.NewAlpha(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			av := a.AlphaAt(x, y).A
			bv := b.AlphaAt(x, y).A
			out.SetAlpha(x, y, color.Alpha{A: uint8(uint16(av) * uint16(bv) / 255)})
		}
	}
	return out
}
