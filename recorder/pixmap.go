package recorder

import (
	"image"
	"image/png"
	"os"

	"github.com/blackfoundrycom/gocolr"
)

// Pixmap is a rectangular, alpha-premultiplied pixel buffer, the
// drawing surface a RasterCanvas renders into. Adapted from gogpu-gg's
// Pixmap (same Width/Height/Clear/Image/SavePNG vocabulary); backed
// here by image.RGBA directly rather than a raw byte slice, since
// image.RGBA already stores premultiplied color the way Porter-Duff
// compositing (Canvas.CompositeLayer's 28 blend modes) requires.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a new, fully transparent pixmap with the given
// pixel dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap in pixels.
func (p *Pixmap) Width() int { return p.img.Bounds().Dx() }

// Height returns the height of the pixmap in pixels.
func (p *Pixmap) Height() int { return p.img.Bounds().Dy() }

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates
// are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c colr.RGBA) {
	p.img.Set(x, y, c.Color())
}

// GetPixel returns the color of a single pixel, or Transparent if the
// coordinates are out of bounds.
func (p *Pixmap) GetPixel(x, y int) colr.RGBA {
	if !(image.Point{X: x, Y: y}.In(p.img.Bounds())) {
		return colr.Transparent
	}
	return colr.FromColor(p.img.At(x, y))
}

// Clear fills the entire pixmap with a single color.
func (p *Pixmap) Clear(c colr.RGBA) {
	col := c.Color()
	bounds := p.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			p.img.Set(x, y, col)
		}
	}
}

// Image returns the pixmap's backing image.RGBA, for use with the
// standard image and image/draw ecosystem (encoding, compositing,
// testing).
func (p *Pixmap) Image() *image.RGBA { return p.img }

// SavePNG encodes the pixmap as a PNG file at path.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, p.img)
}
