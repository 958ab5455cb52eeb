package engine2D

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ImageCanvas rasterises into an in-memory RGBA image.
type ImageCanvas struct {
	Image *image.RGBA
	face  font.Face
}

// NewImageCanvas creates a black canvas. face may be nil, in which case all
// text is skipped.
func NewImageCanvas(width, height int, face font.Face) *ImageCanvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return &ImageCanvas{Image: img, face: face}
}

func (ic *ImageCanvas) Size() (int, int) {
	b := ic.Image.Bounds()
	return b.Dx(), b.Dy()
}

// DrawPixel ignores points outside the image.
func (ic *ImageCanvas) DrawPixel(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(ic.Image.Rect) {
		return
	}
	ic.Image.SetRGBA(x, y, c)
}

func (ic *ImageCanvas) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	bresenham(x0, y0, x1, y1, func(x, y int) {
		ic.DrawPixel(x, y, c)
	})
}

func (ic *ImageCanvas) FillCircle(cx, cy, radius int, c color.RGBA) {
	StampCircle(ic, cx, cy, radius, c)
}

func (ic *ImageCanvas) DrawText(text string, x, y float64, c color.RGBA) {
	if ic.face == nil || text == "" {
		return
	}
	ascent := ic.face.Metrics().Ascent
	d := font.Drawer{
		Dst:  ic.Image,
		Src:  image.NewUniform(c),
		Face: ic.face,
		Dot:  fixed.Point26_6{X: fixed.I(int(x)), Y: fixed.I(int(y)) + ascent},
	}
	d.DrawString(text)
}

func (ic *ImageCanvas) MeasureText(text string) (float64, float64, bool) {
	if ic.face == nil {
		return 0, 0, false
	}
	w := font.MeasureString(ic.face, text).Ceil()
	h := ic.face.Metrics().Height.Ceil()
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return float64(w), float64(h), true
}
