// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"

	"monoui.org/f64"
	"monoui.org/paint"
)

// Image is a leaf view displaying a bitmap. Pixels that are opaque and
// light are drawn in the current color. The bitmap is scaled to the
// frame with nearest neighbor sampling, keeping pixel art crisp.
type Image struct {
	Box
	src    *image.Alpha
	scaled *image.Alpha
}

// NewImage returns an image view sized to src.
func NewImage(src image.Image) *Image {
	b := src.Bounds()
	mask := image.NewAlpha(image.Rectangle{Max: b.Size()})
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if on(src.At(x, y)) {
				mask.SetAlpha(x-b.Min.X, y-b.Min.Y, color.Alpha{A: 0xff})
			}
		}
	}
	im := &Image{src: mask}
	im.SetFrame(f64.Rect(0, 0, float64(mask.Rect.Dx()), float64(mask.Rect.Dy())))
	return im
}

// NewIconView returns an image view of ic.
func NewIconView(ic *Icon) *Image {
	return NewImage(ic.Image())
}

func on(c color.Color) bool {
	r, g, b, a := c.RGBA()
	if a < 0x8000 {
		return false
	}
	// Alpha masks report white; unpremultiply before thresholding.
	lum := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	return lum*0xffff/a >= 0x8000
}

func (im *Image) Draw(c paint.Canvas, origin f64.Point) {
	fs := im.Frame().Size()
	sz := image.Pt(int(math.Round(fs.Width)), int(math.Round(fs.Height)))
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	if im.scaled == nil || im.scaled.Rect.Size() != sz {
		if sz == im.src.Rect.Size() {
			im.scaled = im.src
		} else {
			im.scaled = image.NewAlpha(image.Rectangle{Max: sz})
			xdraw.NearestNeighbor.Scale(im.scaled, im.scaled.Rect, im.src, im.src.Rect, xdraw.Src, nil)
		}
	}
	c.Bitmap(im.Origin(origin), im.scaled, im.scaled.Rect)
}
