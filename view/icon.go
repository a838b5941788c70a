// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"

	"monoui.org/f64"
	"monoui.org/paint"
)

// Icon is an IconVG vector icon rasterized to a 1-bit mask.
type Icon struct {
	mask *image.Alpha
}

// NewIcon rasterizes IconVG data size pixels wide.
func NewIcon(data []byte, size int) (*Icon, error) {
	m, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, err
	}
	dx, dy := m.ViewBox.AspectRatio()
	img := image.NewRGBA(image.Rectangle{Max: image.Point{X: size, Y: int(float32(size) * dy / dx)}})
	var ico iconvg.Rasterizer
	ico.SetDstImage(img, img.Bounds(), draw.Src)
	m.Palette[0] = color.RGBA{A: 0xff}
	if err := iconvg.Decode(&ico, data, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	}); err != nil {
		return nil, err
	}
	mask := image.NewAlpha(img.Bounds())
	for i := range mask.Pix {
		if img.Pix[i*4+3] >= 0x80 {
			mask.Pix[i] = 0xff
		}
	}
	return &Icon{mask: mask}, nil
}

// Size returns the icon size in pixels.
func (ic *Icon) Size() f64.Size {
	sz := ic.mask.Rect.Size()
	return f64.Sz(float64(sz.X), float64(sz.Y))
}

// Image returns the icon mask.
func (ic *Icon) Image() image.Image {
	return ic.mask
}

// Draw draws the icon in the current color with its top left corner at
// at.
func (ic *Icon) Draw(c paint.Canvas, at f64.Point) {
	c.Bitmap(at, ic.mask, ic.mask.Rect)
}
