// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"image"
	"image/color"
	"image/draw"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// TinyFace adapts a tinyfont font. tinyfont does not expose line
// metrics uniformly, so the ascent and descent are supplied by the
// caller.
type TinyFace struct {
	font    tinyfont.Fonter
	ascent  int
	descent int
}

// NewTinyFace wraps f. A zero ascent splits the font's line advance
// into three quarters ascent and one quarter descent.
func NewTinyFace(f tinyfont.Fonter, ascent, descent int) *TinyFace {
	if ascent == 0 {
		adv := int(f.GetYAdvance())
		ascent = adv * 3 / 4
		descent = adv - ascent
	}
	return &TinyFace{font: f, ascent: ascent, descent: descent}
}

func (f *TinyFace) Width(s string) float64 {
	_, outbox := tinyfont.LineWidth(f.font, s)
	return float64(outbox)
}

func (f *TinyFace) Ascent() float64 {
	return float64(f.ascent)
}

func (f *TinyFace) Descent() float64 {
	return float64(f.descent)
}

func (f *TinyFace) Draw(dst draw.Image, dot image.Point, s string, c color.Color) {
	d, ok := dst.(drivers.Displayer)
	if !ok {
		d = imageDisplayer{dst}
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	tinyfont.WriteLine(d, f.font, int16(dot.X), int16(dot.Y), s, rgba)
}

// imageDisplayer exposes a draw.Image as a tinygo display.
type imageDisplayer struct {
	img draw.Image
}

func (d imageDisplayer) Size() (x, y int16) {
	sz := d.img.Bounds().Size()
	return int16(sz.X), int16(sz.Y)
}

func (d imageDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.img.Set(int(x), int(y), c)
}

func (d imageDisplayer) Display() error {
	return nil
}
