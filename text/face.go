// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text measures and draws single lines of text with bitmap-friendly
fonts.

A Face reports the pixel width of a string and the ascent and descent of
its font, and draws strings onto a draw.Image with the baseline at a given
point. Faces are backed by golang.org/x/image/font (the basicfont bitmap
face or an OpenType font rendered at a small size) or by a tinyfont font.
Drawn glyphs are thresholded by 1-bit destinations; no anti-aliasing
survives rasterization.
*/
package text

import (
	"image"
	"image/color"
	"image/draw"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"monoui.org/f64"
)

// Face measures and draws text.
type Face interface {
	// Width returns the advance width of s in pixels.
	Width(s string) float64
	// Ascent returns the distance from the top of a line to its
	// baseline.
	Ascent() float64
	// Descent returns the distance from the baseline to the bottom
	// of a line.
	Descent() float64
	// Draw draws s with its baseline origin at dot.
	Draw(dst draw.Image, dot image.Point, s string, c color.Color)
}

// FontFace adapts a golang.org/x/image/font.Face.
type FontFace struct {
	face    font.Face
	metrics font.Metrics
	widths  widthCache
}

// NewFontFace wraps f.
func NewFontFace(f font.Face) *FontFace {
	return &FontFace{face: f, metrics: f.Metrics()}
}

// Basic returns the 7x13 fixed width bitmap face.
func Basic() *FontFace {
	return NewFontFace(basicfont.Face7x13)
}

// OpenType parses an OpenType or TrueType font and returns a face
// rendering it at size pixels per em with full hinting.
func OpenType(data []byte, size float64) (*FontFace, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return NewFontFace(face), nil
}

// GoMono returns the Go Mono font at size pixels per em.
func GoMono(size float64) (*FontFace, error) {
	return OpenType(gomono.TTF, size)
}

func (f *FontFace) Width(s string) float64 {
	if w, ok := f.widths.Get(s); ok {
		return w
	}
	w := fixedToFloat(font.MeasureString(f.face, s))
	f.widths.Put(s, w)
	return w
}

func (f *FontFace) Ascent() float64 {
	return float64(f.metrics.Ascent.Ceil())
}

func (f *FontFace) Descent() float64 {
	return float64(f.metrics.Descent.Ceil())
}

func (f *FontFace) Draw(dst draw.Image, dot image.Point, s string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	d.DrawString(s)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// LineHeight returns the height of a single line set in f.
func LineHeight(f Face) float64 {
	return f.Ascent() + f.Descent()
}

// Measure returns the size of s set in f.
func Measure(f Face, s string) f64.Size {
	return f64.Sz(f.Width(s), LineHeight(f))
}

// Estimate returns a size for s without font metrics, assuming every
// rune advances glyphWidth pixels.
func Estimate(s string, glyphWidth, lineHeight float64) f64.Size {
	return f64.Sz(float64(utf8.RuneCountInString(s))*glyphWidth, lineHeight)
}
