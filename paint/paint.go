// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint defines the drawing surface consumed by views.

Pixels are tri-state: Black, White or Transparent. Views never inspect a
Canvas; they set the current color and issue primitives in absolute
display coordinates. Polarity selects which of Black and White is ink:
selected list items are drawn with Inverted polarity on top of a filled
cursor.
*/
package paint

import (
	"image"

	"monoui.org/f64"
	"monoui.org/text"
)

// Color is a 1-bit pixel value or no pixel at all.
type Color uint8

const (
	Transparent Color = iota
	Black
	White
)

// Invert swaps Black and White. Transparent is unchanged.
func (c Color) Invert() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return c
	}
}

func (c Color) String() string {
	switch c {
	case Transparent:
		return "Transparent"
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		panic("unreachable")
	}
}

// Polarity selects ink and paper colors.
type Polarity bool

const (
	Normal   Polarity = false
	Inverted Polarity = true
)

// Ink returns the foreground color: lit pixels in Normal polarity.
func (p Polarity) Ink() Color {
	if p == Inverted {
		return Black
	}
	return White
}

// Paper returns the background color.
func (p Polarity) Paper() Color {
	return p.Ink().Invert()
}

// Canvas is a 1-bit raster target. Coordinates are absolute display
// pixels; fractional values are rounded by the implementation.
type Canvas interface {
	// Size returns the display size.
	Size() f64.Size
	// SetColor sets the color of subsequent primitives.
	SetColor(c Color)
	// Color returns the current color.
	Color() Color
	// FillRect fills r, rounding its corners by radius.
	FillRect(r f64.Rectangle, radius float64)
	// StrokeRect outlines r with a one pixel line, rounding its
	// corners by radius.
	StrokeRect(r f64.Rectangle, radius float64)
	// Line draws a one pixel line from a to b.
	Line(a, b f64.Point)
	// Bitmap draws the region sr of src with its top left corner at
	// dst. Pixels of src with alpha at least one half take the current
	// color; the others are left untouched.
	Bitmap(dst f64.Point, src image.Image, sr image.Rectangle)
	// Text draws s in the current face with its baseline origin at
	// dot.
	Text(dot f64.Point, s string)
	// Face returns the face used by Text.
	Face() text.Face
	// PushClip restricts drawing to the intersection of r and the
	// current clip.
	PushClip(r f64.Rectangle)
	// PopClip restores the clip saved by the matching PushClip.
	PopClip()
}

// Fill fills r with c and restores the previous color.
func Fill(cv Canvas, r f64.Rectangle, radius float64, c Color) {
	old := cv.Color()
	cv.SetColor(c)
	cv.FillRect(r, radius)
	cv.SetColor(old)
}

// Clear fills the whole canvas with c.
func Clear(cv Canvas, c Color) {
	Fill(cv, f64.Rectangle{Max: cv.Size().Point()}, 0, c)
}
