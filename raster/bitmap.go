// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/color"
	"strings"
)

// Bitmap is a packed 1-bit image. A set bit is a lit (White) pixel.
// Bitmap implements draw.Image and the tinygo drivers.Displayer
// interface, so fonts and display drivers from either ecosystem can draw
// into it.
type Bitmap struct {
	// Pix holds rows of Stride bytes, most significant bit first.
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

var palette = color.Palette{color.Gray{Y: 0}, color.Gray{Y: 0xff}}

// NewBitmap returns a dark bitmap of the given size.
func NewBitmap(w, h int) *Bitmap {
	stride := (w + 7) / 8
	return &Bitmap{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   image.Rect(0, 0, w, h),
	}
}

func (b *Bitmap) ColorModel() color.Model {
	return palette
}

func (b *Bitmap) Bounds() image.Rectangle {
	return b.Rect
}

func (b *Bitmap) At(x, y int) color.Color {
	if b.Pixel(x, y) {
		return palette[1]
	}
	return palette[0]
}

// Set thresholds c by luminance. Fully transparent colors are ignored.
func (b *Bitmap) Set(x, y int, c color.Color) {
	r, g, bl, a := c.RGBA()
	if a == 0 {
		return
	}
	// Rec. 601 luma of the premultiplied color.
	lum := (19595*r + 38470*g + 7471*bl + 1<<15) >> 16
	b.Put(x, y, lum >= 0x8000)
}

// Pixel reports whether (x, y) is lit. Points outside the bitmap are
// dark.
func (b *Bitmap) Pixel(x, y int) bool {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return false
	}
	i, mask := b.offset(x, y)
	return b.Pix[i]&mask != 0
}

// Put lights or darkens (x, y). Points outside the bitmap are ignored.
func (b *Bitmap) Put(x, y int, on bool) {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return
	}
	i, mask := b.offset(x, y)
	if on {
		b.Pix[i] |= mask
	} else {
		b.Pix[i] &^= mask
	}
}

func (b *Bitmap) offset(x, y int) (int, byte) {
	x -= b.Rect.Min.X
	y -= b.Rect.Min.Y
	return y*b.Stride + x/8, 0x80 >> uint(x%8)
}

// Fill sets every pixel.
func (b *Bitmap) Fill(on bool) {
	v := byte(0)
	if on {
		v = 0xff
	}
	for i := range b.Pix {
		b.Pix[i] = v
	}
}

// Count returns the number of lit pixels in r.
func (b *Bitmap) Count(r image.Rectangle) int {
	r = r.Intersect(b.Rect)
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if b.Pixel(x, y) {
				n++
			}
		}
	}
	return n
}

// Size implements drivers.Displayer.
func (b *Bitmap) Size() (x, y int16) {
	sz := b.Rect.Size()
	return int16(sz.X), int16(sz.Y)
}

// SetPixel implements drivers.Displayer.
func (b *Bitmap) SetPixel(x, y int16, c color.RGBA) {
	b.Set(int(x), int(y), c)
}

// Display implements drivers.Displayer. A Bitmap has nothing to flush.
func (b *Bitmap) Display() error {
	return nil
}

// String renders b as rows of '#' (lit) and '.' (dark).
func (b *Bitmap) String() string {
	var sb strings.Builder
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y++ {
		for x := b.Rect.Min.X; x < b.Rect.Max.X; x++ {
			if b.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// HalfBlocks renders b with one character cell per two pixel rows,
// using the Unicode upper and lower half block characters.
func (b *Bitmap) HalfBlocks() string {
	var sb strings.Builder
	for y := b.Rect.Min.Y; y < b.Rect.Max.Y; y += 2 {
		for x := b.Rect.Min.X; x < b.Rect.Max.X; x++ {
			top, bottom := b.Pixel(x, y), b.Pixel(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		if y+2 < b.Rect.Max.Y {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
