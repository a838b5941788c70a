// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a software paint.Canvas for 1-bit displays.

A Canvas draws into a Bitmap. Axis aligned fills are written directly;
rounded shapes are scan converted with golang.org/x/image/vector into
an alpha mask which is thresholded at one half, so no anti-aliasing
reaches the bitmap.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"monoui.org/f64"
	"monoui.org/paint"
	"monoui.org/text"
)

// Canvas draws into a Bitmap.
type Canvas struct {
	dst   *Bitmap
	face  text.Face
	color paint.Color
	clips []image.Rectangle

	scratch struct {
		mask  *image.Alpha
		inner *image.Alpha
		text  *image.Alpha
	}
}

// NewCanvas returns a canvas drawing into dst, setting text in face.
func NewCanvas(dst *Bitmap, face text.Face) *Canvas {
	return &Canvas{dst: dst, face: face, color: paint.White}
}

// Target returns the destination bitmap.
func (c *Canvas) Target() *Bitmap {
	return c.dst
}

func (c *Canvas) Size() f64.Size {
	sz := c.dst.Rect.Size()
	return f64.Sz(float64(sz.X), float64(sz.Y))
}

func (c *Canvas) SetColor(col paint.Color) {
	c.color = col
}

func (c *Canvas) Color() paint.Color {
	return c.color
}

func (c *Canvas) Face() text.Face {
	return c.face
}

// SetFace changes the face used by Text.
func (c *Canvas) SetFace(f text.Face) {
	c.face = f
}

func (c *Canvas) PushClip(r f64.Rectangle) {
	c.clips = append(c.clips, pixelRect(r).Intersect(c.clip()))
}

func (c *Canvas) PopClip() {
	c.clips = c.clips[:len(c.clips)-1]
}

func (c *Canvas) clip() image.Rectangle {
	if n := len(c.clips); n > 0 {
		return c.clips[n-1]
	}
	return c.dst.Rect
}

func (c *Canvas) set(x, y int) {
	switch c.color {
	case paint.White:
		c.dst.Put(x, y, true)
	case paint.Black:
		c.dst.Put(x, y, false)
	}
}

func (c *Canvas) FillRect(r f64.Rectangle, radius float64) {
	if c.color == paint.Transparent {
		return
	}
	pr := pixelRect(r)
	bounds := pr.Intersect(c.clip())
	if bounds.Empty() {
		return
	}
	if radius <= 0 {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c.set(x, y)
			}
		}
		return
	}
	mask := roundRectMask(&c.scratch.mask, pr.Size(), f64.Rect(0, 0, float64(pr.Dx()), float64(pr.Dy())), radius)
	c.applyMask(mask, pr.Min, bounds, nil)
}

func (c *Canvas) StrokeRect(r f64.Rectangle, radius float64) {
	if c.color == paint.Transparent {
		return
	}
	pr := pixelRect(r)
	bounds := pr.Intersect(c.clip())
	if bounds.Empty() {
		return
	}
	w, h := float64(pr.Dx()), float64(pr.Dy())
	outer := roundRectMask(&c.scratch.mask, pr.Size(), f64.Rect(0, 0, w, h), radius)
	inner := roundRectMask(&c.scratch.inner, pr.Size(), f64.Rect(1, 1, w-2, h-2), math.Max(radius-1, 0))
	c.applyMask(outer, pr.Min, bounds, inner)
}

// applyMask sets the pixels of bounds whose mask alpha, with the mask
// origin at org, is at least one half and, if exclude is non-nil, whose
// exclude alpha is less than one half.
func (c *Canvas) applyMask(mask *image.Alpha, org image.Point, bounds image.Rectangle, exclude *image.Alpha) {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			mx, my := x-org.X, y-org.Y
			if mask.AlphaAt(mx, my).A < 0x80 {
				continue
			}
			if exclude != nil && exclude.AlphaAt(mx, my).A >= 0x80 {
				continue
			}
			c.set(x, y)
		}
	}
}

// roundRectMask scan converts r, with corners rounded by radius, into a
// mask of size sz, reusing *buf when large enough.
func roundRectMask(buf **image.Alpha, sz image.Point, r f64.Rectangle, radius float64) *image.Alpha {
	mask := *buf
	if mask == nil || mask.Rect.Dx() < sz.X || mask.Rect.Dy() < sz.Y {
		mask = image.NewAlpha(image.Rectangle{Max: sz})
		*buf = mask
	}
	mask = mask.SubImage(image.Rectangle{Max: sz}).(*image.Alpha)
	for y := 0; y < sz.Y; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+sz.X]
		for i := range row {
			row[i] = 0
		}
	}
	if r.Empty() || sz.X == 0 || sz.Y == 0 {
		return mask
	}
	radius = math.Min(radius, math.Min(r.Dx(), r.Dy())/2)
	vr := vector.NewRasterizer(sz.X, sz.Y)
	vr.DrawOp = draw.Src
	roundRectPath(vr, r, radius)
	vr.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// k is the cubic Bézier control distance approximating a quarter circle.
const k = 0.5522847498

func roundRectPath(vr *vector.Rasterizer, r f64.Rectangle, rad float64) {
	x0, y0 := float32(r.Min.X), float32(r.Min.Y)
	x1, y1 := float32(r.Max.X), float32(r.Max.Y)
	rr := float32(rad)
	c := float32(rad * (1 - k))
	vr.MoveTo(x0+rr, y0)
	vr.LineTo(x1-rr, y0)
	if rr > 0 {
		vr.CubeTo(x1-c, y0, x1, y0+c, x1, y0+rr)
	}
	vr.LineTo(x1, y1-rr)
	if rr > 0 {
		vr.CubeTo(x1, y1-c, x1-c, y1, x1-rr, y1)
	}
	vr.LineTo(x0+rr, y1)
	if rr > 0 {
		vr.CubeTo(x0+c, y1, x0, y1-c, x0, y1-rr)
	}
	vr.LineTo(x0, y0+rr)
	if rr > 0 {
		vr.CubeTo(x0, y0+c, x0+c, y0, x0+rr, y0)
	}
	vr.ClosePath()
}

// Line draws a Bresenham line between the rounded endpoints.
func (c *Canvas) Line(a, b f64.Point) {
	if c.color == paint.Transparent {
		return
	}
	clip := c.clip()
	p0, p1 := a.Round(), b.Round()
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}
	err := dx + dy
	x, y := p0.X, p0.Y
	for {
		if (image.Point{X: x, Y: y}).In(clip) {
			c.set(x, y)
		}
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func (c *Canvas) Bitmap(dst f64.Point, src image.Image, sr image.Rectangle) {
	if c.color == paint.Transparent {
		return
	}
	org := dst.Round()
	clip := c.clip()
	for y := sr.Min.Y; y < sr.Max.Y; y++ {
		for x := sr.Min.X; x < sr.Max.X; x++ {
			p := image.Point{X: org.X + x - sr.Min.X, Y: org.Y + y - sr.Min.Y}
			if !p.In(clip) {
				continue
			}
			if _, _, _, a := src.At(x, y).RGBA(); a >= 0x8000 {
				c.set(p.X, p.Y)
			}
		}
	}
}

func (c *Canvas) Text(dot f64.Point, s string) {
	if c.color == paint.Transparent || s == "" {
		return
	}
	w := int(math.Ceil(c.face.Width(s)))
	asc := int(math.Ceil(c.face.Ascent()))
	h := asc + int(math.Ceil(c.face.Descent()))
	if w <= 0 || h <= 0 {
		return
	}
	m := c.scratch.text
	if m == nil || m.Rect.Dx() < w || m.Rect.Dy() < h {
		m = image.NewAlpha(image.Rect(0, 0, max(w, 64), max(h, 16)))
		c.scratch.text = m
	}
	m = m.SubImage(image.Rect(0, 0, w, h)).(*image.Alpha)
	draw.Draw(m, m.Rect, image.Transparent, image.Point{}, draw.Src)
	c.face.Draw(m, image.Pt(0, asc), s, color.Opaque)
	c.Bitmap(dot.Sub(f64.Pt(0, float64(asc))), m, m.Rect)
}

// pixelRect rounds every edge of r to the nearest pixel boundary.
func pixelRect(r f64.Rectangle) image.Rectangle {
	return image.Rectangle{
		Min: r.Min.Round(),
		Max: r.Max.Round(),
	}.Canon()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
