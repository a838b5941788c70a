// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f64 is a float64 implementation of package image's
Point and Rectangle, plus a Size type for extents.

The coordinate space has the origin in the top left
corner with the axes extending right and down. Values are
in display pixels; fractional coordinates appear while
animations are in flight and are rounded when rasterized.
*/
package f64

import (
	"fmt"
	"image"
	"math"
)

// A Point is a two dimensional point.
type Point struct {
	X, Y float64
}

// A Size is a two dimensional extent.
type Size struct {
	Width, Height float64
}

// A Rectangle contains the points (X, Y) where Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y.
type Rectangle struct {
	Min, Max Point
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Rect returns the rectangle with origin (x, y) and size (w, h).
func Rect(x, y, w, h float64) Rectangle {
	return Rectangle{Min: Point{X: x, Y: y}, Max: Point{X: x + w, Y: y + h}}
}

// FromImage converts an integer point.
func FromImage(p image.Point) Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

// String return a string representation of p.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Add return the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dist returns the euclidean distance between p and p2.
func (p Point) Dist(p2 Point) float64 {
	return math.Hypot(p2.X-p.X, p2.Y-p.Y)
}

// Lerp returns the point t of the way from p to p2.
func (p Point) Lerp(p2 Point, t float64) Point {
	return p.Add(p2.Sub(p).Mul(t))
}

// Round returns the integer point nearest to p.
func (p Point) Round() image.Point {
	return image.Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// String return a string representation of s.
func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Add returns the size s+s2.
func (s Size) Add(s2 Size) Size {
	return Size{Width: s.Width + s2.Width, Height: s.Height + s2.Height}
}

// Sub returns the size s-s2.
func (s Size) Sub(s2 Size) Size {
	return Size{Width: s.Width - s2.Width, Height: s.Height - s2.Height}
}

// Mul returns s scaled by f.
func (s Size) Mul(f float64) Size {
	return Size{Width: s.Width * f, Height: s.Height * f}
}

// Dist returns the euclidean distance between s and s2 viewed as
// vectors.
func (s Size) Dist(s2 Size) float64 {
	return math.Hypot(s2.Width-s.Width, s2.Height-s.Height)
}

// Lerp returns the size t of the way from s to s2.
func (s Size) Lerp(s2 Size, t float64) Size {
	return s.Add(s2.Sub(s).Mul(t))
}

// Empty reports whether s has no area.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Point returns s as a vector.
func (s Size) Point() Point {
	return Point{X: s.Width, Y: s.Height}
}

// String return a string representation of r.
func (r Rectangle) String() string {
	return r.Min.String() + "-" + r.Max.String()
}

// Size returns r's width and height.
func (r Rectangle) Size() Size {
	return Size{Width: r.Dx(), Height: r.Dy()}
}

// WithSize returns r with its origin kept and its size set to s.
func (r Rectangle) WithSize(s Size) Rectangle {
	r.Max = Point{X: r.Min.X + s.Width, Y: r.Min.Y + s.Height}
	return r
}

// At returns r moved so that its origin is p.
func (r Rectangle) At(p Point) Rectangle {
	return Rectangle{Min: p, Max: p.Add(r.Size().Point())}
}

// Dx returns r's width.
func (r Rectangle) Dx() float64 {
	return r.Max.X - r.Min.X
}

// Dy returns r's Height.
func (r Rectangle) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

// Mid returns the center of r.
func (r Rectangle) Mid() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Intersect returns the intersection of r and s.
func (r Rectangle) Intersect(s Rectangle) Rectangle {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	if r.Empty() {
		return Rectangle{}
	}
	return r
}

// Overlaps reports whether r and s have a non-empty intersection.
func (r Rectangle) Overlaps(s Rectangle) bool {
	return !r.Empty() && !s.Empty() &&
		r.Min.X < s.Max.X && s.Min.X < r.Max.X &&
		r.Min.Y < s.Max.Y && s.Min.Y < r.Max.Y
}

// Contains reports whether p lies in r.
func (r Rectangle) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X < r.Max.X &&
		r.Min.Y <= p.Y && p.Y < r.Max.Y
}

// In reports whether every point in r is in s.
func (r Rectangle) In(s Rectangle) bool {
	if r.Empty() {
		return true
	}
	return s.Min.X <= r.Min.X && r.Max.X <= s.Max.X &&
		s.Min.Y <= r.Min.Y && r.Max.Y <= s.Max.Y
}

// Union returns the union of r and s.
func (r Rectangle) Union(s Rectangle) Rectangle {
	if r.Min.X > s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y > s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X < s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y < s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Canon returns the canonical version of r, where Min is to
// the upper left of Max.
func (r Rectangle) Canon() Rectangle {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Empty reports whether r represents the empty area.
func (r Rectangle) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Add offsets r with the vector p.
func (r Rectangle) Add(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X + p.X, r.Min.Y + p.Y},
		Point{r.Max.X + p.X, r.Max.Y + p.Y},
	}
}

// Sub offsets r with the vector -p.
func (r Rectangle) Sub(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X - p.X, r.Min.Y - p.Y},
		Point{r.Max.X - p.X, r.Max.Y - p.Y},
	}
}

// Inset returns r shrunk by n on every side.
func (r Rectangle) Inset(n float64) Rectangle {
	r.Min.X += n
	r.Min.Y += n
	r.Max.X -= n
	r.Max.Y -= n
	return r.Canon()
}

// Round returns the smallest integer rectangle that
// contains r.
func (r Rectangle) Round() image.Rectangle {
	return image.Rectangle{
		Min: image.Point{
			X: int(math.Floor(r.Min.X)),
			Y: int(math.Floor(r.Min.Y)),
		},
		Max: image.Point{
			X: int(math.Ceil(r.Max.X)),
			Y: int(math.Ceil(r.Max.Y)),
		},
	}
}
