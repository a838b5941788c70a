// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"math"

	"monoui.org/f64"
	"monoui.org/paint"
)

// Path is the outline of a Shape.
type Path uint8

const (
	// PathRect is the frame rectangle, rounded by Radius.
	PathRect Path = iota
	// PathEllipse is the largest circle centered in the frame.
	PathEllipse
	// PathLine runs from the top left to the bottom right corner.
	PathLine
	// PathHLine runs along the vertical middle of the frame.
	PathHLine
)

// Shape is a leaf view drawing a simple path in the current color.
type Shape struct {
	Box
	Path   Path
	Radius float64
	Filled bool
}

// NewRect returns a w by h rectangle.
func NewRect(w, h, radius float64, filled bool) *Shape {
	s := &Shape{Path: PathRect, Radius: radius, Filled: filled}
	s.SetFrame(f64.Rect(0, 0, w, h))
	return s
}

// NewCircle returns a circle of diameter d.
func NewCircle(d float64, filled bool) *Shape {
	s := &Shape{Path: PathEllipse, Filled: filled}
	s.SetFrame(f64.Rect(0, 0, d, d))
	return s
}

// NewDivider returns a horizontal rule w wide.
func NewDivider(w float64) *Shape {
	s := &Shape{Path: PathHLine}
	s.SetFrame(f64.Rect(0, 0, w, 1))
	return s
}

func (s *Shape) Draw(c paint.Canvas, origin f64.Point) {
	r := s.Frame().At(s.Origin(origin))
	switch s.Path {
	case PathRect, PathEllipse:
		rad := s.Radius
		if s.Path == PathEllipse {
			d := min(r.Dx(), r.Dy())
			r = f64.Rect(r.Mid().X-d/2, r.Mid().Y-d/2, d, d)
			rad = d / 2
		}
		if s.Filled {
			c.FillRect(r, rad)
		} else {
			c.StrokeRect(r, rad)
		}
	case PathLine:
		c.Line(r.Min, r.Max.Sub(f64.Pt(1, 1)))
	case PathHLine:
		y := r.Min.Y + math.Floor(r.Dy()/2)
		c.Line(f64.Pt(r.Min.X, y), f64.Pt(r.Max.X-1, y))
	}
}
