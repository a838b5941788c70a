// SPDX-License-Identifier: Unlicense OR MIT

// Package painttest provides a recording paint.Canvas for tests.
package painttest

import (
	"fmt"
	"image"

	"monoui.org/f64"
	"monoui.org/paint"
	"monoui.org/text"
)

// Op is a recorded drawing primitive.
type Op struct {
	Kind   string
	Color  paint.Color
	Rect   f64.Rectangle
	Radius float64
	Text   string
	Point  f64.Point
	Clip   f64.Rectangle
}

func (o Op) String() string {
	switch o.Kind {
	case "text":
		return fmt.Sprintf("text %q at %v %v", o.Text, o.Point, o.Color)
	default:
		return fmt.Sprintf("%s %v r=%g %v", o.Kind, o.Rect, o.Radius, o.Color)
	}
}

// Recorder records every primitive drawn on it. The zero value is not
// usable; use New.
type Recorder struct {
	Ops []Op

	size  f64.Size
	face  text.Face
	color paint.Color
	clips []f64.Rectangle
}

// New returns a recorder for a display of the given size measuring text
// with face.
func New(size f64.Size, face text.Face) *Recorder {
	return &Recorder{size: size, face: face, color: paint.White}
}

// Reset forgets recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Texts returns the strings drawn, in order.
func (r *Recorder) Texts() []string {
	var ts []string
	for _, o := range r.Ops {
		if o.Kind == "text" {
			ts = append(ts, o.Text)
		}
	}
	return ts
}

// Find returns the first text op drawing s.
func (r *Recorder) Find(s string) (Op, bool) {
	for _, o := range r.Ops {
		if o.Kind == "text" && o.Text == s {
			return o, true
		}
	}
	return Op{}, false
}

func (r *Recorder) clip() f64.Rectangle {
	if n := len(r.clips); n > 0 {
		return r.clips[n-1]
	}
	return f64.Rectangle{Max: r.size.Point()}
}

func (r *Recorder) add(o Op) {
	o.Color = r.color
	o.Clip = r.clip()
	r.Ops = append(r.Ops, o)
}

func (r *Recorder) Size() f64.Size               { return r.size }
func (r *Recorder) SetColor(c paint.Color)       { r.color = c }
func (r *Recorder) Color() paint.Color           { return r.color }
func (r *Recorder) Face() text.Face              { return r.face }
func (r *Recorder) PushClip(c f64.Rectangle)     { r.clips = append(r.clips, c.Intersect(r.clip())) }
func (r *Recorder) PopClip()                     { r.clips = r.clips[:len(r.clips)-1] }
func (r *Recorder) Line(a, b f64.Point)          { r.add(Op{Kind: "line", Rect: f64.Rectangle{Min: a, Max: b}}) }
func (r *Recorder) Text(dot f64.Point, s string) { r.add(Op{Kind: "text", Text: s, Point: dot}) }

func (r *Recorder) FillRect(rect f64.Rectangle, radius float64) {
	r.add(Op{Kind: "fill", Rect: rect, Radius: radius})
}

func (r *Recorder) StrokeRect(rect f64.Rectangle, radius float64) {
	r.add(Op{Kind: "stroke", Rect: rect, Radius: radius})
}

func (r *Recorder) Bitmap(dst f64.Point, src image.Image, sr image.Rectangle) {
	sz := sr.Size()
	r.add(Op{Kind: "bitmap", Rect: f64.Rect(dst.X, dst.Y, float64(sz.X), float64(sz.Y))})
}
