// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"monoui.org/f64"
	"monoui.org/paint"
	"monoui.org/text"
)

// Text is a single line label. Before its first draw its size is
// estimated from the theme's glyph metrics; Measure replaces the estimate
// with the face's metrics.
type Text struct {
	Box
	th       *Theme
	s        string
	face     text.Face
	measured bool
}

// NewText returns a label showing s.
func NewText(ctx *Context, s string) *Text {
	return &Text{th: ctx.Theme, s: s}
}

// String returns the label text.
func (t *Text) String() string {
	return t.s
}

// SetText changes the label. The new size takes effect at the next
// measurement.
func (t *Text) SetText(s string) {
	if s == t.s {
		return
	}
	t.s = s
	t.measured = false
}

func (t *Text) EstimateSize() f64.Size {
	return text.Estimate(t.s, t.th.GlyphWidth, t.th.LineHeight)
}

func (t *Text) Measure(f text.Face) bool {
	if t.measured && f == t.face {
		return false
	}
	t.face = f
	t.measured = true
	sz := text.Measure(f, t.s)
	if sz == t.Frame().Size() {
		return false
	}
	t.SetFrame(t.Frame().WithSize(sz))
	return true
}

func (t *Text) Draw(c paint.Canvas, origin f64.Point) {
	at := t.Origin(origin)
	c.Text(at.Add(f64.Pt(0, c.Face().Ascent())), t.s)
}
