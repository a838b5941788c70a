// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"golang.org/x/exp/slices"

	"monoui.org/f64"
	"monoui.org/paint"
	"monoui.org/text"
	"monoui.org/view"
)

// ScrollAxes names the axes a scroll viewport is driven along. It is
// advisory; Scroll itself accepts any offset.
type ScrollAxes uint8

const (
	ScrollVertical ScrollAxes = iota
	ScrollHorizontal
	ScrollBoth
)

// Scroll is a viewport onto a content area larger than its frame.
// Children are placed in content coordinates; Offset is the content
// point shown at the top left corner of the frame.
type Scroll struct {
	view.Box
	Axes   ScrollAxes
	Offset f64.Point

	content  f64.Size
	children []view.View
}

// NewScroll returns an empty viewport of the given size.
func NewScroll(axes ScrollAxes, size f64.Size) *Scroll {
	s := &Scroll{Axes: axes}
	s.SetFrame(f64.Rectangle{}.WithSize(size))
	return s
}

// SetChildren replaces the content. Children keep their frames.
func (s *Scroll) SetChildren(children ...view.View) {
	for _, c := range s.children {
		if !slices.Contains(children, c) {
			view.Release(c)
		}
	}
	s.children = children
}

// Children returns the content views.
func (s *Scroll) Children() []view.View {
	return s.children
}

// SetContentSize sets the extent of the content area. A zero size
// derives it from the children's frames.
func (s *Scroll) SetContentSize(sz f64.Size) {
	s.content = sz
}

// ContentSize returns the extent of the content area.
func (s *Scroll) ContentSize() f64.Size {
	if s.content != (f64.Size{}) {
		return s.content
	}
	var r f64.Rectangle
	for _, c := range s.children {
		r = r.Union(c.Frame())
	}
	return f64.Sz(r.Max.X, r.Max.Y)
}

// MaxOffset returns the largest offset keeping the viewport inside the
// content area.
func (s *Scroll) MaxOffset() f64.Point {
	cs, fs := s.ContentSize(), s.Frame().Size()
	return f64.Pt(max(0, cs.Width-fs.Width), max(0, cs.Height-fs.Height))
}

// Visible returns the content rectangle shown by the viewport.
func (s *Scroll) Visible() f64.Rectangle {
	return s.Frame().At(s.Offset)
}

// ContentOrigin returns the absolute position of the content origin
// given the parent's origin.
func (s *Scroll) ContentOrigin(parent f64.Point) f64.Point {
	return s.Origin(parent).Sub(s.Offset)
}

// Release releases the content views.
func (s *Scroll) Release() {
	for _, c := range s.children {
		view.Release(c)
	}
}

func (s *Scroll) Measure(f text.Face) bool {
	for _, c := range s.children {
		view.Measure(c, f)
	}
	return false
}

// Draw draws the children overlapping the visible area, clipped to the
// frame.
func (s *Scroll) Draw(c paint.Canvas, origin f64.Point) {
	s.Measure(c.Face())
	c.PushClip(s.Frame().At(s.Origin(origin)))
	defer c.PopClip()
	base := s.ContentOrigin(origin)
	vis := s.Visible()
	for _, child := range s.children {
		if child.Frame().Overlaps(vis) {
			child.Draw(c, base)
		}
	}
}
