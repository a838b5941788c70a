// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"monoui.org/f64"
	"monoui.org/paint"
	"monoui.org/text"
	"monoui.org/view"
)

// Overlay lays out child views on top of each other, according to an
// alignment direction. Later children draw over earlier ones.
type Overlay struct {
	group
	// Alignment is the direction to align children
	// smaller than the overlay.
	Alignment Direction
}

// ZStack returns an overlay of children flattened by Build.
func ZStack(align Direction, children ...any) *Overlay {
	o := &Overlay{Alignment: align}
	o.SetChildren(Build(children...)...)
	return o
}

// SetChildren replaces the children of the overlay.
func (o *Overlay) SetChildren(children ...view.View) {
	o.replace(children)
	o.Layout()
}

// SetSize requests a size for the overlay. Zero components hug the
// largest child.
func (o *Overlay) SetSize(sz f64.Size) {
	o.want = sz
	o.Layout()
}

func (o *Overlay) SetFrame(r f64.Rectangle) {
	if o.resize(r) {
		o.Layout()
	}
}

// Layout computes the overlay size and aligns its children. Flexible
// children cover the whole overlay.
func (o *Overlay) Layout() {
	estimate(o.children)
	var sz f64.Size
	for _, c := range o.children {
		if _, ok := c.(view.Flexible); ok {
			continue
		}
		csz := o.childSize(c)
		sz.Width = max(sz.Width, csz.Width)
		sz.Height = max(sz.Height, csz.Height)
	}
	if o.want.Width > 0 {
		sz.Width = o.want.Width
	}
	if o.want.Height > 0 {
		sz.Height = o.want.Height
	}
	sz = o.fit(sz)
	o.frame = o.frame.WithSize(sz)
	for _, c := range o.children {
		if _, ok := c.(view.Flexible); ok {
			c.SetFrame(f64.Rectangle{}.WithSize(sz))
			continue
		}
		csz := o.childSize(c)
		o.place(c, f64.Rectangle{Min: o.Alignment.Position(csz, sz)}.WithSize(csz), csz)
	}
}

func (o *Overlay) Measure(f text.Face) bool {
	if !o.measureChildren(f) {
		return false
	}
	old, natural := o.frame.Size(), o.natural
	o.Layout()
	return o.frame.Size() != old || o.natural != natural
}

func (o *Overlay) stretchTo(r f64.Rectangle) {
	o.frame = f64.Rectangle{Min: r.Min}.WithSize(o.frame.Size())
	if o.stretchSize(r.Size()) || o.frame.Size() != r.Size() {
		o.Layout()
	}
}

func (o *Overlay) Draw(c paint.Canvas, origin f64.Point) {
	o.Measure(c.Face())
	at := origin.Add(o.frame.Min)
	for _, child := range o.children {
		child.Draw(c, at)
	}
}
