// SPDX-License-Identifier: Unlicense OR MIT

/*
Package view defines the retained view tree.

A View has a placement Frame in its parent's coordinate space and draws
itself given the absolute origin of that space. Containers own their
children exclusively; upward communication uses callbacks. Optional
behavior is discovered through small capability interfaces rather than
concrete types: key.Handler for input, Dismisser for animated modal
dismissal, Flexible for layout spacers, Estimator and Measurer for
intrinsic sizing, and Releaser for views owning animators.

Leaf views draw with the canvas' current color. The container or page
drawing them selects the polarity.
*/
package view

import (
	"monoui.org/f64"
	"monoui.org/paint"
	"monoui.org/text"
)

// View is a drawable, placeable node.
type View interface {
	// Frame returns the placement in the parent's coordinates.
	Frame() f64.Rectangle
	// SetFrame places the view.
	SetFrame(r f64.Rectangle)
	// Draw renders the view. origin is the absolute position of the
	// parent's coordinate origin.
	Draw(c paint.Canvas, origin f64.Point)
}

// Dismisser is implemented by modal views with an animated dismissal.
type Dismisser interface {
	// Dismiss starts the dismissal and calls done once it completes.
	Dismiss(done func())
}

// Flexible is implemented by layout items without content that absorb
// leftover space along a stack's main axis.
type Flexible interface {
	// MinLength is the smallest main axis extent of the item.
	MinLength() float64
}

// Estimator is implemented by views able to guess their size before
// font metrics are available.
type Estimator interface {
	EstimateSize() f64.Size
}

// Measurer is implemented by views whose size depends on font metrics,
// and by containers of such views.
type Measurer interface {
	// Measure sizes the view with f and reports whether its frame
	// size changed.
	Measure(f text.Face) bool
}

// Releaser is implemented by views owning animators.
type Releaser interface {
	// Release unregisters the view's animators, recursively.
	Release()
}

// Release releases v if it owns animators.
func Release(v View) {
	if r, ok := v.(Releaser); ok {
		r.Release()
	}
}

// Measure measures v if it is a Measurer.
func Measure(v View, f text.Face) bool {
	if m, ok := v.(Measurer); ok {
		return m.Measure(f)
	}
	return false
}

// Box implements Frame and SetFrame. Embed it in leaf views.
type Box struct {
	frame f64.Rectangle
}

func (b *Box) Frame() f64.Rectangle {
	return b.frame
}

func (b *Box) SetFrame(r f64.Rectangle) {
	b.frame = r
}

// Origin returns the absolute position of the box given its parent's
// origin.
func (b *Box) Origin(parent f64.Point) f64.Point {
	return parent.Add(b.frame.Min)
}
