// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"golang.org/x/exp/slices"

	"monoui.org/f64"
	"monoui.org/text"
	"monoui.org/view"
)

// group holds the state shared by containers laying out their
// children.
type group struct {
	frame f64.Rectangle
	// want is the size requested by the parent. Zero components
	// hug the children.
	want f64.Size
	// stretch is the size imposed by a filling parent for its current
	// layout. Zero components keep the natural size.
	stretch f64.Size
	// natural is the size computed from want and the children alone.
	natural  f64.Size
	children []view.View
	// placed holds the sizes of leaf children stretched by the
	// container.
	placed map[view.View]placement
}

// placement is a stretched leaf child's size before and after
// stretching.
type placement struct {
	natural, assigned f64.Size
}

// stretcher is implemented by containers whose frame can be
// stretched by a parent without becoming their requested size.
type stretcher interface {
	naturalSize() f64.Size
	stretchTo(r f64.Rectangle)
}

func (g *group) naturalSize() f64.Size {
	return g.natural
}

// stretchSize records the components of sz that differ from the
// natural size as the stretch and reports whether it changed.
func (g *group) stretchSize(sz f64.Size) bool {
	if sz.Width == g.natural.Width {
		sz.Width = 0
	}
	if sz.Height == g.natural.Height {
		sz.Height = 0
	}
	changed := sz != g.stretch
	g.stretch = sz
	return changed
}

// fit sets the natural size and returns the frame size with the
// stretch applied.
func (g *group) fit(natural f64.Size) f64.Size {
	g.natural = natural
	sz := natural
	if g.stretch.Width > 0 {
		sz.Width = g.stretch.Width
	}
	if g.stretch.Height > 0 {
		sz.Height = g.stretch.Height
	}
	return sz
}

// childSize returns the size of c before any stretching by the
// container.
func (g *group) childSize(c view.View) f64.Size {
	if s, ok := c.(stretcher); ok {
		return s.naturalSize()
	}
	sz := c.Frame().Size()
	if p, ok := g.placed[c]; ok && p.assigned == sz {
		return p.natural
	}
	return sz
}

// place sets the frame of child c to r, where natural is the size of
// c before stretching.
func (g *group) place(c view.View, r f64.Rectangle, natural f64.Size) {
	if s, ok := c.(stretcher); ok {
		s.stretchTo(r)
		return
	}
	if sz := r.Size(); sz != natural {
		if g.placed == nil {
			g.placed = make(map[view.View]placement)
		}
		g.placed[c] = placement{natural: natural, assigned: sz}
	} else {
		delete(g.placed, c)
	}
	c.SetFrame(r)
}

func (g *group) Frame() f64.Rectangle {
	return g.frame
}

// Children returns the container's children in layout order.
func (g *group) Children() []view.View {
	return g.children
}

// Release releases every child.
func (g *group) Release() {
	for _, c := range g.children {
		view.Release(c)
	}
}

// resize moves the container to r and reports whether its size
// changed. Components of r's size that differ from the current size
// become the requested size.
func (g *group) resize(r f64.Rectangle) bool {
	old, sz := g.frame.Size(), r.Size()
	g.frame = r
	if sz == old {
		return false
	}
	if sz.Width != old.Width {
		g.want.Width = sz.Width
	}
	if sz.Height != old.Height {
		g.want.Height = sz.Height
	}
	return true
}

// replace installs children, releasing the previous children not among
// them.
func (g *group) replace(children []view.View) {
	for _, c := range g.children {
		if !slices.Contains(children, c) {
			delete(g.placed, c)
			view.Release(c)
		}
	}
	g.children = children
}

func (g *group) measureChildren(f text.Face) bool {
	changed := false
	for _, c := range g.children {
		if view.Measure(c, f) {
			changed = true
		}
	}
	return changed
}

// estimate sizes children lacking a usable size from their
// estimate, if they provide one.
func estimate(children []view.View) {
	for _, c := range children {
		if _, ok := c.(view.Flexible); ok {
			continue
		}
		r := c.Frame()
		if r.Dx() > 0 && r.Dy() > 0 {
			continue
		}
		if e, ok := c.(view.Estimator); ok {
			c.SetFrame(r.WithSize(e.EstimateSize()))
		}
	}
}
