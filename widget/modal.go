// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"

	"monoui.org/anim"
	"monoui.org/f64"
	"monoui.org/key"
	"monoui.org/layout"
	"monoui.org/paint"
	"monoui.org/view"
)

// Modal is a bordered dialog box centered on the screen. It slides up
// from below the screen when created and back down when dismissed.
// Back dismisses it through the context's presenter; other keys go to
// the content if it handles keys.
type Modal struct {
	view.Box
	ctx     *view.Context
	content view.View
	y       anim.Value

	dismissing bool
	done       func()
}

// NewModal returns a modal showing content.
func NewModal(ctx *view.Context, content view.View) *Modal {
	m := &Modal{
		ctx: ctx,
		y:   ctx.Float(ctx.Screen.Height, ctx.Theme.Speed.Modal),
	}
	m.y.SetTarget(0)
	m.SetContent(content)
	return m
}

// Bounce moves the modal on a damped spring with the given angular
// frequency and damping ratio instead of easing. Under-damped springs
// overshoot the resting place.
func (m *Modal) Bounce(frequency, damping float64) {
	s := anim.NewSpring(m.ctx.Anim, m.y.Get(), m.ctx.Theme.FPS, frequency, damping)
	s.SetTarget(m.y.Target())
	m.y.Release()
	m.y = s
}

// SetContent replaces the content and centers the modal around it.
func (m *Modal) SetContent(v view.View) {
	if m.content != nil && m.content != v {
		view.Release(m.content)
	}
	m.content = v
	m.place()
}

// Content returns the content view.
func (m *Modal) Content() view.View {
	return m.content
}

func (m *Modal) place() {
	sz := m.content.Frame().Size()
	p := layout.Center.Position(sz, m.ctx.Screen)
	p = f64.Pt(math.Floor(p.X), math.Floor(p.Y))
	m.SetFrame(f64.Rectangle{Min: p}.WithSize(sz))
	m.content.SetFrame(f64.Rectangle{}.WithSize(sz))
}

// Dismiss slides the modal off the screen and calls done once it is
// gone. Calling Dismiss again replaces done.
func (m *Modal) Dismiss(done func()) {
	m.dismissing = true
	m.done = done
	m.y.SetTarget(m.ctx.Screen.Height)
}

// Dismissing reports whether the modal is leaving.
func (m *Modal) Dismissing() bool {
	return m.dismissing
}

func (m *Modal) HandleKey(k key.Code) bool {
	if m.dismissing {
		return true
	}
	if k == key.Back {
		m.ctx.DismissModal()
		return true
	}
	if h, ok := m.content.(key.Handler); ok {
		return h.HandleKey(k)
	}
	return false
}

func (m *Modal) Draw(c paint.Canvas, origin f64.Point) {
	if m.dismissing && m.y.Done() {
		if done := m.done; done != nil {
			m.done = nil
			done()
		}
		return
	}
	if view.Measure(m.content, c.Face()) {
		m.place()
	}
	r := m.Frame().At(m.Origin(origin).Add(f64.Pt(0, m.y.Get())))
	rad := m.ctx.Theme.Radius
	paint.Fill(c, r, rad, c.Color().Invert())
	c.StrokeRect(r, rad)
	m.content.Draw(c, r.Min)
}

// Release unregisters the modal's animators and those of its content.
func (m *Modal) Release() {
	m.y.Release()
	view.Release(m.content)
}
