// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"monoui.org/f64"
	"monoui.org/key"
	"monoui.org/layout"
	"monoui.org/paint"
	"monoui.org/text"
	"monoui.org/view"
)

// Alert is a modal message with a row of buttons. Left and Right move
// between the buttons; Enter dismisses the alert and reports the chosen
// button. Back dismisses it without a choice.
type Alert struct {
	*Modal
	// OnChoose is called with the index of the chosen button.
	OnChoose func(i int)

	buttons  []*button
	selected int
}

// NewAlert returns an alert. Without buttons, a single "OK" button is
// shown.
func NewAlert(ctx *view.Context, title, message string, buttons ...string) *Alert {
	th := ctx.Theme
	if len(buttons) == 0 {
		buttons = []string{"OK"}
	}
	a := &Alert{}
	for i, b := range buttons {
		a.buttons = append(a.buttons, newButton(ctx, b, func() bool { return a.selected == i }))
	}
	content := layout.VStack(th.Padding,
		view.NewText(ctx, title),
		layout.If(message != "", view.NewText(ctx, message)),
		layout.HStack(2*th.Padding, layout.ForEach(a.buttons, func(_ int, b *button) view.View { return b })),
	)
	content.Alignment = layout.Middle
	content.Padding = th.Padding
	content.Layout()
	a.Modal = NewModal(ctx, content)
	a.Bounce(10, 0.7)
	return a
}

// Selected returns the index of the highlighted button.
func (a *Alert) Selected() int {
	return a.selected
}

func (a *Alert) HandleKey(k key.Code) bool {
	if a.Dismissing() {
		return true
	}
	switch k {
	case key.Left:
		a.selected = max(0, a.selected-1)
	case key.Right:
		a.selected = min(len(a.buttons)-1, a.selected+1)
	case key.Enter:
		a.ctx.DismissModal()
		if a.OnChoose != nil {
			a.OnChoose(a.selected)
		}
	default:
		return a.Modal.HandleKey(k)
	}
	return true
}

// button is a padded label, outlined or filled when active.
type button struct {
	view.Box
	label  *view.Text
	pad    float64
	radius float64
	active func() bool
}

func newButton(ctx *view.Context, label string, active func() bool) *button {
	b := &button{
		label:  view.NewText(ctx, label),
		pad:    2,
		radius: ctx.Theme.Radius,
		active: active,
	}
	b.resize(b.label.EstimateSize())
	return b
}

func (b *button) resize(label f64.Size) bool {
	sz := label.Add(f64.Sz(2*b.pad, 2*b.pad))
	if sz == b.Frame().Size() {
		return false
	}
	b.SetFrame(b.Frame().WithSize(sz))
	return true
}

func (b *button) Measure(f text.Face) bool {
	if !b.label.Measure(f) {
		return false
	}
	return b.resize(b.label.Frame().Size())
}

func (b *button) Draw(c paint.Canvas, origin f64.Point) {
	r := b.Frame().At(b.Origin(origin))
	at := r.Min.Add(f64.Pt(b.pad, b.pad))
	if !b.active() {
		c.StrokeRect(r, b.radius)
		b.label.Draw(c, at)
		return
	}
	ink := c.Color()
	c.FillRect(r, b.radius)
	c.SetColor(ink.Invert())
	b.label.Draw(c, at)
	c.SetColor(ink)
}
