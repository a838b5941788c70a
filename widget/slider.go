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

// Slider is a modal adjusting a Float. Left and Down decrease the
// value by a step, Right and Up increase it, Enter closes the dialog.
type Slider struct {
	*Modal
	f        *Float
	format   func(float64) string
	onChange func()
	value    *view.Text
	bar      *sliderBar
}

// NewSlider returns a slider titled title editing f. format formats
// the value shown below the bar; nil selects the shortest
// representation. onChange, if not nil, is called after every change.
func NewSlider(ctx *view.Context, title string, f *Float, format func(float64) string, onChange func()) *Slider {
	th := ctx.Theme
	w := math.Round(ctx.Screen.Width * 3 / 4)
	s := &Slider{f: f, format: format, onChange: onChange}
	s.value = view.NewText(ctx, s.text())
	s.bar = newSliderBar(ctx, w-2*th.Padding, f.Pos())
	content := layout.VStack(th.Padding, view.NewText(ctx, title), s.bar, s.value)
	content.Alignment = layout.Middle
	content.Padding = th.Padding
	content.SetSize(f64.Sz(w, 0))
	s.Modal = NewModal(ctx, content)
	return s
}

func (s *Slider) text() string {
	return formatValue(s.format, s.f.Value)
}

func (s *Slider) adjust(n int) {
	old := s.f.Value
	s.f.Add(n)
	if s.f.Value == old {
		return
	}
	s.value.SetText(s.text())
	s.bar.set(s.f.Pos())
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *Slider) HandleKey(k key.Code) bool {
	if s.Dismissing() {
		return true
	}
	switch k {
	case key.Left, key.Down:
		s.adjust(-1)
	case key.Right, key.Up:
		s.adjust(1)
	case key.Enter:
		s.ctx.DismissModal()
	default:
		return s.Modal.HandleKey(k)
	}
	return true
}

// sliderBar is an outlined track filled up to the value's position.
type sliderBar struct {
	view.Box
	fill *anim.Float
}

func newSliderBar(ctx *view.Context, width, pos float64) *sliderBar {
	b := &sliderBar{fill: ctx.Float(0, ctx.Theme.Speed.Cursor)}
	b.SetFrame(f64.Rect(0, 0, width, 6))
	b.fill.Set(pos * width)
	return b
}

func (b *sliderBar) set(pos float64) {
	b.fill.SetTarget(pos * b.Frame().Dx())
}

func (b *sliderBar) Draw(c paint.Canvas, origin f64.Point) {
	r := b.Frame().At(b.Origin(origin))
	c.StrokeRect(r, 0)
	if w := b.fill.Get(); w > 0 {
		c.FillRect(f64.Rect(r.Min.X, r.Min.Y, w, r.Dy()), 0)
	}
}

func (b *sliderBar) Release() {
	b.fill.Release()
}
