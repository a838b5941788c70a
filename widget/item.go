// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"

	"monoui.org/f64"
	"monoui.org/layout"
	"monoui.org/paint"
	"monoui.org/view"
)

// ItemKind selects the behavior of a list item.
type ItemKind uint8

const (
	// KindText is a plain entry. Activating it only notifies the list's
	// OnActivate.
	KindText ItemKind = iota
	// KindToggle flips a Bool, drawn as a switch.
	KindToggle
	// KindRadio selects its key in an Enum shared by a group.
	KindRadio
	// KindCheckbox flips one of a group of Flags.
	KindCheckbox
	// KindValue adjusts a Float with a Slider modal.
	KindValue
	// KindHeader titles a section. It cannot be selected.
	KindHeader
	// KindSeparator is a horizontal rule. It cannot be selected.
	KindSeparator
)

// Item is an entry of a ListMenu.
type Item struct {
	Kind  ItemKind
	Label string

	// Bool is flipped by a toggle.
	Bool *Bool
	// Enum is set to Key by a radio item.
	Enum *Enum
	Key  string
	// Flags has flag Index flipped by a checkbox.
	Flags *Flags
	Index int
	// Float is adjusted by a value item.
	Float *Float
	// Format formats the value of a value item. The default is
	// the shortest representation of the value.
	Format func(v float64) string

	// OnChange is called after activation changed the item's state.
	OnChange func()
}

// TextItem returns a plain entry.
func TextItem(label string) *Item {
	return &Item{Kind: KindText, Label: label}
}

// Toggle returns a switch flipping b.
func Toggle(label string, b *Bool, onChange func()) *Item {
	return &Item{Kind: KindToggle, Label: label, Bool: b, OnChange: onChange}
}

// Radio returns a member of the radio group e, selecting key.
func Radio(label string, e *Enum, key string, onChange func()) *Item {
	return &Item{Kind: KindRadio, Label: label, Enum: e, Key: key, OnChange: onChange}
}

// Checkbox returns a checkbox flipping flag i of f.
func Checkbox(label string, f *Flags, i int, onChange func()) *Item {
	return &Item{Kind: KindCheckbox, Label: label, Flags: f, Index: i, OnChange: onChange}
}

// Value returns an entry showing f and editing it with a slider.
func Value(label string, f *Float, onChange func()) *Item {
	return &Item{Kind: KindValue, Label: label, Float: f, OnChange: onChange}
}

// Header returns a section title.
func Header(label string) *Item {
	return &Item{Kind: KindHeader, Label: label}
}

// Separator returns a horizontal rule.
func Separator() *Item {
	return &Item{Kind: KindSeparator}
}

// Selectable reports whether the cursor may rest on the item.
func (it *Item) Selectable() bool {
	return it.Kind != KindHeader && it.Kind != KindSeparator
}

func (it *Item) changed() {
	if it.OnChange != nil {
		it.OnChange()
	}
}

func (it *Item) valueText() string {
	return formatValue(it.Format, it.Float.Value)
}

// row is the view of an Item: a padded horizontal stack with the label
// first and the item's state at the trailing edge.
type row struct {
	*layout.Stack
	item  *Item
	pad   float64
	label *view.Text
	value *view.Text
}

func newRow(ctx *view.Context, it *Item, width float64) *row {
	th := ctx.Theme
	r := &row{item: it, pad: th.Padding}
	h := th.ItemHeight
	var children []any
	switch it.Kind {
	case KindSeparator:
		h = math.Round(th.ItemHeight / 2)
		children = []any{new(rule)}
	case KindHeader:
		r.label = view.NewText(ctx, it.Label)
		children = []any{r.label, new(rule)}
	default:
		r.label = view.NewText(ctx, it.Label)
		children = []any{r.label}
	}
	switch it.Kind {
	case KindToggle:
		children = append(children, layout.NewSpacer(th.Padding), newSwitch(it.Bool))
	case KindRadio:
		e, key := it.Enum, it.Key
		children = append(children, layout.NewSpacer(th.Padding),
			newStateIcon(th.Icon.RadioChecked, th.Icon.RadioUnchecked, func() bool { return e.Value == key }))
	case KindCheckbox:
		f, i := it.Flags, it.Index
		children = append(children, layout.NewSpacer(th.Padding),
			newStateIcon(th.Icon.CheckBoxChecked, th.Icon.CheckBoxUnchecked, func() bool { return f.Get(i) }))
	case KindValue:
		r.value = view.NewText(ctx, it.valueText())
		children = append(children, layout.NewSpacer(th.Padding), r.value)
	}
	r.Stack = layout.HStack(th.Padding, children...)
	r.Stack.Padding = th.Padding
	r.Stack.Alignment = layout.Middle
	r.SetSize(f64.Sz(width, h))
	return r
}

// refresh updates the displayed value after the item's Float changed.
func (r *row) refresh() {
	if r.value != nil {
		r.value.SetText(r.item.valueText())
		r.Layout()
	}
}

// contentWidth is the width covered by the selection cursor.
func (r *row) contentWidth() float64 {
	if r.item.Kind == KindText && r.label != nil {
		return r.label.Frame().Max.X + r.pad
	}
	return r.Frame().Dx()
}

// rule is a flexible horizontal line through the middle of its frame.
type rule struct {
	view.Box
}

func (r *rule) MinLength() float64 {
	return 0
}

func (r *rule) Draw(c paint.Canvas, origin f64.Point) {
	f := r.Frame().At(r.Origin(origin))
	if f.Dx() < 1 {
		return
	}
	y := f.Min.Y + math.Floor(f.Dy()/2)
	c.Line(f64.Pt(f.Min.X, y), f64.Pt(f.Max.X-1, y))
}

// switchView draws a Bool as a sliding switch.
type switchView struct {
	view.Box
	on *Bool
}

func newSwitch(b *Bool) *switchView {
	s := &switchView{on: b}
	s.SetFrame(f64.Rect(0, 0, 14, 8))
	return s
}

func (s *switchView) Draw(c paint.Canvas, origin f64.Point) {
	r := s.Frame().At(s.Origin(origin))
	c.StrokeRect(r, r.Dy()/2)
	d := r.Dy() - 4
	x := r.Min.X + 2
	if s.on.Value {
		x = r.Max.X - 2 - d
	}
	c.FillRect(f64.Rect(x, r.Min.Y+2, d, d), d/2)
}

// stateIcon shows one of two icons depending on a predicate.
type stateIcon struct {
	view.Box
	on, off *view.Icon
	state   func() bool
}

func newStateIcon(on, off *view.Icon, state func() bool) *stateIcon {
	s := &stateIcon{on: on, off: off, state: state}
	s.SetFrame(f64.Rectangle{}.WithSize(on.Size()))
	return s
}

func (s *stateIcon) Draw(c paint.Canvas, origin f64.Point) {
	ic := s.off
	if s.state() {
		ic = s.on
	}
	ic.Draw(c, s.Origin(origin))
}
