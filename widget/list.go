// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"monoui.org/anim"
	"monoui.org/f64"
	"monoui.org/key"
	"monoui.org/layout"
	"monoui.org/paint"
	"monoui.org/text"
	"monoui.org/view"
)

// scrollMargin is the distance the selected row keeps from the
// viewport edges.
const scrollMargin = 5

// ListMenu is a vertical list of items with an animated selection
// cursor. Up and Down move the selection over selectable items without
// wrapping, Enter activates the selected item.
//
// The viewport scrolls only when the selection comes within
// scrollMargin of its top or bottom edge.
type ListMenu struct {
	layout.Scroll
	// OnSelect is called after the selection moved.
	OnSelect func(i int)
	// OnActivate is called after the selected item was activated.
	OnActivate func(i int)
	// Scrollbar enables the scroll position indicator.
	Scrollbar bool

	ctx      *view.Context
	items    []*Item
	rows     []*row
	selected int
	measured bool

	// Cursor geometry in content coordinates.
	cursorY, cursorH, cursorW *anim.Float
	scroll                    *anim.Float
	bar                       *anim.Float
	entrance                  *anim.Float
}

// NewListMenu returns a list of the given size showing items.
func NewListMenu(ctx *view.Context, size f64.Size, items ...*Item) *ListMenu {
	sp := ctx.Theme.Speed
	l := &ListMenu{
		Scrollbar: true,
		ctx:       ctx,
		cursorY:   ctx.Float(0, sp.Cursor),
		cursorH:   ctx.Float(0, sp.Cursor),
		cursorW:   ctx.Float(0, sp.Cursor),
		scroll:    ctx.Float(0, sp.Scroll),
		bar:       ctx.Float(0, sp.Scroll),
		entrance:  ctx.Float(0, sp.Entrance),
	}
	l.Axes = layout.ScrollVertical
	l.Scroll.SetFrame(f64.Rectangle{}.WithSize(size))
	l.SetItems(items...)
	return l
}

// SetItems replaces the items. The selection moves to the first
// selectable item and the viewport to the top.
func (l *ListMenu) SetItems(items ...*Item) {
	l.items = items
	l.rows = make([]*row, len(items))
	vs := make([]view.View, len(items))
	w := l.Frame().Dx()
	var y float64
	for i, it := range items {
		r := newRow(l.ctx, it, w)
		r.SetFrame(r.Frame().At(f64.Pt(0, y)))
		y += r.Frame().Dy()
		l.rows[i] = r
		vs[i] = r
	}
	l.SetChildren(vs...)
	l.measured = false
	l.selected = 0
	if i, ok := l.search(0, 1, true); ok {
		l.selected = i
	}
	l.scroll.Set(0)
	l.bar.Set(0)
	l.Offset = f64.Point{}
	l.retarget()
	l.cursorY.Set(l.cursorY.Target())
	l.cursorH.Set(l.cursorH.Target())
	l.cursorW.Set(l.cursorW.Target())
}

// Items returns the list items.
func (l *ListMenu) Items() []*Item {
	return l.items
}

// Selected returns the index of the selected item.
func (l *ListMenu) Selected() int {
	return l.selected
}

// ScrollTarget returns the offset the viewport is scrolling to.
func (l *ListMenu) ScrollTarget() float64 {
	return l.scroll.Target()
}

// CursorTarget returns the rectangle the cursor is moving to, in
// content coordinates.
func (l *ListMenu) CursorTarget() f64.Rectangle {
	return f64.Rect(0, l.cursorY.Target(), l.cursorW.Target(), l.cursorH.Target())
}

// SetFrame places the list, fitting the rows to a new width.
func (l *ListMenu) SetFrame(r f64.Rectangle) {
	old := l.Frame().Size()
	l.Scroll.SetFrame(r)
	if r.Size() == old {
		return
	}
	for _, row := range l.rows {
		row.SetSize(f64.Sz(r.Dx(), row.Frame().Dy()))
	}
	if l.hasCursor() {
		l.retarget()
		l.follow()
	}
}

// Select moves the selection to item i, or the next selectable item
// after it. Out of range indices are clamped.
func (l *ListMenu) Select(i int) {
	n := len(l.items)
	if n == 0 {
		return
	}
	i = max(0, min(n-1, i))
	if j, ok := l.search(i, 1, true); ok {
		l.moveTo(j)
	}
}

// MoveUp selects the previous selectable item, if any.
func (l *ListMenu) MoveUp() {
	if i, ok := l.step(-1); ok {
		l.moveTo(i)
	}
}

// MoveDown selects the next selectable item, if any.
func (l *ListMenu) MoveDown() {
	if i, ok := l.step(1); ok {
		l.moveTo(i)
	}
}

func (l *ListMenu) step(dir int) (int, bool) {
	i := l.selected + dir
	if i < 0 || i >= len(l.items) {
		return 0, false
	}
	return l.search(i, dir, false)
}

// search returns the first selectable item from i in direction dir. With
// wrap, the search continues from the other end and gives up after
// visiting every item once.
func (l *ListMenu) search(i, dir int, wrap bool) (int, bool) {
	n := len(l.items)
	for range n {
		if l.items[i].Selectable() {
			return i, true
		}
		i += dir
		if i < 0 || i >= n {
			if !wrap {
				return 0, false
			}
			i = (i + n) % n
		}
	}
	return 0, false
}

func (l *ListMenu) moveTo(i int) {
	l.selected = i
	l.retarget()
	l.follow()
	if l.OnSelect != nil {
		l.OnSelect(i)
	}
}

func (l *ListMenu) hasCursor() bool {
	return len(l.items) > 0 && l.items[l.selected].Selectable()
}

// retarget points the cursor animators at the selected row.
func (l *ListMenu) retarget() {
	if len(l.rows) == 0 {
		return
	}
	r := l.rows[l.selected].Frame()
	l.cursorY.SetTarget(r.Min.Y)
	l.cursorH.SetTarget(r.Dy())
	l.cursorW.SetTarget(l.cursorWidth())
}

func (l *ListMenu) cursorWidth() float64 {
	if !l.measured {
		return l.Frame().Dx()
	}
	return l.rows[l.selected].contentWidth()
}

// follow scrolls the selected row into view when it is near an edge.
func (l *ListMenu) follow() {
	r := l.rows[l.selected].Frame()
	h := l.Frame().Dy()
	off := l.scroll.Target()
	switch {
	case r.Max.Y > off+h-scrollMargin:
		off = r.Max.Y - h + scrollMargin
	case r.Min.Y < off+scrollMargin:
		off = r.Min.Y - scrollMargin
	default:
		return
	}
	off = max(0, min(l.MaxOffset().Y, off))
	l.scroll.SetTarget(off)
	l.bar.SetTarget(l.barY(off))
}

func (l *ListMenu) thumb() float64 {
	h, content := l.Frame().Dy(), l.ContentSize().Height
	if content <= h {
		return 0
	}
	return max(4, h*h/content)
}

func (l *ListMenu) barY(off float64) float64 {
	maxOff := l.MaxOffset().Y
	if maxOff <= 0 {
		return 0
	}
	return off / maxOff * (l.Frame().Dy() - l.thumb())
}

// Enter slides the rows in from the right, later rows trailing.
func (l *ListMenu) Enter() {
	l.entrance.Set(l.Frame().Dx())
	l.entrance.SetTarget(0)
}

func (l *ListMenu) rowShift(i int) float64 {
	e := l.entrance.Get()
	if e == 0 {
		return 0
	}
	k := max(0, (l.rows[i].Frame().Min.Y-l.scroll.Get())/l.ctx.Theme.ItemHeight)
	return min(l.Frame().Dx(), e*(1+0.25*k))
}

// Activate activates the selected item.
func (l *ListMenu) Activate() {
	if !l.hasCursor() {
		return
	}
	it := l.items[l.selected]
	switch it.Kind {
	case KindToggle:
		it.Bool.Toggle()
		it.changed()
	case KindRadio:
		it.Enum.Set(it.Key)
		it.changed()
	case KindCheckbox:
		it.Flags.Toggle(it.Index)
		it.changed()
	case KindValue:
		r := l.rows[l.selected]
		l.ctx.Present(NewSlider(l.ctx, it.Label, it.Float, it.Format, func() {
			r.refresh()
			it.changed()
		}))
	}
	if l.OnActivate != nil {
		l.OnActivate(l.selected)
	}
}

func (l *ListMenu) HandleKey(k key.Code) bool {
	switch k {
	case key.Up:
		l.MoveUp()
	case key.Down:
		l.MoveDown()
	case key.Enter:
		l.Activate()
	default:
		return false
	}
	return true
}

func (l *ListMenu) Measure(f text.Face) bool {
	for _, r := range l.rows {
		r.Measure(f)
	}
	l.measured = true
	if l.hasCursor() {
		l.cursorW.SetTarget(l.cursorWidth())
	}
	return false
}

// Draw draws the unselected rows, then the cursor and the selected row
// over it in the inverse color.
func (l *ListMenu) Draw(c paint.Canvas, origin f64.Point) {
	l.Measure(c.Face())
	l.Offset = f64.Pt(0, l.scroll.Get())
	frame := l.Frame().At(l.Origin(origin))
	c.PushClip(frame)
	defer c.PopClip()
	base := l.ContentOrigin(origin)
	vis := l.Visible()
	cursor := l.hasCursor()
	for i, r := range l.rows {
		if cursor && i == l.selected || !r.Frame().Overlaps(vis) {
			continue
		}
		r.Draw(c, base.Add(f64.Pt(l.rowShift(i), 0)))
	}
	if cursor {
		at := base.Add(f64.Pt(l.rowShift(l.selected), 0))
		cur := f64.Rect(0, l.cursorY.Get(), l.cursorW.Get(), l.cursorH.Get())
		ink := c.Color()
		c.FillRect(cur.Add(at), l.ctx.Theme.Radius)
		c.SetColor(ink.Invert())
		l.rows[l.selected].Draw(c, at)
		c.SetColor(ink)
	}
	if t := l.thumb(); l.Scrollbar && t > 0 {
		c.FillRect(f64.Rect(frame.Max.X-2, frame.Min.Y+l.bar.Get(), 2, t), 0)
	}
}

// Release unregisters the list's animators.
func (l *ListMenu) Release() {
	for _, a := range []*anim.Float{l.cursorY, l.cursorH, l.cursorW, l.scroll, l.bar, l.entrance} {
		a.Release()
	}
	l.Scroll.Release()
}
