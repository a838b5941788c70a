// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"

	"monoui.org/anim"
	"monoui.org/f64"
	"monoui.org/key"
	"monoui.org/layout"
	"monoui.org/paint"
	"monoui.org/text"
	"monoui.org/view"
)

// Tile is an entry of a TileMenu.
type Tile struct {
	Label string
	Icon  *view.Icon
}

// TileMenu is a horizontal carousel of icons. The selected tile is
// kept centered and highlighted; its label is shown below the row.
// Left and Right move the selection, Enter activates it.
type TileMenu struct {
	layout.Scroll
	// OnSelect is called after the selection moved.
	OnSelect func(i int)
	// OnActivate is called when the selected tile is activated.
	OnActivate func(i int)

	ctx      *view.Context
	tiles    []Tile
	views    []*tileView
	selected int
	label    *view.Text
	tile     f64.Size
	gap      float64

	offset *anim.Float
	cursor *anim.Float
}

// NewTileMenu returns a carousel of the given size.
func NewTileMenu(ctx *view.Context, size f64.Size, tiles ...Tile) *TileMenu {
	sp := ctx.Theme.Speed.Tile
	m := &TileMenu{
		ctx:    ctx,
		gap:    ctx.Theme.Padding * 2,
		label:  view.NewText(ctx, ""),
		offset: ctx.Float(0, sp),
		cursor: ctx.Float(0, sp),
	}
	m.Axes = layout.ScrollHorizontal
	m.Scroll.SetFrame(f64.Rectangle{}.WithSize(size))
	m.SetTiles(tiles...)
	return m
}

// SetTiles replaces the tiles and selects the first one.
func (m *TileMenu) SetTiles(tiles ...Tile) {
	pad := m.ctx.Theme.Padding
	m.tiles = tiles
	var isz f64.Size
	for _, t := range tiles {
		s := t.Icon.Size()
		isz.Width = max(isz.Width, s.Width)
		isz.Height = max(isz.Height, s.Height)
	}
	m.tile = isz.Add(f64.Sz(2*pad, 2*pad))
	m.views = make([]*tileView, len(tiles))
	vs := make([]view.View, len(tiles))
	for i, t := range tiles {
		v := &tileView{icon: t.Icon}
		v.SetFrame(f64.Rect(float64(i)*(m.tile.Width+m.gap), pad, m.tile.Width, m.tile.Height))
		m.views[i] = v
		vs[i] = v
	}
	m.SetChildren(vs...)
	m.selected = 0
	m.retarget()
	m.offset.Set(m.offset.Target())
	m.cursor.Set(m.cursor.Target())
}

// SetFrame places the carousel, centering the selection again after a
// change of width.
func (m *TileMenu) SetFrame(r f64.Rectangle) {
	old := m.Frame().Dx()
	m.Scroll.SetFrame(r)
	if r.Dx() != old {
		m.retarget()
	}
}

// Selected returns the index of the selected tile.
func (m *TileMenu) Selected() int {
	return m.selected
}

// Select moves the selection to tile i, clamped to the tiles.
func (m *TileMenu) Select(i int) {
	if len(m.tiles) == 0 {
		return
	}
	i = max(0, min(len(m.tiles)-1, i))
	if i == m.selected {
		return
	}
	m.selected = i
	m.retarget()
	if m.OnSelect != nil {
		m.OnSelect(i)
	}
}

// OffsetTarget returns the horizontal scroll offset the carousel is
// moving to.
func (m *TileMenu) OffsetTarget() float64 {
	return m.offset.Target()
}

func (m *TileMenu) retarget() {
	if len(m.views) == 0 {
		m.label.SetText("")
		return
	}
	r := m.views[m.selected].Frame()
	m.cursor.SetTarget(r.Min.X)
	m.offset.SetTarget(r.Mid().X - m.Frame().Dx()/2)
	m.label.SetText(m.tiles[m.selected].Label)
}

func (m *TileMenu) HandleKey(k key.Code) bool {
	switch k {
	case key.Left:
		m.Select(m.selected - 1)
	case key.Right:
		m.Select(m.selected + 1)
	case key.Enter:
		if m.OnActivate != nil && len(m.tiles) > 0 {
			m.OnActivate(m.selected)
		}
	default:
		return false
	}
	return true
}

func (m *TileMenu) Measure(f text.Face) bool {
	m.label.Measure(f)
	return false
}

func (m *TileMenu) Draw(c paint.Canvas, origin f64.Point) {
	m.Measure(c.Face())
	m.Offset = f64.Pt(m.offset.Get(), 0)
	frame := m.Frame().At(m.Origin(origin))
	c.PushClip(frame)
	defer c.PopClip()
	base := m.ContentOrigin(origin)
	vis := m.Visible()
	for i, v := range m.views {
		if i == m.selected || !v.Frame().Overlaps(vis) {
			continue
		}
		v.Draw(c, base)
	}
	if len(m.views) == 0 {
		return
	}
	ink := c.Color()
	cur := f64.Rect(m.cursor.Get(), m.ctx.Theme.Padding, m.tile.Width, m.tile.Height)
	c.FillRect(cur.Add(base), m.ctx.Theme.Radius)
	c.SetColor(ink.Invert())
	m.views[m.selected].Draw(c, base)
	c.SetColor(ink)

	lw := m.label.Frame().Dx()
	at := f64.Pt(math.Floor(frame.Mid().X-lw/2), frame.Max.Y-m.label.Frame().Dy())
	m.label.Draw(c, at)
}

func (m *TileMenu) Release() {
	m.offset.Release()
	m.cursor.Release()
	m.Scroll.Release()
}

// tileView draws an icon inset in its frame.
type tileView struct {
	view.Box
	icon *view.Icon
}

func (t *tileView) Draw(c paint.Canvas, origin f64.Point) {
	r := t.Frame().At(t.Origin(origin))
	isz := t.icon.Size()
	at := layout.Center.Position(isz, r.Size())
	t.icon.Draw(c, r.Min.Add(f64.Pt(math.Floor(at.X), math.Floor(at.Y))))
}
