// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"strconv"
	"testing"

	"monoui.org/f64"
	"monoui.org/internal/painttest"
	"monoui.org/key"
	"monoui.org/paint"
	"monoui.org/text"
	"monoui.org/view"
)

var screen = f64.Sz(128, 64)

type presenter struct {
	modal     view.View
	dismissed int
}

func (p *presenter) Present(v view.View) { p.modal = v }
func (p *presenter) DismissModal()       { p.dismissed++ }

func newContext() (*view.Context, *presenter) {
	ctx := view.NewContext(screen, nil)
	p := new(presenter)
	ctx.Presenter = p
	return ctx, p
}

func textItems(n int) []*Item {
	var items []*Item
	for i := 0; i < n; i++ {
		items = append(items, TextItem("Item "+strconv.Itoa(i)))
	}
	return items
}

func TestListScrollsNearEdge(t *testing.T) {
	ctx, _ := newContext()
	l := NewListMenu(ctx, screen, textItems(10)...)
	wants := []float64{0, 0, 5, 21, 37}
	for i, want := range wants {
		l.MoveDown()
		if got := l.ScrollTarget(); got != want {
			t.Errorf("after %d moves: scroll target %v, want %v", i+1, got, want)
		}
	}
	if got := l.Selected(); got != 5 {
		t.Errorf("selected %d, want 5", got)
	}
	if got := l.CursorTarget(); got.Min.Y != 80 || got.Dy() != 16 {
		t.Errorf("cursor target %v", got)
	}
	// Moving back up inside the margin leaves the viewport alone.
	l.MoveUp()
	if got := l.ScrollTarget(); got != 37 {
		t.Errorf("scroll target moved to %v", got)
	}
}

func TestListClamps(t *testing.T) {
	ctx, _ := newContext()
	l := NewListMenu(ctx, screen, textItems(3)...)
	moves := 0
	l.OnSelect = func(int) { moves++ }
	l.MoveUp()
	if l.Selected() != 0 || moves != 0 {
		t.Errorf("MoveUp at the top: selected %d, %d callbacks", l.Selected(), moves)
	}
	l.MoveDown()
	l.MoveDown()
	l.MoveDown()
	if l.Selected() != 2 || moves != 2 {
		t.Errorf("MoveDown past the end: selected %d, %d callbacks", l.Selected(), moves)
	}
	l.Select(99)
	if l.Selected() != 2 {
		t.Errorf("Select(99) selected %d", l.Selected())
	}
}

func TestListSkipsUnselectable(t *testing.T) {
	ctx, _ := newContext()
	l := NewListMenu(ctx, screen,
		Header("Section"),
		TextItem("a"),
		Separator(),
		TextItem("b"),
		Header("End"),
	)
	steps := []struct {
		move func()
		want int
	}{
		{func() {}, 1},
		{l.MoveDown, 3},
		{l.MoveDown, 3},
		{l.MoveUp, 1},
		{l.MoveUp, 1},
	}
	for i, s := range steps {
		s.move()
		if got := l.Selected(); got != s.want {
			t.Errorf("step %d: selected %d, want %d", i, got, s.want)
		}
	}
	if h := l.rows[2].Frame().Dy(); h != 8 {
		t.Errorf("separator height %v", h)
	}
}

func TestListNothingSelectable(t *testing.T) {
	ctx, _ := newContext()
	l := NewListMenu(ctx, screen, Header("a"), Separator(), Header("b"))
	l.MoveDown()
	l.MoveUp()
	l.Select(1)
	l.Activate()
	if l.Selected() != 0 {
		t.Errorf("selected %d", l.Selected())
	}
	rec := painttest.New(screen, text.Basic())
	l.Draw(rec, f64.Point{})
	for _, op := range rec.Ops {
		if op.Kind == "fill" {
			t.Errorf("drew a cursor: %v", op)
		}
	}
	empty := NewListMenu(ctx, screen)
	empty.MoveDown()
	empty.Draw(rec, f64.Point{})
}

func TestListDrawsSelectionLast(t *testing.T) {
	ctx, _ := newContext()
	l := NewListMenu(ctx, screen, TextItem("a"), TextItem("b"), TextItem("c"))
	l.MoveDown()
	rec := painttest.New(screen, text.Basic())
	l.Draw(rec, f64.Point{})
	var got []string
	for _, op := range rec.Ops {
		switch op.Kind {
		case "text":
			got = append(got, op.Text+":"+op.Color.String())
		case "fill":
			got = append(got, "cursor:"+op.Color.String())
		}
	}
	want := []string{"a:White", "c:White", "cursor:White", "b:Black"}
	if len(got) != len(want) {
		t.Fatalf("draw order %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("draw order %v, want %v", got, want)
		}
	}
	if rec.Color() != paint.White {
		t.Errorf("color not restored")
	}
}

func TestListCursorWidth(t *testing.T) {
	ctx, _ := newContext()
	l := NewListMenu(ctx, screen, TextItem("Hello"), Toggle("Wifi", new(Bool), nil))
	if got := l.CursorTarget().Dx(); got != 128 {
		t.Errorf("unmeasured cursor width %v, want 128", got)
	}
	l.Draw(painttest.New(screen, text.Basic()), f64.Point{})
	if got := l.CursorTarget().Dx(); got != 41 {
		t.Errorf("measured cursor width %v, want 41", got)
	}
	l.MoveDown()
	if got := l.CursorTarget().Dx(); got != 128 {
		t.Errorf("toggle cursor width %v, want 128", got)
	}
}

func TestListActivate(t *testing.T) {
	ctx, p := newContext()
	wifi := new(Bool)
	mode := &Enum{Value: "a"}
	flags := NewFlags(2)
	vol := &Float{Value: 3, Min: 0, Max: 10, Step: 1}
	var changes []string
	note := func(s string) func() { return func() { changes = append(changes, s) } }
	l := NewListMenu(ctx, screen,
		Toggle("Wifi", wifi, note("wifi")),
		Radio("B", mode, "b", note("mode")),
		Checkbox("Second", flags, 1, note("flag")),
		Value("Volume", vol, note("vol")),
		TextItem("About"),
	)
	var activated []int
	l.OnActivate = func(i int) { activated = append(activated, i) }
	for range l.Items() {
		l.HandleKey(key.Enter)
		l.HandleKey(key.Down)
	}
	if !wifi.Value || mode.Value != "b" || !flags.Get(1) || flags.Get(0) {
		t.Errorf("state after activation: wifi=%v mode=%q flags=%v", wifi.Value, mode.Value, flags.Values)
	}
	if len(activated) != 5 {
		t.Errorf("OnActivate calls %v", activated)
	}
	s, ok := p.modal.(*Slider)
	if !ok {
		t.Fatalf("value item presented %T", p.modal)
	}
	s.HandleKey(key.Right)
	if vol.Value != 4 {
		t.Errorf("slider set %v", vol.Value)
	}
	if got := l.rows[3].value.String(); got != "4" {
		t.Errorf("row shows %q", got)
	}
	want := []string{"wifi", "mode", "flag", "vol"}
	if len(changes) != len(want) {
		t.Fatalf("changes %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("changes %v, want %v", changes, want)
			break
		}
	}
	if l.HandleKey(key.Left) {
		t.Errorf("list consumed Left")
	}
}

func TestListRelease(t *testing.T) {
	ctx, _ := newContext()
	n := ctx.Anim.Len()
	l := NewListMenu(ctx, screen, textItems(4)...)
	if ctx.Anim.Len() == n {
		t.Fatal("list registered no animators")
	}
	l.Enter()
	for i := 0; i < 300; i++ {
		ctx.Anim.Tick()
	}
	if l.rowShift(0) != 0 {
		t.Errorf("entrance did not settle")
	}
	l.Release()
	if got := ctx.Anim.Len(); got != n {
		t.Errorf("%d animators left after Release", got-n)
	}
}
