// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"monoui.org/f64"
	"monoui.org/internal/painttest"
	"monoui.org/raster"
	"monoui.org/text"
)

func TestTextSizing(t *testing.T) {
	ctx := NewContext(f64.Sz(128, 64), nil)
	l := NewText(ctx, "Hello")
	if got, want := l.EstimateSize(), f64.Sz(30, 13); got != want {
		t.Errorf("EstimateSize = %v, want %v", got, want)
	}
	face := text.Basic()
	if !l.Measure(face) {
		t.Fatalf("first Measure reported no change")
	}
	if got, want := l.Frame().Size(), f64.Sz(35, 13); got != want {
		t.Errorf("measured size = %v, want %v", got, want)
	}
	if l.Measure(face) {
		t.Errorf("second Measure with the same face reported a change")
	}
	l.SetText("Hi")
	if !l.Measure(face) {
		t.Errorf("Measure after SetText reported no change")
	}
	if got := l.Frame().Dx(); got != 14 {
		t.Errorf("width after SetText = %v, want 14", got)
	}
}

func TestTextDrawBaseline(t *testing.T) {
	ctx := NewContext(f64.Sz(128, 64), nil)
	l := NewText(ctx, "A")
	l.SetFrame(f64.Rect(5, 6, 7, 13))
	rec := painttest.New(ctx.Screen, text.Basic())
	l.Draw(rec, f64.Pt(10, 20))
	op, ok := rec.Find("A")
	if !ok {
		t.Fatal("text not drawn")
	}
	if want := f64.Pt(15, 37); op.Point != want {
		t.Errorf("baseline at %v, want %v", op.Point, want)
	}
}

func TestIcon(t *testing.T) {
	ic, err := NewIcon(icons.ActionHome, 16)
	if err != nil {
		t.Fatal(err)
	}
	if got := ic.Size(); got.Width != 16 || got.Height == 0 {
		t.Fatalf("Size = %v", got)
	}
	b := raster.NewBitmap(16, 16)
	ic.Draw(raster.NewCanvas(b, text.Basic()), f64.Pt(0, 0))
	if b.Count(b.Bounds()) == 0 {
		t.Errorf("icon drew nothing")
	}
	if _, err := NewIcon([]byte("not an icon"), 16); err == nil {
		t.Errorf("expected decode error")
	}
}

func TestImageScales(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(0, 0, color.Gray{Y: 0xff})
	im := NewImage(src)
	if got := im.Frame().Size(); got != f64.Sz(2, 2) {
		t.Fatalf("frame = %v", got)
	}
	im.SetFrame(f64.Rect(0, 0, 4, 4))
	b := raster.NewBitmap(4, 4)
	im.Draw(raster.NewCanvas(b, text.Basic()), f64.Pt(0, 0))
	if got := b.Count(b.Bounds()); got != 4 {
		t.Errorf("scaled image lit %d pixels, want 4:\n%s", got, b)
	}
	if !b.Pixel(0, 0) || !b.Pixel(1, 1) || b.Pixel(2, 2) {
		t.Errorf("wrong quadrant lit:\n%s", b)
	}
}

func TestShapes(t *testing.T) {
	b := raster.NewBitmap(10, 10)
	c := raster.NewCanvas(b, text.Basic())
	NewRect(4, 4, 0, true).Draw(c, f64.Pt(1, 1))
	if got := b.Count(b.Bounds()); got != 16 {
		t.Errorf("filled rect lit %d pixels", got)
	}
	b.Fill(false)
	d := NewDivider(10)
	d.Draw(c, f64.Pt(0, 5))
	if got := b.Count(image.Rect(0, 5, 10, 6)); got != 10 {
		t.Errorf("divider lit %d pixels on its row:\n%s", got, b)
	}
}

func TestContextPresenter(t *testing.T) {
	ctx := NewContext(f64.Sz(128, 64), nil)
	// No presenter: both calls are no-ops.
	ctx.Present(NewText(ctx, "x"))
	ctx.DismissModal()
	p := &fakePresenter{}
	ctx.Presenter = p
	v := NewText(ctx, "x")
	ctx.Present(v)
	ctx.DismissModal()
	if p.presented != v || p.dismissed != 1 {
		t.Errorf("presenter not called: %+v", p)
	}
	if ctx.Anim.Epsilon != ctx.Theme.Epsilon || ctx.Anim.Speed != 50 {
		t.Errorf("registry constants not taken from theme")
	}
}

type fakePresenter struct {
	presented View
	dismissed int
}

func (p *fakePresenter) Present(v View) { p.presented = v }
func (p *fakePresenter) DismissModal()  { p.dismissed++ }
