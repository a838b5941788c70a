// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"monoui.org/anim"
	"monoui.org/f64"
	"monoui.org/internal/painttest"
	"monoui.org/key"
	"monoui.org/nav"
	"monoui.org/paint"
	"monoui.org/raster"
	"monoui.org/text"
	"monoui.org/view"
)

var screen = f64.Sz(128, 64)

type probe struct {
	view.Box
	f      *anim.Float
	events []string
}

func (p *probe) Draw(paint.Canvas, f64.Point) {
	p.events = append(p.events, "draw")
}

func (p *probe) HandleKey(k key.Code) bool {
	p.events = append(p.events, "key."+k.String())
	return k == key.Enter
}

func newRuntime() (*Runtime, *probe) {
	ctx := view.NewContext(screen, nil)
	rt := New(ctx)
	p := &probe{f: ctx.Float(0, 50)}
	rt.Nav.SetRoot(nav.NewPage(ctx, p))
	return rt, p
}

func TestStepPhases(t *testing.T) {
	rt, p := newRuntime()
	p.f.SetTarget(100)
	rec := painttest.New(screen, text.Basic())
	if rt.Step(rec, key.None) {
		t.Error("Step without a key reported consumption")
	}
	if got := p.f.Get(); got != 20 {
		t.Errorf("animator after one frame: got %v, want 20", got)
	}
	if rec.Ops[0].Kind != "fill" || rec.Ops[0].Color != paint.Black {
		t.Errorf("frame does not start by clearing: %v", rec.Ops[0])
	}
	if !rt.Step(rec, key.Enter) {
		t.Error("Enter not consumed")
	}
	if rt.Step(rec, key.Left) {
		t.Error("Left consumed")
	}
	if got, want := strings.Join(p.events, " "), "draw draw key.Enter draw key.Left"; got != want {
		t.Errorf("events: got %q, want %q", got, want)
	}
	if rt.Frames() != 3 {
		t.Errorf("frames: got %d, want 3", rt.Frames())
	}
}

type fakeDriver struct {
	canvas  *raster.Canvas
	keys    []key.Code
	flushes int
	stopAt  int
	err     error
}

func (d *fakeDriver) Canvas() paint.Canvas { return d.canvas }

func (d *fakeDriver) Poll() key.Code {
	if len(d.keys) == 0 {
		return key.None
	}
	k := d.keys[0]
	d.keys = d.keys[1:]
	return k
}

func (d *fakeDriver) Flush() error {
	d.flushes++
	if d.flushes == d.stopAt {
		return d.err
	}
	return nil
}

func newDriver(stopAt int, err error) *fakeDriver {
	bm := raster.NewBitmap(int(screen.Width), int(screen.Height))
	return &fakeDriver{
		canvas: raster.NewCanvas(bm, text.Basic()),
		keys:   []key.Code{key.Enter},
		stopAt: stopAt,
		err:    err,
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"stopped", ErrStopped, false},
		{"wrapped stop", errors.Join(errors.New("window closed"), ErrStopped), false},
		{"failure", errors.New("spi: timeout"), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rt, p := newRuntime()
			d := newDriver(3, tc.err)
			err := rt.Run(context.Background(), d, 1000)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Run: got %v, want error %v", err, tc.wantErr)
			}
			if d.flushes != 3 || rt.Frames() != 3 {
				t.Errorf("got %d flushes and %d frames, want 3", d.flushes, rt.Frames())
			}
			if got := strings.Join(p.events, " "); got != "draw key.Enter draw draw" {
				t.Errorf("events: %q", got)
			}
		})
	}
}

func TestRunCancelled(t *testing.T) {
	rt, _ := newRuntime()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := rt.Run(ctx, newDriver(0, nil), 1); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rt.Frames() != 0 {
		t.Errorf("frames after cancellation: %d", rt.Frames())
	}
}
