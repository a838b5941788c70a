// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app drives a monoui application.

Every frame runs three phases in order: animators are advanced once,
the navigator is drawn, and at most one key is delivered. Step runs a
single frame against any paint.Canvas; Run paces frames for a Driver
until its context is cancelled.
*/
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"monoui.org/key"
	"monoui.org/nav"
	"monoui.org/paint"
	"monoui.org/view"
)

// Runtime owns the view context and navigator of an application.
type Runtime struct {
	Ctx *view.Context
	Nav *nav.Navigator

	log    *slog.Logger
	frames uint64
}

// Driver connects a Runtime to a display and an input source.
type Driver interface {
	// Canvas returns the canvas the next frame is drawn to.
	Canvas() paint.Canvas
	// Poll returns the pending key, or key.None.
	Poll() key.Code
	// Flush presents the drawn frame.
	Flush() error
}

// ErrStopped is returned by a Driver's Flush to end Run without error.
var ErrStopped = errors.New("app: stopped")

// New returns a runtime with an empty navigator for ctx.
func New(ctx *view.Context) *Runtime {
	return &Runtime{
		Ctx: ctx,
		Nav: nav.New(ctx),
		log: ctx.Logger.With("component", "app"),
	}
}

// Frames returns the number of frames stepped.
func (r *Runtime) Frames() uint64 {
	return r.frames
}

// Step runs one frame on c and delivers k. It reports whether k was
// consumed.
func (r *Runtime) Step(c paint.Canvas, k key.Code) bool {
	r.frames++
	r.Ctx.Anim.Tick()
	paint.Clear(c, paint.Normal.Paper())
	c.SetColor(paint.Normal.Ink())
	r.Nav.Draw(c)
	if k == key.None {
		return false
	}
	ok := r.Nav.HandleKey(k)
	r.log.Debug("key", "code", k, "consumed", ok)
	return ok
}

// Run steps frames at fps until ctx is done or d stops. A non-positive
// fps selects the theme's frame rate.
func (r *Runtime) Run(ctx context.Context, d Driver, fps int) error {
	if fps <= 0 {
		fps = r.Ctx.Theme.FPS
	}
	r.log.Debug("run", "fps", fps, "pages", r.Nav.Len())
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.log.Debug("stop", "frames", r.frames, "err", ctx.Err())
			return nil
		case <-ticker.C:
			r.Step(d.Canvas(), d.Poll())
			if err := d.Flush(); err != nil {
				if errors.Is(err, ErrStopped) {
					return nil
				}
				return err
			}
		}
	}
}
