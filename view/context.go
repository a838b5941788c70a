// SPDX-License-Identifier: Unlicense OR MIT

package view

import (
	"io"
	"log/slog"

	"monoui.org/anim"
	"monoui.org/f64"
)

// Presenter shows and dismisses the single modal view.
type Presenter interface {
	Present(v View)
	DismissModal()
}

// Context carries the runtime shared by every view of an application.
// It is created once at startup and passed to view constructors.
type Context struct {
	// Anim ticks every animator of the application.
	Anim *anim.Registry
	// Screen is the display size.
	Screen f64.Size
	// Theme holds visual constants.
	Theme *Theme
	// Presenter presents modals. It is set by the navigator.
	Presenter Presenter
	// Logger receives diagnostics. It is never nil.
	Logger *slog.Logger
}

// NewContext returns a context for a display of the given size. A nil
// theme selects NewTheme.
func NewContext(screen f64.Size, th *Theme) *Context {
	if th == nil {
		th = NewTheme()
	}
	reg := anim.NewRegistry()
	reg.Epsilon = th.Epsilon
	reg.Speed = th.Speed.Default
	return &Context{
		Anim:   reg,
		Screen: screen,
		Theme:  th,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Float returns a new animated value registered with the context.
func (c *Context) Float(v, speed float64) *anim.Float {
	return anim.NewFloat(c.Anim, v, speed)
}

// Present presents v through the context's presenter, if any.
func (c *Context) Present(v View) {
	if c.Presenter != nil {
		c.Presenter.Present(v)
	}
}

// DismissModal dismisses the presented modal, if any.
func (c *Context) DismissModal() {
	if c.Presenter != nil {
		c.Presenter.DismissModal()
	}
}
