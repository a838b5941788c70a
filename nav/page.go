// SPDX-License-Identifier: Unlicense OR MIT

package nav

import (
	"math"

	"monoui.org/anim"
	"monoui.org/f64"
	"monoui.org/key"
	"monoui.org/paint"
	"monoui.org/view"
)

// Page is a full screen view managed by a Navigator.
type Page interface {
	view.View
	key.Handler
	// OnEnter is called when the page becomes the top of the stack.
	OnEnter()
	// OnExit is called when the page is removed from the stack.
	OnExit()
	// AnimateIn starts the entrance animation.
	AnimateIn()
	// AnimateOut starts the exit animation.
	AnimateOut()
	// ExitFinished reports whether the exit animation has completed.
	ExitFinished() bool
}

// Coverer is implemented by pages reacting to another page being pushed
// over them.
type Coverer interface {
	Cover()
}

// BasePage is a Page drawing a content view on a background of its
// polarity's paper. It slides in from the right when first entered,
// shifts left behind pages pushed over it, slides back when revealed,
// and slides out to the right when popped.
type BasePage struct {
	view.Box
	// Name identifies the page in logs.
	Name string
	// Polarity selects the page's paper and ink.
	Polarity paint.Polarity
	// Enter and Exit, if set, are called from OnEnter and OnExit.
	Enter, Exit func()
	// Back, if set, is called when a Back key reaches the page
	// unhandled by its content.
	Back func()

	content view.View
	x       *anim.Float
	entered bool
	exiting bool
}

// NewPage returns a screen sized page showing content.
func NewPage(ctx *view.Context, content view.View) *BasePage {
	p := &BasePage{x: ctx.Float(0, ctx.Theme.Speed.Default)}
	p.SetFrame(f64.Rectangle{}.WithSize(ctx.Screen))
	p.SetContent(content)
	return p
}

func (p *BasePage) String() string {
	if p.Name == "" {
		return "page"
	}
	return p.Name
}

// Content returns the content view.
func (p *BasePage) Content() view.View {
	return p.content
}

// SetContent replaces the content, sizing it to the page.
func (p *BasePage) SetContent(v view.View) {
	if p.content != nil && p.content != v {
		view.Release(p.content)
	}
	p.content = v
	if v != nil {
		v.SetFrame(f64.Rectangle{}.WithSize(p.Frame().Size()))
	}
}

func (p *BasePage) SetFrame(r f64.Rectangle) {
	p.Box.SetFrame(r)
	if p.content != nil {
		p.content.SetFrame(f64.Rectangle{}.WithSize(r.Size()))
	}
}

func (p *BasePage) OnEnter() {
	if p.Enter != nil {
		p.Enter()
	}
}

func (p *BasePage) OnExit() {
	if p.Exit != nil {
		p.Exit()
	}
}

func (p *BasePage) AnimateIn() {
	if !p.entered {
		p.entered = true
		p.x.Set(p.Frame().Dx())
	}
	p.exiting = false
	p.x.SetTarget(0)
}

func (p *BasePage) AnimateOut() {
	p.exiting = true
	p.x.SetTarget(p.Frame().Dx())
}

// Cover shifts the page left by a quarter of its width.
func (p *BasePage) Cover() {
	p.x.SetTarget(-math.Round(p.Frame().Dx() / 4))
}

func (p *BasePage) ExitFinished() bool {
	return p.exiting && p.x.Done()
}

// Offset returns the current horizontal displacement of the page.
func (p *BasePage) Offset() float64 {
	return p.x.Get()
}

func (p *BasePage) HandleKey(k key.Code) bool {
	if p.exiting {
		return false
	}
	if h, ok := p.content.(key.Handler); ok && h.HandleKey(k) {
		return true
	}
	if k == key.Back && p.Back != nil {
		p.Back()
		return true
	}
	return false
}

func (p *BasePage) Draw(c paint.Canvas, origin f64.Point) {
	at := p.Origin(origin).Add(f64.Pt(math.Round(p.x.Get()), 0))
	ink := c.Color()
	paint.Fill(c, p.Frame().At(at), 0, p.Polarity.Paper())
	c.SetColor(p.Polarity.Ink())
	if p.content != nil {
		p.content.Draw(c, at)
	}
	c.SetColor(ink)
}

// Release unregisters the page's animators and those of its content.
func (p *BasePage) Release() {
	p.x.Release()
	if p.content != nil {
		view.Release(p.content)
	}
}
