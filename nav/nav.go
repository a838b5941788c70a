// SPDX-License-Identifier: Unlicense OR MIT

/*
Package nav implements page navigation.

A Navigator keeps a stack of full screen pages. The top page is active
and receives input. A popped page leaves the stack at once but is kept
and drawn over the new top page until its exit animation finishes. A
single modal view may be presented above the stack; while present it
receives all input, and key.Dismiss closes it.
*/
package nav

import (
	"fmt"
	"log/slog"

	"monoui.org/f64"
	"monoui.org/key"
	"monoui.org/paint"
	"monoui.org/view"
)

// Navigator is the page stack of an application. It presents the
// modals of its view.Context.
type Navigator struct {
	ctx     *view.Context
	log     *slog.Logger
	stack   []Page
	exiting Page
	modal   view.View
}

// New returns an empty navigator and installs it as the presenter of
// ctx.
func New(ctx *view.Context) *Navigator {
	n := &Navigator{ctx: ctx, log: ctx.Logger.With("component", "nav")}
	ctx.Presenter = n
	return n
}

// Len returns the number of pages on the stack.
func (n *Navigator) Len() int {
	return len(n.stack)
}

// Top returns the active page, or nil if the stack is empty.
func (n *Navigator) Top() Page {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// Exiting returns the page playing its exit animation, if any.
func (n *Navigator) Exiting() Page {
	return n.exiting
}

// Modal returns the presented modal, if any.
func (n *Navigator) Modal() view.View {
	return n.modal
}

// Push makes p the active page.
func (n *Navigator) Push(p Page) {
	if c, ok := n.Top().(Coverer); ok {
		c.Cover()
	}
	if p == n.exiting {
		n.exiting = nil
	}
	n.stack = append(n.stack, p)
	p.SetFrame(f64.Rectangle{}.WithSize(n.ctx.Screen))
	n.log.Debug("push", "page", pageName(p), "depth", len(n.stack))
	p.OnEnter()
	p.AnimateIn()
}

// Pop removes the active page, animating it out. Popping the root page
// does nothing.
func (n *Navigator) Pop() {
	if len(n.stack) <= 1 {
		return
	}
	top := n.pop()
	if n.exiting != nil && n.exiting != top {
		view.Release(n.exiting)
	}
	n.exiting = top
	n.log.Debug("pop", "page", pageName(top), "depth", len(n.stack))
	top.AnimateOut()
	top.OnExit()
	next := n.Top()
	next.OnEnter()
	next.AnimateIn()
}

// Replace removes the active page without an exit animation and pushes
// p.
func (n *Navigator) Replace(p Page) {
	if len(n.stack) > 0 {
		top := n.pop()
		n.log.Debug("replace", "page", pageName(top))
		top.OnExit()
		view.Release(top)
	}
	n.Push(p)
}

// SetRoot discards every page and makes p the only page.
func (n *Navigator) SetRoot(p Page) {
	if top := n.Top(); top != nil {
		top.OnExit()
	}
	for len(n.stack) > 0 {
		view.Release(n.pop())
	}
	if n.exiting != nil {
		view.Release(n.exiting)
		n.exiting = nil
	}
	n.log.Debug("set root", "page", pageName(p))
	n.Push(p)
}

func (n *Navigator) pop() Page {
	last := len(n.stack) - 1
	top := n.stack[last]
	n.stack[last] = nil
	n.stack = n.stack[:last]
	return top
}

// Present shows v above the pages, replacing any presented modal.
func (n *Navigator) Present(v view.View) {
	if n.modal != nil && n.modal != v {
		view.Release(n.modal)
	}
	n.modal = v
	n.log.Debug("present", "modal", fmt.Sprintf("%T", v))
}

// DismissModal closes the presented modal. A view.Dismisser is removed
// once its dismissal completes, any other modal at once.
func (n *Navigator) DismissModal() {
	m := n.modal
	if m == nil {
		return
	}
	n.log.Debug("dismiss", "modal", fmt.Sprintf("%T", m))
	if d, ok := m.(view.Dismisser); ok {
		d.Dismiss(func() { n.clearModal(m) })
		return
	}
	n.clearModal(m)
}

func (n *Navigator) clearModal(m view.View) {
	if n.modal != m {
		return
	}
	n.modal = nil
	view.Release(m)
}

// Draw draws the page below the top, the top page, the exiting page
// and the modal, in that order. An exiting page whose animation has
// finished is dropped after drawing it.
func (n *Navigator) Draw(c paint.Canvas) {
	var origin f64.Point
	if k := len(n.stack); k >= 2 {
		n.stack[k-2].Draw(c, origin)
	}
	if top := n.Top(); top != nil {
		top.Draw(c, origin)
	}
	if e := n.exiting; e != nil {
		e.Draw(c, origin)
		if e.ExitFinished() {
			n.exiting = nil
			view.Release(e)
			n.log.Debug("exit finished", "page", pageName(e))
		}
	}
	if n.modal != nil {
		n.modal.Draw(c, origin)
	}
}

// HandleKey routes k to the modal if one is presented, otherwise to the
// active page. key.Dismiss closes the modal without reaching it.
func (n *Navigator) HandleKey(k key.Code) bool {
	if k == key.None {
		return false
	}
	if m := n.modal; m != nil {
		if k == key.Dismiss {
			n.DismissModal()
			return true
		}
		if h, ok := m.(key.Handler); ok {
			return h.HandleKey(k)
		}
		return false
	}
	if top := n.Top(); top != nil {
		return top.HandleKey(k)
	}
	return false
}

func pageName(p Page) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p)
}
