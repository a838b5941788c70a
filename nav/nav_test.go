// SPDX-License-Identifier: Unlicense OR MIT

package nav

import (
	"strings"
	"testing"

	"monoui.org/f64"
	"monoui.org/internal/painttest"
	"monoui.org/key"
	"monoui.org/paint"
	"monoui.org/text"
	"monoui.org/view"
	"monoui.org/widget"
)

var screen = f64.Sz(128, 64)

// journal records the calls made on fake pages and modals.
type journal struct {
	events []string
}

func (j *journal) add(s string) { j.events = append(j.events, s) }

func (j *journal) take() string {
	s := strings.Join(j.events, " ")
	j.events = nil
	return s
}

type fakePage struct {
	view.Box
	name     string
	j        *journal
	done     bool
	released bool
}

func (p *fakePage) String() string               { return p.name }
func (p *fakePage) OnEnter()                     { p.j.add(p.name + ".enter") }
func (p *fakePage) OnExit()                      { p.j.add(p.name + ".exit") }
func (p *fakePage) AnimateIn()                   { p.j.add(p.name + ".in") }
func (p *fakePage) AnimateOut()                  { p.j.add(p.name + ".out") }
func (p *fakePage) ExitFinished() bool           { return p.done }
func (p *fakePage) Release()                     { p.released = true }
func (p *fakePage) Draw(paint.Canvas, f64.Point) { p.j.add(p.name + ".draw") }
func (p *fakePage) HandleKey(k key.Code) bool    { p.j.add(p.name + ".key." + k.String()); return true }

type fakeModal struct {
	view.Box
	j *journal
}

func (m *fakeModal) Draw(paint.Canvas, f64.Point) { m.j.add("modal.draw") }
func (m *fakeModal) HandleKey(k key.Code) bool    { m.j.add("modal.key." + k.String()); return true }

func setup() (*Navigator, *journal, *painttest.Recorder) {
	ctx := view.NewContext(screen, nil)
	return New(ctx), new(journal), painttest.New(screen, text.Basic())
}

func TestPushPopDrawOrder(t *testing.T) {
	n, j, rec := setup()
	p1 := &fakePage{name: "P1", j: j}
	p2 := &fakePage{name: "P2", j: j}
	n.Push(p1)
	n.Push(p2)
	if got, want := j.take(), "P1.enter P1.in P2.enter P2.in"; got != want {
		t.Errorf("push hooks %q, want %q", got, want)
	}
	if p2.Frame().Size() != screen {
		t.Errorf("pushed page not screen sized")
	}
	n.Draw(rec)
	if got, want := j.take(), "P1.draw P2.draw"; got != want {
		t.Errorf("draw order %q, want %q", got, want)
	}
	n.Pop()
	if got, want := j.take(), "P2.out P2.exit P1.enter P1.in"; got != want {
		t.Errorf("pop hooks %q, want %q", got, want)
	}
	if n.Exiting() != p2 || n.Top() != p1 {
		t.Fatalf("after pop: top %v, exiting %v", n.Top(), n.Exiting())
	}
	n.Draw(rec)
	if got, want := j.take(), "P1.draw P2.draw"; got != want {
		t.Errorf("draw during exit %q, want %q", got, want)
	}
	p2.done = true
	n.Draw(rec)
	j.take()
	n.Draw(rec)
	if got, want := j.take(), "P1.draw"; got != want {
		t.Errorf("draw after exit %q, want %q", got, want)
	}
	if n.Exiting() != nil || !p2.released {
		t.Errorf("finished page not dropped")
	}
}

func TestPushExitingPage(t *testing.T) {
	n, j, rec := setup()
	root := &fakePage{name: "root", j: j}
	p := &fakePage{name: "P", j: j}
	n.Push(root)
	n.Push(p)
	n.Pop()
	n.Push(p)
	if n.Exiting() != nil {
		t.Fatalf("page pushed again is still exiting")
	}
	n.Pop()
	if n.Exiting() != p || p.released {
		t.Fatalf("popped page released before its exit finished")
	}
	j.take()
	n.Draw(rec)
	if got, want := j.take(), "root.draw P.draw"; got != want {
		t.Errorf("draw during exit %q, want %q", got, want)
	}
	p.done = true
	n.Draw(rec)
	j.take()
	n.Draw(rec)
	if got, want := j.take(), "root.draw"; got != want {
		t.Errorf("draw after exit %q, want %q", got, want)
	}
	if !p.released || root.released {
		t.Errorf("released page=%v root=%v", p.released, root.released)
	}
}

func TestPopRoot(t *testing.T) {
	n, j, _ := setup()
	root := &fakePage{name: "root", j: j}
	n.Push(root)
	j.take()
	n.Pop()
	if n.Len() != 1 || n.Top() != root || n.Exiting() != nil {
		t.Errorf("popping the root changed the stack")
	}
	if got := j.take(); got != "" {
		t.Errorf("popping the root called %q", got)
	}
}

func TestReplaceAndSetRoot(t *testing.T) {
	n, j, _ := setup()
	a := &fakePage{name: "A", j: j}
	b := &fakePage{name: "B", j: j}
	c := &fakePage{name: "C", j: j}
	n.Push(a)
	n.Push(b)
	j.take()
	n.Replace(c)
	if got, want := j.take(), "B.exit C.enter C.in"; got != want {
		t.Errorf("replace hooks %q, want %q", got, want)
	}
	if n.Len() != 2 || n.Top() != c || n.Exiting() != nil || !b.released {
		t.Errorf("replace left len %d top %v", n.Len(), n.Top())
	}
	root := &fakePage{name: "R", j: j}
	n.Pop()
	n.SetRoot(root)
	if n.Len() != 1 || n.Top() != root || n.Exiting() != nil {
		t.Errorf("SetRoot left len %d top %v exiting %v", n.Len(), n.Top(), n.Exiting())
	}
	if !a.released || !c.released {
		t.Errorf("SetRoot kept pages alive")
	}
}

func TestModalInput(t *testing.T) {
	n, j, rec := setup()
	n.Push(&fakePage{name: "P", j: j})
	n.HandleKey(key.Enter)
	n.HandleKey(key.None)
	if got, want := j.take(), "P.enter P.in P.key.Enter"; got != want {
		t.Errorf("page input %q, want %q", got, want)
	}
	n.ctx.Present(&fakeModal{j: j})
	n.HandleKey(key.Down)
	n.Draw(rec)
	if got, want := j.take(), "modal.key.Down P.draw modal.draw"; got != want {
		t.Errorf("modal input %q, want %q", got, want)
	}
	if !n.HandleKey(key.Dismiss) {
		t.Errorf("Dismiss not consumed")
	}
	if n.Modal() != nil {
		t.Errorf("modal still presented")
	}
	if got := j.take(); got != "" {
		t.Errorf("Dismiss reached %q", got)
	}
}

func TestAnimatedDismiss(t *testing.T) {
	n, j, rec := setup()
	ctx := n.ctx
	n.Push(&fakePage{name: "P", j: j})
	m := widget.NewModal(ctx, view.NewRect(10, 10, 0, true))
	ctx.Present(m)
	live := ctx.Anim.Len()
	n.HandleKey(key.Dismiss)
	if n.Modal() != m {
		t.Fatalf("animated modal removed before its animation")
	}
	n.HandleKey(key.Enter)
	for i := 0; i < 500 && n.Modal() != nil; i++ {
		ctx.Anim.Tick()
		n.Draw(rec)
	}
	if n.Modal() != nil {
		t.Fatalf("modal never cleared")
	}
	if ctx.Anim.Len() != live-1 {
		t.Errorf("dismissed modal not released")
	}
	if strings.Contains(j.take(), "key") {
		t.Errorf("page received input while the modal was up")
	}
}

func TestBasePage(t *testing.T) {
	ctx := view.NewContext(screen, nil)
	n := New(ctx)
	backs := 0
	root := NewPage(ctx, view.NewRect(4, 4, 0, true))
	next := NewPage(ctx, widget.NewListMenu(ctx, screen, widget.TextItem("a")))
	next.Back = func() { backs++ }
	settle := func() {
		for i := 0; i < 500; i++ {
			ctx.Anim.Tick()
		}
	}
	n.Push(root)
	if root.Offset() != 128 {
		t.Errorf("first entry starts at %v", root.Offset())
	}
	settle()
	n.Push(next)
	settle()
	if root.Offset() != -32 || next.Offset() != 0 {
		t.Errorf("offsets after push: root %v next %v", root.Offset(), next.Offset())
	}
	if !n.HandleKey(key.Back) || backs != 1 {
		t.Errorf("Back not delivered")
	}
	if !n.HandleKey(key.Down) {
		t.Errorf("content did not get Down")
	}
	n.Pop()
	if next.HandleKey(key.Back) {
		t.Errorf("exiting page handled input")
	}
	settle()
	if !next.ExitFinished() || root.Offset() != 0 {
		t.Errorf("after pop: finished %v, root at %v", next.ExitFinished(), root.Offset())
	}
	rec := painttest.New(screen, text.Basic())
	n.Draw(rec)
	if n.Exiting() != nil {
		t.Errorf("exited page kept")
	}
	if op := rec.Ops[0]; op.Kind != "fill" || op.Color != paint.Black || op.Rect != f64.Rect(0, 0, 128, 64) {
		t.Errorf("page background %v", op)
	}
}
