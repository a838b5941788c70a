// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"monoui.org/f64"
	"monoui.org/paint"
	"monoui.org/text"
	"monoui.org/view"
)

// Stack lays out child views one after another along an axis.
//
// The main axis extent of a stack is either requested by its parent
// through SetFrame or SetSize, or hugs the children when unset. A
// filling parent stretches a stack for its own layout only; the
// stretched extent is never kept as a request. Leftover
// space of a requested extent is divided evenly among the flexible
// children; each gets at least its minimum length. Without flexible
// children, Spacing distributes the leftover space instead.
type Stack struct {
	group
	// Axis is the main axis, either Horizontal or Vertical.
	Axis Axis
	// Gap is the space between adjacent children.
	Gap float64
	// Alignment is the alignment in the cross axis.
	Alignment Alignment
	// Spacing controls the distribution of space left after
	// layout when no child is flexible.
	Spacing Spacing
	// Padding insets the children on every side.
	Padding float64
}

// Spacer is an invisible flexible stack item.
type Spacer struct {
	view.Box
	// Min is the smallest main axis extent of the spacer.
	Min float64
}

// NewSpacer returns a spacer at least length long.
func NewSpacer(length float64) *Spacer {
	return &Spacer{Min: length}
}

func (s *Spacer) MinLength() float64 {
	return s.Min
}

func (s *Spacer) Draw(c paint.Canvas, origin f64.Point) {}

// HStack returns a horizontal stack of children flattened by Build.
func HStack(gap float64, children ...any) *Stack {
	return NewStack(Horizontal, gap, children...)
}

// VStack returns a vertical stack of children flattened by Build.
func VStack(gap float64, children ...any) *Stack {
	return NewStack(Vertical, gap, children...)
}

// NewStack returns a stack along axis.
func NewStack(axis Axis, gap float64, children ...any) *Stack {
	s := &Stack{Axis: axis, Gap: gap}
	s.SetChildren(Build(children...)...)
	return s
}

// Align sets the cross axis alignment and lays out the stack.
func (s *Stack) Align(a Alignment) *Stack {
	s.Alignment = a
	s.Layout()
	return s
}

// Pad sets the padding and lays out the stack.
func (s *Stack) Pad(p float64) *Stack {
	s.Padding = p
	s.Layout()
	return s
}

// Space sets the leftover space distribution and lays out the stack.
func (s *Stack) Space(sp Spacing) *Stack {
	s.Spacing = sp
	s.Layout()
	return s
}

// SetChildren replaces the children of the stack.
func (s *Stack) SetChildren(children ...view.View) {
	s.replace(children)
	s.Layout()
}

// SetSize requests a size for the stack. Zero components hug the
// children.
func (s *Stack) SetSize(sz f64.Size) {
	s.want = sz
	s.Layout()
}

// SetFrame places the stack. Only a change of size lays it out again.
func (s *Stack) SetFrame(r f64.Rectangle) {
	if s.resize(r) {
		s.Layout()
	}
}

func (s *Stack) stretchTo(r f64.Rectangle) {
	s.frame = f64.Rectangle{Min: r.Min}.WithSize(s.frame.Size())
	if s.stretchSize(r.Size()) || s.frame.Size() != r.Size() {
		s.Layout()
	}
}

// Layout computes the stack size and the frames of its children. It
// must be called after changing the exported fields directly.
func (s *Stack) Layout() {
	estimate(s.children)
	n := len(s.children)
	var fixed, mins, cross float64
	flex := 0
	for _, c := range s.children {
		if fl, ok := c.(view.Flexible); ok {
			flex++
			mins += fl.MinLength()
			continue
		}
		sz := s.childSize(c)
		fixed += s.Axis.Main(sz)
		cross = max(cross, s.Axis.Cross(sz))
	}
	var gaps float64
	if n > 1 {
		gaps = s.Gap * float64(n-1)
	}
	pad := 2 * s.Padding
	main := s.Axis.Main(s.want)
	if main <= 0 {
		main = fixed + mins + gaps + pad
	}
	cross += pad
	if w := s.Axis.Cross(s.want); w > 0 {
		cross = w
	}
	size := s.fit(s.Axis.Size(main, cross))
	hug := s.Axis.Main(s.want) <= 0 && s.Axis.Main(s.stretch) <= 0
	main, cross = s.Axis.Main(size), s.Axis.Cross(size)
	s.frame = s.frame.WithSize(size)
	if n == 0 {
		return
	}

	// Extents available to the children.
	main -= pad
	cross -= pad
	remainder := main - fixed - gaps
	var space float64
	if flex == 0 && remainder > 0 {
		space = remainder
	}
	var pos float64
	switch s.Spacing {
	case SpaceStart:
		pos = space
	case SpaceSides:
		pos = space / 2
	case SpaceEvenly:
		pos = space / float64(n+1)
	case SpaceAround:
		pos = space / float64(2*n)
	}
	for i, c := range s.children {
		var (
			length float64
			sz     f64.Size
		)
		fl, flexible := c.(view.Flexible)
		if flexible {
			length = fl.MinLength()
			if !hug {
				length = max(length, remainder/float64(flex))
			}
			sz = s.Axis.Size(length, cross)
		} else {
			sz = s.childSize(c)
			length = s.Axis.Main(sz)
		}
		natural := sz
		var off float64
		switch s.Alignment {
		case End:
			off = cross - s.Axis.Cross(sz)
		case Middle:
			off = (cross - s.Axis.Cross(sz)) / 2
		case Fill:
			sz = s.Axis.Size(length, cross)
		}
		at := s.Axis.Point(pos, off).Add(f64.Pt(s.Padding, s.Padding))
		r := f64.Rectangle{Min: at}.WithSize(sz)
		if flexible {
			c.SetFrame(r)
		} else {
			s.place(c, r, natural)
		}
		pos += length
		if i < n-1 {
			pos += s.Gap
			switch s.Spacing {
			case SpaceEvenly:
				pos += space / float64(n+1)
			case SpaceAround:
				pos += space / float64(n)
			case SpaceBetween:
				pos += space / float64(n-1)
			}
		}
	}
}

// Measure measures the children with f and lays out the stack again if
// any of them changed size.
func (s *Stack) Measure(f text.Face) bool {
	if !s.measureChildren(f) {
		return false
	}
	old, natural := s.frame.Size(), s.natural
	s.Layout()
	return s.frame.Size() != old || s.natural != natural
}

func (s *Stack) Draw(c paint.Canvas, origin f64.Point) {
	s.Measure(c.Face())
	at := origin.Add(s.frame.Min)
	for _, child := range s.children {
		child.Draw(c, at)
	}
}
