// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements containers arranging child views.

Stack places children one after another along an axis, with Spacer
items absorbing leftover space. Overlay draws children on top of each
other. Scroll shows a window of a larger content area. Build flattens
declarative child expressions for the containers' constructors.

Containers store child frames in their own coordinate space, so moving a
container never lays it out again; only a change of its size or of its
children does.
*/
package layout

import (
	"monoui.org/f64"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Alignment is the cross axis placement of stack children.
type Alignment uint8

// Direction is the alignment of views relative to a containing
// space.
type Direction uint8

// Spacing determines how a stack without flexible items distributes
// leftover main axis space.
type Spacing uint8

const (
	Start Alignment = iota
	End
	Middle
	// Fill stretches children to the cross extent of the stack.
	Fill
)

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	Center
)

const (
	Horizontal Axis = iota
	Vertical
)

const (
	// SpaceEnd leaves space at the end.
	SpaceEnd Spacing = iota
	// SpaceStart leaves space at the start.
	SpaceStart
	// SpaceSides shares space between the start and end.
	SpaceSides
	// SpaceAround distributes space evenly between children,
	// with half as much space at the start and end.
	SpaceAround
	// SpaceBetween distributes space evenly between children,
	// leaving no space at the start and end.
	SpaceBetween
	// SpaceEvenly distributes space evenly between children and
	// at the start and end.
	SpaceEvenly
)

// Position returns the offset of an inner extent aligned in outer.
func (d Direction) Position(inner, outer f64.Size) f64.Point {
	var p f64.Point
	switch d {
	case N, S, Center:
		p.X = (outer.Width - inner.Width) / 2
	case NE, SE, E:
		p.X = outer.Width - inner.Width
	}
	switch d {
	case W, Center, E:
		p.Y = (outer.Height - inner.Height) / 2
	case SW, S, SE:
		p.Y = outer.Height - inner.Height
	}
	return p
}

// Main returns the main axis component of sz.
func (a Axis) Main(sz f64.Size) float64 {
	if a == Horizontal {
		return sz.Width
	}
	return sz.Height
}

// Cross returns the cross axis component of sz.
func (a Axis) Cross(sz f64.Size) float64 {
	if a == Horizontal {
		return sz.Height
	}
	return sz.Width
}

// Size converts main and cross extents to a Size.
func (a Axis) Size(main, cross float64) f64.Size {
	if a == Horizontal {
		return f64.Sz(main, cross)
	}
	return f64.Sz(cross, main)
}

// Point converts main and cross offsets to a Point.
func (a Axis) Point(main, cross float64) f64.Point {
	if a == Horizontal {
		return f64.Pt(main, cross)
	}
	return f64.Pt(cross, main)
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	case Fill:
		return "Fill"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case Center:
		return "Center"
	default:
		panic("unreachable")
	}
}

func (s Spacing) String() string {
	switch s {
	case SpaceEnd:
		return "SpaceEnd"
	case SpaceStart:
		return "SpaceStart"
	case SpaceSides:
		return "SpaceSides"
	case SpaceAround:
		return "SpaceAround"
	case SpaceBetween:
		return "SpaceBetween"
	case SpaceEvenly:
		return "SpaceEvenly"
	default:
		panic("unreachable")
	}
}
