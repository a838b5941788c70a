// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"
	"strconv"
)

// Bool is a boolean shared between a control and its owner.
type Bool struct {
	Value bool

	changed bool
}

// Toggle flips the value.
func (b *Bool) Toggle() {
	b.Value = !b.Value
	b.changed = true
}

// Changed reports whether Value has changed since the last
// call to Changed.
func (b *Bool) Changed() bool {
	changed := b.changed
	b.changed = false
	return changed
}

// Enum holds the key of the selected member of a radio group.
type Enum struct {
	Value string

	changed bool
}

// Set selects key.
func (e *Enum) Set(key string) {
	if e.Value == key {
		return
	}
	e.Value = key
	e.changed = true
}

// Changed reports whether Value has changed since the last
// call to Changed.
func (e *Enum) Changed() bool {
	changed := e.changed
	e.changed = false
	return changed
}

// Flags is a set of independent booleans shared by a group of
// checkboxes.
type Flags struct {
	Values []bool

	changed bool
}

// NewFlags returns n cleared flags.
func NewFlags(n int) *Flags {
	return &Flags{Values: make([]bool, n)}
}

// Get reports flag i. Out of range flags are false.
func (f *Flags) Get(i int) bool {
	return i >= 0 && i < len(f.Values) && f.Values[i]
}

// Toggle flips flag i. Out of range indices are ignored.
func (f *Flags) Toggle(i int) {
	if i < 0 || i >= len(f.Values) {
		return
	}
	f.Values[i] = !f.Values[i]
	f.changed = true
}

// Changed reports whether any flag has changed since the last
// call to Changed.
func (f *Flags) Changed() bool {
	changed := f.changed
	f.changed = false
	return changed
}

// Float is a value in a range, adjusted in steps.
type Float struct {
	Value    float64
	Min, Max float64
	// Step is the adjustment of a single key press. Zero means a
	// hundredth of the range.
	Step float64

	changed bool
}

// SetValue sets the value clamped to the range.
func (f *Float) SetValue(v float64) {
	lo, hi := f.Min, f.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	v = math.Max(lo, math.Min(hi, v))
	if f.Value != v {
		f.Value = v
		f.changed = true
	}
}

// Add adjusts the value by n steps.
func (f *Float) Add(n int) {
	step := f.Step
	if step == 0 {
		step = (f.Max - f.Min) / 100
	}
	f.SetValue(f.Value + float64(n)*step)
}

// Pos returns the value's position in the range, in [0, 1].
func (f *Float) Pos() float64 {
	if f.Max == f.Min {
		return 0
	}
	return (f.Value - f.Min) / (f.Max - f.Min)
}

// Changed reports whether the value has changed since
// the last call to Changed.
func (f *Float) Changed() bool {
	changed := f.changed
	f.changed = false
	return changed
}

func formatValue(format func(float64) string, v float64) string {
	if format != nil {
		return format(v)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
