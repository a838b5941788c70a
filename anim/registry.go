// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"golang.org/x/exp/slices"
)

const (
	// DefaultEpsilon is the distance, in display pixels, below which
	// a Float snaps to its target.
	DefaultEpsilon = 0.15
	// DefaultSpeed is the speed of animators created with a zero speed.
	DefaultSpeed = 50
)

// Stepper is an animator advanced by a Registry.
type Stepper interface {
	// Step advances the animator by one frame.
	Step()
}

// Registry tracks the live animators of a runtime. It is not safe for
// concurrent use; all animators are created, stepped and released from
// the goroutine running the frame loop.
type Registry struct {
	// Epsilon is the snap distance of Floats. Zero means DefaultEpsilon.
	Epsilon float64
	// Speed is the default speed. Zero means DefaultSpeed.
	Speed float64

	steppers []Stepper
	ticks    uint64

	// live is the tick order of the running Tick.
	live []Stepper
	// gone holds the animators released during the running Tick.
	gone    map[Stepper]struct{}
	ticking bool
}

// NewRegistry returns an empty registry with default constants.
func NewRegistry() *Registry {
	return &Registry{Epsilon: DefaultEpsilon, Speed: DefaultSpeed}
}

// Register adds s to the end of the tick order. Registering an
// animator twice has no effect.
func (r *Registry) Register(s Stepper) {
	if slices.Contains(r.steppers, s) {
		return
	}
	delete(r.gone, s)
	r.steppers = append(r.steppers, s)
}

// Unregister removes s, preserving the order of the remaining
// animators.
func (r *Registry) Unregister(s Stepper) {
	if i := slices.Index(r.steppers, s); i >= 0 {
		r.steppers = slices.Delete(r.steppers, i, i+1)
		if r.ticking {
			if r.gone == nil {
				r.gone = make(map[Stepper]struct{})
			}
			r.gone[s] = struct{}{}
		}
	}
}

// Tick advances every animator registered before the call exactly once,
// in registration order. Animators released by a Step during the tick
// are not stepped afterwards.
func (r *Registry) Tick() {
	r.live = append(r.live[:0], r.steppers...)
	r.ticking = true
	for _, s := range r.live {
		if _, ok := r.gone[s]; ok {
			continue
		}
		s.Step()
	}
	r.ticking = false
	clear(r.gone)
	clear(r.live)
	r.ticks++
}

// Len returns the number of live animators.
func (r *Registry) Len() int {
	return len(r.steppers)
}

// Ticks returns the number of completed calls to Tick.
func (r *Registry) Ticks() uint64 {
	return r.ticks
}

func (r *Registry) epsilon() float64 {
	if r.Epsilon > 0 {
		return r.Epsilon
	}
	return DefaultEpsilon
}

func (r *Registry) speed(s float64) float64 {
	if s != 0 {
		return s
	}
	if r.Speed != 0 {
		return r.Speed
	}
	return DefaultSpeed
}
