// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring is a damped spring animator. Unlike Float it may overshoot its
// target when under-damped; it rests once both the distance and the
// velocity fall below the registry's Epsilon.
type Spring struct {
	reg    *Registry
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// NewSpring returns a Spring resting at v. fps is the frame rate the
// registry is ticked at; frequency and damping are the angular frequency
// and damping ratio of the spring.
func NewSpring(r *Registry, v float64, fps int, frequency, damping float64) *Spring {
	s := &Spring{
		reg:    r,
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		pos:    v,
		target: v,
	}
	r.Register(s)
	return s
}

// Get returns the current value.
func (s *Spring) Get() float64 {
	return s.pos
}

// Target returns the rest position.
func (s *Spring) Target() float64 {
	return s.target
}

// SetTarget moves the rest position, keeping the current velocity.
func (s *Spring) SetTarget(v float64) {
	s.target = v
}

// Set moves s to v at rest.
func (s *Spring) Set(v float64) {
	s.pos, s.target, s.vel = v, v, 0
}

// Done reports whether s rests at its target.
func (s *Spring) Done() bool {
	return s.pos == s.target && s.vel == 0
}

// Step advances s by one frame.
func (s *Spring) Step() {
	if s.Done() {
		return
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	eps := s.reg.epsilon()
	if math.Abs(s.target-s.pos) < eps && math.Abs(s.vel) < eps {
		s.pos, s.vel = s.target, 0
	}
}

// Release removes s from its registry.
func (s *Spring) Release() {
	s.reg.Unregister(s)
}
