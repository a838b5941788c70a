// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"math"

	"monoui.org/f64"
)

// Value is an animated scalar. Float and Spring implement it.
type Value interface {
	Stepper
	Get() float64
	Target() float64
	SetTarget(v float64)
	Set(v float64)
	Done() bool
	Release()
}

// Float is a scalar converging exponentially towards its target.
type Float struct {
	reg     *Registry
	current float64
	target  float64
	speed   float64
}

// NewFloat returns a Float resting at v and registers it with r. A zero
// speed selects the registry default. Speed must not be negative.
func NewFloat(r *Registry, v, speed float64) *Float {
	f := &Float{
		reg:     r,
		current: v,
		target:  v,
		speed:   r.speed(speed),
	}
	r.Register(f)
	return f
}

// Get returns the current, possibly mid-flight, value.
func (f *Float) Get() float64 {
	return f.current
}

// Target returns the value f converges to.
func (f *Float) Target() float64 {
	return f.target
}

// SetTarget schedules convergence to v from the current value.
func (f *Float) SetTarget(v float64) {
	f.target = v
}

// Set moves f to v without animation.
func (f *Float) Set(v float64) {
	f.current = v
	f.target = v
}

// Done reports whether f rests at its target.
func (f *Float) Done() bool {
	return f.current == f.target
}

// Speed returns the convergence speed.
func (f *Float) Speed() float64 {
	return f.speed
}

// SetSpeed changes the convergence speed of future steps.
func (f *Float) SetSpeed(s float64) {
	f.speed = f.reg.speed(s)
}

// Step advances f by one frame.
func (f *Float) Step() {
	if f.current == f.target {
		return
	}
	if math.Abs(f.target-f.current) < f.reg.epsilon() {
		f.current = f.target
		return
	}
	f.current += (f.target - f.current) * (10 / f.speed)
}

// Release removes f from its registry. A released Float keeps its
// value but no longer moves.
func (f *Float) Release() {
	f.reg.Unregister(f)
}

// Point animates a point as two independent Floats.
type Point struct {
	X, Y *Float
}

// NewPoint returns a Point resting at p.
func NewPoint(r *Registry, p f64.Point, speed float64) *Point {
	return &Point{
		X: NewFloat(r, p.X, speed),
		Y: NewFloat(r, p.Y, speed),
	}
}

// Get returns the current point.
func (p *Point) Get() f64.Point {
	return f64.Pt(p.X.Get(), p.Y.Get())
}

// Target returns the point p converges to.
func (p *Point) Target() f64.Point {
	return f64.Pt(p.X.Target(), p.Y.Target())
}

// SetTarget schedules convergence to v.
func (p *Point) SetTarget(v f64.Point) {
	p.X.SetTarget(v.X)
	p.Y.SetTarget(v.Y)
}

// Set moves p to v without animation.
func (p *Point) Set(v f64.Point) {
	p.X.Set(v.X)
	p.Y.Set(v.Y)
}

// Done reports whether both components rest.
func (p *Point) Done() bool {
	return p.X.Done() && p.Y.Done()
}

// Release releases both components.
func (p *Point) Release() {
	p.X.Release()
	p.Y.Release()
}
