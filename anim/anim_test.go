// SPDX-License-Identifier: Unlicense OR MIT

package anim

import (
	"math"
	"testing"

	"monoui.org/f64"
)

type countStepper struct {
	steps int
}

func (c *countStepper) Step() { c.steps++ }

func TestFloatConverges(t *testing.T) {
	for _, speed := range []float64{11, 25, 40, 50, 60, 200} {
		r := NewRegistry()
		f := NewFloat(r, 0, speed)
		f.SetTarget(100)
		prev := math.Abs(f.Target() - f.Get())
		steps := 0
		for !f.Done() {
			r.Tick()
			d := math.Abs(f.Target() - f.Get())
			if d > prev {
				t.Fatalf("speed %v: distance grew from %v to %v", speed, prev, d)
			}
			prev = d
			if steps++; steps > 10000 {
				t.Fatalf("speed %v: no convergence after %d steps", speed, steps)
			}
		}
		if f.Get() != 100 {
			t.Errorf("speed %v: rest value %v, want exactly 100", speed, f.Get())
		}
		r.Tick()
		if f.Get() != 100 {
			t.Errorf("speed %v: step at rest changed value to %v", speed, f.Get())
		}
	}
}

func TestFloatSnap(t *testing.T) {
	r := NewRegistry()
	f := NewFloat(r, 10, 50)
	f.SetTarget(10.1)
	f.Step()
	if f.Get() != 10.1 {
		t.Errorf("got %v, want snap to 10.1", f.Get())
	}
	f.SetTarget(10.1 + 2*DefaultEpsilon)
	f.Step()
	if f.Done() {
		t.Errorf("distance above epsilon must not snap")
	}
}

func TestFloatStepFraction(t *testing.T) {
	r := NewRegistry()
	f := NewFloat(r, 0, 50)
	f.SetTarget(100)
	r.Tick()
	if got := f.Get(); got != 20 {
		t.Errorf("got %v, want 20 after one step at speed 50", got)
	}
}

func TestFloatRetarget(t *testing.T) {
	r := NewRegistry()
	f := NewFloat(r, 0, 50)
	f.SetTarget(100)
	r.Tick()
	before := f.Get()
	f.SetTarget(-50)
	if f.Get() != before {
		t.Fatalf("SetTarget moved current from %v to %v", before, f.Get())
	}
	r.Tick()
	if f.Get() >= before {
		t.Errorf("expected movement towards the new target, got %v", f.Get())
	}
}

func TestRegistryTicksOnce(t *testing.T) {
	r := NewRegistry()
	a, b := new(countStepper), new(countStepper)
	r.Register(a)
	r.Register(b)
	r.Register(a)
	for i := 0; i < 3; i++ {
		r.Tick()
	}
	if a.steps != 3 || b.steps != 3 {
		t.Errorf("steps = %d, %d; want 3, 3", a.steps, b.steps)
	}
	if r.Ticks() != 3 {
		t.Errorf("Ticks = %d, want 3", r.Ticks())
	}
	r.Unregister(a)
	r.Tick()
	if a.steps != 3 || b.steps != 4 {
		t.Errorf("after Unregister: steps = %d, %d; want 3, 4", a.steps, b.steps)
	}
}

// releasingStepper unregisters its victims from within Step.
type releasingStepper struct {
	countStepper
	r       *Registry
	victims []Stepper
}

func (s *releasingStepper) Step() {
	s.countStepper.Step()
	for _, v := range s.victims {
		s.r.Unregister(v)
	}
	s.victims = nil
}

func TestRegistryReleaseDuringTick(t *testing.T) {
	r := NewRegistry()
	before, after, last := new(countStepper), new(countStepper), new(countStepper)
	rel := &releasingStepper{r: r}
	r.Register(before)
	r.Register(rel)
	r.Register(after)
	r.Register(last)
	rel.victims = []Stepper{before, rel, after}
	r.Tick()
	if before.steps != 1 || rel.steps != 1 || after.steps != 0 || last.steps != 1 {
		t.Errorf("steps = %d, %d, %d, %d; want 1, 1, 0, 1",
			before.steps, rel.steps, after.steps, last.steps)
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
	r.Register(after)
	r.Tick()
	if after.steps != 1 || last.steps != 2 || rel.steps != 1 {
		t.Errorf("next tick: steps = %d, %d, %d; want 1, 2, 1", after.steps, last.steps, rel.steps)
	}
}

func TestRelease(t *testing.T) {
	r := NewRegistry()
	f := NewFloat(r, 0, 0)
	p := NewPoint(r, f64.Pt(1, 2), 0)
	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}
	if f.Speed() != DefaultSpeed {
		t.Errorf("zero speed resolved to %v", f.Speed())
	}
	f.SetTarget(10)
	f.Release()
	p.Release()
	r.Tick()
	if r.Len() != 0 {
		t.Errorf("Len = %d after release", r.Len())
	}
	if f.Get() != 0 {
		t.Errorf("released Float moved to %v", f.Get())
	}
}

func TestPoint(t *testing.T) {
	r := NewRegistry()
	p := NewPoint(r, f64.Pt(0, 0), 50)
	p.SetTarget(f64.Pt(10, -10))
	for i := 0; i < 100 && !p.Done(); i++ {
		r.Tick()
	}
	if got := p.Get(); got != f64.Pt(10, -10) {
		t.Errorf("got %v", got)
	}
}

func TestSpringSettles(t *testing.T) {
	r := NewRegistry()
	s := NewSpring(r, 0, 60, 6, 0.5)
	s.SetTarget(100)
	overshoot := false
	for i := 0; i < 2000 && !s.Done(); i++ {
		r.Tick()
		if s.Get() > 100 {
			overshoot = true
		}
	}
	if !s.Done() || s.Get() != 100 {
		t.Fatalf("spring did not settle: %v", s.Get())
	}
	if !overshoot {
		t.Errorf("under-damped spring expected to overshoot")
	}
}
