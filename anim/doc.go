// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim implements frame-driven value animation.

Animated values never read a clock. A Registry owns the list of live
animators and advances each of them exactly once per call to Tick; the
application loop calls Tick once per frame before drawing. Setting a
target only schedules convergence: the current value changes during
Tick and nowhere else.

A Float converges exponentially: every step moves it 10/speed of the
remaining distance towards the target, and snaps it to the target once
the distance drops below the registry's Epsilon. Larger speeds are
slower. Retargeting mid-flight continues from the current value.

Animators register themselves on construction and must be released with
Release when their owner is discarded.
*/
package anim
