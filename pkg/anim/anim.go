// Package anim schedules property transitions.
//
// A [Tween] carries an Apply callback that receives the eased progress in
// [0, 1]. [Immediate] applies the end state synchronously, which is what
// static renders want. [Timeline] steps tweens explicitly with
// [Timeline.Advance] so that callers can render intermediate frames.
package anim

import (
	"time"
)

// DefaultDuration is used by tweens that leave Duration at zero on a
// Timeline.
const DefaultDuration = 300 * time.Millisecond

// Tween is one property transition.
type Tween struct {
	// Key identifies the animated target. Starting a tween replaces any
	// running tween with the same non-nil key.
	Key      any
	Duration time.Duration
	Delay    time.Duration
	// Apply receives the eased progress. It is called with exactly 1 when
	// the tween finishes.
	Apply func(t float64)
	// Done is called once after the final Apply.
	Done func()
}

func (tw Tween) finish() {
	if tw.Apply != nil {
		tw.Apply(1)
	}
	if tw.Done != nil {
		tw.Done()
	}
}

// Animator starts tweens.
type Animator interface {
	Animate(tw Tween)
}

// Immediate completes every tween as soon as it is started.
type Immediate struct{}

// Animate implements Animator.
func (Immediate) Animate(tw Tween) { tw.finish() }

// Easing maps linear progress to eased progress.
type Easing func(t float64) float64

// CubicOut decelerates towards the end.
func CubicOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Linear is the identity easing.
func Linear(t float64) float64 { return t }
