package anim

import "time"

// Timeline runs tweens against an explicit clock. It is not safe for
// concurrent use.
type Timeline struct {
	easing Easing
	active []*running
}

type running struct {
	tw      Tween
	elapsed time.Duration
}

// NewTimeline returns a timeline with cubic-out easing. A nil easing keeps
// the default.
func NewTimeline(easing Easing) *Timeline {
	if easing == nil {
		easing = CubicOut
	}
	return &Timeline{easing: easing}
}

// Animate implements Animator. The tween does not advance until the next
// call to Advance.
func (tl *Timeline) Animate(tw Tween) {
	if tw.Duration <= 0 {
		tw.Duration = DefaultDuration
	}
	if tw.Key != nil {
		for i, r := range tl.active {
			if r.tw.Key == tw.Key {
				tl.active[i] = &running{tw: tw}
				return
			}
		}
	}
	tl.active = append(tl.active, &running{tw: tw})
}

// Advance moves every tween forward by dt and finishes the ones that reach
// their end.
func (tl *Timeline) Advance(dt time.Duration) {
	kept := tl.active[:0]
	var done []Tween
	for _, r := range tl.active {
		r.elapsed += dt
		t := float64(r.elapsed-r.tw.Delay) / float64(r.tw.Duration)
		switch {
		case t >= 1:
			done = append(done, r.tw)
			continue
		case t > 0 && r.tw.Apply != nil:
			r.tw.Apply(tl.easing(t))
		}
		kept = append(kept, r)
	}
	clear(tl.active[len(kept):])
	tl.active = kept
	for _, tw := range done {
		tw.finish()
	}
}

// Seek advances by the fraction f of DefaultDuration. It is a convenience for
// rendering a single frame of a reveal.
func (tl *Timeline) Seek(f float64) {
	tl.Advance(time.Duration(f * float64(DefaultDuration)))
}

// Finish completes every running tween.
func (tl *Timeline) Finish() {
	done := tl.active
	tl.active = nil
	for _, r := range done {
		r.tw.finish()
	}
}

// Active reports whether any tween is still running.
func (tl *Timeline) Active() bool { return len(tl.active) > 0 }

// Len returns the number of running tweens.
func (tl *Timeline) Len() int { return len(tl.active) }
