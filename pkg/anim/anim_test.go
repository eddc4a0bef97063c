package anim

import (
	"math"
	"testing"
	"time"
)

func TestImmediate(t *testing.T) {
	var got float64 = -1
	done := false
	Immediate{}.Animate(Tween{Apply: func(v float64) { got = v }, Done: func() { done = true }})
	if got != 1 || !done {
		t.Errorf("Immediate: got %v, done %v", got, done)
	}
}

func TestTimelineAdvance(t *testing.T) {
	tl := NewTimeline(Linear)
	var got float64
	tl.Animate(Tween{Duration: 100 * time.Millisecond, Apply: func(v float64) { got = v }})

	if !tl.Active() {
		t.Fatal("Active() = false after Animate")
	}
	if got != 0 {
		t.Errorf("tween applied before Advance: %v", got)
	}

	tl.Advance(25 * time.Millisecond)
	if math.Abs(got-0.25) > 1e-9 {
		t.Errorf("after 25ms got %v, want 0.25", got)
	}

	tl.Advance(time.Second)
	if got != 1 || tl.Active() {
		t.Errorf("after finish got %v, active %v", got, tl.Active())
	}
}

func TestTimelineDelay(t *testing.T) {
	tl := NewTimeline(Linear)
	calls := 0
	tl.Animate(Tween{Duration: 10 * time.Millisecond, Delay: 10 * time.Millisecond, Apply: func(float64) { calls++ }})
	tl.Advance(5 * time.Millisecond)
	if calls != 0 {
		t.Errorf("delayed tween applied early (%d calls)", calls)
	}
	tl.Advance(10 * time.Millisecond)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestTimelineKeyReplaces(t *testing.T) {
	tl := NewTimeline(nil)
	key := new(int)
	first := 0
	tl.Animate(Tween{Key: key, Apply: func(float64) { first++ }})
	tl.Animate(Tween{Key: key, Apply: func(float64) {}})
	if tl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tl.Len())
	}
	tl.Finish()
	if first != 0 {
		t.Error("replaced tween should not run")
	}
}

func TestCubicOut(t *testing.T) {
	if CubicOut(0) != 0 || CubicOut(1) != 1 {
		t.Error("CubicOut endpoints")
	}
	if CubicOut(0.5) <= 0.5 {
		t.Errorf("CubicOut(0.5) = %v, want > 0.5", CubicOut(0.5))
	}
}
