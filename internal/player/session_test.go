package player

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestSessionElapsedWhilePlaying(t *testing.T) {
	clock := newFakeClock()
	sess := newSession(clock.Now)

	clock.Advance(3 * time.Second)
	if got := sess.Tick(false); got != 3*time.Second {
		t.Errorf("elapsed = %v, want 3s", got)
	}

	clock.Advance(2 * time.Second)
	if got := sess.Tick(false); got != 5*time.Second {
		t.Errorf("elapsed = %v, want 5s", got)
	}
}

func TestSessionFrozenWhilePaused(t *testing.T) {
	clock := newFakeClock()
	sess := newSession(clock.Now)

	clock.Advance(10 * time.Second)
	sess.Tick(false)

	// Pause and let wall-clock time pass; elapsed must not move.
	sess.Tick(true)
	for i := 0; i < 5; i++ {
		clock.Advance(7 * time.Second)
		if got := sess.Tick(true); got != 10*time.Second {
			t.Fatalf("tick %d while paused: elapsed = %v, want 10s", i, got)
		}
	}

	// Resume: the 35s pause is excluded from elapsed time.
	if got := sess.Tick(false); got != 10*time.Second {
		t.Errorf("elapsed after resume = %v, want 10s", got)
	}
	clock.Advance(4 * time.Second)
	if got := sess.Tick(false); got != 14*time.Second {
		t.Errorf("elapsed = %v, want 14s", got)
	}
}

func TestSessionPauseResumeIdempotent(t *testing.T) {
	clock := newFakeClock()
	sess := newSession(clock.Now)

	clock.Advance(8 * time.Second)
	before := sess.Tick(false)

	// Pause then immediately resume with no wall-clock time passing.
	sess.Tick(true)
	after := sess.Tick(false)

	if before != after {
		t.Errorf("elapsed changed across instant pause/resume: %v -> %v", before, after)
	}
}

func TestSessionMonotonic(t *testing.T) {
	clock := newFakeClock()
	sess := newSession(clock.Now)

	steps := []struct {
		advance time.Duration
		paused  bool
	}{
		{time.Second, false},
		{time.Second, true},
		{5 * time.Second, true},
		{0, false},
		{2 * time.Second, false},
		{0, true},
		{30 * time.Second, true},
		{time.Second, false},
		{time.Second, true},
		{time.Second, false},
	}

	var last time.Duration
	for i, step := range steps {
		clock.Advance(step.advance)
		got := sess.Tick(step.paused)
		if got < last {
			t.Fatalf("step %d: elapsed went backwards: %v -> %v", i, last, got)
		}
		last = got
	}
}

func TestSessionMultiplePauseCyclesNoDrift(t *testing.T) {
	clock := newFakeClock()
	sess := newSession(clock.Now)

	// 3 cycles of 2s playing + 10s paused: elapsed must be exactly 6s.
	for i := 0; i < 3; i++ {
		clock.Advance(2 * time.Second)
		sess.Tick(false)
		sess.Tick(true)
		clock.Advance(10 * time.Second)
		sess.Tick(true)
	}

	if got := sess.Tick(false); got != 6*time.Second {
		t.Errorf("elapsed after pause cycles = %v, want 6s", got)
	}
}
