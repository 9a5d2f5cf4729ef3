package player

import "time"

// session tracks elapsed play time for a single track, excluding paused
// intervals. A session lives from the moment its track becomes current
// until the next track is loaded; it carries no state across tracks.
type session struct {
	now         func() time.Time
	start       time.Time
	pausedAccum time.Duration
	pauseStart  time.Time // zero while playing
	frozen      time.Duration
}

func newSession(now func() time.Time) *session {
	return &session{now: now, start: now()}
}

// Tick advances the model with the sink's current paused state and returns
// the elapsed play time. While paused the value stays frozen at the instant
// the pause began; on resume the paused interval is folded into the
// accumulator so it never counts toward elapsed time. The result is
// monotonically non-decreasing across any pause/resume sequence.
func (s *session) Tick(paused bool) time.Duration {
	t := s.now()

	if paused {
		if s.pauseStart.IsZero() {
			s.pauseStart = t
			s.frozen = t.Sub(s.start) - s.pausedAccum
		}
		return s.frozen
	}

	if !s.pauseStart.IsZero() {
		s.pausedAccum += t.Sub(s.pauseStart)
		s.pauseStart = time.Time{}
	}
	return t.Sub(s.start) - s.pausedAccum
}
