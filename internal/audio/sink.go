package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	playerrors "github.com/quaverplay/quaver/pkg/errors"
)

const (
	// resampleQuality trades CPU for resampling accuracy.
	resampleQuality = 4
	// volumeBase is the exponent base for the perceptual volume curve.
	volumeBase = 2
)

// Speaker drives the audio device. The speaker is initialized once at a
// fixed sample rate and every track is resampled to it. Mutated only by the
// playback orchestrator (single writer); preload workers never touch it.
type Speaker struct {
	mu      sync.Mutex
	base    beep.SampleRate
	level   float64
	paused  bool
	ctrl    *beep.Ctrl
	vol     *effects.Volume
	current *Decoded
	empty   atomic.Bool
}

// NewSpeaker opens the audio device at the given sample rate with the given
// initial volume level in [0, 1].
func NewSpeaker(sampleRate int, level float64) (*Speaker, error) {
	if level < 0 || level > 1 {
		return nil, playerrors.ErrInvalidVolume
	}

	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, playerrors.NewPlayerError("speaker_init", "", err)
	}

	s := &Speaker{base: sr, level: level}
	s.empty.Store(true)
	return s, nil
}

// Append replaces whatever is queued with the given decoded stream and
// starts feeding it to the device. The sink owns the stream from here on.
func (s *Speaker) Append(d *Decoded) {
	s.mu.Lock()
	defer s.mu.Unlock()

	speaker.Clear()
	if s.current != nil {
		s.current.Close()
	}

	var stream beep.Streamer = d.Stream
	if d.Format.SampleRate != s.base {
		stream = beep.Resample(resampleQuality, d.Format.SampleRate, s.base, d.Stream)
	}

	ctrl := &beep.Ctrl{Streamer: stream, Paused: s.paused}
	vol := &effects.Volume{
		Streamer: ctrl,
		Base:     volumeBase,
		Volume:   toGain(s.level),
		Silent:   s.level == 0,
	}
	s.ctrl = ctrl
	s.vol = vol
	s.current = d
	s.empty.Store(false)

	speaker.Play(beep.Seq(vol, beep.Callback(func() {
		s.empty.Store(true)
	})))
}

// Clear drops the queued stream and closes it.
func (s *Speaker) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drop()
}

// Stop halts playback and drops the queued stream.
func (s *Speaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drop()
}

func (s *Speaker) drop() {
	speaker.Clear()
	if s.current != nil {
		s.current.Close()
		s.current = nil
	}
	s.ctrl = nil
	s.vol = nil
	s.empty.Store(true)
}

// Play resumes a paused stream.
func (s *Speaker) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()

	speaker.Lock()
	if s.ctrl != nil {
		s.ctrl.Paused = false
	}
	speaker.Unlock()
	s.paused = false
}

// Pause suspends the stream without losing position.
func (s *Speaker) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	speaker.Lock()
	if s.ctrl != nil {
		s.ctrl.Paused = true
	}
	speaker.Unlock()
	s.paused = true
}

// IsPaused reports whether the sink is currently paused.
func (s *Speaker) IsPaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Empty reports whether the queued stream has been fully consumed.
func (s *Speaker) Empty() bool {
	return s.empty.Load()
}

// SetVolume sets the volume level, clamped to [0, 1].
func (s *Speaker) SetVolume(level float64) {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.level = level
	speaker.Lock()
	if s.vol != nil {
		s.vol.Volume = toGain(level)
		s.vol.Silent = level == 0
	}
	speaker.Unlock()
}

// Volume returns the current volume level in [0, 1].
func (s *Speaker) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Close releases the queued stream. Safe to call on every exit path.
func (s *Speaker) Close() {
	s.Clear()
}

// toGain maps a linear [0, 1] level onto the volume effect's exponential
// scale, so 0.5 is half perceived loudness.
func toGain(level float64) float64 {
	return level*2 - 1
}
