package player

import (
	"time"

	"github.com/quaverplay/quaver/api"
	"github.com/quaverplay/quaver/internal/audio"
)

// Sink accepts decoded audio and exposes transport controls. The
// orchestrator is its single writer; preload workers never touch it.
type Sink interface {
	Append(*audio.Decoded)
	Clear()
	Play()
	Pause()
	Stop()
	IsPaused() bool
	Empty() bool
	SetVolume(float64)
	Volume() float64
}

// Input delivers keyboard commands. Poll blocks for at most the given
// timeout and reports whether an event is ready to Read.
type Input interface {
	Poll(timeout time.Duration) bool
	Read() api.KeyEvent
}

// Status is a snapshot of the current playback state handed to the display
// once per refresh interval.
type Status struct {
	Index    int
	Total    int
	Title    string
	Artist   string
	Ext      string
	Elapsed  time.Duration
	Length   time.Duration
	Volume   float64
	Paused   bool
	Loop     bool
	Shuffled bool
}

// Display renders the single overwriting status line.
type Display interface {
	ShowStatus(Status)
	ShowError(msg string)
	ClearLine()
}
