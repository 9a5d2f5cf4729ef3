package playlist

import (
	"math/rand"

	"github.com/quaverplay/quaver/api"
)

// Playlist is an immutable ordered sequence of tracks plus play-mode flags.
// It is built once at startup; the orchestrator owns the current index and
// only reads from the playlist during playback.
type Playlist struct {
	tracks   []api.Track
	loop     bool
	shuffled bool
}

// Option configures a Playlist at construction time.
type Option func(*Playlist)

// WithLoop enables wrapping from the last track back to the first.
func WithLoop(on bool) Option {
	return func(p *Playlist) { p.loop = on }
}

// New builds a playlist over the given tracks. The slice is copied so later
// mutation by the caller cannot reach the playlist.
func New(tracks []api.Track, opts ...Option) *Playlist {
	p := &Playlist{tracks: make([]api.Track, len(tracks))}
	copy(p.tracks, tracks)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Shuffle reorders the playlist in place (Fisher-Yates). Applied once at
// startup, before playback begins.
func (p *Playlist) Shuffle(rng *rand.Rand) {
	if len(p.tracks) > 1 {
		rng.Shuffle(len(p.tracks), func(i, j int) {
			p.tracks[i], p.tracks[j] = p.tracks[j], p.tracks[i]
		})
	}
	p.shuffled = true
}

// Len returns the number of tracks.
func (p *Playlist) Len() int { return len(p.tracks) }

// At returns the track at index i.
func (p *Playlist) At(i int) api.Track { return p.tracks[i] }

// Loop reports whether the playlist wraps at the ends.
func (p *Playlist) Loop() bool { return p.loop }

// Shuffled reports whether the playlist was shuffled at startup. Display
// only; the order never changes after construction.
func (p *Playlist) Shuffled() bool { return p.shuffled }

// NextIndex returns the index following i, wrapping past the end.
func (p *Playlist) NextIndex(i int) int {
	return (i + 1) % len(p.tracks)
}

// PrevIndex returns the index preceding i, wrapping to the last track.
func (p *Playlist) PrevIndex(i int) int {
	if i == 0 {
		return len(p.tracks) - 1
	}
	return i - 1
}

// HasNext reports whether a skip forward from index i may be honored.
func (p *Playlist) HasNext(i int) bool {
	return p.loop || i < len(p.tracks)-1
}

// HasPrevious reports whether a skip backward from index i may be honored.
func (p *Playlist) HasPrevious(i int) bool {
	return p.loop || i > 0
}
