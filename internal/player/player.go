package player

import (
	"errors"
	"fmt"
	"time"

	"github.com/quaverplay/quaver/api"
	"github.com/quaverplay/quaver/internal/library"
	"github.com/quaverplay/quaver/internal/playlist"
	playerrors "github.com/quaverplay/quaver/pkg/errors"
	"github.com/quaverplay/quaver/pkg/events"
)

const (
	minSkipInterval = 250 * time.Millisecond
	volumeStep      = 0.01
	refreshInterval = time.Second
	preloadTimeout  = 5 * time.Second
	errorDwell      = 5 * time.Second
	inputWait       = 100 * time.Millisecond
)

var errLoadTimeout = errors.New("load taking too long, skipping")

// Player is the playback orchestrator: it requests and consumes preloads,
// feeds the sink, interprets keyboard events, advances the playlist index,
// and drives the status display.
type Player struct {
	list    *playlist.Playlist
	sink    Sink
	input   Input
	display Display
	bus     *events.Bus

	// injected for tests
	load  func(api.Track, int) preloadResult
	now   func() time.Time
	sleep func(time.Duration)
	after func(time.Duration) <-chan time.Time

	results chan preloadResult
	done    chan struct{}
	pending map[int]bool

	lastSkip time.Time

	waitTimeout  time.Duration
	dwell        time.Duration
	pollWait     time.Duration
	refreshEvery time.Duration
	skipDebounce time.Duration
	volStep      float64
}

// New creates a playback orchestrator over the given playlist and
// collaborators.
func New(list *playlist.Playlist, sink Sink, input Input, display Display, bus *events.Bus) *Player {
	meta := library.NewMetadataReader()

	p := &Player{
		list:    list,
		sink:    sink,
		input:   input,
		display: display,
		bus:     bus,

		load: func(tr api.Track, idx int) preloadResult {
			return loadTrack(meta, tr, idx)
		},
		now:   time.Now,
		sleep: time.Sleep,
		after: time.After,

		results: make(chan preloadResult, 2),
		done:    make(chan struct{}),
		pending: make(map[int]bool),

		waitTimeout:  preloadTimeout,
		dwell:        errorDwell,
		pollWait:     inputWait,
		refreshEvery: refreshInterval,
		skipDebounce: minSkipInterval,
		volStep:      volumeStep,
	}
	p.lastSkip = p.now().Add(-p.skipDebounce)
	return p
}

// Run plays the playlist to completion. It returns nil when the playlist
// ends or the user quits; the only error it returns is the structural
// failure of the result channel. Per-track load failures are absorbed:
// displayed, dwelt on, then skipped.
func (p *Player) Run() error {
	defer close(p.done)

	idx := 0
	p.spawnPreload(idx)

	for {
		if idx >= p.list.Len() {
			if !p.list.Loop() {
				p.display.ClearLine()
				p.bus.Publish(events.Event{Type: events.Finished})
				return nil
			}
			idx = 0
			p.spawnPreload(idx)
		}

		res, err := p.awaitTrack(idx)
		if err != nil {
			return err
		}

		if res.err != nil {
			p.display.ShowError(fmt.Sprintf("cannot play %s: %v", res.name, res.err))
			p.bus.Publish(events.Event{Type: events.TrackFailed, Index: res.index, Name: res.name, Err: res.err})
			p.sleep(p.dwell)
			p.display.ClearLine()
			idx++
			if idx < p.list.Len() {
				p.spawnPreload(idx)
			}
			continue
		}

		p.sink.Clear()
		p.sink.Append(res.decoded)
		if p.sink.IsPaused() {
			p.sink.Play()
		}
		p.bus.Publish(events.Event{Type: events.TrackStarted, Index: idx, Title: res.title, Artist: res.artist})

		// Look-ahead decode for the following track. Skipped for a
		// one-track non-looping playlist, where no next track exists.
		if next := p.list.NextIndex(idx); next != idx && p.list.HasNext(idx) {
			p.spawnPreload(next)
		}

		offset, quit := p.playTrack(idx, res)
		if quit {
			p.bus.Publish(events.Event{Type: events.Finished})
			return nil
		}

		switch {
		case offset > 0:
			idx = p.list.NextIndex(idx)
			p.spawnPreload(idx)
		case offset < 0:
			// The look-ahead only ever covers the next index, so a
			// backward skip must request its own preload.
			idx = p.list.PrevIndex(idx)
			p.spawnPreload(idx)
		default:
			// Track drained naturally.
			p.display.ClearLine()
			idx++
		}
	}
}

// awaitTrack blocks, with a bounded wait, until the preload result for idx
// arrives. Results tagged with any other index are stale leftovers from
// skipped-past preloads and are dropped. A timeout is reported as a load
// failure so the orchestrator skips the track; a closed channel can never
// deliver again and is fatal.
func (p *Player) awaitTrack(idx int) (preloadResult, error) {
	for {
		select {
		case res, ok := <-p.results:
			if !ok {
				return preloadResult{}, playerrors.ErrResultsClosed
			}
			delete(p.pending, res.index)
			if res.index != idx {
				if res.decoded != nil {
					res.decoded.Close()
				}
				continue
			}
			return res, nil

		case <-p.after(p.waitTimeout):
			delete(p.pending, idx)
			return preloadResult{index: idx, name: p.list.At(idx).Display(), err: errLoadTimeout}, nil
		}
	}
}

// playTrack runs the inner per-track loop until the stream drains or the
// user forces a transition. Returns the signed skip offset (0 for a natural
// end) and whether quit was requested.
func (p *Player) playTrack(idx int, res preloadResult) (offset int, quit bool) {
	sess := newSession(p.now)
	lastRefresh := p.now()

	for !p.sink.Empty() {
		paused := p.sink.IsPaused()
		elapsed := sess.Tick(paused)

		if p.now().Sub(lastRefresh) >= p.refreshEvery {
			p.display.ShowStatus(Status{
				Index:    idx,
				Total:    p.list.Len(),
				Title:    res.title,
				Artist:   res.artist,
				Ext:      p.list.At(idx).Ext(),
				Elapsed:  elapsed,
				Length:   res.length,
				Volume:   p.sink.Volume(),
				Paused:   paused,
				Loop:     p.list.Loop(),
				Shuffled: p.list.Shuffled(),
			})
			lastRefresh = p.now()
		}

		if !p.input.Poll(p.pollWait) {
			continue
		}

		switch p.input.Read() {
		case api.KeyPause:
			if !p.sink.IsPaused() {
				p.sink.Pause()
				p.bus.Publish(events.Event{Type: events.Paused})
			}
		case api.KeyResume:
			if p.sink.IsPaused() {
				p.sink.Play()
				p.bus.Publish(events.Event{Type: events.Resumed})
			}
		case api.KeyVolumeUp:
			p.adjustVolume(p.volStep)
		case api.KeyVolumeDown:
			p.adjustVolume(-p.volStep)
		case api.KeyNext:
			if p.now().Sub(p.lastSkip) < p.skipDebounce {
				continue
			}
			if p.list.HasNext(idx) {
				p.sink.Stop()
				p.lastSkip = p.now()
				return 1, false
			}
		case api.KeyPrevious:
			if p.now().Sub(p.lastSkip) < p.skipDebounce {
				continue
			}
			if p.list.HasPrevious(idx) {
				p.sink.Stop()
				p.lastSkip = p.now()
				return -1, false
			}
		case api.KeyQuit:
			p.sink.Stop()
			return 0, true
		}
	}
	return 0, false
}

func (p *Player) adjustVolume(delta float64) {
	v := p.sink.Volume() + delta
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.sink.SetVolume(v)
	p.bus.Publish(events.Event{Type: events.VolumeChanged, Volume: v})
}
