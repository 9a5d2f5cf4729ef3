package player

import (
	"time"

	"github.com/quaverplay/quaver/api"
	"github.com/quaverplay/quaver/internal/audio"
	"github.com/quaverplay/quaver/internal/library"
)

// preloadResult is the one message a preload worker delivers: either a fully
// decoded track or the reason it could not be loaded, tagged with the
// playlist index it was loaded for. The tag lets the consumer drop results
// for indices the user has already skipped past.
type preloadResult struct {
	index   int
	title   string
	artist  string
	length  time.Duration
	decoded *audio.Decoded
	name    string // display name for error reporting
	err     error  // non-nil marks a failure; decoded is nil
}

// spawnPreload starts a background worker decoding the track at idx. A
// no-op when a worker for that index is already in flight, so at most one
// pending preload is authoritative per index.
func (p *Player) spawnPreload(idx int) {
	if p.pending[idx] {
		return
	}
	p.pending[idx] = true

	tr := p.list.At(idx)
	go func() {
		res := p.load(tr, idx)
		select {
		case p.results <- res:
		case <-p.done:
			// The consumer is gone. Not an error, just drop the work.
			if res.decoded != nil {
				res.decoded.Close()
			}
		}
	}()
}

// loadTrack resolves metadata and opens+decodes the track. Metadata failure
// degrades to placeholders and is never fatal; an open or decode failure
// produces a failure result for the orchestrator to display and skip.
func loadTrack(meta *library.MetadataReader, tr api.Track, idx int) preloadResult {
	title, artist := meta.Resolve(tr.Path)

	d, err := audio.Open(tr.Path)
	if err != nil {
		return preloadResult{index: idx, name: tr.Display(), err: err}
	}

	return preloadResult{
		index:   idx,
		title:   title,
		artist:  artist,
		length:  d.Duration(),
		decoded: d,
		name:    tr.Display(),
	}
}
