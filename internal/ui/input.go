package ui

import (
	"io"
	"log"
	"time"

	"github.com/quaverplay/quaver/api"
)

// Input decodes raw-mode stdin bytes into key events on a background
// goroutine, so the playback loop can poll with a bounded wait instead of
// blocking on a read.
type Input struct {
	events  chan api.KeyEvent
	pending api.KeyEvent
}

func newInput(in io.Reader, keys map[byte]api.KeyEvent) *Input {
	i := &Input{events: make(chan api.KeyEvent, 16)}
	go i.readLoop(in, keys)
	return i
}

// Poll waits up to timeout for a key event and reports whether one is ready
// to Read.
func (i *Input) Poll(timeout time.Duration) bool {
	select {
	case ev, ok := <-i.events:
		if !ok {
			// stdin is gone, treat it as a quit request
			i.pending = api.KeyQuit
			return true
		}
		i.pending = ev
		return true
	case <-time.After(timeout):
		return false
	}
}

// Read returns the event made available by the last successful Poll.
func (i *Input) Read() api.KeyEvent {
	ev := i.pending
	i.pending = api.KeyNone
	return ev
}

func (i *Input) readLoop(in io.Reader, keys map[byte]api.KeyEvent) {
	defer close(i.events)

	buf := make([]byte, 64)
	for {
		n, err := in.Read(buf)
		if err != nil {
			return
		}

		for k := 0; k < n; k++ {
			b := buf[k]
			switch {
			case b == 0x03: // Ctrl-C arrives as a byte in raw mode
				i.send(api.KeyQuit)
			case b == 0x1b && k+2 < n && buf[k+1] == '[':
				switch buf[k+2] {
				case 'A':
					i.send(api.KeyVolumeUp)
				case 'B':
					i.send(api.KeyVolumeDown)
				case 'C':
					i.send(api.KeyNext)
				case 'D':
					i.send(api.KeyPrevious)
				}
				k += 2
			default:
				if ev, ok := keys[b]; ok {
					i.send(ev)
				}
			}
		}
	}
}

// send never blocks; when the buffer is full the event is dropped. Key
// repeat can outrun the 100ms poll cadence and the skip debounce discards
// the excess anyway.
func (i *Input) send(ev api.KeyEvent) {
	log.Printf("key: %s", ev)
	select {
	case i.events <- ev:
	default:
	}
}
