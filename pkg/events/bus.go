package events

import "sync"

// Type identifies a playback event.
type Type int

const (
	TrackStarted Type = iota
	TrackFailed
	Paused
	Resumed
	VolumeChanged
	Finished
)

// Event is a single playback notification. Fields are populated per type:
// TrackStarted carries Index/Title/Artist, TrackFailed carries Index/Name/Err,
// VolumeChanged carries Volume.
type Event struct {
	Type   Type
	Index  int
	Title  string
	Artist string
	Name   string
	Err    error
	Volume float64
}

// Bus distributes playback events to subscribers over channels.
type Bus struct {
	subscribers map[Type][]chan Event
	mu          sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[Type][]chan Event),
	}
}

// Subscribe returns a channel receiving events of the given types. With no
// types it receives everything.
func (b *Bus) Subscribe(types ...Type) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(types) == 0 {
		types = []Type{TrackStarted, TrackFailed, Paused, Resumed, VolumeChanged, Finished}
	}

	ch := make(chan Event, 16)
	for _, t := range types {
		b.subscribers[t] = append(b.subscribers[t], ch)
	}
	return ch
}

// Publish broadcasts an event to all subscribers of its type.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers[event.Type] {
		select {
		case ch <- event:
		default:
			// Subscriber lagging, drop rather than block playback
		}
	}
}

// Close closes all subscriber channels.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	closed := make(map[chan Event]bool)
	for _, subs := range b.subscribers {
		for _, ch := range subs {
			if !closed[ch] {
				close(ch)
				closed[ch] = true
			}
		}
	}
	b.subscribers = make(map[Type][]chan Event)
}
