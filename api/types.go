package api

import (
	"path/filepath"
	"strings"
)

// Track is an opaque locator for a playable resource. Immutable once the
// playlist is built.
type Track struct {
	Path string `json:"path"`
}

// Display returns the name shown to the user when no metadata is available:
// the base file name.
func (t Track) Display() string {
	return filepath.Base(t.Path)
}

// Ext returns the track's file extension in upper case without the leading
// dot, or "???" when the path has none.
func (t Track) Ext() string {
	ext := filepath.Ext(t.Path)
	if len(ext) < 2 {
		return "???"
	}
	return strings.ToUpper(ext[1:])
}

// KeyEvent is a single decoded keyboard command from the input source.
type KeyEvent int

const (
	KeyNone KeyEvent = iota
	KeyPause
	KeyResume
	KeyVolumeUp
	KeyVolumeDown
	KeyNext
	KeyPrevious
	KeyQuit
)

func (k KeyEvent) String() string {
	switch k {
	case KeyPause:
		return "pause"
	case KeyResume:
		return "resume"
	case KeyVolumeUp:
		return "volume-up"
	case KeyVolumeDown:
		return "volume-down"
	case KeyNext:
		return "next"
	case KeyPrevious:
		return "previous"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}
