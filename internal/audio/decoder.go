package audio

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
	playerrors "github.com/quaverplay/quaver/pkg/errors"
)

// Decoded is an opened, decoded audio stream ready to hand to the sink.
// Ownership moves with the value: whoever holds it is responsible for
// closing the stream.
type Decoded struct {
	Stream beep.StreamSeekCloser
	Format beep.Format
}

// Duration returns the total play time of the stream, or 0 when the length
// is unknown.
func (d *Decoded) Duration() time.Duration {
	n := d.Stream.Len()
	if n <= 0 {
		return 0
	}
	return d.Format.SampleRate.D(n)
}

// Close releases the underlying stream.
func (d *Decoded) Close() error {
	return d.Stream.Close()
}

// Open opens and decodes an audio file based on its extension.
func Open(path string) (*Decoded, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, playerrors.NewPlayerError("open", path, err)
	}

	streamer, format, err := decode(f, path)
	if err != nil {
		f.Close()
		return nil, playerrors.NewPlayerError("decode", path, err)
	}
	return &Decoded{Stream: streamer, Format: format}, nil
}

func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return mp3.Decode(f)
	case ".wav":
		return wav.Decode(f)
	case ".flac":
		return flac.Decode(f)
	case ".ogg":
		return vorbis.Decode(f)
	default:
		return nil, beep.Format{}, playerrors.ErrUnsupportedFormat
	}
}
