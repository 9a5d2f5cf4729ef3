package library

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

const unknownArtist = "Unknown Artist"

// MetadataReader extracts display metadata from audio files. Every failure
// mode degrades to placeholder values; the reader never returns an error,
// since missing tags must not prevent a track from playing.
type MetadataReader struct{}

// NewMetadataReader creates a new metadata reader
func NewMetadataReader() *MetadataReader {
	return &MetadataReader{}
}

// Resolve returns the title and artist for the file at path. Falls back to
// the file name and a placeholder artist when the file cannot be read or
// carries no tags.
func (r *MetadataReader) Resolve(path string) (title, artist string) {
	title = baseName(path)
	artist = unknownArtist

	f, err := os.Open(path)
	if err != nil {
		return title, artist
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return title, artist
	}

	title = getOrDefault(m.Title(), title)
	artist = getOrDefault(m.Artist(), artist)
	return title, artist
}

// baseName returns the file name without its extension.
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// getOrDefault returns the value if non-empty, otherwise returns the default
func getOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
