package playlist

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/quaverplay/quaver/api"
	playerrors "github.com/quaverplay/quaver/pkg/errors"
)

var supportedExts = []string{".mp3", ".wav", ".flac", ".ogg"}

// IsSupported checks if a file format is supported
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range supportedExts {
		if ext == s {
			return true
		}
	}
	return false
}

// Discover resolves an input path into an ordered list of tracks. A
// directory is walked recursively for supported audio files, a .txt file is
// parsed as a playlist (one path per line), and anything else is treated as
// a single audio file.
func Discover(path string) ([]api.Track, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat input path: %w", err)
	}

	if info.IsDir() {
		return scanDir(path)
	}
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		return readListFile(path)
	}
	if !IsSupported(path) {
		return nil, playerrors.NewPlayerError("open", path, playerrors.ErrUnsupportedFormat)
	}
	return []api.Track{{Path: path}}, nil
}

// scanDir walks a directory tree collecting supported audio files in
// lexical walk order.
func scanDir(root string) ([]api.Track, error) {
	var tracks []api.Track
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal to the scan
			return nil
		}
		if !d.IsDir() && IsSupported(p) {
			tracks = append(tracks, api.Track{Path: p})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan directory %s: %w", root, err)
	}
	return tracks, nil
}

// readListFile parses a playlist file with one track path per line. Blank
// lines and surrounding whitespace are ignored.
func readListFile(path string) ([]api.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read playlist file: %w", err)
	}

	var tracks []api.Track
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tracks = append(tracks, api.Track{Path: line})
	}

	if len(tracks) == 0 {
		return nil, playerrors.NewPlayerError("parse", path, playerrors.ErrEmptyListFile)
	}
	return tracks, nil
}
