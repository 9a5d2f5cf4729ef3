package library

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveMissingFileFallsBack(t *testing.T) {
	r := NewMetadataReader()

	title, artist := r.Resolve("/nowhere/My Song.mp3")
	if title != "My Song" {
		t.Errorf("title = %q, want file name fallback", title)
	}
	if artist != unknownArtist {
		t.Errorf("artist = %q, want %q", artist, unknownArtist)
	}
}

func TestResolveUntaggedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "untitled.mp3")
	if err := os.WriteFile(path, []byte("no tags here"), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewMetadataReader()
	title, artist := r.Resolve(path)
	if title != "untitled" {
		t.Errorf("title = %q, want %q", title, "untitled")
	}
	if artist != unknownArtist {
		t.Errorf("artist = %q, want %q", artist, unknownArtist)
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/music/Artist - Song.flac", "Artist - Song"},
		{"plain.mp3", "plain"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		if got := baseName(tt.path); got != tt.want {
			t.Errorf("baseName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
