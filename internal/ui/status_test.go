package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/quaverplay/quaver/internal/player"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "??:??"},
		{time.Second, "00:01"},
		{65 * time.Second, "01:05"},
		{10 * time.Minute, "10:00"},
		{61 * time.Minute, "61:00"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestTruncateFitsUntouched(t *testing.T) {
	if got := Truncate("short", 20); got != "short" {
		t.Errorf("Truncate = %q, want unchanged input", got)
	}
}

func TestTruncateNeverExceedsWidth(t *testing.T) {
	inputs := []string{
		"plain ascii title that goes on and on",
		"日本語のタイトルがとても長い場合",
		"mixed 漢字 and ascii ελληνικά",
		"",
	}
	for _, s := range inputs {
		for width := 3; width < 40; width++ {
			got := Truncate(s, width)
			if w := runewidth.StringWidth(got); w > width {
				t.Fatalf("Truncate(%q, %d) has width %d", s, width, w)
			}
		}
	}
}

func TestTruncateBelowEllipsisWidth(t *testing.T) {
	if got := Truncate("anything", 2); got != "" {
		t.Errorf("Truncate with width 2 = %q, want empty", got)
	}
}

func TestTruncateAddsEllipsisOnlyWhenTruncating(t *testing.T) {
	long := "a very long title that cannot possibly fit"
	if got := Truncate(long, 10); !strings.HasSuffix(got, "...") {
		t.Errorf("Truncate(long, 10) = %q, want ellipsis suffix", got)
	}
	if got := Truncate("ok", 10); strings.Contains(got, "...") {
		t.Errorf("Truncate(short, 10) = %q, must not contain ellipsis", got)
	}
}

func TestStatusLineExactWidth(t *testing.T) {
	st := player.Status{
		Index:   2,
		Total:   12,
		Title:   "とても長い曲名でターミナルに収まらないもの",
		Artist:  "某アーティスト",
		Ext:     "MP3",
		Elapsed: 75 * time.Second,
		Length:  4 * time.Minute,
		Volume:  0.55,
		Loop:    true,
	}
	for _, width := range []int{50, 60, 80, 100, 132} {
		line := StatusLine(st, width)
		if w := runewidth.StringWidth(line); w != width {
			t.Errorf("width %d: rendered %d cells", width, w)
		}
	}
}

func TestStatusLineNeverExceedsNarrowWidth(t *testing.T) {
	// Narrower than the fixed fields themselves: the line is cut, not
	// allowed to wrap.
	st := player.Status{
		Index:   2,
		Total:   12,
		Title:   "Title",
		Artist:  "Artist",
		Ext:     "MP3",
		Elapsed: 75 * time.Second,
		Length:  4 * time.Minute,
		Volume:  0.55,
		Loop:    true,
	}
	for _, width := range []int{10, 25, 40} {
		line := StatusLine(st, width)
		if w := runewidth.StringWidth(line); w > width {
			t.Errorf("width %d: rendered %d cells", width, w)
		}
	}
}

func TestStatusLineDropsArtistWhenNarrow(t *testing.T) {
	st := player.Status{
		Index:   0,
		Total:   3,
		Title:   "Title",
		Artist:  "SomeArtist",
		Ext:     "FLAC",
		Elapsed: time.Second,
		Length:  time.Minute,
		Volume:  1,
	}

	wide := StatusLine(st, 100)
	if !strings.Contains(wide, "Title-SomeArtist") {
		t.Errorf("wide line %q should contain title-artist", wide)
	}

	// Narrow enough that the info budget dips under the split threshold.
	narrow := StatusLine(st, 55)
	if strings.Contains(narrow, "SomeArtist") {
		t.Errorf("narrow line %q should drop the artist", narrow)
	}
	if !strings.Contains(narrow, "Title") {
		t.Errorf("narrow line %q should still show the title", narrow)
	}
}

func TestStatusLineModeGlyphs(t *testing.T) {
	st := player.Status{Total: 1, Title: "t", Ext: "MP3", Volume: 1}

	if line := StatusLine(st, 80); !strings.Contains(line, "[seq|once]") {
		t.Errorf("line %q missing default mode glyph", line)
	}

	st.Shuffled = true
	st.Loop = true
	if line := StatusLine(st, 80); !strings.Contains(line, "[rnd|loop]") {
		t.Errorf("line %q missing shuffle/loop glyph", line)
	}
}
