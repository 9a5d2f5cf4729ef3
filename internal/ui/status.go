package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/quaverplay/quaver/internal/player"
)

// minInfoWidth is the narrowest title-artist budget worth splitting; below
// it only the title is shown.
const minInfoWidth = 15

const ellipsis = "..."

// FormatDuration renders a duration as MM:SS, or ??:?? when unknown.
func FormatDuration(d time.Duration) string {
	secs := int(d.Seconds())
	if secs <= 0 {
		return "??:??"
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Truncate shortens s to at most width display cells, appending an ellipsis
// only when truncation actually occurs. Multi-cell glyphs are never split.
func Truncate(s string, width int) string {
	if width < len(ellipsis) {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, ellipsis)
}

// StatusLine renders the playback status into a single line exactly width
// display cells wide. The title-artist field absorbs whatever width the
// fixed fields leave over and is truncated display-width-aware; the result
// is right-padded so it fully overwrites the previous line.
func StatusLine(st player.Status, width int) string {
	mode := modeGlyph(st.Shuffled, st.Loop)
	elapsed := FormatDuration(st.Elapsed)
	length := FormatDuration(st.Length)
	volume := st.Volume * 100

	fixed := fmt.Sprintf(" [%d/%d][%s][%s][][%s/%s][%.0f%%]",
		st.Index+1, st.Total, mode, st.Ext, elapsed, length, volume)

	budget := width - runewidth.StringWidth(fixed)
	if budget < 0 {
		budget = 0
	}

	var info string
	if budget < minInfoWidth {
		info = Truncate(st.Title, budget)
	} else {
		info = Truncate(st.Title+"-"+st.Artist, budget)
	}

	line := fmt.Sprintf(" [%d/%d][%s][%s][%s][%s/%s][%.0f%%]",
		st.Index+1, st.Total, mode, st.Ext, info, elapsed, length, volume)

	// Terminals narrower than the fixed fields still get a line that fits.
	if pad := width - runewidth.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	} else if pad < 0 {
		line = runewidth.Truncate(line, width, "")
	}
	return line
}

func modeGlyph(shuffled, loop bool) string {
	order := "seq"
	if shuffled {
		order = "rnd"
	}
	repeat := "once"
	if loop {
		repeat = "loop"
	}
	return order + "|" + repeat
}
