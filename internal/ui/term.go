package ui

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/quaverplay/quaver/api"
	"github.com/quaverplay/quaver/internal/player"
	"github.com/quaverplay/quaver/pkg/events"
	"golang.org/x/term"
)

const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearToEnd  = "\r\x1b[K"
	clearScreen = "\x1b[2J\x1b[H"

	fallbackWidth = 80
)

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Ensure Terminal satisfies the orchestrator's contracts at compile time
var (
	_ player.Display = (*Terminal)(nil)
	_ player.Input   = (*Input)(nil)
)

// Options configures the terminal session.
type Options struct {
	// Clean suppresses the startup banner and help text.
	Clean bool
	// Keys maps single bytes to key events; arrows and Ctrl-C are always bound.
	Keys map[byte]api.KeyEvent
	// AppTitle is the window-title suffix shown after the track name.
	AppTitle string
}

// Terminal is the scoped terminal session. Raw mode, hidden cursor and the
// window title are acquired by NewTerminal and released by Restore, which
// is idempotent so every exit path can call it.
type Terminal struct {
	out      *os.File
	oldState *term.State
	input    *Input
	restore  sync.Once
	appTitle string
	title    string
}

// NewTerminal puts the terminal into raw mode and starts the input reader.
func NewTerminal(opts Options) (*Terminal, error) {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	t := &Terminal{
		out:      os.Stdout,
		oldState: oldState,
		input:    newInput(os.Stdin, opts.Keys),
		appTitle: opts.AppTitle,
	}

	fmt.Fprint(t.out, clearScreen, hideCursor)
	t.SetTitle(opts.AppTitle)
	if !opts.Clean {
		t.printBanner()
	}
	return t, nil
}

// Input returns the keyboard event source for this session.
func (t *Terminal) Input() *Input {
	return t.input
}

// Restore leaves raw mode and brings the cursor back. Safe to call more
// than once and from any exit path.
func (t *Terminal) Restore() {
	t.restore.Do(func() {
		fmt.Fprint(t.out, clearToEnd, showCursor)
		term.Restore(int(os.Stdin.Fd()), t.oldState)
		fmt.Fprint(t.out, "\n")
	})
}

// ShowStatus renders the status line over the current line.
func (t *Terminal) ShowStatus(st player.Status) {
	fmt.Fprint(t.out, "\r"+StatusLine(st, t.width()))
}

// ShowError replaces the current line with a styled error message.
func (t *Terminal) ShowError(msg string) {
	fmt.Fprint(t.out, clearToEnd+errorStyle.Render(msg))
}

// ClearLine erases the current line.
func (t *Terminal) ClearLine() {
	fmt.Fprint(t.out, clearToEnd)
}

// SetTitle sets the terminal window title.
func (t *Terminal) SetTitle(title string) {
	fmt.Fprintf(t.out, "\x1b]0;%s\a", title)
}

// WatchTitles keeps the window title in sync with playback: track name on
// start, a paused prefix while paused.
func (t *Terminal) WatchTitles(bus *events.Bus) {
	ch := bus.Subscribe(events.TrackStarted, events.Paused, events.Resumed)
	go func() {
		for ev := range ch {
			switch ev.Type {
			case events.TrackStarted:
				t.title = fmt.Sprintf("%s - %s - %s", ev.Title, ev.Artist, t.appTitle)
				t.SetTitle(t.title)
			case events.Paused:
				t.SetTitle("[paused] " + t.title)
			case events.Resumed:
				t.SetTitle(t.title)
			}
		}
	}()
}

func (t *Terminal) width() int {
	w, _, err := term.GetSize(int(t.out.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// printBanner writes the control help. Raw mode needs explicit \r\n line
// endings.
func (t *Terminal) printBanner() {
	lines := []string{
		bannerStyle.Render(fmt.Sprintf("===================[ %s ]===================", t.appTitle)),
		helpStyle.Render("  [p] pause      [space] resume      [q] quit"),
		helpStyle.Render("  [<-] previous  [->] next  [up/down] volume"),
		bannerStyle.Render("============================================="),
	}
	for _, l := range lines {
		fmt.Fprint(t.out, l+"\r\n")
	}
}
