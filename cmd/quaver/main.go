package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quaverplay/quaver/internal/audio"
	"github.com/quaverplay/quaver/internal/config"
	"github.com/quaverplay/quaver/internal/player"
	"github.com/quaverplay/quaver/internal/playlist"
	"github.com/quaverplay/quaver/internal/ui"
	playerrors "github.com/quaverplay/quaver/pkg/errors"
	"github.com/quaverplay/quaver/pkg/events"
)

const (
	appName    = "quaver"
	appVersion = "1.0.0"

	sampleRate = 44100
)

type flags struct {
	loop   bool
	random bool
	clean  bool
	debug  bool
	volume int
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           appName + " <file|directory|list.txt>",
		Short:         "A minimal terminal music player with look-ahead track prefetch",
		Version:       appVersion,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], f, cmd.Flags().Changed("volume"))
		},
	}
	cmd.Flags().BoolVarP(&f.loop, "loop", "l", false, "loop the playlist")
	cmd.Flags().BoolVarP(&f.random, "random", "r", false, "shuffle the playlist once at startup")
	cmd.Flags().IntVarP(&f.volume, "volume", "v", 50, "initial volume (0-100)")
	cmd.Flags().BoolVarP(&f.clean, "clean", "c", false, "suppress the help banner")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "write a debug log to quaver.log")
	return cmd
}

func run(path string, f flags, volumeSet bool) error {
	if f.debug || os.Getenv("DEBUG") != "" {
		logFile, err := os.OpenFile("quaver.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadOrCreate(config.Path())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	tracks, err := playlist.Discover(path)
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		fmt.Printf("%s: %v\n", path, playerrors.ErrEmptyPlaylist)
		return nil
	}

	level := cfg.DefaultVolume
	if volumeSet {
		level = float64(f.volume) / 100
		if level < 0 {
			level = 0
		}
		if level > 1 {
			level = 1
		}
	}

	pl := playlist.New(tracks, playlist.WithLoop(f.loop))
	if f.random {
		pl.Shuffle(rand.New(rand.NewSource(time.Now().UnixNano())))
	}

	sink, err := audio.NewSpeaker(sampleRate, level)
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	defer sink.Close()

	tty, err := ui.NewTerminal(ui.Options{
		Clean:    f.clean,
		Keys:     cfg.KeyBindings.Bindings(),
		AppTitle: fmt.Sprintf("%s v%s", appName, appVersion),
	})
	if err != nil {
		return fmt.Errorf("terminal setup: %w", err)
	}
	defer tty.Restore()

	// Ctrl-C normally arrives as a key in raw mode; signals still need to
	// release the terminal when they get through.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		tty.Restore()
		os.Exit(1)
	}()

	bus := events.NewBus()
	defer bus.Close()
	tty.WatchTitles(bus)
	go logEvents(bus.Subscribe())

	log.Printf("starting playback: %d tracks, loop=%v, shuffle=%v, volume=%.2f",
		pl.Len(), f.loop, f.random, level)

	p := player.New(pl, sink, tty.Input(), tty, bus)
	if err := p.Run(); err != nil {
		return err
	}

	tty.Restore()
	fmt.Println("Playback finished.")
	return nil
}

func logEvents(ch <-chan events.Event) {
	for ev := range ch {
		switch ev.Type {
		case events.TrackStarted:
			log.Printf("track %d started: %s - %s", ev.Index+1, ev.Title, ev.Artist)
		case events.TrackFailed:
			log.Printf("track %d failed (%s): %v", ev.Index+1, ev.Name, ev.Err)
		case events.Paused:
			log.Print("paused")
		case events.Resumed:
			log.Print("resumed")
		case events.VolumeChanged:
			log.Printf("volume %.0f%%", ev.Volume*100)
		case events.Finished:
			log.Print("playback finished")
		}
	}
}
