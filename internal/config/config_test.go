package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quaverplay/quaver/api"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DefaultVolume != 0.5 {
		t.Errorf("DefaultVolume = %v, want 0.5", cfg.DefaultVolume)
	}
	if cfg.KeyBindings.Pause != "p" || cfg.KeyBindings.Quit != "q" {
		t.Errorf("unexpected default key bindings: %+v", cfg.KeyBindings)
	}
}

func TestBindings(t *testing.T) {
	b := Default().KeyBindings.Bindings()

	tests := []struct {
		key  byte
		want api.KeyEvent
	}{
		{'p', api.KeyPause},
		{'P', api.KeyPause},
		{' ', api.KeyResume},
		{'q', api.KeyQuit},
		{'Q', api.KeyQuit},
		{'+', api.KeyVolumeUp},
		{'-', api.KeyVolumeDown},
	}
	for _, tt := range tests {
		if got := b[tt.key]; got != tt.want {
			t.Errorf("binding for %q = %v, want %v", tt.key, got, tt.want)
		}
	}

	if _, ok := b['x']; ok {
		t.Error("unbound key should not map to an event")
	}
}

func TestLoadMissingReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultVolume != Default().DefaultVolume {
		t.Errorf("missing config did not fall back to defaults: %+v", cfg)
	}
}

func TestLoadOrCreateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quaver", "config.json")

	created, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file was not created: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.DefaultVolume != created.DefaultVolume || loaded.KeyBindings != created.KeyBindings {
		t.Errorf("round trip changed config: %+v != %+v", loaded, created)
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load should fail on invalid JSON")
	}
}

func TestPathEnvOverride(t *testing.T) {
	t.Setenv("QUAVER_CONFIG", "/tmp/custom.json")
	if got := Path(); got != "/tmp/custom.json" {
		t.Errorf("Path() = %q, want env override", got)
	}
}

func TestPathXDG(t *testing.T) {
	t.Setenv("QUAVER_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	want := filepath.Join("/xdg", "quaver", "config.json")
	if got := Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
