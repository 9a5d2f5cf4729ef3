package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quaverplay/quaver/api"
)

// Config holds application configuration
type Config struct {
	DefaultVolume float64 `json:"default_volume"`
	KeyBindings   KeyMap  `json:"key_bindings"`
}

// KeyMap defines keyboard shortcuts as single characters. Arrow keys and
// Ctrl-C are always bound and not configurable.
type KeyMap struct {
	Pause      string `json:"pause"`
	Resume     string `json:"resume"`
	Next       string `json:"next"`
	Previous   string `json:"previous"`
	VolumeUp   string `json:"volume_up"`
	VolumeDown string `json:"volume_down"`
	Quit       string `json:"quit"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		DefaultVolume: 0.5,
		KeyBindings: KeyMap{
			Pause:      "p",
			Resume:     " ",
			Next:       "n",
			Previous:   "b",
			VolumeUp:   "+",
			VolumeDown: "-",
			Quit:       "q",
		},
	}
}

// Bindings resolves the key map into byte-to-event bindings. Letters bind
// both cases.
func (k KeyMap) Bindings() map[byte]api.KeyEvent {
	m := make(map[byte]api.KeyEvent)
	bind := func(s string, ev api.KeyEvent) {
		if len(s) != 1 {
			return
		}
		b := s[0]
		m[b] = ev
		if 'a' <= b && b <= 'z' {
			m[b-'a'+'A'] = ev
		}
	}
	bind(k.Pause, api.KeyPause)
	bind(k.Resume, api.KeyResume)
	bind(k.Next, api.KeyNext)
	bind(k.Previous, api.KeyPrevious)
	bind(k.VolumeUp, api.KeyVolumeUp)
	bind(k.VolumeDown, api.KeyVolumeDown)
	bind(k.Quit, api.KeyQuit)
	return m
}

// Load reads and unmarshals configuration from file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// Save marshals and saves configuration to file
func Save(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadOrCreate loads config from path or creates default if not exists
func LoadOrCreate(path string) (*Config, error) {
	config, err := Load(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(config, path); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return config, nil
}

// Path returns the config file path, honoring the QUAVER_CONFIG environment
// variable and XDG conventions.
func Path() string {
	if path := os.Getenv("QUAVER_CONFIG"); path != "" {
		return path
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "quaver", "config.json")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}

	return filepath.Join(home, ".config", "quaver", "config.json")
}
