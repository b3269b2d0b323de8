// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the window and loop settings from a TOML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"

	"gioui.org/bootstrap/internal/logging"
)

// Environment variables consulted by Path and Load.
const (
	EnvConfig      = "BOOTSTRAP_CONFIG"
	EnvLogLevel    = "BOOTSTRAP_LOG_LEVEL"
	EnvControlFlow = "BOOTSTRAP_CONTROL_FLOW"
	EnvTitle       = "BOOTSTRAP_TITLE"
)

// DefaultPollTimeout bounds a single Android poll.
const DefaultPollTimeout = 500 * time.Millisecond

// Config holds the bootstrap settings.
type Config struct {
	Title string
	// Width and Height are the window size hint in device independent pixels.
	Width  int
	Height int
	// ControlFlow is "poll" or "wait".
	ControlFlow string
	LogLevel    string
	// Background is a colour name known to golang.org/x/image/colornames.
	Background string
	Android    Android
}

// Android holds settings of the Android activity adapter.
type Android struct {
	PollTimeout time.Duration
}

type fileConfig struct {
	Title       string `toml:"title"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	ControlFlow string `toml:"control_flow"`
	LogLevel    string `toml:"log_level"`
	Background  string `toml:"background"`
	Android     struct {
		PollTimeout string `toml:"poll_timeout"`
	} `toml:"android"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title:       "Bootstrap",
		Width:       800,
		Height:      600,
		ControlFlow: "poll",
		LogLevel:    "debug",
		Background:  "black",
		Android: Android{
			PollTimeout: DefaultPollTimeout,
		},
	}
}

// Path returns the configuration file location: $BOOTSTRAP_CONFIG if set,
// otherwise bootstrap/config.toml in the user configuration directory. Path
// returns the empty string when neither is available.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "bootstrap", "config.toml")
}

// Load overlays the file at path on the defaults and applies environment
// overrides. A missing file or an empty path is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := overlayFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func overlayFile(cfg *Config, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if meta.IsDefined("title") {
		cfg.Title = raw.Title
	}
	if meta.IsDefined("width") {
		cfg.Width = raw.Width
	}
	if meta.IsDefined("height") {
		cfg.Height = raw.Height
	}
	if meta.IsDefined("control_flow") {
		cfg.ControlFlow = raw.ControlFlow
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = raw.LogLevel
	}
	if meta.IsDefined("background") {
		cfg.Background = raw.Background
	}
	if meta.IsDefined("android", "poll_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Android.PollTimeout))
		if err != nil {
			return fmt.Errorf("parse android.poll_timeout: %w", err)
		}
		cfg.Android.PollTimeout = d
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvControlFlow)); v != "" {
		cfg.ControlFlow = v
	}
	if v := os.Getenv(EnvTitle); v != "" {
		cfg.Title = v
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", c.Width, c.Height)
	}
	switch strings.ToLower(strings.TrimSpace(c.ControlFlow)) {
	case "poll", "wait":
	default:
		return fmt.Errorf("config: unknown control_flow %q", c.ControlFlow)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	if _, ok := colornames.Map[strings.ToLower(c.Background)]; !ok {
		return fmt.Errorf("config: unknown background colour %q", c.Background)
	}
	if c.Android.PollTimeout <= 0 {
		return fmt.Errorf("config: android.poll_timeout must be positive, got %v", c.Android.PollTimeout)
	}
	return nil
}

// BackgroundColor returns the background as an opaque colour.
func (c Config) BackgroundColor() color.NRGBA {
	rgba := colornames.Map[strings.ToLower(c.Background)]
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: 0xff}
}
