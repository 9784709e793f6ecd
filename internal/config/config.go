// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/xonecas/jot/internal/logging"
)

// Config is the root configuration structure.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	UI     UIConfig     `toml:"ui"`
	Log    LogConfig    `toml:"log"`
}

// EditorConfig holds editing behaviour.
type EditorConfig struct {
	TabWidth       int    `toml:"tab_width"`
	MergeWindowMS  int    `toml:"merge_window_ms"`
	WordDelimiters string `toml:"word_delimiters"`
	SaveOnQuit     bool   `toml:"save_on_quit"`
	RememberCursor bool   `toml:"remember_cursor"`
}

// MergeWindow returns the undo coalescing window. Zero disables merging.
func (e EditorConfig) MergeWindow() time.Duration {
	if e.MergeWindowMS == 0 {
		return -1
	}
	return time.Duration(e.MergeWindowMS) * time.Millisecond
}

// UIConfig holds user-interface settings. Colors are anything lipgloss.Color
// accepts.
type UIConfig struct {
	ShowStatus  bool   `toml:"show_status"`
	SelectionFg string `toml:"selection_fg"`
	SelectionBg string `toml:"selection_bg"`
	CursorFg    string `toml:"cursor_fg"`
	CursorBg    string `toml:"cursor_bg"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	// File defaults to jot.log in the data directory if unset.
	File string `toml:"file"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth:       4,
			MergeWindowMS:  500,
			WordDelimiters: " \t()[]{}",
			SaveOnQuit:     true,
			RememberCursor: true,
		},
		UI: UIConfig{
			ShowStatus:  true,
			SelectionFg: "#000000",
			SelectionBg: "#7aa2f7",
			CursorFg:    "#000000",
			CursorBg:    "#00AA00",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads configuration from a TOML file over the defaults and applies
// environment variable overrides. An empty path means the default location,
// where a missing file is fine; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		errs = append(errs, fmt.Errorf("editor.tab_width=%d must be between 1 and 16", c.Editor.TabWidth))
	}
	if c.Editor.MergeWindowMS < 0 {
		errs = append(errs, fmt.Errorf("editor.merge_window_ms=%d must not be negative", c.Editor.MergeWindowMS))
	}
	if c.Editor.WordDelimiters == "" {
		errs = append(errs, errors.New("editor.word_delimiters must not be empty"))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level=%q is not a known level", c.Log.Level))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) error {
	var errs []error
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"JOT_LOG_LEVEL", func(v string) {
			if v != "" {
				cfg.Log.Level = v
			}
		}},
		{"JOT_MERGE_WINDOW_MS", func(v string) {
			if v == "" {
				return
			}
			ms, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("JOT_MERGE_WINDOW_MS=%q: %w", v, err))
				return
			}
			cfg.Editor.MergeWindowMS = ms
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
	return errors.Join(errs...)
}

// DefaultPath returns ~/.config/jot/config.toml.
func DefaultPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DataDir returns the path to the jot data directory (~/.config/jot).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "jot"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}
