// Package logging points the global zerolog logger at a file, since the
// terminal belongs to the TUI while the editor runs.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLevel maps a config level name to a zerolog level. Empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

// Init opens path for appending and installs it as the global logger at the
// given level. The returned cleanup closes the file.
func Init(path, level string) (func(), error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G304: path comes from config
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Use(f, lvl)
	return func() { _ = f.Close() }, nil
}

// Use installs w as the global logger output.
func Use(w io.Writer, lvl zerolog.Level) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
