package main

import (
	"context"
	"fmt"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/xonecas/jot/internal/config"
	"github.com/xonecas/jot/internal/document"
	"github.com/xonecas/jot/internal/logging"
	"github.com/xonecas/jot/internal/store"
	"github.com/xonecas/jot/internal/tui"
)

type flags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "jot [file]",
		Short:         "A small terminal text editor",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			s, err := prepare(path, f)
			if err != nil {
				return err
			}
			defer s.close()
			return s.run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "",
		"config file (default: ~/.config/jot/config.toml)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "",
		"log level: debug, info, warn or error (overrides config)")
	return cmd
}

// session is everything a run of the editor holds open.
type session struct {
	model   tui.Model
	cursors *store.Cursors
	cleanup []func()
}

// prepare loads configuration, starts logging, opens the cursor store and
// loads the document. Any failure here is a startup failure.
func prepare(path string, f flags) (*session, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	s := &session{}
	dataDir, err := config.EnsureDataDir()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	logPath := cfg.Log.File
	if logPath == "" {
		logPath = filepath.Join(dataDir, "jot.log")
	}
	closeLog, err := logging.Init(logPath, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	s.cleanup = append(s.cleanup, closeLog)

	lines := []string{""}
	if path != "" {
		if lines, err = document.Load(path); err != nil {
			s.close()
			return nil, err
		}
	}

	if cfg.Editor.RememberCursor {
		// A broken store only costs cursor memory.
		cursors, err := store.Open(filepath.Join(dataDir, "jot.db"), 0)
		if err != nil {
			log.Warn().Err(err).Msg("cursor store unavailable")
		} else {
			s.cursors = cursors
			s.cleanup = append(s.cleanup, func() { _ = cursors.Close() })
		}
	}

	s.model = tui.New(path, lines, tui.Options{Config: cfg, Cursors: s.cursors})
	log.Info().Str("path", path).Int("lines", len(lines)).Msg("opened")
	return s, nil
}

// run owns the terminal for the lifetime of the program; bubbletea restores
// it on every exit path.
func (s *session) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(s.model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func (s *session) close() {
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i]()
	}
	s.cleanup = nil
}
