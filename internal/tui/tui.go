// Package tui is the bubbletea front end of jot: it decodes key presses into
// editor events, renders the visible lines with the selection and cursor, and
// drives saving and quitting.
package tui

import (
	"path/filepath"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/xonecas/jot/internal/config"
	"github.com/xonecas/jot/internal/editor"
	"github.com/xonecas/jot/internal/store"
)

// statusRows is how many rows the status bar takes when shown.
const statusRows = 1

// helpRows is the height of the key help shown with ctrl+g.
const helpRows = 1

// Model is the application model
type Model struct {
	width  int
	height int

	ed      *editor.Editor
	path    string
	cfg     config.Config
	cursors *store.Cursors
	styles  Styles
	keys    KeyMap
	help    help.Model

	showHelp  bool
	status    string // last message shown in the status bar
	statusErr bool
	quitArmed bool // a second quit request leaves without saving
}

// Options carries what New needs besides the document itself.
type Options struct {
	Config  *config.Config
	Cursors *store.Cursors
	// Editor overrides the editor options derived from Config; tests use it
	// to inject a clock.
	Editor *editor.Options
}

// New creates a TUI model editing lines loaded from path.
func New(path string, lines []string, opts Options) Model {
	cfg := config.Defaults()
	if opts.Config != nil {
		cfg = opts.Config
	}

	edOpts := editor.Options{
		MergeWindow:    cfg.Editor.MergeWindow(),
		WordDelimiters: cfg.Editor.WordDelimiters,
	}
	if opts.Editor != nil {
		edOpts = *opts.Editor
	}
	ed := editor.New(lines, edOpts)

	if cfg.Editor.RememberCursor {
		if p, ok := opts.Cursors.Recall(path); ok {
			ed.SetCursor(p)
		}
	}

	return Model{
		ed:      ed,
		path:    path,
		cfg:     *cfg,
		cursors: opts.Cursors,
		styles:  newStyles(cfg.UI),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init initializes the TUI (required by BubbleTea)
func (m Model) Init() tea.Cmd {
	return nil
}

// Editor returns the wrapped editor.
func (m Model) Editor() *editor.Editor { return m.ed }

// name is the file name shown in the status bar.
func (m Model) name() string {
	if m.path == "" {
		return "[no name]"
	}
	return filepath.Base(m.path)
}

// contentHeight is the number of text rows above the status bar.
func (m Model) contentHeight() int {
	h := m.height
	if m.cfg.UI.ShowStatus {
		h -= statusRows
	}
	if m.showHelp {
		h -= helpRows
	}
	return max(h, 0)
}
