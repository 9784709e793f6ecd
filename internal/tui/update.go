package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/jot/internal/document"
	"github.com/xonecas/jot/internal/editor"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// -- Window resize -------------------------------------------------------
	case tea.WindowSizeMsg:
		m.handleResize(msg)

	// -- Bracketed paste -----------------------------------------------------
	case tea.PasteMsg:
		m.quitArmed = false
		m.ed.InsertText(msg.Content)

	// -- Keyboard ------------------------------------------------------------
	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleResize applies a window size change to the viewport.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	m.help.SetWidth(m.width)
	m.ed.SetHeight(m.contentHeight())
}

// handleKeyPress runs one key press through the editor and acts on what the
// editor could not do itself.
func (m Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		m.ed.SetHeight(m.contentHeight())
		return m, nil
	}

	ev, ok := m.keys.decodeKey(msg)
	if !ok {
		return m, nil
	}

	outcome := m.ed.Handle(ev)
	if outcome != editor.QuitRequested {
		m.quitArmed = false
	}

	switch outcome {
	case editor.QuitRequested:
		return m.handleQuit()
	case editor.SaveRequested:
		m.save()
	case editor.ClipboardChanged:
		m.setStatus(fmt.Sprintf("copied %d lines", len(m.ed.Clipboard())), false)
		return m, tea.SetClipboard(m.ed.ClipboardText())
	}
	return m, nil
}

// save writes the buffer to disk and reports the result in the status bar.
func (m *Model) save() bool {
	if m.path == "" {
		m.setStatus("no file name", true)
		return false
	}
	lines := m.ed.Lines()
	if err := document.Save(m.path, lines); err != nil {
		log.Warn().Err(err).Str("path", m.path).Msg("save failed")
		m.setStatus("save failed: "+err.Error(), true)
		return false
	}
	m.ed.MarkSaved()
	m.setStatus(fmt.Sprintf("wrote %d lines", len(lines)), false)
	return true
}

// handleQuit saves when configured to, remembers the cursor and quits. A
// buffer that could not be saved, or has unsaved changes with saving on quit
// turned off, needs a second quit request.
func (m Model) handleQuit() (tea.Model, tea.Cmd) {
	if m.ed.Modified() && !m.quitArmed {
		if m.cfg.Editor.SaveOnQuit {
			if !m.save() {
				m.quitArmed = true
				return m, nil
			}
		} else {
			m.quitArmed = true
			m.setStatus("unsaved changes, ctrl+q again to quit", true)
			return m, nil
		}
	}

	if m.cfg.Editor.RememberCursor && m.path != "" {
		// The start of the document is where a file opens anyway.
		if c := m.ed.Cursor(); c.Line == 0 && c.Col <= 1 {
			m.cursors.Forget(m.path)
		} else {
			m.cursors.Remember(m.path, c)
		}
	}
	log.Info().Str("path", m.path).Bool("modified", m.ed.Modified()).Msg("quit")
	return m, tea.Quit
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}
