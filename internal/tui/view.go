package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	v.WindowTitle = "jot " + m.name()
	return v
}

// renderContent produces the string content for the view.
func (m Model) renderContent() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	m.renderEditorRows(&b)
	if m.showHelp {
		b.WriteString(m.help.View(m.keys))
		b.WriteByte('\n')
	}
	if m.cfg.UI.ShowStatus {
		m.renderStatusBar(&b)
	}
	return strings.TrimSuffix(b.String(), "\n")
}
