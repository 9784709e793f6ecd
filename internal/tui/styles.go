package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/xonecas/jot/internal/config"
)

var (
	ColorMatrix   = lipgloss.Color("#00AA00") // Matrix green
	ColorDarkGray = lipgloss.Color("#2a2a2a") // Dark gray
	ColorMuted    = lipgloss.Color("#9a9a9a")
	ColorError    = lipgloss.Color("#e06c75")
)

// Styles holds the rendered looks of the editor view.
type Styles struct {
	Selection  lipgloss.Style
	Cursor     lipgloss.Style
	StatusText lipgloss.Style
	StatusDim  lipgloss.Style
	Error      lipgloss.Style
}

// newStyles derives the styles from the UI configuration.
func newStyles(ui config.UIConfig) Styles {
	return Styles{
		Selection: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.SelectionFg)).
			Background(lipgloss.Color(ui.SelectionBg)),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ui.CursorFg)).
			Background(lipgloss.Color(ui.CursorBg)),
		StatusText: lipgloss.NewStyle().Foreground(ColorMatrix).Background(ColorDarkGray),
		StatusDim:  lipgloss.NewStyle().Foreground(ColorMuted).Background(ColorDarkGray),
		Error:      lipgloss.NewStyle().Foreground(ColorError).Background(ColorDarkGray),
	}
}
