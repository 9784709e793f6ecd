package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// renderStatusBar writes the status bar: file name and modified marker on
// the left; last message, undo depth and cursor position on the right.
func (m Model) renderStatusBar(b *strings.Builder) {
	// -- Left segments --
	name := " " + m.name()
	if m.ed.Modified() {
		name += " [+]"
	}
	left := m.styles.StatusText.Render(name)

	// -- Right segments --
	var rightParts []string
	if m.status != "" {
		sty := m.styles.StatusDim
		if m.statusErr {
			sty = m.styles.Error
		}
		rightParts = append(rightParts, sty.Render(m.status))
	}
	undo, _ := m.ed.History().Depth()
	rightParts = append(rightParts, m.styles.StatusDim.Render(fmt.Sprintf("undo %d", undo)))
	cur := m.ed.Cursor()
	rightParts = append(rightParts, m.styles.StatusText.Render(fmt.Sprintf("%d:%d", cur.Line+1, cur.Col)))
	right := strings.Join(rightParts, m.styles.StatusDim.Render("  "))

	// -- Compose: left + gap + right + trailing space --
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	bar := left + m.styles.StatusDim.Render(strings.Repeat(" ", gap)) + right + m.styles.StatusDim.Render(" ")
	if lipgloss.Width(bar) > m.width {
		bar = ansi.Truncate(bar, m.width, "…")
	}
	b.WriteString(bar)
}
