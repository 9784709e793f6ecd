package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/xonecas/jot/internal/text"
)

type cellKind uint8

const (
	cellPlain cellKind = iota
	cellSelected
	cellCursor
)

// run is a stretch of display text sharing one look.
type run struct {
	kind cellKind
	text string
}

// lineLayout is one buffer line prepared for display: tabs expanded, cells
// grouped by look, and the display column of the cursor when it sits here.
type lineLayout struct {
	runs    []run
	cursorX int // -1 when the cursor is on another line
}

// layoutLine lays out buffer line i. selStart/selEnd is the active selection
// (hasSel false when there is none).
func (m Model) layoutLine(i int, hasSel bool, selStart, selEnd text.Position) lineLayout {
	line := m.ed.Line(i)
	cur := m.ed.Cursor()
	tabWidth := max(m.cfg.Editor.TabWidth, 1)

	// Byte range of this line covered by the selection. The end may be one
	// past the line when the line break itself is selected.
	selFrom, selTo := -1, -1
	if hasSel && i >= selStart.Line && i <= selEnd.Line {
		selFrom, selTo = 0, len(line)+1
		if i == selStart.Line {
			selFrom = selStart.Col - 1
		}
		if i == selEnd.Line {
			selTo = selEnd.Col - 1
		}
	}
	cursorOff := -1
	if i == cur.Line {
		cursorOff = max(cur.Col-1, 0)
	}

	ll := lineLayout{cursorX: -1}
	kindAt := func(off int) cellKind {
		switch {
		case off == cursorOff:
			return cellCursor
		case off >= selFrom && off < selTo:
			return cellSelected
		}
		return cellPlain
	}
	add := func(kind cellKind, s string) {
		if n := len(ll.runs); n > 0 && ll.runs[n-1].kind == kind && kind != cellCursor {
			ll.runs[n-1].text += s
			return
		}
		ll.runs = append(ll.runs, run{kind: kind, text: s})
	}

	x := 0
	for off, r := range line {
		cell := string(r)
		if r == '\t' {
			cell = strings.Repeat(" ", tabWidth-x%tabWidth)
		}
		kind := kindAt(off)
		if kind == cellCursor {
			ll.cursorX = x
		}
		add(kind, cell)
		x += ansi.StringWidth(cell)
	}

	// The cell past the last character shows the cursor or a selected break.
	if kind := kindAt(len(line)); kind != cellPlain {
		if kind == cellCursor {
			ll.cursorX = x
		}
		add(kind, " ")
	}
	return ll
}

// render styles the runs of a laid-out line.
func (m Model) render(ll lineLayout) string {
	var b strings.Builder
	for _, r := range ll.runs {
		switch r.kind {
		case cellCursor:
			b.WriteString(m.styles.Cursor.Render(r.text))
		case cellSelected:
			b.WriteString(m.styles.Selection.Render(r.text))
		default:
			b.WriteString(r.text)
		}
	}
	return b.String()
}

// renderEditorRows writes the visible buffer lines, scrolled horizontally so
// the cursor stays on screen, one row per line.
func (m Model) renderEditorRows(b *strings.Builder) {
	rows := m.contentHeight()
	first, last := m.ed.Visible()
	start, end, hasSel := m.ed.Selection()

	layouts := make([]lineLayout, 0, last-first)
	left := 0
	for i := first; i < last && len(layouts) < rows; i++ {
		ll := m.layoutLine(i, hasSel, start, end)
		if ll.cursorX >= m.width {
			left = ll.cursorX - m.width + 1
		}
		layouts = append(layouts, ll)
	}

	for row := range rows {
		if row < len(layouts) {
			b.WriteString(ansi.Cut(m.render(layouts[row]), left, left+m.width))
		}
		b.WriteByte('\n')
	}
}
