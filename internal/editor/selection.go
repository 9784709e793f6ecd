package editor

import (
	"slices"
	"strings"

	"github.com/xonecas/jot/internal/text"
)

// ---------------------------------------------------------------------------
// Selection and clipboard
// ---------------------------------------------------------------------------

// StartSelection anchors a selection at the cursor unless one is active.
func (e *Editor) StartSelection() {
	if e.selecting {
		return
	}
	e.selecting = true
	e.anchor = e.cursor
}

// ClearSelection drops the selection anchor.
func (e *Editor) ClearSelection() { e.selecting = false }

// HasSelection reports whether a selection anchor is set.
func (e *Editor) HasSelection() bool { return e.selecting }

// Selection returns the active range [start, end) in document order.
func (e *Editor) Selection() (start, end text.Position, ok bool) {
	if !e.selecting {
		return text.Position{}, text.Position{}, false
	}
	start, end = text.Ordered(e.anchor, e.cursor)
	return start, end, true
}

// Copy stores the selected text in the clipboard in action payload shape.
// It reports false, leaving the clipboard alone, when nothing is selected.
func (e *Editor) Copy() bool {
	start, end, ok := e.Selection()
	if !ok || start == end {
		return false
	}
	e.clipboard = e.buf.Slice(start, end)
	return true
}

// Cut copies the selection and deletes it as one undoable action.
func (e *Editor) Cut() bool {
	if !e.Copy() {
		return false
	}
	start, _, _ := e.Selection()
	e.Perform(text.NewDelete(start, e.clipboard))
	return true
}

// Paste inserts the clipboard at the cursor as one undoable action.
func (e *Editor) Paste() {
	if isEmptyPayload(e.clipboard) {
		return
	}
	e.Perform(text.NewInsert(e.cursor, e.clipboard))
}

// Clipboard returns a copy of the clipboard payload.
func (e *Editor) Clipboard() []string { return slices.Clone(e.clipboard) }

// ClipboardText returns the clipboard joined with "\n".
func (e *Editor) ClipboardText() string { return strings.Join(e.clipboard, "\n") }

func isEmptyPayload(p []string) bool {
	return len(p) == 0 || (len(p) == 1 && p[0] == "")
}
