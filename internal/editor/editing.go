package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/xonecas/jot/internal/text"
)

// ---------------------------------------------------------------------------
// Editing operations
// ---------------------------------------------------------------------------

// InsertText inserts s at the cursor as a single Insert. Newlines split the
// payload into lines; carriage returns are dropped.
func (e *Editor) InsertText(s string) {
	s = strings.ReplaceAll(s, "\r", "")
	payload := strings.Split(s, "\n")
	if isEmptyPayload(payload) {
		return
	}
	e.Perform(text.NewInsert(e.cursor, payload))
}

// Enter splits the line at the cursor.
func (e *Editor) Enter() {
	e.Perform(text.NewInsert(e.cursor, []string{"", ""}))
}

// Backspace deletes the character before the cursor. At column 1 it joins
// the line onto the previous one; at the very start it does nothing.
func (e *Editor) Backspace() {
	c := e.cursor
	if c.Col <= 1 {
		if c.Line == 0 {
			e.selecting = false
			return
		}
		prev := c.Line - 1
		e.Perform(text.NewDelete(text.Position{Line: prev, Col: e.buf.LineLen(prev) + 1}, []string{"", ""}))
		return
	}
	before := e.buf.Line(c.Line)[:c.Col-1]
	_, size := utf8.DecodeLastRuneInString(before)
	e.Perform(text.NewDelete(text.Position{Line: c.Line, Col: c.Col - size}, []string{before[len(before)-size:]}))
}

// DeleteForward deletes the character under the cursor, joining the next
// line when the cursor is at the end of its line.
func (e *Editor) DeleteForward() {
	c := e.cursor
	line := e.buf.Line(c.Line)
	if c.Col > len(line) {
		if c.Line == e.buf.Len()-1 {
			e.selecting = false
			return
		}
		e.Perform(text.NewForwardDelete(c, []string{"", ""}))
		return
	}
	_, size := utf8.DecodeRuneInString(line[c.Col-1:])
	e.Perform(text.NewForwardDelete(c, []string{line[c.Col-1 : c.Col-1+size]}))
}
