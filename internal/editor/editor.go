// Package editor is the orchestrator of the edit engine. It owns the line
// buffer, the undo history, the cursor, the selection anchor, the clipboard
// and the viewport offset, and turns abstract key events into cursor motions
// or reversible actions.
package editor

import (
	"time"

	"github.com/xonecas/jot/internal/history"
	"github.com/xonecas/jot/internal/text"
)

// DefaultWordDelimiters separate words for ctrl+arrow motions.
const DefaultWordDelimiters = " \t()[]{}"

// Options configures an Editor. Zero values pick the defaults.
type Options struct {
	// MergeWindow is the longest pause between two edits that still lets
	// them share an undo unit. Negative disables merging.
	MergeWindow time.Duration
	// WordDelimiters are the bytes ctrl+arrow motions stop at.
	WordDelimiters string
	// Clock is a monotonic time source; nil means time.Now.
	Clock func() time.Time
}

// Editor is single-threaded: every method runs on the event loop.
type Editor struct {
	buf  *text.Buffer
	hist *history.History

	cursor    text.Position
	anchor    text.Position
	selecting bool
	clipboard []string

	offset int // first visible line
	height int // visible lines; 0 means unknown

	delims  string
	version int // bumped on every buffer mutation
	saved   int // version at load or last save
}

// New returns an Editor over lines with the cursor at the start.
func New(lines []string, opts Options) *Editor {
	window := opts.MergeWindow
	if window == 0 {
		window = history.DefaultMergeWindow
	}
	delims := opts.WordDelimiters
	if delims == "" {
		delims = DefaultWordDelimiters
	}
	return &Editor{
		buf:    text.NewBuffer(lines),
		hist:   history.New(window, opts.Clock),
		cursor: text.Position{Line: 0, Col: 1},
		delims: delims,
	}
}

// ---------------------------------------------------------------------------
// Read access for renderers and persistence
// ---------------------------------------------------------------------------

func (e *Editor) Lines() []string       { return e.buf.Lines() }
func (e *Editor) Line(i int) string     { return e.buf.Line(i) }
func (e *Editor) LineCount() int        { return e.buf.Len() }
func (e *Editor) Cursor() text.Position { return e.cursor }
func (e *Editor) Offset() int           { return e.offset }

// History exposes the undo/redo stacks for status display.
func (e *Editor) History() *history.History { return e.hist }

// Modified reports whether the buffer changed since load or MarkSaved.
func (e *Editor) Modified() bool { return e.version != e.saved }

// MarkSaved records the current buffer as the persisted one.
func (e *Editor) MarkSaved() { e.saved = e.version }

// SetCursor moves the cursor to p clamped into the buffer. It clears the
// selection.
func (e *Editor) SetCursor(p text.Position) {
	e.selecting = false
	e.cursor = e.buf.Clamp(p)
	e.cursor.Col = snapCol(e.buf.Line(e.cursor.Line), e.cursor.Col)
	e.follow()
}

// ---------------------------------------------------------------------------
// Actions and history
// ---------------------------------------------------------------------------

// Perform applies a new edit, moves the cursor to where it ends and hands it
// to the history, which may merge it into the previous undo unit. Any
// selection is dropped and the redo stack is cleared.
func (e *Editor) Perform(a text.Action) {
	e.selecting = false
	e.cursor = a.Apply(e.buf)
	e.hist.Record(a)
	e.version++
	e.follow()
}

// Undo reverts the newest undo unit. Nothing to undo is a no-op.
func (e *Editor) Undo() {
	if p, ok := e.hist.Undo(e.buf); ok {
		e.moved(p)
	}
}

// Redo reapplies the newest undone unit. Nothing to redo is a no-op.
func (e *Editor) Redo() {
	if p, ok := e.hist.Redo(e.buf); ok {
		e.moved(p)
	}
}

func (e *Editor) moved(p text.Position) {
	e.selecting = false
	e.cursor = p
	e.version++
	e.follow()
}

// ---------------------------------------------------------------------------
// Viewport
// ---------------------------------------------------------------------------

// SetHeight sets how many lines the viewport shows.
func (e *Editor) SetHeight(h int) {
	e.height = max(h, 0)
	e.follow()
}

// Height returns the viewport height.
func (e *Editor) Height() int { return e.height }

// Visible returns the half-open range of line indexes in the viewport.
func (e *Editor) Visible() (first, last int) {
	if e.height == 0 {
		return e.offset, e.buf.Len()
	}
	return e.offset, min(e.offset+e.height, e.buf.Len())
}

// follow scrolls the viewport so the cursor line is visible.
func (e *Editor) follow() {
	if e.offset > e.buf.Len()-1 {
		e.offset = e.buf.Len() - 1
	}
	if e.height == 0 {
		return
	}
	if e.cursor.Line < e.offset {
		e.offset = e.cursor.Line
	}
	if e.cursor.Line >= e.offset+e.height {
		e.offset = e.cursor.Line - e.height + 1
	}
	e.offset = max(e.offset, 0)
}
