package editor

import (
	"strings"
	"unicode/utf8"
)

// Direction is a cursor motion.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	Home
	End
	PageUp
	PageDown
)

var directionNames = [...]string{"up", "down", "left", "right", "home", "end", "pgup", "pgdown"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// Modifier selects the motion variant. Shift variants extend the selection;
// ctrl variants move by word or line.
type Modifier uint8

const (
	NoMod Modifier = iota
	Shift
	Ctrl
	CtrlShift
)

// Move runs one motion. Plain and ctrl motions drop the selection; shift
// motions anchor one at the current cursor first.
func (e *Editor) Move(d Direction, mod Modifier) {
	if mod == Shift || mod == CtrlShift {
		e.StartSelection()
	} else {
		e.ClearSelection()
	}
	if mod == Ctrl || mod == CtrlShift {
		e.moveWord(d)
	} else {
		e.moveChar(d)
	}
	e.follow()
}

func (e *Editor) lastLine() int { return e.buf.Len() - 1 }

func (e *Editor) lineEnd(i int) int { return e.buf.LineLen(i) + 1 }

// moveChar handles plain arrows, home/end and paging.
func (e *Editor) moveChar(d Direction) {
	c := &e.cursor
	switch d {
	case Up:
		if c.Line > 0 {
			c.Line--
		}
	case Down:
		if c.Line < e.lastLine() {
			c.Line++
		}
	case Left:
		if c.Col > 1 {
			_, size := utf8.DecodeLastRuneInString(e.buf.Line(c.Line)[:c.Col-1])
			c.Col -= size
		} else if c.Line > 0 {
			c.Line--
			c.Col = e.lineEnd(c.Line)
		}
		return
	case Right:
		line := e.buf.Line(c.Line)
		if c.Col <= len(line) {
			_, size := utf8.DecodeRuneInString(line[c.Col-1:])
			c.Col += size
		} else if c.Line < e.lastLine() {
			c.Line++
			c.Col = 1
		}
		return
	case Home:
		c.Col = 1
		return
	case End:
		c.Col = e.lineEnd(c.Line)
		return
	case PageUp:
		c.Line = max(c.Line-max(e.height, 1), 0)
	case PageDown:
		c.Line = min(c.Line+max(e.height, 1), e.lastLine())
	}
	// Vertical motions keep the column where the target line allows.
	c.Col = snapCol(e.buf.Line(c.Line), min(c.Col, e.lineEnd(c.Line)))
}

// moveWord handles the ctrl variants. Left/right stop at the nearest word
// delimiter or the line boundary and wrap across lines from there; up/down
// go to the start of the neighbouring line, and home/end to the document
// boundaries.
func (e *Editor) moveWord(d Direction) {
	c := &e.cursor
	line := e.buf.Line(c.Line)
	switch d {
	case Up:
		if c.Line > 0 {
			c.Line--
		}
		c.Col = 1
	case Down:
		if c.Line < e.lastLine() {
			c.Line++
			c.Col = 1
		} else {
			c.Col = e.lineEnd(c.Line)
		}
	case Left:
		if c.Col <= 1 {
			if c.Line > 0 {
				c.Line--
				c.Col = e.lineEnd(c.Line)
			}
			return
		}
		if i := strings.LastIndexAny(line[:c.Col-1], e.delims); i >= 0 {
			c.Col = i + 1
		} else {
			c.Col = 1
		}
	case Right:
		i := -1
		if c.Col <= len(line) {
			i = strings.IndexAny(line[c.Col:], e.delims)
		}
		switch {
		case i >= 0:
			c.Col += i + 1
		case c.Col < e.lineEnd(c.Line):
			c.Col = e.lineEnd(c.Line)
		case c.Line < e.lastLine():
			c.Line++
			c.Col = 1
		}
	case Home, PageUp:
		c.Line, c.Col = 0, 1
	case End, PageDown:
		c.Line = e.lastLine()
		c.Col = e.lineEnd(c.Line)
	}
}

// snapCol moves a 1-indexed column back onto the start of a UTF-8 sequence.
func snapCol(line string, col int) int {
	for col > 1 && col <= len(line) && !utf8.RuneStart(line[col-1]) {
		col--
	}
	return col
}
