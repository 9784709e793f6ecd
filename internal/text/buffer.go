// Package text holds the edit engine's data model: positions, the line
// buffer, and the reversible Insert/Delete actions that mutate it.
package text

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvariant is the panic value wrapped when an action does not fit the
// buffer it is applied to. It signals a bug in the caller, not bad input.
var ErrInvariant = errors.New("text: invariant violation")

func violation(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...)))
}

// Buffer is an ordered sequence of lines. It always holds at least one line.
type Buffer struct {
	lines []string
}

// NewBuffer copies lines into a new Buffer. No lines yields one empty line.
func NewBuffer(lines []string) *Buffer {
	if len(lines) == 0 {
		return &Buffer{lines: []string{""}}
	}
	return &Buffer{lines: slices.Clone(lines)}
}

// Len returns the number of lines.
func (b *Buffer) Len() int { return len(b.lines) }

// Line returns line i.
func (b *Buffer) Line(i int) string { return b.lines[i] }

// LineLen returns the byte length of line i.
func (b *Buffer) LineLen(i int) int { return len(b.lines[i]) }

// Lines returns a copy of every line.
func (b *Buffer) Lines() []string { return slices.Clone(b.lines) }

// Text joins the lines with "\n".
func (b *Buffer) Text() string { return strings.Join(b.lines, "\n") }

// Clamp moves p inside the buffer: Line into [0, Len), Col into [1, len+1].
func (b *Buffer) Clamp(p Position) Position {
	p.Line = max(0, min(p.Line, len(b.lines)-1))
	p.Col = max(1, min(p.Col, len(b.lines[p.Line])+1))
	return p
}

// Slice returns the text in [start, end) in payload shape: one element when
// both ends share a line, otherwise the start line's suffix, whole interior
// lines and the end line's prefix.
func (b *Buffer) Slice(start, end Position) []string {
	start, end = Ordered(b.Clamp(start), b.Clamp(end))
	first := b.lines[start.Line]
	if start.Line == end.Line {
		return []string{first[start.offset():end.offset()]}
	}
	out := make([]string, 0, end.Line-start.Line+1)
	out = append(out, first[start.offset():])
	out = append(out, b.lines[start.Line+1:end.Line]...)
	out = append(out, b.lines[end.Line][:end.offset()])
	return out
}

func (b *Buffer) checkAnchor(at Position, payload []string) {
	if len(payload) == 0 {
		violation("empty payload at %s", at)
	}
	if at.Line < 0 || at.Line >= len(b.lines) {
		violation("anchor line %d outside buffer of %d lines", at.Line, len(b.lines))
	}
	if at.Col < 0 || at.offset() > len(b.lines[at.Line]) {
		violation("anchor %s outside line of length %d", at, len(b.lines[at.Line]))
	}
}

// insert splices payload in at the anchor and returns the position just
// after the inserted text.
func (b *Buffer) insert(at Position, payload []string) Position {
	b.checkAnchor(at, payload)
	line := b.lines[at.Line]
	off := at.offset()

	if len(payload) == 1 {
		b.lines[at.Line] = line[:off] + payload[0] + line[off:]
		return Position{Line: at.Line, Col: off + len(payload[0]) + 1}
	}

	// The tail is cut before the anchor line changes; it ends up after the
	// last payload element.
	head, tail := line[:off], line[off:]
	last := len(payload) - 1
	added := make([]string, 0, last)
	added = append(added, payload[1:last]...)
	added = append(added, payload[last]+tail)

	b.lines[at.Line] = head + payload[0]
	b.lines = slices.Insert(b.lines, at.Line+1, added...)
	return Position{Line: at.Line + last, Col: len(payload[last]) + 1}
}

// remove takes out exactly the text insert(at, payload) would have added and
// returns the anchor.
func (b *Buffer) remove(at Position, payload []string) Position {
	b.checkAnchor(at, payload)
	line := b.lines[at.Line]
	off := at.offset()

	if len(payload) == 1 {
		end := off + len(payload[0])
		if end > len(line) || line[off:end] != payload[0] {
			violation("delete %q at %s does not match line %q", payload[0], at, line)
		}
		b.lines[at.Line] = line[:off] + line[end:]
		return at.normalized()
	}

	last := len(payload) - 1
	endLine := at.Line + last
	if endLine >= len(b.lines) {
		violation("delete of %d lines at %s runs past buffer end", len(payload), at)
	}
	if line[off:] != payload[0] {
		violation("delete %q at %s does not match line suffix %q", payload[0], at, line[off:])
	}
	for i := 1; i < last; i++ {
		if b.lines[at.Line+i] != payload[i] {
			violation("delete line %d: want %q, have %q", at.Line+i, payload[i], b.lines[at.Line+i])
		}
	}
	tailLine := b.lines[endLine]
	if !strings.HasPrefix(tailLine, payload[last]) {
		violation("delete %q does not prefix line %d %q", payload[last], endLine, tailLine)
	}

	b.lines[at.Line] = line[:off] + tailLine[len(payload[last]):]
	b.lines = slices.Delete(b.lines, at.Line+1, endLine+1)
	return at.normalized()
}
