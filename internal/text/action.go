package text

import (
	"fmt"
	"slices"
)

// Kind tags an Action as an insertion or a deletion.
type Kind uint8

const (
	Insert Kind = iota
	Delete
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Action is a reversible edit. Payload has one element for text within a
// line; with two or more elements the span crosses line breaks: the first
// element is the anchor line's suffix, the last is the prefix of the final
// line, and anything between is whole lines.
type Action struct {
	Kind    Kind
	Anchor  Position
	Payload []string
	// Forward marks an edit made ahead of a cursor that stays at the
	// anchor, such as the delete key. Applying it, or its reverse, leaves
	// the cursor at the anchor. Forward actions never merge.
	Forward bool
}

// NewInsert returns an Insert of payload at anchor. The payload is copied.
func NewInsert(anchor Position, payload []string) Action {
	return Action{Kind: Insert, Anchor: anchor, Payload: slices.Clone(payload)}
}

// NewDelete returns a Delete of payload at anchor. The payload is copied.
func NewDelete(anchor Position, payload []string) Action {
	return Action{Kind: Delete, Anchor: anchor, Payload: slices.Clone(payload)}
}

// NewForwardDelete is NewDelete for text after the cursor.
func NewForwardDelete(anchor Position, payload []string) Action {
	a := NewDelete(anchor, payload)
	a.Forward = true
	return a
}

// Apply mutates b and returns where the cursor belongs afterwards: the end
// of the inserted text for Insert (the anchor when Forward), the anchor for
// Delete. It panics with ErrInvariant when the action does not fit b.
func (a Action) Apply(b *Buffer) Position {
	switch a.Kind {
	case Insert:
		end := b.insert(a.Anchor, a.Payload)
		if a.Forward {
			return a.Anchor.normalized()
		}
		return end
	case Delete:
		return b.remove(a.Anchor, a.Payload)
	}
	violation("unknown action kind %d", a.Kind)
	return Position{}
}

// Reverse returns the inverse action. It does not touch any buffer.
func (a Action) Reverse() Action {
	r := Action{Anchor: a.Anchor, Payload: slices.Clone(a.Payload), Forward: a.Forward}
	if a.Kind == Insert {
		r.Kind = Delete
	} else {
		r.Kind = Insert
	}
	return r
}

// End returns the position just after the payload, measured from the
// anchor, without consulting a buffer.
func (a Action) End() Position {
	last := len(a.Payload) - 1
	if last < 1 {
		var n int
		if last == 0 {
			n = len(a.Payload[0])
		}
		return Position{Line: a.Anchor.Line, Col: a.Anchor.normalized().Col + n}
	}
	return Position{Line: a.Anchor.Line + last, Col: len(a.Payload[last]) + 1}
}

// Merge coalesces two consecutive actions of the same kind into one. An
// Insert absorbs next when next starts where prev ends; a Delete absorbs
// prev when next ends where prev starts, since deletions grow backwards.
func Merge(prev, next Action) (Action, bool) {
	if prev.Kind != next.Kind || prev.Forward || next.Forward ||
		len(prev.Payload) == 0 || len(next.Payload) == 0 {
		return Action{}, false
	}
	switch prev.Kind {
	case Insert:
		if prev.End() != next.Anchor.normalized() {
			return Action{}, false
		}
		return Action{Kind: Insert, Anchor: prev.Anchor, Payload: join(prev.Payload, next.Payload)}, true
	case Delete:
		if next.End() != prev.Anchor.normalized() {
			return Action{}, false
		}
		return Action{Kind: Delete, Anchor: next.Anchor, Payload: join(next.Payload, prev.Payload)}, true
	}
	return Action{}, false
}

// join appends tail's first element to head's last one and the rest of tail
// as separate lines.
func join(head, tail []string) []string {
	out := make([]string, 0, len(head)+len(tail)-1)
	out = append(out, head...)
	out[len(out)-1] += tail[0]
	return append(out, tail[1:]...)
}

func (a Action) String() string {
	return fmt.Sprintf("%s@%s%q", a.Kind, a.Anchor, a.Payload)
}
