// Package history keeps the undo and redo stacks of text actions and decides
// when a new action coalesces into the previous undo unit.
package history

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/xonecas/jot/internal/text"
)

// DefaultMergeWindow is how close two edits must be in time to share an
// undo unit.
const DefaultMergeWindow = 500 * time.Millisecond

// History owns two stacks of actions. Each stack holds actions whose forward
// application produces that direction's effect, so undo and redo both just
// pop, reverse and apply.
type History struct {
	undo []text.Action
	redo []text.Action

	window time.Duration
	now    func() time.Time
	last   time.Time // time of the last recorded edit; zero breaks the chain
}

// New returns an empty History. A nil clock means time.Now; a negative
// window disables merging.
func New(window time.Duration, now func() time.Time) *History {
	if now == nil {
		now = time.Now
	}
	return &History{window: window, now: now}
}

// Record pushes an action that has already been applied. The redo stack is
// dropped. When the previous edit happened inside the merge window and the
// two actions are adjacent, they become one undo unit.
func (h *History) Record(a text.Action) {
	h.redo = nil

	t := h.now()
	elapsed := t.Sub(h.last)
	chained := !h.last.IsZero() && elapsed >= 0 && elapsed < h.window
	h.last = t

	if prev, ok := h.top(); chained && ok {
		if merged, ok := text.Merge(prev, a); ok {
			log.Debug().Stringer("action", merged).Dur("elapsed", elapsed).Msg("merged edit")
			h.undo[len(h.undo)-1] = merged
			return
		}
	}
	h.undo = append(h.undo, a)
}

// Undo reverts the newest undo unit on b and returns the cursor it leaves.
// It reports false and does nothing when there is nothing to undo.
func (h *History) Undo(b *text.Buffer) (text.Position, bool) {
	var ok bool
	var p text.Position
	h.undo, h.redo, p, ok = step(h.undo, h.redo, b)
	if ok {
		h.last = time.Time{}
	}
	return p, ok
}

// Redo reapplies the newest undone unit. It is the mirror of Undo.
func (h *History) Redo(b *text.Buffer) (text.Position, bool) {
	var ok bool
	var p text.Position
	h.redo, h.undo, p, ok = step(h.redo, h.undo, b)
	if ok {
		h.last = time.Time{}
	}
	return p, ok
}

// step pops from, applies the reverse to b and pushes that reverse onto to.
func step(from, to []text.Action, b *text.Buffer) ([]text.Action, []text.Action, text.Position, bool) {
	if len(from) == 0 {
		return from, to, text.Position{}, false
	}
	top := from[len(from)-1]
	from = from[:len(from)-1]
	rev := top.Reverse()
	p := rev.Apply(b)
	log.Debug().Stringer("action", rev).Msg("history step")
	return from, append(to, rev), p, true
}

// CanUndo reports whether Undo would do anything.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would do anything.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Depth returns the sizes of the undo and redo stacks.
func (h *History) Depth() (undo, redo int) { return len(h.undo), len(h.redo) }

// top returns the newest undo unit.
func (h *History) top() (text.Action, bool) {
	if len(h.undo) == 0 {
		return text.Action{}, false
	}
	return h.undo[len(h.undo)-1], true
}
