package text

import (
	"errors"
	"slices"
	"testing"

	"pgregory.net/rapid"
)

func TestInsertApply(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		anchor  Position
		payload []string
		want    []string
		cursor  Position
	}{
		{"middle of line", []string{"hllo"}, Position{0, 2}, []string{"e"}, []string{"hello"}, Position{0, 3}},
		{"start via col 0", []string{"bc"}, Position{0, 0}, []string{"a"}, []string{"abc"}, Position{0, 2}},
		{"start via col 1", []string{"bc"}, Position{0, 1}, []string{"a"}, []string{"abc"}, Position{0, 2}},
		{"end of line", []string{"ab"}, Position{0, 3}, []string{"cd"}, []string{"abcd"}, Position{0, 5}},
		{"split line", []string{"hello world"}, Position{0, 6}, []string{"", ""}, []string{"hello", " world"}, Position{1, 1}},
		{"split at col 0", []string{"abc"}, Position{0, 0}, []string{"", ""}, []string{"", "abc"}, Position{1, 1}},
		{"split at end", []string{"abc", "d"}, Position{0, 4}, []string{"", ""}, []string{"abc", "", "d"}, Position{1, 1}},
		{
			"three lines keep suffix",
			[]string{"one TAIL", "two"},
			Position{0, 5},
			[]string{"a", "b", "c"},
			[]string{"one a", "b", "cTAIL", "two"},
			Position{2, 2},
		},
		{
			"many middle lines",
			[]string{"xy"},
			Position{0, 2},
			[]string{"1", "2", "3", "4", ""},
			[]string{"x1", "2", "3", "4", "y"},
			Position{4, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.lines)
			got := NewInsert(tt.anchor, tt.payload).Apply(b)
			if !slices.Equal(b.Lines(), tt.want) {
				t.Errorf("lines = %q, want %q", b.Lines(), tt.want)
			}
			if got != tt.cursor {
				t.Errorf("cursor = %v, want %v", got, tt.cursor)
			}
		})
	}
}

func TestDeleteApply(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		anchor  Position
		payload []string
		want    []string
		cursor  Position
	}{
		{"one char", []string{"abc"}, Position{0, 2}, []string{"b"}, []string{"ac"}, Position{0, 2}},
		{"join lines", []string{"abc", "def"}, Position{0, 4}, []string{"", ""}, []string{"abcdef"}, Position{0, 4}},
		{"col 0 same as col 1", []string{"abc"}, Position{0, 0}, []string{"ab"}, []string{"c"}, Position{0, 1}},
		{"col 0 multi line", []string{"abc", "def"}, Position{0, 0}, []string{"abc", "d"}, []string{"ef"}, Position{0, 1}},
		{
			"span with middle",
			[]string{"one a", "b", "cTAIL", "two"},
			Position{0, 5},
			[]string{"a", "b", "c"},
			[]string{"one TAIL", "two"},
			Position{0, 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.lines)
			got := NewDelete(tt.anchor, tt.payload).Apply(b)
			if !slices.Equal(b.Lines(), tt.want) {
				t.Errorf("lines = %q, want %q", b.Lines(), tt.want)
			}
			if got != tt.cursor {
				t.Errorf("cursor = %v, want %v", got, tt.cursor)
			}
		})
	}
}

func TestApplyPanicsOnBadAnchor(t *testing.T) {
	tests := []struct {
		name   string
		action Action
	}{
		{"line past end", NewInsert(Position{3, 1}, []string{"x"})},
		{"col past end", NewInsert(Position{0, 9}, []string{"x"})},
		{"negative line", NewDelete(Position{-1, 1}, []string{"x"})},
		{"payload mismatch", NewDelete(Position{0, 1}, []string{"zz"})},
		{"runs past end", NewDelete(Position{0, 1}, []string{"abc", "", ""})},
		{"empty payload", Action{Kind: Insert, Anchor: Position{0, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrInvariant) {
					t.Fatalf("recovered %v, want ErrInvariant", r)
				}
			}()
			tt.action.Apply(NewBuffer([]string{"abc"}))
		})
	}
}

func TestReverse(t *testing.T) {
	ins := NewInsert(Position{2, 3}, []string{"a", "b"})
	del := ins.Reverse()
	if del.Kind != Delete || del.Anchor != ins.Anchor || !slices.Equal(del.Payload, ins.Payload) {
		t.Fatalf("Reverse() = %v", del)
	}
	if back := del.Reverse(); back.Kind != Insert {
		t.Fatalf("Reverse().Reverse() kind = %v", back.Kind)
	}

	// Payloads are not shared between an action and its reverse.
	del.Payload[0] = "changed"
	if ins.Payload[0] != "a" {
		t.Fatalf("reverse aliases payload: %q", ins.Payload)
	}
}

func TestForwardDeleteKeepsCursorAtAnchor(t *testing.T) {
	b := NewBuffer([]string{"abc"})
	del := NewForwardDelete(Position{0, 2}, []string{"b"})
	if got := del.Apply(b); got != (Position{0, 2}) {
		t.Fatalf("Apply = %v, want 0:2", got)
	}
	rev := del.Reverse()
	if !rev.Forward {
		t.Fatal("Reverse dropped Forward")
	}
	if got := rev.Apply(b); got != (Position{0, 2}) {
		t.Fatalf("reverse Apply = %v, want 0:2", got)
	}
	if got := b.Lines(); !slices.Equal(got, []string{"abc"}) {
		t.Fatalf("lines = %q", got)
	}

	if _, ok := Merge(del, NewForwardDelete(Position{0, 2}, []string{"c"})); ok {
		t.Error("forward deletes merged")
	}
	if _, ok := Merge(del, NewDelete(Position{0, 1}, []string{"a"})); ok {
		t.Error("backspace merged into a forward delete")
	}
}

func TestEnd(t *testing.T) {
	tests := []struct {
		action Action
		want   Position
	}{
		{NewInsert(Position{0, 3}, []string{"abc"}), Position{0, 6}},
		{NewInsert(Position{0, 0}, []string{"abc"}), Position{0, 4}},
		{NewInsert(Position{4, 7}, []string{"", ""}), Position{5, 1}},
		{NewDelete(Position{1, 2}, []string{"x", "mid", "yz"}), Position{3, 3}},
	}
	for _, tt := range tests {
		if got := tt.action.End(); got != tt.want {
			t.Errorf("%v.End() = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestEndMatchesInsertCursor(t *testing.T) {
	b := NewBuffer([]string{"prefix suffix", "next"})
	a := NewInsert(Position{0, 8}, []string{"one", "two", "three"})
	if got := a.Apply(b); got != a.End() {
		t.Fatalf("Apply = %v, End = %v", got, a.End())
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name       string
		prev, next Action
		want       Action
		ok         bool
	}{
		{
			"adjacent inserts",
			NewInsert(Position{0, 1}, []string{"ab"}),
			NewInsert(Position{0, 3}, []string{"c"}),
			NewInsert(Position{0, 1}, []string{"abc"}),
			true,
		},
		{
			"insert then newline then text",
			NewInsert(Position{0, 1}, []string{"ab", ""}),
			NewInsert(Position{1, 1}, []string{"c"}),
			NewInsert(Position{0, 1}, []string{"ab", "c"}),
			true,
		},
		{
			"insert absorbs multi line",
			NewInsert(Position{0, 1}, []string{"ab"}),
			NewInsert(Position{0, 3}, []string{"c", "d"}),
			NewInsert(Position{0, 1}, []string{"abc", "d"}),
			true,
		},
		{
			"gap between inserts",
			NewInsert(Position{0, 1}, []string{"ab"}),
			NewInsert(Position{0, 4}, []string{"c"}),
			Action{},
			false,
		},
		{
			"backspaces",
			NewDelete(Position{0, 5}, []string{"e"}),
			NewDelete(Position{0, 4}, []string{"d"}),
			NewDelete(Position{0, 4}, []string{"de"}),
			true,
		},
		{
			"backspace over line break",
			NewDelete(Position{1, 1}, []string{"c"}),
			NewDelete(Position{0, 3}, []string{"", ""}),
			NewDelete(Position{0, 3}, []string{"", "c"}),
			true,
		},
		{
			"forward deletes do not chain",
			NewDelete(Position{0, 2}, []string{"x"}),
			NewDelete(Position{0, 2}, []string{"y"}),
			Action{},
			false,
		},
		{
			"different kinds",
			NewInsert(Position{0, 1}, []string{"a"}),
			NewDelete(Position{0, 2}, []string{"b"}),
			Action{},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Merge(tt.prev, tt.next)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if got.Kind != tt.want.Kind || got.Anchor != tt.want.Anchor || !slices.Equal(got.Payload, tt.want.Payload) {
				t.Errorf("Merge = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeDoesNotAliasInputs(t *testing.T) {
	prev := NewInsert(Position{0, 1}, []string{"a", "b"})
	next := NewInsert(Position{1, 2}, []string{"c"})
	merged, ok := Merge(prev, next)
	if !ok {
		t.Fatal("expected merge")
	}
	merged.Payload[1] = "zz"
	if prev.Payload[1] != "b" {
		t.Fatalf("merge mutated prev payload: %q", prev.Payload)
	}
}

func TestSlice(t *testing.T) {
	b := NewBuffer([]string{"one two", "mid", "three four"})
	tests := []struct {
		start, end Position
		want       []string
	}{
		{Position{0, 5}, Position{0, 8}, []string{"two"}},
		{Position{0, 5}, Position{2, 6}, []string{"two", "mid", "three"}},
		{Position{2, 6}, Position{0, 5}, []string{"two", "mid", "three"}},
		{Position{0, 8}, Position{1, 1}, []string{"", ""}},
	}
	for _, tt := range tests {
		if got := b.Slice(tt.start, tt.end); !slices.Equal(got, tt.want) {
			t.Errorf("Slice(%v, %v) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

// genBufferAndAnchor draws a non-empty buffer and a valid anchor inside it.
func genBufferAndAnchor(t *rapid.T) ([]string, Position) {
	lines := rapid.SliceOfN(rapid.StringMatching(`[a-z ()]{0,8}`), 1, 6).Draw(t, "lines")
	line := rapid.IntRange(0, len(lines)-1).Draw(t, "line")
	col := rapid.IntRange(0, len(lines[line])+1).Draw(t, "col")
	return lines, Position{Line: line, Col: col}
}

func TestProperty_InsertRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines, anchor := genBufferAndAnchor(t)
		payload := rapid.SliceOfN(rapid.StringMatching(`[a-z]{0,5}`), 1, 4).Draw(t, "payload")

		b := NewBuffer(lines)
		a := NewInsert(anchor, payload)
		end := a.Apply(b)
		if end != a.End() {
			t.Fatalf("Apply returned %v, End() = %v", end, a.End())
		}
		back := a.Reverse().Apply(b)
		if !slices.Equal(b.Lines(), lines) {
			t.Fatalf("round trip: got %q, want %q", b.Lines(), lines)
		}
		if back != anchor.normalized() {
			t.Fatalf("round trip cursor: got %v, want %v", back, anchor.normalized())
		}
	})
}

func TestProperty_DeleteRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines, start := genBufferAndAnchor(t)
		b := NewBuffer(lines)
		start = b.Clamp(start)
		endLine := rapid.IntRange(start.Line, len(lines)-1).Draw(t, "endLine")
		minCol := 1
		if endLine == start.Line {
			minCol = start.Col
		}
		end := Position{Line: endLine, Col: rapid.IntRange(minCol, len(lines[endLine])+1).Draw(t, "endCol")}

		a := NewDelete(start, b.Slice(start, end))
		if got := a.Apply(b); got != start {
			t.Fatalf("delete cursor = %v, want %v", got, start)
		}
		if got := a.Reverse().Apply(b); got != end {
			t.Fatalf("reinsert cursor = %v, want %v", got, end)
		}
		if !slices.Equal(b.Lines(), lines) {
			t.Fatalf("round trip: got %q, want %q", b.Lines(), lines)
		}
	})
}
