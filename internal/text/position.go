package text

import "fmt"

// Position points into a Buffer. Line is 0-indexed; Col is 1-indexed, so
// Col 1 sits before the first byte of the line and Col len+1 after the last.
//
// An Action anchor may carry Col 0, which means the same thing as Col 1.
type Position struct {
	Line int
	Col  int
}

// Compare orders positions by line, then column.
func (p Position) Compare(q Position) int {
	switch {
	case p.Line < q.Line:
		return -1
	case p.Line > q.Line:
		return 1
	case p.Col < q.Col:
		return -1
	case p.Col > q.Col:
		return 1
	}
	return 0
}

// Less reports whether p comes before q.
func (p Position) Less(q Position) bool { return p.Compare(q) < 0 }

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }

// offset returns the byte offset into the line that p addresses.
func (p Position) offset() int {
	if p.Col <= 1 {
		return 0
	}
	return p.Col - 1
}

// normalized folds the "before column 1" spelling Col 0 into Col 1.
func (p Position) normalized() Position {
	if p.Col < 1 {
		p.Col = 1
	}
	return p
}

// Ordered returns a and b as a half-open range [start, end).
func Ordered(a, b Position) (start, end Position) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}
