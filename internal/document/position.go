package document

import "fmt"

// Position is a zero-based line/character location in a document.
// Character counts runes, not bytes.
type Position struct {
	Line      int
	Character int
}

// Range is a half-open span between two positions.
type Range struct {
	Start Position
	End   Position
}

// String renders the position one-based for display (e.g., "3:15").
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Character+1)
}

// String renders the range one-based for display (e.g., "3:15-3:28").
func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Before reports whether p is strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Character < other.Character
}

// Contains reports whether the position falls inside the range.
// The start is inclusive, the end exclusive.
func (r Range) Contains(p Position) bool {
	if p.Before(r.Start) {
		return false
	}
	return p.Before(r.End)
}
