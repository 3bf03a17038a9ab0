package document

import "strings"

// Document is an open config file held in memory. Version starts at 1 and
// increments on every content replacement.
type Document struct {
	Path    string
	Content string
	Version int
}

// lines splits the content on '\n'. Line terminators are not part of the
// returned lines.
func (d *Document) lines() []string {
	return strings.Split(d.Content, "\n")
}

// LineCount returns the number of lines in the document. An empty document
// has one (empty) line.
func (d *Document) LineCount() int {
	return strings.Count(d.Content, "\n") + 1
}

// PositionAt converts a byte offset into a line/character position.
// Offsets outside the content are clamped to the document bounds.
func (d *Document) PositionAt(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.Content) {
		offset = len(d.Content)
	}

	line := 0
	lineStart := 0
	for i := 0; i < offset; i++ {
		if d.Content[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	char := len([]rune(d.Content[lineStart:offset]))
	return Position{Line: line, Character: char}
}

// OffsetAt converts a position into a byte offset. Positions beyond the end
// of a line or the end of the document are clamped.
func (d *Document) OffsetAt(p Position) int {
	if p.Line < 0 {
		return 0
	}
	lines := d.lines()
	if p.Line >= len(lines) {
		return len(d.Content)
	}

	offset := 0
	for i := 0; i < p.Line; i++ {
		offset += len(lines[i]) + 1 // +1 for the '\n'
	}

	runes := []rune(lines[p.Line])
	char := p.Character
	if char < 0 {
		char = 0
	}
	if char > len(runes) {
		char = len(runes)
	}
	return offset + len(string(runes[:char]))
}
