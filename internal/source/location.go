package source

import "fmt"

// Position represents a specific location in the source code with line, column, and index information.
type Position struct {
	Line   int // Line number in the source code.
	Column int // Column number in the source code.
	Index  int // Byte offset in the source code.
}

// Location represents a span of source code with start and end positions
type Location struct {
	Start    *Position
	End      *Position
	Filename *string
}

// NewLocation creates a new Location with the given start and end positions
func NewLocation(filename *string, start, end *Position) *Location {
	return &Location{
		Filename: filename,
		Start:    start,
		End:      end,
	}
}

// At builds a single-line span of the given width. The parser uses it for
// identifiers; tests use it to pin positions without a lexer.
func At(filename string, line, column, width int) *Location {
	if width < 1 {
		width = 1
	}
	return &Location{
		Filename: &filename,
		Start:    &Position{Line: line, Column: column},
		End:      &Position{Line: line, Column: column + width},
	}
}

// Contains checks if the given position is within this location
func (l *Location) Contains(pos *Position) bool {
	if l.Start.Line > pos.Line || (l.Start.Line == pos.Line && l.Start.Column > pos.Column) {
		return false
	}
	if l.End.Line < pos.Line || (l.End.Line == pos.Line && l.End.Column < pos.Column) {
		return false
	}
	return true
}

// File returns the file name or "<unknown>".
func (l *Location) File() string {
	if l == nil || l.Filename == nil {
		return "<unknown>"
	}
	return *l.Filename
}

// Before reports whether l starts strictly before other.
func (l *Location) Before(other *Location) bool {
	if l == nil || l.Start == nil || other == nil || other.Start == nil {
		return false
	}
	if l.Start.Line != other.Start.Line {
		return l.Start.Line < other.Start.Line
	}
	return l.Start.Column < other.Start.Column
}

func (l *Location) String() string {
	if l == nil || l.Start == nil || l.End == nil {
		return "location(unknown)"
	}

	return fmt.Sprintf("location(%d:%d - %d:%d)", l.Start.Line, l.Start.Column, l.End.Line, l.End.Column)
}
