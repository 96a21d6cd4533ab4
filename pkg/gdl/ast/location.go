package ast

import "fmt"

// Location identifies a position in a game description source text. It is
// carried by parse errors for precise reporting; AST nodes themselves do not
// store locations, so structurally equal trees stay equal regardless of where
// they were parsed from.
type Location struct {
	File   string // Source file path, empty for in-memory input
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
	Offset int    // Byte offset from the start of the input (0-based)
}

// String returns a human-readable "file:line:column" form.
func (l Location) String() string {
	file := l.File
	if file == "" {
		file = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d", file, l.Line, l.Column)
}

// IsValid returns true if the location carries real position information.
func (l Location) IsValid() bool {
	return l.Line > 0
}
