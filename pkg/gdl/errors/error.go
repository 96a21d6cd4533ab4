package errors

import (
	"fmt"
	"strings"

	"github.com/gsingh93/gdl-parser/pkg/gdl/ast"
)

// ErrorType categorizes the kind of error encountered while reading a game
// description.
type ErrorType string

const (
	ErrorTypeSyntax ErrorType = "syntax" // Input does not match the GDL grammar
	ErrorTypeIO     ErrorType = "io"     // File could not be read
)

// Error is a rich parse error carrying the offending location, the
// surrounding source, and an optional suggested fix. Parsing is
// all-or-nothing: a single Error is returned for the first grammar mismatch
// and no partial AST is produced.
type Error struct {
	Type       ErrorType    // Category of error
	Message    string       // Error message
	Location   ast.Location // Offending position
	Token      string       // The offending token, if any
	Context    string       // Surrounding source line(s) with a column marker
	Suggestion string       // Suggested fix (optional)
}

// Error implements the error interface, formatting the message with location
// and context.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s", e.Type, e.Message))
	if e.Token != "" {
		sb.WriteString(fmt.Sprintf(" (at %q)", e.Token))
	}
	sb.WriteByte('\n')

	if e.Location.IsValid() {
		sb.WriteString(fmt.Sprintf("  --> %s\n", e.Location))
	}

	if e.Context != "" {
		sb.WriteString("  |\n")
		sb.WriteString(e.Context)
		sb.WriteString("  |\n")
	}

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  = suggestion: %s\n", e.Suggestion))
	}

	return sb.String()
}

// NewSyntaxError creates a syntax error at the given location.
func NewSyntaxError(message string, location ast.Location) *Error {
	return &Error{
		Type:     ErrorTypeSyntax,
		Message:  message,
		Location: location,
	}
}

// NewIOError creates an I/O error for the given file.
func NewIOError(message string, file string) *Error {
	return &Error{
		Type:     ErrorTypeIO,
		Message:  message,
		Location: ast.Location{File: file},
	}
}
