package errors

import (
	"fmt"
	"strings"

	"github.com/gsingh93/gdl-parser/pkg/gdl/ast"
)

// ExtractContext renders the lines of source surrounding the given location,
// with line numbers and a caret under the offending column, for display in
// error messages.
func ExtractContext(source string, location ast.Location, contextLines int) string {
	if !location.IsValid() {
		return ""
	}

	lines := strings.Split(source, "\n")

	errorLine := location.Line - 1 // 0-based
	if errorLine < 0 || errorLine >= len(lines) {
		return ""
	}

	startLine := errorLine - contextLines
	endLine := errorLine + contextLines
	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(lines) {
		endLine = len(lines) - 1
	}

	var sb strings.Builder
	maxLineNumWidth := len(fmt.Sprintf("%d", endLine+1))

	for i := startLine; i <= endLine; i++ {
		lineNumStr := fmt.Sprintf("%*d", maxLineNumWidth, i+1)
		prefix := "  "
		if i == errorLine {
			prefix = "->"
		}

		sb.WriteString(fmt.Sprintf("%s %s | %s\n", prefix, lineNumStr, lines[i]))

		if i == errorLine && location.Column > 0 {
			padding := strings.Repeat(" ", location.Column-1)
			sb.WriteString(fmt.Sprintf("   %s | %s^\n", strings.Repeat(" ", maxLineNumWidth), padding))
		}
	}

	return sb.String()
}

// WithContext enriches an error with surrounding source lines.
func WithContext(err *Error, source string, contextLines int) *Error {
	if err.Location.IsValid() {
		err.Context = ExtractContext(source, err.Location, contextLines)
	}
	return err
}

// AddContextToError adds the default amount of surrounding context (one line
// before and after) to an error.
func AddContextToError(err *Error, source string) *Error {
	return WithContext(err, source, 1)
}
