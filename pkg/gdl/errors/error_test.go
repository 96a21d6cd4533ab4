package errors

import (
	"strings"
	"testing"

	"github.com/gsingh93/gdl-parser/pkg/gdl/ast"
)

func TestErrorFormatting(t *testing.T) {
	err := NewSyntaxError("unexpected ')' at top level",
		ast.Location{File: "game.kif", Line: 3, Column: 5})
	err.Token = ")"
	err.Suggestion = "remove the extra closing parenthesis"

	msg := err.Error()
	if !strings.Contains(msg, "[syntax] unexpected ')' at top level") {
		t.Errorf("expected typed message, got %q", msg)
	}
	if !strings.Contains(msg, `(at ")")`) {
		t.Errorf("expected offending token, got %q", msg)
	}
	if !strings.Contains(msg, "--> game.kif:3:5") {
		t.Errorf("expected location line, got %q", msg)
	}
	if !strings.Contains(msg, "= suggestion: remove the extra closing parenthesis") {
		t.Errorf("expected suggestion, got %q", msg)
	}
}

func TestIOError(t *testing.T) {
	err := NewIOError("failed to read file: permission denied", "games/chess.kif")
	if err.Type != ErrorTypeIO {
		t.Errorf("expected io type, got %s", err.Type)
	}
	if err.Location.File != "games/chess.kif" {
		t.Errorf("expected file in location, got %q", err.Location.File)
	}
	// No line info, so no location arrow in the output.
	if strings.Contains(err.Error(), "-->") {
		t.Errorf("expected no location line, got %q", err.Error())
	}
}

func TestExtractContext(t *testing.T) {
	source := "(role white)\n(p not)\n(role black)"
	loc := ast.Location{Line: 2, Column: 4}

	context := ExtractContext(source, loc, 1)

	if !strings.Contains(context, "-> 2 | (p not)") {
		t.Errorf("expected marked error line, got %q", context)
	}
	if !strings.Contains(context, "   1 | (role white)") {
		t.Errorf("expected preceding line, got %q", context)
	}
	if !strings.Contains(context, "   3 | (role black)") {
		t.Errorf("expected following line, got %q", context)
	}

	// The caret lines up under column 4.
	caretLine := ""
	for _, line := range strings.Split(context, "\n") {
		if strings.HasSuffix(line, "^") {
			caretLine = line
		}
	}
	if caretLine == "" {
		t.Fatalf("expected caret line in %q", context)
	}
	if !strings.HasSuffix(caretLine, "   ^") {
		t.Errorf("expected caret at column 4, got %q", caretLine)
	}
}

func TestExtractContextBounds(t *testing.T) {
	if ctx := ExtractContext("(p a)", ast.Location{}, 1); ctx != "" {
		t.Errorf("expected empty context for invalid location, got %q", ctx)
	}
	if ctx := ExtractContext("(p a)", ast.Location{Line: 9}, 1); ctx != "" {
		t.Errorf("expected empty context for out-of-range line, got %q", ctx)
	}

	// First line: no preceding context available.
	ctx := ExtractContext("(p a)", ast.Location{Line: 1, Column: 1}, 2)
	if !strings.Contains(ctx, "-> 1 | (p a)") {
		t.Errorf("expected first line marked, got %q", ctx)
	}
}

func TestAddContextToError(t *testing.T) {
	err := NewSyntaxError("test", ast.Location{Line: 1, Column: 2})
	AddContextToError(err, "(p a)")
	if !strings.Contains(err.Context, "(p a)") {
		t.Errorf("expected source in context, got %q", err.Context)
	}

	// Errors without a location stay context-free.
	ioErr := NewIOError("unreadable", "x.kif")
	AddContextToError(ioErr, "(p a)")
	if ioErr.Context != "" {
		t.Errorf("expected no context, got %q", ioErr.Context)
	}
}
