package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gsingh93/gdl-parser/pkg/gdl/ast"
	gdlErrors "github.com/gsingh93/gdl-parser/pkg/gdl/errors"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string // canonical rendering
	}{
		{
			name:   "relation",
			source: "(p a b)",
			want:   "(p a b)",
		},
		{
			name:   "proposition",
			source: "p",
			want:   "p",
		},
		{
			name:   "rule with negation",
			source: "(<= p (not q))",
			want:   "(<= p (not q))",
		},
		{
			name:   "rule with distinct",
			source: "(<= (p ?x) (q ?x) (distinct ?x a))",
			want:   "(<= (p ?x) (q ?x) (distinct ?x a))",
		},
		{
			name:   "comments are whitespace",
			source: "; header\n(p a) ; trailing\n",
			want:   "(p a)",
		},
		{
			name:   "nested functions",
			source: "(cell (coord 1 2) x)",
			want:   "(cell (coord 1 2) x)",
		},
		{
			name:   "disjunction",
			source: "(<= p (or q (not r)))",
			want:   "(<= p (or q (not r)))",
		},
		{
			name:   "proposition head rule",
			source: "(<= terminal (true (cell ?x)))",
			want:   "(<= terminal (true (cell ?x)))",
		},
		{
			name:   "multiple clauses preserve order",
			source: "(role white)\n(role black)\nstart",
			want:   "(role white) (role black) start",
		},
		{
			name:   "irregular whitespace normalizes",
			source: "(  p\n\ta\r\n  b )",
			want:   "(p a b)",
		},
		{
			name:   "empty input",
			source: "",
			want:   "",
		},
		{
			name:   "comment-only input",
			source: "; nothing here\n",
			want:   "",
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := p.Parse(tt.source)
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			if got := desc.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseStructure(t *testing.T) {
	p := NewParser()

	desc, err := p.Parse("(<= (p ?x) (q ?x) (distinct ?x a))")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(desc.Clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(desc.Clauses))
	}

	rule, ok := desc.Clauses[0].(*ast.Rule)
	if !ok {
		t.Fatalf("expected *ast.Rule, got %T", desc.Clauses[0])
	}

	head, ok := rule.Head.(*ast.Relation)
	if !ok {
		t.Fatalf("expected relation head, got %T", rule.Head)
	}
	if head.Name.Name != "p" {
		t.Errorf("expected head name p, got %q", head.Name.Name)
	}
	if v, ok := head.Args[0].(*ast.Variable); !ok || v.Name.Name != "x" {
		t.Errorf("expected variable ?x as head argument, got %v", head.Args[0])
	}

	if len(rule.Body) != 2 {
		t.Fatalf("expected 2 body literals, got %d", len(rule.Body))
	}
	if _, ok := rule.Body[0].(*ast.Relation); !ok {
		t.Errorf("expected relation literal, got %T", rule.Body[0])
	}
	distinct, ok := rule.Body[1].(*ast.Distinct)
	if !ok {
		t.Fatalf("expected distinct literal, got %T", rule.Body[1])
	}
	if c, ok := distinct.Term2.(*ast.Constant); !ok || c.Name != "a" {
		t.Errorf("expected constant a as second distinct term, got %v", distinct.Term2)
	}
}

func TestParsePropositionVsRelation(t *testing.T) {
	p := NewParser()

	// Bare name is a proposition; parenthesized with args is a relation.
	desc, err := p.Parse("terminal (row x)")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, ok := desc.Clauses[0].(*ast.Proposition); !ok {
		t.Errorf("expected proposition, got %T", desc.Clauses[0])
	}
	if _, ok := desc.Clauses[1].(*ast.Relation); !ok {
		t.Errorf("expected relation, got %T", desc.Clauses[1])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantMsg string
	}{
		{
			name:    "unterminated relation",
			source:  "(p",
			wantMsg: "unterminated relation",
		},
		{
			name:    "stray closing paren",
			source:  "(p a))",
			wantMsg: "unexpected ')' at top level",
		},
		{
			name:    "empty parens",
			source:  "()",
			wantMsg: "expected a rule or relation",
		},
		{
			name:    "zero-argument relation",
			source:  "(p)",
			wantMsg: `relation "p" must have at least one argument`,
		},
		{
			name:    "zero-argument function",
			source:  "(p (f))",
			wantMsg: `function "f" must have at least one argument`,
		},
		{
			name:    "bodyless rule",
			source:  "(<= p)",
			wantMsg: "rule must have at least one body literal",
		},
		{
			name:    "keyword as constant",
			source:  "(p not)",
			wantMsg: `reserved keyword "not"`,
		},
		{
			name:    "keyword as relation name at top level",
			source:  "(not a)",
			wantMsg: `reserved keyword "not" cannot be used as a constant`,
		},
		{
			name:    "rule keyword inside body",
			source:  "(<= p (<= q r))",
			wantMsg: "a rule cannot appear inside a rule body",
		},
		{
			name:    "variable as clause",
			source:  "?x",
			wantMsg: "cannot appear here, expected a constant",
		},
		{
			name:    "bare question mark",
			source:  "(p ?)",
			wantMsg: "variable must have a name after '?'",
		},
		{
			name:    "keyword variable name",
			source:  "(p ?or)",
			wantMsg: `reserved keyword "or" cannot be used as a variable name`,
		},
		{
			name:    "distinct with one term",
			source:  "(<= p (distinct ?x))",
			wantMsg: "expected a term, found ')'",
		},
		{
			name:    "empty disjunction",
			source:  "(<= p (or))",
			wantMsg: "disjunction must have at least one literal",
		},
		{
			name:    "rule head is keyword form",
			source:  "(<= (not p) q)",
			wantMsg: `reserved keyword "not" cannot be used as a sentence`,
		},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := p.Parse(tt.source)
			if err == nil {
				t.Fatalf("expected parse error, got description %q", desc.String())
			}
			if desc != nil {
				t.Error("expected no partial result on failure")
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestParseErrorIncludesLocationAndContext(t *testing.T) {
	p := NewParser()

	_, err := p.Parse("(role white)\n(p not)\n")
	if err == nil {
		t.Fatal("expected parse error")
	}

	gdlErr, ok := err.(*gdlErrors.Error)
	if !ok {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if gdlErr.Type != gdlErrors.ErrorTypeSyntax {
		t.Errorf("expected syntax error type, got %s", gdlErr.Type)
	}
	if gdlErr.Location.Line != 2 {
		t.Errorf("expected error on line 2, got %d", gdlErr.Location.Line)
	}
	if gdlErr.Location.Column != 4 {
		t.Errorf("expected error at column 4, got %d", gdlErr.Location.Column)
	}
	if gdlErr.Token != "not" {
		t.Errorf("expected offending token %q, got %q", "not", gdlErr.Token)
	}
	if !strings.Contains(gdlErr.Context, "(p not)") {
		t.Errorf("expected source context in error, got %q", gdlErr.Context)
	}
}

func TestParseDepthLimit(t *testing.T) {
	p := NewParser().WithMaxDepth(8)

	deep := "(p " + strings.Repeat("(f ", 20) + "a" + strings.Repeat(")", 20) + ")"
	_, err := p.Parse(deep)
	if err == nil {
		t.Fatal("expected depth limit error")
	}
	if !strings.Contains(err.Error(), "nesting exceeds maximum depth 8") {
		t.Errorf("expected depth limit message, got %q", err.Error())
	}

	// The same input parses with the limit disabled.
	if _, err := NewParser().WithMaxDepth(0).Parse(deep); err != nil {
		t.Errorf("expected deep input to parse without limit, got %v", err)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.kif")
	if err := os.WriteFile(path, []byte("(role white)\n(p not)\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	p := NewParser()
	_, err := p.ParseFile(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	gdlErr, ok := err.(*gdlErrors.Error)
	if !ok {
		t.Fatalf("expected *errors.Error, got %T", err)
	}
	if gdlErr.Location.File != path {
		t.Errorf("expected file %q in location, got %q", path, gdlErr.Location.File)
	}

	if _, err := p.ParseFile(filepath.Join(dir, "missing.kif")); err == nil {
		t.Error("expected error for missing file")
	} else if ioErr, ok := err.(*gdlErrors.Error); !ok || ioErr.Type != gdlErrors.ErrorTypeIO {
		t.Errorf("expected IO error, got %v", err)
	}
}

func TestParserIsReusable(t *testing.T) {
	p := NewParser()

	if _, err := p.Parse("(p"); err == nil {
		t.Fatal("expected parse error")
	}

	// A failed parse must not poison subsequent parses.
	desc, err := p.Parse("(p a)")
	if err != nil {
		t.Fatalf("unexpected error after failed parse: %v", err)
	}
	if desc.String() != "(p a)" {
		t.Errorf("expected (p a), got %q", desc.String())
	}
}
