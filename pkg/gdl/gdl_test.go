package gdl

import (
	"strings"
	"testing"
)

// A trimmed two-player game with every construct: facts, propositions,
// rules, negation, disjunction, distinctness, and nested functions.
const game = `
; roles
(role xplayer)
(role oplayer)

; initial state
(init (cell 1 1 b))
(init (cell 1 2 b))
(init (control xplayer))

(<= (legal ?p (mark ?x ?y))
    (true (cell ?x ?y b))
    (true (control ?p)))
(<= (legal xplayer noop)
    (true (control oplayer)))

(<= (next (cell ?x ?y ?m))
    (does ?p (mark ?x ?y))
    (role ?p)
    (mark-of ?p ?m))
(<= (next (control oplayer))
    (true (control xplayer)))

(<= open
    (true (cell ?x ?y b)))
(<= terminal
    (not open))
(<= (goal ?p 50)
    (or (draw ?p) (not (role ?p))))
(<= (distinct-cells ?a ?b)
    (cellid ?a)
    (cellid ?b)
    (distinct ?a ?b))
`

func TestRoundTrip(t *testing.T) {
	desc, err := Parse(game)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	canonical := Render(desc)
	reparsed, err := Parse(canonical)
	if err != nil {
		t.Fatalf("canonical form failed to re-parse: %v", err)
	}
	if !desc.Equal(reparsed) {
		t.Error("re-parsing the canonical form changed the tree")
	}

	// Canonical text is a fixed point.
	if again := Render(reparsed); again != canonical {
		t.Errorf("canonical rendering is not stable:\n first  %q\n second %q", canonical, again)
	}
}

func TestRenderNormalizes(t *testing.T) {
	desc, err := Parse("(  init\n(cell 1 1 b)) ; comment\n")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if got := Render(desc); got != "(init (cell 1 1 b))" {
		t.Errorf("expected normalized text, got %q", got)
	}
}

func TestParseReportsErrors(t *testing.T) {
	if _, err := Parse("(p"); err == nil {
		t.Error("expected error for unbalanced input")
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile("does-not-exist.kif"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMustParse(t *testing.T) {
	desc := MustParse("(role white)")
	if len(desc.Clauses) != 1 {
		t.Fatalf("expected 1 clause, got %d", len(desc.Clauses))
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on invalid input")
		} else if !strings.Contains(r.(error).Error(), "unterminated") {
			t.Errorf("expected parse error in panic, got %v", r)
		}
	}()
	MustParse("(p")
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := Parse(game)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	desc := MustParse(game)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = desc.String()
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	for i := 0; i < b.N; i++ {
		desc, err := Parse(game)
		if err != nil {
			b.Fatal(err)
		}
		_ = desc.String()
	}
}
