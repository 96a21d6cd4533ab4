package ast

import "testing"

func TestStringCanonicalForms(t *testing.T) {
	fn := mustFunction(t, "coord", NewConstant("1"), NewConstant("2"))
	or, err := NewOr([]Literal{NewProposition("q"), NewNot(NewProposition("r"))})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		node interface{ String() string }
		want string
	}{
		{"constant", NewConstant("cell"), "cell"},
		{"variable adds sigil", NewVariable("x"), "?x"},
		{"function", fn, "(coord 1 2)"},
		{"proposition is bare", NewProposition("terminal"), "terminal"},
		{"relation", mustRelation(t, "cell", fn, NewVariable("m")), "(cell (coord 1 2) ?m)"},
		{"not", NewNot(NewProposition("p")), "(not p)"},
		{"or", or, "(or q (not r))"},
		{"distinct", NewDistinct(NewVariable("x"), NewConstant("b")), "(distinct ?x b)"},
		{
			"rule",
			mustRule(t, mustRelation(t, "p", NewVariable("x")), mustRelation(t, "q", NewVariable("x"))),
			"(<= (p ?x) (q ?x))",
		},
		{
			"description joins clauses with spaces",
			NewDescription([]Clause{NewProposition("a"), mustRelation(t, "b", NewConstant("c"))}),
			"a (b c)",
		},
		{"empty description", NewDescription(nil), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestConstructorInvariants(t *testing.T) {
	if _, err := NewFunction("f", nil); err == nil {
		t.Error("expected error for zero-argument function")
	}
	if _, err := NewRelation("p", nil); err == nil {
		t.Error("expected error for zero-argument relation")
	}
	if _, err := NewOr(nil); err == nil {
		t.Error("expected error for empty disjunction")
	}
	if _, err := NewRule(NewProposition("p"), nil); err == nil {
		t.Error("expected error for bodyless rule")
	}
}

func TestLocation(t *testing.T) {
	loc := Location{File: "game.kif", Line: 3, Column: 7, Offset: 41}
	if loc.String() != "game.kif:3:7" {
		t.Errorf("expected game.kif:3:7, got %s", loc.String())
	}
	if !loc.IsValid() {
		t.Error("expected location with line to be valid")
	}

	anon := Location{Line: 1, Column: 1}
	if anon.String() != "<input>:1:1" {
		t.Errorf("expected <input>:1:1, got %s", anon.String())
	}

	var zero Location
	if zero.IsValid() {
		t.Error("expected zero location to be invalid")
	}
}
