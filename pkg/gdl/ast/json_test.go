package ast

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMarshalTaggedUnion(t *testing.T) {
	fn := mustFunction(t, "coord", NewConstant("1"), NewVariable("x"))
	rel := mustRelation(t, "cell", fn)

	data, err := json.Marshal(rel)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["type"] != "relation" {
		t.Errorf("expected type relation, got %v", decoded["type"])
	}
	if decoded["name"] != "cell" {
		t.Errorf("expected name cell, got %v", decoded["name"])
	}

	// Variant discriminants appear on nested nodes too.
	if !strings.Contains(string(data), `"type":"function"`) {
		t.Errorf("expected nested function discriminant in %s", data)
	}
	if !strings.Contains(string(data), `"type":"variable"`) {
		t.Errorf("expected nested variable discriminant in %s", data)
	}
}

func TestDescriptionJSONRoundTrip(t *testing.T) {
	rule := mustRule(t,
		mustRelation(t, "next", mustFunction(t, "cell", NewVariable("x"), NewConstant("o"))),
		mustRelation(t, "does", NewConstant("oplayer"), NewVariable("x")),
		NewNot(NewProposition("terminal")),
	)
	or, err := NewOr([]Literal{
		NewDistinct(NewVariable("x"), NewConstant("1")),
		NewProposition("open"),
	})
	if err != nil {
		t.Fatal(err)
	}
	rule2 := mustRule(t, NewProposition("playable"), or)
	original := NewDescription([]Clause{
		rule,
		rule2,
		NewProposition("start"),
		mustRelation(t, "role", NewConstant("xplayer")),
	})

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded Description
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !original.Equal(&decoded) {
		t.Errorf("round trip changed the tree:\n original %s\n decoded  %s",
			original.String(), decoded.String())
	}
}

func TestUnmarshalVariantDispatch(t *testing.T) {
	term, err := UnmarshalTerm([]byte(`{"type":"variable","name":"x"}`))
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if v, ok := term.(*Variable); !ok || v.Name.Name != "x" {
		t.Errorf("expected variable ?x, got %v", term)
	}

	// Propositions and relations decode at every level they can appear.
	lit, err := UnmarshalLiteral([]byte(`{"type":"proposition","name":"p"}`))
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := lit.(*Proposition); !ok {
		t.Errorf("expected proposition literal, got %T", lit)
	}

	clause, err := UnmarshalClause([]byte(`{"type":"relation","name":"p","args":[{"type":"constant","name":"a"}]}`))
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := clause.(*Relation); !ok {
		t.Errorf("expected relation clause, got %T", clause)
	}
}

func TestUnmarshalRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
		fn   func([]byte) error
	}{
		{
			name: "missing discriminant",
			data: `{"name":"x"}`,
			fn:   func(b []byte) error { _, err := UnmarshalTerm(b); return err },
		},
		{
			name: "unknown term type",
			data: `{"type":"relation","name":"p"}`,
			fn:   func(b []byte) error { _, err := UnmarshalTerm(b); return err },
		},
		{
			name: "unknown clause type",
			data: `{"type":"not","lit":{"type":"proposition","name":"p"}}`,
			fn:   func(b []byte) error { _, err := UnmarshalClause(b); return err },
		},
		{
			name: "function without args",
			data: `{"type":"function","name":"f","args":[]}`,
			fn:   func(b []byte) error { _, err := UnmarshalTerm(b); return err },
		},
		{
			name: "rule without body",
			data: `{"type":"rule","head":{"type":"proposition","name":"p"},"body":[]}`,
			fn:   func(b []byte) error { _, err := UnmarshalClause(b); return err },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn([]byte(tt.data)); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}
