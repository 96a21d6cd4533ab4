package ast

import (
	"encoding/json"
	"fmt"
)

// Tagged-union JSON encoding of the AST, used for test fixtures and
// cross-process interchange. Every node carries a "type" discriminant so the
// variant can be recovered on decode. This is a structural mapping, distinct
// from the canonical text syntax.

// MarshalJSON encodes the constant as {"type":"constant","name":...}.
func (c *Constant) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}{"constant", c.Name})
}

// MarshalJSON encodes the variable as {"type":"variable","name":...}.
func (v *Variable) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}{"variable", v.Name.Name})
}

// MarshalJSON encodes the function as {"type":"function","name":...,"args":[...]}.
func (f *Function) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
		Args []Term `json:"args"`
	}{"function", f.Name.Name, f.Args})
}

// MarshalJSON encodes the proposition as {"type":"proposition","name":...}.
func (p *Proposition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}{"proposition", p.Name.Name})
}

// MarshalJSON encodes the relation as {"type":"relation","name":...,"args":[...]}.
func (r *Relation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Name string `json:"name"`
		Args []Term `json:"args"`
	}{"relation", r.Name.Name, r.Args})
}

// MarshalJSON encodes the negation as {"type":"not","lit":...}.
func (n *Not) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string  `json:"type"`
		Lit  Literal `json:"lit"`
	}{"not", n.Lit})
}

// MarshalJSON encodes the disjunction as {"type":"or","lits":[...]}.
func (o *Or) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string    `json:"type"`
		Lits []Literal `json:"lits"`
	}{"or", o.Lits})
}

// MarshalJSON encodes the constraint as {"type":"distinct","term1":...,"term2":...}.
func (d *Distinct) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Term1 Term   `json:"term1"`
		Term2 Term   `json:"term2"`
	}{"distinct", d.Term1, d.Term2})
}

// MarshalJSON encodes the rule as {"type":"rule","head":...,"body":[...]}.
func (r *Rule) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string    `json:"type"`
		Head Sentence  `json:"head"`
		Body []Literal `json:"body"`
	}{"rule", r.Head, r.Body})
}

// MarshalJSON encodes the description as {"clauses":[...]}.
func (d *Description) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Clauses []Clause `json:"clauses"`
	}{d.Clauses})
}

// typeTag peeks at the "type" discriminant of a raw JSON node.
func typeTag(data []byte) (string, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", err
	}
	if probe.Type == "" {
		return "", fmt.Errorf("AST node missing \"type\" discriminant")
	}
	return probe.Type, nil
}

// UnmarshalTerm decodes a term variant from its tagged JSON form.
func UnmarshalTerm(data []byte) (Term, error) {
	tag, err := typeTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "constant":
		var n struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		return NewConstant(n.Name), nil
	case "variable":
		var n struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		return NewVariable(n.Name), nil
	case "function":
		var n struct {
			Name string            `json:"name"`
			Args []json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		args, err := unmarshalTerms(n.Args)
		if err != nil {
			return nil, err
		}
		return NewFunction(n.Name, args)
	}
	return nil, fmt.Errorf("unknown term type %q", tag)
}

// UnmarshalSentence decodes a sentence variant from its tagged JSON form.
func UnmarshalSentence(data []byte) (Sentence, error) {
	tag, err := typeTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "proposition":
		var n struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		return NewProposition(n.Name), nil
	case "relation":
		var n struct {
			Name string            `json:"name"`
			Args []json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		args, err := unmarshalTerms(n.Args)
		if err != nil {
			return nil, err
		}
		return NewRelation(n.Name, args)
	}
	return nil, fmt.Errorf("unknown sentence type %q", tag)
}

// UnmarshalLiteral decodes a literal variant from its tagged JSON form.
func UnmarshalLiteral(data []byte) (Literal, error) {
	tag, err := typeTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "not":
		var n struct {
			Lit json.RawMessage `json:"lit"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		lit, err := UnmarshalLiteral(n.Lit)
		if err != nil {
			return nil, err
		}
		return NewNot(lit), nil
	case "or":
		var n struct {
			Lits []json.RawMessage `json:"lits"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		lits := make([]Literal, 0, len(n.Lits))
		for _, raw := range n.Lits {
			lit, err := UnmarshalLiteral(raw)
			if err != nil {
				return nil, err
			}
			lits = append(lits, lit)
		}
		return NewOr(lits)
	case "distinct":
		var n struct {
			Term1 json.RawMessage `json:"term1"`
			Term2 json.RawMessage `json:"term2"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		t1, err := UnmarshalTerm(n.Term1)
		if err != nil {
			return nil, err
		}
		t2, err := UnmarshalTerm(n.Term2)
		if err != nil {
			return nil, err
		}
		return NewDistinct(t1, t2), nil
	case "proposition", "relation":
		s, err := UnmarshalSentence(data)
		if err != nil {
			return nil, err
		}
		return s.(Literal), nil
	}
	return nil, fmt.Errorf("unknown literal type %q", tag)
}

// UnmarshalClause decodes a clause variant from its tagged JSON form.
func UnmarshalClause(data []byte) (Clause, error) {
	tag, err := typeTag(data)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "rule":
		var n struct {
			Head json.RawMessage   `json:"head"`
			Body []json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, err
		}
		head, err := UnmarshalSentence(n.Head)
		if err != nil {
			return nil, err
		}
		body := make([]Literal, 0, len(n.Body))
		for _, raw := range n.Body {
			lit, err := UnmarshalLiteral(raw)
			if err != nil {
				return nil, err
			}
			body = append(body, lit)
		}
		return NewRule(head, body)
	case "proposition", "relation":
		s, err := UnmarshalSentence(data)
		if err != nil {
			return nil, err
		}
		return s.(Clause), nil
	}
	return nil, fmt.Errorf("unknown clause type %q", tag)
}

// UnmarshalJSON decodes a description from {"clauses":[...]}.
func (d *Description) UnmarshalJSON(data []byte) error {
	var n struct {
		Clauses []json.RawMessage `json:"clauses"`
	}
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	clauses := make([]Clause, 0, len(n.Clauses))
	for _, raw := range n.Clauses {
		clause, err := UnmarshalClause(raw)
		if err != nil {
			return err
		}
		clauses = append(clauses, clause)
	}
	d.Clauses = clauses
	return nil
}

func unmarshalTerms(raws []json.RawMessage) ([]Term, error) {
	terms := make([]Term, 0, len(raws))
	for _, raw := range raws {
		t, err := UnmarshalTerm(raw)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, nil
}
