package ast

import "strings"

// String renders the constant in canonical form: its name verbatim.
func (c *Constant) String() string {
	return c.Name
}

// String renders the variable in canonical form: '?' followed by its name.
func (v *Variable) String() string {
	return "?" + v.Name.Name
}

// String renders the function in canonical form: "(name arg1 arg2 ...)".
func (f *Function) String() string {
	return renderCompound(f.Name.Name, f.Args)
}

// String renders the proposition in canonical form: its name alone, with no
// parentheses.
func (p *Proposition) String() string {
	return p.Name.Name
}

// String renders the relation in canonical form: "(name arg1 arg2 ...)".
func (r *Relation) String() string {
	return renderCompound(r.Name.Name, r.Args)
}

// String renders the negation in canonical form: "(not lit)".
func (n *Not) String() string {
	var sb strings.Builder
	sb.WriteString("(not ")
	sb.WriteString(n.Lit.String())
	sb.WriteByte(')')
	return sb.String()
}

// String renders the disjunction in canonical form: "(or lit1 lit2 ...)".
func (o *Or) String() string {
	var sb strings.Builder
	sb.WriteString("(or")
	for _, lit := range o.Lits {
		sb.WriteByte(' ')
		sb.WriteString(lit.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// String renders the constraint in canonical form: "(distinct t1 t2)".
func (d *Distinct) String() string {
	var sb strings.Builder
	sb.WriteString("(distinct ")
	sb.WriteString(d.Term1.String())
	sb.WriteByte(' ')
	sb.WriteString(d.Term2.String())
	sb.WriteByte(')')
	return sb.String()
}

// String renders the rule in canonical form: "(<= head lit1 lit2 ...)".
func (r *Rule) String() string {
	var sb strings.Builder
	sb.WriteString("(<= ")
	sb.WriteString(r.Head.String())
	for _, lit := range r.Body {
		sb.WriteByte(' ')
		sb.WriteString(lit.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// String renders the description in canonical form: each clause's rendering
// separated by single spaces, with no trailing separator.
func (d *Description) String() string {
	var sb strings.Builder
	for i, clause := range d.Clauses {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(clause.String())
	}
	return sb.String()
}

func renderCompound(name string, args []Term) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, arg := range args {
		sb.WriteByte(' ')
		sb.WriteString(arg.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
