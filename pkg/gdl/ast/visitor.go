package ast

// Visitor provides one hook per node kind, fired during a post-order walk.
// Embed BaseVisitor and override only the hooks you need.
//
// Variant hooks (VisitClause, VisitSentence, VisitLiteral, VisitTerm) receive
// a pointer to the slot holding the value, so a hook may replace the variant
// wholesale (e.g., swap a Constant term for a Variable). Concrete hooks
// receive the node itself for in-place field mutation. A hook that replaces a
// variant is responsible for supplying a well-formed replacement; the walk
// does not re-validate invariants after a visit.
//
// Hooks cannot fail the traversal. A hook that needs to signal an error
// should accumulate it on the visitor and report it after the walk returns.
type Visitor interface {
	VisitDescription(*Description)
	VisitClause(*Clause)
	VisitRule(*Rule)
	VisitSentence(*Sentence)
	VisitProposition(*Proposition)
	VisitRelation(*Relation)
	VisitLiteral(*Literal)
	VisitTerm(*Term)
	VisitConstant(*Constant)
	VisitVariable(*Variable)
	VisitFunction(*Function)
	VisitNot(*Not)
	VisitOr(*Or)
	VisitDistinct(*Distinct)
}

// BaseVisitor is a no-op implementation of Visitor for embedding.
type BaseVisitor struct{}

func (BaseVisitor) VisitDescription(*Description) {}
func (BaseVisitor) VisitClause(*Clause)           {}
func (BaseVisitor) VisitRule(*Rule)               {}
func (BaseVisitor) VisitSentence(*Sentence)       {}
func (BaseVisitor) VisitProposition(*Proposition) {}
func (BaseVisitor) VisitRelation(*Relation)       {}
func (BaseVisitor) VisitLiteral(*Literal)         {}
func (BaseVisitor) VisitTerm(*Term)               {}
func (BaseVisitor) VisitConstant(*Constant)       {}
func (BaseVisitor) VisitVariable(*Variable)       {}
func (BaseVisitor) VisitFunction(*Function)       {}
func (BaseVisitor) VisitNot(*Not)                 {}
func (BaseVisitor) VisitOr(*Or)                   {}
func (BaseVisitor) VisitDistinct(*Distinct)       {}

// Walk performs a strict post-order traversal of a description: every child
// is fully visited, depth-first and left-to-right, before its parent's hook
// fires. A rewrite hook on a parent therefore observes children already in
// their final, possibly rewritten state.
func Walk(d *Description, v Visitor) {
	for i := range d.Clauses {
		WalkClause(&d.Clauses[i], v)
	}
	v.VisitDescription(d)
}

// WalkClause performs a post-order traversal of a single clause.
func WalkClause(c *Clause, v Visitor) {
	switch n := (*c).(type) {
	case *Rule:
		WalkRule(n, v)
	case Sentence:
		// A bare sentence clause is visited as a sentence first; if the
		// sentence hook replaced the variant, propagate it into the clause
		// slot.
		s := n
		WalkSentence(&s, v)
		*c = s.(Clause)
	}
	v.VisitClause(c)
}

// WalkRule performs a post-order traversal of a rule: head, then each body
// literal, then the rule itself.
func WalkRule(r *Rule, v Visitor) {
	WalkSentence(&r.Head, v)
	for i := range r.Body {
		WalkLiteral(&r.Body[i], v)
	}
	v.VisitRule(r)
}

// WalkSentence performs a post-order traversal of a sentence.
func WalkSentence(s *Sentence, v Visitor) {
	switch n := (*s).(type) {
	case *Proposition:
		WalkProposition(n, v)
	case *Relation:
		WalkRelation(n, v)
	}
	v.VisitSentence(s)
}

// WalkProposition performs a post-order traversal of a proposition.
func WalkProposition(p *Proposition, v Visitor) {
	WalkConstant(&p.Name, v)
	v.VisitProposition(p)
}

// WalkRelation performs a post-order traversal of a relation: name, then each
// argument term, then the relation itself.
func WalkRelation(r *Relation, v Visitor) {
	WalkConstant(&r.Name, v)
	for i := range r.Args {
		WalkTerm(&r.Args[i], v)
	}
	v.VisitRelation(r)
}

// WalkLiteral performs a post-order traversal of a literal.
func WalkLiteral(l *Literal, v Visitor) {
	switch n := (*l).(type) {
	case *Not:
		WalkNot(n, v)
	case *Or:
		WalkOr(n, v)
	case *Distinct:
		WalkDistinct(n, v)
	case *Proposition:
		WalkProposition(n, v)
	case *Relation:
		WalkRelation(n, v)
	}
	v.VisitLiteral(l)
}

// WalkTerm performs a post-order traversal of a term.
func WalkTerm(t *Term, v Visitor) {
	switch n := (*t).(type) {
	case *Variable:
		WalkVariable(n, v)
	case *Function:
		WalkFunction(n, v)
	case *Constant:
		WalkConstant(n, v)
	}
	v.VisitTerm(t)
}

// WalkConstant visits a constant.
func WalkConstant(c *Constant, v Visitor) {
	v.VisitConstant(c)
}

// WalkVariable performs a post-order traversal of a variable.
func WalkVariable(vr *Variable, v Visitor) {
	WalkConstant(&vr.Name, v)
	v.VisitVariable(vr)
}

// WalkFunction performs a post-order traversal of a function: name, then each
// argument term, then the function itself.
func WalkFunction(f *Function, v Visitor) {
	WalkConstant(&f.Name, v)
	for i := range f.Args {
		WalkTerm(&f.Args[i], v)
	}
	v.VisitFunction(f)
}

// WalkNot performs a post-order traversal of a negation.
func WalkNot(n *Not, v Visitor) {
	WalkLiteral(&n.Lit, v)
	v.VisitNot(n)
}

// WalkOr performs a post-order traversal of a disjunction.
func WalkOr(o *Or, v Visitor) {
	for i := range o.Lits {
		WalkLiteral(&o.Lits[i], v)
	}
	v.VisitOr(o)
}

// WalkDistinct performs a post-order traversal of an inequality constraint.
func WalkDistinct(d *Distinct, v Visitor) {
	WalkTerm(&d.Term1, v)
	WalkTerm(&d.Term2, v)
	v.VisitDistinct(d)
}
