package ast

import "fmt"

// Constant is an atomic symbol: a relation name, function name, or object
// constant. The name is never empty and contains no whitespace, parentheses,
// or comment characters.
type Constant struct {
	Name string
}

// NewConstant creates a constant with the given name.
func NewConstant(name string) *Constant {
	return &Constant{Name: name}
}

// Variable is a logic variable. The stored name does not include the leading
// '?' sigil; rendering adds it back.
type Variable struct {
	Name Constant
}

// NewVariable creates a variable with the given name (without the '?' sigil).
func NewVariable(name string) *Variable {
	return &Variable{Name: Constant{Name: name}}
}

// Function is a compound term: a name applied to one or more argument terms.
type Function struct {
	Name Constant
	Args []Term
}

// NewFunction creates a function term. A function must have at least one
// argument; a zero-argument function is a Constant, not a Function.
func NewFunction(name string, args []Term) (*Function, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("function %q must have at least one argument", name)
	}
	return &Function{Name: Constant{Name: name}, Args: args}, nil
}

// Proposition is a zero-argument sentence.
type Proposition struct {
	Name Constant
}

// NewProposition creates a proposition with the given name.
func NewProposition(name string) *Proposition {
	return &Proposition{Name: Constant{Name: name}}
}

// Relation is an n-argument sentence: a name applied to one or more terms.
type Relation struct {
	Name Constant
	Args []Term
}

// NewRelation creates a relation. A relation must have at least one argument;
// a zero-argument relation is a Proposition, not a Relation.
func NewRelation(name string, args []Term) (*Relation, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("relation %q must have at least one argument", name)
	}
	return &Relation{Name: Constant{Name: name}, Args: args}, nil
}

// Not is the negation of a literal.
type Not struct {
	Lit Literal
}

// NewNot creates a negated literal.
func NewNot(lit Literal) *Not {
	return &Not{Lit: lit}
}

// Or is a disjunction of one or more literals.
type Or struct {
	Lits []Literal
}

// NewOr creates a disjunction. A disjunction must have at least one disjunct.
func NewOr(lits []Literal) (*Or, error) {
	if len(lits) == 0 {
		return nil, fmt.Errorf("disjunction must have at least one literal")
	}
	return &Or{Lits: lits}, nil
}

// Distinct is an inequality constraint between two terms.
type Distinct struct {
	Term1 Term
	Term2 Term
}

// NewDistinct creates an inequality constraint.
func NewDistinct(term1, term2 Term) *Distinct {
	return &Distinct{Term1: term1, Term2: term2}
}

// Rule is an implication: the head holds whenever every body literal holds.
type Rule struct {
	Head Sentence
	Body []Literal
}

// NewRule creates a rule. A well-formed rule has a non-empty body; a bodyless
// rule is represented as a bare Sentence clause instead.
func NewRule(head Sentence, body []Literal) (*Rule, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("rule must have a non-empty body")
	}
	return &Rule{Head: head, Body: body}, nil
}

// Description is a whole game description: an ordered sequence of clauses.
// Clause order is preserved exactly as parsed.
type Description struct {
	Clauses []Clause
}

// NewDescription creates a description from the given clauses.
func NewDescription(clauses []Clause) *Description {
	return &Description{Clauses: clauses}
}

// Term is a value appearing as a relation or function argument: a Variable,
// Function, or Constant.
type Term interface {
	fmt.Stringer
	isTerm()
	Hash() uint64
}

// Sentence is a fact shape usable as a rule head: a Proposition or Relation.
type Sentence interface {
	fmt.Stringer
	isSentence()
	Hash() uint64
}

// Literal is a rule-body element: a Not, Or, Distinct, Proposition, or
// Relation. Not and Or may recursively contain any Literal.
type Literal interface {
	fmt.Stringer
	isLiteral()
	Hash() uint64
}

// Clause is a top-level statement: a Rule or a bare Sentence.
type Clause interface {
	fmt.Stringer
	isClause()
	Hash() uint64
}

func (*Variable) isTerm() {}
func (*Function) isTerm() {}
func (*Constant) isTerm() {}

func (*Proposition) isSentence() {}
func (*Relation) isSentence()    {}

func (*Not) isLiteral()         {}
func (*Or) isLiteral()          {}
func (*Distinct) isLiteral()    {}
func (*Proposition) isLiteral() {}
func (*Relation) isLiteral()    {}

func (*Rule) isClause()        {}
func (*Proposition) isClause() {}
func (*Relation) isClause()    {}
