package ast

import "strings"

// Structural comparison defines a total order over every node kind: variants
// are ordered by declaration order (Variable < Function < Constant for terms,
// Proposition < Relation for sentences, Not < Or < Distinct < Proposition <
// Relation for literals, Rule < Sentence for clauses), then fields are
// compared in declaration order, recursively. Two nodes are structurally
// equal exactly when their comparison is zero.

// Compare returns -1, 0, or 1 ordering c relative to o.
func (c *Constant) Compare(o *Constant) int {
	return strings.Compare(c.Name, o.Name)
}

// Equal reports whether two constants are structurally equal.
func (c *Constant) Equal(o *Constant) bool {
	return c.Name == o.Name
}

// Compare returns -1, 0, or 1 ordering v relative to o.
func (v *Variable) Compare(o *Variable) int {
	return v.Name.Compare(&o.Name)
}

// Equal reports whether two variables are structurally equal.
func (v *Variable) Equal(o *Variable) bool {
	return v.Compare(o) == 0
}

// Compare returns -1, 0, or 1 ordering f relative to o.
func (f *Function) Compare(o *Function) int {
	if r := f.Name.Compare(&o.Name); r != 0 {
		return r
	}
	return compareTermSlices(f.Args, o.Args)
}

// Equal reports whether two functions are structurally equal.
func (f *Function) Equal(o *Function) bool {
	return f.Compare(o) == 0
}

// Compare returns -1, 0, or 1 ordering p relative to o.
func (p *Proposition) Compare(o *Proposition) int {
	return p.Name.Compare(&o.Name)
}

// Equal reports whether two propositions are structurally equal.
func (p *Proposition) Equal(o *Proposition) bool {
	return p.Compare(o) == 0
}

// Compare returns -1, 0, or 1 ordering r relative to o.
func (r *Relation) Compare(o *Relation) int {
	if c := r.Name.Compare(&o.Name); c != 0 {
		return c
	}
	return compareTermSlices(r.Args, o.Args)
}

// Equal reports whether two relations are structurally equal.
func (r *Relation) Equal(o *Relation) bool {
	return r.Compare(o) == 0
}

// Compare returns -1, 0, or 1 ordering n relative to o.
func (n *Not) Compare(o *Not) int {
	return CompareLiterals(n.Lit, o.Lit)
}

// Equal reports whether two negations are structurally equal.
func (n *Not) Equal(o *Not) bool {
	return n.Compare(o) == 0
}

// Compare returns -1, 0, or 1 ordering or relative to o.
func (or *Or) Compare(o *Or) int {
	return compareLiteralSlices(or.Lits, o.Lits)
}

// Equal reports whether two disjunctions are structurally equal.
func (or *Or) Equal(o *Or) bool {
	return or.Compare(o) == 0
}

// Compare returns -1, 0, or 1 ordering d relative to o.
func (d *Distinct) Compare(o *Distinct) int {
	if r := CompareTerms(d.Term1, o.Term1); r != 0 {
		return r
	}
	return CompareTerms(d.Term2, o.Term2)
}

// Equal reports whether two constraints are structurally equal.
func (d *Distinct) Equal(o *Distinct) bool {
	return d.Compare(o) == 0
}

// Compare returns -1, 0, or 1 ordering r relative to o.
func (r *Rule) Compare(o *Rule) int {
	if c := CompareSentences(r.Head, o.Head); c != 0 {
		return c
	}
	return compareLiteralSlices(r.Body, o.Body)
}

// Equal reports whether two rules are structurally equal.
func (r *Rule) Equal(o *Rule) bool {
	return r.Compare(o) == 0
}

// Compare returns -1, 0, or 1 ordering d relative to o.
func (d *Description) Compare(o *Description) int {
	for i := 0; i < len(d.Clauses) && i < len(o.Clauses); i++ {
		if r := CompareClauses(d.Clauses[i], o.Clauses[i]); r != 0 {
			return r
		}
	}
	return compareInts(len(d.Clauses), len(o.Clauses))
}

// Equal reports whether two descriptions are structurally equal.
func (d *Description) Equal(o *Description) bool {
	return d.Compare(o) == 0
}

// CompareTerms orders two terms of any variant.
func CompareTerms(a, b Term) int {
	if r := compareInts(termRank(a), termRank(b)); r != 0 {
		return r
	}
	switch x := a.(type) {
	case *Variable:
		return x.Compare(b.(*Variable))
	case *Function:
		return x.Compare(b.(*Function))
	case *Constant:
		return x.Compare(b.(*Constant))
	}
	return 0
}

// EqualTerms reports whether two terms are structurally equal.
func EqualTerms(a, b Term) bool {
	return CompareTerms(a, b) == 0
}

// CompareSentences orders two sentences of any variant.
func CompareSentences(a, b Sentence) int {
	if r := compareInts(sentenceRank(a), sentenceRank(b)); r != 0 {
		return r
	}
	switch x := a.(type) {
	case *Proposition:
		return x.Compare(b.(*Proposition))
	case *Relation:
		return x.Compare(b.(*Relation))
	}
	return 0
}

// EqualSentences reports whether two sentences are structurally equal.
func EqualSentences(a, b Sentence) bool {
	return CompareSentences(a, b) == 0
}

// CompareLiterals orders two literals of any variant.
func CompareLiterals(a, b Literal) int {
	if r := compareInts(literalRank(a), literalRank(b)); r != 0 {
		return r
	}
	switch x := a.(type) {
	case *Not:
		return x.Compare(b.(*Not))
	case *Or:
		return x.Compare(b.(*Or))
	case *Distinct:
		return x.Compare(b.(*Distinct))
	case *Proposition:
		return x.Compare(b.(*Proposition))
	case *Relation:
		return x.Compare(b.(*Relation))
	}
	return 0
}

// EqualLiterals reports whether two literals are structurally equal.
func EqualLiterals(a, b Literal) bool {
	return CompareLiterals(a, b) == 0
}

// CompareClauses orders two clauses of any variant.
func CompareClauses(a, b Clause) int {
	if r := compareInts(clauseRank(a), clauseRank(b)); r != 0 {
		return r
	}
	switch x := a.(type) {
	case *Rule:
		return x.Compare(b.(*Rule))
	case *Proposition:
		return x.Compare(b.(*Proposition))
	case *Relation:
		return x.Compare(b.(*Relation))
	}
	return 0
}

// EqualClauses reports whether two clauses are structurally equal.
func EqualClauses(a, b Clause) bool {
	return CompareClauses(a, b) == 0
}

func termRank(t Term) int {
	switch t.(type) {
	case *Variable:
		return 0
	case *Function:
		return 1
	case *Constant:
		return 2
	}
	return -1
}

func sentenceRank(s Sentence) int {
	switch s.(type) {
	case *Proposition:
		return 0
	case *Relation:
		return 1
	}
	return -1
}

func literalRank(l Literal) int {
	switch l.(type) {
	case *Not:
		return 0
	case *Or:
		return 1
	case *Distinct:
		return 2
	case *Proposition:
		return 3
	case *Relation:
		return 4
	}
	return -1
}

func clauseRank(c Clause) int {
	switch c.(type) {
	case *Rule:
		return 0
	case *Proposition:
		return 1
	case *Relation:
		return 2
	}
	return -1
}

func compareTermSlices(a, b []Term) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if r := CompareTerms(a[i], b[i]); r != 0 {
			return r
		}
	}
	return compareInts(len(a), len(b))
}

func compareLiteralSlices(a, b []Literal) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if r := CompareLiterals(a[i], b[i]); r != 0 {
			return r
		}
	}
	return compareInts(len(a), len(b))
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
