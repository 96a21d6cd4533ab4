package ast

import (
	"hash"
	"hash/fnv"
)

// Structural hashing: each node hashes a distinct kind tag followed by its
// fields in declaration order, recursively, so two nodes hash identically
// exactly when they are structurally equal. Hashes are FNV-1a over the
// resulting byte stream.

const (
	tagConstant byte = iota + 1
	tagVariable
	tagFunction
	tagProposition
	tagRelation
	tagNot
	tagOr
	tagDistinct
	tagRule
	tagDescription
)

// Hash returns the structural hash of the constant.
func (c *Constant) Hash() uint64 { return sum(c.hashInto) }

// Hash returns the structural hash of the variable.
func (v *Variable) Hash() uint64 { return sum(v.hashInto) }

// Hash returns the structural hash of the function.
func (f *Function) Hash() uint64 { return sum(f.hashInto) }

// Hash returns the structural hash of the proposition.
func (p *Proposition) Hash() uint64 { return sum(p.hashInto) }

// Hash returns the structural hash of the relation.
func (r *Relation) Hash() uint64 { return sum(r.hashInto) }

// Hash returns the structural hash of the negation.
func (n *Not) Hash() uint64 { return sum(n.hashInto) }

// Hash returns the structural hash of the disjunction.
func (o *Or) Hash() uint64 { return sum(o.hashInto) }

// Hash returns the structural hash of the constraint.
func (d *Distinct) Hash() uint64 { return sum(d.hashInto) }

// Hash returns the structural hash of the rule.
func (r *Rule) Hash() uint64 { return sum(r.hashInto) }

// Hash returns the structural hash of the description.
func (d *Description) Hash() uint64 { return sum(d.hashInto) }

func sum(f func(hash.Hash64)) uint64 {
	h := fnv.New64a()
	f(h)
	return h.Sum64()
}

func (c *Constant) hashInto(h hash.Hash64) {
	h.Write([]byte{tagConstant})
	h.Write([]byte(c.Name))
	h.Write([]byte{0})
}

func (v *Variable) hashInto(h hash.Hash64) {
	h.Write([]byte{tagVariable})
	v.Name.hashInto(h)
}

func (f *Function) hashInto(h hash.Hash64) {
	h.Write([]byte{tagFunction})
	f.Name.hashInto(h)
	hashTerms(h, f.Args)
}

func (p *Proposition) hashInto(h hash.Hash64) {
	h.Write([]byte{tagProposition})
	p.Name.hashInto(h)
}

func (r *Relation) hashInto(h hash.Hash64) {
	h.Write([]byte{tagRelation})
	r.Name.hashInto(h)
	hashTerms(h, r.Args)
}

func (n *Not) hashInto(h hash.Hash64) {
	h.Write([]byte{tagNot})
	hashLiteral(h, n.Lit)
}

func (o *Or) hashInto(h hash.Hash64) {
	h.Write([]byte{tagOr})
	for _, lit := range o.Lits {
		hashLiteral(h, lit)
	}
}

func (d *Distinct) hashInto(h hash.Hash64) {
	h.Write([]byte{tagDistinct})
	hashTerm(h, d.Term1)
	hashTerm(h, d.Term2)
}

func (r *Rule) hashInto(h hash.Hash64) {
	h.Write([]byte{tagRule})
	hashSentence(h, r.Head)
	for _, lit := range r.Body {
		hashLiteral(h, lit)
	}
}

func (d *Description) hashInto(h hash.Hash64) {
	h.Write([]byte{tagDescription})
	for _, clause := range d.Clauses {
		hashClause(h, clause)
	}
}

func hashTerm(h hash.Hash64, t Term) {
	switch n := t.(type) {
	case *Variable:
		n.hashInto(h)
	case *Function:
		n.hashInto(h)
	case *Constant:
		n.hashInto(h)
	}
}

func hashTerms(h hash.Hash64, ts []Term) {
	for _, t := range ts {
		hashTerm(h, t)
	}
}

func hashSentence(h hash.Hash64, s Sentence) {
	switch n := s.(type) {
	case *Proposition:
		n.hashInto(h)
	case *Relation:
		n.hashInto(h)
	}
}

func hashLiteral(h hash.Hash64, l Literal) {
	switch n := l.(type) {
	case *Not:
		n.hashInto(h)
	case *Or:
		n.hashInto(h)
	case *Distinct:
		n.hashInto(h)
	case *Proposition:
		n.hashInto(h)
	case *Relation:
		n.hashInto(h)
	}
}

func hashClause(h hash.Hash64, c Clause) {
	switch n := c.(type) {
	case *Rule:
		n.hashInto(h)
	case *Proposition:
		n.hashInto(h)
	case *Relation:
		n.hashInto(h)
	}
}
