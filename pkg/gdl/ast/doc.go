// Package ast provides the Abstract Syntax Tree for Game Description Language
// (GDL) descriptions.
//
// The AST is a strict tree: every child node is exclusively owned by its
// parent, there are no shared or cyclic references, and nodes are immutable
// after construction except through the visitor's rewrite hooks. A completed
// Description may therefore be read concurrently from any number of
// goroutines; concurrent rewriting must be serialized by the caller.
//
// # Core Types
//
// Description: root node, an ordered sequence of clauses
//
// Clause: a top-level statement, either a Rule or a bare Sentence
//
// Rule: an implication with a Sentence head and one or more body Literals
//
// Sentence: a Proposition (zero arguments) or Relation (one or more)
//
// Literal: a rule-body element: Not, Or, Distinct, Proposition, or Relation
//
// Term: a relation/function argument: Variable, Function, or Constant
//
// # Variants
//
// Each one-of-N shape (Term, Sentence, Literal, Clause) is a closed interface
// implemented only by the node types listed above; consumers dispatch with an
// exhaustive type switch. Proposition and Relation implement Sentence,
// Literal, and Clause, so a bare fact needs no wrapper nodes.
//
// # Canonical form
//
// Every node's String method renders its canonical textual form, exactly
// mirroring the grammar in reverse. Reparsing a rendered description yields a
// structurally equal tree:
//
//	d, _ := gdl.Parse(src)
//	d2, _ := gdl.Parse(d.String())
//	d.Equal(d2) // always true
//
// # Equality, ordering, hashing
//
// Structural equality, a total order (Compare, CompareTerms, CompareClauses,
// ...), and structural hashing (Hash) are defined over every node kind,
// supporting deterministic sorting, deduplication, and indexing of clause
// sets by downstream consumers.
//
// # Traversal
//
// Walk and the per-kind WalkX entry points perform a strict post-order
// traversal, firing one Visitor hook per node. See Visitor for the rewrite
// contract.
package ast
