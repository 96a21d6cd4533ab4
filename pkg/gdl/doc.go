// Package gdl provides parsing, rendering, and traversal for Game
// Description Language (GDL) game descriptions.
//
// GDL is a parenthesized, Prolog/Datalog-flavored language used to describe
// the rules of abstract games: facts, implications with negation,
// disjunction, and inequality constraints over terms.
//
// # Architecture
//
// The package is organized into subpackages:
//
// - ast: Abstract Syntax Tree definitions, canonical rendering, structural
// equality/ordering/hashing, and the post-order visitor
// - parser: lexer and recursive-descent parser for the GDL grammar
// - errors: rich error types with location, source context, and suggestions
//
// # Basic Usage
//
// Parse a description and render it back:
//
//	desc, err := gdl.Parse("(<= (p ?x) (q ?x) (not (r ?x)))")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(desc)            // canonical form
//	fmt.Println(len(desc.Clauses))
//
// Rendering is the parser's structural inverse: for any description d
// produced by Parse, reparsing d.String() yields a tree structurally equal
// to d. The reverse need not hold byte-for-byte, because whitespace and
// comments are normalized away.
//
// # Traversal and rewriting
//
// Use the visitor for analyses and bottom-up rewrites without reconstructing
// the tree:
//
//	type renamer struct {
//	    ast.BaseVisitor
//	}
//
//	func (renamer) VisitConstant(c *ast.Constant) {
//	    c.Name = strings.ToLower(c.Name)
//	}
//
//	ast.Walk(desc, renamer{})
//
// The walk is strictly post-order: children are visited, and possibly
// rewritten, before their parents.
package gdl
