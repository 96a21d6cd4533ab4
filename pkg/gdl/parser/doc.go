// Package parser parses Game Description Language (GDL) source text into
// Abstract Syntax Trees.
//
// # Grammar
//
// The parser implements the following grammar over the token stream:
//
//	description := clause*
//	clause      := rule | sentence
//	rule        := '(' '<=' sentence literal+ ')'
//	sentence    := relation | proposition
//	relation    := '(' constant term+ ')'
//	proposition := constant
//	literal     := not | or | distinct | relation | proposition
//	not         := '(' 'not' literal ')'
//	or          := '(' 'or' literal+ ')'
//	distinct    := '(' 'distinct' term term ')'
//	term        := variable | function | constant
//	function    := '(' constant term+ ')'
//	variable    := '?' constant
//	constant    := token     // not '<=', 'not', 'or', 'distinct'; not starting with '?'
//
// Tokens are separated by whitespace and parenthesis boundaries. A semicolon
// begins a comment extending to end of line, treated as whitespace.
//
// # Disambiguation
//
// A parenthesized form beginning with one of the reserved keywords '<=',
// 'not', 'or', or 'distinct' is parsed as the corresponding construct;
// keyword recognition is exact-token and case-sensitive, and keywords are
// never valid constant names. Any other parenthesized form with a leading
// constant is a relation in sentence position or a function in term position.
// A bare token in term position is a constant unless prefixed with '?', in
// which case it is a variable.
//
// # Usage
//
//	p := parser.NewParser()
//	desc, err := p.Parse("(<= (p ?x) (q ?x) (not (r ?x)))")
//	if err != nil {
//	    var gdlErr *errors.Error
//	    if goerrors.As(err, &gdlErr) {
//	        fmt.Println(gdlErr) // located error with source context
//	    }
//	    return err
//	}
//
// Parsing is a pure function of the input text: no global state, no
// randomness, identical output for identical input. The parser stops at the
// first grammar mismatch and returns a single located error; no partial AST
// is produced.
package parser
