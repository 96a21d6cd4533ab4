package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/gsingh93/gdl-parser/pkg/gdl/ast"
	gdlErrors "github.com/gsingh93/gdl-parser/pkg/gdl/errors"
)

// DefaultMaxDepth is the default limit on parenthesis nesting depth. The
// grammar itself places no bound on nesting, but Go cannot recover from stack
// exhaustion, so pathologically deep input is rejected with a syntax error
// instead.
const DefaultMaxDepth = 512

// Reserved keyword tokens. Keyword recognition is exact-token and
// case-sensitive; keywords are never valid constant names.
const (
	keywordRule     = "<="
	keywordNot      = "not"
	keywordOr       = "or"
	keywordDistinct = "distinct"
)

// Parser parses GDL game descriptions into Abstract Syntax Trees. A Parser
// is reusable and safe for concurrent use: all per-parse state lives in the
// individual Parse call.
type Parser struct {
	maxDepth int
}

// NewParser creates a parser with default configuration.
func NewParser() *Parser {
	return &Parser{maxDepth: DefaultMaxDepth}
}

// WithMaxDepth sets the maximum parenthesis nesting depth. Zero or negative
// disables the limit.
func (p *Parser) WithMaxDepth(depth int) *Parser {
	p.maxDepth = depth
	return p
}

// Parse parses a game description from source text. It returns the parsed
// Description, or a *errors.Error locating the first grammar mismatch. No
// partial AST is returned on failure.
func (p *Parser) Parse(source string) (*ast.Description, error) {
	return p.parse(source, "")
}

// ParseFile parses a game description read from the given file.
func (p *Parser) ParseFile(path string) (*ast.Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, gdlErrors.NewIOError(fmt.Sprintf("failed to read file: %v", err), path)
	}
	return p.parse(string(data), path)
}

func (p *Parser) parse(source, file string) (*ast.Description, error) {
	r := &run{
		lexer:    NewLexer(source, file),
		source:   source,
		maxDepth: p.maxDepth,
	}
	r.advance()

	desc, err := r.parseDescription()
	if err != nil {
		if gdlErr, ok := err.(*gdlErrors.Error); ok {
			gdlErrors.AddContextToError(gdlErr, source)
		}
		return nil, err
	}
	return desc, nil
}

// run holds the state of a single parse.
type run struct {
	lexer    *Lexer
	source   string
	current  Token
	maxDepth int
	depth    int
}

func (r *run) advance() {
	r.current = r.lexer.NextToken()
}

// enter tracks parenthesis nesting depth; it fires after consuming a '('.
func (r *run) enter(open Token) error {
	r.depth++
	if r.maxDepth > 0 && r.depth > r.maxDepth {
		return r.errorAt(open, fmt.Sprintf("nesting exceeds maximum depth %d", r.maxDepth))
	}
	return nil
}

func (r *run) leave() {
	r.depth--
}

func (r *run) parseDescription() (*ast.Description, error) {
	clauses := make([]ast.Clause, 0)
	for r.current.Type != TokenEOF {
		clause, err := r.parseClause()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)
	}
	return ast.NewDescription(clauses), nil
}

func (r *run) parseClause() (ast.Clause, error) {
	switch r.current.Type {
	case TokenAtom:
		prop, err := r.parseProposition()
		if err != nil {
			return nil, err
		}
		return prop, nil

	case TokenLParen:
		open := r.current
		r.advance()
		if err := r.enter(open); err != nil {
			return nil, err
		}
		defer r.leave()

		head, err := r.expectAtom("a rule or relation")
		if err != nil {
			return nil, err
		}

		if head.Value == keywordRule {
			return r.parseRule(open)
		}
		return r.parseRelationBody(head)

	case TokenRParen:
		return nil, r.errorCurrent("unexpected ')' at top level",
			"remove the extra closing parenthesis")
	}
	return nil, r.errorCurrent("unexpected end of input", "")
}

// parseRule parses the remainder of "(<= sentence literal+)" after the
// keyword has been consumed.
func (r *run) parseRule(open Token) (*ast.Rule, error) {
	head, err := r.parseSentence()
	if err != nil {
		return nil, err
	}

	body := make([]ast.Literal, 0)
	for r.current.Type != TokenRParen {
		if r.current.Type == TokenEOF {
			return nil, r.errorAt(open, "unterminated rule, unbalanced parenthesis")
		}
		lit, err := r.parseLiteral()
		if err != nil {
			return nil, err
		}
		body = append(body, lit)
	}
	r.advance() // consume ')'

	if len(body) == 0 {
		return nil, r.errorAt(open,
			"rule must have at least one body literal",
			"a bodyless rule is written as a bare sentence without '<='")
	}
	return ast.NewRule(head, body)
}

func (r *run) parseSentence() (ast.Sentence, error) {
	switch r.current.Type {
	case TokenAtom:
		return r.parseProposition()

	case TokenLParen:
		open := r.current
		r.advance()
		if err := r.enter(open); err != nil {
			return nil, err
		}
		defer r.leave()

		head, err := r.expectAtom("a relation name")
		if err != nil {
			return nil, err
		}
		if isKeyword(head.Value) {
			return nil, r.errorAt(head,
				fmt.Sprintf("reserved keyword %q cannot be used as a sentence", head.Value))
		}
		return r.parseRelationBody(head)

	case TokenRParen:
		return nil, r.errorCurrent("expected a sentence, found ')'", "")
	}
	return nil, r.errorCurrent("expected a sentence, found end of input",
		"add a closing ')' if a rule or relation is unterminated")
}

// parseRelationBody parses "term+ )" after the relation name has been
// consumed. The caller has already entered the parenthesized form.
func (r *run) parseRelationBody(name Token) (*ast.Relation, error) {
	if err := validConstant(name, r); err != nil {
		return nil, err
	}

	args := make([]ast.Term, 0)
	for r.current.Type != TokenRParen {
		if r.current.Type == TokenEOF {
			return nil, r.errorAt(name, "unterminated relation, unbalanced parenthesis",
				"add a closing ')'")
		}
		term, err := r.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, term)
	}
	r.advance() // consume ')'

	if len(args) == 0 {
		return nil, r.errorAt(name,
			fmt.Sprintf("relation %q must have at least one argument", name.Value),
			fmt.Sprintf("write %s without parentheses for a proposition", name.Value))
	}
	return ast.NewRelation(name.Value, args)
}

func (r *run) parseLiteral() (ast.Literal, error) {
	switch r.current.Type {
	case TokenAtom:
		return r.parseProposition()

	case TokenLParen:
		open := r.current
		r.advance()
		if err := r.enter(open); err != nil {
			return nil, err
		}
		defer r.leave()

		head, err := r.expectAtom("a literal")
		if err != nil {
			return nil, err
		}

		switch head.Value {
		case keywordNot:
			return r.parseNot(open)
		case keywordOr:
			return r.parseOr(open)
		case keywordDistinct:
			return r.parseDistinct(open)
		case keywordRule:
			return nil, r.errorAt(head, "a rule cannot appear inside a rule body")
		}
		return r.parseRelationBody(head)

	case TokenRParen:
		return nil, r.errorCurrent("expected a literal, found ')'", "")
	}
	return nil, r.errorCurrent("expected a literal, found end of input",
		"add a closing ')' if a rule is unterminated")
}

// parseNot parses the remainder of "(not literal)".
func (r *run) parseNot(open Token) (*ast.Not, error) {
	lit, err := r.parseLiteral()
	if err != nil {
		return nil, err
	}
	if err := r.expectRParen(open, "negation"); err != nil {
		return nil, err
	}
	return ast.NewNot(lit), nil
}

// parseOr parses the remainder of "(or literal+)".
func (r *run) parseOr(open Token) (*ast.Or, error) {
	lits := make([]ast.Literal, 0)
	for r.current.Type != TokenRParen {
		if r.current.Type == TokenEOF {
			return nil, r.errorAt(open, "unterminated disjunction, unbalanced parenthesis")
		}
		lit, err := r.parseLiteral()
		if err != nil {
			return nil, err
		}
		lits = append(lits, lit)
	}
	r.advance() // consume ')'

	if len(lits) == 0 {
		return nil, r.errorAt(open, "disjunction must have at least one literal")
	}
	return ast.NewOr(lits)
}

// parseDistinct parses the remainder of "(distinct term term)".
func (r *run) parseDistinct(open Token) (*ast.Distinct, error) {
	term1, err := r.parseTerm()
	if err != nil {
		return nil, err
	}
	term2, err := r.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := r.expectRParen(open, "distinct constraint"); err != nil {
		return nil, err
	}
	return ast.NewDistinct(term1, term2), nil
}

func (r *run) parseTerm() (ast.Term, error) {
	switch r.current.Type {
	case TokenAtom:
		tok := r.current
		if strings.HasPrefix(tok.Value, "?") {
			return r.parseVariable()
		}
		if err := validConstant(tok, r); err != nil {
			return nil, err
		}
		r.advance()
		return ast.NewConstant(tok.Value), nil

	case TokenLParen:
		open := r.current
		r.advance()
		if err := r.enter(open); err != nil {
			return nil, err
		}
		defer r.leave()

		name, err := r.expectAtom("a function name")
		if err != nil {
			return nil, err
		}
		if isKeyword(name.Value) {
			return nil, r.errorAt(name,
				fmt.Sprintf("reserved keyword %q cannot be used as a term", name.Value))
		}
		return r.parseFunctionBody(name)

	case TokenRParen:
		return nil, r.errorCurrent("expected a term, found ')'", "")
	}
	return nil, r.errorCurrent("expected a term, found end of input",
		"add a closing ')' if a relation or function is unterminated")
}

// parseFunctionBody parses "term+ )" after the function name has been
// consumed. The caller has already entered the parenthesized form.
func (r *run) parseFunctionBody(name Token) (*ast.Function, error) {
	if err := validConstant(name, r); err != nil {
		return nil, err
	}

	args := make([]ast.Term, 0)
	for r.current.Type != TokenRParen {
		if r.current.Type == TokenEOF {
			return nil, r.errorAt(name, "unterminated function, unbalanced parenthesis",
				"add a closing ')'")
		}
		term, err := r.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, term)
	}
	r.advance() // consume ')'

	if len(args) == 0 {
		return nil, r.errorAt(name,
			fmt.Sprintf("function %q must have at least one argument", name.Value),
			fmt.Sprintf("write %s without parentheses for a constant", name.Value))
	}
	return ast.NewFunction(name.Value, args)
}

func (r *run) parseVariable() (*ast.Variable, error) {
	tok := r.current
	name := strings.TrimPrefix(tok.Value, "?")
	if name == "" {
		return nil, r.errorAt(tok, "variable must have a name after '?'")
	}
	if strings.HasPrefix(name, "?") {
		return nil, r.errorAt(tok, "variable name cannot start with '?'")
	}
	if isKeyword(name) {
		return nil, r.errorAt(tok,
			fmt.Sprintf("reserved keyword %q cannot be used as a variable name", name))
	}
	r.advance()
	return ast.NewVariable(name), nil
}

func (r *run) parseProposition() (*ast.Proposition, error) {
	tok := r.current
	if err := validConstant(tok, r); err != nil {
		return nil, err
	}
	r.advance()
	return ast.NewProposition(tok.Value), nil
}

func (r *run) expectAtom(what string) (Token, error) {
	if r.current.Type != TokenAtom {
		return Token{}, r.errorCurrent(
			fmt.Sprintf("expected %s, found %s", what, r.current.Type), "")
	}
	tok := r.current
	r.advance()
	return tok, nil
}

func (r *run) expectRParen(open Token, what string) error {
	if r.current.Type == TokenEOF {
		return r.errorAt(open,
			fmt.Sprintf("unterminated %s, unbalanced parenthesis", what),
			"add a closing ')'")
	}
	if r.current.Type != TokenRParen {
		return r.errorCurrent(
			fmt.Sprintf("expected ')' to close %s, found %s", what, r.current.Type), "")
	}
	r.advance()
	return nil
}

// validConstant checks that an atom token is usable as a constant name:
// reserved keywords are excluded, as is the '?' variable sigil.
func validConstant(tok Token, r *run) error {
	if isKeyword(tok.Value) {
		return r.errorAt(tok,
			fmt.Sprintf("reserved keyword %q cannot be used as a constant", tok.Value))
	}
	if strings.HasPrefix(tok.Value, "?") {
		return r.errorAt(tok,
			fmt.Sprintf("variable %q cannot appear here, expected a constant", tok.Value))
	}
	return nil
}

func isKeyword(s string) bool {
	switch s {
	case keywordRule, keywordNot, keywordOr, keywordDistinct:
		return true
	}
	return false
}

func (r *run) errorCurrent(message, suggestion string) *gdlErrors.Error {
	err := r.errorAt(r.current, message)
	err.Suggestion = suggestion
	return err
}

func (r *run) errorAt(tok Token, message string, suggestion ...string) *gdlErrors.Error {
	err := gdlErrors.NewSyntaxError(message, tok.Loc)
	err.Token = tok.Value
	if len(suggestion) > 0 {
		err.Suggestion = suggestion[0]
	}
	return err
}
