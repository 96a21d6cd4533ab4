package parser

import (
	"github.com/gsingh93/gdl-parser/pkg/gdl/ast"
)

// TokenType represents the type of a lexical token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenLParen
	TokenRParen
	TokenAtom
)

// String returns a readable name for the token type, used in error messages.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of input"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenAtom:
		return "token"
	}
	return "unknown"
}

// Token represents a lexical token together with its source location.
type Token struct {
	Type  TokenType
	Value string
	Loc   ast.Location
}

// Lexer tokenizes GDL input. Tokens are separated by whitespace and
// parenthesis boundaries; a semicolon begins a comment extending to end of
// line, treated as whitespace; atoms are maximal runs of any other
// characters.
type Lexer struct {
	input string
	file  string
	pos   int
	line  int
	col   int
}

// NewLexer creates a lexer over the given input. The file name is only used
// for locations and may be empty for in-memory input.
func NewLexer(input, file string) *Lexer {
	return &Lexer{input: input, file: file, line: 1, col: 1}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	loc := l.location()
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Loc: loc}
	}

	switch l.input[l.pos] {
	case '(':
		l.advance()
		return Token{Type: TokenLParen, Value: "(", Loc: loc}
	case ')':
		l.advance()
		return Token{Type: TokenRParen, Value: ")", Loc: loc}
	}

	return l.readAtom()
}

func (l *Lexer) readAtom() Token {
	loc := l.location()
	start := l.pos
	for l.pos < len(l.input) && !isSeparator(l.input[l.pos]) {
		l.advance()
	}
	return Token{Type: TokenAtom, Value: l.input[start:l.pos], Loc: loc}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch {
		case isSpace(ch):
			l.advance()
		case ch == ';':
			// Comment runs to end of line.
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func (l *Lexer) location() ast.Location {
	return ast.Location{File: l.file, Line: l.line, Column: l.col, Offset: l.pos}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isSeparator(ch byte) bool {
	return isSpace(ch) || ch == '(' || ch == ')' || ch == ';'
}
