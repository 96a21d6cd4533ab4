package parser

import "testing"

func TestLexerTokenizes(t *testing.T) {
	lexer := NewLexer("(cell 1 ?x)", "")

	want := []struct {
		typ   TokenType
		value string
	}{
		{TokenLParen, "("},
		{TokenAtom, "cell"},
		{TokenAtom, "1"},
		{TokenAtom, "?x"},
		{TokenRParen, ")"},
		{TokenEOF, ""},
	}

	for i, w := range want {
		tok := lexer.NextToken()
		if tok.Type != w.typ {
			t.Errorf("token %d: expected type %s, got %s", i, w.typ, tok.Type)
		}
		if tok.Value != w.value {
			t.Errorf("token %d: expected value %q, got %q", i, w.value, tok.Value)
		}
	}
}

func TestLexerSkipsComments(t *testing.T) {
	lexer := NewLexer("; a whole comment line\nrole ; trailing comment\n", "")

	tok := lexer.NextToken()
	if tok.Type != TokenAtom || tok.Value != "role" {
		t.Fatalf("expected atom role, got %s %q", tok.Type, tok.Value)
	}
	if tok.Loc.Line != 2 {
		t.Errorf("expected atom on line 2, got line %d", tok.Loc.Line)
	}

	if tok := lexer.NextToken(); tok.Type != TokenEOF {
		t.Errorf("expected EOF after comment, got %s %q", tok.Type, tok.Value)
	}
}

func TestLexerAtomsEndAtSeparators(t *testing.T) {
	// No whitespace between atoms and parens; ';' also terminates an atom.
	lexer := NewLexer("(not(p q;comment\n))", "")

	want := []struct {
		typ   TokenType
		value string
	}{
		{TokenLParen, "("},
		{TokenAtom, "not"},
		{TokenLParen, "("},
		{TokenAtom, "p"},
		{TokenAtom, "q"},
		{TokenRParen, ")"},
		{TokenRParen, ")"},
		{TokenEOF, ""},
	}

	for i, w := range want {
		tok := lexer.NextToken()
		if tok.Type != w.typ || tok.Value != w.value {
			t.Errorf("token %d: expected %s %q, got %s %q", i, w.typ, w.value, tok.Type, tok.Value)
		}
	}
}

func TestLexerTracksLocations(t *testing.T) {
	lexer := NewLexer("(p\n  q)", "game.kif")

	tok := lexer.NextToken() // '('
	if tok.Loc.Line != 1 || tok.Loc.Column != 1 {
		t.Errorf("expected 1:1, got %d:%d", tok.Loc.Line, tok.Loc.Column)
	}
	if tok.Loc.File != "game.kif" {
		t.Errorf("expected file game.kif, got %q", tok.Loc.File)
	}

	lexer.NextToken() // p

	tok = lexer.NextToken() // q
	if tok.Loc.Line != 2 || tok.Loc.Column != 3 {
		t.Errorf("expected 2:3, got %d:%d", tok.Loc.Line, tok.Loc.Column)
	}
	if tok.Loc.Offset != 5 {
		t.Errorf("expected offset 5, got %d", tok.Loc.Offset)
	}
}
