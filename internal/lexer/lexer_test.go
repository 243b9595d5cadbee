package lexer

import "testing"

func TestNextTokenPunctuationAndConnectives(t *testing.T) {
	input := `fof(ax1, axiom, ! [X] : (p(X) => ? [Y] : q(X,Y)) ).
% line comment
/* block
   comment */
thf(ty, type, f: $i > $o).
cnf(c1, axiom, ~ p(a) | q(b)).`

	tests := []struct {
		typ TokenType
		lit string
	}{
		{LOWER_WORD, "fof"},
		{LPAREN, "("},
		{LOWER_WORD, "ax1"},
		{COMMA, ","},
		{LOWER_WORD, "axiom"},
		{COMMA, ","},
		{FORALL, "!"},
		{LBRACKET, "["},
		{UPPER_WORD, "X"},
		{RBRACKET, "]"},
		{COLON, ":"},
		{LPAREN, "("},
		{LOWER_WORD, "p"},
		{LPAREN, "("},
		{UPPER_WORD, "X"},
		{RPAREN, ")"},
		{IMPLIES, "=>"},
		{EXISTS, "?"},
		{LBRACKET, "["},
		{UPPER_WORD, "Y"},
		{RBRACKET, "]"},
		{COLON, ":"},
		{LOWER_WORD, "q"},
		{LPAREN, "("},
		{UPPER_WORD, "X"},
		{COMMA, ","},
		{UPPER_WORD, "Y"},
		{RPAREN, ")"},
		{RPAREN, ")"},
		{RPAREN, ")"},
		{DOT, "."},
		{LOWER_WORD, "thf"},
		{LPAREN, "("},
		{LOWER_WORD, "ty"},
		{COMMA, ","},
		{LOWER_WORD, "type"},
		{COMMA, ","},
		{LOWER_WORD, "f"},
		{COLON, ":"},
		{DOLLAR_WORD, "$i"},
		{GENTYPE, ">"},
		{DOLLAR_WORD, "$o"},
		{RPAREN, ")"},
		{DOT, "."},
		{LOWER_WORD, "cnf"},
		{LPAREN, "("},
		{LOWER_WORD, "c1"},
		{COMMA, ","},
		{LOWER_WORD, "axiom"},
		{COMMA, ","},
		{NOT, "~"},
		{LOWER_WORD, "p"},
		{LPAREN, "("},
		{LOWER_WORD, "a"},
		{RPAREN, ")"},
		{VLINE, "|"},
		{LOWER_WORD, "q"},
		{LPAREN, "("},
		{LOWER_WORD, "b"},
		{RPAREN, ")"},
		{RPAREN, ")"},
		{DOT, "."},
		{EOF, ""},
	}

	l := New(input, "test.p")
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.typ {
			t.Fatalf("test[%d] - wrong type. expected=%s, got=%s (%q)", i, tt.typ, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.lit {
			t.Fatalf("test[%d] - wrong literal. expected=%q, got=%q", i, tt.lit, tok.Literal)
		}
	}
}

func TestNextTokenConnectiveZoo(t *testing.T) {
	tests := []struct {
		typ TokenType
		lit string
	}{
		{IFF, "<=>"},
		{IMPLIED, "<="},
		{IMPLIES, "=>"},
		{XOR, "<~>"},
		{NOR, "~|"},
		{NAND, "~&"},
		{TYFORALL, "!>"},
		{SUBTYPE, "?*"},
		{ATPLUS, "@+"},
		{ATMINUS, "@-"},
		{APPLY2, "@@+"},
		{APPLY2M, "@@-"},
		{APPLY2E, "@@="},
		{APPLY, "@"},
		{NOTEQUALS, "!="},
	}
	for _, tt := range tests {
		l := New(tt.lit, "t")
		tok := l.NextToken()
		if tok.Type != tt.typ || tok.Literal != tt.lit {
			t.Errorf("input %q: got {%s,%q}, want {%s,%q}", tt.lit, tok.Type, tok.Literal, tt.typ, tt.lit)
		}
	}
}

func TestNextTokenLiterals(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
		lit   string
	}{
		{"foo_bar", LOWER_WORD, "foo_bar"},
		{"X1", UPPER_WORD, "X1"},
		{"'a quoted atom'", SINGLE_QUOTED, "a quoted atom"},
		{`"a distinct object"`, DISTINCT_OBJECT, "a distinct object"},
		{"$true", DOLLAR_WORD, "$true"},
		{"$$meta", DOLLAR_DOLLAR_WORD, "$$meta"},
		{"42", INTEGER, "42"},
		{"-7", INTEGER, "-7"},
		{"3/4", RATIONAL, "3/4"},
		{"1.5", REAL, "1.5"},
		{"2.0E10", REAL, "2.0E10"},
		{"1E5", REAL, "1E5"},
	}
	for _, tt := range tests {
		l := New(tt.input, "t")
		tok := l.NextToken()
		if tok.Type != tt.typ {
			t.Errorf("input %q: type = %s, want %s", tt.input, tok.Type, tt.typ)
		}
		if tok.Literal != tt.lit {
			t.Errorf("input %q: literal = %q, want %q", tt.input, tok.Literal, tt.lit)
		}
	}
}

func TestNextTokenSkipsComments(t *testing.T) {
	l := New("% comment\n/* block */p", "t")
	tok := l.NextToken()
	if tok.Type != LOWER_WORD || tok.Literal != "p" {
		t.Fatalf("got %v, want LOWER_WORD p", tok)
	}
}

func TestSingleQuotedEscapes(t *testing.T) {
	l := New(`'it\'s here'`, "t")
	tok := l.NextToken()
	if tok.Type != SINGLE_QUOTED || tok.Literal != "it's here" {
		t.Fatalf("got %v, want SINGLE_QUOTED \"it's here\"", tok)
	}
}

func TestLexerPositions(t *testing.T) {
	l := New("foo\nbar", "pos.p")
	first := l.NextToken()
	if first.Line != 1 || first.Column != 1 {
		t.Fatalf("first token pos = %d:%d, want 1:1", first.Line, first.Column)
	}
	second := l.NextToken()
	if second.Line != 2 {
		t.Fatalf("second token line = %d, want 2", second.Line)
	}
}
