package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := `const char *(*(*bar)[5])(int);`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TokenConst, "const"},
		{TokenChar, "char"},
		{TokenStar, "*"},
		{TokenLParen, "("},
		{TokenStar, "*"},
		{TokenLParen, "("},
		{TokenStar, "*"},
		{TokenIdent, "bar"},
		{TokenRParen, ")"},
		{TokenLBracket, "["},
		{TokenNumber, "5"},
		{TokenRBracket, "]"},
		{TokenRParen, ")"},
		{TokenLParen, "("},
		{TokenInt, "int"},
		{TokenRParen, ")"},
		{TokenSemicolon, ";"},
		{TokenEOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `typedef struct union enum const volatile restrict void _Bool _Complex unsigned`

	tests := []TokenType{
		TokenTypedef,
		TokenStruct,
		TokenUnion,
		TokenEnum,
		TokenConst,
		TokenVolatile,
		TokenRestrict,
		TokenVoid,
		TokenBool,
		TokenComplex,
		TokenUnsigned,
		TokenEOF,
	}

	l := New(input)

	for i, expected := range tests {
		tok := l.NextToken()
		if tok.Type != expected {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, expected, tok.Type)
		}
	}
}

func TestTokenSpans(t *testing.T) {
	input := "int x = 5;"

	tests := []struct {
		literal string
		pos     int
		end     int
	}{
		{"int", 0, 3},
		{"x", 4, 5},
		{"=", 6, 7},
		{"5", 8, 9},
		{";", 9, 10},
		{"", 10, 10},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Literal != tt.literal {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.literal, tok.Literal)
		}
		if tok.Pos != tt.pos || tok.End != tt.end {
			t.Errorf("tests[%d] - span wrong for %q. expected=%d..%d, got=%d..%d",
				i, tt.literal, tt.pos, tt.end, tok.Pos, tok.End)
		}
	}
}

func TestIllegalToken(t *testing.T) {
	l := New("int x = 5")

	var illegal []Token
	for _, tok := range l.Tokens() {
		if tok.Type == TokenIllegal {
			illegal = append(illegal, tok)
		}
	}

	if len(illegal) != 1 {
		t.Fatalf("expected 1 illegal token, got %d", len(illegal))
	}
	if illegal[0].Literal != "=" {
		t.Errorf("illegal literal wrong. expected=%q, got=%q", "=", illegal[0].Literal)
	}
}

func TestTokensEndsWithEOF(t *testing.T) {
	toks := New("").Tokens()
	if len(toks) != 1 {
		t.Fatalf("expected 1 token, got %d", len(toks))
	}
	if toks[0].Type != TokenEOF {
		t.Errorf("expected EOF, got %q", toks[0].Type)
	}
}
