package lexer

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Literals
	TokenIdent  // foo, my_var
	TokenNumber // 10

	// Keywords
	TokenTypedef  // typedef
	TokenStruct   // struct
	TokenUnion    // union
	TokenEnum     // enum
	TokenConst    // const
	TokenVolatile // volatile
	TokenRestrict // restrict
	TokenVoid     // void
	TokenChar     // char
	TokenShort    // short
	TokenInt      // int
	TokenLong     // long
	TokenFloat    // float
	TokenDouble   // double
	TokenSigned   // signed
	TokenUnsigned // unsigned
	TokenBool     // _Bool
	TokenComplex  // _Complex

	// Delimiters
	TokenStar      // *
	TokenLParen    // (
	TokenRParen    // )
	TokenLBracket  // [
	TokenRBracket  // ]
	TokenSemicolon // ;
	TokenComma     // ,
)

var tokenNames = map[TokenType]string{
	TokenEOF:       "EOF",
	TokenIllegal:   "ILLEGAL",
	TokenIdent:     "IDENT",
	TokenNumber:    "NUMBER",
	TokenTypedef:   "typedef",
	TokenStruct:    "struct",
	TokenUnion:     "union",
	TokenEnum:      "enum",
	TokenConst:     "const",
	TokenVolatile:  "volatile",
	TokenRestrict:  "restrict",
	TokenVoid:      "void",
	TokenChar:      "char",
	TokenShort:     "short",
	TokenInt:       "int",
	TokenLong:      "long",
	TokenFloat:     "float",
	TokenDouble:    "double",
	TokenSigned:    "signed",
	TokenUnsigned:  "unsigned",
	TokenBool:      "_Bool",
	TokenComplex:   "_Complex",
	TokenStar:      "*",
	TokenLParen:    "(",
	TokenRParen:    ")",
	TokenLBracket:  "[",
	TokenRBracket:  "]",
	TokenSemicolon: ";",
	TokenComma:     ",",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token. Pos and End are byte offsets into the
// source so that parse errors can report exact spans.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int
	End     int
}

// keywords maps keyword strings to token types
var keywords = map[string]TokenType{
	"typedef":  TokenTypedef,
	"struct":   TokenStruct,
	"union":    TokenUnion,
	"enum":     TokenEnum,
	"const":    TokenConst,
	"volatile": TokenVolatile,
	"restrict": TokenRestrict,
	"void":     TokenVoid,
	"char":     TokenChar,
	"short":    TokenShort,
	"int":      TokenInt,
	"long":     TokenLong,
	"float":    TokenFloat,
	"double":   TokenDouble,
	"signed":   TokenSigned,
	"unsigned": TokenUnsigned,
	"_Bool":    TokenBool,
	"_Complex": TokenComplex,
}

// LookupIdent returns the token type for an identifier (keyword or IDENT)
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdent
}

// IsTypeSpecifier reports whether the token is one of the keywords that can
// appear inside a primitive type-specifier sequence like "unsigned long int".
func (t TokenType) IsTypeSpecifier() bool {
	switch t {
	case TokenVoid, TokenChar, TokenShort, TokenInt, TokenLong,
		TokenFloat, TokenDouble, TokenSigned, TokenUnsigned,
		TokenBool, TokenComplex:
		return true
	}
	return false
}
