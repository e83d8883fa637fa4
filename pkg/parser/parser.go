// Package parser implements a recursive descent parser for C declarations.
//
// The grammar is the C89/C99 declarator grammar restricted to declarations
// without initializers or bodies. Because C's grammar is not context-free
// (a bare identifier may be a type name if an earlier typedef introduced
// it), the parser threads an explicit State through token consumption.
package parser

import (
	"fmt"
	"strconv"

	"github.com/cexplain/cexplain/pkg/ast"
	"github.com/cexplain/cexplain/pkg/lexer"
)

// Parser parses C declaration source into AST declarations. It works over
// a buffered token slice so it can backtrack, which longest-match
// primitive specifiers and parenthesized declarators both need.
type Parser struct {
	toks   []lexer.Token
	pos    int
	state  *State
	errors []*ParseError
}

// Parse parses zero or more semicolon-separated declarations. It returns
// either the declarations in source order or a non-empty list of errors;
// never both. A nil state is treated as a fresh empty one.
func Parse(src string, state *State) ([]ast.Declaration, []*ParseError) {
	if state == nil {
		state = NewState()
	}
	p := &Parser{toks: lexer.New(src).Tokens(), state: state}

	var decls []ast.Declaration
	p.skipSemicolons()
	for !p.curIs(lexer.TokenEOF) {
		decl, ok := p.parseTopLevel()
		if !ok {
			p.recover()
			p.skipSemicolons()
			continue
		}
		decls = append(decls, decl)

		switch {
		case p.curIs(lexer.TokenSemicolon):
			p.skipSemicolons()
		case p.curIs(lexer.TokenEOF):
		default:
			// A complete declarator could still continue with a suffix.
			p.errorExpected("'['", "'('", "end of input")
			p.recover()
			p.skipSemicolons()
		}
	}

	if len(p.errors) > 0 {
		return nil, p.errors
	}
	return decls, nil
}

func (p *Parser) cur() lexer.Token {
	return p.toks[p.pos]
}

func (p *Parser) curIs(t lexer.TokenType) bool {
	return p.cur().Type == t
}

func (p *Parser) peekIs(t lexer.TokenType) bool {
	if p.pos+1 >= len(p.toks) {
		return false
	}
	return p.toks[p.pos+1].Type == t
}

func (p *Parser) next() {
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
}

// errorExpected records a token-mismatch error at the current token.
func (p *Parser) errorExpected(expected ...string) {
	tok := p.cur()
	found := tok.Literal
	if tok.Type == lexer.TokenEOF {
		found = ""
	}
	p.errors = append(p.errors, &ParseError{
		Span:     Span{Start: tok.Pos, End: tok.End},
		Expected: expected,
		Found:    found,
	})
}

// errorCustom records a semantic error with a custom message.
func (p *Parser) errorCustom(span Span, msg string) {
	p.errors = append(p.errors, &ParseError{Span: span, Msg: msg})
}

// recover skips tokens until a statement boundary so that parsing can
// continue and report further independent errors.
func (p *Parser) recover() {
	for !p.curIs(lexer.TokenSemicolon) && !p.curIs(lexer.TokenEOF) {
		p.next()
	}
}

func (p *Parser) skipSemicolons() {
	for p.curIs(lexer.TokenSemicolon) {
		p.next()
	}
}

// parseTopLevel parses one statement: either a typedef declaration or a
// plain declaration. A typedef registers the declared name as a custom
// type and marks the declaration with the typedef qualifier.
func (p *Parser) parseTopLevel() (ast.Declaration, bool) {
	if p.curIs(lexer.TokenTypedef) {
		p.next()
		decl, ok := p.parseDeclaration()
		if !ok {
			return ast.Declaration{}, false
		}
		decl.BaseType.Qualifiers.Add(ast.QualTypedef)
		if name, ok := ast.DeclaratorName(decl.Declarator); ok {
			p.state.Define(name)
		}
		return decl, true
	}
	return p.parseDeclaration()
}

// parseDeclaration parses "qualifier* type declarator". It is also used
// for function parameters, which are full (possibly anonymous)
// declarations themselves.
func (p *Parser) parseDeclaration() (ast.Declaration, bool) {
	quals := p.parseQualifiers()
	typ, ok := p.parseType()
	if !ok {
		return ast.Declaration{}, false
	}
	d, ok := p.parseDeclarator()
	if !ok {
		return ast.Declaration{}, false
	}
	return ast.Declaration{
		BaseType:   ast.QualifiedType{Qualifiers: quals, Type: typ},
		Declarator: d,
	}, true
}

// parseQualifiers consumes zero or more type qualifier keywords.
// Duplicates collapse into the set.
func (p *Parser) parseQualifiers() ast.Qualifiers {
	var quals ast.Qualifiers
	for {
		switch p.cur().Type {
		case lexer.TokenConst:
			quals.Add(ast.QualConst)
		case lexer.TokenVolatile:
			quals.Add(ast.QualVolatile)
		case lexer.TokenRestrict:
			quals.Add(ast.QualRestrict)
		default:
			return quals
		}
		p.next()
	}
}

// parseType parses a base type: a primitive specifier sequence, a
// struct/union/enum with a tag, or a previously registered typedef name.
func (p *Parser) parseType() (ast.Type, bool) {
	if name, ok := p.matchPrimitive(); ok {
		return ast.Primitive{Name: name}, true
	}

	switch p.cur().Type {
	case lexer.TokenStruct, lexer.TokenUnion, lexer.TokenEnum:
		var kind ast.RecordKind
		switch p.cur().Type {
		case lexer.TokenStruct:
			kind = ast.RecordStruct
		case lexer.TokenUnion:
			kind = ast.RecordUnion
		case lexer.TokenEnum:
			kind = ast.RecordEnum
		}
		p.next()
		if !p.curIs(lexer.TokenIdent) {
			p.errorExpected("identifier")
			return nil, false
		}
		tag := p.cur().Literal
		p.next()
		return ast.Record{Kind: kind, Tag: tag}, true

	case lexer.TokenIdent:
		tok := p.cur()
		if !p.state.IsDefined(tok.Literal) {
			p.errorCustom(Span{Start: tok.Pos, End: tok.End},
				fmt.Sprintf("%q is used as a type but has not been defined", tok.Literal))
			return nil, false
		}
		p.next()
		return ast.Custom{Name: tok.Literal}, true
	}

	p.errorExpected("type qualifier", "type")
	return nil, false
}

// matchPrimitive tries each valid type-specifier sequence against the
// upcoming tokens, longest first, and consumes the first that matches.
func (p *Parser) matchPrimitive() (string, bool) {
	for i, words := range primitiveWords {
		if p.matchKeywords(words) {
			return primitiveSpellings[i], true
		}
	}
	return "", false
}

// matchKeywords consumes the given keyword sequence if the upcoming
// tokens spell it exactly; otherwise it leaves the position untouched.
func (p *Parser) matchKeywords(words []string) bool {
	for i, word := range words {
		tok := p.toks[min(p.pos+i, len(p.toks)-1)]
		if !tok.Type.IsTypeSpecifier() || tok.Literal != word {
			return false
		}
	}
	p.pos += len(words)
	return true
}

// parseDeclarator parses "ptr_prefix* suffixed_atom". Postfix suffixes
// bind tighter than the pointer prefixes, so the atom is suffixed first
// and the prefixes are folded around the whole afterwards, leftmost
// prefix outermost.
func (p *Parser) parseDeclarator() (ast.Declarator, bool) {
	var prefixes []ast.Qualifiers
	for p.curIs(lexer.TokenStar) {
		p.next()
		prefixes = append(prefixes, p.parseQualifiers())
	}

	d, ok := p.parseSuffixedAtom()
	if !ok {
		return nil, false
	}

	for i := len(prefixes) - 1; i >= 0; i-- {
		d = ast.Ptr{Inner: d, Qualifiers: prefixes[i]}
	}
	return d, true
}

// parseSuffixedAtom parses an atom followed by zero or more array or
// function suffixes, wrapping inner to outer.
func (p *Parser) parseSuffixedAtom() (ast.Declarator, bool) {
	d := p.parseAtom()
	for {
		switch {
		case p.curIs(lexer.TokenLBracket):
			p.next()
			var size *uint64
			if p.curIs(lexer.TokenNumber) {
				tok := p.cur()
				n, err := strconv.ParseUint(tok.Literal, 10, 64)
				if err != nil {
					p.errorCustom(Span{Start: tok.Pos, End: tok.End},
						"number too large to fit in target type")
				} else {
					size = &n
				}
				p.next()
			}
			if !p.curIs(lexer.TokenRBracket) {
				p.errorExpected("']'")
				return nil, false
			}
			p.next()
			d = ast.Array{Inner: d, Size: size}

		case p.curIs(lexer.TokenLParen):
			p.next()
			params, ok := p.parseParams()
			if !ok {
				return nil, false
			}
			if !p.curIs(lexer.TokenRParen) {
				p.errorExpected("','", "')'")
				return nil, false
			}
			p.next()
			d = ast.Function{Inner: d, Params: params}

		default:
			return d, true
		}
	}
}

// parseAtom parses an identifier, a parenthesized sub-declarator, or
// nothing (an anonymous declarator). A '(' is ambiguous between grouping
// and a function suffix on an anonymous atom; grouping is tried first and
// the token position rolls back if it does not parse.
func (p *Parser) parseAtom() ast.Declarator {
	switch {
	case p.curIs(lexer.TokenIdent):
		name := p.cur().Literal
		p.next()
		return ast.Ident{Name: name}
	case p.curIs(lexer.TokenLParen):
		if d, ok := p.tryGroupedDeclarator(); ok {
			return d
		}
		return ast.Anonymous{}
	}
	return ast.Anonymous{}
}

// tryGroupedDeclarator speculatively parses "'(' declarator ')'".
// On failure the token position and recorded errors are restored, and the
// caller treats the '(' as a function suffix instead.
func (p *Parser) tryGroupedDeclarator() (ast.Declarator, bool) {
	mark := p.pos
	errMark := len(p.errors)

	p.next() // consume '('
	d, ok := p.parseDeclarator()
	if ok && p.curIs(lexer.TokenRParen) {
		p.next()
		return d, true
	}

	p.pos = mark
	p.errors = p.errors[:errMark]
	return nil, false
}

// parseParams parses a function parameter list up to (not including) the
// closing ')'. A list of exactly "void" means zero parameters, as does an
// empty list. A trailing comma is permitted.
func (p *Parser) parseParams() ([]ast.Declaration, bool) {
	if p.curIs(lexer.TokenRParen) {
		return nil, true
	}
	if p.curIs(lexer.TokenVoid) && p.peekIs(lexer.TokenRParen) {
		p.next()
		return nil, true
	}

	var params []ast.Declaration
	for {
		decl, ok := p.parseDeclaration()
		if !ok {
			return nil, false
		}
		params = append(params, decl)

		if !p.curIs(lexer.TokenComma) {
			return params, true
		}
		p.next()
		if p.curIs(lexer.TokenRParen) {
			// trailing comma
			return params, true
		}
	}
}
