// Package explain converts declaration ASTs into human-readable English
// explanations.
//
// The walk is bottom-up over the declarator, inside out: each step carries
// the phrase built so far, the current grammatical plurality, and a
// pending identifier name that has not been emitted yet, so the name can
// be spliced in next to the wrapping word it belongs to ("a pointer named
// p to an int").
package explain

import (
	"strconv"

	"github.com/cexplain/cexplain/pkg/ast"
	"github.com/cexplain/cexplain/pkg/highlight"
)

// Plurality tracks whether the declarator being explained denotes one
// value or a collection. It drives article choice and pluralization of
// the trailing type name.
type Plurality int

const (
	Singular Plurality = iota
	Plural
)

// explanation is the accumulator threaded through the declarator walk.
type explanation struct {
	name      string // pending root identifier, not yet emitted
	hasName   bool
	msg       highlight.Text
	plurality Plurality
}

// Explain produces the English explanation of a single declaration as
// highlighted text.
func Explain(decl ast.Declaration) highlight.Text {
	if decl.BaseType.Qualifiers.Has(ast.QualTypedef) {
		return explainTypedef(decl).msg
	}
	return explainDeclaration(decl).msg
}

// articleFor returns the indefinite article for the noun, followed by a
// space.
func articleFor(noun string) string {
	if noun == "" {
		return ""
	}
	switch noun[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an "
	}
	return "a "
}

// pluralSuffixFor naively returns the plural suffix for a noun.
func pluralSuffixFor(noun string) string {
	if noun == "" {
		return ""
	}
	switch noun[len(noun)-1] {
	case 's', 'x', 'z':
		return "es"
	}
	return "s"
}

// formatQualifiedType renders a base type with its qualifiers as tagged
// segments.
func formatQualifiedType(qt ast.QualifiedType) highlight.Text {
	kind := highlight.PrimitiveType
	switch qt.Type.(type) {
	case ast.Record, ast.Custom:
		kind = highlight.UserDefinedType
	}

	var out highlight.Text
	if !qt.Qualifiers.Empty() {
		out.Push(highlight.Segment{Text: qt.Qualifiers.String(), Kind: highlight.Qualifier})
		out.PushString(" ")
	}
	out.Push(highlight.Segment{Text: qt.Type.String(), Kind: kind})
	return out
}

func explainDeclaration(decl ast.Declaration) explanation {
	e := explainDeclarator(decl.Declarator, false)
	typeText := formatQualifiedType(decl.BaseType)

	switch e.plurality {
	case Singular:
		e.msg.PushString(articleFor(typeText[0].Text))
		e.msg.Extend(typeText)
	case Plural:
		suffix := pluralSuffixFor(typeText[len(typeText)-1].Text)
		e.msg.Extend(typeText)
		e.msg.PushString(suffix)
	}

	// A still-pending name means the declarator was a bare identifier.
	if e.hasName {
		e.msg.PushString(" named ")
		e.msg.Push(highlight.Segment{Text: e.name, Kind: highlight.Ident})
	}
	return e
}

// explainTypedef explains a declaration whose base type carries the
// typedef marker: "a type named NAME defined as ...". The declarator is
// walked with name splicing suppressed because the name belongs to the
// type being defined, not to an inner position.
func explainTypedef(decl ast.Declaration) explanation {
	qt := decl.BaseType
	qt.Qualifiers.Remove(ast.QualTypedef)
	typeText := formatQualifiedType(qt)

	var e explanation
	e.msg.PushString("a type")

	de := explainDeclarator(decl.Declarator, true)
	if de.hasName {
		e.msg.PushString(" named ")
		e.msg.Push(highlight.Segment{Text: de.name, Kind: highlight.UserDefinedType})
	}

	e.msg.PushString(" defined as ")
	e.msg.Extend(de.msg)

	switch de.plurality {
	case Singular:
		e.msg.PushString(articleFor(typeText[0].Text))
		e.msg.Extend(typeText)
	case Plural:
		suffix := pluralSuffixFor(typeText[len(typeText)-1].Text)
		e.msg.Extend(typeText)
		e.msg.PushString(suffix)
	}
	return e
}

func explainDeclarator(declarator ast.Declarator, skipName bool) explanation {
	switch d := declarator.(type) {
	case ast.Anonymous:
		return explanation{}

	case ast.Ident:
		return explanation{name: d.Name, hasName: true}

	case ast.Ptr:
		sub := explainDeclarator(d.Inner, skipName)
		hasQuals := !d.Qualifiers.Empty()
		switch sub.plurality {
		case Singular:
			sub.msg.PushString("a ")
			if hasQuals {
				sub.msg.Push(highlight.Segment{Text: d.Qualifiers.String(), Kind: highlight.Qualifier})
				sub.msg.PushString(" ")
			}
			sub.msg.Push(highlight.Segment{Text: "pointer", Kind: highlight.QuasiKeyword})
		case Plural:
			if hasQuals {
				sub.msg.Push(highlight.Segment{Text: d.Qualifiers.String(), Kind: highlight.Qualifier})
				sub.msg.PushString(" ")
			}
			sub.msg.Push(highlight.Segment{Text: "pointers", Kind: highlight.QuasiKeyword})
		}
		sub.msg.PushString(" ")
		if sub.hasName && !skipName {
			sub.msg.PushString("named ")
			sub.msg.Push(highlight.Segment{Text: sub.name, Kind: highlight.Ident})
			sub.msg.PushString(" ")
			sub.hasName = false
		}
		sub.msg.PushString("to ")
		// Plurality passes through: a pointer into a plural context
		// ("pointers to ...") leaves the trailing type plural.
		return sub

	case ast.Array:
		sub := explainDeclarator(d.Inner, skipName)
		switch sub.plurality {
		case Singular:
			sub.msg.PushString("an ")
			sub.msg.Push(highlight.Segment{Text: "array", Kind: highlight.QuasiKeyword})
		case Plural:
			sub.msg.Push(highlight.Segment{Text: "arrays", Kind: highlight.QuasiKeyword})
		}
		if sub.hasName && !skipName {
			sub.msg.PushString(" named ")
			sub.msg.Push(highlight.Segment{Text: sub.name, Kind: highlight.Ident})
			sub.hasName = false
		}
		sub.msg.PushString(" of ")
		if d.Size != nil {
			sub.msg.Push(highlight.Segment{
				Text: strconv.FormatUint(*d.Size, 10),
				Kind: highlight.Number,
			})
			sub.msg.PushString(" ")
		}
		sub.plurality = Plural
		return sub

	case ast.Function:
		sub := explainDeclarator(d.Inner, skipName)
		switch sub.plurality {
		case Singular:
			sub.msg.PushString("a ")
			sub.msg.Push(highlight.Segment{Text: "function", Kind: highlight.QuasiKeyword})
			if sub.hasName && !skipName {
				sub.msg.PushString(" named ")
				sub.msg.Push(highlight.Segment{Text: sub.name, Kind: highlight.Ident})
				sub.hasName = false
			}
			sub.msg.PushString(" that takes ")
		case Plural:
			// An identifier cannot itself be plural, so no name splice.
			sub.msg.Push(highlight.Segment{Text: "functions", Kind: highlight.QuasiKeyword})
			sub.msg.PushString(" that take ")
		}

		explainParams(&sub.msg, d.Params)

		switch sub.plurality {
		case Singular:
			sub.msg.PushString(" and returns ")
		case Plural:
			sub.msg.PushString(" and return ")
		}
		sub.plurality = Singular
		return sub
	}
	return explanation{}
}

// explainParams renders a parameter list: "no parameters" when empty,
// otherwise a parenthesized list with "and" before the last parameter and
// an Oxford comma from three parameters up. Each parameter is explained
// as a full declaration.
func explainParams(msg *highlight.Text, params []ast.Declaration) {
	switch len(params) {
	case 0:
		msg.PushString("no parameters")
	case 1:
		msg.PushString("(")
		msg.Extend(Explain(params[0]))
		msg.PushString(")")
	case 2:
		msg.PushString("(")
		msg.Extend(Explain(params[0]))
		msg.PushString(" and ")
		msg.Extend(Explain(params[1]))
		msg.PushString(")")
	default:
		msg.PushString("(")
		for _, param := range params[:len(params)-1] {
			msg.Extend(Explain(param))
			msg.PushString(", ")
		}
		msg.PushString("and ")
		msg.Extend(Explain(params[len(params)-1]))
		msg.PushString(")")
	}
}
