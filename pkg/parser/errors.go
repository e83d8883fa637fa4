package parser

import (
	"fmt"
	"strings"
)

// Span is a half-open byte-offset range into the source text.
type Span struct {
	Start int
	End   int
}

// ParseError describes a single parse failure. Token mismatches carry the
// set of alternatives that were valid at that point and the token actually
// found; semantic errors (unresolved type name, oversized array length)
// carry a custom message instead.
type ParseError struct {
	Span     Span
	Expected []string // alternatives, literal tokens already quoted
	Found    string   // empty means end of input
	Msg      string   // custom message; when set, Expected/Found are unused
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "at %d..%d: ", e.Span.Start, e.Span.End)

	if e.Msg != "" {
		b.WriteString(e.Msg)
		return b.String()
	}

	b.WriteString("expected ")
	switch len(e.Expected) {
	case 0:
		b.WriteString("[unknown]")
	case 1:
		b.WriteString(e.Expected[0])
	case 2:
		b.WriteString(e.Expected[0])
		b.WriteString(" or ")
		b.WriteString(e.Expected[1])
	default:
		for _, alt := range e.Expected[:len(e.Expected)-1] {
			b.WriteString(alt)
			b.WriteString(", ")
		}
		b.WriteString("or ")
		b.WriteString(e.Expected[len(e.Expected)-1])
	}

	b.WriteString(", but found ")
	if e.Found == "" {
		b.WriteString("end of input")
	} else {
		fmt.Fprintf(&b, "'%s'", e.Found)
	}
	return b.String()
}
