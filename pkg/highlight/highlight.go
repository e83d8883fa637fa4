// Package highlight provides a tagged-segment text model for explanations.
// An explanation is a sequence of segments, each carrying a semantic kind,
// so that downstream formatters can style the output without the explainer
// knowing anything about terminals or HTML.
package highlight

import "strings"

// Kind is the semantic tag of a text segment.
type Kind int

const (
	// None marks connective text with no special meaning.
	None Kind = iota
	// Qualifier marks a type or storage qualifier like "const".
	Qualifier
	// PrimitiveType marks a builtin type name like "int".
	PrimitiveType
	// UserDefinedType marks a struct/union/enum or typedef name.
	UserDefinedType
	// Ident marks the declared identifier.
	Ident
	// Number marks a numeric literal such as an array length.
	Number
	// QuasiKeyword marks structural English words like "pointer" and
	// "array" that stand in for C constructs.
	QuasiKeyword
)

// Segment is a piece of text with a single semantic kind.
type Segment struct {
	Text string
	Kind Kind
}

// Text is an ordered sequence of segments whose concatenation is the
// explanation.
type Text []Segment

// Push appends a segment.
func (t *Text) Push(seg Segment) {
	*t = append(*t, seg)
}

// PushString appends untagged text. If the last segment is also untagged
// the text is appended to it instead of starting a new segment.
func (t *Text) PushString(s string) {
	if n := len(*t); n > 0 && (*t)[n-1].Kind == None {
		(*t)[n-1].Text += s
		return
	}
	*t = append(*t, Segment{Text: s, Kind: None})
}

// Extend appends all segments of other.
func (t *Text) Extend(other Text) {
	*t = append(*t, other...)
}

// String returns the plain concatenated text, ignoring tags.
func (t Text) String() string {
	var b strings.Builder
	for _, seg := range t {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Coalesced returns a copy where adjacent segments sharing a kind are
// merged. This is a presentation-only normalization.
func (t Text) Coalesced() Text {
	var out Text
	for _, seg := range t {
		if n := len(out); n > 0 && out[n-1].Kind == seg.Kind {
			out[n-1].Text += seg.Text
			continue
		}
		out = append(out, seg)
	}
	return out
}
