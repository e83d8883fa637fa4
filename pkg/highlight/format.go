package highlight

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// Formatter renders highlighted text into a writer, mapping each segment
// kind to a styling wrapper.
type Formatter interface {
	Format(w io.Writer, text Text) error
}

// Render formats the text with the given formatter and returns the result
// as a string.
func Render(f Formatter, text Text) (string, error) {
	var b strings.Builder
	if err := f.Format(&b, text); err != nil {
		return "", err
	}
	return b.String(), nil
}

// PlainFormatter discards all styling and writes only the text.
type PlainFormatter struct{}

func (PlainFormatter) Format(w io.Writer, text Text) error {
	for _, seg := range text {
		if _, err := io.WriteString(w, seg.Text); err != nil {
			return err
		}
	}
	return nil
}

// ColorMap maps segment kinds to ANSI SGR sequences. An empty sequence
// leaves segments of that kind unstyled.
type ColorMap struct {
	Qualifier       string
	PrimitiveType   string
	UserDefinedType string
	Ident           string
	Number          string
	QuasiKeyword    string
}

const ansiReset = "\x1b[0m"

// DefaultColors returns the standard terminal palette: cyan qualifiers,
// yellow primitive types, magenta user-defined types, red identifiers,
// blue numbers, and green quasi-keywords.
func DefaultColors() ColorMap {
	return ColorMap{
		Qualifier:       "\x1b[36m",
		PrimitiveType:   "\x1b[33m",
		UserDefinedType: "\x1b[35m",
		Ident:           "\x1b[31m",
		Number:          "\x1b[34m",
		QuasiKeyword:    "\x1b[32m",
	}
}

func (m ColorMap) lookup(kind Kind) string {
	switch kind {
	case Qualifier:
		return m.Qualifier
	case PrimitiveType:
		return m.PrimitiveType
	case UserDefinedType:
		return m.UserDefinedType
	case Ident:
		return m.Ident
	case Number:
		return m.Number
	case QuasiKeyword:
		return m.QuasiKeyword
	}
	return ""
}

// ANSIFormatter renders highlighted text with ANSI escape sequences for
// terminal display.
type ANSIFormatter struct {
	Colors ColorMap
}

// NewANSIFormatter creates an ANSIFormatter with the default palette.
func NewANSIFormatter() ANSIFormatter {
	return ANSIFormatter{Colors: DefaultColors()}
}

func (f ANSIFormatter) Format(w io.Writer, text Text) error {
	for _, seg := range text {
		color := f.Colors.lookup(seg.Kind)
		if color == "" {
			if _, err := io.WriteString(w, seg.Text); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%s%s", color, seg.Text, ansiReset); err != nil {
			return err
		}
	}
	return nil
}

// ClassMap maps segment kinds to HTML class names. An empty class name
// leaves segments of that kind unwrapped.
type ClassMap struct {
	Qualifier       string
	PrimitiveType   string
	UserDefinedType string
	Ident           string
	Number          string
	QuasiKeyword    string
}

// DefaultClasses returns a class mapping using kebab-case names for each
// segment kind.
func DefaultClasses() ClassMap {
	return ClassMap{
		Qualifier:       "qualifier",
		PrimitiveType:   "primitive-type",
		UserDefinedType: "user-defined-type",
		Ident:           "identifier",
		Number:          "number",
		QuasiKeyword:    "quasi-keyword",
	}
}

func (m ClassMap) lookup(kind Kind) string {
	switch kind {
	case Qualifier:
		return m.Qualifier
	case PrimitiveType:
		return m.PrimitiveType
	case UserDefinedType:
		return m.UserDefinedType
	case Ident:
		return m.Ident
	case Number:
		return m.Number
	case QuasiKeyword:
		return m.QuasiKeyword
	}
	return ""
}

// HTMLFormatter renders highlighted text as HTML, wrapping tagged
// segments in <span> elements with classes from its ClassMap. Untagged
// segments and kinds with an empty class are written unwrapped. Text is
// entity-escaped either way.
type HTMLFormatter struct {
	Classes ClassMap
}

// NewHTMLFormatter creates an HTMLFormatter with the default class names.
func NewHTMLFormatter() HTMLFormatter {
	return HTMLFormatter{Classes: DefaultClasses()}
}

func (f HTMLFormatter) Format(w io.Writer, text Text) error {
	for _, seg := range text {
		if seg.Text == "" {
			continue
		}
		class := f.Classes.lookup(seg.Kind)
		if class == "" {
			if _, err := io.WriteString(w, html.EscapeString(seg.Text)); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, `<span class="%s">%s</span>`,
			html.EscapeString(class), html.EscapeString(seg.Text)); err != nil {
			return err
		}
	}
	return nil
}
