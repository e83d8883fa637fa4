// Package ast defines the abstract syntax tree for C declarations.
package ast

import "strings"

// RecordKind distinguishes struct, union, and enum tagged types.
type RecordKind int

const (
	RecordStruct RecordKind = iota
	RecordUnion
	RecordEnum
)

func (k RecordKind) String() string {
	switch k {
	case RecordStruct:
		return "struct"
	case RecordUnion:
		return "union"
	case RecordEnum:
		return "enum"
	}
	return "?"
}

// Qualifiers is a bit set of type qualifiers. QualTypedef is not a real C
// qualifier: it marks a declaration that defines a new type name rather
// than a variable, and never appears on pointer-level qualifier sets.
type Qualifiers uint8

const (
	QualConst Qualifiers = 1 << iota
	QualVolatile
	QualRestrict
	QualTypedef
)

// Has reports whether all qualifiers in q2 are present in q.
func (q Qualifiers) Has(q2 Qualifiers) bool {
	return q&q2 == q2
}

// Add inserts the given qualifiers into the set.
func (q *Qualifiers) Add(q2 Qualifiers) {
	*q |= q2
}

// Remove deletes the given qualifiers from the set.
func (q *Qualifiers) Remove(q2 Qualifiers) {
	*q &^= q2
}

// Empty reports whether no real C qualifier is set. The typedef marker is
// ignored because it has no rendering of its own.
func (q Qualifiers) Empty() bool {
	return q&(QualConst|QualVolatile|QualRestrict) == 0
}

// String renders the set as its qualifier spellings joined by spaces, in
// the canonical order const, volatile, restrict. The typedef marker is
// never rendered.
func (q Qualifiers) String() string {
	var parts []string
	if q.Has(QualConst) {
		parts = append(parts, "const")
	}
	if q.Has(QualVolatile) {
		parts = append(parts, "volatile")
	}
	if q.Has(QualRestrict) {
		parts = append(parts, "restrict")
	}
	return strings.Join(parts, " ")
}

// Type is the interface for base-type variants: exactly one of Primitive,
// Record, or Custom.
type Type interface {
	implType()
	String() string
}

// Primitive is a C builtin type, identified by its full spelling
// (e.g. "unsigned long long int").
type Primitive struct {
	Name string
}

func (p Primitive) String() string { return p.Name }

// Record is a struct/union/enum type identified by kind and tag name.
type Record struct {
	Kind RecordKind
	Tag  string
}

func (r Record) String() string { return r.Kind.String() + " " + r.Tag }

// Custom is a type name previously introduced by a typedef.
type Custom struct {
	Name string
}

func (c Custom) String() string { return c.Name }

// QualifiedType pairs a base type with its qualifier set.
type QualifiedType struct {
	Qualifiers Qualifiers
	Type       Type
}

// Declarator is the interface for declarator variants. Nesting encodes the
// inside-out C reading order: the leaf is the declared name, and walking
// outward applies pointer/array/function wrappers in declarator
// precedence order.
type Declarator interface {
	implDeclarator()
}

// Anonymous is a declarator with no name, as in an unnamed function
// parameter or an unnamed typedef.
type Anonymous struct{}

// Ident is the leaf identifier being declared.
type Ident struct {
	Name string
}

// Ptr is "pointer to Inner". Qualifiers apply to the pointer itself,
// as in "*const".
type Ptr struct {
	Inner      Declarator
	Qualifiers Qualifiers
}

// Array is "array of Inner", optionally with a fixed element count.
// Size is nil for an unsized array.
type Array struct {
	Inner Declarator
	Size  *uint64
}

// Function is "function returning Inner", taking Params. Each parameter
// is itself a full, possibly anonymous declaration.
type Function struct {
	Inner  Declarator
	Params []Declaration
}

// Declaration is a base type plus a declarator. A parse produces an
// ordered sequence of these.
type Declaration struct {
	BaseType   QualifiedType
	Declarator Declarator
}

// Marker methods for interface implementation
func (Primitive) implType() {}
func (Record) implType()    {}
func (Custom) implType()    {}

func (Anonymous) implDeclarator() {}
func (Ident) implDeclarator()     {}
func (Ptr) implDeclarator()       {}
func (Array) implDeclarator()     {}
func (Function) implDeclarator()  {}

// DeclaratorName returns the identifier at the leaf of the declarator,
// if it has one.
func DeclaratorName(d Declarator) (string, bool) {
	switch d := d.(type) {
	case Ident:
		return d.Name, true
	case Ptr:
		return DeclaratorName(d.Inner)
	case Array:
		return DeclaratorName(d.Inner)
	case Function:
		return DeclaratorName(d.Inner)
	}
	return "", false
}
