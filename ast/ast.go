package ast

import (
	"fmt"
	"iter"
	"strings"

	"github.com/Protocol-Lattice/gqlp/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
}

// Kind tags which production built a declaration.
type Kind string

const (
	KindType  Kind = "type"
	KindInput Kind = "input"
	KindEnum  Kind = "enum"
	KindQuery Kind = "query"
)

// Schema represents a complete schema document.
// It contains the declarations in document order.
type Schema struct {
	Declarations []Declaration
}

// TokenLiteral returns the name of the first declaration.
func (s *Schema) TokenLiteral() string {
	if len(s.Declarations) > 0 {
		return s.Declarations[0].TokenLiteral()
	}
	return ""
}

// Declaration is an interface for all top-level declarations in a schema.
type Declaration interface {
	Node
	fmt.Stringer
	Kind() Kind
	// Items yields the fields, values or selections in document order.
	Items() iter.Seq[fmt.Stringer]
}

// TypeRef represents a field type (e.g., String, [Int!], [[ID]!]).
// A list layer has Elem set; a named layer has Name set. NonNull belongs to
// the layer it is declared on.
type TypeRef struct {
	Name    string   // Base type name, empty for lists
	Elem    *TypeRef // Element type if this is a list
	NonNull bool     // Whether this layer carries a '!'
}

// Named returns a named type reference.
func Named(name string, nonNull bool) *TypeRef {
	return &TypeRef{Name: name, NonNull: nonNull}
}

// ListOf returns a list type reference.
func ListOf(elem *TypeRef, nonNull bool) *TypeRef {
	return &TypeRef{Elem: elem, NonNull: nonNull}
}

// IsList reports whether t is a list layer.
func (t *TypeRef) IsList() bool {
	return t.Elem != nil
}

// TokenLiteral returns the innermost type name.
func (t *TypeRef) TokenLiteral() string {
	if t.IsList() {
		return t.Elem.TokenLiteral()
	}
	return t.Name
}

func (t *TypeRef) String() string {
	s := t.Name
	if t.IsList() {
		s = "[" + t.Elem.String() + "]"
	}
	if t.NonNull {
		s += "!"
	}
	return s
}

// Argument represents the single argument a field may declare.
type Argument struct {
	Name    string  // Argument name
	Type    string  // Named type, lists are not accepted here
	Default *string // Default value literal, if any
}

// TokenLiteral returns the argument name.
func (a *Argument) TokenLiteral() string {
	return a.Name
}

func (a *Argument) String() string {
	s := a.Name + ": " + a.Type
	if a.Default != nil {
		s += " = " + *a.Default
	}
	return s
}

// Field represents a single field of a type or input declaration.
type Field struct {
	Name     string         // Field name
	Type     *TypeRef       // Declared type; its outer layer holds the field's '!'
	Argument *Argument      // Optional argument
	Pos      token.Position // Position of the field name
}

// TokenLiteral returns the field name.
func (f *Field) TokenLiteral() string {
	return f.Name
}

// NonNull reports whether the field is declared non-nullable.
func (f *Field) NonNull() bool {
	return f.Type.NonNull
}

func (f *Field) String() string {
	var b strings.Builder
	b.WriteString(f.Name)
	if f.Argument != nil {
		b.WriteString("(" + f.Argument.String() + ")")
	}
	b.WriteString(": ")
	b.WriteString(f.Type.String())
	return b.String()
}

// Object represents a "type" or "input" declaration.
type Object struct {
	ObjectKind Kind           // KindType or KindInput
	Name       string         // Declared name
	Parent     string         // Name from an implements clause, empty if none
	Fields     []*Field       // Fields in document order
	Pos        token.Position // Position of the keyword
}

// TokenLiteral returns the declared name.
func (o *Object) TokenLiteral() string { return o.Name }

// Kind returns KindType or KindInput.
func (o *Object) Kind() Kind { return o.ObjectKind }

func (o *Object) String() string {
	s := string(o.ObjectKind) + " " + o.Name
	if o.Parent != "" {
		s += " implements " + o.Parent
	}
	return s
}

// Items yields the fields.
func (o *Object) Items() iter.Seq[fmt.Stringer] {
	return func(yield func(fmt.Stringer) bool) {
		for _, f := range o.Fields {
			if !yield(f) {
				return
			}
		}
	}
}

// EnumValue is a single enum item.
type EnumValue string

func (v EnumValue) String() string { return string(v) }

// Enum represents an "enum" declaration.
type Enum struct {
	Name   string
	Values []EnumValue // At least one
	Pos    token.Position
}

func (e *Enum) TokenLiteral() string { return e.Name }

func (e *Enum) Kind() Kind { return KindEnum }

func (e *Enum) String() string { return "enum " + e.Name }

// Items yields the enum values.
func (e *Enum) Items() iter.Seq[fmt.Stringer] {
	return func(yield func(fmt.Stringer) bool) {
		for _, v := range e.Values {
			if !yield(v) {
				return
			}
		}
	}
}
