package ast

import (
	"fmt"
	"iter"
	"strings"

	"github.com/Protocol-Lattice/gqlp/token"
)

// Query represents a named query operation. Only a single variable and a
// single root field call are supported.
type Query struct {
	Name     string
	Argument *QueryArgument
	Document *QueryDocument
	Pos      token.Position
}

func (q *Query) TokenLiteral() string { return q.Name }

func (q *Query) Kind() Kind { return KindQuery }

func (q *Query) String() string {
	return "query " + q.Name + "(" + q.Argument.String() + ")"
}

// Items yields the root call followed by each top-level selection.
func (q *Query) Items() iter.Seq[fmt.Stringer] {
	return func(yield func(fmt.Stringer) bool) {
		if !yield(q.Document.Signature) {
			return
		}
		for _, s := range q.Document.Selections {
			if !yield(s) {
				return
			}
		}
	}
}

// QueryArgument is the variable declared by a query, e.g. ($id: ID! = 1).
type QueryArgument struct {
	Name     string  // Variable name without '$'
	Type     string  // Named type
	Required bool    // Whether the type carries a '!'
	Default  *string // Default value literal, if any
}

func (a *QueryArgument) String() string {
	s := "$" + a.Name + ": " + a.Type
	if a.Required {
		s += "!"
	}
	if a.Default != nil {
		s += " = " + *a.Default
	}
	return s
}

// QuerySignature is the root field call, e.g. droid(id: $id).
type QuerySignature struct {
	Field    string // Root field name
	Param    string // Parameter name
	Variable string // Variable name without '$'
}

func (s QuerySignature) String() string {
	return s.Field + "(" + s.Param + ": $" + s.Variable + ")"
}

// Selection is a projected field with optional nested selections.
type Selection struct {
	Name       string
	Selections []*Selection
}

func (s *Selection) String() string {
	if len(s.Selections) == 0 {
		return s.Name
	}
	return s.Name + " " + selectionSet(s.Selections)
}

// QueryDocument is the body of a query: the root call and its projection.
type QueryDocument struct {
	Signature  QuerySignature
	Selections []*Selection
}

func (d *QueryDocument) String() string {
	return d.Signature.String() + " " + selectionSet(d.Selections)
}

func selectionSet(sels []*Selection) string {
	parts := make([]string, len(sels))
	for i, s := range sels {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}
