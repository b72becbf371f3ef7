// Package gqlp parses GraphQL schema-definition documents into a syntax tree.
// It includes the lexer, the token filter, the parser and a printer.
package gqlp

import (
	"io"

	"github.com/Protocol-Lattice/gqlp/ast"
	"github.com/Protocol-Lattice/gqlp/lexer"
	"github.com/Protocol-Lattice/gqlp/parser"
	"github.com/Protocol-Lattice/gqlp/printer"
	"github.com/Protocol-Lattice/gqlp/token"
)

// ===========================
// Re-exported Types
// ===========================

// Token types
type (
	TokenType = token.TokenType
	Token     = token.Token
	Position  = token.Position
)

// Token constants
const (
	EOF      = token.EOF
	NEWLINE  = token.NEWLINE
	COMMENT  = token.COMMENT
	NAME     = token.NAME
	NUMBER   = token.NUMBER
	STRING   = token.STRING
	COLON    = token.COLON
	EQUALS   = token.EQUALS
	DOLLAR   = token.DOLLAR
	BANG     = token.BANG
	LPAREN   = token.LPAREN
	RPAREN   = token.RPAREN
	LBRACE   = token.LBRACE
	RBRACE   = token.RBRACE
	LBRACKET = token.LBRACKET
	RBRACKET = token.RBRACKET
)

// AST types
type (
	Node           = ast.Node
	Schema         = ast.Schema
	Declaration    = ast.Declaration
	Object         = ast.Object
	Enum           = ast.Enum
	Query          = ast.Query
	Field          = ast.Field
	Argument       = ast.Argument
	TypeRef        = ast.TypeRef
	QueryArgument  = ast.QueryArgument
	QueryDocument  = ast.QueryDocument
	QuerySignature = ast.QuerySignature
	Selection      = ast.Selection
)

// Error types
type (
	UnexpectedCharacterError = lexer.UnexpectedCharacterError
	InvalidNumberError       = lexer.InvalidNumberError
	UnterminatedStringError  = lexer.UnterminatedStringError
	UnexpectedTokenError     = parser.UnexpectedTokenError
	KeywordExpectedError     = parser.KeywordExpectedError
)

// Lexer type
type Lexer = lexer.Lexer

// Parser type
type Parser = parser.Parser

// ===========================
// Convenience Functions
// ===========================

// NewLexer creates a new lexer for the given schema source.
func NewLexer(input string) *Lexer {
	return lexer.New(input)
}

// NewParser creates a new parser reading every significant token of l.
func NewParser(l *Lexer) (*Parser, error) {
	return parser.New(l)
}

// Parse parses a schema document.
func Parse(input string) (*Schema, error) {
	return parser.Parse(input)
}

// Fprint writes the label listing of schema to w: one line per
// declaration followed by its items indented.
func Fprint(w io.Writer, schema *Schema) error {
	return printer.New(printer.FormatText, printer.PlainStyles()).Fprint(w, schema)
}
