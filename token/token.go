package token

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenType represents the type of a token in the schema lexer.
type TokenType string

const (
	// Special tokens
	EOF     TokenType = "EOF"     // End of file
	NEWLINE TokenType = "NEWLINE" // Line break, dropped before parsing
	COMMENT TokenType = "COMMENT" // '#' comment, dropped before parsing

	// Identifiers and literals
	NAME   TokenType = "NAME"   // Identifiers and keywords
	NUMBER TokenType = "NUMBER" // Integer and float literals
	STRING TokenType = "STRING" // String literals (single and block quotes)

	// Symbols
	COLON    TokenType = ":" // Field type separator
	EQUALS   TokenType = "=" // Default value marker
	DOLLAR   TokenType = "$" // Variable prefix
	BANG     TokenType = "!" // Non-null marker
	LPAREN   TokenType = "(" // Left parenthesis
	RPAREN   TokenType = ")" // Right parenthesis
	LBRACE   TokenType = "{" // Left brace
	RBRACE   TokenType = "}" // Right brace
	LBRACKET TokenType = "[" // Left bracket
	RBRACKET TokenType = "]" // Right bracket
)

// Punctuation lists the single-character token types in scanning order.
var Punctuation = []TokenType{
	COLON, EQUALS, DOLLAR, BANG,
	LPAREN, RPAREN, LBRACE, RBRACE, LBRACKET, RBRACKET,
}

// Position is a 1-based line and column inside the source document.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Positioned is implemented by errors that point at a place in the source.
type Positioned interface {
	Position() Position
}

// Token represents a single token in the schema source.
type Token struct {
	Type    TokenType // The type of the token
	Literal string    // Source text; content for strings and comments
	Value   any       // int64 or float64 for NUMBER tokens, nil otherwise
	Pos     Position  // Where the token starts
}

// New creates a token that carries no numeric value.
func New(typ TokenType, literal string, pos Position) Token {
	return Token{Type: typ, Literal: literal, Pos: pos}
}

// Int creates a NUMBER token holding an integer.
func Int(v int64, pos Position) Token {
	return Token{Type: NUMBER, Literal: strconv.FormatInt(v, 10), Value: v, Pos: pos}
}

// Float creates a NUMBER token holding a float.
func Float(v float64, pos Position) Token {
	lit := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(lit, '.') {
		lit += ".0"
	}
	return Token{Type: NUMBER, Literal: lit, Value: v, Pos: pos}
}

// Equal reports whether two tokens have the same type and value.
// Positions are ignored.
func (t Token) Equal(o Token) bool {
	if t.Type != o.Type {
		return false
	}
	if t.Type == NUMBER {
		return t.Value == o.Value
	}
	return t.Literal == o.Literal
}

// String renders the token back into source text.
func (t Token) String() string {
	switch t.Type {
	case EOF:
		return ""
	case NEWLINE:
		return "\n"
	case STRING:
		return `"` + t.Literal + `"`
	case COMMENT:
		return "# " + t.Literal
	case NAME, NUMBER:
		return t.Literal
	default:
		return string(t.Type)
	}
}

// Describe returns a short human readable form used in error messages.
func (t Token) Describe() string {
	switch t.Type {
	case EOF:
		return "end of file"
	case NEWLINE:
		return "line break"
	case NAME, NUMBER, STRING, COMMENT:
		return fmt.Sprintf("%s %q", t.Type, t.Literal)
	default:
		return fmt.Sprintf("%q", string(t.Type))
	}
}
