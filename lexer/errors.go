package lexer

import (
	"fmt"

	"github.com/Protocol-Lattice/gqlp/token"
)

// UnexpectedCharacterError is returned when no terminal accepts a character.
type UnexpectedCharacterError struct {
	Char rune
	Pos  token.Position
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character %q in line %d, column %d", e.Char, e.Pos.Line, e.Pos.Column)
}

// Position returns where the character was found.
func (e *UnexpectedCharacterError) Position() token.Position { return e.Pos }

// InvalidNumberError is returned for a numeric literal that does not
// convert to an integer or a float, such as "-" or "1.2.3".
type InvalidNumberError struct {
	Literal string
	Pos     token.Position
	Err     error
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number %q in line %d, column %d", e.Literal, e.Pos.Line, e.Pos.Column)
}

func (e *InvalidNumberError) Position() token.Position { return e.Pos }

func (e *InvalidNumberError) Unwrap() error { return e.Err }

// UnterminatedStringError is returned when the input ends inside a string.
type UnterminatedStringError struct {
	Pos token.Position
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("unterminated string starting in line %d, column %d", e.Pos.Line, e.Pos.Column)
}

func (e *UnterminatedStringError) Position() token.Position { return e.Pos }
