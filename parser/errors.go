package parser

import (
	"fmt"

	"github.com/Protocol-Lattice/gqlp/token"
)

// UnexpectedTokenError is returned when the token under the cursor is not
// one the grammar allows at that point.
type UnexpectedTokenError struct {
	Actual   token.Token
	Expected string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %s in line %d, column %d, expected %s",
		e.Actual.Describe(), e.Actual.Pos.Line, e.Actual.Pos.Column, e.Expected)
}

// Position returns where the offending token starts.
func (e *UnexpectedTokenError) Position() token.Position { return e.Actual.Pos }

// KeywordExpectedError is returned when a NAME does not spell the keyword a
// production requires.
type KeywordExpectedError struct {
	Actual  token.Token
	Keyword token.Keyword
}

func (e *KeywordExpectedError) Error() string {
	return fmt.Sprintf("expected keyword %q in line %d, column %d, but found %s",
		string(e.Keyword), e.Actual.Pos.Line, e.Actual.Pos.Column, e.Actual.Describe())
}

func (e *KeywordExpectedError) Position() token.Position { return e.Actual.Pos }
