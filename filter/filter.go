// Package filter removes insignificant tokens from a token stream.
package filter

import (
	"iter"
	"slices"

	"github.com/Protocol-Lattice/gqlp/token"
)

// Insignificant are the token types the grammar never looks at.
var Insignificant = []token.TokenType{token.NEWLINE, token.COMMENT}

// Drop returns a lazy sequence yielding the tokens of seq whose type is not
// in kinds, in their original order. Errors are passed through.
func Drop(seq iter.Seq2[token.Token, error], kinds ...token.TokenType) iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for tok, err := range seq {
			if err == nil && slices.Contains(kinds, tok.Type) {
				continue
			}
			if !yield(tok, err) {
				return
			}
		}
	}
}

// Slice is a convenience wrapper that filters an already scanned slice.
func Slice(toks []token.Token, kinds ...token.TokenType) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, tok := range toks {
		if !slices.Contains(kinds, tok.Type) {
			out = append(out, tok)
		}
	}
	return out
}
