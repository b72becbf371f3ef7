package lexer

import (
	"iter"

	"github.com/Protocol-Lattice/gqlp/token"
)

// Lexer tokenizes schema source code.
type Lexer struct {
	s         *Scanner   // Character cursor over the input
	terminals *terminals // Token matchers in priority order
	err       error      // First fatal error, returned on every later call
}

// New creates a new Lexer for the given input string.
func New(input string) *Lexer {
	return &Lexer{s: NewScanner(input), terminals: defaultTerminals()}
}

// NextToken returns the next token from the input. Line breaks and comments
// are returned as tokens; the end of input yields EOF, repeatedly.
func (l *Lexer) NextToken() (token.Token, error) {
	if l.err != nil {
		return token.Token{}, l.err
	}
	for {
		if _, ok := l.s.Current(); !ok {
			return token.New(token.EOF, "", l.s.Position()), nil
		}
		tok, out, err := l.terminals.match(l.s)
		if err != nil {
			l.err = err
			return token.Token{}, err
		}
		if out == skipped {
			continue
		}
		return tok, nil
	}
}

// All returns the raw token sequence, ending with EOF. A lexical error is
// yielded once and ends the sequence.
func (l *Lexer) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := l.NextToken()
			if err != nil {
				yield(token.Token{}, err)
				return
			}
			if !yield(tok, nil) || tok.Type == token.EOF {
				return
			}
		}
	}
}

// Tokenize scans the whole input into a slice of raw tokens.
func Tokenize(input string) ([]token.Token, error) {
	var toks []token.Token
	for tok, err := range New(input).All() {
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}
