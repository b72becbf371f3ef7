package parser

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/Protocol-Lattice/gqlp/filter"
	"github.com/Protocol-Lattice/gqlp/lexer"
	"github.com/Protocol-Lattice/gqlp/token"
)

// Parser parses schema source code into an AST.
type Parser struct {
	tokens []token.Token // Significant tokens, ending with EOF
	pos    int           // Index of the current token
}

// New creates a new Parser for the given lexer. The token stream is read in
// full up front, so lexical errors are reported here.
func New(l *lexer.Lexer) (*Parser, error) {
	return FromSeq(l.All())
}

// FromSeq creates a Parser over any raw token sequence. Line breaks and
// comments are dropped before the grammar sees the tokens.
func FromSeq(seq iter.Seq2[token.Token, error]) (*Parser, error) {
	p := &Parser{}
	for tok, err := range filter.Drop(seq, filter.Insignificant...) {
		if err != nil {
			return nil, err
		}
		p.tokens = append(p.tokens, tok)
	}
	if n := len(p.tokens); n == 0 || p.tokens[n-1].Type != token.EOF {
		p.tokens = append(p.tokens, token.New(token.EOF, "", token.Position{}))
	}
	return p, nil
}

// current returns the token under the cursor. Running past EOF means a
// production consumed EOF, which the grammar never does.
func (p *Parser) current() (token.Token, error) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, errors.AssertionFailedf("read past end of token stream at index %d", p.pos)
	}
	return p.tokens[p.pos], nil
}

// peek reports whether the current token has the given type.
func (p *Parser) peek(typ token.TokenType) bool {
	tok, err := p.current()
	return err == nil && tok.Type == typ
}

// match consumes and returns the current token if it has the given type.
func (p *Parser) match(typ token.TokenType) (token.Token, error) {
	tok, err := p.current()
	if err != nil {
		return token.Token{}, err
	}
	if tok.Type != typ {
		return token.Token{}, &UnexpectedTokenError{Actual: tok, Expected: describeType(typ)}
	}
	p.pos++
	return tok, nil
}

// test consumes the current token if it has the given type and reports
// whether it did.
func (p *Parser) test(typ token.TokenType) bool {
	if !p.peek(typ) {
		return false
	}
	p.pos++
	return true
}

// matchKeyword consumes a NAME spelling kw.
func (p *Parser) matchKeyword(kw token.Keyword) (token.Token, error) {
	tok, err := p.match(token.NAME)
	if err != nil {
		return token.Token{}, err
	}
	if !kw.Is(tok) {
		return token.Token{}, &KeywordExpectedError{Actual: tok, Keyword: kw}
	}
	return tok, nil
}

// peekKeyword reports whether the current token is a NAME spelling kw.
func (p *Parser) peekKeyword(kw token.Keyword) bool {
	tok, err := p.current()
	return err == nil && kw.Is(tok)
}

// unexpected builds an error for the current token.
func (p *Parser) unexpected(expected string) error {
	tok, err := p.current()
	if err != nil {
		return err
	}
	return &UnexpectedTokenError{Actual: tok, Expected: expected}
}

func describeType(typ token.TokenType) string {
	switch typ {
	case token.NAME:
		return "a name"
	case token.EOF:
		return "end of file"
	default:
		return `"` + string(typ) + `"`
	}
}
