package parser

import (
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/Protocol-Lattice/gqlp/lexer"
	"github.com/Protocol-Lattice/gqlp/token"
)

func newTestParser(t *testing.T, input string) *Parser {
	t.Helper()
	p, err := New(lexer.New(input))
	if err != nil {
		t.Fatalf("failed to create parser: %v", err)
	}
	return p
}

func TestParser_DropsInsignificant(t *testing.T) {
	p := newTestParser(t, "# leading\ntype\n\nA # trailing\n")
	var types []token.TokenType
	for _, tok := range p.tokens {
		types = append(types, tok.Type)
	}
	want := []token.TokenType{token.NAME, token.NAME, token.EOF}
	if len(types) != len(want) {
		t.Fatalf("expected %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, types)
		}
	}
}

func TestParser_Primitives(t *testing.T) {
	p := newTestParser(t, "type A { }")

	if !p.peekKeyword(token.KeywordType) || p.peekKeyword(token.KeywordEnum) {
		t.Fatal("expected the cursor on 'type'")
	}
	if !p.peek(token.NAME) || p.peek(token.LBRACE) {
		t.Fatal("peek does not match the current token")
	}
	if p.test(token.LBRACE) {
		t.Fatal("test consumed a mismatching token")
	}
	if _, err := p.matchKeyword(token.KeywordType); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tok, err := p.match(token.NAME)
	if err != nil || tok.Literal != "A" {
		t.Fatalf("expected NAME A, got %v (%v)", tok, err)
	}

	if _, err := p.match(token.RBRACE); err == nil {
		t.Fatal("expected a mismatch error")
	} else if uerr := (*UnexpectedTokenError)(nil); !errors.As(err, &uerr) || uerr.Expected != `"}"` {
		t.Fatalf("unexpected error %v", err)
	}
	// A failed match does not move the cursor.
	if !p.test(token.LBRACE) || !p.test(token.RBRACE) {
		t.Fatal("expected braces")
	}
	if !p.peek(token.EOF) {
		t.Fatal("expected EOF")
	}
}

func TestParser_KeywordExpected(t *testing.T) {
	p := newTestParser(t, "types")
	_, err := p.matchKeyword(token.KeywordType)
	var kerr *KeywordExpectedError
	if !errors.As(err, &kerr) {
		t.Fatalf("expected KeywordExpectedError, got %v", err)
	}
	if kerr.Keyword != token.KeywordType || kerr.Actual.Literal != "types" {
		t.Errorf("unexpected error %v", kerr)
	}
	want := `expected keyword "type" in line 1, column 1, but found NAME "types"`
	if kerr.Error() != want {
		t.Errorf("expected %q, got %q", want, kerr.Error())
	}
}

func TestParser_PastEnd(t *testing.T) {
	p := newTestParser(t, "")
	if _, err := p.match(token.EOF); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := p.match(token.NAME)
	if err == nil || !errors.IsAssertionFailure(err) {
		t.Fatalf("expected an assertion failure, got %v", err)
	}
	if p.peek(token.EOF) {
		t.Error("peek past the end should not match")
	}
}

func TestFromSeq_AppendsEOF(t *testing.T) {
	seq := func(yield func(token.Token, error) bool) {
		yield(token.New(token.NAME, "x", token.Position{Line: 1, Column: 1}), nil)
	}
	p, err := FromSeq(seq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.tokens) != 2 || p.tokens[1].Type != token.EOF {
		t.Errorf("expected a trailing EOF, got %v", p.tokens)
	}
}
