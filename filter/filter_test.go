package filter

import (
	"errors"
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Protocol-Lattice/gqlp/token"
)

func seqOf(toks []token.Token, err error) iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for _, tok := range toks {
			if !yield(tok, nil) {
				return
			}
		}
		if err != nil {
			yield(token.Token{}, err)
		}
	}
}

func collect(seq iter.Seq2[token.Token, error]) ([]token.Token, []error) {
	var toks []token.Token
	var errs []error
	for tok, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		toks = append(toks, tok)
	}
	return toks, errs
}

func TestDrop(t *testing.T) {
	pi := token.Float(3.1415, token.Position{})
	input := []token.Token{
		pi,
		token.New(token.NEWLINE, "\n", token.Position{}),
		token.New(token.COMMENT, "Test", token.Position{}),
		pi,
	}

	got, errs := collect(Drop(seqOf(input, nil), Insignificant...))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if diff := cmp.Diff([]token.Token{pi, pi}, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestDrop_KeepsOrder(t *testing.T) {
	var input, want []token.Token
	for i := range 20 {
		tok := token.Int(int64(i), token.Position{Line: i + 1, Column: 1})
		if i%3 == 0 {
			tok = token.New(token.NEWLINE, "\n", tok.Pos)
		} else {
			want = append(want, tok)
		}
		input = append(input, tok)
	}

	got, _ := collect(Drop(seqOf(input, nil), token.NEWLINE))
	if len(got) != len(input)-7 {
		t.Errorf("expected %d tokens, got %d", len(input)-7, len(got))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Pos.Line <= got[i-1].Pos.Line {
			t.Fatalf("token %d out of order", i)
		}
	}
}

func TestDrop_PassesErrors(t *testing.T) {
	boom := errors.New("boom")
	input := []token.Token{token.New(token.COMMENT, "c", token.Position{})}

	got, errs := collect(Drop(seqOf(input, boom), Insignificant...))
	if len(got) != 0 {
		t.Errorf("expected no tokens, got %v", got)
	}
	if len(errs) != 1 || errs[0] != boom {
		t.Errorf("expected the source error, got %v", errs)
	}
}

func TestDrop_StopsEarly(t *testing.T) {
	pulled := 0
	src := func(yield func(token.Token, error) bool) {
		for i := range 10 {
			pulled++
			if !yield(token.Int(int64(i), token.Position{}), nil) {
				return
			}
		}
	}
	for range Drop(src, Insignificant...) {
		break
	}
	if pulled != 1 {
		t.Errorf("expected the source to be pulled once, got %d", pulled)
	}
}

func TestSlice(t *testing.T) {
	input := []token.Token{
		token.New(token.NAME, "a", token.Position{}),
		token.New(token.COMMENT, "c", token.Position{}),
		token.New(token.NEWLINE, "\n", token.Position{}),
		token.New(token.EOF, "", token.Position{}),
	}
	got := Slice(input, Insignificant...)
	want := []token.Token{input[0], input[3]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	if n := len(Slice(input)); n != len(input) {
		t.Errorf("expected nothing dropped without kinds, got %d tokens", n)
	}
}
