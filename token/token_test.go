package token

import "testing"

func TestToken_Equal(t *testing.T) {
	a := New(NAME, "type", Position{Line: 1, Column: 1})
	b := New(NAME, "type", Position{Line: 7, Column: 3})
	if !a.Equal(b) {
		t.Error("expected tokens at different positions to be equal")
	}
	if a.Equal(New(NAME, "enum", a.Pos)) {
		t.Error("expected different literals to differ")
	}
	if a.Equal(New(STRING, "type", a.Pos)) {
		t.Error("expected different types to differ")
	}

	// Numbers compare by value.
	if !Int(3, Position{}).Equal(Token{Type: NUMBER, Literal: "03", Value: int64(3)}) {
		t.Error("expected equal integers to be equal")
	}
	if Int(3, Position{}).Equal(Float(3, Position{})) {
		t.Error("expected integer and float to differ")
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{New(NAME, "Human", Position{}), "Human"},
		{New(STRING, "hi", Position{}), `"hi"`},
		{New(COMMENT, "note", Position{}), "# note"},
		{New(NEWLINE, "\n", Position{}), "\n"},
		{New(EOF, "", Position{}), ""},
		{New(BANG, "!", Position{}), "!"},
		{Int(-12, Position{}), "-12"},
		{Float(1, Position{}), "1.0"},
		{Float(3.25, Position{}), "3.25"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() of %s: expected %q, got %q", tt.tok.Type, tt.want, got)
		}
	}
}

func TestToken_Describe(t *testing.T) {
	if got := New(NAME, "x", Position{}).Describe(); got != `NAME "x"` {
		t.Errorf("unexpected description %q", got)
	}
	if got := New(LBRACE, "{", Position{}).Describe(); got != `"{"` {
		t.Errorf("unexpected description %q", got)
	}
	if got := New(EOF, "", Position{}).Describe(); got != "end of file" {
		t.Errorf("unexpected description %q", got)
	}
}

func TestLookupKeyword(t *testing.T) {
	for _, kw := range []Keyword{KeywordType, KeywordInput, KeywordEnum, KeywordQuery, KeywordImplements} {
		got, ok := LookupKeyword(string(kw))
		if !ok || got != kw {
			t.Errorf("LookupKeyword(%q) = %q, %v", kw, got, ok)
		}
		if !kw.Is(New(NAME, string(kw), Position{})) {
			t.Errorf("expected %q to match its own name", kw)
		}
		if kw.Is(New(STRING, string(kw), Position{})) {
			t.Errorf("expected %q not to match a string", kw)
		}
	}
	if _, ok := LookupKeyword("interface"); ok {
		t.Error("expected interface not to be a keyword")
	}
}
