package lexer

import (
	"strconv"
	"strings"

	"github.com/Protocol-Lattice/gqlp/token"
)

// outcome tells the driving loop what a terminal match produced.
type outcome int

const (
	skipped   outcome = iota // whitespace, nothing to emit
	produced                 // a token was scanned
	lineBreak                // a NEWLINE token was scanned; the scanner is on the next line
)

// terminal recognizes a single token kind. first reports whether the kind
// can start with a character; scan consumes the token starting there.
type terminal struct {
	name  string
	first func(rune) bool
	scan  func(s *Scanner, pos token.Position) (token.Token, error)
}

// terminals is the ordered registry tried against every character.
type terminals struct {
	whitespace func(rune) bool
	list       []terminal
}

// defaultTerminals returns the registry for schema documents. Order matters:
// the first terminal whose first set accepts the character wins.
func defaultTerminals() *terminals {
	ts := &terminals{
		whitespace: isWhitespace,
		list: []terminal{
			{name: "name", first: isLetter, scan: scanName},
			{name: "number", first: isNumberStart, scan: scanNumber},
			{name: "string", first: isQuote, scan: scanString},
			{name: "comment", first: isHash, scan: scanComment},
		},
	}
	for _, typ := range token.Punctuation {
		ts.list = append(ts.list, punctuation(typ))
	}
	return ts
}

// match scans the next token. The caller guarantees the scanner is not at
// the end of input.
func (ts *terminals) match(s *Scanner) (token.Token, outcome, error) {
	ch, _ := s.Current()
	pos := s.Position()

	if ts.whitespace(ch) {
		s.ConsumeWhile(ts.whitespace)
		return token.Token{}, skipped, nil
	}
	if ch == '\n' {
		s.Advance()
		return token.New(token.NEWLINE, "\n", pos), lineBreak, nil
	}
	for _, t := range ts.list {
		if !t.first(ch) {
			continue
		}
		tok, err := t.scan(s, pos)
		if err != nil {
			return token.Token{}, produced, err
		}
		return tok, produced, nil
	}
	return token.Token{}, produced, &UnexpectedCharacterError{Char: ch, Pos: pos}
}

func scanName(s *Scanner, pos token.Position) (token.Token, error) {
	return token.New(token.NAME, s.ConsumeWhile(isNameChar), pos), nil
}

func scanNumber(s *Scanner, pos token.Position) (token.Token, error) {
	var sign string
	if ch, _ := s.Current(); ch == '-' {
		sign = "-"
		s.Advance()
	}
	lit := sign + s.ConsumeWhile(isNumberChar)

	if strings.ContainsRune(lit, '.') {
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return token.Token{}, &InvalidNumberError{Literal: lit, Pos: pos, Err: err}
		}
		return token.Token{Type: token.NUMBER, Literal: lit, Value: v, Pos: pos}, nil
	}
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return token.Token{}, &InvalidNumberError{Literal: lit, Pos: pos, Err: err}
	}
	return token.Token{Type: token.NUMBER, Literal: lit, Value: v, Pos: pos}, nil
}

// scanString reads single ("...") and block ("""...""") strings alike:
// a run of quotes opens, the content runs to the next quote and a run of
// quotes closes. The content is trimmed.
func scanString(s *Scanner, pos token.Position) (token.Token, error) {
	open := s.ConsumeWhile(isQuote)
	if len(open)%2 == 0 {
		// "" and """""" open and close in one run.
		return token.New(token.STRING, "", pos), nil
	}
	if _, ok := s.Current(); !ok {
		return token.Token{}, &UnterminatedStringError{Pos: pos}
	}
	content := s.ConsumeWhile(func(ch rune) bool { return ch != '"' })
	if _, ok := s.Current(); !ok {
		return token.Token{}, &UnterminatedStringError{Pos: pos}
	}
	s.ConsumeWhile(isQuote)
	return token.New(token.STRING, strings.TrimSpace(content), pos), nil
}

func scanComment(s *Scanner, pos token.Position) (token.Token, error) {
	s.Advance() // skip '#'
	content := s.ConsumeWhile(func(ch rune) bool { return ch != '\n' })
	return token.New(token.COMMENT, strings.TrimSpace(content), pos), nil
}

func punctuation(typ token.TokenType) terminal {
	ch := rune(typ[0])
	return terminal{
		name:  string(typ),
		first: func(r rune) bool { return r == ch },
		scan: func(s *Scanner, pos token.Position) (token.Token, error) {
			s.Advance()
			return token.New(typ, string(typ), pos), nil
		},
	}
}

// isWhitespace checks for insignificant blanks. Line breaks are not blanks.
func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r'
}

// isLetter checks if a character can start a name.
func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if a character is a decimal digit.
func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isNameChar(ch rune) bool {
	return isLetter(ch) || isDigit(ch)
}

func isNumberStart(ch rune) bool {
	return isDigit(ch) || ch == '-'
}

func isNumberChar(ch rune) bool {
	return isDigit(ch) || ch == '.'
}

func isQuote(ch rune) bool {
	return ch == '"'
}

func isHash(ch rune) bool {
	return ch == '#'
}
