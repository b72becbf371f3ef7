package lexer

import (
	"unicode/utf8"

	"github.com/Protocol-Lattice/gqlp/token"
)

// Scanner is a position-tracking cursor over the source text.
// It always points at the next unscanned character.
type Scanner struct {
	input  string // The input string
	offset int    // Byte offset of the current character
	ch     rune   // Current character, valid when offset < len(input)
	width  int    // Byte width of ch
	line   int    // Line of the current character (1-based)
	column int    // Column of the current character (1-based, in runes)
}

// NewScanner creates a Scanner positioned on the first character of input.
func NewScanner(input string) *Scanner {
	s := &Scanner{input: input, line: 1, column: 1}
	s.decode()
	return s
}

// decode loads the character at the current offset.
func (s *Scanner) decode() {
	if s.offset >= len(s.input) {
		s.ch, s.width = 0, 0
		return
	}
	s.ch, s.width = utf8.DecodeRuneInString(s.input[s.offset:])
}

// Current returns the character under the cursor. ok is false once the
// end of input has been reached.
func (s *Scanner) Current() (ch rune, ok bool) {
	if s.offset >= len(s.input) {
		return 0, false
	}
	return s.ch, true
}

// Advance moves the cursor one character forward. Leaving a line break
// moves the position to the start of the next line.
func (s *Scanner) Advance() {
	if s.offset >= len(s.input) {
		return
	}
	if s.ch == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	s.offset += s.width
	s.decode()
}

// Position returns the position of the current character.
func (s *Scanner) Position() token.Position {
	return token.Position{Line: s.line, Column: s.column}
}

// ConsumeWhile consumes characters starting with the current one for as long
// as pred holds and returns them. The first character failing pred is left
// under the cursor for the next scan.
func (s *Scanner) ConsumeWhile(pred func(rune) bool) string {
	start := s.offset
	for {
		ch, ok := s.Current()
		if !ok || !pred(ch) {
			break
		}
		s.Advance()
	}
	return s.input[start:s.offset]
}
