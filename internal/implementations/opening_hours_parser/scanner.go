package openinghoursparser

import (
	"strconv"
	"strings"

	"openhours/internal/core/domain/hours"
)

// scanner is a byte cursor over the input. Every token reader skips
// leading whitespace and, on failure, consumes nothing else and records
// what it expected there. Only failures at the furthest
// position are kept for error reporting.
type scanner struct {
	input    string
	pos      int
	failPos  int
	expected []string
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.input) && isSpace(s.input[s.pos]) {
		s.pos++
	}
}

func (s *scanner) atEnd() bool {
	s.skipSpace()
	return s.pos >= len(s.input)
}

func (s *scanner) expect(what string) {
	switch {
	case s.pos > s.failPos:
		s.failPos = s.pos
		s.expected = []string{what}
	case s.pos == s.failPos:
		for _, e := range s.expected {
			if e == what {
				return
			}
		}
		s.expected = append(s.expected, what)
	}
}

func (s *scanner) syntaxError() *hours.SyntaxError {
	expected := make([]string, len(s.expected))
	copy(expected, s.expected)
	return &hours.SyntaxError{Input: s.input, Pos: s.failPos, Expected: expected}
}

// lit consumes the literal symbol sym.
func (s *scanner) lit(sym string) bool {
	s.skipSpace()
	if strings.HasPrefix(s.input[s.pos:], sym) {
		s.pos += len(sym)
		return true
	}
	s.expect(strconv.Quote(sym))
	return false
}

// peekWord returns the run of ASCII letters at the cursor.
func (s *scanner) peekWord() string {
	s.skipSpace()
	end := s.pos
	for end < len(s.input) && isLetter(s.input[end]) {
		end++
	}
	return s.input[s.pos:end]
}

// keyword consumes a whole word equal to one of words, ignoring case
// when fold is set. label names the token class in syntax errors.
func (s *scanner) keyword(label string, fold bool, words ...string) (string, bool) {
	w := s.peekWord()
	for _, candidate := range words {
		if w == candidate || (fold && strings.EqualFold(w, candidate)) {
			s.pos += len(w)
			return candidate, true
		}
	}
	s.expect(label)
	return "", false
}

// number consumes a run of between min and max digits.
func (s *scanner) number(label string, min, max int) (int, bool) {
	s.skipSpace()
	end := s.pos
	for end < len(s.input) && isDigit(s.input[end]) {
		end++
	}
	if n := end - s.pos; n < min || n > max {
		s.expect(label)
		return 0, false
	}
	v, err := strconv.Atoi(s.input[s.pos:end])
	if err != nil {
		s.expect(label)
		return 0, false
	}
	s.pos = end
	return v, true
}

// clock consumes an HH:MM token with an hour up to maxHour.
func (s *scanner) clock(maxHour int) (hours.Time, bool) {
	s.skipSpace()
	rest := s.input[s.pos:]
	if len(rest) < 5 ||
		!isDigit(rest[0]) || !isDigit(rest[1]) || rest[2] != ':' || !isDigit(rest[3]) || !isDigit(rest[4]) ||
		(len(rest) > 5 && isDigit(rest[5])) {
		s.expect("time")
		return hours.Time{}, false
	}
	hour := int(rest[0]-'0')*10 + int(rest[1]-'0')
	minute := int(rest[3]-'0')*10 + int(rest[4]-'0')
	if hour > maxHour || minute > 59 {
		s.expect("time")
		return hours.Time{}, false
	}
	s.pos += 5
	return hours.NewTime(hour, minute), true
}

// sign consumes "+" or "-".
func (s *scanner) sign() (hours.PlusOrMinus, bool) {
	s.skipSpace()
	if s.pos < len(s.input) {
		switch s.input[s.pos] {
		case '+':
			s.pos++
			return hours.Plus, true
		case '-':
			s.pos++
			return hours.Minus, true
		}
	}
	s.expect(`"+" or "-"`)
	return hours.Plus, false
}

// quoted consumes a double quoted string without escapes.
func (s *scanner) quoted() (string, bool) {
	s.skipSpace()
	if s.pos >= len(s.input) || s.input[s.pos] != '"' {
		s.expect("comment")
		return "", false
	}
	end := strings.IndexByte(s.input[s.pos+1:], '"')
	if end < 0 {
		mark := s.pos
		s.pos = len(s.input)
		s.expect(`closing '"'`)
		s.pos = mark
		return "", false
	}
	text := s.input[s.pos+1 : s.pos+1+end]
	s.pos += end + 2
	return text, true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
