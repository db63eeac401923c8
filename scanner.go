// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jread

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/creachadair/jread/internal/escape"
	"go4.org/mem"
)

// Token is the type of a lexical token in the JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Number               // number
	String               // quoted string
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// isValue reports whether t can begin a value.
func (t Token) isValue() bool {
	switch t {
	case LBrace, LSquare, Number, String, True, False, Null:
		return true
	}
	return false
}

// A Scanner reads lexical tokens from a Source.  Each call to Next advances
// the scanner to the next token, or reports an error. Once Next has reported
// a syntax error, every later call reports the same error without reading
// further input.
type Scanner struct {
	src Source
	buf bytes.Buffer // raw text of the current token
	str []byte       // decoded string payload
	num float64      // decoded number payload
	tok Token
	err error

	line, col int // position after the last byte consumed
	off       int // total bytes consumed
}

// NewScanner constructs a new lexical scanner that consumes input from src.
func NewScanner(src Source) *Scanner { return &Scanner{src: src, line: 1} }

// Next advances s to the next token of the input, or reports an error.
// At the end of the input, Next returns io.EOF.
func (s *Scanner) Next() error {
	if s.err != nil {
		return s.err
	}
	s.buf.Reset()
	s.str = s.str[:0]
	s.tok = Invalid

	if err := s.SkipSpace(); err != nil {
		return err
	}
	ch, err := s.read()
	if err != nil {
		return s.ioFail(err) // SkipSpace saw a byte, so this is not EOF
	}
	s.buf.WriteByte(ch)

	// Handle punctuation.
	if t, ok := selfDelim(ch); ok {
		s.tok = t
		return nil
	}

	switch {
	case ch == '"':
		return s.scanString()
	case isNumStart(ch):
		return s.scanNumber(ch)
	case isAlpha(ch):
		return s.scanName()
	}
	return s.failf("invalid token %q", ch)
}

// SkipSpace consumes whitespace up to the next token without reading the
// token itself. It returns nil if more input follows, io.EOF if the input is
// exhausted, or a syntax error if the source failed.
func (s *Scanner) SkipSpace() error {
	if s.err != nil {
		return s.err
	}
	for {
		ch, err := s.src.PeekByte()
		if err == io.EOF {
			return err
		} else if err != nil {
			return s.ioFail(err)
		} else if !isSpace(ch) {
			return nil
		}
		s.read()
	}
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the syntax error that stopped the scanner, or nil.
func (s *Scanner) Err() error { return s.err }

// Text returns the undecoded text of the current token.  The return value is
// only valid until the next call of Next.
func (s *Scanner) Text() []byte { return s.buf.Bytes() }

// StringValue returns the decoded contents of the current String token.
// It panics if the current token is not a String.
func (s *Scanner) StringValue() string {
	if s.tok != String {
		usagePanic("Scanner.StringValue", "current token is %v", s.tok)
	}
	return string(s.str)
}

// NumberValue returns the value of the current Number token.
// It panics if the current token is not a Number.
func (s *Scanner) NumberValue() float64 {
	if s.tok != Number {
		usagePanic("Scanner.NumberValue", "current token is %v", s.tok)
	}
	return s.num
}

// BoolValue returns the value of the current True or False token.
// It panics if the current token is neither.
func (s *Scanner) BoolValue() bool {
	if s.tok != True && s.tok != False {
		usagePanic("Scanner.BoolValue", "current token is %v", s.tok)
	}
	return s.tok == True
}

// Location returns the position immediately after the last byte consumed.
func (s *Scanner) Location() Location {
	return Location{LineCol: LineCol{Line: s.line, Column: s.col}, Offset: s.off}
}

// scanString consumes a string whose open quote has been read.
func (s *Scanner) scanString() error {
	for {
		ch, err := s.readIn("string")
		if err != nil {
			return err
		}
		switch {
		case ch == '"':
			s.tok = String
			return nil

		case ch == '\\':
			esc, err := s.readIn("string")
			if err != nil {
				return err
			}
			if b, ok := escape.Simple(esc); ok {
				s.str = append(s.str, b)
				continue
			} else if esc != 'u' {
				return s.failf("invalid escape %q in string", esc)
			}
			var u uint16
			for i := 0; i < 4; i++ {
				h, err := s.readIn("string")
				if err != nil {
					return err
				}
				d, ok := escape.HexDigit(h)
				if !ok {
					return s.failf("invalid hex digit %q in Unicode escape", h)
				}
				u = u<<4 | d
			}
			s.str = escape.AppendUnit(s.str, u)

		case ch < ' ':
			return s.failf("unescaped control %q in string", ch)

		default:
			s.str = append(s.str, ch)
		}
	}
}

// scanNumber consumes the longest prefix of the input that the number
// automaton can extend, starting from first. The byte that stops the
// automaton is left unread.
func (s *Scanner) scanNumber(first byte) error {
	st, _ := numStart.next(first) // first is a valid start
	for {
		ch, err := s.src.PeekByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return s.ioFail(err)
		}
		next, ok := st.next(ch)
		if !ok {
			break
		}
		s.read()
		s.buf.WriteByte(ch)
		st = next
	}
	if !st.accepting() {
		return s.failf("malformed number %q", s.buf.String())
	}
	v, err := strconv.ParseFloat(s.buf.String(), 64)
	if err != nil {
		return s.failf("number %s is out of range", s.buf.String())
	}
	s.num = v
	s.tok = Number
	return nil
}

var keywords = [...]struct {
	text mem.RO
	tok  Token
}{
	{mem.S("true"), True},
	{mem.S("false"), False},
	{mem.S("null"), Null},
}

// scanName consumes a run of letters and matches it against the constants.
// Matching is case-sensitive.
func (s *Scanner) scanName() error {
	for {
		ch, err := s.src.PeekByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return s.ioFail(err)
		} else if !isAlpha(ch) {
			break
		}
		s.read()
		s.buf.WriteByte(ch)
	}
	got := mem.B(s.buf.Bytes())
	for _, kw := range keywords {
		if got.Equal(kw.text) {
			s.tok = kw.tok
			return nil
		}
	}
	return s.failf("invalid token %q", got.StringCopy())
}

// read consumes one byte and updates the position counters.
func (s *Scanner) read() (byte, error) {
	ch, err := s.src.ReadByte()
	if err != nil {
		return 0, err
	}
	s.off++
	if ch == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return ch, nil
}

// readIn reads a byte of the raw text of a token of the given kind, for
// which the end of input is an error.
func (s *Scanner) readIn(kind string) (byte, error) {
	ch, err := s.read()
	if err == io.EOF {
		return 0, s.failf("unterminated %s", kind)
	} else if err != nil {
		return 0, s.ioFail(err)
	}
	s.buf.WriteByte(ch)
	return ch, nil
}

func (s *Scanner) fail(err error, msg string) error {
	s.tok = Invalid
	s.err = &SyntaxError{Message: msg, Line: s.line, Column: s.col, err: err}
	return s.err
}

func (s *Scanner) failf(msg string, args ...any) error {
	return s.fail(nil, fmt.Sprintf(msg, args...))
}

func (s *Scanner) ioFail(err error) error {
	return s.fail(err, fmt.Sprintf("read failed: %v", err))
}

// numState is a state of the automaton recognizing JSON numbers.
type numState byte

const (
	numStart    numState = iota // nothing consumed
	numMinus                    // leading sign
	numZero                     // leading zero (accepting)
	numInt                      // integer digits (accepting)
	numDot                      // decimal point, awaiting a digit
	numExp                      // exponent marker, awaiting sign or digit
	numFrac                     // fraction digits (accepting)
	numExpSign                  // exponent sign, awaiting a digit
	numExpDigit                 // exponent digits (accepting)
)

// next reports the state reached from st on input ch, and false if ch cannot
// extend a number in state st.
func (st numState) next(ch byte) (numState, bool) {
	switch st {
	case numStart:
		switch {
		case ch == '-':
			return numMinus, true
		case ch == '0':
			return numZero, true
		case isNonZeroDigit(ch):
			return numInt, true
		}
	case numMinus:
		switch {
		case ch == '0':
			return numZero, true
		case isNonZeroDigit(ch):
			return numInt, true
		}
	case numZero:
		switch ch {
		case '.':
			return numDot, true
		case 'e', 'E':
			return numExp, true
		}
	case numInt:
		switch {
		case isDigit(ch):
			return numInt, true
		case ch == '.':
			return numDot, true
		case ch == 'e' || ch == 'E':
			return numExp, true
		}
	case numDot:
		if isDigit(ch) {
			return numFrac, true
		}
	case numExp:
		switch {
		case ch == '-' || ch == '+':
			return numExpSign, true
		case isDigit(ch):
			return numExpDigit, true
		}
	case numFrac:
		switch {
		case isDigit(ch):
			return numFrac, true
		case ch == 'e' || ch == 'E':
			return numExp, true
		}
	case numExpSign, numExpDigit:
		if isDigit(ch) {
			return numExpDigit, true
		}
	}
	return st, false
}

func (st numState) accepting() bool {
	return st == numZero || st == numInt || st == numFrac || st == numExpDigit
}

// ValidNumber reports whether text is, in its entirety, a number in the JSON
// grammar.
func ValidNumber(text string) bool {
	st := numStart
	for i := 0; i < len(text); i++ {
		next, ok := st.next(text[i])
		if !ok {
			return false
		}
		st = next
	}
	return st.accepting()
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool     { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool        { return '0' <= ch && ch <= '9' }
func isNonZeroDigit(ch byte) bool { return '1' <= ch && ch <= '9' }
func isAlpha(ch byte) bool        { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Token, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
