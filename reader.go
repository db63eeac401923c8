// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jread

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// A Notation is a structural event reported by a Reader.
type Notation byte

// Constants defining the valid Notation values.
const (
	Error       Notation = iota // the reader has failed
	ObjectStart                 // "{"
	ObjectEnd                   // "}"
	ArrayStart                  // "["
	ArrayEnd                    // "]"
	Boolean                     // true or false
	StringValue                 // a string value
	NumberValue                 // a number value
	NullValue                   // null
	Done                        // the root value is complete
)

var notationStr = [...]string{
	Error:       "Error",
	ObjectStart: "ObjectStart",
	ObjectEnd:   "ObjectEnd",
	ArrayStart:  "ArrayStart",
	ArrayEnd:    "ArrayEnd",
	Boolean:     "Boolean",
	StringValue: "String",
	NumberValue: "Number",
	NullValue:   "Null",
	Done:        "Done",
}

func (n Notation) String() string {
	if int(n) >= len(notationStr) {
		return fmt.Sprintf("Notation(%d)", n)
	}
	return notationStr[n]
}

var tokenNotation = [...]Notation{
	Invalid: Error,
	LBrace:  ObjectStart,
	RBrace:  ObjectEnd,
	LSquare: ArrayStart,
	RSquare: ArrayEnd,
	Comma:   Error,
	Colon:   Error,
	Number:  NumberValue,
	String:  StringValue,
	True:    Boolean,
	False:   Boolean,
	Null:    NullValue,
}

// A Container is the kind of an open container on the nesting stack.
type Container byte

// Constants defining the valid Container values.
const (
	ObjectContainer Container = iota + 1
	ArrayContainer
)

// State is the state of a Reader.
type State byte

// Constants defining the valid State values.
const (
	Start    State = iota // no container opened yet
	InObject              // the innermost open container is an object
	InArray               // the innermost open container is an array
	Finished              // the root value is complete
	Failed                // a syntax error occurred
)

func (s State) String() string {
	switch s {
	case Start:
		return "Start"
	case InObject:
		return "InObject"
	case InArray:
		return "InArray"
	case Finished:
		return "Finished"
	case Failed:
		return "Failed"
	}
	return fmt.Sprintf("State(%d)", s)
}

// A Reader is a pull parser that reports the structure of a single JSON
// document as a sequence of notations. The root of the document must be an
// object or an array.
//
// The Reader maintains an explicit stack of open containers rather than
// recursing, and enforces the placement of commas and colons. Once the
// Reader reports an error, it stays failed: every later call to Next reports
// the same error without reading further input.
type Reader struct {
	s     *Scanner
	stk   *arraystack.Stack // of Container
	note  Notation          // the last notation reported
	ident string            // key of the current object member
	sep   bool              // a value is complete in the innermost container
	done  bool              // the root value is closed
	extra bool              // input remains after the root value
	err   error
}

// NewReader constructs a Reader that consumes input from src.
func NewReader(src Source) *Reader { return NewReaderWithScanner(NewScanner(src)) }

// NewStringReader constructs a Reader that consumes the contents of s.
func NewStringReader(s string) *Reader { return NewReader(StringSource(s)) }

// NewReaderWithScanner constructs a Reader that consumes tokens from s.
func NewReaderWithScanner(s *Scanner) *Reader {
	return &Reader{s: s, stk: arraystack.New()}
}

// Next advances r to the next notation of the input. When the root value is
// complete and only whitespace remains, Next returns Done and io.EOF. In case
// of a syntax error, Next returns Error and an error of concrete type
// *SyntaxError.
func (r *Reader) Next() (Notation, error) {
	if r.err != nil {
		return Error, r.err
	}
	if r.done {
		if r.extra {
			return Error, r.failf("unexpected additional input")
		}
		r.note = Done
		return Done, io.EOF
	}

	r.ident = ""
	var tok Token
	var err error
	switch r.State() {
	case InObject:
		tok, err = r.readMember()
	case InArray:
		tok, err = r.readElement()
	default:
		tok, err = r.readStart()
	}
	if err != nil {
		return Error, err
	}
	return r.accept(tok)
}

// State reports the current state of r.
func (r *Reader) State() State {
	switch {
	case r.err != nil:
		return Failed
	case r.done:
		return Finished
	}
	top, ok := r.top()
	if !ok {
		return Start
	} else if top == ObjectContainer {
		return InObject
	}
	return InArray
}

// Depth reports the number of containers currently open.
func (r *Reader) Depth() int { return r.stk.Size() }

// Err returns the error that stopped r, or nil.
func (r *Reader) Err() error { return r.err }

// Notation reports the last notation returned by Next, or Error if Next has
// not yet been called.
func (r *Reader) Notation() Notation { return r.note }

// Identifier returns the key of the object member whose value was reported
// by the last call to Next. It returns "" if that value was not the value of
// an object member.
func (r *Reader) Identifier() string { return r.ident }

// StringValue returns the decoded string reported by the last call to Next.
// It panics if the last notation was not StringValue.
func (r *Reader) StringValue() string {
	r.require("Reader.StringValue", StringValue)
	return r.s.StringValue()
}

// NumberValue returns the number reported by the last call to Next.
// It panics if the last notation was not NumberValue.
func (r *Reader) NumberValue() float64 {
	r.require("Reader.NumberValue", NumberValue)
	return r.s.NumberValue()
}

// NumberText returns the decimal text of the number reported by the last call
// to Next, exactly as it appeared in the input.
// It panics if the last notation was not NumberValue.
func (r *Reader) NumberText() string {
	r.require("Reader.NumberText", NumberValue)
	return string(r.s.Text())
}

// BoolValue returns the Boolean reported by the last call to Next.
// It panics if the last notation was not Boolean.
func (r *Reader) BoolValue() bool {
	r.require("Reader.BoolValue", Boolean)
	return r.s.BoolValue()
}

// Location reports the position immediately after the most recently consumed
// input byte.
func (r *Reader) Location() Location { return r.s.Location() }

// Line reports the 1-based line number of the current position.
func (r *Reader) Line() int { return r.s.line }

// Column reports the 0-based column offset of the current position.
func (r *Reader) Column() int { return r.s.col }

// SkipObject discards the remainder of the innermost open object, through
// and including its closing brace. Called immediately after an ObjectStart,
// it skips the entire object. It panics if the innermost open container is
// not an object.
func (r *Reader) SkipObject() error { return r.skipTo("Reader.SkipObject", ObjectContainer) }

// SkipArray discards the remainder of the innermost open array, through and
// including its closing bracket. Called immediately after an ArrayStart, it
// skips the entire array. It panics if the innermost open container is not
// an array.
func (r *Reader) SkipArray() error { return r.skipTo("Reader.SkipArray", ArrayContainer) }

func (r *Reader) skipTo(method string, want Container) error {
	if r.err != nil {
		return r.err
	}
	if top, ok := r.top(); !ok || top != want {
		usagePanic(method, "reader is in state %v", r.State())
	}
	depth := r.stk.Size()
	for {
		n, err := r.Next()
		if err != nil {
			return err
		}
		if (n == ObjectEnd || n == ArrayEnd) && r.stk.Size() < depth {
			return nil
		}
	}
}

// readStart reads the open token of the root value.
func (r *Reader) readStart() (Token, error) {
	tok, err := r.next()
	if err != nil {
		return tok, err
	} else if tok != LBrace && tok != LSquare {
		return tok, r.failf("expected open brace or bracket, got %v", tok)
	}
	return tok, nil
}

// readMember reads the next value of an object member, including its key and
// any separators before it, or the close of the object.
func (r *Reader) readMember() (Token, error) {
	tok, err := r.next()
	if err != nil || tok == RBrace {
		return tok, err
	}
	if r.sep {
		if tok != Comma {
			return tok, r.failf(`expected "," or "}" in object, got %v`, tok)
		}
		if tok, err = r.next(); err != nil {
			return tok, err
		} else if tok == RBrace {
			return tok, r.failf("trailing comma in object")
		}
	}
	if tok != String {
		return tok, r.failf("expected string key in object, got %v", tok)
	}
	key := r.s.StringValue()
	if tok, err = r.next(); err != nil {
		return tok, err
	} else if tok != Colon {
		return tok, r.failf(`expected ":" after object key, got %v`, tok)
	}
	if tok, err = r.next(); err != nil {
		return tok, err
	} else if !tok.isValue() {
		return tok, r.failf("expected value after colon, got %v", tok)
	}
	r.ident = key
	return tok, nil
}

// readElement reads the next element of an array, including any separator
// before it, or the close of the array.
func (r *Reader) readElement() (Token, error) {
	tok, err := r.next()
	if err != nil || tok == RSquare {
		return tok, err
	}
	if r.sep {
		if tok != Comma {
			return tok, r.failf(`expected "," or "]" in array, got %v`, tok)
		}
		if tok, err = r.next(); err != nil {
			return tok, err
		} else if tok == RSquare {
			return tok, r.failf("trailing comma in array")
		}
	}
	if !tok.isValue() {
		return tok, r.failf("expected value in array, got %v", tok)
	}
	return tok, nil
}

// accept updates the nesting stack for a token already checked against the
// grammar and reports the corresponding notation.
func (r *Reader) accept(tok Token) (Notation, error) {
	switch tok {
	case LBrace:
		r.stk.Push(ObjectContainer)
		r.sep = false
	case LSquare:
		r.stk.Push(ArrayContainer)
		r.sep = false
	case RBrace, RSquare:
		if _, ok := r.stk.Pop(); !ok {
			return Error, r.failf("unbalanced %v", tok)
		}
		r.sep = true
		if r.stk.Empty() {
			r.done = true
			switch err := r.s.SkipSpace(); err {
			case nil:
				r.extra = true
			case io.EOF:
			default:
				return Error, r.setErr(err)
			}
		}
	default:
		r.sep = true
	}
	r.note = tokenNotation[tok]
	return r.note, nil
}

// next reads the next token. The end of input is an error, since the root
// value is still open.
func (r *Reader) next() (Token, error) {
	err := r.s.Next()
	if err == io.EOF {
		return Invalid, r.failf("improperly formatted: input ended before the root value was closed")
	} else if err != nil {
		return Invalid, r.setErr(err)
	}
	return r.s.Token(), nil
}

func (r *Reader) top() (Container, bool) {
	v, ok := r.stk.Peek()
	if !ok {
		return 0, false
	}
	return v.(Container), true
}

func (r *Reader) require(method string, want Notation) {
	if r.note != want {
		usagePanic(method, "last notation was %v, not %v", r.note, want)
	}
}

func (r *Reader) setErr(err error) error {
	r.err = err
	r.note = Error
	return err
}

func (r *Reader) failf(msg string, args ...any) error {
	return r.setErr(&SyntaxError{
		Message: fmt.Sprintf(msg, args...),
		Line:    r.s.line,
		Column:  r.s.col,
	})
}
