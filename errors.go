// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jread

import "fmt"

// SyntaxError is the concrete type of errors reported by the Scanner and the
// Reader for malformed input. The location is the position immediately after
// the last byte consumed before the error was detected.
type SyntaxError struct {
	Message string
	Line    int // 1-based
	Column  int // 0-based

	err error
}

// Error satisfies the error interface. The message precedes the position, in
// the form "message Line: n Ch: n".
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s Line: %d Ch: %d", e.Message, e.Line, e.Column)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }

// LineCol returns the location of the error.
func (e *SyntaxError) LineCol() LineCol { return LineCol{Line: e.Line, Column: e.Column} }

// UsageError is the value of a panic raised when a caller violates the
// precondition of a Reader or Scanner method, such as asking for the string
// payload of a number.
type UsageError struct {
	Method string
	Reason string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("jread: contract violation in %s: %s", e.Method, e.Reason)
}

func usagePanic(method, msg string, args ...any) {
	panic(&UsageError{Method: method, Reason: fmt.Sprintf(msg, args...)})
}
