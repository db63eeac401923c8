package jread

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location describes the position of the most recently consumed input
// byte along with the total number of bytes consumed.
type Location struct {
	LineCol
	Offset int // bytes consumed, 0-based
}
