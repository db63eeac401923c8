// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jread

import (
	"bufio"
	"io"

	"go4.org/mem"
)

// A Source is a sequential source of input bytes for a Scanner. PeekByte
// reports the next byte without consuming it, and is the only lookahead the
// scanner requires. Both methods report io.EOF at the end of input.
//
// A Source is owned exclusively by the Scanner that consumes it.
type Source interface {
	ReadByte() (byte, error)
	PeekByte() (byte, error)
}

// StringSource returns a Source that reads the contents of s.
func StringSource(s string) Source { return &memSource{data: mem.S(s)} }

// BytesSource returns a Source that reads the contents of b.  The caller must
// not modify b while the source is in use.
func BytesSource(b []byte) Source { return &memSource{data: mem.B(b)} }

// ReaderSource returns a Source that reads from r.
func ReaderSource(r io.Reader) Source {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return readerSource{br: br}
}

type memSource struct {
	data mem.RO
	pos  int
}

func (m *memSource) ReadByte() (byte, error) {
	if m.pos >= m.data.Len() {
		return 0, io.EOF
	}
	b := m.data.At(m.pos)
	m.pos++
	return b, nil
}

func (m *memSource) PeekByte() (byte, error) {
	if m.pos >= m.data.Len() {
		return 0, io.EOF
	}
	return m.data.At(m.pos), nil
}

type readerSource struct{ br *bufio.Reader }

func (r readerSource) ReadByte() (byte, error) { return r.br.ReadByte() }

func (r readerSource) PeekByte() (byte, error) {
	b, err := r.br.Peek(1)
	if len(b) == 0 {
		if err == nil {
			err = io.EOF
		}
		return 0, err
	}
	return b[0], nil
}
