// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the escape grammar of JSON strings.
package escape

var simpleEsc = [...]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Simple reports the byte denoted by the single-character escape \c, and
// whether c is a valid single-character escape. The \u escape is not simple.
func Simple(c byte) (byte, bool) {
	if int(c) < len(simpleEsc) {
		if b := simpleEsc[c]; b != 0 {
			return b, true
		}
	}
	return 0, false
}

// HexDigit reports the value of the hexadecimal digit c, and whether c is a
// hexadecimal digit. Both cases are accepted.
func HexDigit(c byte) (uint16, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint16(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint16(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return uint16(c-'A') + 10, true
	}
	return 0, false
}

// AppendUnit appends the UTF-8 style encoding of the 16-bit code unit u to
// dst. Surrogate halves are not combined: each is encoded on its own as a
// 3-byte sequence, so a lone surrogate is preserved rather than replaced.
func AppendUnit(dst []byte, u uint16) []byte {
	switch {
	case u < 0x80:
		return append(dst, byte(u))
	case u < 0x800:
		return append(dst, 0xc0|byte(u>>6), 0x80|byte(u&0x3f))
	default:
		return append(dst, 0xe0|byte(u>>12), 0x80|byte((u>>6)&0x3f), 0x80|byte(u&0x3f))
	}
}
