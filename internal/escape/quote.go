// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// AppendQuoted appends src to dst as a JSON string literal, with enclosing
// double quotation marks, and returns the extended slice.
//
// Lone surrogate code units encoded by AppendUnit are written back as \u
// escapes, so decoding and re-quoting a string is lossless.
func AppendQuoted(dst []byte, src mem.RO) []byte {
	dst = append(dst, '"')
	for src.Len() != 0 {
		c := src.At(0)
		if c < utf8.RuneSelf {
			switch {
			case c < ' ':
				if b := controlEsc[c]; b != 0 {
					dst = append(dst, '\\', b)
				} else {
					dst = appendHex(dst, uint16(c))
				}
			case c == '\\' || c == '"':
				dst = append(dst, '\\', c)
			default:
				dst = append(dst, c)
			}
			src = src.SliceFrom(1)
			continue
		}

		if u, ok := surrogateAt(src); ok {
			dst = appendHex(dst, u)
			src = src.SliceFrom(3)
			continue
		}

		r, n := mem.DecodeRune(src)
		switch r {
		case '\u2028', '\u2029': // line and paragraph separators
			dst = appendHex(dst, uint16(r))
		default:
			dst = utf8.AppendRune(dst, r)
		}
		src = src.SliceFrom(n)
	}
	return append(dst, '"')
}

func appendHex(dst []byte, u uint16) []byte {
	return append(dst, '\\', 'u',
		hexDigit[u>>12], hexDigit[(u>>8)&15], hexDigit[(u>>4)&15], hexDigit[u&15])
}

// surrogateAt reports whether src begins with the 3-byte encoding of a
// surrogate code unit (U+D800 to U+DFFF), and if so which.
func surrogateAt(src mem.RO) (uint16, bool) {
	if src.Len() < 3 || src.At(0) != 0xed {
		return 0, false
	}
	b1, b2 := src.At(1), src.At(2)
	if b1 < 0xa0 || b1 > 0xbf || b2&0xc0 != 0x80 {
		return 0, false
	}
	return 0xd000 | uint16(b1&0x3f)<<6 | uint16(b2&0x3f), true
}
