// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jread

import (
	"errors"
	"io"

	"github.com/creachadair/jread/internal/escape"
	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.AppendQuoted(nil, mem.S(src))) }

// Unquote decodes a JSON string value, including its enclosing quotation
// marks, using the same grammar as the Scanner. Surrounding whitespace is
// permitted; any other text before or after the string is an error.
func Unquote(src string) (string, error) {
	s := NewScanner(StringSource(src))
	if err := s.Next(); err == io.EOF {
		return "", errors.New("missing string")
	} else if err != nil {
		return "", err
	} else if s.Token() != String {
		return "", errors.New("not a string")
	}
	out := s.StringValue()
	if err := s.SkipSpace(); err != io.EOF {
		return "", errors.New("extra input after string")
	}
	return out, nil
}
