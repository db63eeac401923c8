// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jread implements a streaming JSON tokenizer and a pull parser that
// reports the structure of a document as a sequence of notations.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON.  Construct a scanner
// from a Source and call its Next method to iterate over the stream. Next
// advances to the next input token and returns nil, or reports an error:
//
//	s := jread.NewScanner(jread.StringSource(input))
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other error
// has concrete type *jread.SyntaxError and is sticky: once reported, the
// scanner reads no further input.
//
// # Reading
//
// The Reader type wraps a Scanner with a stack of open containers, and
// reports one notation per call to Next:
//
//	r := jread.NewStringReader(`{"x":1,"y":[true,null,"s"]}`)
//	for {
//	   n, err := r.Next()
//	   if err == io.EOF {
//	      break // the document is complete
//	   } else if err != nil {
//	      log.Fatalf("Read failed: %v", err)
//	   }
//	   log.Printf("%v %q", n, r.Identifier())
//	}
//
// The root of a document must be an object or an array, and only whitespace
// may follow it. Scalar payloads are retrieved from the Reader with the
// accessor matching the notation just reported:
//
//	Notation    | Accessors
//	----------- | ---------------------------
//	StringValue | StringValue
//	NumberValue | NumberValue, NumberText
//	Boolean     | BoolValue
//	(any)       | Identifier, Line, Column
//
// Calling an accessor that does not match the last notation is a contract
// violation and panics with a *jread.UsageError.
//
// Errors are reported as *jread.SyntaxError values whose text ends with the
// position of the error, "Line: n Ch: n", where lines are counted from 1 and
// columns from 0.
package jread
