// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package dom

import (
	"errors"
	"io"
	"os"

	"github.com/creachadair/jread"
)

// Parse consumes the notations of r and returns the document they describe.
// The result is an Array or an *Object. In case of error, the partial
// document is discarded; a syntax error has concrete type *jread.SyntaxError.
//
// Duplicate keys within an object are permitted, and the last value wins.
func Parse(r *jread.Reader) (Value, error) {
	var b builder
	for {
		n, err := r.Next()
		if err == io.EOF {
			if b.root == nil {
				return nil, errors.New("incomplete value")
			}
			return b.root, nil
		} else if err != nil {
			return nil, err
		}

		switch n {
		case jread.ObjectStart:
			b.push(frame{key: r.Identifier(), obj: NewObject()})
		case jread.ArrayStart:
			b.push(frame{key: r.Identifier(), arr: Array{}})
		case jread.ObjectEnd, jread.ArrayEnd:
			b.reduce()
		case jread.StringValue:
			b.add(r.Identifier(), String(r.StringValue()))
		case jread.NumberValue:
			b.add(r.Identifier(), Number{value: r.NumberValue(), text: r.NumberText()})
		case jread.Boolean:
			b.add(r.Identifier(), Bool(r.BoolValue()))
		case jread.NullValue:
			b.add(r.Identifier(), Null{})
		}
	}
}

// ParseString parses a document from the contents of s.
func ParseString(s string) (Value, error) { return Parse(jread.NewStringReader(s)) }

// ParseReader parses a document from the contents of r.
func ParseReader(r io.Reader) (Value, error) {
	return Parse(jread.NewReader(jread.ReaderSource(r)))
}

// ParseFile parses a document from the contents of the named file.
func ParseFile(path string) (Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseReader(f)
}

// A builder assembles values from notations, keeping the incomplete
// containers on a stack.
type builder struct {
	stk  []frame
	root Value
}

// A frame is an incomplete container. Exactly one of obj and arr is set.
type frame struct {
	key string // member key of the container in its parent, if any
	obj *Object
	arr Array
}

func (b *builder) push(f frame) { b.stk = append(b.stk, f) }

// reduce pops the innermost container and adds it to its parent.
func (b *builder) reduce() {
	n := len(b.stk) - 1
	f := b.stk[n]
	b.stk = b.stk[:n]
	if f.obj != nil {
		b.add(f.key, f.obj)
	} else {
		b.add(f.key, f.arr)
	}
}

// add adds v to the innermost container, with the given key if that
// container is an object. With no container open, v becomes the root.
func (b *builder) add(key string, v Value) {
	if len(b.stk) == 0 {
		b.root = v
		return
	}
	top := &b.stk[len(b.stk)-1]
	if top.obj != nil {
		top.obj.SetField(key, v)
	} else {
		top.arr = append(top.arr, v)
	}
}
