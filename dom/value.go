// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package dom defines an in-memory model for JSON values, and assembles
// values from the notations reported by a jread.Reader.
//
// A Value is one of the concrete types Null, Bool, Number, String, Array, or
// *Object. A nil Value denotes an absent value; IsNull treats it the same as
// an explicit Null. Values other than *Object are immutable. An *Object may
// be shared among several parents, but it should not be modified once it has
// been shared.
package dom

import (
	"fmt"
	"math"
	"strconv"

	"github.com/creachadair/jread"
	"github.com/creachadair/jread/internal/escape"
	"go4.org/mem"
)

// Kind identifies the concrete type of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NoKind     Kind = iota // absent (nil) value
	NullKind               // Null
	BoolKind               // Bool
	NumberKind             // Number
	StringKind             // String
	ArrayKind              // Array
	ObjectKind             // *Object
)

var kindStr = [...]string{
	NoKind:     "none",
	NullKind:   "null",
	BoolKind:   "boolean",
	NumberKind: "number",
	StringKind: "string",
	ArrayKind:  "array",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindStr[k]
}

// A Value is an arbitrary JSON value. The set of implementations is closed.
type Value interface {
	// Kind reports the type of the value.
	Kind() Kind

	// JSON renders the value as compact JSON text. Object members are
	// rendered in order of their keys.
	JSON() string

	isValue()
}

// KindOf reports the kind of v, which may be nil.
func KindOf(v Value) Kind {
	if v == nil {
		return NoKind
	}
	return v.Kind()
}

// Null represents the null constant.
type Null struct{}

func (Null) Kind() Kind     { return NullKind }
func (Null) JSON() string   { return "null" }
func (Null) String() string { return "null" }
func (Null) isValue()       {}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) Kind() Kind { return BoolKind }

func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }
func (Bool) isValue()       {}

// A String is a string value.
type String string

func (String) Kind() Kind     { return StringKind }
func (s String) JSON() string { return string(escape.AppendQuoted(nil, mem.S(string(s)))) }
func (String) isValue()       {}

// A Number is a numeric value. It retains the decimal text it was parsed
// from, so that integers too large for a float64 can be recovered exactly.
type Number struct {
	value float64
	text  string
}

// NewNumber returns a Number with value f. Its text is the shortest decimal
// representation of f.
func NewNumber(f float64) Number {
	return Number{value: f, text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Int returns a Number with value z, whose text is exact.
func Int(z int64) Number {
	return Number{value: float64(z), text: strconv.FormatInt(z, 10)}
}

// ParseNumber parses text as a JSON number. It reports an error if text is
// not a number in the JSON grammar or is out of range for a float64.
func ParseNumber(text string) (Number, error) {
	if !jread.ValidNumber(text) {
		return Number{}, fmt.Errorf("invalid number %q", text)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Number{}, err
	}
	return Number{value: v, text: text}, nil
}

func (Number) Kind() Kind { return NumberKind }

// JSON renders the original text of n.
func (n Number) JSON() string {
	if n.text == "" {
		return "0"
	}
	return n.text
}
func (Number) isValue() {}

// Float64 returns the value of n.
func (n Number) Float64() float64 { return n.value }

// Text returns the decimal text of n.
func (n Number) Text() string { return n.JSON() }

// Int64 returns the value of n as an int64, parsed from the text of n so
// that large integers are exact. It reports an error if the text does not
// denote an integer in range.
func (n Number) Int64() (int64, error) { return strconv.ParseInt(n.Text(), 10, 64) }

// IsInt reports whether the value of n is integral.
func (n Number) IsInt() bool { return !math.IsInf(n.value, 0) && n.value == math.Trunc(n.value) }

// An Array is an ordered sequence of values.
type Array []Value

func (Array) Kind() Kind { return ArrayKind }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (a Array) JSON() string {
	buf := []byte{'['}
	for i, v := range a {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, renderJSON(v)...)
	}
	return string(append(buf, ']'))
}
func (Array) isValue() {}

func renderJSON(v Value) string {
	if v == nil {
		return "null"
	}
	return v.JSON()
}

// ToValue converts a Go value into a Value. It handles nil, Booleans,
// numbers of built-in types, strings, slices of values, and maps with string
// keys; a Value is returned unchanged. ToValue panics for other types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(int64(t))
	case int8:
		return Int(int64(t))
	case int16:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case uint8:
		return Int(int64(t))
	case uint16:
		return Int(int64(t))
	case uint32:
		return Int(int64(t))
	case uint:
		return Number{value: float64(t), text: strconv.FormatUint(uint64(t), 10)}
	case uint64:
		return Number{value: float64(t), text: strconv.FormatUint(t, 10)}
	case float32:
		return NewNumber(float64(t))
	case float64:
		return NewNumber(t)
	case []Value:
		return Array(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case []string:
		out := make(Array, len(t))
		for i, s := range t {
			out[i] = String(s)
		}
		return out
	case map[string]any:
		o := NewObject()
		for key, elt := range t {
			o.SetField(key, ToValue(elt))
		}
		return o
	default:
		panic(fmt.Sprintf("cannot convert %T to a JSON value", v))
	}
}

// ToAny converts v into plain Go values: nil, bool, float64 or int64 (for
// numbers whose text is an exact integer), string, []any, or map[string]any.
func ToAny(v Value) any {
	switch t := v.(type) {
	case Bool:
		return bool(t)
	case Number:
		if z, err := t.Int64(); err == nil {
			return z
		}
		return t.value
	case String:
		return string(t)
	case Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = ToAny(elt)
		}
		return out
	case *Object:
		out := make(map[string]any, t.Len())
		t.Each(func(key string, elt Value) { out[key] = ToAny(elt) })
		return out
	}
	return nil
}
