// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package dom

import (
	"math"
	"strconv"
	"unsafe"

	"github.com/creachadair/jread"
	"golang.org/x/exp/constraints"
)

// Shared results for conversions of absent or mistyped arrays and objects.
// Callers must not modify these.
var (
	emptyArray  = Array{}
	emptyObject = new(Object)
)

// IsNull reports whether v is absent (nil) or Null.
func IsNull(v Value) bool {
	switch v.(type) {
	case nil, Null:
		return true
	}
	return false
}

// TryGetNumber reports the value of v as a float64. It succeeds for a Number,
// and for a String whose entire text is a number in the JSON grammar.
func TryGetNumber(v Value) (float64, bool) {
	switch t := v.(type) {
	case Number:
		return t.value, true
	case String:
		if !jread.ValidNumber(string(t)) {
			return 0, false
		}
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// TryGetFloat32 reports the value of v as a float32, under the same rules as
// TryGetNumber. It fails if the value is out of range for a float32.
func TryGetFloat32(v Value) (float32, bool) {
	f, ok := TryGetNumber(v)
	if !ok || math.Abs(f) > math.MaxFloat32 {
		return 0, false
	}
	return float32(f), true
}

// TryGetInt reports the value of v as an integer of type T, under the same
// rules as TryGetNumber. The value is rounded to the nearest integer, with
// halves rounded away from zero, and the conversion fails if the result is
// not representable in T.
func TryGetInt[T constraints.Integer](v Value) (T, bool) {
	f, ok := TryGetNumber(v)
	if !ok {
		return 0, false
	}
	lo, hi := intBounds[T]()
	r := math.Round(f)
	if !(r >= lo && r < hi) { // also false for NaN
		return 0, false
	}
	return T(r), true
}

// intBounds reports the range [lo, hi) of integers representable in T.  Both
// bounds are powers of two and exact in a float64, unlike the maximum value
// of a 64-bit type.
func intBounds[T constraints.Integer]() (lo, hi float64) {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	if ^zero < 0 {
		return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	}
	return 0, math.Ldexp(1, bits)
}

// TryGetString reports the value of v as a string. It succeeds for a String,
// and for a Number, whose text is returned.
func TryGetString(v Value) (string, bool) {
	switch t := v.(type) {
	case String:
		return string(t), true
	case Number:
		return t.Text(), true
	}
	return "", false
}

// TryGetBool reports the value of v as a bool. It succeeds for a Bool, and
// for a String whose text is exactly "true" or "false".
func TryGetBool(v Value) (bool, bool) {
	switch t := v.(type) {
	case Bool:
		return bool(t), true
	case String:
		switch t {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// TryGetArray reports the value of v as an Array.
func TryGetArray(v Value) (Array, bool) {
	a, ok := v.(Array)
	return a, ok
}

// TryGetObject reports the value of v as an *Object.
func TryGetObject(v Value) (*Object, bool) {
	o, ok := v.(*Object)
	return o, ok && o != nil
}

// AsNumber returns the value of v as a float64, or 0 if v cannot be
// converted by TryGetNumber.
func AsNumber(v Value) float64 {
	f, ok := TryGetNumber(v)
	if !ok {
		logMismatch("value conversion failed", NumberKind, v)
	}
	return f
}

// AsString returns the value of v as a string, or "" if v cannot be
// converted by TryGetString.
func AsString(v Value) string {
	s, ok := TryGetString(v)
	if !ok {
		logMismatch("value conversion failed", StringKind, v)
	}
	return s
}

// AsBool returns the value of v as a bool, or false if v cannot be converted
// by TryGetBool.
func AsBool(v Value) bool {
	b, ok := TryGetBool(v)
	if !ok {
		logMismatch("value conversion failed", BoolKind, v)
	}
	return b
}

// AsArray returns v as an Array. If v is not an Array, AsArray returns a
// shared empty array.
func AsArray(v Value) Array {
	if a, ok := TryGetArray(v); ok {
		return a
	}
	logMismatch("value conversion failed", ArrayKind, v)
	return emptyArray
}

// AsObject returns v as an *Object. If v is not an object, AsObject returns
// a shared empty object, which the caller must not modify.
func AsObject(v Value) *Object {
	if o, ok := TryGetObject(v); ok {
		return o
	}
	logMismatch("value conversion failed", ObjectKind, v)
	return emptyObject
}

// Equal reports whether a and b are structurally equal. Absent and Null
// values are equal to each other. Otherwise the kinds must match, arrays are
// compared element-wise in order, and objects must have the same keys with
// equal values.
func Equal(a, b Value) bool {
	if IsNull(a) || IsNull(b) {
		return IsNull(a) && IsNull(b)
	}
	switch x := a.(type) {
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Number:
		y, ok := b.(Number)
		return ok && x.value == y.value
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Array:
		y, ok := b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case *Object:
		y, ok := b.(*Object)
		if !ok || x.Len() != y.Len() {
			return false
		}
		eq := true
		x.Each(func(key string, xv Value) {
			if !eq {
				return
			}
			yv, ok := y.TryGetField(key)
			eq = ok && Equal(xv, yv)
		})
		return eq
	}
	return false
}
