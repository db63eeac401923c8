// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package dom

import (
	"github.com/emirpasic/gods/maps/treemap"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// An Object is a collection of fields, each mapping a unique name to a
// value. Fields are visited in order of their names; the order in which they
// were added is not recorded. The zero value is an empty object ready for
// use.
//
// The Get methods never fail: a missing or mistyped field yields a default
// value, and the mismatch is logged (see SetLogger). Use the TryGet methods
// to distinguish these cases.
type Object struct {
	m *treemap.Map // string → Value
}

// NewObject returns a new empty object.
func NewObject() *Object { return &Object{m: treemap.NewWithStringComparator()} }

// Field constructs an object from alternating names and values, for example
// Field("a", Int(1), "b", Bool(true)). It panics if the arguments are not
// pairs of a string and a value accepted by ToValue.
func Field(pairs ...any) *Object {
	if len(pairs)%2 != 0 {
		panic("odd number of arguments to Field")
	}
	o := NewObject()
	for i := 0; i < len(pairs); i += 2 {
		o.SetField(pairs[i].(string), ToValue(pairs[i+1]))
	}
	return o
}

func (*Object) Kind() Kind { return ObjectKind }
func (*Object) isValue()   {}

func (o *Object) JSON() string {
	buf := []byte{'{'}
	first := true
	o.Each(func(key string, v Value) {
		if !first {
			buf = append(buf, ',')
		}
		first = false
		buf = append(buf, String(key).JSON()...)
		buf = append(buf, ':')
		buf = append(buf, renderJSON(v)...)
	})
	return string(append(buf, '}'))
}

// Len reports the number of fields in o.
func (o *Object) Len() int {
	if o == nil || o.m == nil {
		return 0
	}
	return o.m.Size()
}

// Keys returns the names of the fields of o in sorted order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	o.Each(func(key string, _ Value) { keys = append(keys, key) })
	return keys
}

// Each calls f for each field of o in order of name.
func (o *Object) Each(f func(name string, v Value)) {
	if o == nil || o.m == nil {
		return
	}
	o.m.Each(func(key, value any) { f(key.(string), value.(Value)) })
}

// TryGetField returns the value of the named field, and reports whether it
// is present.
func (o *Object) TryGetField(name string) (Value, bool) {
	if o == nil || o.m == nil {
		return nil, false
	}
	v, ok := o.m.Get(name)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

// GetField returns the value of the named field. If it is not present, the
// result is a new Null.
func (o *Object) GetField(name string) Value { return o.GetTypedField(name, NoKind) }

// GetTypedField returns the value of the named field if it is present and
// has the given kind. Otherwise the result is a new Null. If kind == NoKind,
// any kind is accepted.
func (o *Object) GetTypedField(name string, kind Kind) Value {
	v, ok := o.lookup(name)
	if !ok {
		return Null{}
	} else if kind != NoKind && v.Kind() != kind {
		logMismatch("field has wrong type", kind, v, zap.String("field", name))
		return Null{}
	}
	return v
}

// lookup is TryGetField, but logs a missing field.
func (o *Object) lookup(name string) (Value, bool) {
	v, ok := o.TryGetField(name)
	if !ok {
		logger.Debug("field not found", zap.String("field", name))
	}
	return v, ok
}

// HasField reports whether the named field is present in o.
func (o *Object) HasField(name string) bool {
	_, ok := o.TryGetField(name)
	return ok
}

// HasTypedField reports whether the named field is present in o and has
// the given kind.
func (o *Object) HasTypedField(name string, kind Kind) bool {
	v, ok := o.TryGetField(name)
	return ok && v.Kind() == kind
}

// SetField sets the value of the named field, replacing any previous value.
// A nil value is stored as Null.
func (o *Object) SetField(name string, v Value) {
	if o.m == nil {
		o.m = treemap.NewWithStringComparator()
	}
	if v == nil {
		v = Null{}
	}
	o.m.Put(name, v)
}

// RemoveField removes the named field, if it is present.
func (o *Object) RemoveField(name string) {
	if o.m != nil {
		o.m.Remove(name)
	}
}

// GetNumberField returns the named field as a number, or 0.
func (o *Object) GetNumberField(name string) float64 {
	if v, ok := o.lookup(name); ok {
		return AsNumber(v)
	}
	return 0
}

// TryGetNumberField reports the named field as a number.
func (o *Object) TryGetNumberField(name string) (float64, bool) {
	v, ok := o.TryGetField(name)
	if !ok {
		return 0, false
	}
	return TryGetNumber(v)
}

// GetIntegerField returns the named field as a number truncated to an int32.
func (o *Object) GetIntegerField(name string) int32 { return int32(o.GetNumberField(name)) }

// TryGetIntField reports the named field of o as an integer of type T, under
// the rules of TryGetInt.
func TryGetIntField[T constraints.Integer](o *Object, name string) (T, bool) {
	v, ok := o.TryGetField(name)
	if !ok {
		return 0, false
	}
	return TryGetInt[T](v)
}

// SetNumberField sets the named field to the number f.
func (o *Object) SetNumberField(name string, f float64) { o.SetField(name, NewNumber(f)) }

// GetStringField returns the named field as a string, or "".
func (o *Object) GetStringField(name string) string {
	if v, ok := o.lookup(name); ok {
		return AsString(v)
	}
	return ""
}

// TryGetStringField reports the named field as a string.
func (o *Object) TryGetStringField(name string) (string, bool) {
	v, ok := o.TryGetField(name)
	if !ok {
		return "", false
	}
	return TryGetString(v)
}

// TryGetStringArrayField reports the named field as a slice of strings. It
// fails if the field is not an array, or if any element cannot be converted
// by TryGetString.
func (o *Object) TryGetStringArrayField(name string) ([]string, bool) {
	a, ok := o.TryGetArrayField(name)
	if !ok {
		return nil, false
	}
	out := make([]string, len(a))
	for i, v := range a {
		s, ok := TryGetString(v)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// SetStringField sets the named field to the string s.
func (o *Object) SetStringField(name, s string) { o.SetField(name, String(s)) }

// GetBoolField returns the named field as a bool, or false.
func (o *Object) GetBoolField(name string) bool {
	if v, ok := o.lookup(name); ok {
		return AsBool(v)
	}
	return false
}

// TryGetBoolField reports the named field as a bool.
func (o *Object) TryGetBoolField(name string) (bool, bool) {
	v, ok := o.TryGetField(name)
	if !ok {
		return false, false
	}
	return TryGetBool(v)
}

// SetBoolField sets the named field to b.
func (o *Object) SetBoolField(name string, b bool) { o.SetField(name, Bool(b)) }

// GetArrayField returns the named field as an array. If the field is missing
// or is not an array, the result is a shared empty array.
func (o *Object) GetArrayField(name string) Array {
	if a, ok := o.GetTypedField(name, ArrayKind).(Array); ok {
		return a
	}
	return emptyArray
}

// TryGetArrayField reports the named field as an array.
func (o *Object) TryGetArrayField(name string) (Array, bool) {
	v, ok := o.TryGetField(name)
	if !ok {
		return nil, false
	}
	return TryGetArray(v)
}

// SetArrayField sets the named field to the array a.
func (o *Object) SetArrayField(name string, a Array) {
	if a == nil {
		a = Array{}
	}
	o.SetField(name, a)
}

// GetObjectField returns the named field as an object. If the field is
// missing or is not an object, the result is a shared empty object, which
// the caller must not modify.
func (o *Object) GetObjectField(name string) *Object {
	if obj, ok := o.GetTypedField(name, ObjectKind).(*Object); ok {
		return obj
	}
	return emptyObject
}

// TryGetObjectField reports the named field as an object.
func (o *Object) TryGetObjectField(name string) (*Object, bool) {
	v, ok := o.TryGetField(name)
	if !ok {
		return nil, false
	}
	return TryGetObject(v)
}

// SetObjectField sets the named field to the object obj. If obj == nil, the
// field is set to Null.
func (o *Object) SetObjectField(name string, obj *Object) {
	if obj == nil {
		o.SetField(name, Null{})
		return
	}
	o.SetField(name, obj)
}
