// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package dom_test

import (
	"math"
	"testing"

	"github.com/creachadair/jread/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNumber(t *testing.T, text string) dom.Number {
	t.Helper()
	n, err := dom.ParseNumber(text)
	require.NoError(t, err, "ParseNumber(%q)", text)
	return n
}

func TestTryGetNumber(t *testing.T) {
	tests := []struct {
		input dom.Value
		want  float64
		ok    bool
	}{
		{dom.Int(12), 12, true},
		{dom.NewNumber(-0.25), -0.25, true},
		{dom.String("15"), 15, true},
		{dom.String("-1.5e2"), -150, true},
		{dom.String("0"), 0, true},

		{dom.String(""), 0, false},
		{dom.String("12abc"), 0, false},
		{dom.String(" 1"), 0, false},
		{dom.String("01"), 0, false},
		{dom.String("+1"), 0, false},
		{dom.String("NaN"), 0, false},
		{dom.String("Inf"), 0, false},
		{dom.String("1e999"), 0, false},
		{dom.Bool(true), 0, false},
		{dom.Null{}, 0, false},
		{nil, 0, false},
		{dom.Array{dom.Int(1)}, 0, false},
		{dom.Field("a", 1), 0, false},
	}
	for _, test := range tests {
		got, ok := dom.TryGetNumber(test.input)
		assert.Equal(t, test.ok, ok, "TryGetNumber(%v) ok", test.input)
		assert.Equal(t, test.want, got, "TryGetNumber(%v) value", test.input)
	}
}

func TestTryGetFloat32(t *testing.T) {
	got, ok := dom.TryGetFloat32(dom.NewNumber(0.5))
	assert.True(t, ok)
	assert.Equal(t, float32(0.5), got)

	_, ok = dom.TryGetFloat32(dom.NewNumber(1e300))
	assert.False(t, ok, "1e300 should not fit a float32")

	got, ok = dom.TryGetFloat32(dom.String("-3.25"))
	assert.True(t, ok)
	assert.Equal(t, float32(-3.25), got)
}

func TestTryGetInt(t *testing.T) {
	two64 := math.Ldexp(1, 64)
	two63 := math.Ldexp(1, 63)

	t.Run("Uint64", func(t *testing.T) {
		_, ok := dom.TryGetInt[uint64](dom.NewNumber(two64))
		assert.False(t, ok, "2^64 is out of range")

		below := math.Nextafter(two64, 0)
		got, ok := dom.TryGetInt[uint64](dom.NewNumber(below))
		assert.True(t, ok, "largest float below 2^64 is in range")
		assert.Equal(t, uint64(below), got)

		_, ok = dom.TryGetInt[uint64](dom.Int(-1))
		assert.False(t, ok, "negative values are out of range")

		got, ok = dom.TryGetInt[uint64](mustNumber(t, "-0.4"))
		assert.True(t, ok, "-0.4 rounds to zero")
		assert.Equal(t, uint64(0), got)
	})

	t.Run("Int64", func(t *testing.T) {
		got, ok := dom.TryGetInt[int64](dom.NewNumber(-two63))
		assert.True(t, ok, "-2^63 is in range")
		assert.Equal(t, int64(math.MinInt64), got)

		_, ok = dom.TryGetInt[int64](dom.NewNumber(two63))
		assert.False(t, ok, "2^63 is out of range")

		_, ok = dom.TryGetInt[int64](mustNumber(t, "9223372036854775807"))
		assert.False(t, ok, "MaxInt64 rounds up to 2^63 as a float64")

		got, ok = dom.TryGetInt[int64](dom.String("-42"))
		assert.True(t, ok)
		assert.Equal(t, int64(-42), got)
	})

	t.Run("Rounding", func(t *testing.T) {
		tests := []struct {
			input string
			want  int8
			ok    bool
		}{
			{"0", 0, true},
			{"1.4", 1, true},
			{"1.5", 2, true},
			{"-1.5", -2, true},
			{"127.4", 127, true},
			{"127.5", 0, false},
			{"-128.4", -128, true},
			{"-128.5", 0, false},
			{"1e10", 0, false},
		}
		for _, test := range tests {
			got, ok := dom.TryGetInt[int8](mustNumber(t, test.input))
			assert.Equal(t, test.ok, ok, "TryGetInt[int8](%s) ok", test.input)
			assert.Equal(t, test.want, got, "TryGetInt[int8](%s) value", test.input)
		}
	})

	t.Run("Int32", func(t *testing.T) {
		got, ok := dom.TryGetInt[int32](dom.String("2147483647"))
		assert.True(t, ok)
		assert.Equal(t, int32(math.MaxInt32), got)

		_, ok = dom.TryGetInt[int32](dom.String("2147483648"))
		assert.False(t, ok)

		_, ok = dom.TryGetInt[int32](dom.Bool(true))
		assert.False(t, ok)
	})
}

func TestTryGetString(t *testing.T) {
	tests := []struct {
		input dom.Value
		want  string
		ok    bool
	}{
		{dom.String("abc"), "abc", true},
		{dom.String(""), "", true},
		{mustNumber(t, "1.50"), "1.50", true},
		{mustNumber(t, "-2e3"), "-2e3", true},
		{dom.Int(7), "7", true},
		{dom.Bool(false), "", false},
		{dom.Null{}, "", false},
		{nil, "", false},
		{dom.Array{}, "", false},
	}
	for _, test := range tests {
		got, ok := dom.TryGetString(test.input)
		assert.Equal(t, test.ok, ok, "TryGetString(%v) ok", test.input)
		assert.Equal(t, test.want, got, "TryGetString(%v) value", test.input)
	}
}

func TestTryGetBool(t *testing.T) {
	tests := []struct {
		input dom.Value
		want  bool
		ok    bool
	}{
		{dom.Bool(true), true, true},
		{dom.Bool(false), false, true},
		{dom.String("true"), true, true},
		{dom.String("false"), false, true},
		{dom.String("True"), false, false},
		{dom.String("1"), false, false},
		{dom.String(""), false, false},
		{dom.Int(1), false, false},
		{dom.Null{}, false, false},
	}
	for _, test := range tests {
		got, ok := dom.TryGetBool(test.input)
		assert.Equal(t, test.ok, ok, "TryGetBool(%v) ok", test.input)
		assert.Equal(t, test.want, got, "TryGetBool(%v) value", test.input)
	}
}

func TestTryGetContainers(t *testing.T) {
	arr := dom.Array{dom.Int(1), dom.String("x")}
	got, ok := dom.TryGetArray(arr)
	assert.True(t, ok)
	assert.Equal(t, 2, got.Len())

	_, ok = dom.TryGetArray(dom.String("[]"))
	assert.False(t, ok)
	_, ok = dom.TryGetArray(dom.NewObject())
	assert.False(t, ok)

	obj := dom.Field("a", true)
	o, ok := dom.TryGetObject(obj)
	assert.True(t, ok)
	assert.Same(t, obj, o)

	_, ok = dom.TryGetObject(arr)
	assert.False(t, ok)
	_, ok = dom.TryGetObject((*dom.Object)(nil))
	assert.False(t, ok)

	assert.Equal(t, 0, dom.AsArray(dom.Null{}).Len())
	assert.Equal(t, 0, dom.AsObject(dom.Int(3)).Len())
}

func TestIsNull(t *testing.T) {
	assert.True(t, dom.IsNull(nil))
	assert.True(t, dom.IsNull(dom.Null{}))
	assert.False(t, dom.IsNull(dom.Bool(false)))
	assert.False(t, dom.IsNull(dom.String("")))
	assert.False(t, dom.IsNull(dom.Array{}))
}

func TestEqual(t *testing.T) {
	values := []dom.Value{
		dom.Null{},
		dom.Bool(true),
		dom.Bool(false),
		dom.Int(1),
		dom.Int(2),
		dom.String("1"),
		dom.String("a"),
		dom.Array{},
		dom.Array{dom.Int(1), dom.Int(2)},
		dom.Array{dom.Int(2), dom.Int(1)},
		dom.NewObject(),
		dom.Field("a", 1),
		dom.Field("a", 2),
		dom.Field("b", 1),
		dom.Field("a", 1, "b", []any{true, nil}),
	}

	// Each value equals only itself, and equality is symmetric.
	for i, a := range values {
		for j, b := range values {
			want := i == j
			if got := dom.Equal(a, b); got != want {
				t.Errorf("Equal(%s, %s): got %v, want %v", a.JSON(), b.JSON(), got, want)
			}
		}
	}

	tests := []struct {
		a, b dom.Value
		want bool
	}{
		{nil, nil, true},
		{nil, dom.Null{}, true},
		{dom.Null{}, nil, true},
		{nil, dom.Bool(false), false},
		{dom.Int(1), dom.NewNumber(1.0), true},
		{dom.Int(1), mustNumber(t, "1.0e0"), true},
		{dom.Int(0), mustNumber(t, "-0"), true},

		// Object equality does not depend on the order fields were added.
		{dom.Field("a", 1, "b", 2), dom.Field("b", 2, "a", 1), true},
		{dom.Field("a", nil), dom.Field("a", dom.Null{}), true},
		{dom.Field("a", 1), dom.Field("a", 1, "b", 2), false},
		{dom.Field("x", []any{1, "y"}), dom.Field("x", []any{1, "y"}), true},
		{dom.Field("x", []any{1, "y"}), dom.Field("x", []any{1, "z"}), false},
		{dom.Array{nil}, dom.Array{dom.Null{}}, true},
		{dom.Array{dom.Int(1)}, dom.Array{dom.Int(1), dom.Int(1)}, false},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, dom.Equal(test.a, test.b),
			"Equal(%v, %v)", test.a, test.b)
		assert.Equal(t, test.want, dom.Equal(test.b, test.a),
			"Equal(%v, %v)", test.b, test.a)
	}
}
