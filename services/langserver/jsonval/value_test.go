// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package jsonval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValueKinds verifies each constructor activates exactly one kind.
func TestValueKinds(t *testing.T) {
	cases := []struct {
		name  string
		value Value
		kind  Kind
	}{
		{"null", Null(), KindNull},
		{"zero value is null", Value{}, KindNull},
		{"bool", NewBool(true), KindBool},
		{"number", NewNumber(4.5), KindNumber},
		{"string", NewString(NewStr("hi")), KindString},
		{"array", NewArray([]Value{Null()}), KindArray},
		{"object", NewObject(Object{}), KindObject},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.value.Kind())
			assert.Equal(t, tc.kind == KindNull, tc.value.IsNull())
			assert.Equal(t, tc.kind == KindBool, tc.value.IsBool())
			assert.Equal(t, tc.kind == KindNumber, tc.value.IsNumber())
			assert.Equal(t, tc.kind == KindString, tc.value.IsString())
			assert.Equal(t, tc.kind == KindArray, tc.value.IsArray())
			assert.Equal(t, tc.kind == KindObject, tc.value.IsObject())
		})
	}
}

// TestValueAccessors verifies accessors return contents when the predicate
// holds and panic when it does not.
func TestValueAccessors(t *testing.T) {
	t.Run("matching kind", func(t *testing.T) {
		b := NewBool(true)
		assert.True(t, b.AsBool())

		n := NewNumber(42)
		assert.Equal(t, 42.0, n.AsNumber())

		s := NewString(NewStr("x"))
		assert.True(t, s.AsString().Equal(NewStr("x")))

		a := NewArray([]Value{NewNumber(1)})
		assert.Len(t, a.AsArray(), 1)

		var obj Object
		obj.Set(NewStr("k"), Null())
		o := NewObject(obj)
		assert.Equal(t, 1, o.AsObject().Len())
	})

	t.Run("wrong kind panics", func(t *testing.T) {
		v := NewNumber(1)
		require.Panics(t, func() { v.AsBool() })
		require.Panics(t, func() { v.AsString() })
		require.Panics(t, func() { v.AsArray() })
		require.Panics(t, func() { v.AsObject() })

		n := Null()
		require.Panics(t, func() { n.AsNumber() })
	})
}

// TestTryInteger verifies the tolerance-based numeric-to-integer bridge.
func TestTryInteger(t *testing.T) {
	t.Run("whole number", func(t *testing.T) {
		v := NewNumber(42)
		i, ok := v.TryInteger(1e-9)
		require.True(t, ok)
		assert.Equal(t, int64(42), i)
	})

	t.Run("within tolerance", func(t *testing.T) {
		v := NewNumber(5.0000000001)
		i, ok := v.TryInteger(1e-9)
		require.True(t, ok)
		assert.Equal(t, int64(5), i)
	})

	t.Run("outside tolerance", func(t *testing.T) {
		v := NewNumber(5.1)
		_, ok := v.TryInteger(1e-9)
		assert.False(t, ok)
	})

	t.Run("not a number", func(t *testing.T) {
		v := NewString(NewStr("5"))
		_, ok := v.TryInteger(1e-9)
		assert.False(t, ok)

		n := Null()
		_, ok = n.TryInteger(1e-9)
		assert.False(t, ok)
	})
}

// TestStrRoundTrip verifies the Go-string bridge, including non-BMP runes
// becoming surrogate pairs.
func TestStrRoundTrip(t *testing.T) {
	s := NewStr("héllo")
	assert.Equal(t, "héllo", s.String())

	emoji := NewStr("🙂")
	assert.Len(t, emoji, 2) // surrogate pair
	assert.Equal(t, "🙂", emoji.String())

	assert.True(t, NewStr("a").Equal(NewStr("a")))
	assert.False(t, NewStr("a").Equal(NewStr("b")))
	assert.False(t, NewStr("a").Equal(NewStr("ab")))
}

// TestValueEqual verifies deep structural equality, including object order
// sensitivity.
func TestValueEqual(t *testing.T) {
	parseEq := func(t *testing.T, a, b string) bool {
		t.Helper()
		va, err := ParseSingle(a)
		require.NoError(t, err)
		vb, err := ParseSingle(b)
		require.NoError(t, err)
		return va.Equal(&vb)
	}

	t.Run("equal trees", func(t *testing.T) {
		assert.True(t, parseEq(t, `{"a":[1,2,{"b":null}]}`, `{ "a": [1, 2, {"b": null}] }`))
	})

	t.Run("different kinds", func(t *testing.T) {
		assert.False(t, parseEq(t, `1`, `"1"`))
		assert.False(t, parseEq(t, `null`, `false`))
	})

	t.Run("key order matters", func(t *testing.T) {
		assert.False(t, parseEq(t, `{"a":1,"b":2}`, `{"b":2,"a":1}`))
	})
}
