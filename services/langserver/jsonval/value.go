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
	"fmt"
	"math"
	"unicode/utf16"
)

// Kind identifies which variant of a Value is active.
type Kind uint8

const (
	// KindNull is the JSON null value. The zero Value is null.
	KindNull Kind = iota

	// KindBool is a JSON boolean.
	KindBool

	// KindNumber is a JSON number, stored as an IEEE-754 double.
	KindNumber

	// KindString is a JSON string of 16-bit code units.
	KindString

	// KindArray is an ordered sequence of values.
	KindArray

	// KindObject is an insertion-ordered string-keyed mapping.
	KindObject
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Str is a JSON string: a sequence of 16-bit code units.
//
// A Str is not necessarily well-formed UTF-16. Unpaired surrogates can occur
// (the parser stores each \uXXXX escape as a single code unit) and must be
// carried through untouched.
type Str []uint16

// NewStr encodes a Go string into code units. Runes outside the BMP become
// surrogate pairs.
func NewStr(s string) Str {
	return Str(utf16.Encode([]rune(s)))
}

// String decodes the code units back into a Go string. Unpaired surrogates
// become U+FFFD; use this for display and logging, not for wire output.
func (s Str) String() string {
	return string(utf16.Decode(s))
}

// Equal reports whether two strings hold identical code units.
func (s Str) Equal(other Str) bool {
	if len(s) != len(other) {
		return false
	}
	for i, u := range s {
		if other[i] != u {
			return false
		}
	}
	return true
}

// Value is a closed tagged union over the JSON kinds. Exactly one kind is
// active at a time. The zero Value is null.
//
// Accessors are unchecked: calling AsBool on a non-bool is a programming
// error and panics. Test with the Is* predicates first.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  Str
	arr  []Value
	obj  Object
}

// Null returns the JSON null value.
func Null() Value {
	return Value{}
}

// NewBool wraps a boolean.
func NewBool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// NewNumber wraps a double.
func NewNumber(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// NewString wraps a code-unit string.
func NewString(s Str) Value {
	return Value{kind: KindString, str: s}
}

// NewArray wraps a sequence of values. The slice is owned by the Value.
func NewArray(elems []Value) Value {
	return Value{kind: KindArray, arr: elems}
}

// NewObject wraps an object. The object is owned by the Value.
func NewObject(obj Object) Value {
	return Value{kind: KindObject, obj: obj}
}

// Kind returns the active variant.
func (v *Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v *Value) IsNull() bool { return v.kind == KindNull }

// IsBool reports whether the value is a boolean.
func (v *Value) IsBool() bool { return v.kind == KindBool }

// IsNumber reports whether the value is a number.
func (v *Value) IsNumber() bool { return v.kind == KindNumber }

// IsString reports whether the value is a string.
func (v *Value) IsString() bool { return v.kind == KindString }

// IsArray reports whether the value is an array.
func (v *Value) IsArray() bool { return v.kind == KindArray }

// IsObject reports whether the value is an object.
func (v *Value) IsObject() bool { return v.kind == KindObject }

func (v *Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("jsonval: value is %s, not %s", v.kind, k))
	}
}

// AsBool returns the boolean. Panics unless IsBool.
func (v *Value) AsBool() bool {
	v.mustBe(KindBool)
	return v.b
}

// AsNumber returns the double. Panics unless IsNumber.
func (v *Value) AsNumber() float64 {
	v.mustBe(KindNumber)
	return v.num
}

// AsString returns the code units. Panics unless IsString.
func (v *Value) AsString() Str {
	v.mustBe(KindString)
	return v.str
}

// AsArray returns the element slice. Panics unless IsArray.
func (v *Value) AsArray() []Value {
	v.mustBe(KindArray)
	return v.arr
}

// AsObject returns a mutable reference to the object. Panics unless IsObject.
func (v *Value) AsObject() *Object {
	v.mustBe(KindObject)
	return &v.obj
}

// TryInteger returns the value as an int64 when it is a number within
// tolerance of a whole number. This is the single numeric-to-integer bridge:
// JSON has no integer kind, so protocol fields typed "integer" go through
// here.
func (v *Value) TryInteger(tolerance float64) (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	if v.num-math.Floor(v.num) <= tolerance {
		return int64(v.num), true
	}
	return 0, false
}

// Equal reports deep structural equality: same kind, and recursively equal
// contents. Object comparison is order-sensitive, matching the observable
// re-serialization order.
func (v *Value) Equal(other *Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.num == other.num
	case KindString:
		return v.str.Equal(other.str)
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(&other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		a, b := v.obj.Entries(), other.obj.Entries()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Key.Equal(b[i].Key) || !a[i].Value.Equal(&b[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
