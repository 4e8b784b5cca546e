// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package baseproto

import (
	"fmt"
	"strconv"

	"github.com/AleutianAI/jaktls/services/langserver/jsonval"
)

type idKind uint8

const (
	idNull idKind = iota
	idString
	idInt
)

// ID is a request identifier: a string or an integer, exactly one of which
// is populated. The zero ID is invalid; requests always carry an id.
type ID struct {
	kind idKind
	str  jsonval.Str
	num  int64
}

// StringID builds a string identifier.
func StringID(s jsonval.Str) ID {
	return ID{kind: idString, str: s}
}

// IntID builds an integer identifier.
func IntID(n int64) ID {
	return ID{kind: idInt, num: n}
}

// Valid reports whether the ID holds a value. Only the zero ID is invalid.
func (id ID) Valid() bool { return id.kind != idNull }

// IsString reports whether the string variant is active.
func (id ID) IsString() bool { return id.kind == idString }

// IsInt reports whether the integer variant is active.
func (id ID) IsInt() bool { return id.kind == idInt }

// Str returns the string identifier. Panics unless IsString.
func (id ID) Str() jsonval.Str {
	if id.kind != idString {
		panic("baseproto: id is not a string")
	}
	return id.str
}

// Int returns the integer identifier. Panics unless IsInt.
func (id ID) Int() int64 {
	if id.kind != idInt {
		panic("baseproto: id is not an integer")
	}
	return id.num
}

// Equal reports whether two identifiers are the same variant with the same
// contents.
func (id ID) Equal(other ID) bool {
	if id.kind != other.kind {
		return false
	}
	switch id.kind {
	case idString:
		return id.str.Equal(other.str)
	case idInt:
		return id.num == other.num
	default:
		return true
	}
}

// Key returns a stable comparable representation, usable as a map key when
// tracking in-flight requests. String and integer identifiers never
// collide.
func (id ID) Key() string {
	switch id.kind {
	case idString:
		return "s:" + id.str.String()
	case idInt:
		return "i:" + strconv.FormatInt(id.num, 10)
	default:
		return ""
	}
}

// String renders the identifier for logs.
func (id ID) String() string {
	switch id.kind {
	case idString:
		return fmt.Sprintf("%q", id.str.String())
	case idInt:
		return strconv.FormatInt(id.num, 10)
	default:
		return "<invalid>"
	}
}

// Response converts the identifier for use on a response.
func (id ID) Response() ResponseID {
	return ResponseID(id)
}

// value renders the identifier as a JSON value. Integer ids become numbers;
// JSON has no integer kind.
func (id ID) value() jsonval.Value {
	switch id.kind {
	case idString:
		return jsonval.NewString(id.str)
	case idInt:
		return jsonval.NewNumber(float64(id.num))
	default:
		panic("baseproto: dumping invalid id")
	}
}

// ResponseID is a response identifier: a string, an integer, or null. Null
// is only legal on responses to requests that could not be parsed, where no
// id is recoverable. The zero ResponseID is null.
type ResponseID struct {
	kind idKind
	str  jsonval.Str
	num  int64
}

// NullID builds the null response identifier.
func NullID() ResponseID {
	return ResponseID{}
}

// IsNull reports whether the null variant is active.
func (id ResponseID) IsNull() bool { return id.kind == idNull }

// IsString reports whether the string variant is active.
func (id ResponseID) IsString() bool { return id.kind == idString }

// IsInt reports whether the integer variant is active.
func (id ResponseID) IsInt() bool { return id.kind == idInt }

// Str returns the string identifier. Panics unless IsString.
func (id ResponseID) Str() jsonval.Str {
	if id.kind != idString {
		panic("baseproto: response id is not a string")
	}
	return id.str
}

// Int returns the integer identifier. Panics unless IsInt.
func (id ResponseID) Int() int64 {
	if id.kind != idInt {
		panic("baseproto: response id is not an integer")
	}
	return id.num
}

// String renders the identifier for logs.
func (id ResponseID) String() string {
	if id.kind == idNull {
		return "null"
	}
	return ID(id).String()
}

// value renders the identifier as a JSON value.
func (id ResponseID) value() jsonval.Value {
	switch id.kind {
	case idString:
		return jsonval.NewString(id.str)
	case idInt:
		return jsonval.NewNumber(float64(id.num))
	default:
		return jsonval.Null()
	}
}
