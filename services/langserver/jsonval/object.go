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

import "fmt"

// Entry is a single key/value pair inside an Object.
type Entry struct {
	Key   Str
	Value Value
}

// Object is an insertion-ordered mapping from code-unit string keys to
// values. Keys are unique; iteration order is insertion order and is
// observable in re-serialization.
//
// Lookup is linear. Protocol objects carry a handful of fields, so an
// association list beats a map here and keeps ordering for free.
type Object struct {
	entries []Entry
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.entries)
}

// Entries returns the backing entry slice in insertion order. The slice is
// shared with the object; callers must not grow it.
func (o *Object) Entries() []Entry {
	return o.entries
}

// Set appends a key/value pair. Returns false and leaves the object
// unchanged when the key already exists.
func (o *Object) Set(key Str, value Value) bool {
	if o.HasKey(key) {
		return false
	}
	o.entries = append(o.entries, Entry{Key: key, Value: value})
	return true
}

// HasKey reports whether the key is present.
func (o *Object) HasKey(key Str) bool {
	return o.index(key) >= 0
}

// Expect returns a mutable reference to the value for key. The key must
// exist; a missing key is a programming error and panics.
func (o *Object) Expect(key Str) *Value {
	i := o.index(key)
	if i < 0 {
		panic(fmt.Sprintf("jsonval: object has no key %q", key.String()))
	}
	return &o.entries[i].Value
}

// Remove detaches the entry for key and returns its value. Returns false
// and leaves the object unchanged when the key is absent.
//
// Message validation leans on Remove to consume recognized fields one by
// one, leaving unknown fields behind.
func (o *Object) Remove(key Str) (Value, bool) {
	i := o.index(key)
	if i < 0 {
		return Value{}, false
	}
	v := o.entries[i].Value
	o.entries = append(o.entries[:i], o.entries[i+1:]...)
	return v, true
}

// RemoveExpect detaches and returns the value for key. The key must exist;
// a missing key is a programming error and panics.
func (o *Object) RemoveExpect(key Str) Value {
	v, ok := o.Remove(key)
	if !ok {
		panic(fmt.Sprintf("jsonval: object has no key %q", key.String()))
	}
	return v
}

func (o *Object) index(key Str) int {
	for i := range o.entries {
		if o.entries[i].Key.Equal(key) {
			return i
		}
	}
	return -1
}
