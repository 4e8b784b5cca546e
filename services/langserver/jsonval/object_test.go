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

// TestObjectSet verifies insertion, duplicate rejection, and that a failed
// Set leaves the object unchanged.
func TestObjectSet(t *testing.T) {
	var obj Object

	require.True(t, obj.Set(NewStr("a"), NewNumber(1)))
	require.True(t, obj.Set(NewStr("b"), NewNumber(2)))
	assert.Equal(t, 2, obj.Len())

	// duplicate key: rejected, object untouched
	assert.False(t, obj.Set(NewStr("a"), NewNumber(99)))
	assert.Equal(t, 2, obj.Len())
	assert.Equal(t, 1.0, obj.Expect(NewStr("a")).AsNumber())
}

// TestObjectInsertionOrder verifies entries iterate in insertion order.
func TestObjectInsertionOrder(t *testing.T) {
	var obj Object
	keys := []string{"zulu", "alpha", "mike"}
	for i, k := range keys {
		require.True(t, obj.Set(NewStr(k), NewNumber(float64(i))))
	}

	entries := obj.Entries()
	require.Len(t, entries, 3)
	for i, k := range keys {
		assert.Equal(t, k, entries[i].Key.String())
	}
}

// TestObjectRemove verifies removal detaches the entry and that removing an
// absent key reports absence without touching the object.
func TestObjectRemove(t *testing.T) {
	var obj Object
	require.True(t, obj.Set(NewStr("a"), NewNumber(1)))
	require.True(t, obj.Set(NewStr("b"), NewNumber(2)))

	t.Run("present key", func(t *testing.T) {
		v, ok := obj.Remove(NewStr("a"))
		require.True(t, ok)
		assert.Equal(t, 1.0, v.AsNumber())
		assert.False(t, obj.HasKey(NewStr("a")))
		assert.Equal(t, 1, obj.Len())
	})

	t.Run("absent key", func(t *testing.T) {
		_, ok := obj.Remove(NewStr("missing"))
		assert.False(t, ok)
		assert.Equal(t, 1, obj.Len())
	})

	t.Run("remove expect panics on absent key", func(t *testing.T) {
		v := obj.RemoveExpect(NewStr("b"))
		assert.Equal(t, 2.0, v.AsNumber())
		require.Panics(t, func() { obj.RemoveExpect(NewStr("b")) })
	})
}

// TestObjectExpect verifies Expect returns a mutable reference and panics
// when the key is absent.
func TestObjectExpect(t *testing.T) {
	var obj Object
	require.True(t, obj.Set(NewStr("k"), NewNumber(1)))

	*obj.Expect(NewStr("k")) = NewNumber(7)
	assert.Equal(t, 7.0, obj.Expect(NewStr("k")).AsNumber())

	require.Panics(t, func() { obj.Expect(NewStr("nope")) })
}
