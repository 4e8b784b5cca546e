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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/jaktls/services/langserver/jsonval"
)

// TestValidateCancel verifies the cancel params shape: an object with a
// string-or-integer id and no jsonrpc requirement.
func TestValidateCancel(t *testing.T) {
	t.Run("integer id", func(t *testing.T) {
		v := mustParse(t, `{"id":12}`)
		params, err := ValidateCancel(&v)
		require.NoError(t, err)
		assert.Equal(t, int64(12), params.ID.Int())
	})

	t.Run("string id", func(t *testing.T) {
		v := mustParse(t, `{"id":"req-7"}`)
		params, err := ValidateCancel(&v)
		require.NoError(t, err)
		assert.Equal(t, "req-7", params.ID.Str().String())
	})

	rejected := []struct {
		name string
		src  string
	}{
		{"missing id", `{}`},
		{"null id", `{"id":null}`},
		{"fractional id", `{"id":1.25}`},
		{"not an object", `"id"`},
	}
	for _, tc := range rejected {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			v := mustParse(t, tc.src)
			_, err := ValidateCancel(&v)
			assert.ErrorIs(t, err, ErrValidate)
		})
	}

	t.Run("dump round-trips", func(t *testing.T) {
		params := CancelParams{ID: StringID(jsonval.NewStr("r"))}
		var obj jsonval.Object
		params.Dump(&obj)
		assert.False(t, obj.HasKey(jsonval.NewStr("jsonrpc")))

		v := jsonval.NewObject(obj)
		back, err := ValidateCancel(&v)
		require.NoError(t, err)
		assert.True(t, back.ID.Equal(params.ID))
	})
}

// TestIDVariants verifies the identifier union invariants and Key
// stability.
func TestIDVariants(t *testing.T) {
	t.Run("exactly one variant", func(t *testing.T) {
		s := StringID(jsonval.NewStr("a"))
		assert.True(t, s.Valid())
		assert.True(t, s.IsString())
		assert.False(t, s.IsInt())
		require.Panics(t, func() { s.Int() })

		i := IntID(3)
		assert.True(t, i.IsInt())
		require.Panics(t, func() { i.Str() })

		var zero ID
		assert.False(t, zero.Valid())
	})

	t.Run("keys never collide across variants", func(t *testing.T) {
		assert.NotEqual(t, IntID(1).Key(), StringID(jsonval.NewStr("1")).Key())
		assert.Equal(t, IntID(1).Key(), IntID(1).Key())
	})

	t.Run("equality", func(t *testing.T) {
		assert.True(t, IntID(2).Equal(IntID(2)))
		assert.False(t, IntID(2).Equal(IntID(3)))
		assert.False(t, IntID(2).Equal(StringID(jsonval.NewStr("2"))))
		assert.True(t, StringID(jsonval.NewStr("x")).Equal(StringID(jsonval.NewStr("x"))))
	})

	t.Run("response id null variant", func(t *testing.T) {
		n := NullID()
		assert.True(t, n.IsNull())
		require.Panics(t, func() { n.Int() })
		assert.Equal(t, "null", n.String())

		r := IntID(5).Response()
		assert.False(t, r.IsNull())
		assert.Equal(t, int64(5), r.Int())
	})
}
