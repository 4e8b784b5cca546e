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

func mustParse(t *testing.T, src string) jsonval.Value {
	t.Helper()
	v, err := jsonval.ParseSingle(src)
	require.NoError(t, err)
	return v
}

// TestValidateMessage verifies the abstract Message shape: object with
// jsonrpc exactly "2.0".
func TestValidateMessage(t *testing.T) {
	t.Run("accepts 2.0", func(t *testing.T) {
		v := mustParse(t, `{"jsonrpc":"2.0"}`)
		assert.True(t, ValidateMessage(&v))
		// the field was consumed
		assert.Equal(t, 0, v.AsObject().Len())
	})

	rejected := []struct {
		name string
		src  string
	}{
		{"not an object", `["jsonrpc","2.0"]`},
		{"missing jsonrpc", `{"method":"m"}`},
		{"wrong version", `{"jsonrpc":"1.0"}`},
		{"non-string version", `{"jsonrpc":2}`},
	}
	for _, tc := range rejected {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			v := mustParse(t, tc.src)
			assert.False(t, ValidateMessage(&v))
		})
	}

	t.Run("dump writes the marker", func(t *testing.T) {
		var obj jsonval.Object
		DumpMessage(&obj)
		require.Equal(t, 1, obj.Len())
		ver := obj.Expect(jsonval.NewStr("jsonrpc"))
		assert.Equal(t, "2.0", ver.AsString().String())
	})
}

// TestIdentify verifies the request pre-check looks only at key presence,
// independent of field validity.
func TestIdentify(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want bool
	}{
		{"id and method", `{"jsonrpc":"2.0","id":1,"method":"m"}`, true},
		{"invalid values still identify", `{"id":[],"method":7}`, true},
		{"method only", `{"jsonrpc":"2.0","method":"m"}`, false},
		{"id only", `{"jsonrpc":"2.0","id":1}`, false},
		{"not an object", `[1,2]`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := mustParse(t, tc.src)
			assert.Equal(t, tc.want, Identify(&v))
		})
	}
}

// TestValidateRequest verifies id variant selection, required fields, and
// the unknown-field policy.
func TestValidateRequest(t *testing.T) {
	t.Run("integer id", func(t *testing.T) {
		v := mustParse(t, `{"jsonrpc":"2.0","id":1,"method":"m"}`)
		msg, err := ValidateRequest(&v)
		require.NoError(t, err)
		require.True(t, msg.ID.IsInt())
		assert.Equal(t, int64(1), msg.ID.Int())
		assert.Equal(t, "m", msg.Method.String())
		assert.Nil(t, msg.Params)
	})

	t.Run("string id", func(t *testing.T) {
		v := mustParse(t, `{"jsonrpc":"2.0","id":"x","method":"m"}`)
		msg, err := ValidateRequest(&v)
		require.NoError(t, err)
		require.True(t, msg.ID.IsString())
		assert.Equal(t, "x", msg.ID.Str().String())
	})

	t.Run("numeric id within tolerance", func(t *testing.T) {
		v := mustParse(t, `{"jsonrpc":"2.0","id":5.0000000001,"method":"m"}`)
		msg, err := ValidateRequest(&v)
		require.NoError(t, err)
		assert.Equal(t, int64(5), msg.ID.Int())
	})

	t.Run("object params", func(t *testing.T) {
		v := mustParse(t, `{"jsonrpc":"2.0","id":1,"method":"m","params":{"a":1}}`)
		msg, err := ValidateRequest(&v)
		require.NoError(t, err)
		require.NotNil(t, msg.Params)
		assert.True(t, msg.Params.IsObject())
	})

	t.Run("array params", func(t *testing.T) {
		v := mustParse(t, `{"jsonrpc":"2.0","id":1,"method":"m","params":[1,2]}`)
		msg, err := ValidateRequest(&v)
		require.NoError(t, err)
		require.NotNil(t, msg.Params)
		assert.True(t, msg.Params.IsArray())
	})

	t.Run("unknown fields are left behind", func(t *testing.T) {
		v := mustParse(t, `{"jsonrpc":"2.0","id":1,"method":"m","trace":"off"}`)
		_, err := ValidateRequest(&v)
		require.NoError(t, err)
		assert.True(t, v.AsObject().HasKey(jsonval.NewStr("trace")))
		assert.Equal(t, 1, v.AsObject().Len())
	})

	rejected := []struct {
		name string
		src  string
	}{
		{"wrong jsonrpc", `{"jsonrpc":"1.0","id":1,"method":"m"}`},
		{"missing id", `{"jsonrpc":"2.0","method":"m"}`},
		{"fractional id", `{"jsonrpc":"2.0","id":1.5,"method":"m"}`},
		{"boolean id", `{"jsonrpc":"2.0","id":true,"method":"m"}`},
		{"missing method", `{"jsonrpc":"2.0","id":1}`},
		{"non-string method", `{"jsonrpc":"2.0","id":1,"method":2}`},
		{"scalar params", `{"jsonrpc":"2.0","id":1,"method":"m","params":"x"}`},
		{"not an object", `7`},
	}
	for _, tc := range rejected {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			v := mustParse(t, tc.src)
			_, err := ValidateRequest(&v)
			assert.ErrorIs(t, err, ErrValidate)
		})
	}
}

// TestRequestDump verifies the request render includes the jsonrpc marker
// and round-trips through validation.
func TestRequestDump(t *testing.T) {
	params := mustParse(t, `[1,2]`)
	msg := RequestMessage{
		ID:     IntID(9),
		Method: jsonval.NewStr("textDocument/hover"),
		Params: &params,
	}

	var obj jsonval.Object
	msg.Dump(&obj)
	v := jsonval.NewObject(obj)

	back, err := ValidateRequest(&v)
	require.NoError(t, err)
	assert.True(t, back.ID.Equal(msg.ID))
	assert.Equal(t, "textDocument/hover", back.Method.String())
	require.NotNil(t, back.Params)
	assert.Len(t, back.Params.AsArray(), 2)
}

// TestValidateNotification verifies the notification shape has no id
// requirement and shares the params policy with requests.
func TestValidateNotification(t *testing.T) {
	t.Run("minimal", func(t *testing.T) {
		v := mustParse(t, `{"jsonrpc":"2.0","method":"initialized"}`)
		msg, err := ValidateNotification(&v)
		require.NoError(t, err)
		assert.Equal(t, "initialized", msg.Method.String())
		assert.Nil(t, msg.Params)
	})

	t.Run("with params", func(t *testing.T) {
		v := mustParse(t, `{"jsonrpc":"2.0","method":"m","params":{"k":null}}`)
		msg, err := ValidateNotification(&v)
		require.NoError(t, err)
		require.NotNil(t, msg.Params)
	})

	rejected := []struct {
		name string
		src  string
	}{
		{"missing method", `{"jsonrpc":"2.0"}`},
		{"non-string method", `{"jsonrpc":"2.0","method":1}`},
		{"wrong jsonrpc", `{"jsonrpc":"2.1","method":"m"}`},
		{"scalar params", `{"jsonrpc":"2.0","method":"m","params":1}`},
	}
	for _, tc := range rejected {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			v := mustParse(t, tc.src)
			_, err := ValidateNotification(&v)
			assert.ErrorIs(t, err, ErrValidate)
		})
	}

	t.Run("dump round-trips", func(t *testing.T) {
		msg := NotificationMessage{Method: jsonval.NewStr("exit")}
		var obj jsonval.Object
		msg.Dump(&obj)
		v := jsonval.NewObject(obj)
		back, err := ValidateNotification(&v)
		require.NoError(t, err)
		assert.Equal(t, "exit", back.Method.String())
	})
}
