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

import "github.com/AleutianAI/jaktls/services/langserver/jsonval"

// JSONRPCVersion is the protocol version every message carries.
const JSONRPCVersion = "2.0"

// intConversionTolerance bounds how far a numeric id may sit from a whole
// number and still count as an integer.
const intConversionTolerance = 1e-9

// Wire field names, encoded once. The objects built around these keys are
// write-once, so sharing the backing slices is safe.
var (
	keyJSONRPC = jsonval.NewStr("jsonrpc")
	keyID      = jsonval.NewStr("id")
	keyMethod  = jsonval.NewStr("method")
	keyParams  = jsonval.NewStr("params")
	keyResult  = jsonval.NewStr("result")
	keyError   = jsonval.NewStr("error")
	keyCode    = jsonval.NewStr("code")
	keyMessage = jsonval.NewStr("message")
	keyData    = jsonval.NewStr("data")

	versionStr = jsonval.NewStr(JSONRPCVersion)
)

// ValidateMessage checks the abstract Message shape: the value must be an
// object whose jsonrpc field is exactly the string "2.0". The jsonrpc field
// is consumed.
//
// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#abstractMessage
func ValidateMessage(v *jsonval.Value) bool {
	if !v.IsObject() {
		return false
	}
	version, ok := v.AsObject().Remove(keyJSONRPC)
	return ok && version.IsString() && version.AsString().Equal(versionStr)
}

// DumpMessage writes the mandatory jsonrpc field into target.
func DumpMessage(target *jsonval.Object) {
	target.Set(keyJSONRPC, jsonval.NewString(versionStr))
}

// validateParams consumes an optional params field: absent is fine, present
// must be an array or object.
func validateParams(obj *jsonval.Object) (*jsonval.Value, error) {
	params, ok := obj.Remove(keyParams)
	if !ok {
		return nil, nil
	}
	if !params.IsArray() && !params.IsObject() {
		return nil, ErrValidate
	}
	return &params, nil
}

// validateID consumes a mandatory string-or-integer id field.
func validateID(obj *jsonval.Object) (ID, error) {
	raw, ok := obj.Remove(keyID)
	if !ok {
		return ID{}, ErrValidate
	}
	if raw.IsString() {
		return StringID(raw.AsString()), nil
	}
	if n, ok := raw.TryInteger(intConversionTolerance); ok {
		return IntID(n), nil
	}
	return ID{}, ErrValidate
}
