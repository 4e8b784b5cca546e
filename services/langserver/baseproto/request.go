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

// RequestMessage is a request from the client to the server or vice versa.
// Every request carries an id; the receiver must answer with a response
// bearing the same id.
//
// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#requestMessage
type RequestMessage struct {
	// ID is the request identifier. Always populated on a validated
	// request.
	ID ID

	// Method is the method to be invoked.
	Method jsonval.Str

	// Params holds the method's parameters: an array or object, or nil
	// when absent.
	Params *jsonval.Value
}

// Identify reports whether the value looks like a request: an object
// carrying both an id and a method key. It does not look at the values, so
// it stays cheap and is independent of their validity. Requests and
// notifications are structurally similar; the id is what tells them apart.
func Identify(v *jsonval.Value) bool {
	if !v.IsObject() {
		return false
	}
	obj := v.AsObject()
	return obj.HasKey(keyID) && obj.HasKey(keyMethod)
}

// ValidateRequest converts a parsed value into a RequestMessage, consuming
// the fields it recognizes. Unknown fields are left behind and ignored.
func ValidateRequest(v *jsonval.Value) (RequestMessage, error) {
	if !ValidateMessage(v) {
		return RequestMessage{}, ErrValidate
	}
	obj := v.AsObject()

	var message RequestMessage
	var err error

	// RequestMessage.id : string | integer
	if message.ID, err = validateID(obj); err != nil {
		return RequestMessage{}, err
	}

	// RequestMessage.method : string
	method, ok := obj.Remove(keyMethod)
	if !ok || !method.IsString() {
		return RequestMessage{}, ErrValidate
	}
	message.Method = method.AsString()

	// RequestMessage.params : (array | object)?
	if message.Params, err = validateParams(obj); err != nil {
		return RequestMessage{}, err
	}

	return message, nil
}

// Dump writes the request's fields into target, including the jsonrpc
// marker.
func (m RequestMessage) Dump(target *jsonval.Object) {
	DumpMessage(target)
	target.Set(keyID, m.ID.value())
	target.Set(keyMethod, jsonval.NewString(m.Method))
	if m.Params != nil {
		target.Set(keyParams, *m.Params)
	}
}
