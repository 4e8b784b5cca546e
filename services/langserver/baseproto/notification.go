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

// NotificationMessage is a fire-and-forget message: like a request but with
// no id, so it must not be answered.
//
// Methods starting with "$/" are protocol-implementation dependent; a
// receiver is free to ignore such notifications.
//
// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#notificationMessage
type NotificationMessage struct {
	// Method is the method to be invoked.
	Method jsonval.Str

	// Params holds the notification's parameters: an array or object, or
	// nil when absent.
	Params *jsonval.Value
}

// ValidateNotification converts a parsed value into a NotificationMessage,
// consuming the fields it recognizes. Unknown fields (including a stray id)
// are left behind and ignored; run Identify first when the distinction
// matters.
func ValidateNotification(v *jsonval.Value) (NotificationMessage, error) {
	if !ValidateMessage(v) {
		return NotificationMessage{}, ErrValidate
	}
	obj := v.AsObject()

	var message NotificationMessage
	var err error

	// NotificationMessage.method : string
	method, ok := obj.Remove(keyMethod)
	if !ok || !method.IsString() {
		return NotificationMessage{}, ErrValidate
	}
	message.Method = method.AsString()

	// NotificationMessage.params : (array | object)?
	if message.Params, err = validateParams(obj); err != nil {
		return NotificationMessage{}, err
	}

	return message, nil
}

// Dump writes the notification's fields into target, including the jsonrpc
// marker.
func (m NotificationMessage) Dump(target *jsonval.Object) {
	DumpMessage(target)
	target.Set(keyMethod, jsonval.NewString(m.Method))
	if m.Params != nil {
		target.Set(keyParams, *m.Params)
	}
}
