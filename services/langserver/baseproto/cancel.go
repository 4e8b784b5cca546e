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

// CancelMethod is the notification method that carries CancelParams.
const CancelMethod = "$/cancelRequest"

// CancelParams names the request being cancelled. It is the params payload
// of a $/cancelRequest notification, not a message of its own, so it has no
// jsonrpc field.
//
// A cancelled request must still be answered; the response should use the
// RequestCancelled error code. Cancellation itself happens in the task
// layer, which consumes this shape.
//
// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#cancelRequest
type CancelParams struct {
	// ID is the identifier of the request to cancel.
	ID ID
}

// ValidateCancel converts a parsed params value into CancelParams,
// consuming the id field. Unknown fields are left behind and ignored.
func ValidateCancel(v *jsonval.Value) (CancelParams, error) {
	if !v.IsObject() {
		return CancelParams{}, ErrValidate
	}

	var params CancelParams
	var err error

	// CancelParams.id : string | integer
	if params.ID, err = validateID(v.AsObject()); err != nil {
		return CancelParams{}, err
	}

	return params, nil
}

// Dump writes the params' fields into target. No jsonrpc marker: this is a
// params payload.
func (p CancelParams) Dump(target *jsonval.Object) {
	target.Set(keyID, p.ID.value())
}
