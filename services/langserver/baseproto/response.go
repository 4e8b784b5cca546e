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

// ResponseError describes why a request failed.
type ResponseError struct {
	// Code is one of the closed error-code enumeration's values.
	Code ErrorCode

	// Message is a short human-readable description of the error.
	Message jsonval.Str

	// Data optionally carries structured information about the error, of
	// any JSON kind. Nil when absent.
	Data *jsonval.Value
}

// Dump writes the error's fields into target. The code becomes a JSON
// number; JSON has no integer kind.
func (e ResponseError) Dump(target *jsonval.Object) {
	target.Set(keyCode, jsonval.NewNumber(float64(e.Code)))
	target.Set(keyMessage, jsonval.NewString(e.Message))
	if e.Data != nil {
		target.Set(keyData, *e.Data)
	}
}

// validateResponseError converts a parsed value into a ResponseError. The
// code must be an integer from the closed enumeration.
func validateResponseError(v *jsonval.Value) (ResponseError, error) {
	if !v.IsObject() {
		return ResponseError{}, ErrValidate
	}
	obj := v.AsObject()

	var respErr ResponseError

	// ResponseError.code : integer, member of the enumeration
	code, ok := obj.Remove(keyCode)
	if !ok {
		return ResponseError{}, ErrValidate
	}
	n, ok := code.TryInteger(intConversionTolerance)
	if !ok || !ErrorCode(n).Defined() {
		return ResponseError{}, ErrValidate
	}
	respErr.Code = ErrorCode(n)

	// ResponseError.message : string
	message, ok := obj.Remove(keyMessage)
	if !ok || !message.IsString() {
		return ResponseError{}, ErrValidate
	}
	respErr.Message = message.AsString()

	// ResponseError.data : any?
	if data, ok := obj.Remove(keyData); ok {
		respErr.Data = &data
	}

	return respErr, nil
}

// ResponseMessage answers a request. Exactly one of Result or Error is
// populated, never both and never neither; the OK and Err constructors
// maintain that invariant.
//
// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#responseMessage
type ResponseMessage struct {
	// ID matches the request being answered. Null only when the request
	// was unparsable and no id could be recovered.
	ID ResponseID

	// Result carries the request's result. Required on success; must not
	// be present on failure.
	Result *jsonval.Value

	// Error describes the failure. Must not be present on success.
	Error *ResponseError
}

// OK builds a success response.
func OK(id ResponseID, result jsonval.Value) ResponseMessage {
	return ResponseMessage{ID: id, Result: &result}
}

// Err builds a failure response.
func Err(id ResponseID, respErr ResponseError) ResponseMessage {
	return ResponseMessage{ID: id, Error: &respErr}
}

// Dump writes the response's fields into target, including the jsonrpc
// marker. A success response never emits an error key; a failure response
// never emits a result key.
func (m ResponseMessage) Dump(target *jsonval.Object) {
	DumpMessage(target)
	target.Set(keyID, m.ID.value())

	if m.Result != nil {
		target.Set(keyResult, *m.Result)
		return
	}
	var errObj jsonval.Object
	m.Error.Dump(&errObj)
	target.Set(keyError, jsonval.NewObject(errObj))
}

// ValidateResponse converts a parsed value into a ResponseMessage,
// consuming the fields it recognizes. Exactly one of result and error must
// be present. A present-but-null result counts as a result.
func ValidateResponse(v *jsonval.Value) (ResponseMessage, error) {
	if !ValidateMessage(v) {
		return ResponseMessage{}, ErrValidate
	}
	obj := v.AsObject()

	var message ResponseMessage

	// ResponseMessage.id : string | integer | null
	raw, ok := obj.Remove(keyID)
	if !ok {
		return ResponseMessage{}, ErrValidate
	}
	switch {
	case raw.IsNull():
		message.ID = NullID()
	case raw.IsString():
		message.ID = StringID(raw.AsString()).Response()
	default:
		n, ok := raw.TryInteger(intConversionTolerance)
		if !ok {
			return ResponseMessage{}, ErrValidate
		}
		message.ID = IntID(n).Response()
	}

	// exactly one of result | error
	result, hasResult := obj.Remove(keyResult)
	rawErr, hasError := obj.Remove(keyError)
	if hasResult == hasError {
		return ResponseMessage{}, ErrValidate
	}
	if hasResult {
		message.Result = &result
		return message, nil
	}

	respErr, err := validateResponseError(&rawErr)
	if err != nil {
		return ResponseMessage{}, err
	}
	message.Error = &respErr
	return message, nil
}
