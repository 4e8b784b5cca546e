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

import "strconv"

// ErrorCode is a JSON-RPC / LSP error code. The set is closed: the integer
// values are fixed by the published specifications and the enumeration is
// data, not behavior.
type ErrorCode int64

const (
	// ParseError indicates the server received invalid JSON.
	ParseError ErrorCode = -32700

	// InvalidRequest indicates the JSON sent is not a valid request object.
	InvalidRequest ErrorCode = -32600

	// MethodNotFound indicates the method does not exist or is unavailable.
	MethodNotFound ErrorCode = -32601

	// InvalidParams indicates invalid method parameters.
	InvalidParams ErrorCode = -32602

	// InternalError indicates an internal JSON-RPC error.
	InternalError ErrorCode = -32603

	// JSONRPCReservedErrorRangeStart is the start of the range reserved
	// for implementation-defined JSON-RPC server errors.
	JSONRPCReservedErrorRangeStart ErrorCode = -32099

	// ServerNotInitialized indicates the server received a notification or
	// request before it has received the initialize request.
	ServerNotInitialized ErrorCode = -32002

	// UnknownErrorCode is used when the server produced an error code the
	// client does not know.
	UnknownErrorCode ErrorCode = -32001

	// JSONRPCReservedErrorRangeEnd is the end of the reserved JSON-RPC
	// server error range.
	JSONRPCReservedErrorRangeEnd ErrorCode = -32000

	// LSPReservedErrorRangeStart is the start of the range reserved for
	// LSP-specific error codes.
	LSPReservedErrorRangeStart ErrorCode = -32899

	// RequestFailed indicates a request failed even though it was
	// syntactically correct: the method was known and the parameters were
	// valid. The error message should carry human-readable detail.
	RequestFailed ErrorCode = -32803

	// ServerCancelled indicates the server cancelled the request. Only for
	// requests that explicitly support server cancellation.
	ServerCancelled ErrorCode = -32802

	// ContentModified indicates the server detected that the content of a
	// document was modified outside normal conditions. A result computed
	// on an older state may still be useful to the client.
	ContentModified ErrorCode = -32801

	// RequestCancelled indicates the client cancelled a request and the
	// server detected the cancellation.
	RequestCancelled ErrorCode = -32800

	// LSPReservedErrorRangeEnd is the end of the reserved LSP error range.
	LSPReservedErrorRangeEnd ErrorCode = -32800
)

// Defined reports whether the code is one of the enumeration's values.
// Range bounds count as members; arbitrary integers do not. Note that
// LSPReservedErrorRangeEnd shares its value with RequestCancelled.
func (c ErrorCode) Defined() bool {
	switch c {
	case ParseError, InvalidRequest, MethodNotFound, InvalidParams,
		InternalError, JSONRPCReservedErrorRangeStart, ServerNotInitialized,
		UnknownErrorCode, JSONRPCReservedErrorRangeEnd,
		LSPReservedErrorRangeStart, RequestFailed, ServerCancelled,
		ContentModified, RequestCancelled:
		return true
	default:
		return false
	}
}

// String returns the code's name, or its integer value for codes outside
// the enumeration.
func (c ErrorCode) String() string {
	switch c {
	case ParseError:
		return "ParseError"
	case InvalidRequest:
		return "InvalidRequest"
	case MethodNotFound:
		return "MethodNotFound"
	case InvalidParams:
		return "InvalidParams"
	case InternalError:
		return "InternalError"
	case JSONRPCReservedErrorRangeStart:
		return "JSONRPCReservedErrorRangeStart"
	case ServerNotInitialized:
		return "ServerNotInitialized"
	case UnknownErrorCode:
		return "UnknownErrorCode"
	case JSONRPCReservedErrorRangeEnd:
		return "JSONRPCReservedErrorRangeEnd"
	case LSPReservedErrorRangeStart:
		return "LSPReservedErrorRangeStart"
	case RequestFailed:
		return "RequestFailed"
	case ServerCancelled:
		return "ServerCancelled"
	case ContentModified:
		return "ContentModified"
	case RequestCancelled:
		return "RequestCancelled"
	default:
		return strconv.FormatInt(int64(c), 10)
	}
}
