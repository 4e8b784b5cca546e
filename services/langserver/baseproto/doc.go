// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package baseproto implements the JSON-RPC base protocol messages shared by
// JSON-RPC 2.0 and the Language Server Protocol: request, response,
// notification, cancel params, and the reserved error-code ranges.
//
// https://microsoft.github.io/language-server-protocol/specifications/lsp/3.17/specification/#baseProtocol
//
// Every message shape has two pure operations:
//
//   - validate: fallible jsonval.Value -> typed message. Validation drains
//     the fields it recognizes out of the object via Remove and checks each
//     one; unknown fields are left behind and ignored. Failure is the bare
//     ErrValidate sentinel with no diagnostics.
//   - dump: total typed message -> fields written into a caller-owned
//     jsonval.Object, including the mandatory jsonrpc "2.0" marker for
//     Message-derived shapes.
//
// RequestMessage additionally has Identify, a cheap pre-check (object with
// both "id" and "method" keys) for telling requests apart from
// notifications before committing to full validation.
//
// Codec wraps the shape functions with parsing, serialization, tracing, and
// metrics for callers working directly against wire text. The shape
// functions themselves take no context and touch no global state, so the
// task layer can run one message per goroutine without coordination.
package baseproto
