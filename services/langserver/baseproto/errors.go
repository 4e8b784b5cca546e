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

import "errors"

// ErrValidate indicates well-formed JSON that does not match the required
// message shape: a missing or mis-typed field, a jsonrpc version other than
// "2.0", or an id that is neither a string nor within integer tolerance.
//
// Like jsonval.ErrParse, it carries no diagnostics. Callers map it to an
// InvalidRequest or InvalidParams response when replying to a client.
var ErrValidate = errors.New("message does not match base protocol shape")
