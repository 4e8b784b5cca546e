// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package jsonval

import "errors"

// ErrParse indicates malformed JSON text: a grammar violation, unterminated
// construct, bad escape, or duplicate object key.
//
// The parser intentionally reports no position or reason. Callers treat the
// error as the entire failure signal and map it to a protocol-level
// ParseError response when replying to a client.
var ErrParse = errors.New("malformed json text")
