// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package cancel tracks in-flight requests so that $/cancelRequest
// notifications can abort them.
//
// # Overview
//
// A language server handler registers each request id before starting work
// and releases it when the response is written. When a cancel notification
// arrives, the registry looks up the id and fires the context.CancelFunc
// associated with it. Handlers observe cancellation through the usual
// ctx.Done() channel and should answer such requests with the
// RequestCancelled error code.
//
// # Lifecycle
//
//	reqCtx, done, err := registry.Register(ctx, msg.ID)
//	if err != nil {
//	    // duplicate id from a misbehaving client
//	}
//	defer done()
//
//	// ... handle the request with reqCtx ...
//
//	// elsewhere, on $/cancelRequest:
//	registry.Apply(params)
//
// Cancelling an id that is not pending is not an error; the protocol allows
// a cancel notification to race with the response.
//
// # Thread Safety
//
// The Registry is safe for concurrent use.
package cancel
