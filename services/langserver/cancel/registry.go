// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package cancel

import (
	"context"
	"log/slog"
	"sync"

	"github.com/AleutianAI/jaktls/services/langserver/baseproto"
)

// Registry tracks the cancellation function of every in-flight request,
// keyed by the request id.
//
// Thread Safety: Safe for concurrent use.
type Registry struct {
	logger *slog.Logger

	mu      sync.Mutex
	pending map[string]context.CancelFunc
	closed  bool
}

// NewRegistry creates an empty registry.
//
// Inputs:
//   - logger: Logger for cancellation events. If nil, uses slog.Default().
//
// Outputs:
//   - *Registry: The created registry. Never nil.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		logger:  logger.With(slog.String("component", "cancel_registry")),
		pending: make(map[string]context.CancelFunc),
	}
}

// Register derives a cancellable context for the request with the given id.
//
// Description:
//
//	The returned done function releases the id; the handler must call it
//	exactly once when the request finishes, whether or not it was
//	cancelled. Until then a matching Cancel call aborts the derived
//	context.
//
// Inputs:
//   - parent: Parent context for the request. Must not be nil.
//   - id: The request id. Must hold a value (Valid).
//
// Outputs:
//   - context.Context: Context cancelled when the request is cancelled.
//   - func(): Release function. Never nil on success.
//   - error: ErrDuplicateID if the id is already pending,
//     ErrRegistryClosed after Close.
//
// Thread Safety: Safe for concurrent use.
func (r *Registry) Register(parent context.Context, id baseproto.ID) (context.Context, func(), error) {
	key := id.Key()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, nil, ErrRegistryClosed
	}
	if _, exists := r.pending[key]; exists {
		r.mu.Unlock()
		return nil, nil, ErrDuplicateID
	}

	ctx, cancelFunc := context.WithCancel(parent)
	r.pending[key] = cancelFunc
	r.mu.Unlock()

	recordRegister(parent)

	var once sync.Once
	done := func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.pending, key)
			r.mu.Unlock()
			cancelFunc()
		})
	}
	return ctx, done, nil
}

// Cancel aborts the pending request with the given id.
//
// Outputs:
//   - bool: True if a pending request was cancelled, false if the id was
//     unknown. An unknown id usually means the response already went out.
//
// Thread Safety: Safe for concurrent use.
func (r *Registry) Cancel(id baseproto.ID) bool {
	key := id.Key()

	r.mu.Lock()
	cancelFunc, ok := r.pending[key]
	if ok {
		delete(r.pending, key)
	}
	r.mu.Unlock()

	if !ok {
		r.logger.Debug("cancel for unknown request id", slog.String("id", id.String()))
		recordCancel(context.Background(), "miss")
		return false
	}

	r.logger.Info("cancelling request", slog.String("id", id.String()))
	cancelFunc()
	recordCancel(context.Background(), "hit")
	return true
}

// Apply handles a decoded $/cancelRequest payload.
func (r *Registry) Apply(params baseproto.CancelParams) bool {
	return r.Cancel(params.ID)
}

// Pending returns the number of requests currently registered.
func (r *Registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Close cancels every pending request and rejects further registrations.
//
// Thread Safety: Safe for concurrent use. Idempotent.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	remaining := r.pending
	r.pending = make(map[string]context.CancelFunc)
	r.mu.Unlock()

	if len(remaining) > 0 {
		r.logger.Warn("closing registry with pending requests",
			slog.Int("pending", len(remaining)))
	}
	for _, cancelFunc := range remaining {
		cancelFunc()
	}
}
