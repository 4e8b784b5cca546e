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

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/codes"

	"github.com/AleutianAI/jaktls/services/langserver/jsonval"
)

// MessageKind classifies an inbound message before full validation.
type MessageKind uint8

const (
	// KindUnknown means the buffer holds no recognizable message.
	KindUnknown MessageKind = iota

	// KindRequest means the message carries both an id and a method.
	KindRequest

	// KindNotification means the message carries a method but no id.
	KindNotification
)

// String returns the lower-case kind name.
func (k MessageKind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindNotification:
		return "notification"
	default:
		return "unknown"
	}
}

// Codec decodes wire text into typed messages and encodes typed messages
// back into wire text, with tracing and metrics around each operation. It
// holds no per-message state.
//
// Thread Safety: safe for concurrent use; every call operates on its own
// buffer and tree.
type Codec struct {
	log *slog.Logger
}

// NewCodec returns a codec logging through the default slog logger.
func NewCodec() *Codec {
	return &Codec{log: slog.Default()}
}

// NewCodecWithLogger returns a codec logging through the given logger.
func NewCodecWithLogger(log *slog.Logger) *Codec {
	return &Codec{log: log}
}

// Classify parses the buffer and reports whether it looks like a request or
// a notification, without validating either shape. The parsed tree is
// returned so the caller can hand it to the matching validator.
func (c *Codec) Classify(ctx context.Context, text string) (MessageKind, jsonval.Value, error) {
	ctx, span := tracer.Start(ctx, "baseproto.Classify")
	defer span.End()

	value, err := jsonval.Parse(ctx, text)
	if err != nil {
		span.SetStatus(codes.Error, "parse failed")
		return KindUnknown, jsonval.Value{}, err
	}

	kind := KindUnknown
	switch {
	case Identify(&value):
		kind = KindRequest
	case value.IsObject() && value.AsObject().HasKey(keyMethod):
		kind = KindNotification
	}
	c.log.DebugContext(ctx, "classified message", slog.String("kind", kind.String()))
	return kind, value, nil
}

// DecodeRequest parses and validates a request from wire text.
func (c *Codec) DecodeRequest(ctx context.Context, text string) (RequestMessage, error) {
	ctx, span := tracer.Start(ctx, "baseproto.DecodeRequest")
	defer span.End()

	value, err := jsonval.Parse(ctx, text)
	if err == nil {
		var message RequestMessage
		if message, err = ValidateRequest(&value); err == nil {
			recordDecode(ctx, "request", nil)
			c.log.DebugContext(ctx, "decoded request",
				slog.String("method", message.Method.String()),
				slog.String("id", message.ID.String()))
			return message, nil
		}
	}
	span.SetStatus(codes.Error, "decode failed")
	recordDecode(ctx, "request", err)
	return RequestMessage{}, err
}

// DecodeNotification parses and validates a notification from wire text.
func (c *Codec) DecodeNotification(ctx context.Context, text string) (NotificationMessage, error) {
	ctx, span := tracer.Start(ctx, "baseproto.DecodeNotification")
	defer span.End()

	value, err := jsonval.Parse(ctx, text)
	if err == nil {
		var message NotificationMessage
		if message, err = ValidateNotification(&value); err == nil {
			recordDecode(ctx, "notification", nil)
			c.log.DebugContext(ctx, "decoded notification",
				slog.String("method", message.Method.String()))
			return message, nil
		}
	}
	span.SetStatus(codes.Error, "decode failed")
	recordDecode(ctx, "notification", err)
	return NotificationMessage{}, err
}

// DecodeCancel parses and validates a cancellation params payload from wire
// text.
func (c *Codec) DecodeCancel(ctx context.Context, text string) (CancelParams, error) {
	ctx, span := tracer.Start(ctx, "baseproto.DecodeCancel")
	defer span.End()

	value, err := jsonval.Parse(ctx, text)
	if err == nil {
		var params CancelParams
		if params, err = ValidateCancel(&value); err == nil {
			recordDecode(ctx, "cancel", nil)
			return params, nil
		}
	}
	span.SetStatus(codes.Error, "decode failed")
	recordDecode(ctx, "cancel", err)
	return CancelParams{}, err
}

// DecodeResponse parses and validates a response from wire text.
func (c *Codec) DecodeResponse(ctx context.Context, text string) (ResponseMessage, error) {
	ctx, span := tracer.Start(ctx, "baseproto.DecodeResponse")
	defer span.End()

	value, err := jsonval.Parse(ctx, text)
	if err == nil {
		var message ResponseMessage
		if message, err = ValidateResponse(&value); err == nil {
			recordDecode(ctx, "response", nil)
			return message, nil
		}
	}
	span.SetStatus(codes.Error, "decode failed")
	recordDecode(ctx, "response", err)
	return ResponseMessage{}, err
}

// EncodeResponse renders a response as compact wire text.
func (c *Codec) EncodeResponse(ctx context.Context, message ResponseMessage) string {
	ctx, span := tracer.Start(ctx, "baseproto.EncodeResponse")
	defer span.End()

	var obj jsonval.Object
	message.Dump(&obj)
	value := jsonval.NewObject(obj)
	recordEncode(ctx, "response")
	return jsonval.Serialize(&value)
}

// EncodeRequest renders a request as compact wire text.
func (c *Codec) EncodeRequest(ctx context.Context, message RequestMessage) string {
	ctx, span := tracer.Start(ctx, "baseproto.EncodeRequest")
	defer span.End()

	var obj jsonval.Object
	message.Dump(&obj)
	value := jsonval.NewObject(obj)
	recordEncode(ctx, "request")
	return jsonval.Serialize(&value)
}

// EncodeNotification renders a notification as compact wire text.
func (c *Codec) EncodeNotification(ctx context.Context, message NotificationMessage) string {
	ctx, span := tracer.Start(ctx, "baseproto.EncodeNotification")
	defer span.End()

	var obj jsonval.Object
	message.Dump(&obj)
	value := jsonval.NewObject(obj)
	recordEncode(ctx, "notification")
	return jsonval.Serialize(&value)
}
