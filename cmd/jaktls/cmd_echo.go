// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/jaktls/services/langserver/baseproto"
	"github.com/AleutianAI/jaktls/services/langserver/cancel"
	"github.com/AleutianAI/jaktls/services/langserver/jsonval"
)

// runEcho answers each request on stdin with its own params as the result.
//
// Each input line is one message. Malformed lines get a ParseError
// response with a null id; shape violations get InvalidRequest.
// $/cancelRequest notifications are applied to the in-flight registry so
// editor clients can be tested end to end.
func runEcho(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	codec := baseproto.NewCodec()
	registry := cancel.NewRegistry(slog.Default())
	defer registry.Close()

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		kind, value, err := codec.Classify(ctx, line)
		if err != nil {
			reply := baseproto.Err(baseproto.NullID(), baseproto.ResponseError{
				Code:    baseproto.ParseError,
				Message: jsonval.NewStr("malformed json"),
			})
			fmt.Fprintln(out, codec.EncodeResponse(ctx, reply))
			continue
		}

		switch kind {
		case baseproto.KindRequest:
			msg, err := baseproto.ValidateRequest(&value)
			if err != nil {
				reply := baseproto.Err(baseproto.NullID(), baseproto.ResponseError{
					Code:    baseproto.InvalidRequest,
					Message: jsonval.NewStr("message does not match the request shape"),
				})
				fmt.Fprintln(out, codec.EncodeResponse(ctx, reply))
				continue
			}
			fmt.Fprintln(out, codec.EncodeResponse(ctx, echoReply(ctx, registry, msg)))

		case baseproto.KindNotification:
			msg, err := baseproto.ValidateNotification(&value)
			if err != nil {
				slog.Warn("dropping malformed notification")
				continue
			}
			handleNotification(registry, msg)

		default:
			slog.Warn("dropping unclassifiable message")
		}
	}
	return scanner.Err()
}

// echoReply builds the response for one request.
func echoReply(ctx context.Context, registry *cancel.Registry, msg baseproto.RequestMessage) baseproto.ResponseMessage {
	_, done, err := registry.Register(ctx, msg.ID)
	if err != nil {
		return baseproto.Err(msg.ID.Response(), baseproto.ResponseError{
			Code:    baseproto.InvalidRequest,
			Message: jsonval.NewStr("duplicate request id"),
		})
	}
	defer done()

	result := jsonval.Null()
	if msg.Params != nil {
		result = *msg.Params
	}
	return baseproto.OK(msg.ID.Response(), result)
}

// handleNotification dispatches the notifications the echo server knows.
func handleNotification(registry *cancel.Registry, msg baseproto.NotificationMessage) {
	if msg.Method.String() != baseproto.CancelMethod {
		slog.Debug("ignoring notification", "method", msg.Method.String())
		return
	}
	if msg.Params == nil {
		slog.Warn("cancel notification without params")
		return
	}
	params, err := baseproto.ValidateCancel(msg.Params)
	if err != nil {
		slog.Warn("cancel notification with bad params")
		return
	}
	registry.Apply(params)
}
