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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/jaktls/services/langserver/baseproto"
)

// runClassify reports the message kind and validates the matching shape.
func runClassify(cmd *cobra.Command, args []string) error {
	source, err := readInput(args[0])
	if err != nil {
		return err
	}

	codec := baseproto.NewCodec()
	kind, value, err := codec.Classify(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	switch kind {
	case baseproto.KindRequest:
		msg, err := baseproto.ValidateRequest(&value)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprintf(out, "request id=%s method=%s\n", msg.ID.String(), msg.Method.String())

	case baseproto.KindNotification:
		msg, err := baseproto.ValidateNotification(&value)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Fprintf(out, "notification method=%s\n", msg.Method.String())

	default:
		return fmt.Errorf("%s: %w", args[0], baseproto.ErrValidate)
	}
	return nil
}
