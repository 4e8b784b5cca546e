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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/jaktls/services/langserver/jsonval"
)

// runCheck parses the input and re-renders it in compact form.
func runCheck(cmd *cobra.Command, args []string) error {
	source, err := readInput(args[0])
	if err != nil {
		return err
	}

	value, err := jsonval.Parse(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	slog.Debug("document parsed", "bytes", len(source))
	fmt.Fprintln(cmd.OutOrStdout(), jsonval.Serialize(&value))
	return nil
}
