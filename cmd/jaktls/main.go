// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command jaktls exercises the Jakt language server wire layer from the
// command line.
//
// Usage:
//
//	# Validate a JSON document (file or stdin)
//	jaktls check message.json
//	echo '{"jsonrpc":"2.0","id":1,"method":"initialize"}' | jaktls check -
//
//	# Classify and validate a protocol message
//	jaktls classify message.json
//
//	# Echo server: answers every request with its own params
//	jaktls echo < requests.ndjson
//
// Telemetry is off by default; pass --telemetry to export traces and
// metrics to stderr.
package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/jaktls/pkg/logging"
	"github.com/AleutianAI/jaktls/services/langserver/telemetry"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

var (
	debugMode       bool
	telemetryMode   bool
	logDir          string
	shutdownTelemetry func(context.Context) error

	rootCmd = &cobra.Command{
		Use:   "jaktls",
		Short: "Jakt language server wire layer tools",
		Long: `jaktls parses, validates, and renders the JSON-RPC base protocol
messages exchanged between an editor and the Jakt language server.`,
		SilenceUsage: true,
	}

	checkCmd = &cobra.Command{
		Use:   "check [file]",
		Short: "Parse a JSON document and report whether it is well formed",
		Long: `Reads a JSON document from the given file (or stdin when the argument
is "-") and parses it with the server's strict parser. On success the
document is re-rendered in compact form on stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}

	classifyCmd = &cobra.Command{
		Use:   "classify [file]",
		Short: "Classify and validate a base protocol message",
		Long: `Reads a JSON-RPC message from the given file (or stdin when the
argument is "-"), reports whether it is a request or a notification, and
validates it against the base protocol shape.`,
		Args: cobra.ExactArgs(1),
		RunE: runClassify,
	}

	echoCmd = &cobra.Command{
		Use:   "echo",
		Short: "Run a line-delimited echo server on stdin/stdout",
		Long: `Reads newline-delimited JSON-RPC messages from stdin and answers each
request with a response whose result echoes the request params.
$/cancelRequest notifications cancel the matching in-flight request.
Useful for exercising editor clients without a compiler backend.`,
		Args: cobra.NoArgs,
		RunE: runEcho,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&telemetryMode, "telemetry", false, "Export traces and metrics to stderr")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Directory for JSON log files (disabled when empty)")

	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentPostRunE = teardown

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(echoCmd)
}

// appLogger backs slog.Default for the lifetime of the process.
var appLogger *logging.Logger

// setup wires logging and optional telemetry before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	level := logging.LevelInfo
	if debugMode {
		level = logging.LevelDebug
	}
	appLogger = logging.New(logging.Config{
		Level:   level,
		LogDir:  logDir,
		Service: "jaktls",
	})
	slog.SetDefault(appLogger.Slog())

	if telemetryMode {
		cfg := telemetry.DefaultConfig()
		cfg.TraceExporter = "stdout"
		cfg.MetricExporter = "stdout"

		shutdown, err := telemetry.Init(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		shutdownTelemetry = shutdown
	}
	return nil
}

// teardown flushes telemetry and the log file.
func teardown(cmd *cobra.Command, args []string) error {
	if shutdownTelemetry != nil {
		if err := shutdownTelemetry(cmd.Context()); err != nil {
			slog.Error("telemetry shutdown failed", "error", err)
		}
	}
	if appLogger != nil {
		return appLogger.Close()
	}
	return nil
}

// readInput returns the contents of the named file, or stdin for "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
