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
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter for codec operations.
var (
	tracer = otel.Tracer("jaktls.baseproto")
	meter  = otel.Meter("jaktls.baseproto")
)

// Metrics for codec operations.
var (
	decodeTotal metric.Int64Counter
	encodeTotal metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		decodeTotal, err = meter.Int64Counter(
			"baseproto_decode_total",
			metric.WithDescription("Total number of base protocol decode attempts"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		encodeTotal, err = meter.Int64Counter(
			"baseproto_encode_total",
			metric.WithDescription("Total number of base protocol messages encoded"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordDecode counts one decode attempt for a shape.
func recordDecode(ctx context.Context, shape string, err error) {
	if initMetrics() != nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	decodeTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("shape", shape),
		attribute.String("outcome", outcome),
	))
}

// recordEncode counts one encoded message for a shape.
func recordEncode(ctx context.Context, shape string) {
	if initMetrics() != nil {
		return
	}
	encodeTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("shape", shape),
	))
}
