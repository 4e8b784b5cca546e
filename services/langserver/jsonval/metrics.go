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

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

// Package-level tracer and meter for parse operations.
var (
	tracer = otel.Tracer("jaktls.jsonval")
	meter  = otel.Meter("jaktls.jsonval")
)

// Metrics for parse operations.
var (
	parseTotal    metric.Int64Counter
	parseDuration metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		parseTotal, err = meter.Int64Counter(
			"jsonval_parse_total",
			metric.WithDescription("Total number of JSON parse attempts"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		parseDuration, err = meter.Float64Histogram(
			"jsonval_parse_duration_seconds",
			metric.WithDescription("Duration of JSON parse attempts"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// Parse is the instrumented front door to ParseSingle. The codec layer goes
// through here so every inbound buffer shows up in traces and metrics;
// ParseSingle itself stays pure for callers that want no instrumentation.
func Parse(ctx context.Context, source string) (Value, error) {
	ctx, span := tracer.Start(ctx, "jsonval.Parse")
	defer span.End()

	start := time.Now()
	value, err := ParseSingle(source)

	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.SetStatus(codes.Error, "parse failed")
	}
	if initMetrics() == nil {
		attrs := metric.WithAttributes(attribute.String("outcome", outcome))
		parseTotal.Add(ctx, 1, attrs)
		parseDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	}

	return value, err
}
