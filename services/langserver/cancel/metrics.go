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
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Package-level meter for registry operations.
var meter = otel.Meter("jaktls.cancel")

// Metrics for registry operations.
var (
	registerTotal metric.Int64Counter
	cancelTotal   metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		registerTotal, err = meter.Int64Counter(
			"cancel_register_total",
			metric.WithDescription("Total number of request ids registered"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		cancelTotal, err = meter.Int64Counter(
			"cancel_total",
			metric.WithDescription("Total number of cancel attempts by outcome"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordRegister counts one registration.
func recordRegister(ctx context.Context) {
	if initMetrics() != nil {
		return
	}
	registerTotal.Add(ctx, 1)
}

// recordCancel counts one cancel attempt. Outcome is "hit" when a pending
// request was found, "miss" otherwise.
func recordCancel(ctx context.Context, outcome string) {
	if initMetrics() != nil {
		return
	}
	cancelTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}
