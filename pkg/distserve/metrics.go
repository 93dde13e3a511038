// Copyright (c) 2025 Eli Janssen
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package distserve provides an HTTP server for a pre-built static asset
// directory, adding permissive CORS headers to every response.
package distserve

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace used for Prometheus metrics.
const MetricNamespace = "distserve"
const MetricSubsystem = "files"

var (
	requestsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Subsystem: MetricSubsystem,
			Name:      "requests_total",
			Help:      "The number of requests answered from the build output directory.",
		},
	)
	bytesWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Subsystem: MetricSubsystem,
			Name:      "bytes_written_total",
			Help:      "The number of response body bytes written to clients.",
		},
	)
	responsesNotFound = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: MetricNamespace,
			Subsystem: MetricSubsystem,
			Name:      "responses_not_found_total",
			Help:      "The number of requests that resolved to no file.",
		},
	)
)
