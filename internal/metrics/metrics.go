// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ingest payload forms.
const (
	FormSingle  = "single"
	FormBatch   = "batch"
	FormWrapped = "wrapped"
)

// Ingest rejection reasons.
const (
	RejectBody      = "body"
	RejectJSON      = "json"
	RejectSignature = "signature"
)

var (
	// Ingest metrics
	IngestPayloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locus_ingest_payloads_total",
			Help: "Total accepted ingest requests by payload form",
		},
		[]string{"form"},
	)

	IngestRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locus_ingest_rejected_total",
			Help: "Total rejected ingest requests by reason",
		},
		[]string{"reason"},
	)

	LocationsNormalized = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "locus_locations_normalized_total",
			Help: "Total location payloads normalized into typed samples",
		},
	)

	ErrorAdapterFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "locus_error_adapter_failures_total",
			Help: "Platform error envelopes whose code did not parse as an integer",
		},
	)

	DegradedSamples = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locus_degraded_samples_total",
			Help: "Normalized locations carrying a sentinel instead of a measurement",
		},
		[]string{"field"},
	)

	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locus_http_requests_total",
			Help: "Total HTTP requests served",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "locus_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "locus_http_active_requests",
			Help: "Current number of in-flight HTTP requests",
		},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordIngest records one accepted ingest request and its normalized
// location count.
func RecordIngest(form string, locations int) {
	IngestPayloads.WithLabelValues(form).Inc()
	LocationsNormalized.Add(float64(locations))
}

// RecordDegraded marks a normalized location whose named field resolved to
// a sentinel rather than a measurement.
func RecordDegraded(field string) {
	DegradedSamples.WithLabelValues(field).Inc()
}
