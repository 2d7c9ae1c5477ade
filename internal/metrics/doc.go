// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

// Package metrics provides Prometheus instrumentation for Locus.
//
// Metrics are exposed at /metrics in Prometheus text format.
//
// Ingest metrics:
//   - locus_ingest_payloads_total: Accepted ingest requests (counter)
//     Labels: form (single, batch, wrapped)
//   - locus_ingest_rejected_total: Rejected ingest requests (counter)
//     Labels: reason (body, json, signature)
//   - locus_locations_normalized_total: Locations normalized (counter)
//   - locus_degraded_samples_total: Normalized locations carrying sentinel
//     values instead of measurements (counter)
//     Labels: field (coords, battery, activity, timestamp)
//   - locus_error_adapter_failures_total: Platform error envelopes whose
//     code did not parse as an integer (counter)
//
// HTTP metrics:
//   - locus_http_requests_total: Requests served (counter)
//     Labels: method, endpoint, status_code
//   - locus_http_request_duration_seconds: Request latency (histogram)
//     Labels: method, endpoint
//   - locus_http_active_requests: In-flight requests (gauge)
//
// The degraded-sample counters exist to answer "how much of my fleet is
// sending synthetic payloads" without storing the payloads themselves.
package metrics
