// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

// Package api provides the HTTP surface of Locus using the Chi router.
//
// The ingest endpoint is the boundary where untyped platform payloads enter
// the system: request bodies are decoded into plain JSON trees and handed
// to the geolocation normalizer, which can always produce a typed sample.
// Only unreadable bodies, invalid JSON, and bad signatures are rejected;
// a degraded or synthetic payload is never an error.
//
// Endpoints:
//
//	POST /api/v1/locations     location ingest (single, batch, or wrapped)
//	GET  /api/v1/health        health summary
//	GET  /api/v1/health/live   liveness probe
//	GET  /api/v1/health/ready  readiness probe
//	GET  /metrics              Prometheus exposition (when enabled)
package api
