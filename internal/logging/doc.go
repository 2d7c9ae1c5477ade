// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

// Package logging provides centralized zerolog-based logging for Locus.
//
// It exposes a process-global structured logger with:
//
//   - JSON output for production, console output for development
//   - Context-aware logging with correlation and request ID propagation
//   - Level-based filtering configured at startup
//
// # Quick Start
//
//	import "github.com/tomtom215/locus/internal/logging"
//
//	// Initialize at application startup
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.Error().Err(err).Msg("Ingest failed")
//
//	// With context (correlation ID)
//	logging.Ctx(ctx).Info().Str("location", loc.String()).Msg("Normalized")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated chain
// is silently dropped.
package logging
