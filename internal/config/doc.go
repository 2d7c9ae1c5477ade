// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

// Package config provides layered configuration for Locus using Koanf v2.
//
// Sources are applied in order, highest priority last:
//
//  1. Built-in defaults
//  2. YAML config file (config.yaml, or CONFIG_PATH override)
//  3. Environment variables (LOCUS_SERVER_PORT, LOCUS_LOG_LEVEL, ...)
//
// The loaded Config is validated before use; a service that starts with a
// bad configuration fails fast rather than limping.
package config
