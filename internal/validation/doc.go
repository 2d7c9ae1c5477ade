// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

// Package validation provides struct validation using go-playground/validator
// v10 through a thread-safe singleton instance.
//
// It is used for configuration validation at startup. Payload normalization
// deliberately does NOT use it: degraded location payloads are a first-class
// input and must never be rejected.
//
// Example:
//
//	type ServerConfig struct {
//	    Port int `validate:"min=1,max=65535"`
//	}
//
//	if err := validation.ValidateStruct(&cfg); err != nil {
//	    return fmt.Errorf("invalid configuration: %w", err)
//	}
package validation
