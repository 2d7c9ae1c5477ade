// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

// Package geolocation converts loosely-typed, platform-originated location
// payloads into strongly-typed, immutable value objects.
//
// Mobile location SDKs emit nested JSON whose fields may be native values,
// string-encoded values, null, or absent entirely. Payloads may also be
// synthetic: when location services are disabled or permission is denied the
// platform still emits a location-shaped structure populated with defaults
// instead of measurements. This package treats those degraded payloads as
// first-class input, never as errors.
//
// # Construction Is Total
//
// Every builder (NewLocation, NewCoords, NewBattery, NewActivity,
// NewGeofenceEvent) accepts an opaque value, typically a map[string]any
// produced by a JSON decoder, and always returns a fully-populated object.
// Missing, null, or mistyped fields resolve to documented sentinel values:
//
//	latitude/longitude/accuracy/altitude  0.0
//	ellipsoidal_altitude                  resolved altitude
//	heading/speed/*_accuracy              MeasurementUnavailable (-1.0)
//	floor                                 nil (not applicable)
//	battery level                         BatteryLevelUnknown (-1.0)
//	activity type                         ActivityTypeUnknown ("unknown")
//
// The one exception is NewLocationError: a platform error code that does not
// parse as an integer is a contract violation between Locus and the platform
// layer, and that failure is surfaced rather than defaulted.
//
// # Coercion Boundary
//
// All type tolerance lives in the small set of total coercion functions
// (ToMap, ToNumber, ToFloat, ToOptionalInt, ToBool). Untyped values never
// propagate past a builder; consumers only ever see the typed objects.
//
// # Concurrency
//
// Builders are pure and touch no shared state. Any number of payloads may be
// normalized concurrently without coordination.
package geolocation
