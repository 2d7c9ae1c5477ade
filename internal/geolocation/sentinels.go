// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package geolocation

// Sentinel values substituted for measurements the platform did not supply.
// Consumers of the platform SDKs already depend on these exact values, so
// they are fixed for compatibility and documented here once rather than at
// each call site.
const (
	// MeasurementUnavailable marks a GPS-only or device-dependent reading
	// (heading, speed, the accuracy companions, battery level) that the
	// instrument did not report. It must remain distinguishable from a
	// genuine 0.0 reading, which is why 0.0 is not used.
	MeasurementUnavailable float64 = -1.0

	// BatteryLevelUnknown marks an unreported battery level, distinct from
	// 0.0 (an empty battery).
	BatteryLevelUnknown float64 = -1.0

	// ActivityTypeUnknown is substituted when the platform omits the motion
	// activity classification or reports it as an empty string.
	ActivityTypeUnknown = "unknown"
)
