// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package geolocation

// Coords is the positional portion of a location sample. Every numeric
// field is always populated, either with a parsed value or with its
// documented sentinel; no field is ever left unset.
type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	Altitude  float64 `json:"altitude"`

	// EllipsoidalAltitude is reported only on platforms that distinguish it
	// from gravity-related altitude; when absent it equals Altitude.
	EllipsoidalAltitude float64 `json:"ellipsoidal_altitude"`

	// GPS-only / device-dependent readings. MeasurementUnavailable when the
	// instrument did not supply them.
	Heading          float64 `json:"heading"`
	HeadingAccuracy  float64 `json:"heading_accuracy"`
	Speed            float64 `json:"speed"`
	SpeedAccuracy    float64 `json:"speed_accuracy"`
	AltitudeAccuracy float64 `json:"altitude_accuracy"`

	// Floor is an iOS-only concept; nil means not applicable on this
	// platform or device.
	Floor *int `json:"floor,omitempty"`
}

// NewCoords builds Coords from a raw payload value. Anything that is not a
// map (nil, a scalar, a slice) yields a coordinate populated entirely with
// defaults: a usable, if meaningless, position rather than a failure.
//
// latitude, longitude, accuracy and altitude are treated as present-or-zero;
// their absence still produces 0.0 rather than an error.
func NewCoords(raw any) Coords {
	m := ToMap(raw)
	altitude := floatField(m, "altitude", 0)

	return Coords{
		Latitude:            floatField(m, "latitude", 0),
		Longitude:           floatField(m, "longitude", 0),
		Accuracy:            floatField(m, "accuracy", 0),
		Altitude:            altitude,
		EllipsoidalAltitude: floatField(m, "ellipsoidal_altitude", altitude),
		Heading:             floatField(m, "heading", MeasurementUnavailable),
		HeadingAccuracy:     floatField(m, "heading_accuracy", MeasurementUnavailable),
		Speed:               floatField(m, "speed", MeasurementUnavailable),
		SpeedAccuracy:       floatField(m, "speed_accuracy", MeasurementUnavailable),
		AltitudeAccuracy:    floatField(m, "altitude_accuracy", MeasurementUnavailable),
		Floor:               optionalIntField(m, "floor"),
	}
}
