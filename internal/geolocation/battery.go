// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package geolocation

// Battery is the device battery state attached to a location sample.
type Battery struct {
	IsCharging bool `json:"is_charging"`

	// Level is the battery charge in [0.0, 1.0], or BatteryLevelUnknown
	// when the platform did not report it.
	Level float64 `json:"level"`
}

// NewBattery builds Battery from a raw payload value, tolerating non-map
// input the same way NewCoords does.
func NewBattery(raw any) Battery {
	m := ToMap(raw)

	return Battery{
		IsCharging: boolField(m, "is_charging", false),
		Level:      floatField(m, "level", BatteryLevelUnknown),
	}
}
