// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package geolocation

import "fmt"

// Location is the composite location sample: one Coords, one Battery, one
// Activity, optionally one GeofenceEvent, plus the sample-level scalars.
// It retains the original untransformed payload for round-trip access and
// diagnostic display.
type Location struct {
	Coords   Coords   `json:"coords"`
	Battery  Battery  `json:"battery"`
	Activity Activity `json:"activity"`

	// Geofence is present only when the originating event was
	// geofence-triggered. nil means genuinely absent, not "empty geofence".
	Geofence *GeofenceEvent `json:"geofence,omitempty"`

	// Timestamp is the ISO-8601 device time of the sample. RecordedAt is
	// the ISO-8601 time the platform persisted it and is never "more empty"
	// than Timestamp: when its own field is absent it takes Timestamp's
	// resolved value.
	Timestamp  string `json:"timestamp"`
	RecordedAt string `json:"recorded_at"`

	// Age is the sample age in milliseconds at delivery time.
	Age float64 `json:"age"`

	// Event tags the trigger that produced the sample (motionchange,
	// geofence, heartbeat, providerchange) or is empty for ordinary
	// tracking samples.
	Event string `json:"event"`

	// Mock reports whether the sample came from a mock location provider
	// (Android-only semantic).
	Mock bool `json:"mock"`

	// Sample marks a non-final reading from a multi-sample acquisition.
	Sample bool `json:"sample"`

	Odometer float64 `json:"odometer"`
	IsMoving bool    `json:"is_moving"`
	UUID     string  `json:"uuid"`

	// Extras is the free-form metadata attached by the client application,
	// populated only when the source field is itself a map.
	Extras map[string]any `json:"extras,omitempty"`

	raw any
}

// NewLocation builds a Location from a raw top-level payload value. Like
// all builders it is total: nil, scalars, and maps with arbitrarily
// mistyped fields all produce a fully-populated Location.
func NewLocation(raw any) Location {
	m := ToMap(raw)

	timestamp := stringField(m, "timestamp", "")

	loc := Location{
		Coords:     NewCoords(m["coords"]),
		Battery:    NewBattery(m["battery"]),
		Activity:   NewActivity(m["activity"]),
		Timestamp:  timestamp,
		RecordedAt: stringField(m, "recorded_at", timestamp),
		Age:        floatField(m, "age", 0),
		Event:      stringField(m, "event", ""),
		Mock:       boolField(m, "mock", false),
		Sample:     boolField(m, "sample", false),
		Odometer:   floatField(m, "odometer", 0),
		IsMoving:   boolField(m, "is_moving", false),
		UUID:       stringField(m, "uuid", ""),
		raw:        raw,
	}

	if g, ok := m["geofence"]; ok && g != nil {
		event := NewGeofenceEvent(g)
		loc.Geofence = &event
	}

	if extras, ok := m["extras"].(map[string]any); ok {
		loc.Extras = extras
	}

	return loc
}

// Raw returns the original untransformed payload the Location was built
// from. The same value is returned, not a re-serialization.
func (l Location) Raw() any {
	return l.raw
}

// String returns a compact diagnostic summary of the sample's identifying
// fields for logging. The UUID is deliberately omitted.
func (l Location) String() string {
	return fmt.Sprintf("[Location %s coords: %.6f,%.6f, acy: %.1f, spd: %.1f]",
		l.Timestamp, l.Coords.Latitude, l.Coords.Longitude, l.Coords.Accuracy, l.Coords.Speed)
}
