// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package geolocation

// Geofence transition actions reported by the platform layer.
const (
	GeofenceActionEnter = "ENTER"
	GeofenceActionExit  = "EXIT"
	GeofenceActionDwell = "DWELL"
)

// GeofenceEvent describes the boundary-crossing transition that triggered a
// location sample. It is attached to a Location only when the originating
// event was geofence-triggered; geofence evaluation itself happens in the
// platform layer, not here.
type GeofenceEvent struct {
	// Identifier names the geofence that fired.
	Identifier string `json:"identifier"`

	// Action is the transition type: ENTER, EXIT or DWELL.
	Action string `json:"action"`

	// Extras carries the free-form metadata registered with the geofence,
	// when the payload supplies one.
	Extras map[string]any `json:"extras,omitempty"`
}

// NewGeofenceEvent builds a GeofenceEvent from a raw payload value with the
// same tolerance as the other builders: missing or mistyped fields resolve
// to empty values, never to a failure.
func NewGeofenceEvent(raw any) GeofenceEvent {
	m := ToMap(raw)

	event := GeofenceEvent{
		Identifier: stringField(m, "identifier", ""),
		Action:     stringField(m, "action", ""),
	}

	if extras, ok := m["extras"].(map[string]any); ok {
		event.Extras = extras
	}

	return event
}
