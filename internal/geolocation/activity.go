// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package geolocation

// Activity is the classified motion state of the carrying device (still,
// on_foot, walking, running, in_vehicle, on_bicycle) with a confidence
// percentage.
type Activity struct {
	// Type is never empty; ActivityTypeUnknown substitutes for an absent or
	// empty classification.
	Type string `json:"type"`

	// Confidence is a percentage in [0, 100]. A default of 0 means "no
	// confidence reported" and is not distinguished from a genuine
	// zero-confidence reading.
	Confidence int `json:"confidence"`
}

// NewActivity builds Activity from a raw payload value. The type field is
// used verbatim only when it is a non-empty string; anything else becomes
// ActivityTypeUnknown.
func NewActivity(raw any) Activity {
	m := ToMap(raw)

	activityType := ActivityTypeUnknown
	if s, ok := m["type"].(string); ok && s != "" {
		activityType = s
	}

	confidence := 0
	if c := ToOptionalInt(m["confidence"]); c != nil {
		confidence = *c
	}

	return Activity{
		Type:       activityType,
		Confidence: confidence,
	}
}
