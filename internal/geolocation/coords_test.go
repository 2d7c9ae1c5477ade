// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package geolocation

import "testing"

func TestNewCoords(t *testing.T) {
	t.Parallel()

	t.Run("mixed native and string-encoded values", func(t *testing.T) {
		t.Parallel()
		coords := NewCoords(map[string]any{
			"latitude":  "45.5",
			"longitude": -73.6,
			"accuracy":  5,
		})

		if coords.Latitude != 45.5 {
			t.Errorf("Latitude = %v, want 45.5 (parsed from string)", coords.Latitude)
		}
		if coords.Longitude != -73.6 {
			t.Errorf("Longitude = %v, want -73.6", coords.Longitude)
		}
		if coords.Accuracy != 5.0 {
			t.Errorf("Accuracy = %v, want 5.0", coords.Accuracy)
		}
		if coords.Altitude != 0.0 {
			t.Errorf("Altitude = %v, want 0.0 default", coords.Altitude)
		}
		if coords.EllipsoidalAltitude != 0.0 {
			t.Errorf("EllipsoidalAltitude = %v, want 0.0 (falls back to altitude)", coords.EllipsoidalAltitude)
		}
		for name, got := range map[string]float64{
			"Heading":          coords.Heading,
			"HeadingAccuracy":  coords.HeadingAccuracy,
			"Speed":            coords.Speed,
			"SpeedAccuracy":    coords.SpeedAccuracy,
			"AltitudeAccuracy": coords.AltitudeAccuracy,
		} {
			if got != MeasurementUnavailable {
				t.Errorf("%s = %v, want %v sentinel", name, got, MeasurementUnavailable)
			}
		}
		if coords.Floor != nil {
			t.Errorf("Floor = %v, want nil", *coords.Floor)
		}
	})

	t.Run("ellipsoidal altitude follows resolved altitude", func(t *testing.T) {
		t.Parallel()
		coords := NewCoords(map[string]any{"altitude": 120.5})
		if coords.EllipsoidalAltitude != 120.5 {
			t.Errorf("EllipsoidalAltitude = %v, want 120.5 (altitude's resolved value)", coords.EllipsoidalAltitude)
		}

		coords = NewCoords(map[string]any{"altitude": 120.5, "ellipsoidal_altitude": 145.2})
		if coords.EllipsoidalAltitude != 145.2 {
			t.Errorf("EllipsoidalAltitude = %v, want own value 145.2", coords.EllipsoidalAltitude)
		}
	})

	t.Run("floor uses optional integer coercion", func(t *testing.T) {
		t.Parallel()
		coords := NewCoords(map[string]any{"floor": 3.0})
		if coords.Floor == nil || *coords.Floor != 3 {
			t.Errorf("Floor = %v, want 3", coords.Floor)
		}

		coords = NewCoords(map[string]any{"floor": "not a floor"})
		if coords.Floor != nil {
			t.Errorf("Floor = %v, want nil for unparseable value", *coords.Floor)
		}
	})

	t.Run("genuine zero heading is distinguishable from absent", func(t *testing.T) {
		t.Parallel()
		coords := NewCoords(map[string]any{"heading": 0.0})
		if coords.Heading != 0.0 {
			t.Errorf("Heading = %v, want genuine 0.0 reading", coords.Heading)
		}
	})

	// Malformed top-level input never fails; every field resolves to its
	// documented sentinel.
	malformed := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"scalar", "not a map"},
		{"number", 42},
		{"slice", []any{"x"}},
		{"mistyped fields", map[string]any{"latitude": []any{}, "heading": map[string]any{}, "floor": false}},
	}

	for _, tt := range malformed {
		tt := tt
		t.Run("malformed input "+tt.name, func(t *testing.T) {
			t.Parallel()
			coords := NewCoords(tt.input)
			if coords.Latitude != 0 || coords.Longitude != 0 || coords.Accuracy != 0 || coords.Altitude != 0 {
				t.Errorf("required fields not zero-defaulted: %+v", coords)
			}
			if coords.Heading != MeasurementUnavailable || coords.Speed != MeasurementUnavailable {
				t.Errorf("unavailable fields not sentinel-defaulted: %+v", coords)
			}
			if coords.Floor != nil {
				t.Errorf("Floor = %v, want nil", *coords.Floor)
			}
		})
	}
}
