// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package geolocation

// Field extractors bind a map, a key, and a fallback to the matching
// coercion function. A missing key looks up as nil and therefore resolves
// through the coercion fallback path.

func floatField(m map[string]any, key string, fallback float64) float64 {
	return ToFloat(m[key], fallback)
}

func optionalIntField(m map[string]any, key string) *int {
	return ToOptionalInt(m[key])
}

func boolField(m map[string]any, key string, fallback bool) bool {
	return ToBool(m[key], fallback)
}

func stringField(m map[string]any, key string, fallback string) string {
	return toStringOr(m[key], fallback)
}
