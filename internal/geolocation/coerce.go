// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package geolocation

import (
	"fmt"
	"strconv"
	"strings"
)

// ToMap returns v unchanged when it is already a string-keyed map, and an
// empty map for anything else (nil, scalars, slices). This guarantees that
// all downstream field access is safe regardless of payload shape.
func ToMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// ToNumber coerces v to a number. Native numeric values pass through,
// numeric strings are parsed, and everything else (including unparseable
// strings) resolves to fallback.
//
// JSON decoders deliver all numbers as float64, but platform bridges have
// been observed to hand over native integer types, so the full integer
// family is accepted.
func ToNumber(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
		return fallback
	default:
		return fallback
	}
}

// ToFloat coerces v to a double-precision float. It exists for symmetry with
// the wire contract, where integer and floating fields are distinct; in Go
// both widen to float64.
func ToFloat(v any, fallback float64) float64 {
	return ToNumber(v, fallback)
}

// ToOptionalInt coerces v to an optional integer, distinguishing "absent"
// (nil) from "present but zero". Floating values truncate toward zero.
// Strings must encode an integer ("3.9" is not an integer string and yields
// nil, while a native 3.9 truncates to 3). Any other type yields nil.
func ToOptionalInt(v any) *int {
	switch n := v.(type) {
	case nil:
		return nil
	case int:
		return &n
	case int8:
		i := int(n)
		return &i
	case int16:
		i := int(n)
		return &i
	case int32:
		i := int(n)
		return &i
	case int64:
		i := int(n)
		return &i
	case uint:
		i := int(n)
		return &i
	case uint8:
		i := int(n)
		return &i
	case uint16:
		i := int(n)
		return &i
	case uint32:
		i := int(n)
		return &i
	case uint64:
		i := int(n)
		return &i
	case float64:
		i := int(n)
		return &i
	case float32:
		i := int(n)
		return &i
	case string:
		if parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			i := int(parsed)
			return &i
		}
		return nil
	default:
		return nil
	}
}

// ToBool coerces v to a boolean. Native booleans pass through, numbers map
// zero to false and nonzero to true, and the case-insensitive string forms
// "true"/"1"/"yes" and "false"/"0"/"no" are recognized. Everything else
// resolves to fallback.
func ToBool(v any, fallback bool) bool {
	switch b := v.(type) {
	case bool:
		return b
	case float64:
		return b != 0
	case float32:
		return b != 0
	case int:
		return b != 0
	case int8:
		return b != 0
	case int16:
		return b != 0
	case int32:
		return b != 0
	case int64:
		return b != 0
	case uint:
		return b != 0
	case uint8:
		return b != 0
	case uint16:
		return b != 0
	case uint32:
		return b != 0
	case uint64:
		return b != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		default:
			return fallback
		}
	default:
		return fallback
	}
}

// toStringOr returns v when it is already a string, v's string representation
// when it is any other non-nil value, and fallback when it is nil. This is
// the rule applied to timestamp-like and identifier-like fields.
func toStringOr(v any, fallback string) string {
	switch s := v.(type) {
	case nil:
		return fallback
	case string:
		return s
	default:
		return fmt.Sprint(v)
	}
}
