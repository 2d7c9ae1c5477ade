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

// Platform error codes reported by the location layer. The numeric values
// are fixed by the platform SDK contract.
const (
	ErrorLocationUnknown  = 0
	ErrorPermissionDenied = 1
	ErrorNetwork          = 2
	ErrorTimeout          = 408
	ErrorCancelled        = 499
)

// LocationError is a genuine platform-reported failure (permission denied,
// timeout, location unknown) adapted into a typed error value. It is not
// used for malformed payload fields; those always resolve to sentinels.
type LocationError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *LocationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("location error %d", e.Code)
	}
	return fmt.Sprintf("location error %d: %s", e.Code, e.Message)
}

// NewLocationError adapts a platform failure signal into a LocationError.
// The platform supplies the error code as a string; a code that does not
// parse as an integer indicates a platform/version mismatch and is the one
// failure this package propagates instead of defaulting. A nil message
// resolves to the empty string.
func NewLocationError(code string, message any) (*LocationError, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		return nil, fmt.Errorf("malformed platform error code %q: %w", code, err)
	}

	return &LocationError{
		Code:    parsed,
		Message: toStringOr(message, ""),
	}, nil
}
