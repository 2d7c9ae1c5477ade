// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package geolocation

import (
	"strings"
	"testing"
)

func TestNewLocationError(t *testing.T) {
	t.Parallel()

	t.Run("valid code and message", func(t *testing.T) {
		t.Parallel()
		locErr, err := NewLocationError("2", "Network error")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if locErr.Code != ErrorNetwork {
			t.Errorf("Code = %d, want %d", locErr.Code, ErrorNetwork)
		}
		if locErr.Message != "Network error" {
			t.Errorf("Message = %q, want %q", locErr.Message, "Network error")
		}
	})

	t.Run("absent message defaults to empty", func(t *testing.T) {
		t.Parallel()
		locErr, err := NewLocationError("408", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if locErr.Code != ErrorTimeout {
			t.Errorf("Code = %d, want %d", locErr.Code, ErrorTimeout)
		}
		if locErr.Message != "" {
			t.Errorf("Message = %q, want empty", locErr.Message)
		}
	})

	t.Run("padded code parses", func(t *testing.T) {
		t.Parallel()
		locErr, err := NewLocationError(" 1 ", "Permission denied")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if locErr.Code != ErrorPermissionDenied {
			t.Errorf("Code = %d, want %d", locErr.Code, ErrorPermissionDenied)
		}
	})

	t.Run("malformed code propagates failure", func(t *testing.T) {
		t.Parallel()
		locErr, err := NewLocationError("xyz", "whatever")
		if err == nil {
			t.Fatalf("expected parse failure, got %+v", locErr)
		}
		if !strings.Contains(err.Error(), "xyz") {
			t.Errorf("error %q should name the offending code", err)
		}
	})
}

func TestLocationErrorError(t *testing.T) {
	t.Parallel()

	e := &LocationError{Code: ErrorPermissionDenied, Message: "Permission denied"}
	if got := e.Error(); got != "location error 1: Permission denied" {
		t.Errorf("Error() = %q", got)
	}

	e = &LocationError{Code: ErrorLocationUnknown}
	if got := e.Error(); got != "location error 0" {
		t.Errorf("Error() = %q", got)
	}
}
