// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func getPath(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		wantStatus string
	}{
		{"health", "/api/v1/health", "healthy"},
		{"liveness", "/api/v1/health/live", "alive"},
		{"readiness", "/api/v1/health/ready", "ready"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newTestRouter(t, newTestConfig())
			rec := getPath(t, router, tt.path)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}

			resp := decodeResponse(t, rec)
			data, ok := resp.Data.(map[string]any)
			if !ok {
				t.Fatalf("Data = %T, want map", resp.Data)
			}
			if got := data["status"]; got != tt.wantStatus {
				t.Errorf("status = %v, want %v", got, tt.wantStatus)
			}
		})
	}
}

func TestHealthReportsVersionAndUptime(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, newTestConfig())
	resp := decodeResponse(t, getPath(t, router, "/api/v1/health"))

	data := resp.Data.(map[string]any)
	if got := data["version"]; got != Version {
		t.Errorf("version = %v, want %v", got, Version)
	}
	if _, ok := data["uptime"].(string); !ok {
		t.Errorf("uptime missing or not a string: %v", data["uptime"])
	}
}
