// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package api

import (
	"net/http"
	"time"
)

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &APIResponse{
		Status:   "success",
		Metadata: Metadata{Timestamp: time.Now()},
		Data: map[string]any{
			"status":  "healthy",
			"version": Version,
			"uptime":  time.Since(h.startTime).String(),
		},
	})
}

// HealthLive handles GET /api/v1/health/live. It answers as long as the
// process can serve requests.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &APIResponse{
		Status:   "success",
		Metadata: Metadata{Timestamp: time.Now()},
		Data:     map[string]any{"status": "alive"},
	})
}

// HealthReady handles GET /api/v1/health/ready. The normalizer is pure and
// has no downstream dependencies, so readiness follows liveness.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &APIResponse{
		Status:   "success",
		Metadata: Metadata{Timestamp: time.Now()},
		Data:     map[string]any{"status": "ready"},
	})
}
