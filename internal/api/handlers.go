// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package api

import (
	"time"

	"github.com/tomtom215/locus/internal/config"
)

// Version is the reported server version.
const Version = "1.2.0"

// Handler carries the dependencies of the API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_locations.go: location ingest endpoint
//   - handlers_health.go: health and probe endpoints
type Handler struct {
	config    *config.Config
	startTime time.Time
}

// NewHandler creates an API handler.
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{
		config:    cfg,
		startTime: time.Now(),
	}
}
