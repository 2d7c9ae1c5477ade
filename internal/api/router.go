// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/locus/internal/config"
)

// healthRateLimit is deliberately generous so orchestrator probes are
// never throttled.
const healthRateLimit = 1000

// NewRouter assembles the Chi router with middleware, rate limits, and all
// routes mounted.
func NewRouter(handler *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(SecurityHeaders)
	r.Use(Instrument)

	if len(cfg.Ingest.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Ingest.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", SignatureHeader, "X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/health", func(r chi.Router) {
			r.Use(httprate.LimitByRealIP(healthRateLimit, time.Minute))
			r.Get("/", handler.Health)
			r.Get("/live", handler.HealthLive)
			r.Get("/ready", handler.HealthReady)
		})

		r.Route("/locations", func(r chi.Router) {
			r.Use(httprate.LimitByRealIP(
				cfg.Ingest.RateLimitRequests,
				cfg.Ingest.RateLimitWindow,
			))
			r.Post("/", handler.IngestLocations)
		})
	})

	if cfg.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}
