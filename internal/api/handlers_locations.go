// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package api

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/locus/internal/geolocation"
	"github.com/tomtom215/locus/internal/logging"
	"github.com/tomtom215/locus/internal/metrics"
)

// SignatureHeader carries the hex-encoded HMAC-SHA256 of the request body
// when ingest signing is configured.
const SignatureHeader = "X-Locus-Signature"

// IngestLocations handles POST /api/v1/locations.
//
// Three payload forms are accepted, matching what background geolocation
// clients emit in the wild:
//
//	{"timestamp": ..., "coords": {...}}                  single
//	[{...}, {...}]                                       batch
//	{"location": {...}} or {"location": [{...}, ...]}    wrapped
//
// Every decoded element is normalized into a typed Location. Missing or
// mistyped fields degrade to sentinels and never reject the request; the
// only failure modes are an unreadable or oversized body, invalid JSON,
// and a bad signature.
func (h *Handler) IngestLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.config.Ingest.MaxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		metrics.IngestRejected.WithLabelValues(metrics.RejectBody).Inc()
		respondError(w, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE",
			"Request body unreadable or exceeds limit", err)
		return
	}

	if h.config.Ingest.Secret != "" {
		if !h.verifySignature(body, r.Header.Get(SignatureHeader)) {
			metrics.IngestRejected.WithLabelValues(metrics.RejectSignature).Inc()
			logging.Ctx(ctx).Warn().
				Str("remote_addr", sanitizeLogValue(r.RemoteAddr)).
				Msg("Ingest signature verification failed")
			respondError(w, http.StatusUnauthorized, "INVALID_SIGNATURE",
				"Signature verification failed", nil)
			return
		}
	}

	var root any
	if err := json.Unmarshal(body, &root); err != nil {
		metrics.IngestRejected.WithLabelValues(metrics.RejectJSON).Inc()
		respondError(w, http.StatusBadRequest, "INVALID_PAYLOAD",
			"Request body is not valid JSON", err)
		return
	}

	form, items := splitPayload(root)

	locations := make([]geolocation.Location, 0, len(items))
	for _, item := range items {
		if errEnvelope, ok := geolocation.ToMap(item)["error"].(map[string]any); ok {
			h.recordPlatformError(ctx, errEnvelope)
		}

		loc := geolocation.NewLocation(item)
		recordDegradedFields(loc)
		logging.Ctx(ctx).Debug().
			Str("location", loc.String()).
			Str("uuid", sanitizeLogValue(loc.UUID)).
			Msg("Location normalized")
		locations = append(locations, loc)
	}

	metrics.RecordIngest(form, len(locations))
	logging.Ctx(ctx).Info().
		Str("form", form).
		Int("count", len(locations)).
		Msg("Ingest accepted")

	respondJSON(w, http.StatusOK, &APIResponse{
		Status:   "success",
		Metadata: Metadata{Timestamp: time.Now()},
		Data: map[string]any{
			"received": len(locations),
			"form":     form,
		},
	})
}

// recordPlatformError surfaces an error envelope attached to a payload
// item. The error never rejects the request; an unparseable code is the
// one adapter failure worth counting.
func (h *Handler) recordPlatformError(ctx context.Context, envelope map[string]any) {
	code, ok := envelope["code"].(string)
	if !ok {
		if f, isNum := envelope["code"].(float64); isNum {
			code = strconv.FormatFloat(f, 'f', -1, 64)
		}
	}

	locErr, err := geolocation.NewLocationError(code, envelope["message"])
	if err != nil {
		metrics.ErrorAdapterFailures.Inc()
		logging.Ctx(ctx).Warn().Err(err).Msg("Unparseable platform error envelope")
		return
	}

	logging.Ctx(ctx).Warn().
		Int("code", locErr.Code).
		Str("message", sanitizeLogValue(locErr.Message)).
		Msg("Platform location error reported")
}

// verifySignature checks the hex HMAC-SHA256 of body against the header
// value using a constant-time comparison.
func (h *Handler) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(h.config.Ingest.Secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(signature), []byte(expected))
}

// splitPayload classifies the decoded JSON root into one of the accepted
// payload forms and returns the location elements to normalize.
//
// A wrapped payload whose "location" value is itself an array is reported
// as wrapped, not batch.
func splitPayload(root any) (string, []any) {
	if m, ok := root.(map[string]any); ok {
		if inner, ok := m["location"]; ok {
			if arr, ok := inner.([]any); ok {
				return metrics.FormWrapped, arr
			}
			return metrics.FormWrapped, []any{inner}
		}
	}

	if arr, ok := root.([]any); ok {
		return metrics.FormBatch, arr
	}

	return metrics.FormSingle, []any{root}
}

// recordDegradedFields counts the sentinel-valued fields of a normalized
// location, making silent degradation observable.
func recordDegradedFields(loc geolocation.Location) {
	// Missing required coordinate fields default to 0.0; a sample sitting
	// exactly on the null island origin is treated as degraded.
	if loc.Coords.Latitude == 0 && loc.Coords.Longitude == 0 {
		metrics.RecordDegraded("coords")
	}
	if loc.Battery.Level == geolocation.BatteryLevelUnknown {
		metrics.RecordDegraded("battery")
	}
	if loc.Activity.Type == geolocation.ActivityTypeUnknown {
		metrics.RecordDegraded("activity")
	}
	if loc.Timestamp == "" {
		metrics.RecordDegraded("timestamp")
	}
}
