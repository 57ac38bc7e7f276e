// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-profile/internal/logger"
)

// withLogging writes one access line per request. Server errors are logged
// at error level. The username is taken from the [accessRecord] that
// withSession fills in further down the chain.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}
		rec := &accessRecord{}

		next.ServeHTTP(lw, r.WithContext(withAccessRecord(r.Context(), rec)))

		event := log.Info()
		if lw.status >= http.StatusInternalServerError {
			event = log.Error()
		}
		if rec.username != "" {
			event = event.Str("username", rec.username)
		}

		event.
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
