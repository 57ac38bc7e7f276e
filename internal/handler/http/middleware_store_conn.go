// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-profile/internal/logger"
)

// withStoreConn acquires one store connection for the request and releases
// it once the handler returns.
func (h *Handler) withStoreConn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.conns == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx, release, err := h.conns.AcquireConn(r.Context())
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.withStoreConn").Msg("error acquiring store connection")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		defer release()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
