// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/service"
	"github.com/MKhiriev/go-user-profile/internal/utils"
)

// withSession resolves the session cookie and stores the username and the
// token in the request context. A request without a valid session passes
// through anonymously and any stale cookie is dropped.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := h.sessionCookie(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		log := logger.FromContext(ctx)

		session, err := h.services.SessionService.Resolve(ctx, token)
		if errors.Is(err, service.ErrSessionNotFound) {
			h.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}
		if err != nil {
			log.Err(err).Str("func", "*Handler.withSession").Msg("error resolving session")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if rec, ok := accessRecordFrom(ctx); ok {
			rec.username = session.Username
		}

		ctx = context.WithValue(ctx, utils.UsernameCtxKey, session.Username)
		ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, session.Token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
