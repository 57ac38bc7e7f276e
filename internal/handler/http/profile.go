// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/service"
	"github.com/MKhiriev/go-user-profile/internal/utils"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	profile, err := h.services.AccountService.Profile(ctx, username)
	if errors.Is(err, service.ErrUserNotFound) {
		log.Info().Str("func", "*Handler.profile").Str("username", username).Msg("session refers to a missing user")
		if token, ok := utils.GetSessionTokenFromContext(ctx); ok {
			if err = h.services.SessionService.Close(ctx, token); err != nil {
				log.Err(err).Str("func", "*Handler.profile").Msg("error closing stale session")
			}
		}
		h.clearSessionCookie(w)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.profile").Msg("error building profile")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.views.render(w, r, viewProfile, http.StatusOK, profileView{Profile: profile})
}
