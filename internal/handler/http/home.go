// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-profile/internal/utils"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	username, _ := utils.GetUsernameFromContext(r.Context())
	h.views.render(w, r, viewHome, http.StatusOK, homeView{Username: username})
}
