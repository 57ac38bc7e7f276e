// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/utils"
	"github.com/MKhiriev/go-user-profile/models"
)

// multipartMemory is how much of a multipart form is kept in memory before
// file parts spill to temporary files.
const multipartMemory = 8 << 20

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.views.render(w, r, viewRegister, http.StatusOK, registerView{})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := parseRegisterForm(r); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("error parsing registration form")
		h.renderRegisterError(w, r, registerView{}, err)
		return
	}
	if r.MultipartForm != nil {
		defer func() {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				log.Debug().Err(err).Str("func", "*Handler.register").Msg("error removing temporary form files")
			}
		}()
	}

	reg := models.Registration{
		Username:        strings.TrimSpace(r.PostFormValue("username")),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
		FirstName:       strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:        strings.TrimSpace(r.PostFormValue("last_name")),
		Email:           strings.TrimSpace(r.PostFormValue("email")),
	}
	form := registerView{
		Username:  reg.Username,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Email:     reg.Email,
	}

	file, header, err := r.FormFile("upload")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		log.Err(err).Str("func", "*Handler.register").Msg("error opening uploaded file")
		h.renderRegisterError(w, r, form, fmt.Errorf("%w: %w", ErrInvalidForm, err))
		return
	default:
		defer file.Close()
		if header.Filename != "" {
			reg.File = &models.UploadedFile{
				Name:        header.Filename,
				Content:     file,
				Size:        header.Size,
				ContentType: header.Header.Get("Content-Type"),
			}
		}
	}

	if err = h.services.AccountService.Register(ctx, reg); err != nil {
		h.renderRegisterError(w, r, form, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// parseRegisterForm accepts both multipart and urlencoded bodies.
func parseRegisterForm(r *http.Request) error {
	err := r.ParseMultipartForm(multipartMemory)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: %w", ErrUploadTooLarge, err)
	}

	return fmt.Errorf("%w: %w", ErrInvalidForm, err)
}

func (h *Handler) renderRegisterError(w http.ResponseWriter, r *http.Request, form registerView, err error) {
	status, message, ok := responseFromError(err)
	if !ok {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.register").Msg("unexpected error occurred during user registration")
		http.Error(w, http.StatusText(status), status)
		return
	}

	form.Error = message
	h.views.render(w, r, viewRegister, status, form)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.signIn").Msg("error parsing sign-in form")
		h.views.render(w, r, viewHome, http.StatusBadRequest, homeView{Error: errorMessage(ErrInvalidForm)})
		return
	}

	user, err := h.services.AccountService.SignIn(ctx,
		strings.TrimSpace(r.PostFormValue("username")),
		r.PostFormValue("password"),
	)
	if err != nil {
		status, message, ok := responseFromError(err)
		if !ok {
			log.Err(err).Str("func", "*Handler.signIn").Msg("unexpected error occurred during sign-in")
			http.Error(w, http.StatusText(status), status)
			return
		}
		h.views.render(w, r, viewHome, status, homeView{Error: message})
		return
	}

	// a new sign-in replaces whatever session the browser had
	if token, ok := utils.GetSessionTokenFromContext(ctx); ok {
		if err = h.services.SessionService.Close(ctx, token); err != nil {
			log.Err(err).Str("func", "*Handler.signIn").Msg("error closing previous session")
		}
	}

	session, err := h.services.SessionService.Open(ctx, user.Username)
	if err != nil {
		log.Err(err).Str("func", "*Handler.signIn").Msg("error opening session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Str("func", "*Handler.signIn").Str("username", user.Username).Msg("user signed in")
	h.setSessionCookie(w, session)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// signOut is idempotent: without a session it only clears the cookie.
func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if token, ok := utils.GetSessionTokenFromContext(ctx); ok {
		if err := h.services.SessionService.Close(ctx, token); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.signOut").Msg("error closing session")
		}
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func errorMessage(err error) string {
	_, message, _ := responseFromError(err)
	return message
}
