// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-profile/internal/app"
	"github.com/MKhiriev/go-user-profile/internal/service"
	"github.com/MKhiriev/go-user-profile/internal/validators"
)

// errorResponse is how a known error is shown to the user.
type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; wrapped validator errors come before
// the generic service.ErrInvalidDataProvided they are wrapped with.
var errorResponses = []errorResponse{
	{validators.ErrEmptyUsername, http.StatusBadRequest, app.MsgUsernameRequired},
	{validators.ErrInvalidUsername, http.StatusBadRequest, app.MsgInvalidUsername},
	{validators.ErrEmptyPassword, http.StatusBadRequest, app.MsgPasswordRequired},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrPasswordsDoNotMatch, http.StatusBadRequest, app.MsgPasswordsDoNotMatch},
	{service.ErrPasswordTooLong, http.StatusBadRequest, app.MsgPasswordTooLong},
	{service.ErrBucketNotConfigured, http.StatusServiceUnavailable, app.MsgBucketNotConfigured},
	{service.ErrUsernameAlreadyExists, http.StatusConflict, app.MsgUsernameAlreadyExists},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidUsernameOrPassword},
	{ErrInvalidForm, http.StatusBadRequest, app.MsgInvalidForm},
	{ErrUploadTooLarge, http.StatusRequestEntityTooLarge, app.MsgUploadTooLarge},
}

// responseFromError returns the status and message for err. ok is false for
// errors the user cannot act on, which are answered with a bare 500.
func responseFromError(err error) (status int, message string, ok bool) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message, true
		}
	}

	return http.StatusInternalServerError, app.MsgInternalServerError, false
}
