// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the HTTP layer itself. Callers can match against
// them with [errors.Is].
var (
	// ErrInvalidForm is returned when the request body cannot be parsed as a
	// form.
	ErrInvalidForm = errors.New("invalid form submission")

	// ErrUploadTooLarge is returned when the request body exceeds the
	// configured upload limit.
	ErrUploadTooLarge = errors.New("upload exceeds size limit")

	// ErrUnknownView is returned when a handler asks for a page that was not
	// loaded.
	ErrUnknownView = errors.New("unknown view")
)
