// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Registration and sign-in outcomes. Handlers map them to status codes and
// user facing messages.
var (
	ErrInvalidDataProvided    = errors.New("invalid data provided")
	ErrPasswordsDoNotMatch    = errors.New("passwords do not match")
	ErrPasswordTooLong        = errors.New("password is too long")
	ErrBucketNotConfigured    = errors.New("object storage bucket is not configured")
	ErrUsernameAlreadyExists  = errors.New("username already exists")
	ErrInvalidCredentials     = errors.New("invalid username or password")
	ErrUserNotFound           = errors.New("user not found")
	ErrReadingUploadedFile    = errors.New("error reading uploaded file")
	ErrStoringUploadedFile    = errors.New("error storing uploaded file")
	ErrIssuingDownloadURL     = errors.New("error issuing download url")
	ErrSessionNotFound        = errors.New("session not found")
	ErrUnsupportedSessionType = errors.New("unsupported session backend")
)
