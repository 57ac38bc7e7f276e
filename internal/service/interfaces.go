// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-user-profile/models"
)

// AccountService registers users, checks credentials and builds profiles.
type AccountService interface {
	// Register stores a new account and its optional file.
	Register(ctx context.Context, reg models.Registration) error

	// SignIn returns the account matching username and password, or
	// ErrInvalidCredentials.
	SignIn(ctx context.Context, username, password string) (models.User, error)

	// Profile returns the profile view of username, or ErrUserNotFound.
	Profile(ctx context.Context, username string) (models.Profile, error)
}

// SessionService issues and resolves the tokens kept in the session cookie.
type SessionService interface {
	// Open starts a session for username.
	Open(ctx context.Context, username string) (models.Session, error)

	// Resolve returns the session for token, or ErrSessionNotFound when the
	// token is unknown, expired or forged.
	Resolve(ctx context.Context, token string) (models.Session, error)

	// Close ends the session for token. Closing an unknown token is not an
	// error.
	Close(ctx context.Context, token string) error
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// validation.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}
