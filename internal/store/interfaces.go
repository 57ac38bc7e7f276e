// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-user-profile/models"
)

// UserRepository reads and writes the users table.
type UserRepository interface {
	// FindUserByUsername returns the record for username, or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UsernameExists reports whether a record for username is present.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// CreateUser inserts user. It returns [ErrUsernameAlreadyExists] when the
	// database rejects a duplicate username.
	CreateUser(ctx context.Context, user models.User) error
}

// ObjectStorage stores uploaded files and issues time-limited download links.
type ObjectStorage interface {
	// Upload writes size bytes of body under bucket/key.
	Upload(ctx context.Context, bucket, key string, body io.ReadSeeker, size int64, contentType string) error

	// PresignGet returns a URL granting read access to bucket/key for
	// expires. It performs no network call and does not check that the
	// object exists.
	PresignGet(ctx context.Context, bucket, key string, expires time.Duration) (string, error)
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
