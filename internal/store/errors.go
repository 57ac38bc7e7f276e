// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an insert is rejected because
	// the users table already holds the username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a lookup by username matches no record.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUserNotSaved is returned when an INSERT completes without error but
	// affects no rows.
	ErrUserNotSaved = errors.New("user was not saved")

	// ErrUnsupportedDriver is returned when the configured database driver
	// is neither sqlite3 nor pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrUnsupportedObjectBackend is returned when the configured object store
	// backend is neither s3 nor minio.
	ErrUnsupportedObjectBackend = errors.New("unsupported object storage backend")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrAcquiringConn is returned when a dedicated connection cannot be
	// taken from the pool.
	ErrAcquiringConn = errors.New("failed to acquire database connection")
)

// Object storage errors.
var (
	// ErrUploadingObject is returned when the object store rejects an upload.
	ErrUploadingObject = errors.New("failed to upload object")

	// ErrPresigningURL is returned when a download link cannot be signed.
	ErrPresigningURL = errors.New("failed to presign object url")
)
