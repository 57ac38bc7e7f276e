// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-user-profile HTTP handlers.
//
// All Msg* constants are human-readable messages rendered into the HTML
// views or written into error responses. Keeping them in one place keeps
// the wording consistent across pages.
package app

const (
	// MsgPasswordsDoNotMatch is shown on the registration form when the
	// password and its confirmation differ.
	MsgPasswordsDoNotMatch = "Passwords do not match."

	// MsgBucketNotConfigured is shown when a file is attached but no upload
	// bucket is configured on the server.
	MsgBucketNotConfigured = "STORAGE_OBJECTS_BUCKET is not configured."

	// MsgUsernameAlreadyExists is shown when the chosen username is taken.
	MsgUsernameAlreadyExists = "Username already exists."

	// MsgInvalidUsernameOrPassword is shown on the home page after a failed
	// sign-in. It never says which of the two was wrong.
	MsgInvalidUsernameOrPassword = "Invalid username or password."

	// MsgUsernameRequired is shown when the username is blank.
	MsgUsernameRequired = "Username is required."

	// MsgInvalidUsername is shown when the username cannot be used as a
	// storage key segment.
	MsgInvalidUsername = "Username must not contain '/' or control characters."

	// MsgPasswordRequired is shown when the password is blank.
	MsgPasswordRequired = "Password is required."

	// MsgPasswordTooLong is shown when the password exceeds what bcrypt
	// accepts.
	MsgPasswordTooLong = "Password must be at most 72 bytes long."

	// MsgInvalidDataProvided is shown for any other rejected registration.
	MsgInvalidDataProvided = "Invalid data provided."

	// MsgInvalidForm is shown when the submitted form cannot be parsed.
	MsgInvalidForm = "Invalid form submission."

	// MsgUploadTooLarge is shown when the form exceeds the upload limit.
	MsgUploadTooLarge = "Uploaded file is too large."

	// MsgInternalServerError is written when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
