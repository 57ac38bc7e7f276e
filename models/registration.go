// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// Registration carries the fields submitted by the registration form.
type Registration struct {
	Username        string `validate:"required,keysegment"`
	Password        string `validate:"required"`
	ConfirmPassword string
	FirstName       string
	LastName        string
	Email           string

	// File is the optional attachment. Nil when no file was submitted.
	File *UploadedFile
}

// UploadedFile is a file received with the registration form.
type UploadedFile struct {
	// Name is the client supplied file name, unsanitized.
	Name string

	// Content is the file body. It must be seekable so it can be read for
	// word counting and then rewound for the upload.
	Content io.ReadSeeker

	// Size is the length of Content in bytes.
	Size int64

	// ContentType is the MIME type announced by the client, if any.
	ContentType string
}
