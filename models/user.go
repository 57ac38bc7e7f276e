// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents a registered account as persisted in the "users" table.
//
// FileName, S3Key, S3Bucket and WordCount describe the file uploaded at
// registration time. They are either all set or all nil: a record created
// without an upload carries none of them.
type User struct {
	// Username is the account identifier chosen at registration.
	Username string `db:"username"`

	// Password is the stored credential. Depending on configuration it holds
	// either a bcrypt hash or the plaintext password (legacy mode).
	Password string `db:"password"`

	// FirstName is the user's given name.
	FirstName string `db:"firstname"`

	// LastName is the user's family name.
	LastName string `db:"lastname"`

	// Email is the contact address. It is not validated.
	Email string `db:"email"`

	// FileName is the sanitized name of the uploaded file.
	FileName *string `db:"file_name"`

	// S3Key is the object key "{prefix}/{username}/{file_name}".
	S3Key *string `db:"s3_key"`

	// S3Bucket is the bucket the object was uploaded to.
	S3Bucket *string `db:"s3_bucket"`

	// WordCount is the number of whitespace-separated tokens in the uploaded
	// file's text content.
	WordCount *int64 `db:"wordcount"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasStoredObject reports whether both an object key and a bucket are
// recorded, i.e. whether a download link can be issued for the user.
func (u User) HasStoredObject() bool {
	return u.S3Key != nil && *u.S3Key != "" &&
		u.S3Bucket != nil && *u.S3Bucket != ""
}
