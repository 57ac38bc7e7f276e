// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Profile is the view model rendered on the profile page.
type Profile struct {
	Username  string
	FirstName string
	LastName  string
	Email     string

	// WordCount is "{N} words", or "N/A" when no file was uploaded.
	WordCount string

	// DownloadURL is a pre-signed link to the uploaded file. Empty when the
	// user has no stored object.
	DownloadURL string
}
