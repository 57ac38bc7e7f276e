// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session associates a browser cookie token with a signed-in username.
type Session struct {
	// Token is the opaque value stored in the session cookie.
	Token string

	// Username is the signed-in account.
	Username string

	// ExpiresAt is when the session stops being accepted.
	ExpiresAt time.Time
}
