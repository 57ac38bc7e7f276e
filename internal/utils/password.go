// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned by [PasswordHasher.Hash] when the password
// exceeds the 72 bytes bcrypt can process.
var ErrPasswordTooLong = errors.New("password is longer than 72 bytes")

// PasswordHasher produces and verifies stored password values.
//
// In the default mode passwords are stored as bcrypt hashes. In plaintext
// mode they are stored as submitted, which keeps databases written by older
// deployments readable and writable in the same format.
//
// Verification accepts both formats in either mode. In plaintext mode the
// stored value is first compared with the password as submitted, so a
// password that happens to look like a bcrypt hash still matches itself;
// bcrypt is tried only when that fails. In bcrypt mode a value carrying a
// bcrypt prefix is checked with bcrypt only, anything else is a legacy
// plaintext row and is compared in constant time.
type PasswordHasher struct {
	cost      int
	plaintext bool
}

// NewPasswordHasher creates a [PasswordHasher]. A cost of zero selects
// bcrypt.DefaultCost.
func NewPasswordHasher(cost int, plaintext bool) *PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &PasswordHasher{cost: cost, plaintext: plaintext}
}

// Hash returns the value to persist for password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if h.plaintext {
		return password, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify reports whether password matches the stored value.
func (h *PasswordHasher) Verify(stored, password string) bool {
	if h.plaintext {
		if equalPlaintext(stored, password) {
			return true
		}

		return isBcryptHash(stored) && bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}

	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}

	return equalPlaintext(stored, password)
}

func equalPlaintext(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

func isBcryptHash(s string) bool {
	if len(s) != 60 {
		return false
	}

	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}
