// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	session, err := GenerateJWTToken("test-issuer", "alice", time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "alice", session.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(session.Token, claims)
	require.NoError(t, err)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, "alice", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestGenerateJWTToken_UniquePerCall(t *testing.T) {
	first, err := GenerateJWTToken("iss", "alice", time.Hour, "key")
	require.NoError(t, err)
	second, err := GenerateJWTToken("iss", "alice", time.Hour, "key")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		username string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "alice", time.Hour, "key"},
		{"empty username", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "alice", 0, "key"},
		{"negative duration", "iss", "alice", -time.Hour, "key"},
		{"empty key", "iss", "alice", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.username, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	generated, err := GenerateJWTToken("test-issuer", "bob", 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.Token, "secret-key", "test-issuer")
	require.NoError(t, err)
	assert.Equal(t, "bob", parsed.Username)
	assert.Equal(t, generated.Token, parsed.Token)
	assert.Equal(t, generated.ExpiresAt.Unix(), parsed.ExpiresAt.Unix())
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, err := GenerateJWTToken("iss", "bob", time.Minute, "key")
	require.NoError(t, err)

	expired := signClaims(t, jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "bob",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}, "key")
	noExpiry := signClaims(t, jwt.RegisteredClaims{Issuer: "iss", Subject: "bob"}, "key")
	noSubject := signClaims(t, jwt.RegisteredClaims{
		Issuer:    "iss",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}, "key")

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.Token, "other", "iss"},
		{"wrong issuer", valid.Token, "key", "other"},
		{"expired", expired, "key", "iss"},
		{"no expiry", noExpiry, "key", "iss"},
		{"no subject", noSubject, "key", "iss"},
		{"garbage", "not.a.token", "key", "iss"},
		{"empty", "", "key", "iss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "bob",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	signed, err := token.SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(signed, "key", "iss")
	assert.Error(t, err)
}

func signClaims(t *testing.T, claims jwt.RegisteredClaims, key string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}
