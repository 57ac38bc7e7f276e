// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-user-profile/models"
	"github.com/stretchr/testify/assert"
)

func validRegistration() models.Registration {
	return models.Registration{
		Username:        "alice",
		Password:        "pw1",
		ConfirmPassword: "pw1",
		FirstName:       "Alice",
		LastName:        "A",
		Email:           "a@x.com",
	}
}

func TestRegistrationValidator_Valid(t *testing.T) {
	v := NewRegistrationValidator()

	assert.NoError(t, v.Validate(context.Background(), validRegistration()))

	reg := validRegistration()
	assert.NoError(t, v.Validate(context.Background(), &reg))
}

// Names and email are stored as submitted.
func TestRegistrationValidator_OptionalFieldsMayBeEmpty(t *testing.T) {
	reg := validRegistration()
	reg.FirstName, reg.LastName, reg.Email = "", "", "not-an-email"

	assert.NoError(t, NewRegistrationValidator().Validate(context.Background(), reg))
}

func TestRegistrationValidator_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.Registration)
		wantErr error
	}{
		{"empty username", func(r *models.Registration) { r.Username = "" }, ErrEmptyUsername},
		{"slash in username", func(r *models.Registration) { r.Username = "a/b" }, ErrInvalidUsername},
		{"newline in username", func(r *models.Registration) { r.Username = "a\nb" }, ErrInvalidUsername},
		{"dot-dot username", func(r *models.Registration) { r.Username = ".." }, ErrInvalidUsername},
		{"empty password", func(r *models.Registration) { r.Password = "" }, ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistration()
			tt.mutate(&reg)

			assert.ErrorIs(t, NewRegistrationValidator().Validate(context.Background(), reg), tt.wantErr)
		})
	}
}

func TestRegistrationValidator_Partial(t *testing.T) {
	reg := validRegistration()
	reg.Password = ""

	v := NewRegistrationValidator()
	assert.NoError(t, v.Validate(context.Background(), reg, FieldUsername))
	assert.ErrorIs(t, v.Validate(context.Background(), reg, FieldPassword), ErrEmptyPassword)
}

func TestRegistrationValidator_UnknownField(t *testing.T) {
	err := NewRegistrationValidator().Validate(context.Background(), validRegistration(), "Email")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestRegistrationValidator_UnsupportedType(t *testing.T) {
	v := NewRegistrationValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "alice"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.Registration)(nil)), ErrUnsupportedType)
}
