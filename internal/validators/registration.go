// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-user-profile/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by [RegistrationValidator.Validate] to restrict
// validation to a subset of fields.
const (
	FieldUsername = "Username"
	FieldPassword = "Password"
)

// RegistrationValidator checks the registration form before any upload or
// database work happens. Only the fields that end up in storage keys are
// constrained: the username must be present and usable as a key segment,
// the password must be present. Names and email are stored as submitted.
type RegistrationValidator struct {
	validate *validator.Validate
}

// NewRegistrationValidator constructs a [RegistrationValidator].
func NewRegistrationValidator() *RegistrationValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails for an empty tag name, which cannot happen here
	_ = validate.RegisterValidation("keysegment", isKeySegment)

	return &RegistrationValidator{validate: validate}
}

// isKeySegment accepts strings usable as one segment of an object key:
// no '/', no control characters, and not "." or "..".
func isKeySegment(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "." || s == ".." || strings.ContainsRune(s, '/') {
		return false
	}

	return strings.IndexFunc(s, unicode.IsControl) < 0
}

// Validate implements [Validator]. input must be a [models.Registration] or a
// pointer to one.
func (v *RegistrationValidator) Validate(ctx context.Context, input any, fields ...string) error {
	var reg models.Registration
	switch value := input.(type) {
	case models.Registration:
		reg = value
	case *models.Registration:
		if value == nil {
			return ErrUnsupportedType
		}
		reg = *value
	default:
		return ErrUnsupportedType
	}

	for _, field := range fields {
		if field != FieldUsername && field != FieldPassword {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, reg)
	} else {
		err = v.validate.StructPartialCtx(ctx, reg, fields...)
	}

	return translate(err)
}

// translate maps the first validator field error to a package sentinel.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	first := fieldErrs[0]
	switch first.Field() {
	case FieldUsername:
		if first.Tag() == "required" {
			return ErrEmptyUsername
		}
		return ErrInvalidUsername
	case FieldPassword:
		return ErrEmptyPassword
	}

	return err
}
