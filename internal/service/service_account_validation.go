// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-profile/internal/validators"
	"github.com/MKhiriev/go-user-profile/models"
)

// AccountValidationService rejects malformed registrations before they
// reach the wrapped AccountService.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewRegistrationValidator(),
	}
}

// Register validates the trimmed username and the password, then delegates.
func (v *AccountValidationService) Register(ctx context.Context, reg models.Registration) error {
	reg.Username = strings.TrimSpace(reg.Username)

	if err := v.validator.Validate(ctx, reg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, reg)
}

func (v *AccountValidationService) SignIn(ctx context.Context, username, password string) (models.User, error) {
	return v.inner.SignIn(ctx, username, password)
}

func (v *AccountValidationService) Profile(ctx context.Context, username string) (models.Profile, error) {
	return v.inner.Profile(ctx, username)
}

func (v *AccountValidationService) Wrap(wrapped AccountService) AccountService {
	v.inner = wrapped
	return v
}
