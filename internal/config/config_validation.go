// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks the merged [StructuredConfig] against the `validate` struct
// tags of its fields before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping
// [ErrInvalidConfig] that lists every failing field.
func (cfg *StructuredConfig) validate() error {
	if err := configValidator.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
