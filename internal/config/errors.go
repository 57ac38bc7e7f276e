// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// ErrInvalidConfig is returned by [GetStructuredConfig] when the merged
// configuration violates a validation rule (for example an unknown storage
// driver or a non-positive URL expiry).
var ErrInvalidConfig = errors.New("invalid configuration")
