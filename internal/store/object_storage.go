// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/logger"
)

// Supported object storage backends.
const (
	ObjectBackendS3    = "s3"
	ObjectBackendMinio = "minio"
)

// NewObjectStorage builds the [ObjectStorage] selected by cfg.Backend.
func NewObjectStorage(ctx context.Context, cfg config.Objects, log *logger.Logger) (ObjectStorage, error) {
	switch cfg.Backend {
	case ObjectBackendS3, "":
		return NewS3ObjectStorage(ctx, cfg, log)
	case ObjectBackendMinio:
		return NewMinioObjectStorage(cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedObjectBackend, cfg.Backend)
	}
}

// ObjectKey returns the key an upload is stored under:
// "{prefix}/{username}/{fileName}". An empty prefix is omitted.
func ObjectKey(prefix, username, fileName string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return username + "/" + fileName
	}

	return prefix + "/" + username + "/" + fileName
}
