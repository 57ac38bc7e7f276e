// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/logger"
)

// Storages groups every storage dependency of the service layer.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	ObjectStorage  ObjectStorage
}

// NewStorages connects the relational store, applies migrations and builds
// the object storage client.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	objects, err := NewObjectStorage(ctx, cfg.Objects, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error creating object storage: %w", err)
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
		ObjectStorage:  objects,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}

	return s.DB.Close()
}
