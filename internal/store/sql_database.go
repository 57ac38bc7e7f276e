// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// DB is the relational store handle shared by all repositories. It wraps a
// connection pool together with the driver specific pieces the repositories
// need: the placeholder format for generated queries and the error
// classifier.
type DB struct {
	*sqlx.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case migrations.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case migrations.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Driver returns the database/sql driver name the pool was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB.DB, db.driver)
}

// classify returns the classification of err, NonRetryable without a
// classifier.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}

	return db.errorClassificator.Classify(err)
}
