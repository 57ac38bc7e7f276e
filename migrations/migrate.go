// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations brings the "users" table up to the current schema.
//
// Migrations are Go functions run by a goose Provider. Each one is written
// to be idempotent against databases created before goose bookkeeping
// existed: the base table is created only if absent and every optional
// column is added only if the live table lacks it. Columns are never
// renamed or dropped and existing rows are never modified.
package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/pressly/goose/v3"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// ErrUnsupportedDriver is returned for a driver without a migration dialect.
var ErrUnsupportedDriver = errors.New("unsupported database driver")

const usersTable = "users"

// optionalColumns are appended to an existing users table, in order.
var optionalColumns = []column{
	{name: "file_name", sqlType: "TEXT"},
	{name: "s3_key", sqlType: "TEXT"},
	{name: "s3_bucket", sqlType: "TEXT"},
	{name: "wordcount", sqlType: "INTEGER"},
}

type column struct {
	name    string
	sqlType string
}

// Migrate applies all pending migrations to db. driver is the database/sql
// driver name db was opened with.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	provider, err := newProvider(db, driver)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	log := logger.FromContext(ctx)
	for _, result := range results {
		log.Info().
			Str("func", "migrations.Migrate").
			Int64("version", result.Source.Version).
			Dur("duration", result.Duration).
			Msg("migration applied")
	}

	return nil
}

func newProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	dialect, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	inspector := columnInspectors[driver]

	migrations := []*goose.Migration{
		goose.NewGoMigration(1, &goose.GoFunc{RunTx: createUsersTable}, nil),
	}
	for i, col := range optionalColumns {
		migrations = append(migrations,
			goose.NewGoMigration(int64(i+2), &goose.GoFunc{RunTx: addColumnIfMissing(col, inspector)}, nil),
		)
	}
	migrations = append(migrations,
		goose.NewGoMigration(int64(len(optionalColumns)+2), &goose.GoFunc{RunTx: createUsernameIndex}, nil),
	)

	return goose.NewProvider(dialect, db, nil,
		goose.WithDisableGlobalRegistry(true),
		goose.WithGoMigrations(migrations...),
	)
}

var dialects = map[string]goose.Dialect{
	DriverSQLite:   goose.DialectSQLite3,
	DriverPostgres: goose.DialectPostgres,
}
