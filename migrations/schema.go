// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-user-profile/internal/logger"
)

// columnInspector lists the column names of table.
type columnInspector func(ctx context.Context, tx *sql.Tx, table string) (map[string]struct{}, error)

var columnInspectors = map[string]columnInspector{
	DriverSQLite:   sqliteColumns,
	DriverPostgres: postgresColumns,
}

func createUsersTable(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS users (
		username TEXT,
		password TEXT,
		firstname TEXT,
		lastname TEXT,
		email TEXT,
		file_name TEXT,
		s3_key TEXT,
		s3_bucket TEXT,
		wordcount INTEGER
	)`)
	if err != nil {
		return fmt.Errorf("error creating users table: %w", err)
	}

	return nil
}

func addColumnIfMissing(col column, inspect columnInspector) func(ctx context.Context, tx *sql.Tx) error {
	return func(ctx context.Context, tx *sql.Tx) error {
		existing, err := inspect(ctx, tx, usersTable)
		if err != nil {
			return err
		}

		if _, ok := existing[col.name]; ok {
			return nil
		}

		// identifiers come from optionalColumns, never from input
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", usersTable, col.name, col.sqlType)
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("error adding column %s: %w", col.name, err)
		}

		logger.FromContext(ctx).Info().
			Str("func", "migrations.addColumnIfMissing").
			Str("column", col.name).
			Msg("added missing column to users table")

		return nil
	}
}

// createUsernameIndex enforces username uniqueness. Tables that already hold
// duplicate usernames keep working without the index; the duplicates are
// reported and must be resolved by hand.
func createUsernameIndex(ctx context.Context, tx *sql.Tx) error {
	var duplicate string
	err := tx.QueryRowContext(ctx,
		`SELECT username FROM users GROUP BY username HAVING COUNT(*) > 1 LIMIT 1`,
	).Scan(&duplicate)
	switch {
	case err == nil:
		logger.FromContext(ctx).Warn().
			Str("func", "migrations.createUsernameIndex").
			Str("username", duplicate).
			Msg("users table holds duplicate usernames; unique index not created")
		return nil
	case err != sql.ErrNoRows:
		return fmt.Errorf("error checking duplicate usernames: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS users_username_idx ON users (username)`,
	); err != nil {
		return fmt.Errorf("error creating username index: %w", err)
	}

	return nil
}

func sqliteColumns(ctx context.Context, tx *sql.Tx, table string) (map[string]struct{}, error) {
	rows, err := tx.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("error reading table info: %w", err)
	}
	defer rows.Close()

	columns := make(map[string]struct{})
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err = rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("error scanning table info: %w", err)
		}
		columns[name] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading table info: %w", err)
	}

	return columns, nil
}

func postgresColumns(ctx context.Context, tx *sql.Tx, table string) (map[string]struct{}, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT column_name FROM information_schema.columns
		 WHERE table_schema = current_schema() AND table_name = $1`,
		table,
	)
	if err != nil {
		return nil, fmt.Errorf("error reading table columns: %w", err)
	}
	defer rows.Close()

	columns := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning table columns: %w", err)
		}
		columns[name] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading table columns: %w", err)
	}

	return columns, nil
}
