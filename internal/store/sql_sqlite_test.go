// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnectSQLite_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.db")

	db, err := NewConnectSQLite(context.Background(), config.DB{Driver: "sqlite3", DSN: path}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, "sqlite3", db.Driver())
	assert.Equal(t, sq.Question, db.placeholder)
	assert.IsType(t, &SQLiteErrorClassifier{}, db.errorClassificator)
}

func TestNewConnectSQLite_BadDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "users.db")

	_, err := NewConnectSQLite(context.Background(), config.DB{Driver: "sqlite3", DSN: path}, logger.Nop())
	assert.Error(t, err)
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql", DSN: "x"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"users.db", "users.db?_busy_timeout=5000"},
		{"file:users.db?cache=shared", "file:users.db?cache=shared&_busy_timeout=5000"},
		{"users.db?_busy_timeout=100", "users.db?_busy_timeout=100"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sqliteDSN(tt.in))
	}
}

func TestSQLiteFilePath(t *testing.T) {
	assert.Equal(t, "users.db", sqliteFilePath("users.db"))
	assert.Equal(t, "/data/users.db", sqliteFilePath("file:/data/users.db?cache=shared"))
}

func TestDB_Migrate(t *testing.T) {
	ctx := context.Background()
	db, err := NewConnectSQLite(ctx, config.DB{Driver: "sqlite3", DSN: filepath.Join(t.TempDir(), "users.db")}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Migrate(ctx))
	require.NoError(t, db.Migrate(ctx))

	var n int
	require.NoError(t, db.GetContext(ctx, &n, "SELECT COUNT(*) FROM users"))
	assert.Equal(t, 0, n)
}
