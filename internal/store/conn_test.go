// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireConn_RepositoryUsesConn(t *testing.T) {
	repo, db := newSQLiteUserRepo(t)

	ctx, release, err := db.AcquireConn(context.Background())
	require.NoError(t, err)

	_, isConn := db.queryer(ctx).(*sqlx.Conn)
	assert.True(t, isConn)

	require.NoError(t, repo.CreateUser(ctx, models.User{Username: "alice", Password: "pw1"}))
	found, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)

	assert.Equal(t, 1, db.Stats().InUse)
	release()
	assert.Equal(t, 0, db.Stats().InUse)
}

func TestQueryer_FallsBackToPool(t *testing.T) {
	_, db := newSQLiteUserRepo(t)

	_, isDB := db.queryer(context.Background()).(*sqlx.DB)
	assert.True(t, isDB)
}

func TestAcquireConn_Error(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	db := &DB{DB: sqlx.NewDb(mockDB, "sqlmock"), logger: logger.Nop()}
	_ = mockDB.Close()

	ctx, release, err := db.AcquireConn(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAcquiringConn))
	assert.NotNil(t, release)
	release()
	assert.Nil(t, ctx.Value(connCtxKey{}))
}
