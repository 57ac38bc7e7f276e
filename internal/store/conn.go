// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type connCtxKey struct{}

// queryer is satisfied by both the pool and a dedicated connection.
type queryer interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

// AcquireConn takes a dedicated connection from the pool and returns a
// context carrying it. Repository calls made with the returned context run
// on that connection. release must be called exactly once when the request
// is done; it returns the connection to the pool.
func (db *DB) AcquireConn(ctx context.Context) (context.Context, func(), error) {
	conn, err := db.Connx(ctx)
	if err != nil {
		return ctx, func() {}, fmt.Errorf("%w: %w", ErrAcquiringConn, err)
	}

	release := func() {
		if err := conn.Close(); err != nil {
			db.logger.Err(err).Str("func", "*DB.AcquireConn").Msg("error releasing connection")
		}
	}

	return context.WithValue(ctx, connCtxKey{}, conn), release, nil
}

// queryer returns the connection attached to ctx by AcquireConn, or the pool.
func (db *DB) queryer(ctx context.Context) queryer {
	if conn, ok := ctx.Value(connCtxKey{}).(*sqlx.Conn); ok && conn != nil {
		return conn
	}

	return db.DB
}
