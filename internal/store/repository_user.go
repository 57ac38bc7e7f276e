// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/models"
	"github.com/jmoiron/sqlx"
)

// userRepository is the SQL implementation of [UserRepository]. It works
// against sqlite3 and PostgreSQL; queries are generated with the placeholder
// format of the connected driver.
//
// Every method runs on the connection attached to ctx by [DB.AcquireConn]
// when there is one, and on the pool otherwise.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByUsername returns the record stored for username.
//
// Error handling:
//   - no matching row → [ErrUserNotFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsernameQuery(r.db.placeholder, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error building query")
		return models.User{}, err
	}

	var user models.User
	err = sqlx.GetContext(ctx, r.db.queryer(ctx), &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.FindUserByUsername").
			Stringer("classification", r.db.classify(err)).
			Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UsernameExists reports whether username is taken.
func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUsernameExistsQuery(r.db.placeholder, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UsernameExists").Msg("error building query")
		return false, err
	}

	var one int
	err = r.db.queryer(ctx).QueryRowxContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UsernameExists").
			Stringer("classification", r.db.classify(err)).
			Msg("error checking username")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// CreateUser inserts user.
//
// Error handling:
//   - unique violation (sqlite3 or PostgreSQL 23505) → [ErrUsernameAlreadyExists].
//   - zero affected rows → [ErrUserNotSaved].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.placeholder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return err
	}

	result, err := r.db.queryer(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		classification := r.db.classify(err)
		if classification == UniqueViolation {
			return ErrUsernameAlreadyExists
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Stringer("classification", classification).
			Msg("error inserting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ErrUserNotSaved
	}

	log.Debug().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("user created")
	return nil
}
