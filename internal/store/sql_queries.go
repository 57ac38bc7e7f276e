// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-user-profile/models"
	sq "github.com/Masterminds/squirrel"
)

// userColumns lists the users table columns in schema order.
var userColumns = []string{
	"username",
	"password",
	"firstname",
	"lastname",
	"email",
	"file_name",
	"s3_key",
	"s3_bucket",
	"wordcount",
}

// buildFindUserByUsernameQuery selects the first record matching username.
func buildFindUserByUsernameQuery(ph sq.PlaceholderFormat, username string) (string, []any, error) {
	query, args, err := sq.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		Limit(1).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUsernameExistsQuery returns one row when username is taken and none
// otherwise.
func buildUsernameExistsQuery(ph sq.PlaceholderFormat, username string) (string, []any, error) {
	query, args, err := sq.
		Select("1").
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		Limit(1).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertUserQuery inserts every column of user. Nil upload fields are
// written as NULL.
func buildInsertUserQuery(ph sq.PlaceholderFormat, user models.User) (string, []any, error) {
	query, args, err := sq.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(
			user.Username,
			user.Password,
			user.FirstName,
			user.LastName,
			user.Email,
			user.FileName,
			user.S3Key,
			user.S3Bucket,
			user.WordCount,
		).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
