// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-profile/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildFindUserByUsernameQuery(t *testing.T) {
	tests := []struct {
		name        string
		ph          sq.PlaceholderFormat
		placeholder string
	}{
		{"sqlite", sq.Question, "username = ?"},
		{"postgres", sq.Dollar, "username = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindUserByUsernameQuery(tt.ph, "alice")
			require.NoError(t, err)

			assert.Equal(t, []any{"alice"}, args)
			assert.Contains(t, query, tt.placeholder)
			assert.Contains(t, query, "FROM users")
			assert.Contains(t, query, "LIMIT 1")
			for _, col := range userColumns {
				assert.Contains(t, query, col)
			}
		})
	}
}

func Test_buildUsernameExistsQuery(t *testing.T) {
	query, args, err := buildUsernameExistsQuery(sq.Dollar, "bob")
	require.NoError(t, err)

	assert.Equal(t, "SELECT 1 FROM users WHERE username = $1 LIMIT 1", query)
	assert.Equal(t, []any{"bob"}, args)
}

func Test_buildInsertUserQuery(t *testing.T) {
	fileName, key, bucket := "notes.txt", "uploads/bob/notes.txt", "profiles"
	words := int64(3)

	user := models.User{
		Username:  "bob",
		Password:  "hash",
		FirstName: "Bob",
		LastName:  "B",
		Email:     "b@x.com",
		FileName:  &fileName,
		S3Key:     &key,
		S3Bucket:  &bucket,
		WordCount: &words,
	}

	query, args, err := buildInsertUserQuery(sq.Question, user)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO users (username,password,firstname,lastname,email,file_name,s3_key,s3_bucket,wordcount)"))
	assert.Equal(t, 9, strings.Count(query, "?"))
	require.Len(t, args, 9)
	assert.Equal(t, "bob", args[0])
	assert.Equal(t, &words, args[8])
}

func Test_buildInsertUserQuery_WithoutUpload(t *testing.T) {
	query, args, err := buildInsertUserQuery(sq.Dollar, models.User{Username: "alice"})
	require.NoError(t, err)

	assert.Contains(t, query, "$9")
	require.Len(t, args, 9)
	assert.Nil(t, args[5].(*string))
	assert.Nil(t, args[8].(*int64))
}
