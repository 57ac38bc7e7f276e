// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/store"
	"github.com/MKhiriev/go-user-profile/internal/utils"
	"github.com/MKhiriev/go-user-profile/models"
)

// accountService is the concrete implementation of AccountService.
type accountService struct {
	// userRepository persists and looks up accounts.
	userRepository store.UserRepository

	// objectStorage receives uploaded files and signs download links.
	objectStorage store.ObjectStorage

	// passwords hashes new passwords and verifies stored ones.
	passwords *utils.PasswordHasher

	// bucket, prefix and urlExpires come from the object storage config.
	bucket     string
	prefix     string
	urlExpires time.Duration

	logger *logger.Logger
}

// NewAccountService constructs an AccountService over the given storages.
func NewAccountService(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: storages.UserRepository,
		objectStorage:  storages.ObjectStorage,
		passwords:      utils.NewPasswordHasher(cfg.App.PasswordHashCost, cfg.App.PlaintextPasswords),
		bucket:         cfg.Storage.Objects.Bucket,
		prefix:         cfg.Storage.Objects.Prefix,
		urlExpires:     cfg.Storage.Objects.URLExpires,
		logger:         logger,
	}
}

// Register creates a new account.
//
// Steps, in order:
//  1. Password and confirmation must match, otherwise ErrPasswordsDoNotMatch.
//  2. With a file attached the bucket must be configured, otherwise
//     ErrBucketNotConfigured. The file name is sanitized, the content is read
//     in full and its words are counted, then the whole content is uploaded
//     under "{prefix}/{username}/{file_name}".
//  3. The username must be free, otherwise ErrUsernameAlreadyExists.
//  4. The record is inserted.
//
// The upload happens before the username check and nothing spans the upload
// and the insert, so a rejected registration can leave an orphaned object.
func (a *accountService) Register(ctx context.Context, reg models.Registration) error {
	log := logger.FromContext(ctx)
	reg = trimRegistration(reg)

	if reg.Password != reg.ConfirmPassword {
		return ErrPasswordsDoNotMatch
	}

	user := models.User{
		Username:  reg.Username,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Email:     reg.Email,
	}

	if reg.File != nil {
		if err := a.storeFile(ctx, &user, reg.File); err != nil {
			return err
		}
	}

	exists, err := a.userRepository.UsernameExists(ctx, user.Username)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Register").Msg("error checking username")
		return fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return ErrUsernameAlreadyExists
	}

	user.Password, err = a.passwords.Hash(reg.Password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return ErrPasswordTooLong
	}
	if err != nil {
		log.Err(err).Str("func", "*accountService.Register").Msg("error hashing password")
		return err
	}

	err = a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return ErrUsernameAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "*accountService.Register").Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*accountService.Register").Str("username", user.Username).Bool("file", user.FileName != nil).Msg("user registered")
	return nil
}

// storeFile counts the words of file, uploads it and records the upload on
// user.
func (a *accountService) storeFile(ctx context.Context, user *models.User, file *models.UploadedFile) error {
	log := logger.FromContext(ctx)

	if a.bucket == "" {
		return ErrBucketNotConfigured
	}

	fileName := utils.SanitizeFileName(file.Name)

	content, err := io.ReadAll(file.Content)
	if err != nil {
		log.Err(err).Str("func", "*accountService.storeFile").Msg("error reading uploaded file")
		return fmt.Errorf("%w: %w", ErrReadingUploadedFile, err)
	}
	wordCount := utils.CountWords(content)

	if _, err = file.Content.Seek(0, io.SeekStart); err != nil {
		log.Err(err).Str("func", "*accountService.storeFile").Msg("error rewinding uploaded file")
		return fmt.Errorf("%w: %w", ErrReadingUploadedFile, err)
	}

	key := store.ObjectKey(a.prefix, user.Username, fileName)
	if err = a.objectStorage.Upload(ctx, a.bucket, key, file.Content, int64(len(content)), file.ContentType); err != nil {
		return fmt.Errorf("%w: %w", ErrStoringUploadedFile, err)
	}

	bucket := a.bucket
	user.FileName = &fileName
	user.S3Key = &key
	user.S3Bucket = &bucket
	user.WordCount = &wordCount

	log.Debug().
		Str("func", "*accountService.storeFile").
		Str("key", key).
		Int64("wordcount", wordCount).
		Msg("uploaded file stored")
	return nil
}

// SignIn checks username and password. An unknown username and a wrong
// password both yield ErrInvalidCredentials.
func (a *accountService) SignIn(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "*accountService.SignIn").Str("username", username).Msg("unknown username")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*accountService.SignIn").Msg("error finding user")
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}

	if !a.passwords.Verify(user.Password, password) {
		log.Debug().Str("func", "*accountService.SignIn").Str("username", username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// Profile builds the profile view of username. The download link is only
// issued when both an object key and a bucket are recorded.
func (a *accountService) Profile(ctx context.Context, username string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Profile{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*accountService.Profile").Msg("error finding user")
		return models.Profile{}, fmt.Errorf("error finding user: %w", err)
	}

	profile := models.Profile{
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		WordCount: utils.FormatWordCount(user.WordCount),
	}

	if user.HasStoredObject() {
		profile.DownloadURL, err = a.objectStorage.PresignGet(ctx, *user.S3Bucket, *user.S3Key, a.urlExpires)
		if err != nil {
			return models.Profile{}, fmt.Errorf("%w: %w", ErrIssuingDownloadURL, err)
		}
	}

	return profile, nil
}

// trimRegistration strips surrounding whitespace from every field except
// the passwords.
func trimRegistration(reg models.Registration) models.Registration {
	reg.Username = strings.TrimSpace(reg.Username)
	reg.FirstName = strings.TrimSpace(reg.FirstName)
	reg.LastName = strings.TrimSpace(reg.LastName)
	reg.Email = strings.TrimSpace(reg.Email)

	return reg
}
