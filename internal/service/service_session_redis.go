// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/utils"
	"github.com/MKhiriev/go-user-profile/models"
	"github.com/redis/go-redis/v9"
)

const redisSessionKeyPrefix = "session:"

// redisClient is the subset of *redis.Client the session store uses.
type redisClient interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// redisSessionService keeps an opaque id in the cookie and maps it to the
// username in Redis. Entries expire with the session; Close deletes them,
// so sign-out revokes the session everywhere.
type redisSessionService struct {
	client   redisClient
	duration time.Duration
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewRedisSessionService constructs a Redis backed SessionService.
func NewRedisSessionService(client redisClient, duration time.Duration, logger *logger.Logger) SessionService {
	return &redisSessionService{
		client:   client,
		duration: duration,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

func (s *redisSessionService) Open(ctx context.Context, username string) (models.Session, error) {
	token := s.ids.Generate()
	expiresAt := time.Now().Add(s.duration)

	if err := s.client.Set(ctx, redisSessionKeyPrefix+token, username, s.duration).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionService.Open").Msg("error storing session")
		return models.Session{}, fmt.Errorf("error opening session: %w", err)
	}

	return models.Session{Token: token, Username: username, ExpiresAt: expiresAt}, nil
}

func (s *redisSessionService) Resolve(ctx context.Context, token string) (models.Session, error) {
	if token == "" {
		return models.Session{}, ErrSessionNotFound
	}

	username, err := s.client.Get(ctx, redisSessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionService.Resolve").Msg("error reading session")
		return models.Session{}, fmt.Errorf("error resolving session: %w", err)
	}

	return models.Session{Token: token, Username: username}, nil
}

func (s *redisSessionService) Close(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.client.Del(ctx, redisSessionKeyPrefix+token).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionService.Close").Msg("error deleting session")
		return fmt.Errorf("error closing session: %w", err)
	}

	return nil
}
