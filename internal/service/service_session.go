// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/utils"
	"github.com/MKhiriev/go-user-profile/models"
	"github.com/redis/go-redis/v9"
)

// Session backends.
const (
	SessionBackendCookie = "cookie"
	SessionBackendRedis  = "redis"
)

// NewSessionService builds the SessionService selected by cfg.Backend.
func NewSessionService(ctx context.Context, cfg config.Session, logger *logger.Logger) (SessionService, error) {
	switch cfg.Backend {
	case SessionBackendCookie, "":
		signKey := cfg.SignKey
		if signKey == "" {
			var err error
			if signKey, err = randomKey(); err != nil {
				return nil, err
			}
			logger.Warn().
				Str("func", "NewSessionService").
				Msg("no session sign key configured; using an ephemeral key, sessions end on restart")
		}
		return NewJWTSessionService(signKey, cfg.Issuer, cfg.Duration, logger), nil

	case SessionBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			logger.Err(err).Str("func", "NewSessionService").Msg("error connecting redis")
			return nil, fmt.Errorf("error connecting redis: %w", err)
		}
		return NewRedisSessionService(client, cfg.Duration, logger), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSessionType, cfg.Backend)
	}
}

func randomKey() (string, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("error generating session sign key: %w", err)
	}

	return hex.EncodeToString(key), nil
}

// jwtSessionService keeps the whole session in a signed JWT stored in the
// cookie. Nothing is kept server side, so Close cannot revoke a token; the
// handler drops the cookie instead.
type jwtSessionService struct {
	signKey  string
	issuer   string
	duration time.Duration

	logger *logger.Logger
}

// NewJWTSessionService constructs a cookie-only SessionService.
func NewJWTSessionService(signKey, issuer string, duration time.Duration, logger *logger.Logger) SessionService {
	return &jwtSessionService{
		signKey:  signKey,
		issuer:   issuer,
		duration: duration,
		logger:   logger,
	}
}

func (s *jwtSessionService) Open(ctx context.Context, username string) (models.Session, error) {
	session, err := utils.GenerateJWTToken(s.issuer, username, s.duration, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*jwtSessionService.Open").Msg("error generating session token")
		return models.Session{}, fmt.Errorf("error opening session: %w", err)
	}

	return session, nil
}

func (s *jwtSessionService) Resolve(ctx context.Context, token string) (models.Session, error) {
	if token == "" {
		return models.Session{}, ErrSessionNotFound
	}

	session, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*jwtSessionService.Resolve").Msg("rejected session token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}

	return session, nil
}

func (s *jwtSessionService) Close(ctx context.Context, token string) error {
	return nil
}
