// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/store"
	"github.com/MKhiriev/go-user-profile/models"
)

type Services struct {
	AccountService AccountService
	SessionService SessionService
	AppInfoService AppInfoService
}

func NewServices(ctx context.Context, storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	sessions, err := NewSessionService(ctx, cfg.Session, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating session service: %w", err)
	}

	accounts := NewAccountValidationService().Wrap(
		NewAccountService(storages, cfg, logger),
	)

	return &Services{
		AccountService: accounts,
		SessionService: sessions,
		AppInfoService: NewAppInfoService(buildInfo, cfg.App, logger),
	}, nil
}
