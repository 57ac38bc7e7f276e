// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/service"
)

// ConnAcquirer hands out a store connection scoped to one request.
type ConnAcquirer interface {
	AcquireConn(ctx context.Context) (context.Context, func(), error)
}

type Handler struct {
	services *service.Services
	conns    ConnAcquirer
	views    *views

	session        config.Session
	maxUploadSize  int64
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. conns may be nil, in which case
// repositories run on the shared pool.
func NewHandler(services *service.Services, conns ConnAcquirer, cfg config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	v, err := newViews()
	if err != nil {
		return nil, fmt.Errorf("error loading views: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		conns:          conns,
		views:          v,
		session:        cfg.Session,
		maxUploadSize:  cfg.Server.MaxUploadSize,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}, nil
}
