// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"fmt"

	"github.com/MKhiriev/go-user-profile/internal/config"
	"github.com/MKhiriev/go-user-profile/internal/handler/http"
	"github.com/MKhiriev/go-user-profile/internal/logger"
	"github.com/MKhiriev/go-user-profile/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds every transport handler enabled in cfg. conns scopes
// store connections to a request and may be nil.
func NewHandlers(services *service.Services, conns http.ConnAcquirer, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		h, err := http.NewHandler(services, conns, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating http handler: %w", err)
		}
		handlers.HTTP = h
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
