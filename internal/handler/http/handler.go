// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/go-creds-manager/internal/config"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/service"
	"github.com/MKhiriev/go-creds-manager/internal/utils"
)

const tracerName = "github.com/MKhiriev/go-creds-manager/internal/handler/http"

type Handler struct {
	services *service.Services

	// hasher verifies HashSHA256 headers on writes; disabled without a key.
	hasher *utils.Hasher

	requestTimeout  time.Duration
	streamHeartbeat time.Duration

	tracer trace.Tracer
	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Str("func", "NewHandler").Msg("http handler created")
	return &Handler{
		services:        services,
		hasher:          utils.NewHasher(cfg.App.HashKey),
		requestTimeout:  cfg.Server.RequestTimeout,
		streamHeartbeat: cfg.Server.StreamHeartbeat,
		tracer:          otel.Tracer(tracerName),
		logger:          logger,
	}
}
