// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-creds-manager/internal/config"
	"github.com/MKhiriev/go-creds-manager/internal/handler"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/server"
	"github.com/MKhiriev/go-creds-manager/internal/service"
	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/internal/telemetry"
	"github.com/MKhiriev/go-creds-manager/internal/workers"
)

const serviceName = "creds-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	ctx := context.Background()
	log := logger.NewLogger(serviceName)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("auth", cfg.Auth.Strategy).Msg("received configs")

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, serviceName, cfg.App.Version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting up telemetry")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Err(err).Msg("error flushing traces")
		}
	}()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	wrks := workers.NewWorkers(log).Add("notifier", storages.Notifier)

	srv, err := server.NewServer(handlers, wrks, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
