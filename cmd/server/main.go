package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-card-validator/internal/config"
	"github.com/MKhiriev/go-card-validator/internal/handler"
	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/internal/metrics"
	"github.com/MKhiriev/go-card-validator/internal/server"
	"github.com/MKhiriev/go-card-validator/internal/service"
	"github.com/MKhiriev/go-card-validator/internal/store"
	"github.com/MKhiriev/go-card-validator/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("card-validator-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Bool("history", cfg.Storage.DB.DSN != "").
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	m := metrics.NewMetrics()
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	services, err := service.NewServices(storages, *cfg, build, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
