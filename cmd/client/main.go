package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-card-validator/internal/adapter"
	"github.com/MKhiriev/go-card-validator/internal/client"
	"github.com/MKhiriev/go-card-validator/internal/config"
	"github.com/MKhiriev/go-card-validator/internal/controller"
	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/internal/tui"
	"github.com/MKhiriev/go-card-validator/internal/workers"
	"github.com/MKhiriev/go-card-validator/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("card-validator-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("card-validator-client", cfg.App.LogFile)
	logger.SetLevel(cfg.App.LogLevel)

	validator, err := adapter.NewHTTPValidatorAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create validator adapter")
	}

	ctrl := controller.New(validator, log)
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ui, err := tui.New(context.Background(), ctrl, cfg.Client, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	healthCheck := workers.NewHealthCheckWorker(validator, cfg.Workers.HealthInterval, ui.ReportStatus, log)

	app, err := client.NewApp(ui, workers.NewWorkers(healthCheck), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
