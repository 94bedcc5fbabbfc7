package service

import (
	"fmt"

	"github.com/MKhiriev/go-card-validator/internal/config"
	"github.com/MKhiriev/go-card-validator/internal/crypto"
	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/internal/metrics"
	"github.com/MKhiriev/go-card-validator/internal/store"
	"github.com/MKhiriev/go-card-validator/models"
)

type Services struct {
	CardService    CardService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, build models.AppBuildInfo, metrics *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		CardService:    NewCardService(storages.HistoryRepository, crypto.NewFingerprinter(cfg.App.HashKey), metrics, logger),
		AppInfoService: appInfo,
	}, nil
}
