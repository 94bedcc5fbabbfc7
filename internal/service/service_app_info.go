package service

import (
	"context"

	"github.com/MKhiriev/go-card-validator/internal/config"
	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/models"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version, falling back to the version
// embedded at build time.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Stringer("build", build).Msg("app info service created")
	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
