// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks invariants shared by both binaries. Role-specific checks
// live on [ServerConfig] and [ClientConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN != "" {
		switch cfg.Storage.DB.ResolveDriver() {
		case DriverPostgres, DriverSQLite:
		default:
			return ErrInvalidStorageConfigs
		}
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.HealthInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Client.InputLimit <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
