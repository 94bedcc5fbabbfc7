package config

import (
	"fmt"
)

// ServerConfig is the validator service view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Server  Server
	Storage Storage
}

// ClientConfig is the terminal client view of [StructuredConfig].
type ClientConfig struct {
	App     App
	Adapter Adapter
	Workers Workers
	Client  Client
}

// GetServerConfig builds and validates the server view of the merged
// configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}

	if err := serverCfg.validate(); err != nil {
		return nil, err
	}
	return serverCfg, nil
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Workers: cfg.Workers,
		Client:  cfg.Client,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
