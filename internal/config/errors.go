package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates that no listener is configured or
	// the request timeout is not positive.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing validator address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an unsupported database driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero health interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidClientConfigs indicates invalid presentation settings
	// (for example, a non-positive input limit).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
