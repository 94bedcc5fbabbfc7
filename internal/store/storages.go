package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-card-validator/internal/config"
	"github.com/MKhiriev/go-card-validator/internal/logger"
)

// Storages bundles the repositories used by the service layer.
type Storages struct {
	HistoryRepository HistoryRepository

	db *DB
}

// NewStorages connects to the configured history database and applies
// migrations. An empty DSN yields a no-op history and no connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("no history database configured, validation history disabled")
		return &Storages{HistoryRepository: NewNoopHistoryRepository()}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting history database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating history database: %w", err)
	}

	return &Storages{
		HistoryRepository: NewHistoryRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
