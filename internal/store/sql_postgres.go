package store

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-card-validator/internal/config"
	"github.com/MKhiriev/go-card-validator/internal/logger"
)

const (
	postgresMaxOpenConns = 10
	postgresMaxIdleConns = 4
)

// NewConnectPostgres opens cfg.DSN with the pgx stdlib driver.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	return openDB(ctx, config.DriverPostgres, cfg.DSN, func(conn *sql.DB) {
		conn.SetMaxOpenConns(postgresMaxOpenConns)
		conn.SetMaxIdleConns(postgresMaxIdleConns)
	}, NewPostgresErrorClassifier(), log)
}
