package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-card-validator/internal/config"
	"github.com/MKhiriev/go-card-validator/internal/logger"
)

// NewConnectSQLite opens the SQLite database at cfg.DSN, creating the file
// first when it does not exist.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := touchDBFile(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, err
	}

	return openDB(ctx, config.DriverSQLite, cfg.DSN, func(conn *sql.DB) {
		// one writer at a time
		conn.SetMaxOpenConns(1)
	}, NewSQLiteErrorClassifier(), log)
}

// touchDBFile creates path unless it is an in-memory or URI DSN.
func touchDBFile(path string) error {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}

	_, err := os.Stat(path)
	if !errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("error creating DB file: %w", err)
	}
	return f.Close()
}
