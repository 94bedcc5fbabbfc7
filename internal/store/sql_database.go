package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-card-validator/internal/config"
	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/migrations"
)

// DB is an open history database together with its driver specifics.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database described by cfg, choosing the driver with
// [config.DB.ResolveDriver].
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch driver := cfg.ResolveDriver(); driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// Migrate applies the embedded schema migrations for the driver's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect())
}

func (db *DB) dialect() string {
	if db.driver == config.DriverSQLite {
		return migrations.DialectSQLite
	}
	return migrations.DialectPostgres
}

// builder returns a squirrel statement builder using the placeholder style
// of the driver.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == config.DriverSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// openDB opens driver/dsn, applies tune and pings the database. The
// connection is closed again when the ping fails.
func openDB(ctx context.Context, driver, dsn string, tune func(*sql.DB), classifier ErrorClassificator, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("driver", driver).Msg("error opening database")
		return nil, fmt.Errorf("error opening %s database: %w", driver, err)
	}
	if tune != nil {
		tune(conn)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", driver).Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error pinging %s database: %w", driver, err)
	}
	log.Info().Str("driver", driver).Msg("connected to history database")

	return &DB{
		DB:                 conn,
		driver:             driver,
		errorClassificator: classifier,
		logger:             log,
	}, nil
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
