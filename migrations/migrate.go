// Package migrations embeds the history database schema and applies it
// with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Dialects accepted by Migrate.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

var ErrNilDB = errors.New("db is nil")

//go:embed *.sql
var embedMigrations embed.FS

// Migrate brings db up to the latest schema version using dialect.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return ErrNilDB
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
