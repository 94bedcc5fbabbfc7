package store

import (
	"errors"

	"github.com/MKhiriev/go-card-validator/internal/app"
)

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrHistoryNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrHistoryNotSaved = errors.New("validation record was not saved")

	// ErrInvalidLimit is returned by Recent for a non-positive limit.
	ErrInvalidLimit = errors.New(app.MsgLimitNotPositive)

	// ErrUnsupportedDriver is returned by NewConnect for a driver other
	// than pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan validation rows")
)
