package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-card-validator/internal/config"
	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistoryRepo(t *testing.T, driver string) (*historyRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	var classifier ErrorClassificator = NewPostgresErrorClassifier()
	if driver == config.DriverSQLite {
		classifier = NewSQLiteErrorClassifier()
	}

	l := logger.Nop()
	repo := &historyRepository{
		db:     &DB{DB: db, driver: driver, errorClassificator: classifier, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func sampleRecord() models.ValidationRecord {
	return models.ValidationRecord{
		ID:          "0190a6e2-7c3b-7000-8000-000000000001",
		Fingerprint: "ab12",
		BIN:         "411111",
		LastFour:    "1111",
		Type:        "Visa",
		Length:      16,
		IsValid:     true,
		TraceID:     "trace-1",
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// ─────────────────────────────────────────────
// Save
// ─────────────────────────────────────────────

func TestHistorySave_PostgresPlaceholders(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t, config.DriverPostgres)
	defer db.Close()

	rec := sampleRecord()
	mock.ExpectExec(`INSERT INTO validations \(id,fingerprint,bin,last_four,card_type,length,is_valid,trace_id,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8,\$9\)`).
		WithArgs(rec.ID, rec.Fingerprint, rec.BIN, rec.LastFour, rec.Type, rec.Length, rec.IsValid, rec.TraceID, rec.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistorySave_SQLitePlaceholders(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t, config.DriverSQLite)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO validations .* VALUES \(\?,\?,\?,\?,\?,\?,\?,\?,\?\)`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), sampleRecord()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistorySave_NoRowsAffected(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t, config.DriverPostgres)
	defer db.Close()

	mock.ExpectExec("INSERT INTO validations").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), sampleRecord())
	assert.ErrorIs(t, err, ErrHistoryNotSaved)
}

func TestHistorySave_NonRetryableError(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t, config.DriverPostgres)
	defer db.Close()

	mock.ExpectExec("INSERT INTO validations").WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.Save(context.Background(), sampleRecord())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistorySave_RetriesRetryableError(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t, config.DriverPostgres)
	defer db.Close()

	mock.ExpectExec("INSERT INTO validations").WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectExec("INSERT INTO validations").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), sampleRecord()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistorySave_GivesUpAfterRetries(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t, config.DriverPostgres)
	defer db.Close()

	for range len(retryDelays) + 1 {
		mock.ExpectExec("INSERT INTO validations").WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	err := repo.Save(context.Background(), sampleRecord())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistorySave_ContextCancelledDuringBackoff(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t, config.DriverPostgres)
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	mock.ExpectExec("INSERT INTO validations").
		WillReturnError(pgError(pgerrcode.SerializationFailure)).
		WillDelayFor(0)
	cancel()

	err := repo.Save(ctx, sampleRecord())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled) || errors.Is(err, ErrExecutingStatement))
}

// ─────────────────────────────────────────────
// Recent
// ─────────────────────────────────────────────

func TestHistoryRecent_Success(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t, config.DriverPostgres)
	defer db.Close()

	rec := sampleRecord()
	older := rec
	older.ID = "0190a6e2-7c3b-7000-8000-000000000000"
	older.IsValid = false
	older.CreatedAt = rec.CreatedAt.Add(-time.Minute)

	rows := sqlmock.NewRows(historyColumns).
		AddRow(rec.ID, rec.Fingerprint, rec.BIN, rec.LastFour, rec.Type, rec.Length, rec.IsValid, rec.TraceID, rec.CreatedAt).
		AddRow(older.ID, older.Fingerprint, older.BIN, older.LastFour, older.Type, older.Length, older.IsValid, older.TraceID, older.CreatedAt)

	mock.ExpectQuery(`SELECT .* FROM validations ORDER BY created_at DESC, id DESC LIMIT 2`).WillReturnRows(rows)

	got, err := repo.Recent(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []models.ValidationRecord{rec, older}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRecent_Empty(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t, config.DriverSQLite)
	defer db.Close()

	mock.ExpectQuery("SELECT .* FROM validations").WillReturnRows(sqlmock.NewRows(historyColumns))

	got, err := repo.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHistoryRecent_InvalidLimit(t *testing.T) {
	repo, _, db := newTestHistoryRepo(t, config.DriverPostgres)
	defer db.Close()

	_, err := repo.Recent(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestHistoryRecent_QueryError(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t, config.DriverPostgres)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("db down"))

	_, err := repo.Recent(context.Background(), 5)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestHistoryRecent_ScanError(t *testing.T) {
	repo, mock, db := newTestHistoryRepo(t, config.DriverPostgres)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow("only-one-column")
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	_, err := repo.Recent(context.Background(), 5)
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ─────────────────────────────────────────────
// no-op repository
// ─────────────────────────────────────────────

func TestNoopHistoryRepository(t *testing.T) {
	repo := NewNoopHistoryRepository()

	require.NoError(t, repo.Save(context.Background(), sampleRecord()))

	got, err := repo.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = repo.Recent(context.Background(), -1)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}
