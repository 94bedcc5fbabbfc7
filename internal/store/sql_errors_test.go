package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "wrapped deadlock", err: fmt.Errorf("insert: %w", pgError(pgerrcode.DeadlockDetected)), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "undefined table", err: pgError(pgerrcode.UndefinedTable), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non_retryable", NonRetryable.String())
}
