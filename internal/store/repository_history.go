// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/models"
)

var historyColumns = []string{
	"id",
	"fingerprint",
	"bin",
	"last_four",
	"card_type",
	"length",
	"is_valid",
	"trace_id",
	"created_at",
}

// retryDelays are the pauses between attempts of a retryable write.
var retryDelays = []time.Duration{100 * time.Millisecond, 300 * time.Millisecond}

// historyRepository is the SQL implementation of [HistoryRepository]. It
// works with both PostgreSQL and SQLite; the only difference is the
// placeholder style supplied by [DB.builder].
type historyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewHistoryRepository constructs a [HistoryRepository] backed by db.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

// Save implements [HistoryRepository]. Errors the driver classifies as
// retryable are retried with the pauses in retryDelays.
func (r *historyRepository) Save(ctx context.Context, record models.ValidationRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(record.TableName()).
		Columns(historyColumns...).
		Values(
			record.ID,
			record.Fingerprint,
			record.BIN,
			record.LastFour,
			record.Type,
			record.Length,
			record.IsValid,
			record.TraceID,
			record.CreatedAt.UTC(),
		).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.Save").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 0; ; attempt++ {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr == nil {
			affected, err := res.RowsAffected()
			if err == nil && affected == 0 {
				return ErrHistoryNotSaved
			}
			return nil
		}

		if attempt >= len(retryDelays) || r.db.classify(execErr) != Retryable {
			log.Err(execErr).Str("func", "*historyRepository.Save").Int("attempt", attempt+1).Msg("error saving validation record")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		log.Warn().Err(execErr).Int("attempt", attempt+1).Msg("retryable error saving validation record")
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrExecutingStatement, ctx.Err())
		case <-time.After(retryDelays[attempt]):
		}
	}
}

// Recent implements [HistoryRepository].
func (r *historyRepository) Recent(ctx context.Context, limit int) ([]models.ValidationRecord, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	query, args, err := r.db.builder().
		Select(historyColumns...).
		From(models.ValidationRecord{}.TableName()).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.Recent").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.Recent").Msg("error querying validation records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.ValidationRecord, 0, limit)
	for rows.Next() {
		var rec models.ValidationRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Fingerprint,
			&rec.BIN,
			&rec.LastFour,
			&rec.Type,
			&rec.Length,
			&rec.IsValid,
			&rec.TraceID,
			&rec.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*historyRepository.Recent").Msg("error scanning validation record")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
