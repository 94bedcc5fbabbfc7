package store

import (
	"context"

	"github.com/MKhiriev/go-card-validator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/history_repository_mock.go -package=mock

// HistoryRepository persists masked validation outcomes.
type HistoryRepository interface {
	// Save stores one record. record.ID and record.CreatedAt must be set.
	Save(ctx context.Context, record models.ValidationRecord) error

	// Recent returns at most limit records, most recent first.
	Recent(ctx context.Context, limit int) ([]models.ValidationRecord, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
