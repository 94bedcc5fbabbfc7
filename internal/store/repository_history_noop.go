package store

import (
	"context"

	"github.com/MKhiriev/go-card-validator/models"
)

// noopHistoryRepository is used when no history database is configured.
type noopHistoryRepository struct{}

// NewNoopHistoryRepository returns a [HistoryRepository] that drops every
// record and always reports an empty history.
func NewNoopHistoryRepository() HistoryRepository {
	return noopHistoryRepository{}
}

func (noopHistoryRepository) Save(context.Context, models.ValidationRecord) error {
	return nil
}

func (noopHistoryRepository) Recent(_ context.Context, limit int) ([]models.ValidationRecord, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	return []models.ValidationRecord{}, nil
}
