package service

import (
	"context"

	"github.com/MKhiriev/go-card-validator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CardService validates card numbers and exposes the masked history of
// past validations.
type CardService interface {
	// Validate normalizes the requested number, rejects it when it is
	// missing or has the wrong length, and otherwise reports the issuer and
	// Luhn verdict. A rejected request yields an error wrapping
	// ErrInvalidDataProvided and the validators sentinel describing why.
	Validate(ctx context.Context, req models.ValidateRequest) (models.ValidateResponse, error)

	// History returns up to limit recent records, most recent first. A
	// non-positive limit selects DefaultHistoryLimit; larger values are
	// capped at MaxHistoryLimit.
	History(ctx context.Context, limit int) ([]models.ValidationRecord, error)
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
