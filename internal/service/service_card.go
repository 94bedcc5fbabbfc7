package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-card-validator/internal/crypto"
	"github.com/MKhiriev/go-card-validator/internal/formatter"
	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/internal/metrics"
	"github.com/MKhiriev/go-card-validator/internal/store"
	"github.com/MKhiriev/go-card-validator/internal/utils"
	"github.com/MKhiriev/go-card-validator/internal/validators"
	"github.com/MKhiriev/go-card-validator/models"
)

// History page sizes.
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

type cardService struct {
	validator     validators.Validator
	history       store.HistoryRepository
	fingerprinter crypto.Fingerprinter
	ids           *utils.UUIDGenerator
	metrics       *metrics.Metrics
	now           func() time.Time

	logger *logger.Logger
}

func NewCardService(
	history store.HistoryRepository,
	fingerprinter crypto.Fingerprinter,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) CardService {
	return &cardService{
		validator:     validators.NewCardNumberValidator(),
		history:       history,
		fingerprinter: fingerprinter,
		ids:           utils.NewUUIDGenerator(),
		metrics:       metrics,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *cardService) Validate(ctx context.Context, req models.ValidateRequest) (models.ValidateResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		s.metrics.RecordRejection()
		log.Debug().Err(err).Msg("card number rejected")
		return models.ValidateResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	digits := formatter.Normalize(req.CardNumber)
	at := s.now()
	resp := Details(digits, at)
	s.metrics.RecordValidation(resp.IsValid, resp.Type)

	traceID, _ := utils.GetTraceIDFromContext(ctx)
	record := models.ValidationRecord{
		ID:          s.ids.Generate(),
		Fingerprint: s.fingerprinter.Fingerprint(digits),
		BIN:         resp.BIN,
		LastFour:    resp.LastFour,
		Type:        resp.Type,
		Length:      resp.Length,
		IsValid:     resp.IsValid,
		TraceID:     traceID,
		CreatedAt:   at.UTC(),
	}

	// the verdict is returned even when the history write fails
	err := s.history.Save(ctx, record)
	s.metrics.RecordHistoryWrite(err)
	if err != nil {
		log.Warn().Err(err).Str("record_id", record.ID).Msg("failed to save validation history")
	}

	log.Info().
		Str("type", resp.Type).
		Int("length", resp.Length).
		Bool("is_valid", resp.IsValid).
		Str("last_four", resp.LastFour).
		Msg("card validated")

	return resp, nil
}

func (s *cardService) History(ctx context.Context, limit int) ([]models.ValidationRecord, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	records, err := s.history.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error reading validation history: %w", err)
	}
	return records, nil
}
