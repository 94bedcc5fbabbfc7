package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/internal/metrics"
	"github.com/MKhiriev/go-card-validator/internal/mock"
	"github.com/MKhiriev/go-card-validator/internal/utils"
	"github.com/MKhiriev/go-card-validator/internal/validators"
	"github.com/MKhiriev/go-card-validator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

func newTestCardService(t *testing.T) (*cardService, *mock.MockHistoryRepository, *mock.MockFingerprinter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	history := mock.NewMockHistoryRepository(ctrl)
	fingerprinter := mock.NewMockFingerprinter(ctrl)

	svc := NewCardService(history, fingerprinter, metrics.NewMetrics(), logger.Nop()).(*cardService)
	svc.now = func() time.Time { return fixedNow }
	return svc, history, fingerprinter
}

func TestCardService_Validate_Success(t *testing.T) {
	svc, history, fingerprinter := newTestCardService(t)
	ctx := utils.WithTraceID(context.Background(), "trace-42")

	fingerprinter.EXPECT().Fingerprint("4111111111111111").Return("fp")
	history.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec models.ValidationRecord) error {
			assert.NotEmpty(t, rec.ID)
			assert.Equal(t, "fp", rec.Fingerprint)
			assert.Equal(t, "411111", rec.BIN)
			assert.Equal(t, "1111", rec.LastFour)
			assert.Equal(t, "Visa", rec.Type)
			assert.Equal(t, 16, rec.Length)
			assert.True(t, rec.IsValid)
			assert.Equal(t, "trace-42", rec.TraceID)
			assert.Equal(t, fixedNow, rec.CreatedAt)
			return nil
		})

	resp, err := svc.Validate(ctx, models.ValidateRequest{CardNumber: "4111 1111 1111 1111"})
	require.NoError(t, err)
	assert.Equal(t, models.ValidateResponse{
		IsValid:   true,
		Type:      "Visa",
		Length:    16,
		BIN:       "411111",
		LastFour:  "1111",
		Timestamp: "2026-05-06T07:08:09Z",
	}, resp)
}

func TestCardService_Validate_LuhnFailureIsNotAnError(t *testing.T) {
	svc, history, fingerprinter := newTestCardService(t)

	fingerprinter.EXPECT().Fingerprint(gomock.Any()).Return("fp")
	history.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := svc.Validate(context.Background(), models.ValidateRequest{CardNumber: "4111-1111-1111-1112"})
	require.NoError(t, err)
	assert.False(t, resp.IsValid)
	assert.Equal(t, "Visa", resp.Type)
}

func TestCardService_Validate_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		number  string
		wantErr error
	}{
		{name: "missing", number: "", wantErr: validators.ErrCardNumberRequired},
		{name: "too short", number: "4111 1111 1111", wantErr: validators.ErrInvalidLength},
		{name: "too long", number: "41111111111111111111", wantErr: validators.ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no history or fingerprint calls are expected
			svc, _, _ := newTestCardService(t)

			_, err := svc.Validate(context.Background(), models.ValidateRequest{CardNumber: tt.number})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCardService_Validate_HistoryFailureDoesNotFailValidation(t *testing.T) {
	svc, history, fingerprinter := newTestCardService(t)

	fingerprinter.EXPECT().Fingerprint(gomock.Any()).Return("fp")
	history.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	resp, err := svc.Validate(context.Background(), models.ValidateRequest{CardNumber: "5500000000000004"})
	require.NoError(t, err)
	assert.True(t, resp.IsValid)
	assert.Equal(t, "MasterCard", resp.Type)
}

func TestCardService_History_Limits(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default", limit: 0, wantLimit: DefaultHistoryLimit},
		{name: "negative", limit: -5, wantLimit: DefaultHistoryLimit},
		{name: "explicit", limit: 7, wantLimit: 7},
		{name: "capped", limit: 1000, wantLimit: MaxHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, history, _ := newTestCardService(t)
			records := []models.ValidationRecord{{ID: "a"}}
			history.EXPECT().Recent(gomock.Any(), tt.wantLimit).Return(records, nil)

			got, err := svc.History(context.Background(), tt.limit)
			require.NoError(t, err)
			assert.Equal(t, records, got)
		})
	}
}

func TestCardService_History_Error(t *testing.T) {
	svc, history, _ := newTestCardService(t)
	dbErr := errors.New("db down")
	history.EXPECT().Recent(gomock.Any(), DefaultHistoryLimit).Return(nil, dbErr)

	_, err := svc.History(context.Background(), 0)
	assert.ErrorIs(t, err, dbErr)
}
