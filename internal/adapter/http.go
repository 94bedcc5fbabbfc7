package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-card-validator/internal/config"
	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/internal/utils"
	"github.com/MKhiriev/go-card-validator/models"
)

const (
	validatePath = "/api/validate"
	healthPath   = "/api/health"
)

type httpValidatorAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPValidatorAdapter constructs an HTTP/REST implementation of
// [ValidatorAdapter]. It normalises the base URL from cfg.HTTPAddress
// (adding "http://" when no scheme is given) and applies cfg.RequestTimeout
// to every call.
func NewHTTPValidatorAdapter(cfg config.Adapter, logger *logger.Logger) (ValidatorAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Dur("timeout", cfg.RequestTimeout).Msg("validator adapter created")

	return &httpValidatorAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Validate implements [ValidatorAdapter]. It POSTs {"cardNumber": ...} to
// /api/validate.
func (h *httpValidatorAdapter) Validate(ctx context.Context, cardNumber string) (models.ValidatorReply, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ValidateRequest{CardNumber: cardNumber}).
		Post(validatePath)
	if err != nil {
		h.logger.Err(err).Msg("validate request failed")
		return models.ValidatorReply{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	reply := models.ValidatorReply{
		OK:         resp.IsSuccess(),
		StatusCode: resp.StatusCode(),
	}

	if !reply.OK {
		reply.Error = errorMessageFromBody(resp)
		h.logger.Debug().Int("status", reply.StatusCode).Str("error", reply.Error).Msg("validate request rejected")
		return reply, nil
	}

	if err = json.Unmarshal(resp.Body(), &reply.Result); err != nil {
		h.logger.Err(err).Int("status", reply.StatusCode).Msg("decode validate response")
		return models.ValidatorReply{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	h.logger.Debug().
		Bool("is_valid", reply.Result.IsValid).
		Str("type", reply.Result.Type).
		Msg("validate request completed")

	return reply, nil
}

// Health implements [ValidatorAdapter]. It GETs /api/health.
func (h *httpValidatorAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(healthPath)
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	if err = mapHealthError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	var health models.HealthResponse
	if err = json.Unmarshal(resp.Body(), &health); err != nil {
		return models.HealthResponse{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if health.Status != models.HealthStatusHealthy {
		return health, fmt.Errorf("%w: status %q", ErrUnhealthy, health.Status)
	}

	return health, nil
}
