// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the external card
// validator service.
//
// The primary abstraction is [ValidatorAdapter], which decouples the
// validation controller from HTTP. The package ships a REST implementation
// built on resty ([NewHTTPValidatorAdapter]).
//
// A completed HTTP exchange is never an error, whatever its status code: it
// is reported as a [models.ValidatorReply] so the caller can tell a rejected
// request from a transport failure. Errors are returned only when no usable
// response arrived; they wrap [ErrTransport] or [ErrMalformedResponse].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-card-validator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_adapter_mock.go -package=mock

// ValidatorAdapter defines communication with the validator service.
type ValidatorAdapter interface {
	// Validate posts cardNumber to the validator and returns its reply.
	// The number is sent exactly as given; normalization is the service's
	// job.
	Validate(ctx context.Context, cardNumber string) (models.ValidatorReply, error)

	// Health queries the service health endpoint. It returns an error
	// unless the service answered 2xx with status "healthy".
	Health(ctx context.Context) (models.HealthResponse, error)
}
