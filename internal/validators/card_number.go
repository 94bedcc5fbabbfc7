package validators

import (
	"context"

	"github.com/MKhiriev/go-card-validator/internal/formatter"
	"github.com/MKhiriev/go-card-validator/models"
)

const (
	FieldCardNumber = "card_number"
	FieldLength     = "length"
)

// Accepted PAN lengths, in digits.
const (
	MinCardNumberLength = 13
	MaxCardNumberLength = 19
)

// CardNumberValidator checks validation requests before they reach the
// card service. The error texts are returned to API callers verbatim.
type CardNumberValidator struct {
}

func NewCardNumberValidator() Validator {
	return &CardNumberValidator{}
}

func (v *CardNumberValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ValidateRequest:
		return v.validateRequest(ctx, value, fields...)
	case *models.ValidateRequest:
		if value == nil {
			return ErrCardNumberRequired
		}
		return v.validateRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CardNumberValidator) validateRequest(ctx context.Context, request models.ValidateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCardNumber, FieldLength}
	}

	for _, f := range fields {
		switch f {
		case FieldCardNumber:
			if request.CardNumber == "" {
				return ErrCardNumberRequired
			}
		case FieldLength:
			n := len(formatter.Normalize(request.CardNumber))
			if n < MinCardNumberLength || n > MaxCardNumberLength {
				return ErrInvalidLength
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
