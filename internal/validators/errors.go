package validators

import (
	"errors"

	"github.com/MKhiriev/go-card-validator/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrCardNumberRequired = errors.New(app.MsgCardNumberRequired)
	ErrInvalidLength      = errors.New(app.MsgInvalidCardLength)
)
