package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-card-validator/internal/app"
	"github.com/MKhiriev/go-card-validator/internal/service"
	"github.com/MKhiriev/go-card-validator/internal/store"
	"github.com/MKhiriev/go-card-validator/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	validators.ErrUnsupportedType:  http.StatusBadRequest,
	store.ErrInvalidLimit:          http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// clientMessages are sentinels whose text is safe to return to callers
// as is.
var clientMessages = []error{
	validators.ErrCardNumberRequired,
	validators.ErrInvalidLength,
	store.ErrInvalidLimit,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError builds the "error" field of a failed response.
// Unexpected failures are reported with the generic prefix.
func messageFromError(err error) string {
	for _, target := range clientMessages {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return fmt.Sprintf(app.MsgUnexpectedError, err.Error())
}
