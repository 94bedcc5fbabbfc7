package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-card-validator/models"
	"github.com/go-resty/resty/v2"
)

// errorMessageFromBody extracts the "error" field of a non-2xx body. Bodies
// that are not JSON objects yield an empty message; the caller decides on a
// default.
func errorMessageFromBody(resp *resty.Response) string {
	body := resp.Body()
	if len(body) == 0 {
		return ""
	}

	var errBody models.ErrorResponse
	if err := json.Unmarshal(body, &errBody); err != nil {
		return ""
	}

	return strings.TrimSpace(errBody.Error)
}

func mapHealthError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrUnhealthy, resp.StatusCode(), body)
}
