package models

// ValidateRequest is the body of POST /api/validate.
type ValidateRequest struct {
	// CardNumber is the number as typed by the user. The client sends the
	// display form (digits grouped by single spaces); the service strips
	// every non-digit character before validating.
	CardNumber string `json:"cardNumber"`
}

// ValidateResponse is the success body of POST /api/validate.
type ValidateResponse struct {
	// IsValid reports whether the number passes the Luhn checksum.
	IsValid bool `json:"isValid"`

	// Type is the detected card network, empty or "Unknown" when no
	// network matched.
	Type string `json:"type,omitempty"`

	// Length is the number of digits that were validated.
	Length int `json:"length,omitempty"`

	// BIN holds the first six digits (issuer identification number).
	BIN string `json:"bin,omitempty"`

	// LastFour holds the trailing four digits of the number.
	LastFour string `json:"lastFour,omitempty"`

	// Timestamp is the UTC time the validation was performed, RFC 3339.
	Timestamp string `json:"timestamp,omitempty"`
}

// ErrorResponse is the body the service sends together with any non-2xx
// status code. Error is shown to the user verbatim.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidatorReply is what the client adapter hands back for a completed
// HTTP exchange with the validator service, whatever the status code.
//
// Exactly one of Result (when OK) or Error (when !OK) is meaningful.
type ValidatorReply struct {
	// OK is true for 2xx status codes.
	OK bool

	// StatusCode is the raw HTTP status code.
	StatusCode int

	// Result is the decoded success body.
	Result ValidateResponse

	// Error is the "error" field of a non-2xx body; it may be empty when the
	// body was missing or not JSON.
	Error string
}
