package models

import "time"

// ValidationRecord is one persisted validation outcome.
//
// The full card number is never stored. Records keep only the parts that
// are routinely printed on receipts (BIN and last four digits) plus a keyed
// fingerprint, which lets repeated checks of the same number be correlated
// without being reversible.
type ValidationRecord struct {
	// ID is a server-generated UUID.
	ID string `json:"id"`

	// Fingerprint is a keyed hash of the normalized number, hex encoded.
	Fingerprint string `json:"fingerprint"`

	// BIN holds the first six digits of the number.
	BIN string `json:"bin"`

	// LastFour holds the trailing four digits of the number.
	LastFour string `json:"lastFour"`

	// Type is the detected card network.
	Type string `json:"type"`

	// Length is the number of digits in the normalized number.
	Length int `json:"length"`

	// IsValid is the Luhn result.
	IsValid bool `json:"isValid"`

	// TraceID links the record to the request logs.
	TraceID string `json:"traceId,omitempty"`

	// CreatedAt is the moment the validation was performed.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the ValidationRecord model.
func (r ValidationRecord) TableName() string {
	return "validations"
}

// HistoryResponse is the body of GET /api/history.
type HistoryResponse struct {
	// Records are ordered from the most recent to the oldest.
	Records []ValidationRecord `json:"records"`

	// Length is len(Records).
	Length int `json:"length"`
}
