// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages the validator service
// writes into the "error" field of failed responses.
//
// Callers match on these strings, so the wording is part of the HTTP
// contract and must not change.
package app

const (
	// MsgCardNumberRequired is returned when the body is not valid JSON or
	// carries no usable cardNumber.
	MsgCardNumberRequired = "Card number is required"

	// MsgInvalidCardLength is returned when the normalized number has fewer
	// than 13 or more than 19 digits.
	MsgInvalidCardLength = "Card number must be between 13 and 19 digits"

	// MsgLimitNotInteger is returned by GET /api/history for a non-numeric
	// limit parameter.
	MsgLimitNotInteger = "limit must be an integer"

	// MsgLimitNotPositive is returned when the history limit is zero or
	// negative.
	MsgLimitNotPositive = "limit must be positive"

	// MsgInvalidGzipData is returned when a request declares gzip encoding
	// but its body cannot be decompressed.
	MsgInvalidGzipData = "Invalid gzip data"

	// MsgUnexpectedError prefixes any failure the caller cannot fix.
	MsgUnexpectedError = "An error occurred: %s"
)
