// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-card-validator/models"
)

const (
	binLength      = 6
	lastFourLength = 4
)

// Luhn reports whether digits passes the mod-10 checksum. Starting from the
// rightmost digit, every second digit is doubled (subtracting 9 when the
// result exceeds 9) and the sum must be divisible by 10. Input must consist
// of ASCII digits only; an empty string is not valid.
func Luhn(digits string) bool {
	if digits == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}

// DetectIssuer infers the card network from the leading digits.
func DetectIssuer(digits string) models.CardType {
	if digits == "" {
		return models.UnknownCardType
	}

	switch {
	case digits[0] == '4':
		return models.Visa
	case len(digits) >= 2 && digits[0] == '5' && digits[1] >= '1' && digits[1] <= '5':
		return models.MasterCard
	case len(digits) >= 2 && digits[0] == '3' && (digits[1] == '4' || digits[1] == '7'):
		return models.AmericanExpress
	case digits[0] == '6':
		return models.Discover
	default:
		return models.UnknownCardType
	}
}

// Details builds the success response for an already normalized number.
func Details(digits string, at time.Time) models.ValidateResponse {
	return models.ValidateResponse{
		IsValid:   Luhn(digits),
		Type:      DetectIssuer(digits).String(),
		Length:    len(digits),
		BIN:       prefix(digits, binLength),
		LastFour:  suffix(digits, lastFourLength),
		Timestamp: at.UTC().Format(time.RFC3339Nano),
	}
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func suffix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
