// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-card-validator/internal/formatter"
	"github.com/MKhiriev/go-card-validator/models"
)

// Phase is the request lifecycle position of the controller.
type Phase int

const (
	// PhaseIdle is the initial phase and the phase after every input change.
	PhaseIdle Phase = iota
	// PhaseInFlight means one validation request is outstanding.
	PhaseInFlight
	// PhaseSucceeded means the service answered 2xx; see State.Validity.
	PhaseSucceeded
	// PhaseFailed means the request was rejected or never completed; see
	// State.Message.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInFlight:
		return "in_flight"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Validity is the last known verdict for the current input.
type Validity int

const (
	ValidityUnknown Validity = iota
	ValidityValid
	ValidityInvalid
)

func (v Validity) String() string {
	switch v {
	case ValidityValid:
		return "valid"
	case ValidityInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the controller.
type State struct {
	// Raw is the last input passed to InputChanged.
	Raw string

	// Number holds the formatter output for Raw.
	Number formatter.Result

	Phase    Phase
	Validity Validity

	// CardType is the network reported by the service. It is only set in
	// PhaseSucceeded and may be empty.
	CardType string

	// Message is the user-facing failure text in PhaseFailed.
	Message string

	// Attempt identifies the most recent submission; zero before the first.
	Attempt uint64
}

// CanSubmit reports whether SubmitRequested would be accepted.
func (s State) CanSubmit() bool {
	return s.Phase != PhaseInFlight && !s.Number.Empty()
}

// HasKnownCardType reports whether CardType names an actual network.
func (s State) HasKnownCardType() bool {
	t := strings.TrimSpace(s.CardType)
	return t != "" && !strings.EqualFold(t, models.UnknownCardType.String())
}

// HelperText is the hint shown under the input: the invalid marker after a
// negative verdict, otherwise the digit counter.
func (s State) HelperText() string {
	if s.Validity == ValidityInvalid {
		return "Invalid card number"
	}
	if s.Number.DigitCount > 0 {
		return fmt.Sprintf("%d digits entered", s.Number.DigitCount)
	}
	return ""
}

// BannerKind enumerates the mutually exclusive result banners.
type BannerKind int

const (
	BannerNone BannerKind = iota
	BannerSuccess
	BannerInvalid
	BannerError
)

// Banner is the single result message shown to the user.
type Banner struct {
	Kind BannerKind
	Text string
}

// Banner texts.
const (
	ValidNumberText   = "Valid credit card number!"
	InvalidNumberText = "Invalid credit card number. Please check and try again."
)

// Banner derives the banner for the snapshot. At most one banner is shown:
// an error banner in PhaseFailed, a success or invalid-number banner in
// PhaseSucceeded, nothing otherwise.
func (s State) Banner() Banner {
	switch s.Phase {
	case PhaseFailed:
		return Banner{Kind: BannerError, Text: s.Message}
	case PhaseSucceeded:
		if s.Validity == ValidityValid {
			if s.HasKnownCardType() {
				return Banner{Kind: BannerSuccess, Text: fmt.Sprintf("Valid %s Card", strings.TrimSpace(s.CardType))}
			}
			return Banner{Kind: BannerSuccess, Text: ValidNumberText}
		}
		return Banner{Kind: BannerInvalid, Text: InvalidNumberText}
	default:
		return Banner{Kind: BannerNone}
	}
}
