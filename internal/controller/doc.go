// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controller owns the interaction state of the card validation
// form and is independent of any particular UI toolkit.
//
// The [Controller] is a state machine driven by five transitions:
//
//	InputChanged(raw)      any state      → Idle, validity Unknown
//	SubmitRequested        Idle/Succeeded/Failed with digits → InFlight
//	ValidatorResponded     InFlight       → Succeeded or Failed
//	ValidatorErrored       InFlight       → Failed
//	ClearRequested         any state      → initial Idle
//
// Every submission is tagged with an attempt number. InputChanged and
// ClearRequested bump the attempt counter, so a response that arrives for a
// superseded attempt is discarded instead of resurrecting a stale result.
// At most one request is outstanding at any time.
package controller
