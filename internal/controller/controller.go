// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/MKhiriev/go-card-validator/internal/adapter"
	"github.com/MKhiriev/go-card-validator/internal/formatter"
	"github.com/MKhiriev/go-card-validator/internal/logger"
	"github.com/MKhiriev/go-card-validator/models"
)

// User-facing failure messages.
const (
	// DefaultRejectionMessage is shown when the service rejects a request
	// without saying why.
	DefaultRejectionMessage = "Failed to validate card"
	// TransportFailureMessage is shown when no response was received.
	TransportFailureMessage = "Unable to reach the validation service"
	// MalformedResponseMessage is shown when a 2xx body could not be read.
	MalformedResponseMessage = "Unexpected response from the validation service"
)

// Request is a submission accepted by SubmitRequested. CardNumber is the
// formatted number exactly as displayed; the service strips separators.
type Request struct {
	Attempt    uint64
	CardNumber string
}

// Controller is the validation form state machine. It is safe for
// concurrent use: transitions are serialized, and Execute may run on any
// goroutine.
type Controller struct {
	mu    sync.Mutex
	state State
	// generation is bumped by every transition that invalidates an
	// outstanding request.
	generation uint64

	notifyMu    sync.Mutex
	subscribers map[int]func(State)
	nextSubID   int

	validator adapter.ValidatorAdapter
	logger    *logger.Logger
}

// New returns a Controller in the initial Idle state.
func New(validator adapter.ValidatorAdapter, logger *logger.Logger) *Controller {
	return &Controller{
		validator:   validator,
		logger:      logger,
		subscribers: make(map[int]func(State)),
	}
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to be called with the new snapshot after every
// applied transition. Notifications are delivered in transition order.
// fn must not call transition methods synchronously. The returned function
// removes the subscription.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn

	return func() {
		c.notifyMu.Lock()
		defer c.notifyMu.Unlock()
		delete(c.subscribers, id)
	}
}

// InputChanged replaces the input with raw and returns to Idle. Any
// outstanding request is superseded and its result will be discarded.
func (c *Controller) InputChanged(raw string) State {
	c.mu.Lock()
	c.generation++
	c.state = State{
		Raw:     raw,
		Number:  formatter.Format(raw),
		Phase:   PhaseIdle,
		Attempt: c.state.Attempt,
	}
	return c.commit()
}

// ClearRequested discards the input and any result.
func (c *Controller) ClearRequested() State {
	c.mu.Lock()
	c.generation++
	c.state = State{Attempt: c.state.Attempt}
	return c.commit()
}

// SubmitRequested moves to InFlight and returns the request to execute.
// It is a no-op returning false while a request is outstanding or when the
// input has no digits.
func (c *Controller) SubmitRequested() (Request, bool) {
	c.mu.Lock()
	if !c.state.CanSubmit() {
		c.mu.Unlock()
		return Request{}, false
	}

	c.generation++
	c.state.Phase = PhaseInFlight
	c.state.Validity = ValidityUnknown
	c.state.CardType = ""
	c.state.Message = ""
	c.state.Attempt = c.generation

	req := Request{Attempt: c.generation, CardNumber: c.state.Number.Formatted}
	snapshot := c.commit()

	c.logger.Debug().Uint64("attempt", req.Attempt).Int("digits", snapshot.Number.DigitCount).Msg("validation submitted")
	return req, true
}

// ValidatorResponded applies a service answer for attempt. A 2xx reply
// yields Succeeded; anything else yields Failed with the service message or
// DefaultRejectionMessage. It reports false when the reply was stale.
func (c *Controller) ValidatorResponded(attempt uint64, reply models.ValidatorReply) bool {
	c.mu.Lock()
	if !c.currentLocked(attempt) {
		c.mu.Unlock()
		c.logger.Debug().Uint64("attempt", attempt).Int("status", reply.StatusCode).Msg("stale validator response discarded")
		return false
	}

	if reply.OK {
		c.state.Phase = PhaseSucceeded
		c.state.CardType = strings.TrimSpace(reply.Result.Type)
		if reply.Result.IsValid {
			c.state.Validity = ValidityValid
		} else {
			c.state.Validity = ValidityInvalid
		}
	} else {
		c.state.Phase = PhaseFailed
		c.state.Validity = ValidityUnknown
		c.state.Message = rejectionMessage(reply.Error)
	}
	c.commit()

	c.logger.Debug().Uint64("attempt", attempt).Int("status", reply.StatusCode).Bool("ok", reply.OK).Msg("validator response applied")
	return true
}

// ValidatorErrored applies a transport failure for attempt. It reports
// false when the failure was stale.
func (c *Controller) ValidatorErrored(attempt uint64, message string) bool {
	c.mu.Lock()
	if !c.currentLocked(attempt) {
		c.mu.Unlock()
		c.logger.Debug().Uint64("attempt", attempt).Msg("stale validator failure discarded")
		return false
	}

	if strings.TrimSpace(message) == "" {
		message = TransportFailureMessage
	}
	c.state.Phase = PhaseFailed
	c.state.Validity = ValidityUnknown
	c.state.Message = message
	c.commit()

	c.logger.Debug().Uint64("attempt", attempt).Str("message", message).Msg("validator failure applied")
	return true
}

// Execute performs req against the validator and applies the outcome. It
// blocks until the adapter returns and reports whether the outcome was
// applied. Cancelling ctx yields a transport failure.
func (c *Controller) Execute(ctx context.Context, req Request) bool {
	reply, err := c.validator.Validate(ctx, req.CardNumber)
	if err != nil {
		c.logger.Err(err).Uint64("attempt", req.Attempt).Msg("validation request failed")
		return c.ValidatorErrored(req.Attempt, failureMessage(err))
	}
	return c.ValidatorResponded(req.Attempt, reply)
}

// Submit combines SubmitRequested and Execute. It returns false without
// contacting the validator when submission is not allowed.
func (c *Controller) Submit(ctx context.Context) bool {
	req, ok := c.SubmitRequested()
	if !ok {
		return false
	}
	c.Execute(ctx, req)
	return true
}

func (c *Controller) currentLocked(attempt uint64) bool {
	return attempt == c.generation && c.state.Phase == PhaseInFlight
}

// commit must be called with mu held; it releases mu and notifies
// subscribers in order.
func (c *Controller) commit() State {
	snapshot := c.state
	c.notifyMu.Lock()
	c.mu.Unlock()
	defer c.notifyMu.Unlock()

	for _, fn := range c.subscribers {
		fn(snapshot)
	}
	return snapshot
}

func rejectionMessage(msg string) string {
	if msg = strings.TrimSpace(msg); msg != "" {
		return msg
	}
	return DefaultRejectionMessage
}

func failureMessage(err error) string {
	if errors.Is(err, adapter.ErrMalformedResponse) {
		return MalformedResponseMessage
	}
	return TransportFailureMessage
}
