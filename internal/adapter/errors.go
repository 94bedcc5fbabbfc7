package adapter

import "errors"

var (
	// ErrTransport wraps every failure where no HTTP response was received
	// (DNS, refused connection, timeout, cancelled context).
	ErrTransport = errors.New("validator service unreachable")

	// ErrMalformedResponse is returned when a 2xx response body cannot be
	// decoded.
	ErrMalformedResponse = errors.New("malformed validator response")

	// ErrUnhealthy is returned by Health when the service answered but did
	// not report itself healthy.
	ErrUnhealthy = errors.New("validator service unhealthy")

	// ErrEmptyAddress is returned by the constructor for a blank base URL.
	ErrEmptyAddress = errors.New("empty address")

	// ErrInvalidAddress is returned for a base URL without scheme or host.
	ErrInvalidAddress = errors.New("address must include host and scheme")
)
