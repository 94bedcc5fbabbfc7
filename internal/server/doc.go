// Package server runs the validator service transports.
//
// It owns the HTTP API listener and the optional gRPC health listener,
// starts both, waits for SIGINT, SIGTERM or SIGQUIT and then shuts them
// down gracefully.
package server
