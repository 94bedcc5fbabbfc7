package server

// Server defines the lifecycle of the validator service transports.
type Server interface {
	// RunServer starts every transport and blocks until a stop signal has
	// been handled.
	RunServer()

	// Shutdown gracefully stops every transport.
	Shutdown()
}
