// Package http implements the REST transport of the card validator
// service.
//
// Routes:
//
//	POST /api/validate  validate a card number
//	GET  /api/health    liveness probe
//	GET  /api/version   server version, plain text
//	GET  /api/history   masked recent validations
//	GET  /metrics       Prometheus exposition
//
// Every request passes through panic recovery, trace id assignment,
// access logging, CORS, metrics and gzip handling before it reaches a
// handler.
package http
