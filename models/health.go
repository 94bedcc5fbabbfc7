package models

import "time"

// HealthStatusHealthy is the only status value the service reports while it
// is able to answer requests.
const HealthStatusHealthy = "healthy"

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ServiceStatus is the client's latest view of the validator service, as
// produced by the health check worker.
type ServiceStatus struct {
	// Healthy is true when the last probe got status "healthy".
	Healthy bool

	// Detail is the probe error text when Healthy is false.
	Detail string

	// CheckedAt is when the probe finished.
	CheckedAt time.Time
}
