package tui

import "github.com/MKhiriev/go-card-validator/models"

// stateChangedMsg means the controller applied a transition the model did
// not initiate itself, such as a validator response.
type stateChangedMsg struct{}

type serviceStatusMsg struct {
	status models.ServiceStatus
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
