// Package usecase implements the dashboard state and its fetch actions.
package usecase

import "errors"

var (
	// ErrBusy is returned while another history or prediction fetch is in flight.
	ErrBusy = errors.New("a fetch is already in progress")

	// ErrNoHistory is returned when a prediction is requested before any history is loaded.
	ErrNoHistory = errors.New("load history before running a forecast")
)

// ValidationError carries a user-facing message for a selection that must not
// be sent to the FX API.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
