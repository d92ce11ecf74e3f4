// Package dto defines the JSON bodies of the dashboard endpoints.
package dto

import "fx_dashboard/internal/feature/fxrates/usecase"

// ErrorResponse is returned when an action is refused before reaching the FX API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ViewResponse wraps the dashboard view model with its info line.
type ViewResponse struct {
	usecase.View
	Summary string `json:"summary,omitempty"`
}

// NewViewResponse builds a ViewResponse from v.
func NewViewResponse(v usecase.View) ViewResponse {
	return ViewResponse{View: v, Summary: v.Summary()}
}
