// Package fxapi provides a client for the external FX history/predict API.
package fxapi

import "time"

const (
	// DefaultBaseURL is where the FX API listens in local development.
	DefaultBaseURL = "http://localhost:8000"
	// DefaultTimeout bounds one upstream request.
	DefaultTimeout = 10 * time.Second
)

// Config holds configuration for the FX API client.
type Config struct {
	BaseURL string        // Base URL without the /api prefix (e.g., "http://localhost:8000")
	Timeout time.Duration // HTTP request timeout
	// RateLimit caps requests per minute; 0 disables the limit.
	RateLimit int
}
