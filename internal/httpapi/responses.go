/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

// Package httpapi wires the lead-capture API: form endpoints with admission
// control and CORS, reference-data endpoints, and rate-limiter maintenance
// hooks.
package httpapi

// formResponse is the wire envelope of the contact form API.
type formResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// quoteAcceptedResponse is the success envelope of the quote API.
type quoteAcceptedResponse struct {
	Success bool   `json:"success"`
	QuoteID string `json:"quoteId"`
}

// quoteErrorResponse is the failure envelope of the quote API. It is
// deliberately coarser than the contact one: the public quote widget only
// distinguishes success from failure.
type quoteErrorResponse struct {
	Error string `json:"error"`
}

// Messages of the contact form envelopes.
const (
	contactAcceptedMessage   = "Thank you for your message! We will get back to you within 24 hours."
	validationErrorMessage   = "Validation error"
	databaseErrorMessage     = "Database error"
	databaseErrorDetail      = "Unable to save your message. Please try again later."
	serverErrorMessage       = "Server error"
	serverErrorDetail        = "An unexpected error occurred. Please try again later."
	quoteFailedErrorResponse = "Failed to create quote"
)
