package dto

import "time"

// ErrorResponse is the standard JSON error body returned by every API
// endpoint. The human-readable message is serialized under "error" to
// match the contract consumed by the frontend.
type ErrorResponse struct {
	Message      string    `json:"error"`             // human-readable error message
	ErrorDetails string    `json:"details,omitempty"` // underlying cause, if any
	Timestamp    time.Time `json:"timestamp"`         // time the error was produced
}

// Error implements the error interface so an ErrorResponse can flow
// through error-typed plumbing (e.g. gin's c.Error).
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an
// optional underlying error.
//
// Parameters:
//   - message (string): Human-readable description of the failure.
//   - err (error): Optional cause; its Error() string is attached as details.
//
// Returns:
//   - ErrorResponse: The response body ready to be serialized as JSON.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
