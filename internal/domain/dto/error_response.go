package dto

import "time"

// ErrorResponse is the standardized JSON error envelope returned by every
// failing endpoint.
//
// It implements the error interface so it can travel through Gin's error
// chain and middleware.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid time window"`
	ErrorDetails string    `json:"error,omitempty" example:"unknown time window \"fortnight\""`
	Timestamp    time.Time `json:"timestamp" example:"2025-09-15T14:30:00Z"`
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
// A nil err leaves ErrorDetails empty.
func NewErrorResponse(message string, err error) ErrorResponse {
	e := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		e.ErrorDetails = err.Error()
	}
	return e
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}
