package client

import (
	"encoding/json"
	"fmt"
)

// APIError is a structured error returned by the API
type APIError struct {
	StatusCode int             `json:"-"`
	Code       string          `json:"code"`
	Message    string          `json:"message"`
	Details    json.RawMessage `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("API error (HTTP %d)", e.StatusCode)
}

// IsQuotaExceeded reports whether the error is a message-quota denial
func (e *APIError) IsQuotaExceeded() bool {
	return e.Code == "QUOTA_EXCEEDED"
}

// IsNotFound reports whether the error is a missing resource
func (e *APIError) IsNotFound() bool {
	return e.Code == "NOT_FOUND"
}
